// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"github.com/open-moldyn/moldyn/model"
)

// stepOnce executes exactly one position-Verlet step (spec §4.3, steps 1-8).
func (o *Integrator) stepOnce() {
	m := o.Model
	n := m.N()
	dt := m.Dt()
	halfDt := dt / 2
	mass := m.Mass()
	t := float64(o.CurrentIter) * dt

	// 1. drift half
	for i := 0; i < n; i++ {
		m.Pos[i][0] += m.Vel[i][0] * halfDt
		m.Pos[i][1] += m.Vel[i][1] * halfDt
	}

	// 2. periodic wrap, per axis
	if m.XPeriodic {
		lx := m.LengthX()
		for i := 0; i < n; i++ {
			if m.Pos[i][0] < m.XLimInf() {
				m.Pos[i][0] += lx
			} else if m.Pos[i][0] > m.XLimSup() {
				m.Pos[i][0] -= lx
			}
		}
	}
	if m.YPeriodic {
		ly := m.LengthY()
		for i := 0; i < n; i++ {
			if m.Pos[i][1] < m.YLimInf() {
				m.Pos[i][1] += ly
			} else if m.Pos[i][1] > m.YLimSup() {
				m.Pos[i][1] -= ly
			}
		}
	}

	// 3. forces
	o.Kernel.SetPositions(m.Pos)
	o.Kernel.Run()
	o.F = o.Kernel.Forces()
	o.PE = o.Kernel.Energies()
	o.Count = o.Kernel.Counts()

	// 4. kinetic quantities, with optional rotative correction
	vMean := m.MeanVelocity()
	rotActive := m.UpApplyForceX && !m.YPeriodic
	yMid := m.YMid()

	var rotCoef float64
	if rotActive {
		var sum float64
		for i := 0; i < n; i++ {
			denom := m.Pos[i][1] - yMid
			if denom == 0 {
				continue
			}
			sum += m.Vel[i][0] / denom
		}
		rotCoef = sum / float64(n)
	}

	var ec float64
	for i := 0; i < n; i++ {
		rotX := 0.0
		if rotActive {
			rotX = rotCoef * (m.Pos[i][1] - yMid)
		}
		dx := m.Vel[i][0] - vMean[0] - rotX
		dy := m.Vel[i][1] - vMean[1]
		ec += 0.5 * mass[i][0] * (dx*dx + dy*dy)
	}
	temperature := 0.0
	if n > 0 {
		temperature = ec / (model.BoltzmannK * float64(n))
	}

	// 5. potential energy (the 1/2 corrects double-counting of ordered pairs)
	var ep float64
	for i := 0; i < n; i++ {
		ep += o.PE[i]
	}
	ep *= 0.5

	// 6. kick
	tTarget := temperature
	if o.ThermostatOn {
		tTarget = o.TempProfile.F(t)
	}

	if o.ThermostatOn && temperature == 0 && tTarget > 0 && !o.seeded {
		o.seedZeroVelocities()
		vMean = m.MeanVelocity()
		ec = 0
		for i := 0; i < n; i++ {
			dx := m.Vel[i][0] - vMean[0]
			dy := m.Vel[i][1] - vMean[1]
			ec += 0.5 * mass[i][0] * (dx*dx + dy*dy)
		}
		if n > 0 {
			temperature = ec / (model.BoltzmannK * float64(n))
		}
		o.seeded = true
	}

	fx := 0.0
	fy := 0.0
	if m.UpApplyForceX {
		fx = o.ForceProfileX.F(t)
	}
	if m.UpApplyForceY {
		fy = o.ForceProfileY.F(t)
	}

	for i := 0; i < n; i++ {
		upMask := 0.0
		if m.Pos[i][1] > m.UpZoneLowerLimit {
			upMask = 1.0
		}
		m.Vel[i][0] += (o.F[i][0] + upMask*fx) * (dt / mass[i][0])
		m.Vel[i][1] += (o.F[i][1] + upMask*fy) * (dt / mass[i][1])
	}

	// thermostat: scales every post-kick velocity, kick included
	// (v <- beta*(v + F*dt/m)), by a factor derived from the pre-kick
	// temperature measured above.
	if o.ThermostatOn {
		m.RescaleTemperature(temperature, tTarget, m.Gamma)
	}

	for i := 0; i < n; i++ {
		if i < len(o.frozenMask) && !o.frozenMask[i] {
			m.Vel[i][0] = 0
			m.Vel[i][1] = 0
		}
	}

	// 7. drift half
	for i := 0; i < n; i++ {
		m.Pos[i][0] += m.Vel[i][0] * halfDt
		m.Pos[i][1] += m.Vel[i][1] * halfDt
	}

	// 8. record
	var countSum float64
	for _, c := range o.Count {
		countSum += c
	}
	bonds := 0.0
	if n > 0 {
		bonds = countSum / (2 * float64(n))
	}
	o.Series.append(temperature, tTarget, ec, ep, ec+ep, bonds, t, o.CurrentIter)

	if o.Sink != nil {
		if err := o.Sink.Offer(o.CurrentIter, m.Pos); err != nil {
			warnOnce("trajectory sink offer failed at step %d: %v", o.CurrentIter, err)
		}
	}
}

// seedZeroVelocities draws a one-shot standard-normal velocity for every
// mobile atom when the thermostat targets a positive temperature from a
// perfectly still system (spec §4.3 tie-break).
func (o *Integrator) seedZeroVelocities() {
	m := o.Model
	for i := range m.Vel {
		if i < len(o.frozenMask) && !o.frozenMask[i] {
			continue
		}
		m.Vel[i][0] = o.normFloat64()
		m.Vel[i][1] = o.normFloat64()
	}
}
