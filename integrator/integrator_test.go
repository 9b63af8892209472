// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/open-moldyn/moldyn/forces"
	"github.com/open-moldyn/moldyn/model"
)

func argonSpecies() *model.Species {
	return model.NewSpecies(1.65e-21, 3.4e-10, 6.69e-26)
}

// Test_scenarioA_twoAtomOscillation: N=2 species A, zero velocity,
// non-periodic, 1000 steps at decent dt: distance stays within
// [0.98,1.02]*re and energy drift under 1%.
func Test_scenarioA_twoAtomOscillation(tst *testing.T) {
	chk.PrintTitle("scenario A: two-atom oscillation")
	a := argonSpecies()
	b := argonSpecies()
	m := model.NewModel(a, b)
	re := a.Re
	m.Pos = [][2]float64{{0, 0}, {re, 0}}
	m.Vel = [][2]float64{{0, 0}, {0, 0}}
	m.SetNA(2)
	m.SetXLim(-50*re, 50*re)
	m.SetYLim(-50*re, 50*re)

	o := New(m, forces.PreferCPU, 1)
	o.Step(1000, nil)

	lo := 0.98 * re
	hi := 1.02 * re
	dx := o.Model.Pos[0][0] - o.Model.Pos[1][0]
	dy := o.Model.Pos[0][1] - o.Model.Pos[1][1]
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < lo || dist > hi {
		tst.Errorf("final distance %g outside [%g,%g]", dist, lo, hi)
	}

	maxET, minET := o.Series.ET[0], o.Series.ET[0]
	for _, et := range o.Series.ET {
		if et > maxET {
			maxET = et
		}
		if et < minET {
			minET = et
		}
	}
	drift := (maxET - minET) / math.Abs(o.Series.ET[0])
	if drift > 0.01 {
		tst.Errorf("energy drift too large: %g", drift)
	}
}

// Test_thermostatConvergence: property 9, gamma=0.5, constant T_target.
func Test_thermostatConvergence(tst *testing.T) {
	chk.PrintTitle("thermostat convergence")
	a := argonSpecies()
	b := argonSpecies()
	m := model.NewGrid(a, b, 8, 8, a.Re, 1.0)
	m.XPeriodic, m.YPeriodic = true, true
	m.Gamma = 0.5

	o := New(m, forces.PreferCPU, 2)
	o.SetTemperatureProfile([]float64{0, 1e9}, []float64{50, 50})
	o.Step(2000, nil)

	last := o.Series.T[len(o.Series.T)-500:]
	var sum float64
	for _, t := range last {
		sum += t
	}
	mean := sum / float64(len(last))
	if mean < 45 || mean > 55 {
		tst.Errorf("mean T over last 500 steps = %g, want in [45,55]", mean)
	}
}

// Test_frozenRegionInvariance: property 10.
func Test_frozenRegionInvariance(tst *testing.T) {
	chk.PrintTitle("frozen region invariance")
	a := argonSpecies()
	b := argonSpecies()
	m := model.NewGrid(a, b, 6, 6, a.Re, 0.5)
	m.FreezeEnabled = true
	m.LowZoneUpperLimit = m.YLimInf() + 2*a.Re // bottom two rows frozen

	o := New(m, forces.PreferCPU, 1)
	var frozenIdx []int
	for i, p := range m.Pos {
		if p[1] <= m.LowZoneUpperLimit {
			frozenIdx = append(frozenIdx, i)
		}
	}
	if len(frozenIdx) == 0 {
		tst.Fatalf("test setup error: no frozen atoms selected")
	}

	o.Step(50, nil)

	for _, i := range frozenIdx {
		chk.Scalar(tst, "frozen vx", 1e-300, o.Model.Vel[i][0], 0)
		chk.Scalar(tst, "frozen vy", 1e-300, o.Model.Vel[i][1], 0)
	}
}

// Test_scenarioC_periodicWrap: N=1 atom near x_lim_sup moving toward it under
// periodic x; after crossing, it reappears near x_lim_inf.
func Test_scenarioC_periodicWrap(tst *testing.T) {
	chk.PrintTitle("scenario C: periodic wrap")
	a := argonSpecies()
	b := argonSpecies()
	m := model.NewModel(a, b)
	eps := 1e-11
	m.SetXLim(-1e-9, 1e-9)
	m.SetYLim(-1e-9, 1e-9)
	m.XPeriodic = true
	m.Pos = [][2]float64{{m.XLimSup() - eps, 0}}
	m.Vel = [][2]float64{{1.0, 0}}
	m.SetNA(1)
	m.SetDt(1e-12)

	o := New(m, forces.PreferCPU, 1)
	steps := int(math.Ceil(2*eps/(1.0*o.Model.Dt()))) + 1
	o.Step(steps, nil)

	x := o.Model.Pos[0][0]
	if x < m.XLimInf() || x > m.XLimSup() {
		tst.Errorf("wrapped position %g outside box [%g,%g]", x, m.XLimInf(), m.XLimSup())
	}
}

// Test_universalInvariants covers properties 1, 2, 4.
func Test_universalInvariants(tst *testing.T) {
	chk.PrintTitle("universal invariants")
	a := argonSpecies()
	b := model.NewSpecies(2.0e-21, 3.0e-10, 5.0e-26)
	m := model.NewGrid(a, b, 4, 4, a.Re, 0.5)

	// property 1
	re := math.Pow(2.0, 1.0/6.0) * m.AB.Sigma
	chk.Scalar(tst, "re_ab", 1e-12, m.AB.Re, re)
	chk.Scalar(tst, "rcut_ab", 1e-12, m.AB.Rcut, model.DefaultRcutFact*re)

	// property 2
	chk.Scalar(tst, "mass_total", 1e-30, m.MassTotal(), float64(m.NA)*a.Mass+float64(m.NB())*b.Mass)

	// property 4
	m.SetXLim(3, 1)
	if m.LengthX() < 0 {
		tst.Errorf("length_x negative after reversed set: %g", m.LengthX())
	}
}

// Test_zeroVelocityThermostatSeed: property 3. gamma=1 on a symmetric
// periodic lattice (net force per atom ~0 by lattice symmetry) isolates the
// seed+rescale from the kick, so the post-step measured temperature should
// land within the spec's 1e-6 relative tolerance of T_target. The spacing is
// 1.1*re so that no pair distance falls on rcut=2*re: at spacing re the
// second neighbours along each axis sit exactly at rcut, rounding of the
// grid coordinates admits some of those pairs and not others, and the
// resulting non-zero net forces perturb the kick.
func Test_zeroVelocityThermostatSeed(tst *testing.T) {
	chk.PrintTitle("zero-velocity thermostat seed")
	a := argonSpecies()
	b := argonSpecies()
	m := model.NewGrid(a, b, 6, 6, 1.1*a.Re, 1.0)
	m.XPeriodic, m.YPeriodic = true, true
	m.Gamma = 1.0

	o := New(m, forces.PreferCPU, 1)
	tTarget := 80.0
	o.SetTemperatureProfile([]float64{0, 1e9}, []float64{tTarget, tTarget})
	o.Step(1, nil)

	allZero := true
	for _, v := range o.Model.Vel {
		if v[0] != 0 || v[1] != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		tst.Errorf("expected non-zero velocity after one-shot thermostat seed")
	}

	measuredT := o.Model.Temperature()
	relErr := math.Abs(measuredT-tTarget) / tTarget
	if relErr >= 1e-6 {
		tst.Errorf("measured T=%g, target=%g, relative error %g >= 1e-6", measuredT, tTarget, relErr)
	}
}
