// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// BoltzmannK is the Boltzmann constant in J/K.
const BoltzmannK = 1.38064852e-23

// Model is the physical state and static parameters of a run: a mixture of
// two atomic species A and B interacting through a pairwise Lennard-Jones
// potential in a 2D box, with optional periodicity, thermostat, external
// forcing and pinning zones. It is a value container: mutators re-establish
// cross-field invariants; nothing here evaluates forces or integrates time.
type Model struct {

	// input: species
	A, B *Species
	AB   *PairAB

	// input: state
	Pos  [][2]float64 // positions [N][2] (m)
	Vel  [][2]float64 // velocities [N][2] (m/s)
	mass [][2]float64 // per-atom mass broadcast across both axes (kg), derived from NA/species masses

	// input: partition
	NA int // number of species-A atoms; species B occupies the remainder

	// input: box
	xLimInf, xLimSup float64
	yLimInf, yLimSup float64
	XPeriodic        bool
	YPeriodic        bool

	// input: timestep
	dt          float64 // stored as |dt|; 0 means "use DecentDt()"
	dtSetByUser bool

	// input: forcing zone (atoms with y > UpZoneLowerLimit receive external force)
	UpZoneLowerLimit float64
	UpApplyForceX    bool
	UpApplyForceY    bool

	// input: frozen zone (atoms with y <= LowZoneUpperLimit at run start are pinned)
	LowZoneUpperLimit float64
	FreezeEnabled     bool

	// input: thermostat
	Gamma float64 // damping coefficient in [0,1]; default 0.5
}

// NewModel builds an empty Model for species A and B with sane defaults
// (Gamma=0.5, non-periodic, no forcing/freezing zones).
func NewModel(a, b *Species) *Model {
	m := &Model{
		A:     a,
		B:     b,
		Gamma: 0.5,
	}
	m.AB = NewPairAB(a, b)
	return m
}

// N returns the total atom count.
func (m *Model) N() int { return len(m.Pos) }

// NB returns the number of species-B atoms (the complement of NA).
func (m *Model) NB() int { return m.N() - m.NA }

// XA returns the mole fraction of species A, clamped to [0,1].
func (m *Model) XA() float64 {
	n := m.N()
	if n == 0 {
		return 0
	}
	return float64(m.NA) / float64(n)
}

// SetNA sets the number of species-A atoms, clamping to [0,N] and rebuilding
// the mass vector to match the new partition (spec invariant: "mass array
// matches species partition exactly after any change to N_A").
func (m *Model) SetNA(na int) {
	n := m.N()
	if na < 0 {
		io.Pfyel("moldyn: N_A clamped from %d to 0\n", na)
		na = 0
	}
	if na > n {
		io.Pfyel("moldyn: N_A clamped from %d to %d\n", na, n)
		na = n
	}
	m.NA = na
	m.rebuildMass()
}

// UpdateAB recomputes the AB pair parameters from A and B via Kong mixing,
// unless the user has pinned AB with SetAB (spec: "once set, AB is treated as
// a constant pair parameter").
func (m *Model) UpdateAB() {
	if m.AB != nil && m.AB.Fixed {
		return
	}
	m.AB = NewPairAB(m.A, m.B)
}

// rebuildMass reconstructs the per-atom mass vector (broadcast across both
// axes) from the species partition. Called whenever NA, N, or a species mass
// changes.
func (m *Model) rebuildMass() {
	n := m.N()
	m.mass = make([][2]float64, n)
	for i := 0; i < m.NA && i < n; i++ {
		m.mass[i] = [2]float64{m.A.Mass, m.A.Mass}
	}
	for i := m.NA; i < n; i++ {
		m.mass[i] = [2]float64{m.B.Mass, m.B.Mass}
	}
}

// Mass returns the per-atom mass vector, broadcast across both axes.
// Rebuilt lazily if stale relative to N/NA.
func (m *Model) Mass() [][2]float64 {
	if len(m.mass) != m.N() {
		m.rebuildMass()
	}
	return m.mass
}

// MassTotal returns the sum of per-atom masses (spec testable property 2).
func (m *Model) MassTotal() float64 {
	return float64(m.NA)*m.A.Mass + float64(m.NB())*m.B.Mass
}

// --- box geometry -----------------------------------------------------

// SetXLim sets the x-box limits, silently swapping them if inf > sup (spec:
// "a setter that would reverse them swaps silently").
func (m *Model) SetXLim(inf, sup float64) {
	if inf > sup {
		io.Pfyel("moldyn: x_lim_inf > x_lim_sup (%g > %g); swapped\n", inf, sup)
		inf, sup = sup, inf
	}
	m.xLimInf, m.xLimSup = inf, sup
}

// SetYLim sets the y-box limits, silently swapping them if inf > sup.
func (m *Model) SetYLim(inf, sup float64) {
	if inf > sup {
		io.Pfyel("moldyn: y_lim_inf > y_lim_sup (%g > %g); swapped\n", inf, sup)
		inf, sup = sup, inf
	}
	m.yLimInf, m.yLimSup = inf, sup
}

// XLimInf, XLimSup, YLimInf, YLimSup return the box limits.
func (m *Model) XLimInf() float64 { return m.xLimInf }
func (m *Model) XLimSup() float64 { return m.xLimSup }
func (m *Model) YLimInf() float64 { return m.yLimInf }
func (m *Model) YLimSup() float64 { return m.yLimSup }

// LengthX, LengthY return the derived box side lengths (always >= 0).
func (m *Model) LengthX() float64 { return m.xLimSup - m.xLimInf }
func (m *Model) LengthY() float64 { return m.yLimSup - m.yLimInf }

// SetLengthX resizes the box along x around its current lower limit.
func (m *Model) SetLengthX(length float64) {
	if length < 0 {
		io.Pfyel("moldyn: length_x clamped from %g to 0\n", length)
		length = 0
	}
	m.xLimSup = m.xLimInf + length
}

// SetLengthY resizes the box along y around its current lower limit.
func (m *Model) SetLengthY(length float64) {
	if length < 0 {
		io.Pfyel("moldyn: length_y clamped from %g to 0\n", length)
		length = 0
	}
	m.yLimSup = m.yLimInf + length
}

// YMid returns the y-midpoint of the box, used by the integrator's rotative
// correction (spec §4.3 step 4).
func (m *Model) YMid() float64 { return 0.5 * (m.yLimInf + m.yLimSup) }

// --- timestep -----------------------------------------------------------

// SetDt sets the integration timestep; always stored as |dt|.
func (m *Model) SetDt(dt float64) {
	m.dt = math.Abs(dt)
	m.dtSetByUser = true
}

// Dt returns the integration timestep, defaulting to DecentDt() when the user
// never set one explicitly.
func (m *Model) Dt() float64 {
	if !m.dtSetByUser || m.dt == 0 {
		return m.DecentDt()
	}
	return m.dt
}

// DecentDt returns period/50 where period is the fastest LJ oscillation
// period across {A, B, AB}: period = 2π·sqrt(m_min·σ_min²/(57.1464·ε_max)).
func (m *Model) DecentDt() float64 {
	species := []struct {
		mass, sigma, epsilon float64
	}{
		{m.A.Mass, m.A.Sigma, m.A.Epsilon},
		{m.B.Mass, m.B.Sigma, m.B.Epsilon},
		{math.Min(m.A.Mass, m.B.Mass), m.AB.Sigma, m.AB.Epsilon},
	}
	mMin := species[0].mass
	sigmaMin := species[0].sigma
	epsMax := species[0].epsilon
	for _, s := range species {
		if s.mass < mMin {
			mMin = s.mass
		}
		if s.sigma < sigmaMin {
			sigmaMin = s.sigma
		}
		if s.epsilon > epsMax {
			epsMax = s.epsilon
		}
	}
	period := 2.0 * math.Pi * math.Sqrt(mMin*sigmaMin*sigmaMin/(57.1464*epsMax))
	return period / 50.0
}

// --- derived kinematic quantities ---------------------------------------

// MeanVelocity returns ⟨v⟩ = (1/N)Σv_i.
func (m *Model) MeanVelocity() [2]float64 {
	var sum [2]float64
	n := m.N()
	if n == 0 {
		return sum
	}
	for _, v := range m.Vel {
		sum[0] += v[0]
		sum[1] += v[1]
	}
	return [2]float64{sum[0] / float64(n), sum[1] / float64(n)}
}

// KineticEnergyTotal returns EC_total = (1/2)Σ m_i(v_i·v_i).
func (m *Model) KineticEnergyTotal() float64 {
	mass := m.Mass()
	var ec float64
	for i, v := range m.Vel {
		ec += 0.5 * mass[i][0] * (v[0]*v[0] + v[1]*v[1])
	}
	return ec
}

// KineticEnergyMicro returns the frame-independent kinetic energy, subtracting
// the mean velocity: EC = (1/2)Σ m_i((v_i-⟨v⟩)·(v_i-⟨v⟩)).
func (m *Model) KineticEnergyMicro() float64 {
	mass := m.Mass()
	vmean := m.MeanVelocity()
	var ec float64
	for i, v := range m.Vel {
		dx := v[0] - vmean[0]
		dy := v[1] - vmean[1]
		ec += 0.5 * mass[i][0] * (dx*dx + dy*dy)
	}
	return ec
}

// Temperature returns T = EC/(kB·N) using the microscopic kinetic energy,
// per spec §3's two-dimensional convention (two dof per atom, no explicit
// 1/2 factor beyond what's already in EC).
func (m *Model) Temperature() float64 {
	n := m.N()
	if n == 0 {
		return 0
	}
	return m.KineticEnergyMicro() / (BoltzmannK * float64(n))
}

// RescaleTemperature scales every velocity by the damped velocity-rescale
// thermostat factor β=√(1+γ(target/current−1)) (spec glossary: "Thermostat
// (velocity-rescale)"). current is the temperature the factor is based on;
// callers that already measured it (the integrator scales its post-kick
// velocities using a pre-kick temperature) pass it explicitly instead of
// paying for a redundant Temperature() pass. γ=1 recovers an exact
// instantaneous rescale to target (spec testable property 3:
// "|measured_T − T_target|/T_target < 1e-6 after scaling"). A no-op on
// N=0 or current=0 (the zero-velocity tie-break is the caller's
// responsibility, per spec §4.3's one-shot normal-distributed seed before
// scaling); target<0 is a programmer error.
func (m *Model) RescaleTemperature(current, target, gamma float64) {
	n := m.N()
	if n == 0 {
		return
	}
	if target < 0 {
		chk.Panic("moldyn: cannot rescale to a negative temperature %g", target)
	}
	if current == 0 {
		return
	}
	beta := math.Sqrt(1 + gamma*(target/current-1))
	for i := range m.Vel {
		m.Vel[i][0] *= beta
		m.Vel[i][1] *= beta
	}
}

// DeepCopy returns an independent copy of the Model, suitable for an
// Integrator to mutate while the original is retained as a reference
// snapshot for strain analysis (spec §3 lifecycle).
func (m *Model) DeepCopy() *Model {
	cp := *m
	aCopy := *m.A
	bCopy := *m.B
	abCopy := *m.AB
	cp.A, cp.B, cp.AB = &aCopy, &bCopy, &abCopy
	cp.Pos = make([][2]float64, len(m.Pos))
	copy(cp.Pos, m.Pos)
	cp.Vel = make([][2]float64, len(m.Vel))
	copy(cp.Vel, m.Vel)
	cp.mass = nil
	cp.rebuildMass()
	return &cp
}
