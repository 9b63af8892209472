// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package integrator orchestrates the position-Verlet time-stepping loop:
// half-drift, force evaluation, thermostat/forcing kick, half-drift, with
// time-series recording (spec §4.3). It is grounded on fem.Main/fem.Solver's
// run-loop shape and fem.DynCoefs' role of centralizing derived scalars
// (gofem/fem/solver.go, gofem/fem/dyncoefs.go), generalized from an implicit
// FEM time-stepper to an explicit symplectic particle integrator.
package integrator

import (
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/open-moldyn/moldyn/forces"
	"github.com/open-moldyn/moldyn/model"
	"github.com/open-moldyn/moldyn/profile"
)

// Sink is the trajectory-sink collaborator (spec §6): offered the current
// positions once per step, append-only, ordered.
type Sink interface {
	Offer(step int, pos [][2]float64) error
}

// OnStep is invoked once after every completed step.
type OnStep func(o *Integrator)

// StopToken is a cooperative cancellation flag: the integrator checks it
// between steps (never mid-step, per spec §5) and stops early if set.
type StopToken struct {
	stopped bool
}

// Stop requests cancellation.
func (s *StopToken) Stop() { s.stopped = true }

// Stopped reports whether cancellation was requested.
func (s *StopToken) Stopped() bool { return s != nil && s.stopped }

// Integrator advances a Model copy through time. It owns its Model copy, its
// ForceKernel, and the time-series record; the caller's original Model is
// never mutated (spec §5).
type Integrator struct {
	Model  *model.Model
	Kernel forces.Kernel
	Series TimeSeries

	CurrentIter int

	// last computed per-atom quantities
	F     [][2]float64
	PE    []float64
	Count []float64

	TempProfile   *profile.Piecewise
	ForceProfileX *profile.Piecewise
	ForceProfileY *profile.Piecewise
	ThermostatOn  bool

	Sink Sink
	Stop *StopToken

	Rng *rand.Rand // optional, for deterministic tests; nil uses math/rand's default source

	frozenMask []bool // computed once at construction; true means mobile
	seeded     bool    // one-shot zero-velocity thermostat seed latch
}

// New builds an Integrator from a Model (deep-copied immediately, per spec
// §3 lifecycle: "the Integrator takes a deep copy; the original is preserved
// as a reference snapshot") and a backend preference.
func New(m *model.Model, backend forces.Backend, numWorkers int) *Integrator {
	cp := m.DeepCopy()
	params := buildForceParams(cp)
	o := &Integrator{
		Model:         cp,
		Kernel:        forces.NewKernel(backend, params, cp.N(), numWorkers),
		TempProfile:   profile.NewConstant(0),
		ForceProfileX: profile.NewConstant(0),
		ForceProfileY: profile.NewConstant(0),
	}
	o.frozenMask = computeFrozenMask(cp)
	return o
}

// buildForceParams projects the Model's species/pair/box fields into the
// forces.Params the Kernel contract needs.
func buildForceParams(m *model.Model) forces.Params {
	return forces.Params{
		EpsilonA: m.A.Epsilon, EpsilonB: m.B.Epsilon, EpsilonAB: m.AB.Epsilon,
		SigmaA: m.A.Sigma, SigmaB: m.B.Sigma, SigmaAB: m.AB.Sigma,
		RcutA: m.A.Rcut, RcutB: m.B.Rcut, RcutAB: m.AB.Rcut,
		NA:        m.NA,
		LengthX:   m.LengthX(),
		LengthY:   m.LengthY(),
		XPeriodic: m.XPeriodic,
		YPeriodic: m.YPeriodic,
	}
}

// computeFrozenMask returns, per atom, whether it is mobile: true if the
// frozen feature is disabled, or if the atom's y at construction time is
// above LowZoneUpperLimit (spec §4.3 kick step).
func computeFrozenMask(m *model.Model) []bool {
	mask := make([]bool, m.N())
	for i := range mask {
		if !m.FreezeEnabled {
			mask[i] = true
			continue
		}
		mask[i] = m.Pos[i][1] > m.LowZoneUpperLimit
	}
	return mask
}

// SetTemperatureProfile installs T(t), enabling the thermostat. Fewer than
// two points leaves the existing profile (and thermostat state) unchanged
// (spec §4.3).
func (o *Integrator) SetTemperatureProfile(tPoints, tempPoints []float64) {
	if o.TempProfile.Set(tPoints, tempPoints) {
		o.ThermostatOn = true
	}
}

// SetForceProfileX installs Fx(t). Model.UpApplyForceX still gates whether it
// is actually applied during a step.
func (o *Integrator) SetForceProfileX(tPoints, fPoints []float64) {
	o.ForceProfileX.Set(tPoints, fPoints)
}

// SetForceProfileY installs Fy(t).
func (o *Integrator) SetForceProfileY(tPoints, fPoints []float64) {
	o.ForceProfileY.Set(tPoints, fPoints)
}

// normFloat64 draws a standard-normal sample from o.Rng if set, else the
// package-level math/rand source.
func (o *Integrator) normFloat64() float64 {
	if o.Rng != nil {
		return o.Rng.NormFloat64()
	}
	return rand.NormFloat64()
}

// Step advances n integration steps, invoking onStep after each (spec
// §4.3). N=0 is a no-op. The loop checks Stop between steps, never mid-step.
func (o *Integrator) Step(n int, onStep OnStep) {
	if o.Model.N() == 0 {
		return
	}
	if n < 0 {
		chk.Panic("moldyn: Step called with negative n=%d", n)
	}
	for s := 0; s < n; s++ {
		if o.Stop.Stopped() {
			return
		}
		o.stepOnce()
		if onStep != nil {
			onStep(o)
		}
		o.CurrentIter++
	}
}

// warnOnce emits a single diagnostic line; kept as a tiny helper so stepOnce
// reads linearly rather than inlining io.Pfyel calls at each guard.
func warnOnce(format string, args ...interface{}) {
	io.Pfyel("moldyn: "+format+"\n", args...)
}
