// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package integrator

// TimeSeries holds the per-step state-function record (spec §6's archive
// contract, §4.3 step 8). The ramps (installed profile control points) are
// not held here; the archive reads them from the Integrator's TempProfile,
// ForceProfileX and ForceProfileY.
type TimeSeries struct {
	T       []float64 // measured temperature
	TTarget []float64 // thermostat target temperature
	EC      []float64 // microscopic kinetic energy
	EP      []float64 // potential energy
	ET      []float64 // total energy (EC+EP)
	Bonds   []float64 // bonds per atom, (1/2N)*ΣCount (half the mean neighbor count)
	Time    []float64 // iter*dt
	Iters   []int     // iteration index
}

func (s *TimeSeries) append(t, tTarget, ec, ep, et, bonds, simTime float64, iter int) {
	s.T = append(s.T, t)
	s.TTarget = append(s.TTarget, tTarget)
	s.EC = append(s.EC, ec)
	s.EP = append(s.EP, ep)
	s.ET = append(s.ET, et)
	s.Bonds = append(s.Bonds, bonds)
	s.Time = append(s.Time, simTime)
	s.Iters = append(s.Iters, iter)
}

// Len returns the number of recorded steps.
func (s *TimeSeries) Len() int { return len(s.Iters) }
