// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile implements the time-dependent profiles consumed by the
// integrator's thermostat and external forcing (spec §4.3): piecewise-linear
// functions of time with clamping outside their support. Grounded on
// inp.FuncsData.Get's named-function-registry idiom (gofem/inp/func.go),
// collapsed here to a single constructor since there is exactly one function
// "type" in this spec.
package profile

// TimeFunc is the provider interface the integrator consumes for T(t), Fx(t)
// and Fy(t) (spec §6, "temperature/force profile providers").
type TimeFunc interface {
	F(t float64) float64
}

// Piecewise is a piecewise-linear function of time with flat extrapolation
// outside [t[0], t[len-1]] (spec §4.3: "values before t_points[0] are clamped
// to T_points[0]; after t_points[-1], clamped to T_points[-1]").
type Piecewise struct {
	t []float64
	v []float64
}

// NewConstant returns a Piecewise that is constant everywhere, used as the
// zero-value profile before any real profile is installed.
func NewConstant(value float64) *Piecewise {
	return &Piecewise{t: []float64{0}, v: []float64{value}}
}

// Set installs new control points, requiring at least two. Fewer than two
// points leaves the previous profile unchanged (spec §4.3), so the return
// value reports whether the install happened.
func (p *Piecewise) Set(t, v []float64) bool {
	if len(t) < 2 || len(t) != len(v) {
		return false
	}
	p.t = append([]float64(nil), t...)
	p.v = append([]float64(nil), v...)
	return true
}

// Points returns copies of the installed control points (t, v), used by the
// archive to persist the ramp definitions (spec §6's T_ramps/Fx_ramps/
// Fy_ramps keys).
func (p *Piecewise) Points() (t, v []float64) {
	return append([]float64(nil), p.t...), append([]float64(nil), p.v...)
}

// F evaluates the profile at time t, clamping outside the support and
// linearly interpolating between the bracketing control points otherwise.
func (p *Piecewise) F(t float64) float64 {
	n := len(p.t)
	if n == 0 {
		return 0
	}
	if n == 1 || t <= p.t[0] {
		return p.v[0]
	}
	if t >= p.t[n-1] {
		return p.v[n-1]
	}
	// find bracketing segment [t[k], t[k+1]]
	k := 0
	for k < n-2 && t > p.t[k+1] {
		k++
	}
	t0, t1 := p.t[k], p.t[k+1]
	v0, v1 := p.v[k], p.v[k+1]
	if t1 == t0 {
		return v0
	}
	frac := (t - t0) / (t1 - t0)
	return v0 + frac*(v1-v0)
}
