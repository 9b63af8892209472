// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package strain implements the local 2D strain tensor computation between
// two snapshots (spec §4.2): a pure function over two immutable position
// arrays, a box geometry and a cutoff.
package strain

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Params bundles the box geometry, periodicity and cutoff the kernel needs.
type Params struct {
	LengthX, LengthY     float64
	XPeriodic, YPeriodic bool
	Rcut                 float64
}

// Kernel is the strain-kernel contract (spec §9: same set-positions/run/read
// shape as forces.Kernel, for symmetry — only a CPU implementation is
// provided since no GPU strain implementation exists in the reference
// corpus, see DESIGN.md).
type Kernel interface {
	// SetSnapshots installs the current (t) and previous (t-Δt) position
	// arrays. Both must have the same length; a mismatch is a programmer
	// error.
	SetSnapshots(posT, posTPrev [][2]float64)

	// Run computes the per-atom strain tensor for the installed snapshots.
	Run()

	// Strains returns the most recently computed per-atom 2x2 strain tensor.
	Strains() [][2][2]float64
}

// CPUKernel is the (only, in this build) Kernel implementation.
type CPUKernel struct {
	params   Params
	posT     [][2]float64
	posTPrev [][2]float64
	eps      [][2][2]float64
}

// NewCPUKernel builds a strain kernel for the given box/cutoff parameters.
func NewCPUKernel(params Params) *CPUKernel {
	return &CPUKernel{params: params}
}

// SetSnapshots installs the two position snapshots. Shape mismatch is fatal
// (spec §7: "programmer errors ... terminate the operation").
func (k *CPUKernel) SetSnapshots(posT, posTPrev [][2]float64) {
	if len(posT) != len(posTPrev) {
		chk.Panic("strain: snapshot length mismatch: len(posT)=%d len(posTPrev)=%d", len(posT), len(posTPrev))
	}
	k.posT = posT
	k.posTPrev = posTPrev
}

// Run computes eps_i = X·Y⁻¹ - I for every atom i (spec §4.2).
func (k *CPUKernel) Run() {
	n := len(k.posT)
	k.eps = make([][2][2]float64, n)
	for i := 0; i < n; i++ {
		k.eps[i] = computeAtomStrain(i, k.posT, k.posTPrev, &k.params)
	}
}

// Strains returns the most recently computed per-atom strain tensor.
func (k *CPUKernel) Strains() [][2][2]float64 { return k.eps }

// sep returns the minimum-image separation at time t between atoms i and j,
// the same convention used by the force kernel (spec §4.1/§4.2).
func sep(pi, pj [2]float64, p *Params) (dx, dy float64) {
	dx = pi[0] - pj[0]
	dy = pi[1] - pj[1]
	if p.XPeriodic {
		shiftX := p.LengthX / 2
		if dx < -shiftX {
			dx += p.LengthX
		} else if dx > shiftX {
			dx -= p.LengthX
		}
	}
	if p.YPeriodic {
		shiftY := p.LengthY / 2
		if dy < -shiftY {
			dy += p.LengthY
		} else if dy > shiftY {
			dy -= p.LengthY
		}
	}
	return
}

// computeAtomStrain forms the 2x2 accumulators X=Σ Δr_t⊗Δr_tprev,
// Y=Σ Δr_tprev⊗Δr_tprev over the neighborhood of atom i (determined at time
// t), then returns X·Y⁻¹ - I. Singular Y (fewer than two independent
// neighbors) yields a NaN tensor: an acknowledged imprecision, never a panic
// (spec §4.2, §7).
func computeAtomStrain(i int, posT, posTPrev [][2]float64, p *Params) [2][2]float64 {
	var X, Y [2][2]float64
	n := len(posT)
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		dxT, dyT := sep(posT[i], posT[j], p)
		if math.Abs(dxT) >= p.Rcut || math.Abs(dyT) >= p.Rcut {
			continue
		}
		r := math.Sqrt(dxT*dxT + dyT*dyT)
		if r >= p.Rcut {
			continue
		}
		dxP, dyP := sep(posTPrev[i], posTPrev[j], p)

		// X += Δr_t ⊗ Δr_tprev
		X[0][0] += dxT * dxP
		X[0][1] += dxT * dyP
		X[1][0] += dyT * dxP
		X[1][1] += dyT * dyP

		// Y += Δr_tprev ⊗ Δr_tprev
		Y[0][0] += dxP * dxP
		Y[0][1] += dxP * dyP
		Y[1][0] += dyP * dxP
		Y[1][1] += dyP * dyP
	}

	Yinv, ok := invert2x2(Y)
	if !ok {
		return [2][2]float64{{math.NaN(), math.NaN()}, {math.NaN(), math.NaN()}}
	}

	var XYinv [2][2]float64
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			XYinv[r][c] = X[r][0]*Yinv[0][c] + X[r][1]*Yinv[1][c]
		}
	}
	XYinv[0][0] -= 1
	XYinv[1][1] -= 1
	return XYinv
}

// invert2x2 returns the closed-form inverse of a 2x2 matrix. A dedicated
// dense linear-algebra routine (gosl/la) targets general n×n systems sized
// for FEM stiffness matrices; the fixed 2x2 block here is cheaper and
// clearer in closed form (see DESIGN.md).
func invert2x2(m [2][2]float64) (inv [2][2]float64, ok bool) {
	det := m[0][0]*m[1][1] - m[0][1]*m[1][0]
	if math.Abs(det) < 1e-300 {
		return inv, false
	}
	invDet := 1.0 / det
	inv[0][0] = m[1][1] * invDet
	inv[0][1] = -m[0][1] * invDet
	inv[1][0] = -m[1][0] * invDet
	inv[1][1] = m[0][0] * invDet
	return inv, true
}
