// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package strain

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// grid builds an n x n square lattice with the given spacing, its first atom
// at the origin, dense enough that interior atoms have several neighbors
// within rcut.
func grid(n int, spacing float64) [][2]float64 {
	pos := make([][2]float64, 0, n*n)
	for iy := 0; iy < n; iy++ {
		for ix := 0; ix < n; ix++ {
			pos = append(pos, [2]float64{float64(ix) * spacing, float64(iy) * spacing})
		}
	}
	return pos
}

func interiorAtoms(n int) []int {
	var idx []int
	for iy := 1; iy < n-1; iy++ {
		for ix := 1; ix < n-1; ix++ {
			idx = append(idx, iy*n+ix)
		}
	}
	return idx
}

// Test_identityMotion checks property 12: pos_t == pos_tprev gives zero
// strain at every non-singular (interior) atom.
func Test_identityMotion(tst *testing.T) {
	chk.PrintTitle("strain: identity motion")
	n := 6
	pos := grid(n, 1.0)
	k := NewCPUKernel(Params{Rcut: 1.5})
	k.SetSnapshots(pos, pos)
	k.Run()
	for _, i := range interiorAtoms(n) {
		e := k.Strains()[i]
		chk.Scalar(tst, "exx", 1e-9, e[0][0], 0)
		chk.Scalar(tst, "exy", 1e-9, e[0][1], 0)
		chk.Scalar(tst, "eyx", 1e-9, e[1][0], 0)
		chk.Scalar(tst, "eyy", 1e-9, e[1][1], 0)
	}
}

// Test_pureTranslation checks property 13: pos_t = pos_tprev + const gives
// zero strain at interior atoms.
func Test_pureTranslation(tst *testing.T) {
	chk.PrintTitle("strain: pure translation")
	n := 6
	prev := grid(n, 1.0)
	cur := make([][2]float64, len(prev))
	for i, p := range prev {
		cur[i] = [2]float64{p[0] + 0.37, p[1] - 0.12}
	}
	k := NewCPUKernel(Params{Rcut: 1.5})
	k.SetSnapshots(cur, prev)
	k.Run()
	for _, i := range interiorAtoms(n) {
		e := k.Strains()[i]
		chk.Scalar(tst, "exx", 1e-9, e[0][0], 0)
		chk.Scalar(tst, "exy", 1e-9, e[0][1], 0)
		chk.Scalar(tst, "eyx", 1e-9, e[1][0], 0)
		chk.Scalar(tst, "eyy", 1e-9, e[1][1], 0)
	}
}

// Test_uniformStretch checks property 14: pos_t = S*pos_tprev gives
// eps ≈ S - I at interior atoms.
func Test_uniformStretch(tst *testing.T) {
	chk.PrintTitle("strain: uniform stretch")
	n := 8
	prev := grid(n, 1.0)
	S := [2][2]float64{{1.1, 0.0}, {0.0, 0.9}}
	cur := make([][2]float64, len(prev))
	for i, p := range prev {
		cur[i] = [2]float64{S[0][0]*p[0] + S[0][1]*p[1], S[1][0]*p[0] + S[1][1]*p[1]}
	}
	k := NewCPUKernel(Params{Rcut: 1.5})
	k.SetSnapshots(cur, prev)
	k.Run()
	for _, i := range interiorAtoms(n) {
		e := k.Strains()[i]
		chk.Scalar(tst, "exx", 1e-6, e[0][0], S[0][0]-1)
		chk.Scalar(tst, "exy", 1e-6, e[0][1], S[0][1])
		chk.Scalar(tst, "eyx", 1e-6, e[1][0], S[1][0])
		chk.Scalar(tst, "eyy", 1e-6, e[1][1], S[1][1]-1)
	}
}

// Test_scenarioE_pureShear: N≈400 on a 20x20 grid, S=[[1,0.01],[0,1]];
// xy component within ±1e-3 of 0.005 when symmetrized, xx/yy within ±1e-3
// of 0.
func Test_scenarioE_pureShear(tst *testing.T) {
	chk.PrintTitle("scenario E: pure shear")
	n := 20
	sigma := 3.4e-10
	spacing := sigma * math.Pow(2.0, 1.0/6.0)
	prev := grid(n, spacing)
	S := [2][2]float64{{1.0, 0.01}, {0.0, 1.0}}
	cur := make([][2]float64, len(prev))
	for i, p := range prev {
		cur[i] = [2]float64{S[0][0]*p[0] + S[0][1]*p[1], S[1][0]*p[0] + S[1][1]*p[1]}
	}
	k := NewCPUKernel(Params{Rcut: 1.2 * spacing})
	k.SetSnapshots(cur, prev)
	k.Run()
	for _, i := range interiorAtoms(n) {
		e := k.Strains()[i]
		sym := 0.5 * (e[0][1] + e[1][0])
		if math.Abs(sym-0.005) > 1e-3 {
			tst.Errorf("atom %d: symmetrized exy=%g, want ~0.005", i, sym)
		}
		if math.Abs(e[0][0]) > 1e-3 {
			tst.Errorf("atom %d: exx=%g, want ~0", i, e[0][0])
		}
		if math.Abs(e[1][1]) > 1e-3 {
			tst.Errorf("atom %d: eyy=%g, want ~0", i, e[1][1])
		}
	}
}
