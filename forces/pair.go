// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forces

import "math"

// pairConsts selects, for an ordered pair (i, j), the Lennard-Jones constants
// to use: AA if both in species A, BB if both in B, AB otherwise (spec §4.1).
func pairConsts(i, j int, p *Params) (epsilon, sigma, rcut float64) {
	iA := i < p.NA
	jA := j < p.NA
	switch {
	case iA && jA:
		return p.EpsilonA, p.SigmaA, p.RcutA
	case !iA && !jA:
		return p.EpsilonB, p.SigmaB, p.RcutB
	default:
		return p.EpsilonAB, p.SigmaAB, p.RcutAB
	}
}

// force returns the radial Lennard-Jones force divided by r, per spec §4.1:
//
//	f(r,ε,p) = -4ε(6p-12p²)/r²   with p = (σ/r)^6
//
// Multiplying by the unnormalized displacement vector yields the cartesian
// force contribution.
func force(r, epsilon, p float64) float64 {
	return (-4.0 * epsilon * (6.0*p - 12.0*p*p)) / (r * r)
}

// energy returns the per-pair potential energy share, shifted to vanish at
// r=rcut for rcut_fact=2 (spec §4.1).
func energy(epsilon, p float64) float64 {
	return epsilon * (4.0*(p*p-p) + 127.0/4096.0)
}

// accumulatePair adds the contribution of the ordered pair (posI, posJ) to
// (f, pe, count) using minimum-image convention on periodic axes. epsilon,
// sigma and rcut are the species-pair constants already resolved by the
// caller.
func accumulatePair(posI, posJ [2]float64, epsilon, sigma, rcut float64, p *Params) (fx, fy, pe, count float64) {
	dx := posI[0] - posJ[0]
	dy := posI[1] - posJ[1]

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

	if math.Abs(dx) >= rcut || math.Abs(dy) >= rcut {
		return 0, 0, 0, 0
	}
	r := math.Sqrt(dx*dx + dy*dy)
	if r >= rcut {
		return 0, 0, 0, 0
	}

	pr := math.Pow(sigma/r, 6)
	f := force(r, epsilon, pr)
	return f * dx, f * dy, energy(epsilon, pr), 1.0
}

// computeAtom iterates every j != i and returns the total force, potential
// energy share and neighbor count for atom i (spec §4.1 "semantics per atom
// i"). Newton's third law is deliberately not exploited.
func computeAtom(i int, pos [][2]float64, p *Params) (fx, fy, pe, count float64) {
	n := len(pos)
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		epsilon, sigma, rcut := pairConsts(i, j, p)
		dfx, dfy, dpe, dc := accumulatePair(pos[i], pos[j], epsilon, sigma, rcut, p)
		fx += dfx
		fy += dfy
		pe += dpe
		count += dc
	}
	return
}
