// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"math"
	"math/rand"
)

// NewGrid builds a Model whose N = nx*ny atoms sit on a regular grid with
// lower-left corner (-spacing/2, -spacing/2) and upper-right corner
// ((nx-0.5)*spacing, (ny-0.5)*spacing), split into species A/B according to
// xa (the first round(xa*N) atoms, in grid order, are species A). The box
// limits are set to exactly bound the grid. See SPEC_FULL §10 (grounded on
// original_source/moldyn/simulation/builder.py).
func NewGrid(a, b *Species, nx, ny int, spacing, xa float64) *Model {
	m := NewModel(a, b)
	n := nx * ny
	m.Pos = make([][2]float64, n)
	m.Vel = make([][2]float64, n)

	idx := 0
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			m.Pos[idx] = [2]float64{float64(ix) * spacing, float64(iy) * spacing}
			idx++
		}
	}

	m.SetXLim(-spacing/2, (float64(nx)-0.5)*spacing)
	m.SetYLim(-spacing/2, (float64(ny)-0.5)*spacing)

	if xa < 0 {
		xa = 0
	}
	if xa > 1 {
		xa = 1
	}
	m.SetNA(int(math.Round(xa * float64(n))))
	return m
}

// Shuffle randomizes the assignment of species to grid sites in place via a
// Fisher-Yates permutation of Pos (the species partition NA stays fixed; only
// which physical sites hold species A vs B changes), so the two species mix
// uniformly rather than occupying a solid block. rng may be nil to use the
// default top-level source.
func (m *Model) Shuffle(rng *rand.Rand) {
	n := m.N()
	perm := makePerm(n, rng)
	newPos := make([][2]float64, n)
	for i, p := range perm {
		newPos[i] = m.Pos[p]
	}
	m.Pos = newPos
}

func makePerm(n int, rng *rand.Rand) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.Intn(i + 1)
		} else {
			j = rand.Intn(i + 1)
		}
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// SeedVelocities assigns each atom an independent Gaussian velocity component
// (mean 0, unit variance, scaled by sigma) along x and y. rng may be nil to
// use the default top-level source.
func (m *Model) SeedVelocities(sigma float64, rng *rand.Rand) {
	for i := range m.Vel {
		var vx, vy float64
		if rng != nil {
			vx, vy = rng.NormFloat64(), rng.NormFloat64()
		} else {
			vx, vy = rand.NormFloat64(), rand.NormFloat64()
		}
		m.Vel[i][0] = vx * sigma
		m.Vel[i][1] = vy * sigma
	}
}
