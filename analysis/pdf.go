// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analysis implements post-run reductions over a frozen trajectory
// snapshot (spec §2's "Analyses (PDF, Voronoi density)"), grounded on
// gofem/ana's analytical-solution idiom (a small struct with input fields, an
// Init/New constructor, and one or more query methods) and on
// original_source/moldyn/processing/data_proc.py's PDF and density routines.
package analysis

import (
	"math"
	"math/rand"

	"github.com/cpmech/gosl/chk"
)

// PDFParams holds the pair-distribution-function sampling parameters, mirroring
// data_proc.py's PDF(pos, nb_samples, rcut, bin_count) signature.
type PDFParams struct {
	NumSamples int     // number of atoms to draw as histogram origins
	Rcut       float64 // maximum distance considered
	BinCount   int     // number of histogram bins
}

// PDF computes the pair distribution function of a position snapshot: for
// NumSamples randomly chosen atoms, accumulate a 1/r-weighted histogram of
// distances to every other atom, normalized by the number of samples.
//
// Returns the bin lower edges (as in data_proc.py) and the normalized
// histogram.
func PDF(pos [][2]float64, p PDFParams, rng *rand.Rand) (bins, hist []float64) {
	if p.BinCount < 2 {
		chk.Panic("analysis: BinCount must be >= 2, got %d", p.BinCount)
	}
	if p.NumSamples < 1 {
		chk.Panic("analysis: NumSamples must be >= 1, got %d", p.NumSamples)
	}
	n := len(pos)
	bins = make([]float64, p.BinCount-1)
	width := p.Rcut / float64(p.BinCount-1)
	for i := range bins {
		bins[i] = float64(i) * width
	}
	hist = make([]float64, p.BinCount-1)

	for s := 0; s < p.NumSamples; s++ {
		origin := pos[rng.Intn(n)]
		for i := 0; i < n; i++ {
			dx := pos[i][0] - origin[0]
			dy := pos[i][1] - origin[1]
			r := math.Sqrt(dx*dx + dy*dy)
			if r == 0 {
				continue // skip the sample atom itself, as data_proc.py does
			}
			if r >= p.Rcut {
				continue
			}
			bin := int(r / width)
			if bin >= len(hist) {
				bin = len(hist) - 1
			}
			hist[bin] += 1.0 / r
		}
	}
	for i := range hist {
		hist[i] /= float64(p.NumSamples)
	}
	return bins, hist
}
