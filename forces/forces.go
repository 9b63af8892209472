// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package forces implements the per-step inter-atomic force and potential
// accumulator: the N-body inner kernel, with cutoff and minimum-image
// convention (spec §4.1). It is pure and deterministic for fixed inputs;
// parallelism is an implementation detail of each Kernel, not part of the
// contract.
package forces

import "errors"

// LayoutSize is the work-granularity unit documented in spec §4.1 ("GPU path
// dispatches one workgroup per tile of LAYOUT_SIZE=256 atoms"). It is kept
// for reference only: CPUKernel splits atoms into equal ranges per worker
// and does not use it.
const LayoutSize = 256

// Params bundles the nine Lennard-Jones constants and box geometry a Kernel
// needs to evaluate forces (spec §4.1 contract).
type Params struct {
	EpsilonA, EpsilonB, EpsilonAB float64
	SigmaA, SigmaB, SigmaAB       float64
	RcutA, RcutB, RcutAB          float64

	NA int // number of species-A atoms; the rest are species B

	LengthX, LengthY     float64
	XPeriodic, YPeriodic bool
}

// ErrGPUUnavailable is returned by NewGPUKernel: no GPU compute backend is
// available in this build (see DESIGN.md — no GPU compute dependency exists
// anywhere in the reference corpus this module was grounded on).
var ErrGPUUnavailable = errors.New("forces: GPU backend unavailable")

// Kernel is the force-kernel contract: given positions (set via
// SetPositions) it computes, on Run, the per-atom force F[N][2], per-atom
// potential-energy share PE[N], and per-atom neighbor count Count[N].
// Implementations are stateless between invocations aside from held
// resources (buffers, worker pools) released by Close.
type Kernel interface {
	// SetPositions installs the positions to compute forces for. pos has
	// shape [N][2]; N must match the Params.NA split used at construction.
	SetPositions(pos [][2]float64)

	// Run evaluates forces, energies and neighbor counts for the installed
	// positions, blocking until complete.
	Run()

	// Forces returns the most recently computed per-atom force.
	Forces() [][2]float64

	// Energies returns the most recently computed per-atom potential-energy
	// share.
	Energies() []float64

	// Counts returns the most recently computed per-atom neighbor count.
	Counts() []float64

	// Close releases resources owned by the kernel (worker pool, GPU
	// context/buffers). After Close the kernel must not be used.
	Close()
}
