// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package forces

import "github.com/cpmech/gosl/io"

// Backend selects which Kernel implementation NewKernel prefers.
type Backend int

const (
	// PreferGPU attempts the GPU kernel first, falling back to CPU.
	PreferGPU Backend = iota
	// PreferCPU skips the GPU attempt entirely.
	PreferCPU
)

// NewKernel is the runtime factory: it picks GPU if available, else CPU
// (spec §9, "Design Notes — two backends behind one contract"). GPU
// construction failure is recovered here, not propagated: the caller always
// gets a usable Kernel.
func NewKernel(backend Backend, params Params, n int, numWorkers int) Kernel {
	if backend == PreferGPU {
		if gpu, err := NewGPUKernel(params, n); err == nil {
			return gpu
		} else {
			io.Pfyel("moldyn: GPU force kernel unavailable (%v); falling back to CPU\n", err)
		}
	}
	return NewCPUKernel(params, n, numWorkers)
}
