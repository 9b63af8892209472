// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command moldyn runs a 2D Lennard-Jones molecular-dynamics simulation to
// completion and persists the result, grounded on gofem/main.go's flag-driven
// entry point (a scenario filename argument, a recover-and-report top level,
// io.Pf-family banners) generalized from gofem's implicit FEM solve to an
// explicit particle time-stepping run. gofem's mpi.Start/mpi.Stop rank-zero
// guard is dropped: this module's concurrency is a single-process goroutine
// worker pool (forces.CPUKernel), not an MPI job, so there is no multi-rank
// coordination to guard (see DESIGN.md).
package main

import (
	"flag"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/open-moldyn/moldyn/archive"
	"github.com/open-moldyn/moldyn/forces"
	"github.com/open-moldyn/moldyn/integrator"
	"github.com/open-moldyn/moldyn/trajectory"
)

func main() {
	steps := flag.Int("steps", 1000, "number of integration steps to run")
	outdir := flag.String("outdir", "out", "directory to write the final archive into")
	trajPath := flag.String("traj", "", "if set, path prefix to write a raw trajectory (body+header files)")
	backendFlag := flag.String("backend", "cpu", "preferred force-kernel backend: cpu or gpu")
	workers := flag.Int("workers", 4, "number of CPU worker goroutines")
	progressEvery := flag.Int("progress-every", 100, "print a progress line every N steps (0 disables)")
	zipOut := flag.Bool("zip", false, "also pack the output archive directory into outdir+\".zip\" for transport")

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.Pfred("ERROR: %v\n", err)
		}
	}()

	io.PfWhite("\nmoldyn -- 2D Lennard-Jones molecular dynamics\n\n")

	flag.Parse()
	var sc scenario
	if len(flag.Args()) > 0 {
		sc = loadScenario(flag.Arg(0))
	} else {
		io.Pfyel("moldyn: no scenario file given, running the default demo scenario\n")
		sc = defaultScenario()
	}

	backend := forces.PreferCPU
	if *backendFlag == "gpu" {
		backend = forces.PreferGPU
	}

	m := sc.build()
	o := integrator.New(m, backend, *workers)
	if sc.TempTarget > 0 {
		o.SetTemperatureProfile([]float64{0, 1e12}, []float64{sc.TempTarget, sc.TempTarget})
	}

	var sink *trajectory.RawWriter
	if *trajPath != "" {
		sink = trajectory.NewRawWriter(*trajPath+".body", *trajPath+".header", m.N())
		o.Sink = sink
	}

	io.Pf("running %d atoms for %d steps (backend=%s, workers=%d)\n", m.N(), *steps, *backendFlag, *workers)

	o.Step(*steps, func(o *integrator.Integrator) {
		if *progressEvery > 0 && o.CurrentIter%(*progressEvery) == 0 {
			io.Pf("  step %6d  T=%8.3f  ET=%12.5e\n", o.CurrentIter, o.Series.T[len(o.Series.T)-1], o.Series.ET[len(o.Series.ET)-1])
		}
	})

	if sink != nil {
		if err := sink.Close(); err != nil {
			chk.Panic("moldyn: failed to close trajectory sink: %v", err)
		}
	}

	if err := archive.Write(*outdir, o.Model, o); err != nil {
		chk.Panic("moldyn: failed to write archive: %v", err)
	}
	io.Pfgreen("done: archive written to %s\n", filepath.Clean(*outdir))

	if *zipOut {
		zipPath := filepath.Clean(*outdir) + ".zip"
		if err := archive.Zip(*outdir, zipPath); err != nil {
			chk.Panic("moldyn: failed to zip archive: %v", err)
		}
		io.Pfgreen("done: archive packed to %s\n", zipPath)
	}
}
