// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/open-moldyn/moldyn/model"
)

// scenario is the flat key=value text description of a fresh run, in the
// spirit of gofem's .sim input files but collapsed to the single dictionary
// archive.ReadParameters already knows how to parse (spec §6's normative key
// set, extended here with the grid-construction keys a scenario file needs
// that a frozen archive's `parameters` file does not: nx, ny, spacing).
type scenario struct {
	Nx, Ny               int
	Spacing              float64
	XA                   float64
	EpsilonA             float64
	SigmaA               float64
	MassA                float64
	EpsilonB             float64
	SigmaB               float64
	MassB                float64
	XPeriodic, YPeriodic bool
	Gamma                float64
	TempTarget           float64 // 0 disables the thermostat
}

// defaultScenario mirrors a small Argon-like demo system: a 20x20 grid of a
// single species at equilibrium spacing.
func defaultScenario() scenario {
	return scenario{
		Nx: 20, Ny: 20, Spacing: math.Pow(2.0, 1.0/6.0) * 3.4e-10, XA: 1.0,
		EpsilonA: 1.65e-21, SigmaA: 3.4e-10, MassA: 6.69e-26,
		EpsilonB: 1.65e-21, SigmaB: 3.4e-10, MassB: 6.69e-26,
		XPeriodic: true, YPeriodic: true,
		Gamma: 0.5,
	}
}

// loadScenario reads a scenario file in the archive's flat key=value format.
func loadScenario(path string) scenario {
	buf, err := io.ReadFile(path)
	if err != nil {
		chk.Panic("moldyn: cannot read scenario file %q: %v", path, err)
	}
	sc := defaultScenario()
	for _, line := range strings.Split(string(buf), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		idx := strings.IndexByte(line, '=')
		if idx < 0 {
			chk.Panic("moldyn: malformed scenario line %q", line)
		}
		key, val := line[:idx], line[idx+1:]
		applyScenarioKey(&sc, key, val)
	}
	return sc
}

func applyScenarioKey(sc *scenario, key, val string) {
	switch key {
	case "nx":
		sc.Nx = atoiPanic(key, val)
	case "ny":
		sc.Ny = atoiPanic(key, val)
	case "spacing":
		sc.Spacing = atofPanic(key, val)
	case "x_a":
		sc.XA = atofPanic(key, val)
	case "epsilon_a":
		sc.EpsilonA = atofPanic(key, val)
	case "sigma_a":
		sc.SigmaA = atofPanic(key, val)
	case "m_a":
		sc.MassA = atofPanic(key, val)
	case "epsilon_b":
		sc.EpsilonB = atofPanic(key, val)
	case "sigma_b":
		sc.SigmaB = atofPanic(key, val)
	case "m_b":
		sc.MassB = atofPanic(key, val)
	case "x_periodic":
		sc.XPeriodic = val == "1"
	case "y_periodic":
		sc.YPeriodic = val == "1"
	case "gamma":
		sc.Gamma = atofPanic(key, val)
	case "temp_target":
		sc.TempTarget = atofPanic(key, val)
	default:
		io.Pfyel("moldyn: ignoring unknown scenario key %q\n", key)
	}
}

func atoiPanic(key, val string) int {
	n, err := strconv.Atoi(val)
	if err != nil {
		chk.Panic("moldyn: scenario key %q: %v", key, err)
	}
	return n
}

func atofPanic(key, val string) float64 {
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		chk.Panic("moldyn: scenario key %q: %v", key, err)
	}
	return f
}

// build realizes the scenario as a Model ready for the Integrator.
func (sc scenario) build() *model.Model {
	a := model.NewSpecies(sc.EpsilonA, sc.SigmaA, sc.MassA)
	b := model.NewSpecies(sc.EpsilonB, sc.SigmaB, sc.MassB)
	m := model.NewGrid(a, b, sc.Nx, sc.Ny, sc.Spacing, sc.XA)
	m.XPeriodic = sc.XPeriodic
	m.YPeriodic = sc.YPeriodic
	m.Gamma = sc.Gamma
	return m
}
