// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model holds the physical state and static parameters of a
// two-species two-dimensional Lennard-Jones system. It is a value container:
// parameter coherence (derived quantities, decent timestep, mass vector,
// temperature) lives here, no integration or force evaluation.
package model

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// DefaultRcutFact is the dimensionless cutoff multiplier applied to Re when a
// species does not set an explicit cutoff.
const DefaultRcutFact = 2.0

// Species holds the Lennard-Jones parameters of one atomic species.
type Species struct {

	// input
	Epsilon  float64 // ε [J]: well depth
	Sigma    float64 // σ [m]: zero-crossing length
	Mass     float64 // m [kg]: particle mass
	RcutFact float64 // dimensionless cutoff multiplier; 0 means DefaultRcutFact

	// derived
	Re   float64 // equilibrium separation: 2^(1/6)·σ
	Rcut float64 // interaction cutoff: RcutFact·Re
}

// NewSpecies builds a Species from ε, σ, m and establishes Re/Rcut.
func NewSpecies(epsilon, sigma, mass float64) *Species {
	s := &Species{Epsilon: epsilon, Sigma: sigma, Mass: mass, RcutFact: DefaultRcutFact}
	s.update()
	return s
}

// update re-establishes Re and Rcut from Epsilon/Sigma/RcutFact.
func (s *Species) update() {
	if s.RcutFact <= 0 {
		s.RcutFact = DefaultRcutFact
	}
	s.Re = math.Pow(2.0, 1.0/6.0) * s.Sigma
	s.Rcut = s.RcutFact * s.Re
}

// SetEpsilon sets ε and recomputes derived quantities.
func (s *Species) SetEpsilon(epsilon float64) {
	s.Epsilon = epsilon
	s.update()
}

// SetSigma sets σ and recomputes derived quantities.
func (s *Species) SetSigma(sigma float64) {
	if sigma <= 0 {
		io.Pfyel("moldyn: species sigma must be positive; clamped %g to a small positive value\n", sigma)
		sigma = 1e-30
	}
	s.Sigma = sigma
	s.update()
}

// SetRcutFact overrides the cutoff multiplier (default 2.0) and recomputes Rcut.
func (s *Species) SetRcutFact(fact float64) {
	if fact <= 0 {
		io.Pfyel("moldyn: rcut_fact must be positive; ignoring %g\n", fact)
		return
	}
	s.RcutFact = fact
	s.update()
}

// PairAB holds the mixed species-A/species-B Lennard-Jones parameters. Once
// the user overrides Sigma/Epsilon explicitly, Fixed is set and subsequent
// recomputation from A/B is skipped: AB then behaves as a constant pair.
type PairAB struct {
	Epsilon  float64
	Sigma    float64
	RcutFact float64
	Re       float64
	Rcut     float64
	Fixed    bool
}

// KongMix computes the Kong mixing-rule σ_AB, ε_AB from the homoatomic A/B
// parameters. See spec §3 for the closed-form expression.
func KongMix(a, b *Species) (sigmaAB, epsilonAB float64) {
	eA, sA := a.Epsilon, a.Sigma
	eB, sB := b.Epsilon, b.Sigma
	sA6, sB6 := math.Pow(sA, 6), math.Pow(sB, 6)
	sA12, sB12 := sA6*sA6, sB6*sB6

	ratio := (eB * sB12) / (eA * sA12)
	inner := math.Pow(1.0+math.Pow(ratio, 1.0/13.0), 13.0)
	num := eA * sA12 * inner
	den := math.Pow(2.0, 13.0) * math.Sqrt(eB*sB6*eA*sA6)
	sigmaAB = math.Pow(num/den, 1.0/6.0)

	sigmaAB6 := math.Pow(sigmaAB, 6)
	epsilonAB = math.Sqrt(eB*sB6*eA*sA6) / sigmaAB6
	return
}

// NewPairAB derives AB parameters from A and B via the Kong mixing rule.
func NewPairAB(a, b *Species) *PairAB {
	p := &PairAB{RcutFact: DefaultRcutFact}
	p.Sigma, p.Epsilon = KongMix(a, b)
	p.update()
	return p
}

func (p *PairAB) update() {
	if p.RcutFact <= 0 {
		p.RcutFact = DefaultRcutFact
	}
	p.Re = math.Pow(2.0, 1.0/6.0) * p.Sigma
	p.Rcut = p.RcutFact * p.Re
}

// SetAB overrides the AB pair parameters explicitly; once called, the pair is
// fixed and Model.UpdateAB will not recompute it from A/B (spec §3, "once set,
// AB is treated as a constant pair parameter").
func (p *PairAB) SetAB(epsilon, sigma float64) {
	if sigma <= 0 {
		chk.Panic("moldyn: pair AB sigma must be positive, got %g", sigma)
	}
	p.Epsilon, p.Sigma, p.Fixed = epsilon, sigma, true
	p.update()
}
