// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_clampingAndInterpolation(tst *testing.T) {
	chk.PrintTitle("profile: clamping and interpolation")
	p := NewConstant(0)
	ok := p.Set([]float64{0, 1, 2}, []float64{10, 20, 0})
	if !ok {
		tst.Fatalf("Set should have succeeded with 3 points")
	}
	chk.Scalar(tst, "before support", 1e-15, p.F(-5), 10)
	chk.Scalar(tst, "after support", 1e-15, p.F(50), 0)
	chk.Scalar(tst, "midpoint seg1", 1e-15, p.F(0.5), 15)
	chk.Scalar(tst, "midpoint seg2", 1e-15, p.F(1.5), 10)
	chk.Scalar(tst, "exact knot", 1e-15, p.F(1), 20)
}

func Test_setRequiresTwoPoints(tst *testing.T) {
	chk.PrintTitle("profile: fewer than two points leaves profile unchanged")
	p := NewConstant(7)
	ok := p.Set([]float64{3}, []float64{99})
	if ok {
		tst.Fatalf("Set should reject a single point")
	}
	chk.Scalar(tst, "unchanged", 1e-15, p.F(1000), 7)
}
