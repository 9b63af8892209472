// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trajectory

import (
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_roundTrip writes a few steps through RawWriter and reads them back via
// ReadHeader/ReadBody, checking the header fields and every position survives
// the float32 round-trip.
func Test_roundTrip(tst *testing.T) {
	chk.PrintTitle("trajectory: round trip")
	dir := tst.TempDir()
	bodyPath := filepath.Join(dir, "body.raw")
	headerPath := filepath.Join(dir, "header.raw")

	n := 3
	frames := [][][2]float64{
		{{0, 0}, {1.5, -2.25}, {3.0, 4.0}},
		{{0.1, 0.2}, {1.6, -2.1}, {3.1, 4.2}},
		{{0.2, 0.4}, {1.7, -1.9}, {3.2, 4.4}},
	}

	w := NewRawWriter(bodyPath, headerPath, n)
	for step, pos := range frames {
		if err := w.Offer(step, pos); err != nil {
			tst.Fatalf("Offer(%d) failed: %v", step, err)
		}
	}
	if err := w.Close(); err != nil {
		tst.Fatalf("Close failed: %v", err)
	}

	hdr, err := ReadHeader(headerPath)
	if err != nil {
		tst.Fatalf("ReadHeader failed: %v", err)
	}
	if hdr.N != int32(n) {
		tst.Errorf("hdr.N = %d, want %d", hdr.N, n)
	}
	if hdr.Steps != int32(len(frames)) {
		tst.Errorf("hdr.Steps = %d, want %d", hdr.Steps, len(frames))
	}

	body, err := ReadBody(bodyPath, int(hdr.N), int(hdr.Steps))
	if err != nil {
		tst.Fatalf("ReadBody failed: %v", err)
	}
	if len(body) != len(frames) {
		tst.Fatalf("len(body) = %d, want %d", len(body), len(frames))
	}
	for s, frame := range body {
		if len(frame) != n {
			tst.Fatalf("step %d: len(frame) = %d, want %d", s, len(frame), n)
		}
		for i, p := range frame {
			want := frames[s][i]
			if float32(want[0]) != p[0] || float32(want[1]) != p[1] {
				tst.Errorf("step %d atom %d: got (%g,%g), want (%g,%g)",
					s, i, p[0], p[1], want[0], want[1])
			}
		}
	}
}

// Test_emptyTrajectory covers n=0: a header with Steps>0 but N=0, and a
// zero-length body.
func Test_emptyTrajectory(tst *testing.T) {
	chk.PrintTitle("trajectory: zero atoms")
	dir := tst.TempDir()
	bodyPath := filepath.Join(dir, "body.raw")
	headerPath := filepath.Join(dir, "header.raw")

	w := NewRawWriter(bodyPath, headerPath, 0)
	for step := 0; step < 2; step++ {
		if err := w.Offer(step, nil); err != nil {
			tst.Fatalf("Offer(%d) failed: %v", step, err)
		}
	}
	if err := w.Close(); err != nil {
		tst.Fatalf("Close failed: %v", err)
	}

	hdr, err := ReadHeader(headerPath)
	if err != nil {
		tst.Fatalf("ReadHeader failed: %v", err)
	}
	if hdr.N != 0 || hdr.Steps != 2 {
		tst.Errorf("hdr = %+v, want {N:0 Steps:2}", hdr)
	}

	body, err := ReadBody(bodyPath, int(hdr.N), int(hdr.Steps))
	if err != nil {
		tst.Fatalf("ReadBody failed: %v", err)
	}
	if len(body) != 2 {
		tst.Fatalf("len(body) = %d, want 2", len(body))
	}
	for s, frame := range body {
		if len(frame) != 0 {
			tst.Errorf("step %d: len(frame) = %d, want 0", s, len(frame))
		}
	}
}
