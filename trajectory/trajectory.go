// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trajectory implements the canonical on-disk trajectory sink (spec
// §6): a sequence of raw 2D position arrays written once per step, in order.
// Unlike the original Python format (raw arrays with no length prefix),
// RawWriter also writes a small header file, separate from the body,
// recording N and the step count — spec §6
// explicitly leaves this an external-interface decision, and flags the
// headerless format as fragile ("reading back requires knowing N and number
// of steps separately").
package trajectory

import (
	"bytes"
	"encoding/binary"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Header records the shape needed to parse a trajectory body: N atoms and
// the number of recorded steps.
type Header struct {
	N     int32
	Steps int32
}

// RawWriter is an append-only writer satisfying integrator.Sink: Offer appends one step's positions, in order, as raw
// little-endian float32 pairs. Close writes the header.
type RawWriter struct {
	bodyPath   string
	headerPath string
	n          int
	steps      int
	body       bytes.Buffer
}

// NewRawWriter opens a writer for n atoms; bodyPath receives the raw
// position stream, headerPath the (N, Steps) header, written on Close.
func NewRawWriter(bodyPath, headerPath string, n int) *RawWriter {
	if n < 0 {
		chk.Panic("trajectory: n must be >= 0, got %d", n)
	}
	return &RawWriter{bodyPath: bodyPath, headerPath: headerPath, n: n}
}

// Offer appends one step's positions. step is accepted for Sink-interface
// compatibility but not itself encoded (order is implicit in append order,
// per spec §6's "append-only... preserve ordering").
func (w *RawWriter) Offer(step int, pos [][2]float64) error {
	if len(pos) != w.n {
		chk.Panic("trajectory: expected %d atoms, got %d", w.n, len(pos))
	}
	for _, p := range pos {
		binary.Write(&w.body, binary.LittleEndian, float32(p[0]))
		binary.Write(&w.body, binary.LittleEndian, float32(p[1]))
	}
	w.steps++
	return nil
}

// Close flushes the body and header files to disk.
func (w *RawWriter) Close() error {
	io.WriteFileV(w.bodyPath, &w.body)
	var hdr bytes.Buffer
	binary.Write(&hdr, binary.LittleEndian, int32(w.n))
	binary.Write(&hdr, binary.LittleEndian, int32(w.steps))
	io.WriteFileV(w.headerPath, &hdr)
	return nil
}

// ReadHeader reads back a header file written by RawWriter.Close.
func ReadHeader(headerPath string) (Header, error) {
	buf, err := io.ReadFile(headerPath)
	if err != nil {
		return Header{}, err
	}
	var hdr Header
	r := bytes.NewReader(buf)
	if err := binary.Read(r, binary.LittleEndian, &hdr.N); err != nil {
		return Header{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &hdr.Steps); err != nil {
		return Header{}, err
	}
	return hdr, nil
}

// ReadBody reads back the raw position stream given a known N and step
// count, returning one [][2]float32 slice per step.
func ReadBody(bodyPath string, n, steps int) ([][][2]float32, error) {
	buf, err := io.ReadFile(bodyPath)
	if err != nil {
		return nil, err
	}
	want := n * steps * 2 * 4
	if len(buf) < want {
		chk.Panic("trajectory: body file too short: have %d bytes, want %d", len(buf), want)
	}
	r := bytes.NewReader(buf)
	out := make([][][2]float32, steps)
	for s := 0; s < steps; s++ {
		frame := make([][2]float32, n)
		for i := 0; i < n; i++ {
			var x, y float32
			binary.Read(r, binary.LittleEndian, &x)
			binary.Read(r, binary.LittleEndian, &y)
			frame[i] = [2]float32{x, y}
		}
		out[s] = frame
	}
	return out, nil
}
