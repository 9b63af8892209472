// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package archive implements the snapshot archive contract of spec §6: a
// directory holding `positions`, `velocities`, `parameters` and optionally
// `state_functions`, with the parameter keys normative per spec §3. Write
// does not produce a `position_history` file; the per-step trajectory is
// written only through trajectory.RawWriter, outside the archive directory. Grounded on gofem/inp's plain-text parameter persistence and
// gosl/io's file-writing conventions (io.Ff into a bytes.Buffer, then
// io.WriteFileV), as used in gofem/tools/GenVtu.go.
package archive

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/open-moldyn/moldyn/integrator"
	"github.com/open-moldyn/moldyn/model"
)

// Write persists a run's final state into dir (created if absent): the
// textual parameter dictionary, final positions/velocities, and — if o is
// non-nil — the time-series state functions.
func Write(dir string, m *model.Model, o *integrator.Integrator) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	writeParameters(filepath.Join(dir, "parameters"), m)
	writeVectors(filepath.Join(dir, "positions"), m.Pos)
	writeVectors(filepath.Join(dir, "velocities"), m.Vel)
	if o != nil {
		writeStateFunctions(filepath.Join(dir, "state_functions"), o)
	}
	return nil
}

// writeParameters encodes the model's normative key set (spec §3) as a flat
// key=value text dictionary, one per line.
func writeParameters(path string, m *model.Model) {
	var buf bytes.Buffer
	io.Ff(&buf, "N=%d\n", m.N())
	io.Ff(&buf, "N_A=%d\n", m.NA)
	io.Ff(&buf, "x_a=%.17g\n", m.XA())
	io.Ff(&buf, "epsilon_a=%.17g\n", m.A.Epsilon)
	io.Ff(&buf, "sigma_a=%.17g\n", m.A.Sigma)
	io.Ff(&buf, "m_a=%.17g\n", m.A.Mass)
	io.Ff(&buf, "rcut_fact_a=%.17g\n", m.A.RcutFact)
	io.Ff(&buf, "epsilon_b=%.17g\n", m.B.Epsilon)
	io.Ff(&buf, "sigma_b=%.17g\n", m.B.Sigma)
	io.Ff(&buf, "m_b=%.17g\n", m.B.Mass)
	io.Ff(&buf, "rcut_fact_b=%.17g\n", m.B.RcutFact)
	io.Ff(&buf, "epsilon_ab=%.17g\n", m.AB.Epsilon)
	io.Ff(&buf, "sigma_ab=%.17g\n", m.AB.Sigma)
	io.Ff(&buf, "x_lim_inf=%.17g\n", m.XLimInf())
	io.Ff(&buf, "x_lim_sup=%.17g\n", m.XLimSup())
	io.Ff(&buf, "y_lim_inf=%.17g\n", m.YLimInf())
	io.Ff(&buf, "y_lim_sup=%.17g\n", m.YLimSup())
	io.Ff(&buf, "x_periodic=%d\n", boolToInt(m.XPeriodic))
	io.Ff(&buf, "y_periodic=%d\n", boolToInt(m.YPeriodic))
	io.Ff(&buf, "dt=%.17g\n", m.Dt())
	io.Ff(&buf, "up_zone_lower_limit=%.17g\n", m.UpZoneLowerLimit)
	io.Ff(&buf, "up_apply_force_x=%d\n", boolToInt(m.UpApplyForceX))
	io.Ff(&buf, "up_apply_force_y=%d\n", boolToInt(m.UpApplyForceY))
	io.Ff(&buf, "low_zone_upper_limit=%.17g\n", m.LowZoneUpperLimit)
	io.Ff(&buf, "freeze_enabled=%d\n", boolToInt(m.FreezeEnabled))
	io.Ff(&buf, "gamma=%.17g\n", m.Gamma)
	io.WriteFileV(path, &buf)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// writeVectors encodes an [N][2]float64 array as plain-text rows "x y".
func writeVectors(path string, v [][2]float64) {
	var buf bytes.Buffer
	for _, row := range v {
		io.Ff(&buf, "%.17g %.17g\n", row[0], row[1])
	}
	io.WriteFileV(path, &buf)
}

// writeStateFunctions encodes the time-series record, one named row per
// series, matching spec §6's "state_functions (the time-series dictionary:
// T, T_target, EC, EP, ET, bonds, time, iters, T_ramps, Fx_ramps, Fy_ramps)".
func writeStateFunctions(path string, o *integrator.Integrator) {
	var buf bytes.Buffer
	writeSeries(&buf, "T", o.Series.T)
	writeSeries(&buf, "T_target", o.Series.TTarget)
	writeSeries(&buf, "EC", o.Series.EC)
	writeSeries(&buf, "EP", o.Series.EP)
	writeSeries(&buf, "ET", o.Series.ET)
	writeSeries(&buf, "bonds", o.Series.Bonds)
	writeSeries(&buf, "time", o.Series.Time)
	writeIntSeries(&buf, "iters", o.Series.Iters)

	tT, tV := o.TempProfile.Points()
	writeRamp(&buf, "T_ramps", tT, tV)
	fxT, fxV := o.ForceProfileX.Points()
	writeRamp(&buf, "Fx_ramps", fxT, fxV)
	fyT, fyV := o.ForceProfileY.Points()
	writeRamp(&buf, "Fy_ramps", fyT, fyV)

	io.WriteFileV(path, &buf)
}

func writeSeries(buf *bytes.Buffer, name string, vals []float64) {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatFloat(v, 'g', 17, 64)
	}
	io.Ff(buf, "%s=%s\n", name, strings.Join(parts, ","))
}

func writeIntSeries(buf *bytes.Buffer, name string, vals []int) {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	io.Ff(buf, "%s=%s\n", name, strings.Join(parts, ","))
}

func writeRamp(buf *bytes.Buffer, name string, t, v []float64) {
	tParts := make([]string, len(t))
	for i, x := range t {
		tParts[i] = strconv.FormatFloat(x, 'g', 17, 64)
	}
	vParts := make([]string, len(v))
	for i, x := range v {
		vParts[i] = strconv.FormatFloat(x, 'g', 17, 64)
	}
	io.Ff(buf, "%s.t=%s\n", name, strings.Join(tParts, ","))
	io.Ff(buf, "%s.v=%s\n", name, strings.Join(vParts, ","))
}

// ReadParameters reads back a flat key=value parameters file into a map of
// raw string values (callers parse the keys they need; the key set is
// normative, per spec §3, but the type of each value varies).
func ReadParameters(path string) (map[string]string, error) {
	buf, err := io.ReadFile(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	for _, line := range strings.Split(string(buf), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idx := strings.IndexByte(line, '=')
		if idx < 0 {
			chk.Panic("archive: malformed parameter line %q", line)
		}
		out[line[:idx]] = line[idx+1:]
	}
	return out, nil
}
