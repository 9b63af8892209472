// Copyright 2026 The open-moldyn Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
)

// Zip packs the archive directory dir into a single zip file at zipPath, for
// transport (spec §6: "the directory may be zipped for transport"). Wired
// behind cmd/moldyn's -zip flag. This is the one place the standard
// library's archive/zip is the obviously right tool: no example repo in this
// module's corpus implements directory packaging, and archive/zip is the
// idiomatic, complete solution — wrapping it in a third-party library would
// add nothing.
func Zip(dir, zipPath string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	out, err := os.Create(zipPath)
	if err != nil {
		return err
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	defer zw.Close()

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := addZipEntry(zw, dir, e.Name()); err != nil {
			return err
		}
	}
	return nil
}

func addZipEntry(zw *zip.Writer, dir, name string) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
