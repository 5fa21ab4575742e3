// SPDX-License-Identifier: MIT
// Package: metisconv/metis
//
// file.go — file-level read/write. WriteFile never leaves a partial file at
// the destination: it writes a sibling temp file, syncs it and renames it.

package metis

import (
	"fmt"
	"os"
	"path/filepath"
)

// outputPerm is the mode of files created by WriteFile.
const outputPerm = 0o644

// WriteFile atomically replaces path with the METIS encoding of g.
//
// Steps:
//  1. Create a temp file in filepath.Dir(path).
//  2. Encode, fsync, close, chmod.
//  3. Rename over path.
//
// Any failure removes the temp file and leaves path untouched.
func WriteFile(path string, g *Graph) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return metisErrorf(methodWriteFile, "%w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = Encode(tmp, g); err != nil {
		return fmt.Errorf("%s %s: %w", methodWriteFile, path, err)
	}
	if err = tmp.Sync(); err != nil {
		return metisErrorf(methodWriteFile, "%w", err)
	}
	if err = tmp.Close(); err != nil {
		return metisErrorf(methodWriteFile, "%w", err)
	}
	if err = os.Chmod(tmpName, outputPerm); err != nil {
		return metisErrorf(methodWriteFile, "%w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return metisErrorf(methodWriteFile, "%w", err)
	}

	return nil
}

// ReadFile opens path, decodes it with Decode and closes it on every exit path.
func ReadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, metisErrorf(methodReadFile, "%w", err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", methodReadFile, path, err)
	}

	return g, nil
}
