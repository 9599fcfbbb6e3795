// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fileutil holds filesystem helpers shared across stages.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// Replaced in tests to reach the failure paths.
var (
	createTemp = os.CreateTemp
	chmod      = os.Chmod
	rename     = os.Rename
)

// AtomicWrite replaces path with data. The data is written to a temp file in
// the same directory and renamed over path, so readers see either the old or
// the new contents, never a partial write. The temp file is removed on
// failure.
func AtomicWrite(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := createTemp(filepath.Dir(path), ".kb-convert-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()
	if writeErr != nil {
		return fmt.Errorf("writing temp file for %s: %w", path, writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("closing temp file for %s: %w", path, closeErr)
	}

	if err := chmod(tmpName, perm); err != nil {
		return fmt.Errorf("setting mode on %s: %w", tmpName, err)
	}
	if err := rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
