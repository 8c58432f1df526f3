// Package bundle unpacks embedded resources into a private directory that
// serves as the bundle root of a self-contained run.
package bundle

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const tempPattern = "pyhelloworld-bundle-*"

// Extract copies every regular file of fsys into dst, creating directories as
// needed. Existing files are overwritten.
func Extract(fsys fs.FS, dst string) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		out := filepath.Join(dst, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(out, 0o755)
		}
		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		return os.WriteFile(out, b, 0o644)
	})
}

// Unpack extracts fsys into a fresh temporary directory and returns it along
// with a cleanup function that removes it.
func Unpack(fsys fs.FS) (string, func(), error) {
	dir, err := os.MkdirTemp("", tempPattern)
	if err != nil {
		return "", func() {}, fmt.Errorf("bundle: create extraction dir: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(dir) }
	if err := Extract(fsys, dir); err != nil {
		cleanup()
		return "", func() {}, fmt.Errorf("bundle: extract: %w", err)
	}
	return dir, cleanup, nil
}
