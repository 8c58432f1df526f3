package locator

import (
	"path/filepath"
)

// canonical returns an absolute, cleaned path with symlinks evaluated for the
// longest existing prefix. Missing trailing elements are kept verbatim.
func canonical(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		abs = filepath.Clean(p)
	}
	if r, err := filepath.EvalSymlinks(abs); err == nil {
		return r
	}
	dir, base := filepath.Split(abs)
	dir = filepath.Clean(dir)
	if dir == abs {
		return abs
	}
	return filepath.Join(canonical(dir), base)
}
