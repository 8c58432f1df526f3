// Package buildinfo exposes version metadata for the binaries. Values are
// overridden at link time via -ldflags, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/pyhelloworld/internal/buildinfo.Version=0.2.0' -X 'github.com/flarebyte/pyhelloworld/internal/buildinfo.Mode=bundled'"
package buildinfo

import "strings"

// ModeBundled is the Mode value stamped into self-contained distribution builds.
const ModeBundled = "bundled"

var (
	// Version is the semantic version or custom string.
	Version = "0.1.0"
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time in RFC3339 or similar (optional).
	Date = ""
	// BuiltBy is an optional builder identifier (optional).
	BuiltBy = ""
	// Mode is empty for source builds and ModeBundled for distribution builds.
	Mode = ""
)

// Summary returns a concise single-line version string.
func Summary() string {
	v := Version
	if v == "" {
		v = "dev"
	}

	parts := make([]string, 0, 2)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if Date != "" {
		parts = append(parts, "date="+Date)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}
