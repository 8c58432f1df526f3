package pipeline

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
)

var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)`)

// MinCompilerVersion is the oldest accepted installer compiler release.
var MinCompilerVersion = Version{Major: 3, Minor: 11}

// Version is a <major>.<minor> tool version.
type Version struct {
	Major int
	Minor int
}

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// Less compares component-wise.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	return v.Minor < o.Minor
}

// ParseVersion extracts the first <major>.<minor> pattern from s.
func ParseVersion(s string) (Version, bool) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return Version{}, false
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, false
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, false
	}
	return Version{Major: major, Minor: minor}, true
}

// QueryVersion runs the tool with its version flag and parses combined output.
// The exit code is ignored: some releases print the version and exit non-zero.
func QueryVersion(ctx context.Context, r CommandRunner, tool, flag string) (Version, bool) {
	res, err := r.Run(ctx, Command{Program: tool, Args: []string{flag}})
	if err != nil {
		return Version{}, false
	}
	return ParseVersion(res.Combined())
}

// GateVersion returns a ToolTooOld error when v is below min.
func GateVersion(name string, v, min Version) error {
	if !v.Less(min) {
		return nil
	}
	return &Error{
		Kind:    ErrToolTooOld,
		Step:    StepCheckVersion,
		Message: fmt.Sprintf("%s version %s is too old", name, v),
		Hints: []string{
			"Minimum required version: " + min.String(),
			"Please upgrade NSIS from " + nsisDownloadURL,
		},
	}
}
