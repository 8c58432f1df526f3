package config

import (
	"sort"
	"strings"
)

// CurrentConfigVersion is written by tooling and accepted by Load.
const CurrentConfigVersion = "1"

var supportedConfigVersions = map[string]struct{}{
	CurrentConfigVersion: {},
}

// IsSupportedConfigVersion reports whether v can be loaded.
func IsSupportedConfigVersion(v string) bool {
	_, ok := supportedConfigVersions[v]
	return ok
}

// SupportedConfigVersionsCSV lists the supported versions for error messages.
func SupportedConfigVersionsCSV() string {
	out := make([]string, 0, len(supportedConfigVersions))
	for v := range supportedConfigVersions {
		out = append(out, v)
	}
	sort.Strings(out)
	return strings.Join(out, ", ")
}
