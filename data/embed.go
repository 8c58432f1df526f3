// Package data carries the greeting data files. Distribution builds extract
// the embedded copy at start-up; checkouts read the files in place.
package data

import "embed"

// FS holds every data file shipped with the program.
//
//go:embed *.txt
var FS embed.FS
