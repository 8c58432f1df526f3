package main

import (
	"os"

	"github.com/flarebyte/pyhelloworld/cmd/pyhelloworld/root"
	"github.com/flarebyte/pyhelloworld/internal/console"
)

func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		// One message line, hint lines after it. No usage, no stack traces.
		os.Exit(console.Report(os.Stderr, err, ""))
	}
}
