package main

import (
	"os"

	"github.com/flarebyte/pyhelloworld/cmd/build-installer/root"
	"github.com/flarebyte/pyhelloworld/internal/console"
)

func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		os.Exit(console.Report(os.Stderr, err, console.FailMarker))
	}
}
