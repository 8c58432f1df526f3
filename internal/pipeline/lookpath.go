package pipeline

import (
	"errors"
	"os/exec"
)

// lookPath searches PATH, accepting a result relative to the working
// directory the way a shell would.
func lookPath(name string) (string, error) {
	p, err := exec.LookPath(name)
	if errors.Is(err, exec.ErrDot) {
		return p, nil
	}
	return p, err
}
