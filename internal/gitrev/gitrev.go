// Package gitrev reports the source revision of a checkout.
package gitrev

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNoRepository is returned when dir is not inside a git checkout.
var ErrNoRepository = errors.New("gitrev: not a git repository")

// Head returns the commit hash checked out in the repository containing dir.
func Head(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", ErrNoRepository
		}
		return "", fmt.Errorf("gitrev: open: %w", err)
	}
	ref, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", fmt.Errorf("gitrev: no commits yet: %w", err)
		}
		return "", fmt.Errorf("gitrev: head: %w", err)
	}
	return ref.Hash().String(), nil
}

// HeadOrEmpty is Head with errors mapped to "".
func HeadOrEmpty(dir string) string {
	h, err := Head(dir)
	if err != nil {
		return ""
	}
	return h
}
