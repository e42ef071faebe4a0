package git

import (
	"errors"
	"fmt"
	"strings"
)

const (
	refsHeadsPrefix = "refs/heads/"
	cmdRevParse     = "rev-parse"
	flagVerify      = "--verify"
)

// RepoRoot returns the absolute path to the current worktree's root.
func RepoRoot(r Runner) (string, error) {
	out, err := r.Run(cmdRevParse, "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	return out, nil
}

// DefaultBranch detects the default branch (main or master).
func DefaultBranch(r Runner) (string, error) {
	// Try symbolic-ref for origin/HEAD first
	out, err := r.Run("symbolic-ref", "refs/remotes/origin/HEAD")
	if err == nil {
		// refs/remotes/origin/main → main
		parts := strings.Split(out, "/")
		return parts[len(parts)-1], nil
	}

	// Fall back: check if main exists
	if _, err := r.Run(cmdRevParse, flagVerify, refsHeadsPrefix+"main"); err == nil {
		return "main", nil
	}

	// Fall back: check if master exists
	if _, err := r.Run(cmdRevParse, flagVerify, refsHeadsPrefix+"master"); err == nil {
		return "master", nil
	}

	return "", errors.New("could not detect default branch (no main or master found)")
}

// RevParse resolves a ref to a full commit sha.
func RevParse(r Runner, ref string) (string, error) {
	return r.Run(cmdRevParse, ref)
}

// RemoteURL returns the fetch URL configured for a remote.
func RemoteURL(r Runner, remote string) (string, error) {
	return r.Run("remote", "get-url", remote)
}

// ConfigValue reads a git config key. Returns "" without error when the
// key is unset.
func ConfigValue(r Runner, dir, key string) (string, error) {
	out, err := r.RunInDir(dir, "config", "--get", key)
	if err != nil {
		// git config exits 1 for unset keys; treat as absent
		return "", nil
	}
	return out, nil
}
