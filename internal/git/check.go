package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = fmt.Errorf("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that git is available in PATH
func CheckGit() error {
	_, err := exec.LookPath("git")
	if err != nil {
		return ErrGitNotFound
	}
	return nil
}

// IsRepoRoot returns true if the given directory contains a .git entry.
// Both a .git directory (main repo) and a .git file (linked worktree) count.
func IsRepoRoot(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}

// RequireRepo verifies that dir is the root of a git repository.
// Returns a diagnostic error if it is not; no filesystem mutation happens.
func RequireRepo(dir string) error {
	if !IsRepoRoot(dir) {
		return fmt.Errorf("not a git repository: %s (no .git directory found)", dir)
	}
	return nil
}

// IsInsideRepo returns true if the given path is inside a git repository
func IsInsideRepo(ctx context.Context, path string) bool {
	err := runGit(ctx, path, "rev-parse", "--is-inside-work-tree")
	return err == nil
}
