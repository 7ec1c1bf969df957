package git

import (
	"context"
	"fmt"
	"strings"
)

// ListTracked returns all paths currently in the index, relative to the
// repository root. NUL-delimited output keeps non-ASCII paths literal
// instead of C-quoted.
func ListTracked(ctx context.Context, dir string) ([]string, error) {
	output, err := outputGit(ctx, dir, "ls-files", "-z")
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked files: %v", err)
	}

	var paths []string
	for _, entry := range strings.Split(string(output), "\x00") {
		if entry != "" {
			paths = append(paths, entry)
		}
	}
	return paths, nil
}

// IsTracked returns true if the given path is in the index.
func IsTracked(ctx context.Context, dir, path string) bool {
	err := runGit(ctx, dir, "ls-files", "--error-unmatch", "--", path)
	return err == nil
}

// Untrack removes a path from the index recursively while keeping it on
// disk. Paths that are not tracked are treated as success, not failure.
func Untrack(ctx context.Context, dir, path string) error {
	if err := runGit(ctx, dir, "rm", "-r", "--cached", "--ignore-unmatch", "--quiet", "--", path); err != nil {
		return fmt.Errorf("failed to untrack %s: %v", path, err)
	}
	return nil
}

// StageAll stages all working tree changes, respecting ignore rules.
func StageAll(ctx context.Context, dir string) error {
	if err := runGit(ctx, dir, "add", "-A"); err != nil {
		return fmt.Errorf("failed to stage changes: %v", err)
	}
	return nil
}

// Status returns the human-readable `git status` output.
func Status(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "status")
	if err != nil {
		return "", fmt.Errorf("failed to get status: %v", err)
	}
	return string(output), nil
}

// StatusPorcelain returns machine-readable status output.
// Empty string means a clean working tree.
func StatusPorcelain(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "status", "--porcelain")
	if err != nil {
		return "", fmt.Errorf("failed to get status: %v", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// HasStagedChanges returns true if the index differs from HEAD.
func HasStagedChanges(ctx context.Context, dir string) bool {
	// diff --cached --quiet exits 1 when there are staged changes
	err := runGit(ctx, dir, "diff", "--cached", "--quiet")
	return err != nil
}
