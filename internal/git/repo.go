package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// TopLevel returns the absolute path of the repository root for a path.
func TopLevel(ctx context.Context, path string) (string, error) {
	output, err := outputGit(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %v", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// CurrentBranch returns the current branch name
// Returns "(detached)" for detached HEAD state
func CurrentBranch(ctx context.Context, path string) (string, error) {
	output, err := outputGit(ctx, path, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %v", err)
	}
	branch := strings.TrimSpace(string(output))
	if branch == "" {
		return "(detached)", nil
	}
	return branch, nil
}

// RepoName returns the repository name, preferring the origin URL and
// falling back to the folder name on disk.
func RepoName(ctx context.Context, repoPath string) string {
	output, err := outputGit(ctx, repoPath, "remote", "get-url", "origin")
	if err == nil {
		url := strings.TrimSuffix(strings.TrimSpace(string(output)), ".git")
		parts := strings.Split(url, "/")
		if name := parts[len(parts)-1]; name != "" {
			return name
		}
	}
	return filepath.Base(repoPath)
}
