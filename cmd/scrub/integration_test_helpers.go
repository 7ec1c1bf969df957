//go:build integration

package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"scrub.sh/scrub/internal/config"
	"scrub.sh/scrub/internal/log"
	"scrub.sh/scrub/internal/output"
)

// resolvePath resolves symlinks in a path.
// This is needed on macOS where /var is a symlink to /private/var.
func resolvePath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("failed to resolve path %s: %v", path, err)
	}
	return resolved
}

// runGitCommand runs a git command in dir and returns its output.
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run git %v: %v\n%s", args, err, out)
	}
	return string(out)
}

// setupTestRepo creates a git repo with the given files committed.
// Returns the absolute path to the created repo (with symlinks resolved).
func setupTestRepo(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := resolvePath(t, t.TempDir())
	repoPath := filepath.Join(dir, "repo")
	if err := os.MkdirAll(repoPath, 0755); err != nil {
		t.Fatalf("failed to create repo dir: %v", err)
	}

	runGitCommand(t, repoPath, "init", "-b", "main")
	runGitCommand(t, repoPath, "config", "user.email", "test@test.com")
	runGitCommand(t, repoPath, "config", "user.name", "Test User")
	runGitCommand(t, repoPath, "config", "commit.gpgsign", "false")

	for path, content := range files {
		full := filepath.Join(repoPath, path)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", path, err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	runGitCommand(t, repoPath, "add", "-A")
	runGitCommand(t, repoPath, "commit", "-m", "Initial commit")

	return repoPath
}

// pythonJunkFiles is a typical Python project with committed junk.
func pythonJunkFiles() map[string]string {
	return map[string]string{
		"app.py":                  "print('app')\n",
		"utils/helpers.py":        "def helper(): pass\n",
		"venv/bin/python":         "binary\n",
		"__pycache__/app.pyc":     "cache\n",
		"utils/__pycache__/h.pyc": "cache\n",
	}
}

// runCommand executes a command the way Execute wires it: config and
// target dir via package globals, logger and printer on the context.
// Returns captured stdout and stderr.
func runCommand(t *testing.T, dir string, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	oldCfg, oldDir := cfg, dirFlag
	t.Cleanup(func() {
		cfg, dirFlag = oldCfg, oldDir
	})

	if cfg == nil {
		c := config.Default()
		cfg = &c
	}
	dirFlag = dir

	var outBuf, errBuf bytes.Buffer
	ctx := log.WithLogger(context.Background(), log.New(&errBuf, false, false))
	ctx = output.WithPrinter(ctx, &outBuf)

	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(&errBuf)

	err := cmd.ExecuteContext(ctx)
	return outBuf.String(), errBuf.String(), err
}

// withConfig sets the package config for the duration of the test.
func withConfig(t *testing.T, c config.Config) {
	t.Helper()
	old := cfg
	cfg = &c
	t.Cleanup(func() { cfg = old })
}

// trackedFiles returns the repo's tracked paths.
func trackedFiles(t *testing.T, repoPath string) []string {
	t.Helper()
	out := strings.TrimSpace(runGitCommand(t, repoPath, "ls-files"))
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// hasTrackedPrefix reports whether any tracked path starts with prefix.
func hasTrackedPrefix(t *testing.T, repoPath, prefix string) bool {
	t.Helper()
	for _, path := range trackedFiles(t, repoPath) {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
