//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scrub.sh/scrub/internal/config"
)

// TestClean_UntracksJunkAndCreatesGitignore verifies the full clean run.
//
// Scenario: User runs `scrub clean` in a repo with committed venv and
// __pycache__ directories and no .gitignore.
// Expected: Junk leaves the index but stays on disk, a .gitignore is
// created, all changes are staged, and follow-up commands are suggested.
func TestClean_UntracksJunkAndCreatesGitignore(t *testing.T) {
	repo := setupTestRepo(t, pythonJunkFiles())

	stdout, _, err := runCommand(t, repo, newCleanCmd())
	if err != nil {
		t.Fatalf("clean failed: %v", err)
	}

	for _, prefix := range []string{"venv/", "__pycache__/", "utils/__pycache__/"} {
		if hasTrackedPrefix(t, repo, prefix) {
			t.Errorf("%s still tracked after clean", prefix)
		}
	}
	if !hasTrackedPrefix(t, repo, "app.py") {
		t.Error("app.py dropped from the index")
	}

	// Files stay on disk
	for _, path := range []string{"venv/bin/python", "utils/__pycache__/h.pyc"} {
		if _, err := os.Stat(filepath.Join(repo, path)); err != nil {
			t.Errorf("%s removed from disk: %v", path, err)
		}
	}

	if _, err := os.Stat(filepath.Join(repo, ".gitignore")); err != nil {
		t.Errorf(".gitignore not created: %v", err)
	}

	// Changes are staged
	staged := runGitCommand(t, repo, "diff", "--cached", "--name-only")
	if strings.TrimSpace(staged) == "" {
		t.Error("no staged changes after clean")
	}

	if !strings.Contains(stdout, "Suggested next steps:") {
		t.Errorf("missing suggestions in output:\n%s", stdout)
	}
	if !strings.Contains(stdout, "git commit -m") {
		t.Errorf("missing commit suggestion in output:\n%s", stdout)
	}
}

// TestClean_DryRunChangesNothing verifies -n previews without mutating.
func TestClean_DryRunChangesNothing(t *testing.T) {
	repo := setupTestRepo(t, pythonJunkFiles())
	before := trackedFiles(t, repo)

	stdout, _, err := runCommand(t, repo, newCleanCmd(), "--dry-run")
	if err != nil {
		t.Fatalf("clean -n failed: %v", err)
	}

	if !strings.Contains(stdout, "Would untrack") {
		t.Errorf("dry-run output missing preview:\n%s", stdout)
	}
	if _, err := os.Stat(filepath.Join(repo, ".gitignore")); err == nil {
		t.Error("dry-run created .gitignore")
	}
	after := trackedFiles(t, repo)
	if len(before) != len(after) {
		t.Errorf("dry-run changed the index: %d -> %d files", len(before), len(after))
	}
}

// TestClean_Idempotent verifies a second run is a no-op.
func TestClean_Idempotent(t *testing.T) {
	repo := setupTestRepo(t, pythonJunkFiles())

	if _, _, err := runCommand(t, repo, newCleanCmd()); err != nil {
		t.Fatalf("first clean failed: %v", err)
	}
	ignoreBefore, err := os.ReadFile(filepath.Join(repo, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}

	if _, _, err := runCommand(t, repo, newCleanCmd()); err != nil {
		t.Fatalf("second clean failed: %v", err)
	}
	ignoreAfter, err := os.ReadFile(filepath.Join(repo, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	if string(ignoreBefore) != string(ignoreAfter) {
		t.Error("second clean rewrote .gitignore")
	}
}

// TestClean_ExistingGitignoreUntouched verifies clean never edits an
// existing .gitignore.
func TestClean_ExistingGitignoreUntouched(t *testing.T) {
	files := pythonJunkFiles()
	files[".gitignore"] = "*.log\n"
	repo := setupTestRepo(t, files)

	if _, _, err := runCommand(t, repo, newCleanCmd()); err != nil {
		t.Fatalf("clean failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(repo, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	if string(content) != "*.log\n" {
		t.Errorf(".gitignore modified: %q", content)
	}
}

// TestClean_NoStageSkipsStaging verifies --no-stage.
func TestClean_NoStageSkipsStaging(t *testing.T) {
	repo := setupTestRepo(t, pythonJunkFiles())

	if _, _, err := runCommand(t, repo, newCleanCmd(), "--no-stage"); err != nil {
		t.Fatalf("clean --no-stage failed: %v", err)
	}

	// Untracking itself stages removals, but the new .gitignore must
	// not be picked up without the stage step
	staged := runGitCommand(t, repo, "diff", "--cached", "--name-only")
	if strings.Contains(staged, ".gitignore") {
		t.Error(".gitignore staged despite --no-stage")
	}
}

// TestClean_NotARepo verifies the repository precondition.
func TestClean_NotARepo(t *testing.T) {
	dir := resolvePath(t, t.TempDir())

	_, _, err := runCommand(t, dir, newCleanCmd())
	if err == nil {
		t.Fatal("clean outside a repo succeeded")
	}
	if !strings.Contains(err.Error(), "not a git repository") {
		t.Errorf("error = %v, want repository precondition failure", err)
	}
}

// TestClean_RunsMatchingHook verifies post-clean hooks fire.
func TestClean_RunsMatchingHook(t *testing.T) {
	repo := setupTestRepo(t, pythonJunkFiles())

	c := config.Default()
	c.Hooks.Hooks = map[string]config.Hook{
		"marker": {
			Command: "touch {repo-dir}/hook-ran",
			On:      []string{"clean"},
		},
	}
	withConfig(t, c)

	if _, _, err := runCommand(t, repo, newCleanCmd()); err != nil {
		t.Fatalf("clean failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(repo, "hook-ran")); err != nil {
		t.Errorf("hook did not run: %v", err)
	}
}

// TestClean_NoHookSkipsHooks verifies --no-hook.
func TestClean_NoHookSkipsHooks(t *testing.T) {
	repo := setupTestRepo(t, pythonJunkFiles())

	c := config.Default()
	c.Hooks.Hooks = map[string]config.Hook{
		"marker": {
			Command: "touch {repo-dir}/hook-ran",
			On:      []string{"clean"},
		},
	}
	withConfig(t, c)

	if _, _, err := runCommand(t, repo, newCleanCmd(), "--no-hook"); err != nil {
		t.Fatalf("clean --no-hook failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(repo, "hook-ran")); err == nil {
		t.Error("hook ran despite --no-hook")
	}
}

// TestClean_UnknownHookFailsBeforeMutation verifies an unknown --hook
// name aborts before the index is touched.
func TestClean_UnknownHookFailsBeforeMutation(t *testing.T) {
	repo := setupTestRepo(t, pythonJunkFiles())
	before := trackedFiles(t, repo)

	_, _, err := runCommand(t, repo, newCleanCmd(), "--hook", "nope")
	if err == nil {
		t.Fatal("clean with unknown hook succeeded")
	}

	after := trackedFiles(t, repo)
	if len(before) != len(after) {
		t.Error("index mutated despite hook resolution failure")
	}
}

// TestClean_NamedHookFailureIsError verifies an explicitly named hook
// that fails surfaces as a command error.
func TestClean_NamedHookFailureIsError(t *testing.T) {
	repo := setupTestRepo(t, pythonJunkFiles())

	c := config.Default()
	c.Hooks.Hooks = map[string]config.Hook{
		"broken": {Command: "exit 3"},
	}
	withConfig(t, c)

	_, _, err := runCommand(t, repo, newCleanCmd(), "--hook", "broken")
	if err == nil {
		t.Fatal("clean with failing named hook succeeded")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error = %v, want failing hook named", err)
	}
}

// TestClean_AutomaticHookFailureIsWarning verifies a failing on=["clean"]
// hook warns without failing the command.
func TestClean_AutomaticHookFailureIsWarning(t *testing.T) {
	repo := setupTestRepo(t, pythonJunkFiles())

	c := config.Default()
	c.Hooks.Hooks = map[string]config.Hook{
		"broken": {
			Command: "exit 3",
			On:      []string{"clean"},
		},
	}
	withConfig(t, c)

	_, stderr, err := runCommand(t, repo, newCleanCmd())
	if err != nil {
		t.Fatalf("clean failed: %v", err)
	}
	if !strings.Contains(stderr, "Warning: hook") {
		t.Errorf("stderr = %q, want hook failure warning", stderr)
	}
}
