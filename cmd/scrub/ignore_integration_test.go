//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestIgnoreInit_CreatesFile verifies 'scrub ignore init'.
func TestIgnoreInit_CreatesFile(t *testing.T) {
	repo := setupTestRepo(t, map[string]string{"app.py": "print('app')\n"})

	if _, _, err := runCommand(t, repo, newIgnoreCmd(), "init"); err != nil {
		t.Fatalf("ignore init failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(repo, ".gitignore"))
	if err != nil {
		t.Fatalf(".gitignore not created: %v", err)
	}
	for _, want := range []string{"__pycache__/", "venv/", ".env"} {
		if !strings.Contains(string(content), want) {
			t.Errorf(".gitignore missing %q", want)
		}
	}

	// Second init without -f refuses
	if _, _, err := runCommand(t, repo, newIgnoreCmd(), "init"); err == nil {
		t.Fatal("ignore init overwrote existing file")
	}
	if _, _, err := runCommand(t, repo, newIgnoreCmd(), "init", "-f"); err != nil {
		t.Fatalf("ignore init -f failed: %v", err)
	}
}

// TestIgnoreInit_Stdout verifies -s prints instead of writing.
func TestIgnoreInit_Stdout(t *testing.T) {
	repo := setupTestRepo(t, map[string]string{"app.py": "print('app')\n"})

	stdout, _, err := runCommand(t, repo, newIgnoreCmd(), "init", "-s")
	if err != nil {
		t.Fatalf("ignore init -s failed: %v", err)
	}
	if !strings.Contains(stdout, "__pycache__/") {
		t.Errorf("template not printed:\n%s", stdout)
	}
	if _, err := os.Stat(filepath.Join(repo, ".gitignore")); err == nil {
		t.Error("-s wrote .gitignore")
	}
}

// TestIgnoreShow verifies 'scrub ignore show'.
func TestIgnoreShow(t *testing.T) {
	repo := setupTestRepo(t, map[string]string{
		"app.py":     "print('app')\n",
		".gitignore": "venv/\n*.log\n",
	})

	stdout, _, err := runCommand(t, repo, newIgnoreCmd(), "show")
	if err != nil {
		t.Fatalf("ignore show failed: %v", err)
	}
	if stdout != "venv/\n*.log\n" {
		t.Errorf("ignore show = %q", stdout)
	}
}

// TestIgnoreShow_Missing verifies show fails without a .gitignore.
func TestIgnoreShow_Missing(t *testing.T) {
	repo := setupTestRepo(t, map[string]string{"app.py": "print('app')\n"})

	if _, _, err := runCommand(t, repo, newIgnoreCmd(), "show"); err == nil {
		t.Fatal("ignore show succeeded without a .gitignore")
	}
}

// TestIgnoreAdd_AppendsOnlyMissing verifies 'scrub ignore add'.
func TestIgnoreAdd_AppendsOnlyMissing(t *testing.T) {
	repo := setupTestRepo(t, map[string]string{
		"app.py":     "print('app')\n",
		".gitignore": "venv/\n",
	})

	if _, _, err := runCommand(t, repo, newIgnoreCmd(), "add", "venv/", "*.tmp"); err != nil {
		t.Fatalf("ignore add failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(repo, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	if got := strings.Count(string(content), "venv/"); got != 1 {
		t.Errorf("venv/ appears %d times, want 1", got)
	}
	if !strings.Contains(string(content), "*.tmp") {
		t.Error("*.tmp not appended")
	}
}

// TestIgnoreAdd_DefaultsWhenNoArgs verifies argument-less add appends
// the missing template patterns.
func TestIgnoreAdd_DefaultsWhenNoArgs(t *testing.T) {
	repo := setupTestRepo(t, map[string]string{
		"app.py":     "print('app')\n",
		".gitignore": "*.log\n",
	})

	if _, _, err := runCommand(t, repo, newIgnoreCmd(), "add"); err != nil {
		t.Fatalf("ignore add failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(repo, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	for _, want := range []string{"*.log", "__pycache__/", "venv/"} {
		if !strings.Contains(string(content), want) {
			t.Errorf(".gitignore missing %q after add", want)
		}
	}
}
