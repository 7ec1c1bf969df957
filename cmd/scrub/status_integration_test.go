//go:build integration

package main

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestStatus_ReportsJunkWithoutMutating verifies status is read-only.
func TestStatus_ReportsJunkWithoutMutating(t *testing.T) {
	repo := setupTestRepo(t, pythonJunkFiles())
	before := trackedFiles(t, repo)

	stdout, _, err := runCommand(t, repo, newStatusCmd())
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}

	for _, want := range []string{"venv", "__pycache__", ".gitignore: missing", "scrub clean"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("status output missing %q:\n%s", want, stdout)
		}
	}

	after := trackedFiles(t, repo)
	if len(before) != len(after) {
		t.Errorf("status changed the index: %d -> %d files", len(before), len(after))
	}
}

// TestStatus_CleanRepo verifies the no-junk message.
func TestStatus_CleanRepo(t *testing.T) {
	repo := setupTestRepo(t, map[string]string{
		"app.py":     "print('app')\n",
		".gitignore": "venv/\n",
	})

	stdout, _, err := runCommand(t, repo, newStatusCmd())
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if !strings.Contains(stdout, "No tracked junk") {
		t.Errorf("status output missing clean message:\n%s", stdout)
	}
	if !strings.Contains(stdout, ".gitignore: present") {
		t.Errorf("status output missing .gitignore line:\n%s", stdout)
	}
}

// TestStatus_JSON verifies the machine-readable report.
func TestStatus_JSON(t *testing.T) {
	repo := setupTestRepo(t, pythonJunkFiles())

	stdout, _, err := runCommand(t, repo, newStatusCmd(), "--json")
	if err != nil {
		t.Fatalf("status --json failed: %v", err)
	}

	var report struct {
		Repo   string `json:"repo"`
		Branch string `json:"branch"`
		Plan   struct {
			Entries []struct {
				Path    string `json:"path"`
				Pattern string `json:"pattern"`
				Files   int    `json:"files"`
			} `json:"entries"`
			IgnoreExists bool `json:"ignore_exists"`
		} `json:"plan"`
	}
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, stdout)
	}

	if report.Branch != "main" {
		t.Errorf("branch = %q, want main", report.Branch)
	}
	if report.Plan.IgnoreExists {
		t.Error("ignore_exists = true, want false")
	}

	paths := make(map[string]bool)
	for _, entry := range report.Plan.Entries {
		paths[entry.Path] = true
	}
	for _, want := range []string{"venv", "__pycache__", "utils/__pycache__"} {
		if !paths[want] {
			t.Errorf("plan entries missing %q, got %v", want, paths)
		}
	}
}
