package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()
	cfg := Default()
	if !cfg.StageEnabled() {
		t.Error("Default() StageEnabled() = false, want true")
	}
	if len(cfg.JunkPatterns()) != len(DefaultJunkPatterns) {
		t.Errorf("Default() JunkPatterns() = %v, want built-ins only", cfg.JunkPatterns())
	}
}

func TestParse_FullConfig(t *testing.T) {
	t.Parallel()

	data := []byte(`
[junk]
patterns = ["node_modules", "*.tmp"]

[ignore]
patterns = ["*.parquet"]

[clean]
stage = false

[hooks.commit]
command = "git commit -m 'cleanup'"
description = "Commit the cleanup"
on = ["clean"]

[hooks.notify]
command = "notify-send done"
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	patterns := cfg.JunkPatterns()
	set := make(map[string]bool)
	for _, p := range patterns {
		set[p] = true
	}
	if !set["venv"] || !set["node_modules"] || !set["*.tmp"] {
		t.Errorf("JunkPatterns() = %v, want built-ins plus extras", patterns)
	}

	if cfg.StageEnabled() {
		t.Error("StageEnabled() = true, want false (stage = false)")
	}

	if len(cfg.Ignore.Patterns) != 1 || cfg.Ignore.Patterns[0] != "*.parquet" {
		t.Errorf("Ignore.Patterns = %v, want [*.parquet]", cfg.Ignore.Patterns)
	}

	commit, ok := cfg.Hooks.Hooks["commit"]
	if !ok {
		t.Fatal("hooks missing 'commit'")
	}
	if commit.Command != "git commit -m 'cleanup'" {
		t.Errorf("commit hook command = %q", commit.Command)
	}
	if len(commit.On) != 1 || commit.On[0] != "clean" {
		t.Errorf("commit hook on = %v, want [clean]", commit.On)
	}

	notify, ok := cfg.Hooks.Hooks["notify"]
	if !ok {
		t.Fatal("hooks missing 'notify'")
	}
	if len(notify.On) != 0 {
		t.Errorf("notify hook on = %v, want empty (explicit --hook only)", notify.On)
	}
}

func TestParse_InvalidToml(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte("junk = [broken"))
	if err == nil {
		t.Error("Parse(invalid toml) = nil error, want error")
	}
}

func TestParse_InvalidHookTrigger(t *testing.T) {
	t.Parallel()
	data := []byte(`
[hooks.bad]
command = "echo hi"
on = ["push"]
`)
	_, err := Parse(data)
	if err == nil {
		t.Fatal("Parse(invalid trigger) = nil error, want error")
	}
	if !strings.Contains(err.Error(), "push") {
		t.Errorf("error %q should name the invalid trigger", err)
	}
}

func TestParse_HookWithoutCommandSkipped(t *testing.T) {
	t.Parallel()
	data := []byte(`
[hooks.empty]
description = "no command here"
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, ok := cfg.Hooks.Hooks["empty"]; ok {
		t.Error("hook without command should be skipped")
	}
}

func TestJunkPatterns_Dedupe(t *testing.T) {
	t.Parallel()
	cfg := Config{Junk: JunkConfig{Patterns: []string{"venv", "node_modules", "node_modules"}}}
	patterns := cfg.JunkPatterns()

	counts := make(map[string]int)
	for _, p := range patterns {
		counts[p]++
	}
	if counts["venv"] != 1 {
		t.Errorf("venv appears %d times, want 1", counts["venv"])
	}
	if counts["node_modules"] != 1 {
		t.Errorf("node_modules appears %d times, want 1", counts["node_modules"])
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom(missing) error = %v, want nil", err)
	}
	if !cfg.StageEnabled() {
		t.Error("missing config should yield defaults")
	}
}

func TestLoadFrom_File(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[clean]\nstage = false\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.StageEnabled() {
		t.Error("StageEnabled() = true, want false")
	}
}

func TestDefaultConfigTemplate_Parses(t *testing.T) {
	t.Parallel()
	// The template we write on `config init` must itself be valid
	if _, err := Parse([]byte(DefaultConfigTemplate)); err != nil {
		t.Errorf("DefaultConfigTemplate does not parse: %v", err)
	}
}
