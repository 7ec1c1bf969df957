package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Hook defines a post-clean hook
type Hook struct {
	Command     string   `toml:"command"`
	Description string   `toml:"description"`
	On          []string `toml:"on"` // commands this hook runs on (empty = only via --hook)
}

// HooksConfig holds hook-related configuration
type HooksConfig struct {
	Hooks map[string]Hook `toml:"-"` // parsed from [hooks.NAME] sections
}

// JunkConfig holds junk detection configuration
type JunkConfig struct {
	Patterns []string `toml:"patterns"` // extra patterns, added to built-ins
}

// IgnoreConfig holds .gitignore template configuration
type IgnoreConfig struct {
	Patterns []string `toml:"patterns"` // extra patterns appended to the template
}

// CleanConfig holds clean-related configuration
type CleanConfig struct {
	Stage *bool `toml:"stage"` // stage changes after untracking (default true)
}

// Config holds the scrub configuration
type Config struct {
	Junk   JunkConfig   `toml:"junk"`
	Ignore IgnoreConfig `toml:"ignore"`
	Clean  CleanConfig  `toml:"clean"`
	Hooks  HooksConfig  `toml:"-"` // custom parsing needed
}

// DefaultJunkPatterns are the directory and file patterns clean untracks.
// A bare name matches any path segment (so "__pycache__" catches
// utils/__pycache__ too); glob patterns match file basenames.
var DefaultJunkPatterns = []string{
	"venv",
	".venv",
	"env",
	"ENV",
	"__pycache__",
	"*.pyc",
}

// Default returns the default configuration
func Default() Config {
	return Config{}
}

// JunkPatterns returns the effective junk pattern set: built-ins plus any
// configured extras, deduplicated in order.
func (c *Config) JunkPatterns() []string {
	seen := make(map[string]bool)
	var patterns []string
	for _, p := range append(append([]string{}, DefaultJunkPatterns...), c.Junk.Patterns...) {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		patterns = append(patterns, p)
	}
	return patterns
}

// StageEnabled reports whether clean should stage changes by default.
func (c *Config) StageEnabled() bool {
	if c.Clean.Stage == nil {
		return true
	}
	return *c.Clean.Stage
}

// configPath returns the path to the config file
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "scrub", "config.toml"), nil
}

// Path returns the config file location for display purposes.
func Path() string {
	path, err := configPath()
	if err != nil {
		return ""
	}
	return path
}

// rawConfig is used for initial TOML parsing before processing hooks
type rawConfig struct {
	Junk   JunkConfig     `toml:"junk"`
	Ignore IgnoreConfig   `toml:"ignore"`
	Clean  CleanConfig    `toml:"clean"`
	Hooks  map[string]any `toml:"hooks"`
}

// Load reads config from ~/.config/scrub/config.toml
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Default(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from an explicit path. Used by tests and --config.
func LoadFrom(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates TOML config content.
func Parse(data []byte) (Config, error) {
	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Config{
		Junk:   raw.Junk,
		Ignore: raw.Ignore,
		Clean:  raw.Clean,
		Hooks:  parseHooksConfig(raw.Hooks),
	}

	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// validHookTriggers are the commands a hook's "on" list may name.
var validHookTriggers = map[string]bool{"clean": true, "all": true}

func (c *Config) validate() error {
	for name, hook := range c.Hooks.Hooks {
		if hook.Command == "" {
			return fmt.Errorf("hook %q has no command", name)
		}
		for _, on := range hook.On {
			if !validHookTriggers[on] {
				return fmt.Errorf("hook %q has invalid trigger %q: must be \"clean\" or \"all\"", name, on)
			}
		}
	}
	return nil
}

// parseHooksConfig converts the raw [hooks.NAME] sections into typed hooks.
// Malformed sections are skipped rather than failing the whole config.
func parseHooksConfig(raw map[string]any) HooksConfig {
	cfg := HooksConfig{Hooks: make(map[string]Hook)}

	for name, val := range raw {
		section, ok := val.(map[string]any)
		if !ok {
			continue
		}

		var hook Hook
		if cmd, ok := section["command"].(string); ok {
			hook.Command = cmd
		}
		if desc, ok := section["description"].(string); ok {
			hook.Description = desc
		}
		if on, ok := section["on"].([]any); ok {
			for _, item := range on {
				if s, ok := item.(string); ok {
					hook.On = append(hook.On, s)
				}
			}
		}

		if hook.Command != "" {
			cfg.Hooks[name] = hook
		}
	}

	return cfg
}

// DefaultConfigTemplate is written by `scrub config init`.
const DefaultConfigTemplate = `# scrub configuration

[junk]
# Extra junk patterns, added to the built-ins
# (venv, .venv, env, ENV, __pycache__, *.pyc).
# A bare name matches any path segment; globs match file basenames.
# patterns = ["node_modules", "*.tmp"]

[ignore]
# Extra patterns appended to the .gitignore template.
# patterns = ["*.parquet"]

[clean]
# Stage all changes after untracking (git add -A). Default: true.
# stage = true

# Hooks run after a successful clean. Placeholders: {repo-dir}, {repo},
# {branch}, {trigger}, plus custom {key} values from -a key=value.
# [hooks.commit]
# command = "git -C {repo-dir} commit -m 'chore: clean tracked junk'"
# description = "Commit the cleanup"
# on = ["clean"]
`

// Init writes the default config template to the config path.
// Fails if the file exists unless force is set.
func Init(force bool) (string, error) {
	path, err := configPath()
	if err != nil {
		return "", fmt.Errorf("failed to determine config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(DefaultConfigTemplate), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}
