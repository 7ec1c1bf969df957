// Package hooks runs user-configured commands after a clean.
//
// Hooks come from [hooks.NAME] config sections. A hook with on=["clean"]
// runs automatically after every successful clean; hooks without an "on"
// list only run when named explicitly via --hook.
package hooks

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/mattn/go-isatty"

	"scrub.sh/scrub/internal/config"
	"scrub.sh/scrub/internal/log"
)

// shellQuote escapes a string for safe use in shell commands.
// It wraps the value in single quotes and escapes any embedded single quotes.
func shellQuote(s string) string {
	// Single quotes preserve everything literally except single quotes themselves.
	// e.g., "it's" becomes 'it'\''s'
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// CommandType identifies which command is triggering the hook
type CommandType string

const (
	CommandClean CommandType = "clean"
)

// Context holds the values for placeholder substitution
type Context struct {
	RepoDir string            // absolute repository path
	Repo    string            // repo name from git origin or folder
	Branch  string            // current branch name
	Trigger string            // command that triggered the hook
	Env     map[string]string // custom variables from -a key=value flags
	DryRun  bool              // if true, print command instead of executing
}

// Match represents a hook that matched the current command
type Match struct {
	Hook *config.Hook
	Name string
}

// Select determines which hooks to run based on config and CLI flags.
// If hookName is specified, only that hook runs (its "on" list is ignored).
// Otherwise all hooks with a matching "on" condition run.
// Returns nil slice if no hooks should run, error if the named hook doesn't exist.
func Select(cfg config.HooksConfig, hookName string, noHook bool, cmdType CommandType) ([]Match, error) {
	if noHook {
		return nil, nil
	}

	if hookName != "" {
		hook, exists := cfg.Hooks[hookName]
		if !exists {
			return nil, fmt.Errorf("unknown hook %q", hookName)
		}
		return []Match{{Hook: &hook, Name: hookName}}, nil
	}

	var matches []Match
	for name, hook := range cfg.Hooks {
		if len(hook.On) > 0 && matchesCommand(hook, cmdType) {
			hookCopy := hook
			matches = append(matches, Match{Hook: &hookCopy, Name: name})
		}
	}
	return matches, nil
}

// matchesCommand returns true if cmdType is in the hook's "on" list.
// Special value "all" matches all command types.
func matchesCommand(hook config.Hook, cmdType CommandType) bool {
	for _, cmd := range hook.On {
		if cmd == "all" || cmd == string(cmdType) {
			return true
		}
	}
	return false
}

// RunAll runs all matched hooks in the repository directory, logging
// failures as warnings instead of aborting. Hook failures never undo a
// completed clean.
func RunAll(ctx context.Context, matches []Match, hookCtx Context) {
	l := log.FromContext(ctx)
	for _, match := range matches {
		if err := runHook(ctx, match.Name, match.Hook, hookCtx); err != nil {
			l.Printf("Warning: hook %q failed: %v\n", match.Name, err)
		}
	}
}

// RunSingle runs a single hook by name. Used by explicit --hook invocations
// where a failure should surface as an error.
func RunSingle(ctx context.Context, name string, hook *config.Hook, hookCtx Context) error {
	return runHook(ctx, name, hook, hookCtx)
}

// runHook executes a single hook with variable substitution.
func runHook(ctx context.Context, name string, hook *config.Hook, hookCtx Context) error {
	l := log.FromContext(ctx)
	cmd := SubstitutePlaceholders(hook.Command, hookCtx)

	if hookCtx.DryRun {
		l.Printf("[dry-run] %s: %s\n", name, cmd)
		return nil
	}

	l.Printf("Running hook '%s'...\n", name)

	shellCmd := exec.CommandContext(ctx, "sh", "-c", cmd)
	shellCmd.Dir = hookCtx.RepoDir
	shellCmd.Stdout = os.Stdout
	shellCmd.Stderr = os.Stderr
	shellCmd.Stdin = os.Stdin

	if err := shellCmd.Run(); err != nil {
		return err
	}

	if hook.Description != "" {
		l.Printf("  ✓ %s\n", hook.Description)
	}
	return nil
}

// readStdinIfPiped reads all content from stdin if it's piped (not a TTY).
// Returns empty string and nil if stdin is a TTY (interactive).
func readStdinIfPiped() (string, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// ParseEnv parses a slice of "key=value" strings into a map.
// If any value is "-", reads stdin content and assigns it to all such keys.
// Returns an error if stdin is requested but not piped or empty.
func ParseEnv(envSlice []string) (map[string]string, error) {
	result := make(map[string]string)
	var stdinKeys []string

	for _, e := range envSlice {
		idx := strings.Index(e, "=")
		if idx == -1 {
			return nil, fmt.Errorf("invalid env format %q: expected KEY=VALUE", e)
		}
		key := e[:idx]
		value := e[idx+1:]
		if key == "" {
			return nil, fmt.Errorf("invalid env format %q: key cannot be empty", e)
		}
		if value == "-" {
			stdinKeys = append(stdinKeys, key)
		} else {
			result[key] = value
		}
	}

	if len(stdinKeys) > 0 {
		content, err := readStdinIfPiped()
		if err != nil {
			return nil, err
		}
		if content == "" {
			return nil, fmt.Errorf("stdin not piped: KEY=- requires piped input")
		}
		for _, key := range stdinKeys {
			result[key] = content
		}
	}

	return result, nil
}

// envPlaceholderRegex matches {key}, {key:raw}, or {key:-default} patterns
// for custom variables, applied after the static replacements.
var envPlaceholderRegex = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)(?:(:raw)|:-([^}]*))?\}`)

// SubstitutePlaceholders replaces {placeholder} with shell-quoted values from Context.
// Values are properly escaped to prevent command injection.
//
// Static placeholders: {repo-dir}, {repo}, {branch}, {trigger}
// Env placeholders (from Context.Env):
//   - {key}          - shell-quoted value
//   - {key:raw}      - unquoted value (for embedding in existing quotes)
//   - {key:-default} - shell-quoted value with default if key missing
func SubstitutePlaceholders(command string, ctx Context) string {
	replacements := map[string]string{
		"{repo-dir}": shellQuote(ctx.RepoDir),
		"{repo}":     shellQuote(ctx.Repo),
		"{branch}":   shellQuote(ctx.Branch),
		"{trigger}":  shellQuote(ctx.Trigger),
	}

	result := command
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	result = envPlaceholderRegex.ReplaceAllStringFunc(result, func(match string) string {
		submatch := envPlaceholderRegex.FindStringSubmatch(match)
		if submatch == nil {
			return match
		}
		key := submatch[1]
		isRaw := submatch[2] == ":raw"
		defaultVal := submatch[3]

		if ctx.Env != nil {
			if val, ok := ctx.Env[key]; ok {
				if isRaw {
					return val
				}
				return shellQuote(val)
			}
		}

		if isRaw {
			return defaultVal
		}
		return shellQuote(defaultVal)
	})

	return result
}
