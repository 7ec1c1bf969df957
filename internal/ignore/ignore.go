// Package ignore manages the repository's .gitignore file.
//
// The clean procedure only ever creates a missing .gitignore; it never
// rewrites one the user already has. Explicit edits (append, overwrite) are
// reserved for the `scrub ignore` subcommands.
package ignore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the ignore file name at the repository root.
const FileName = ".gitignore"

// Path returns the ignore file path for a repository root.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Exists returns true if the repository already has a .gitignore.
func Exists(dir string) bool {
	info, err := os.Stat(Path(dir))
	return err == nil && !info.IsDir()
}

// Ensure writes content to .gitignore if the file does not exist yet.
// Returns true if the file was created. An existing file is left untouched.
func Ensure(dir, content string) (created bool, err error) {
	if Exists(dir) {
		return false, nil
	}
	if err := os.WriteFile(Path(dir), []byte(content), 0644); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", FileName, err)
	}
	return true, nil
}

// Write overwrites .gitignore with content, creating it if needed.
func Write(dir, content string) error {
	if err := os.WriteFile(Path(dir), []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	return nil
}

// Read returns the current .gitignore content.
// Returns empty content without error if the file does not exist.
func Read(dir string) (string, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return string(data), nil
}

// Missing returns the patterns not present in the repository's .gitignore.
// A missing file means every pattern is missing.
func Missing(dir string, patterns []string) ([]string, error) {
	content, err := Read(dir)
	if err != nil {
		return nil, err
	}

	have := make(map[string]bool)
	for _, p := range Patterns(content) {
		have[p] = true
	}

	var missing []string
	for _, p := range patterns {
		if !have[p] {
			missing = append(missing, p)
		}
	}
	return missing, nil
}

// Add appends the patterns that are not already present to .gitignore and
// returns the ones that were added. The file is created if it is missing.
func Add(dir string, patterns []string) ([]string, error) {
	missing, err := Missing(dir, patterns)
	if err != nil {
		return nil, err
	}
	if len(missing) == 0 {
		return nil, nil
	}

	content, err := Read(dir)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(content)
	if content != "" && !strings.HasSuffix(content, "\n") {
		b.WriteString("\n")
	}
	for _, p := range missing {
		b.WriteString(p)
		b.WriteString("\n")
	}

	if err := Write(dir, b.String()); err != nil {
		return nil, err
	}
	return missing, nil
}
