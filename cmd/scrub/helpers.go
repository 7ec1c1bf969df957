package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"scrub.sh/scrub/internal/config"
	"scrub.sh/scrub/internal/ignore"
)

// resolveDir returns the absolute target directory: the positional
// argument when given, then the -C flag, then the working directory.
func resolveDir(args ...string) (string, error) {
	dir := dirFlag
	if len(args) > 0 && args[0] != "" {
		dir = args[0]
	}
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	return abs, nil
}

// ignoreContent renders the .gitignore template plus any extra patterns
// from the config.
func ignoreContent(cfg *config.Config) string {
	content := ignore.DefaultTemplate
	if len(cfg.Ignore.Patterns) > 0 {
		content += "\n# Custom\n" + strings.Join(cfg.Ignore.Patterns, "\n") + "\n"
	}
	return content
}
