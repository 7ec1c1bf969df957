// Package config loads and validates scrub's TOML configuration.
//
// The config file lives at ~/.config/scrub/config.toml and is entirely
// optional: a missing file yields the built-in defaults. Extra junk
// patterns and ignore patterns extend the built-ins, they never replace
// them.
package config
