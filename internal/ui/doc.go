// Package ui provides terminal UI components for scrub command output.
//
// This package uses the Charm libraries (lipgloss, bubbletea, bubbles)
// for styled terminal output: borderless tables for status and plan
// listings, a spinner for long index scans, a yes/no confirm prompt,
// and the interactive clean picker.
//
// All styling degrades gracefully: when stdout is not a terminal or the
// detected color profile carries no color support, components render
// plain text so output stays pipeable.
package ui
