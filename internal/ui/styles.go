package ui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Colors used throughout the UI
var (
	// Primary is the main accent color (cyan/teal)
	Primary lipgloss.TerminalColor = lipgloss.Color("62")

	// Accent highlights selected/active items (pink)
	Accent lipgloss.TerminalColor = lipgloss.Color("212")

	// Success is used for checkmarks and positive outcomes (green)
	Success lipgloss.TerminalColor = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error lipgloss.TerminalColor = lipgloss.Color("196")

	// Warning is used for fixable issues (yellow)
	Warning lipgloss.TerminalColor = lipgloss.Color("214")

	// Muted is used for secondary text (gray)
	Muted lipgloss.TerminalColor = lipgloss.Color("240")
)

// Common styles
var (
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)

// IsInteractive reports whether stdout is attached to a terminal.
// Interactive components (picker, confirm) require this.
func IsInteractive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorsEnabled reports whether the detected color profile of stdout
// supports colored output.
func ColorsEnabled() bool {
	p := colorprofile.Detect(os.Stdout, os.Environ())
	return p != colorprofile.NoTTY && p != colorprofile.Ascii
}
