package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"scrub.sh/scrub/internal/config"
	"scrub.sh/scrub/internal/git"
	"scrub.sh/scrub/internal/log"
	"scrub.sh/scrub/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	dirFlag string

	// Shared state injected into commands
	cfg *config.Config
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scrub",
	Short: "Untrack committed junk and keep repositories clean",
	Long: `scrub removes accidentally committed junk (virtualenvs, bytecode
caches, secrets) from the git index while keeping the files on disk,
writes a .gitignore so it stays out, and stages the result.

A clean run is idempotent: running it twice changes nothing the second
time.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed by now, so the logger can honor them.
		logger := log.New(cmd.ErrOrStderr(), verbose, quiet)
		cmd.SetContext(log.WithLogger(cmd.Context(), logger))

		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		// Validate mutually exclusive flags
		if verbose && quiet {
			return fmt.Errorf("--verbose and --quiet are mutually exclusive")
		}

		// Check git is available
		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = &loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'scrub -h' for help")
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "C", "", "Run as if started in this directory")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newCleanCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newIgnoreCmd())
	rootCmd.AddCommand(newDoctorCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
