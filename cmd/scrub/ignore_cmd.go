package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scrub.sh/scrub/internal/ignore"
	"scrub.sh/scrub/internal/log"
	"scrub.sh/scrub/internal/output"
)

func newIgnoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ignore",
		Short:   "Manage the repository .gitignore",
		GroupID: GroupCore,
		Long: `Manage the repository .gitignore.

'scrub clean' only ever creates a missing .gitignore; these subcommands
inspect and extend an existing one.`,
		Example: `  scrub ignore init     # Create .gitignore from the default template
  scrub ignore show     # Print the current .gitignore
  scrub ignore add      # Append missing default patterns
  scrub ignore add '*.tmp' 'node_modules/'`,
	}

	cmd.AddCommand(newIgnoreInitCmd())
	cmd.AddCommand(newIgnoreShowCmd())
	cmd.AddCommand(newIgnoreAddCmd())

	return cmd
}

func newIgnoreInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create .gitignore from the default template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := ignoreContent(cfg)

			if stdout {
				output.FromContext(cmd.Context()).Print(content)
				return nil
			}

			dir, err := resolveDir(args...)
			if err != nil {
				return err
			}

			if ignore.Exists(dir) && !force {
				return fmt.Errorf(".gitignore already exists: %s (use -f to overwrite)", ignore.Path(dir))
			}
			if err := ignore.Write(dir, content); err != nil {
				return err
			}

			log.FromContext(cmd.Context()).Printf("Created %s\n", ignore.Path(dir))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing .gitignore")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print template to stdout")

	return cmd
}

func newIgnoreShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [dir]",
		Short: "Print the current .gitignore",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveDir(args...)
			if err != nil {
				return err
			}

			content, err := ignore.Read(dir)
			if err != nil {
				return err
			}
			if content == "" {
				return fmt.Errorf("no .gitignore at %s (run 'scrub ignore init')", dir)
			}

			output.FromContext(cmd.Context()).Print(content)
			return nil
		},
	}
}

func newIgnoreAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [pattern...]",
		Short: "Append patterns to .gitignore",
		Long: `Append patterns to an existing .gitignore, skipping patterns it
already contains. Without arguments, appends the default template
patterns that are missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			dir, err := resolveDir()
			if err != nil {
				return err
			}

			patterns := args
			if len(patterns) == 0 {
				patterns = ignore.DefaultPatterns()
			}

			added, err := ignore.Add(dir, patterns)
			if err != nil {
				return err
			}
			if len(added) == 0 {
				l.Println("Nothing to add: all patterns already present")
				return nil
			}

			for _, pattern := range added {
				l.Printf("Added %s\n", pattern)
			}
			return nil
		},
	}

	return cmd
}
