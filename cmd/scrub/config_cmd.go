package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"scrub.sh/scrub/internal/config"
	"scrub.sh/scrub/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage scrub configuration.

Config location: ~/.config/scrub/config.toml`,
		Example: `  scrub config init    # Create default config
  scrub config show    # Show effective config
  scrub config hooks   # List configured hooks`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigHooksCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Example: `  scrub config init      # Create config at ~/.config/scrub/config.toml
  scrub config init -f   # Overwrite existing config
  scrub config init -s   # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if stdout {
				out.Print(config.DefaultConfigTemplate)
				return nil
			}

			path, err := config.Init(force)
			if err != nil {
				return err
			}

			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg)
			}

			out.Printf("Config file: %s\n\n", config.Path())
			out.Printf("junk.patterns: %v\n", cfg.JunkPatterns())
			out.Printf("ignore.patterns: %v\n", cfg.Ignore.Patterns)
			out.Printf("clean.stage: %v\n", cfg.StageEnabled())
			out.Printf("hooks: %d configured\n", len(cfg.Hooks.Hooks))

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newConfigHooksCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "List configured hooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(cfg.Hooks.Hooks)
			}

			if len(cfg.Hooks.Hooks) == 0 {
				out.Println("No hooks configured")
				return nil
			}

			for name, hook := range cfg.Hooks.Hooks {
				out.Printf("%s:\n", name)
				out.Printf("  command: %s\n", hook.Command)
				if hook.Description != "" {
					out.Printf("  description: %s\n", hook.Description)
				}
				if len(hook.On) > 0 {
					out.Printf("  on: %v\n", hook.On)
				}
				fmt.Fprintln(out.Writer())
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
