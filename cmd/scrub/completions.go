package main

import (
	"github.com/spf13/cobra"
)

// completeHooks completes --hook with the configured hook names.
func completeHooks(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if cfg == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for name, hook := range cfg.Hooks.Hooks {
		if hook.Description != "" {
			completions = append(completions, name+"\t"+hook.Description)
		} else {
			completions = append(completions, name)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
