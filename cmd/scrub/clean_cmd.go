package main

import (
	"fmt"
	"strconv"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"scrub.sh/scrub/internal/git"
	"scrub.sh/scrub/internal/hooks"
	"scrub.sh/scrub/internal/log"
	"scrub.sh/scrub/internal/output"
	"scrub.sh/scrub/internal/scrub"
	"scrub.sh/scrub/internal/ui"
)

func newCleanCmd() *cobra.Command {
	var (
		dryRun      bool
		noStage     bool
		noIgnore    bool
		interactive bool
		copyCmd     bool
		hookName    string
		noHook      bool
		env         []string
	)

	cmd := &cobra.Command{
		Use:     "clean [dir]",
		Short:   "Untrack junk, write .gitignore, stage changes",
		Aliases: []string{"c"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Remove tracked junk from the git index while keeping the files
on disk, create a .gitignore if the repository has none, and stage all
resulting changes.

Junk is matched against the configured patterns (virtualenv folders,
__pycache__ directories, *.pyc files by default). An existing
.gitignore is never modified; use 'scrub ignore add' for that.

Examples:
  scrub clean              # Clean the current repository
  scrub clean -n           # Dry-run: preview without changing anything
  scrub clean -i           # Pick which entries to untrack
  scrub clean --no-stage   # Untrack and write .gitignore only
  scrub clean --copy       # Copy the suggested commit command`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			dir, err := resolveDir(args...)
			if err != nil {
				return err
			}

			// Resolve hooks before touching the index so an unknown
			// --hook name fails early
			hookMatches, err := hooks.Select(cfg.Hooks, hookName, noHook, hooks.CommandClean)
			if err != nil {
				return err
			}
			hookEnv, err := hooks.ParseEnv(env)
			if err != nil {
				return err
			}

			var sp *ui.Spinner
			if ui.IsInteractive() && !quiet {
				sp = ui.NewSpinner("Scanning index...")
				sp.Start()
			}
			plan, err := scrub.BuildPlan(ctx, dir, cfg.JunkPatterns())
			if sp != nil {
				sp.Stop()
			}
			if err != nil {
				return err
			}

			if len(plan.Entries) == 0 {
				l.Println("No tracked junk found")
			}

			opts := scrub.Options{
				WriteIgnore:   !noIgnore,
				IgnoreContent: ignoreContent(cfg),
				Stage:         cfg.StageEnabled() && !noStage,
			}

			if interactive && len(plan.Entries) > 0 {
				if !ui.IsInteractive() {
					return fmt.Errorf("-i/--interactive requires a terminal")
				}
				pickOpts := make([]ui.PickOption, len(plan.Entries))
				for i, entry := range plan.Entries {
					pickOpts[i] = ui.PickOption{
						Label:       entry.Path,
						Description: fmt.Sprintf("%d files, matched %q", entry.Files, entry.Pattern),
					}
				}
				res, err := ui.Pick("Untrack from the index", pickOpts)
				if err != nil {
					return fmt.Errorf("interactive mode error: %w", err)
				}
				if res.Cancelled {
					return nil
				}
				paths := make([]string, 0, len(res.Indices))
				for _, idx := range res.Indices {
					paths = append(paths, plan.Entries[idx].Path)
				}
				opts.Paths = paths
			}

			if dryRun {
				printPlanPreview(out, plan, opts)
				return nil
			}

			res, err := scrub.Apply(ctx, plan, opts)
			if err != nil {
				return err
			}

			if len(res.Untracked) > 0 {
				out.Print(ui.RenderTable(
					[]string{"UNTRACKED", "PATTERN", "FILES"},
					entryRows(res.Untracked),
				))
			}
			if res.IgnoreCreated {
				l.Println("Created .gitignore")
			} else if !plan.IgnoreExists && noIgnore {
				l.Println("Skipped .gitignore (--no-ignore)")
			}
			if res.Staged {
				l.Println("Staged all changes")
			}

			status, err := git.Status(ctx, dir)
			if err != nil {
				return err
			}
			out.Println()
			out.Print(status)

			printSuggestions(cmd, dir, copyCmd)

			if len(hookMatches) > 0 {
				branch, _ := git.CurrentBranch(ctx, dir)
				hookCtx := hooks.Context{
					RepoDir: dir,
					Repo:    git.RepoName(ctx, dir),
					Branch:  branch,
					Trigger: string(hooks.CommandClean),
					Env:     hookEnv,
				}
				if hookName != "" {
					// An explicitly named hook failing is an error,
					// unlike automatic post-clean hooks.
					match := hookMatches[0]
					if err := hooks.RunSingle(ctx, match.Name, match.Hook, hookCtx); err != nil {
						return fmt.Errorf("hook %q failed: %w", match.Name, err)
					}
				} else {
					hooks.RunAll(ctx, hookMatches, hookCtx)
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Preview without changing anything")
	cmd.Flags().BoolVar(&noStage, "no-stage", false, "Skip staging after untracking")
	cmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Skip .gitignore creation")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick entries to untrack")
	cmd.Flags().BoolVar(&copyCmd, "copy", false, "Copy the suggested commit command to the clipboard")
	cmd.Flags().StringVar(&hookName, "hook", "", "Run named hook after cleaning")
	cmd.Flags().BoolVar(&noHook, "no-hook", false, "Skip post-clean hooks")
	cmd.Flags().StringSliceVarP(&env, "arg", "a", nil, "Set hook variable KEY=VALUE")

	cmd.MarkFlagsMutuallyExclusive("hook", "no-hook")
	cmd.MarkFlagsMutuallyExclusive("dry-run", "interactive")

	// Completions
	cmd.RegisterFlagCompletionFunc("hook", completeHooks)

	return cmd
}

// entryRows converts plan entries into table rows.
func entryRows(entries []scrub.Entry) [][]string {
	rows := make([][]string, len(entries))
	for i, entry := range entries {
		rows[i] = []string{entry.Path, entry.Pattern, strconv.Itoa(entry.Files)}
	}
	return rows
}

// printPlanPreview renders what a clean run would do.
func printPlanPreview(out *output.Printer, plan scrub.Plan, opts scrub.Options) {
	if len(plan.Entries) > 0 {
		out.Println("Would untrack (files stay on disk):")
		out.Print(ui.RenderTable(
			[]string{"PATH", "PATTERN", "FILES"},
			entryRows(plan.Entries),
		))
	}
	if !plan.IgnoreExists {
		if opts.WriteIgnore {
			out.Println("Would create .gitignore")
		} else {
			out.Println("Would skip .gitignore (--no-ignore)")
		}
	}
	if opts.Stage {
		out.Println("Would stage all changes")
	}
}

// printSuggestions prints the follow-up commit commands.
func printSuggestions(cmd *cobra.Command, dir string, copyCmd bool) {
	ctx := cmd.Context()
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	branch, err := git.CurrentBranch(ctx, dir)
	if err != nil || branch == "(detached)" {
		branch = "HEAD"
	}
	commit := `git commit -m "chore: untrack junk and add .gitignore"`
	push := "git push origin " + branch

	out.Println()
	out.Println("Suggested next steps:")
	out.Printf("  %s\n", commit)
	out.Printf("  %s\n", push)

	if copyCmd {
		if err := clipboard.WriteAll(commit + " && " + push); err != nil {
			l.Printf("Warning: failed to copy to clipboard: %v\n", err)
		} else {
			l.Println("Copied to clipboard")
		}
	}
}
