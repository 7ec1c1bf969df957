package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"scrub.sh/scrub/internal/git"
	"scrub.sh/scrub/internal/ignore"
	"scrub.sh/scrub/internal/output"
	"scrub.sh/scrub/internal/scrub"
	"scrub.sh/scrub/internal/ui"
)

// statusReport is the JSON shape of 'scrub status --json'.
type statusReport struct {
	Repo            string     `json:"repo"`
	Branch          string     `json:"branch"`
	Plan            scrub.Plan `json:"plan"`
	Staged          bool       `json:"staged_changes"`
	MissingPatterns []string   `json:"missing_patterns,omitempty"`
}

func newStatusCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "status [dir]",
		Short:   "Show tracked junk without changing anything",
		Aliases: []string{"st"},
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Show what 'scrub clean' would untrack, whether a .gitignore
exists, and whether the index holds staged changes. Read-only.`,
		Example: `  scrub status          # Human-readable report
  scrub status --json   # Machine-readable report`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			dir, err := resolveDir(args...)
			if err != nil {
				return err
			}

			plan, err := scrub.BuildPlan(ctx, dir, cfg.JunkPatterns())
			if err != nil {
				return err
			}

			branch, _ := git.CurrentBranch(ctx, dir)
			report := statusReport{
				Repo:   git.RepoName(ctx, dir),
				Branch: branch,
				Plan:   plan,
				Staged: git.HasStagedChanges(ctx, dir),
			}
			if plan.IgnoreExists {
				report.MissingPatterns, _ = ignore.Missing(dir, ignore.DefaultPatterns())
			}

			if jsonOutput {
				enc := json.NewEncoder(out.Writer())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			out.Printf("Repository: %s (%s)\n", report.Repo, report.Branch)
			if plan.IgnoreExists {
				if len(report.MissingPatterns) > 0 {
					out.Printf(".gitignore: present, missing %d default patterns\n", len(report.MissingPatterns))
				} else {
					out.Println(".gitignore: present")
				}
			} else {
				out.Println(".gitignore: missing")
			}
			if report.Staged {
				out.Println("Index: staged changes pending")
			}
			out.Println()

			if len(plan.Entries) == 0 {
				out.Println("No tracked junk")
				return nil
			}

			out.Println("Tracked junk:")
			out.Print(ui.RenderTable(
				[]string{"PATH", "PATTERN", "FILES"},
				entryRows(plan.Entries),
			))
			out.Println()
			out.Println("Run 'scrub clean' to untrack these paths")
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
