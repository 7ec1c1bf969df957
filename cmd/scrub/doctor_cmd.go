package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"scrub.sh/scrub/internal/doctor"
	"scrub.sh/scrub/internal/output"
	"scrub.sh/scrub/internal/ui"
)

func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:     "doctor [dir]",
		Short:   "Diagnose and repair repository hygiene issues",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Diagnose repository hygiene issues.

Checks:
- git is installed and the target is a repository
- .gitignore exists and carries the default patterns
- no junk or environment-variable files are tracked in the index

Examples:
  scrub doctor          # Check for issues
  scrub doctor --fix    # Apply safe fixes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			dir, err := resolveDir(args...)
			if err != nil {
				return err
			}

			out.Println("Running diagnostics...")
			out.Println()

			report, err := doctor.Run(ctx, dir, cfg.JunkPatterns())
			if err != nil {
				return err
			}

			if report.Healthy() {
				out.Println(ui.SuccessStyle.Render("✓") + " All checks passed")
				return nil
			}

			for _, issue := range report.Issues {
				marker := ui.ErrorStyle.Render("✗")
				if issue.Fixable() {
					marker = ui.WarningStyle.Render("⚠")
				}
				out.Printf("%s [%s] %s: %s\n", marker, issue.Category, issue.Key, issue.Description)
				if issue.Fixable() && !fix {
					out.Printf("    fix: %s\n", issue.FixAction)
				}
			}
			out.Println()

			if !fix {
				out.Println("Run 'scrub doctor --fix' to apply the safe fixes")
				return fmt.Errorf("%d issue(s) found", len(report.Issues))
			}

			var fixable int
			for _, issue := range report.Issues {
				if issue.Fixable() {
					fixable++
				}
			}
			if fixable > 0 && ui.IsInteractive() {
				confirm, err := ui.Confirm(fmt.Sprintf("Apply %d fix(es)?", fixable))
				if err != nil {
					return err
				}
				if confirm.Cancelled || !confirm.Confirmed {
					return nil
				}
			}

			res, err := doctor.Fix(ctx, dir, report, ignoreContent(cfg))
			if err != nil {
				return err
			}
			if res.IgnoreCreated {
				out.Println(ui.SuccessStyle.Render("✓") + " Created .gitignore")
			}
			for _, pattern := range res.IgnoreAppended {
				out.Printf("%s Appended %s\n", ui.SuccessStyle.Render("✓"), pattern)
			}
			for _, path := range res.Untracked {
				out.Printf("%s Untracked %s (kept on disk)\n", ui.SuccessStyle.Render("✓"), path)
			}

			// Environment issues have no fix and keep the run failing
			var unfixed int
			for _, issue := range report.Issues {
				if !issue.Fixable() {
					unfixed++
				}
			}
			if unfixed > 0 {
				return fmt.Errorf("%d issue(s) could not be fixed", unfixed)
			}

			out.Println()
			out.Println("Fixed. Review with 'git status' and commit the result.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Apply safe fixes")

	return cmd
}
