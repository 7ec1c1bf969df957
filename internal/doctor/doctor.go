// Package doctor diagnoses repository hygiene problems.
//
// Checks cover the environment (git availability), the .gitignore file,
// and the index (tracked junk, tracked env-var files). Safe fixes are the
// same operations clean performs; doctor --fix applies them.
package doctor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"scrub.sh/scrub/internal/git"
	"scrub.sh/scrub/internal/ignore"
	"scrub.sh/scrub/internal/scrub"
)

// Run performs all checks against the repository at dir.
// A missing repository is itself reported as an issue; index checks are
// skipped in that case.
func Run(ctx context.Context, dir string, junkPatterns []string) (Report, error) {
	var report Report

	report.Stats.ChecksRun++
	if err := git.CheckGit(); err != nil {
		report.Issues = append(report.Issues, Issue{
			Key:         "git",
			Description: "git executable not found in PATH",
			Category:    CategoryEnvironment,
		})
		return report, nil
	}

	report.Stats.ChecksRun++
	if !git.IsRepoRoot(dir) {
		desc := "not a git repository (no .git directory)"
		if git.IsInsideRepo(ctx, dir) {
			if top, err := git.TopLevel(ctx, dir); err == nil {
				desc = fmt.Sprintf("not the repository root (run from %s)", top)
			}
		}
		report.Issues = append(report.Issues, Issue{
			Key:         dir,
			Description: desc,
			Category:    CategoryEnvironment,
		})
		return report, nil
	}

	checkIgnore(dir, &report)

	if err := checkIndex(ctx, dir, junkPatterns, &report); err != nil {
		return report, err
	}

	return report, nil
}

// checkIgnore reports a missing .gitignore or one lacking default patterns.
func checkIgnore(dir string, report *Report) {
	report.Stats.ChecksRun++
	if !ignore.Exists(dir) {
		report.Issues = append(report.Issues, Issue{
			Key:         ignore.FileName,
			Description: "no .gitignore file at the repository root",
			FixAction:   "create from default template",
			Category:    CategoryIgnore,
		})
		return
	}

	report.Stats.ChecksRun++
	missing, err := ignore.Missing(dir, ignore.DefaultPatterns())
	if err != nil || len(missing) == 0 {
		return
	}
	report.Stats.IgnoreMissing = len(missing)
	report.Issues = append(report.Issues, Issue{
		Key:         ignore.FileName,
		Description: fmt.Sprintf("missing %d default patterns (%s)", len(missing), summarize(missing, 3)),
		FixAction:   "append missing patterns",
		Category:    CategoryIgnore,
	})
}

// checkIndex reports tracked junk and tracked env-var files.
func checkIndex(ctx context.Context, dir string, junkPatterns []string, report *Report) error {
	report.Stats.ChecksRun++
	plan, err := scrub.BuildPlan(ctx, dir, junkPatterns)
	if err != nil {
		return err
	}

	for _, entry := range plan.Entries {
		report.Stats.JunkTracked++
		report.Issues = append(report.Issues, Issue{
			Key:         entry.Path,
			Description: fmt.Sprintf("tracked junk (%d files, matched %q)", entry.Files, entry.Pattern),
			FixAction:   "untrack, keep on disk",
			Category:    CategoryIndex,
		})
	}

	report.Stats.ChecksRun++
	tracked, err := git.ListTracked(ctx, dir)
	if err != nil {
		return err
	}
	for _, path := range tracked {
		base := filepath.Base(path)
		if base == ".env" || strings.HasPrefix(base, ".env.") {
			report.Stats.SecretsTracked++
			report.Issues = append(report.Issues, Issue{
				Key:         path,
				Description: "environment-variable file tracked in the index",
				FixAction:   "untrack, keep on disk",
				Category:    CategoryIndex,
			})
		}
	}

	return nil
}

// summarize joins up to n items, appending an ellipsis marker beyond that.
func summarize(items []string, n int) string {
	if len(items) <= n {
		return strings.Join(items, ", ")
	}
	return strings.Join(items[:n], ", ") + ", ..."
}
