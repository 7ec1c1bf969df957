package doctor

import (
	"context"

	"scrub.sh/scrub/internal/git"
	"scrub.sh/scrub/internal/ignore"
)

// FixResult reports what Fix changed.
type FixResult struct {
	Untracked      []string // paths removed from the index
	IgnoreCreated  bool
	IgnoreAppended []string // patterns appended to an existing .gitignore
}

// Fix applies the safe fix for each fixable issue in the report.
// Environment issues have no automatic fix. Returns on first error; fixes
// already applied are reported in the result either way.
func Fix(ctx context.Context, dir string, report Report, ignoreContent string) (FixResult, error) {
	var res FixResult

	for _, issue := range report.Issues {
		if !issue.Fixable() {
			continue
		}

		switch issue.Category {
		case CategoryIgnore:
			if !ignore.Exists(dir) {
				created, err := ignore.Ensure(dir, ignoreContent)
				if err != nil {
					return res, err
				}
				res.IgnoreCreated = created
				continue
			}
			added, err := ignore.Add(dir, ignore.DefaultPatterns())
			if err != nil {
				return res, err
			}
			res.IgnoreAppended = append(res.IgnoreAppended, added...)

		case CategoryIndex:
			if err := git.Untrack(ctx, dir, issue.Key); err != nil {
				return res, err
			}
			res.Untracked = append(res.Untracked, issue.Key)
		}
	}

	return res, nil
}
