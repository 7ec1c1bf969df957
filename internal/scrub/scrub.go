// Package scrub implements the repository hygiene procedure: find tracked
// junk, untrack it from the index while keeping it on disk, ensure a
// .gitignore exists, and stage the resulting tree.
//
// The procedure is strictly linear and idempotent. Untracking paths that
// are not tracked is success, and a second run over a clean repository is
// a no-op.
package scrub

import (
	"context"
	"fmt"
	"sort"

	"scrub.sh/scrub/internal/git"
	"scrub.sh/scrub/internal/ignore"
	"scrub.sh/scrub/internal/log"
)

// Entry is one junk path scheduled for untracking.
type Entry struct {
	Path    string `json:"path"`    // repo-relative untrack target
	Pattern string `json:"pattern"` // junk pattern that matched
	Files   int    `json:"files"`   // tracked files under the target
}

// Plan describes what a clean run would do, without doing it.
type Plan struct {
	Dir          string  `json:"dir"`
	Entries      []Entry `json:"entries"`
	IgnoreExists bool    `json:"ignore_exists"`
}

// Options controls how a plan is applied.
type Options struct {
	WriteIgnore   bool     // create .gitignore if missing
	IgnoreContent string   // content for a created .gitignore
	Stage         bool     // stage all changes afterwards
	Paths         []string // subset of plan entries to untrack (nil = all)
}

// Result reports what a clean run did.
type Result struct {
	Untracked     []Entry
	IgnoreCreated bool
	Staged        bool
}

// BuildPlan inspects the repository at dir and returns the junk entries
// tracked in its index. The repository precondition is checked first; a
// directory without .git fails before any git invocation.
func BuildPlan(ctx context.Context, dir string, patterns []string) (Plan, error) {
	if err := git.RequireRepo(dir); err != nil {
		return Plan{}, err
	}

	tracked, err := git.ListTracked(ctx, dir)
	if err != nil {
		return Plan{}, err
	}

	// Collect targets; counts are filled in after nested targets collapse.
	byTarget := make(map[string]string) // target -> pattern
	for _, path := range tracked {
		for _, pattern := range patterns {
			if target, ok := matchTarget(path, pattern); ok {
				if _, exists := byTarget[target]; !exists {
					byTarget[target] = pattern
				}
				break
			}
		}
	}

	targets := make([]string, 0, len(byTarget))
	for target := range byTarget {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	// Drop targets nested inside another target: untracking venv/ already
	// covers venv/__pycache__.
	var kept []string
	for _, target := range targets {
		nested := false
		for _, other := range kept {
			if isUnder(target, other) {
				nested = true
				break
			}
		}
		if !nested {
			kept = append(kept, target)
		}
	}

	entries := make([]Entry, 0, len(kept))
	for _, target := range kept {
		files := 0
		for _, path := range tracked {
			if path == target || isUnder(path, target) {
				files++
			}
		}
		entries = append(entries, Entry{Path: target, Pattern: byTarget[target], Files: files})
	}

	log.FromContext(ctx).Debug("built clean plan", "dir", dir, "entries", len(entries))

	return Plan{
		Dir:          dir,
		Entries:      entries,
		IgnoreExists: ignore.Exists(dir),
	}, nil
}

// Apply executes a plan: untrack, ensure .gitignore, stage.
// Steps after untracking propagate their error; untracking a path that is
// no longer tracked is not an error.
func Apply(ctx context.Context, plan Plan, opts Options) (Result, error) {
	l := log.FromContext(ctx)
	var res Result

	selected := plan.Entries
	if opts.Paths != nil {
		want := make(map[string]bool, len(opts.Paths))
		for _, p := range opts.Paths {
			want[p] = true
		}
		selected = nil
		for _, e := range plan.Entries {
			if want[e.Path] {
				selected = append(selected, e)
			}
		}
	}

	for _, entry := range selected {
		l.Debug("untracking path", "path", entry.Path, "pattern", entry.Pattern)
		if err := git.Untrack(ctx, plan.Dir, entry.Path); err != nil {
			return res, err
		}
		res.Untracked = append(res.Untracked, entry)
	}

	if opts.WriteIgnore {
		created, err := ignore.Ensure(plan.Dir, opts.IgnoreContent)
		if err != nil {
			return res, err
		}
		res.IgnoreCreated = created
	}

	if opts.Stage {
		if err := git.StageAll(ctx, plan.Dir); err != nil {
			return res, fmt.Errorf("staging failed: %w", err)
		}
		res.Staged = true
	}

	return res, nil
}
