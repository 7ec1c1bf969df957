package scrub

import (
	"path/filepath"
	"strings"
)

// hasGlobMeta reports whether a pattern uses filepath.Match syntax.
func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// matchTarget checks a tracked path against a junk pattern and returns the
// untrack target when it matches.
//
// Bare patterns match any path segment, and the target is the subpath up to
// and including that segment: "__pycache__" matches utils/__pycache__/u.pyc
// with target utils/__pycache__. Glob patterns match the file's base name,
// and the target is the file itself.
func matchTarget(path, pattern string) (string, bool) {
	pattern = strings.TrimSuffix(pattern, "/")
	if pattern == "" {
		return "", false
	}

	if hasGlobMeta(pattern) {
		ok, err := filepath.Match(pattern, filepath.Base(path))
		if err != nil || !ok {
			return "", false
		}
		return path, true
	}

	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if seg == pattern {
			return strings.Join(segments[:i+1], "/"), true
		}
	}
	return "", false
}

// isUnder reports whether path is strictly inside dir (both repo-relative).
func isUnder(path, dir string) bool {
	return strings.HasPrefix(path, dir+"/")
}
