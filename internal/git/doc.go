// Package git provides git operations via shell commands.
//
// All operations use [os/exec.Command] to call the git CLI directly rather than
// using Go git libraries. This approach is simpler, more reliable, and ensures
// compatibility with user configurations (SSH keys, credential helpers, aliases).
//
// # Repository Checks
//
//   - [CheckGit]: Verify git is installed
//   - [RequireRepo]: Fail fast when a directory is not a repository root
//   - [IsInsideRepo]: rev-parse based detection
//
// # Index Operations
//
// The core of scrub is index manipulation that never touches the working
// tree:
//
//   - [ListTracked]: Enumerate paths in the index
//   - [Untrack]: Remove a path from the index recursively, keep it on disk
//   - [StageAll]: Stage all changes respecting ignore rules
//   - [Status], [StatusPorcelain]: Status for human and machine consumption
package git
