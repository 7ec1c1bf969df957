package doctor

// IssueCategory groups issues by type.
type IssueCategory string

const (
	// CategoryEnvironment represents problems with the host environment.
	CategoryEnvironment IssueCategory = "environment"
	// CategoryIgnore represents problems with the .gitignore file.
	CategoryIgnore IssueCategory = "ignore"
	// CategoryIndex represents junk or secrets tracked in the git index.
	CategoryIndex IssueCategory = "index"
)

// Issue represents a problem detected by doctor.
type Issue struct {
	Key         string        // path or check identifier
	Description string        // human-readable description
	FixAction   string        // what --fix would do, empty if not fixable
	Category    IssueCategory // issue category
}

// Fixable returns true if --fix can resolve the issue.
func (i Issue) Fixable() bool {
	return i.FixAction != ""
}

// Report is the outcome of a doctor run.
type Report struct {
	Issues []Issue
	Stats  Stats
}

// Stats tracks check counts by category.
type Stats struct {
	ChecksRun      int // total checks performed
	JunkTracked    int // junk entries found in the index
	SecretsTracked int // env-var files found in the index
	IgnoreMissing  int // default patterns absent from .gitignore
}

// Healthy returns true when no issues were found.
func (r Report) Healthy() bool {
	return len(r.Issues) == 0
}
