package ignore

import "strings"

// DefaultTemplate is the .gitignore content written when a repository has
// none. It covers interpreter caches, virtual environments, env-var files,
// editor artifacts, logs, local databases, and serialized model files.
const DefaultTemplate = `# Python
__pycache__/
*.py[cod]
*$py.class
*.so

# Virtual Environment
venv/
env/
ENV/
.venv/

# Environment Variables
.env
.env.local

# IDE
.vscode/
.idea/
*.swp
*.swo
.DS_Store

# Logs
*.log

# Database
*.db
*.sqlite
*.sqlite3

# Model files
*.pkl
*.joblib
*.h5
`

// DefaultPatterns returns the non-comment pattern lines of DefaultTemplate.
func DefaultPatterns() []string {
	return Patterns(DefaultTemplate)
}

// Patterns extracts pattern lines from gitignore content, skipping blank
// lines and comments.
func Patterns(content string) []string {
	var patterns []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}
