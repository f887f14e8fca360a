package stylelint

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/zap"
)

// attrPattern represents a regex pattern for finding inline styles
type attrPattern struct {
	name  string
	regex *regexp.Regexp
}

var (
	// Patterns for finding style attributes. The first submatch is the value.
	patterns = []attrPattern{
		{
			name:  "style attribute with double quotes",
			regex: regexp.MustCompile(`(?:^|\s)style\s*=\s*"([^"]*)"`),
		},
		{
			name:  "style attribute with single quotes",
			regex: regexp.MustCompile(`(?:^|\s)style\s*=\s*'([^']*)'`),
		},
		{
			name:  "style with string literal in braces",
			regex: regexp.MustCompile(`(?:^|\s)style\s*=\s*\{\s*"([^"]*)"`),
		},
	}

	// Comment patterns to skip
	commentPattern = regexp.MustCompile(`^\s*//`)
)

// isGenerated checks if a file is generated and should not be linted
func isGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go") ||
		strings.HasSuffix(path, ".gen.go")
}

// loadGitIgnore loads .gitignore from the current directory.
// A missing .gitignore is not an error.
func loadGitIgnore(log *zap.Logger) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(".gitignore")
	if err != nil {
		log.Debug("no .gitignore loaded", zap.Error(err))
		return nil
	}
	return gi
}

// shouldSkipFile reports whether a file is excluded from scanning.
// Gitignore rules only apply to relative paths (paths within the project).
func (l *Linter) shouldSkipFile(path string) bool {
	if isGenerated(path) {
		return true
	}
	if !filepath.IsAbs(path) && l.gitignore != nil && l.gitignore.MatchesPath(path) {
		return true
	}
	return false
}

// expandGlobPatterns expands globs to files and tracks statistics
func (l *Linter) expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if l.shouldSkipFile(match) {
				l.log.Debug("skipping file", zap.String("file", match))
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// scanFile scans a single file for style attributes
func scanFile(filePath string) ([]StyleAttribute, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var attrs []StyleAttribute
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		attrs = append(attrs, extractStylesFromLine(scanner.Text(), lineNum, filePath)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return attrs, nil
}

// extractStylesFromLine extracts all non-empty style attributes from a line
func extractStylesFromLine(line string, lineNum int, file string) []StyleAttribute {
	if commentPattern.MatchString(line) {
		return nil
	}

	var attrs []StyleAttribute
	claimed := make(map[int]bool)
	for _, pattern := range patterns {
		for _, match := range pattern.regex.FindAllStringSubmatchIndex(line, -1) {
			if len(match) < 4 || claimed[match[2]] {
				continue
			}
			claimed[match[2]] = true

			value := line[match[2]:match[3]]
			if strings.TrimSpace(value) == "" {
				continue
			}
			attrs = append(attrs, StyleAttribute{
				Value: value,
				Quote: line[match[2]-1],
				Location: FileLocation{
					File:   file,
					Line:   lineNum,
					Column: match[2] + 1,
					Text:   line,
				},
			})
		}
	}

	return attrs
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
