// Package stylelint checks inline style attributes in source files.
//
// Every style="..." attribute found by the scanner is split into
// declarations and checked against the cssdecl property catalog:
//
//   - Invalid:       a known property rejects its value (error)
//   - Unknown:       the property is outside the catalog (warning, optional)
//   - Not normalized: the attribute differs from its serialized form (warning,
//     optional, fixable)
//
// Custom properties (--*) and vendor prefixed names are never reported as
// unknown.
package stylelint

import (
	"fmt"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/cssdecl"
	"github.com/yacobolo/cssdecl/internal/scan"
)

// Linter scans files for style attributes and reports issues.
type Linter struct {
	config    Config
	log       *zap.Logger
	gitignore *ignore.GitIgnore
}

// New creates a linter. A nil logger disables logging.
func New(config Config, log *zap.Logger) *Linter {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("stylelint")
	return &Linter{
		config:    config,
		log:       log,
		gitignore: loadGitIgnore(log),
	}
}

// Lint scans the configured paths. Files that cannot be read are listed in
// Result.Warnings and do not stop the run.
func (l *Linter) Lint() (*Result, error) {
	files, stats, err := l.expandGlobPatterns(l.config.Paths)
	if err != nil {
		return nil, fmt.Errorf("glob pattern error: %w", err)
	}

	result := &Result{
		FilesScanned: stats.FilesScanned,
		FilesSkipped: stats.FilesSkipped,
		Categories:   make(map[cssdecl.Category]int),
	}

	var readErrs error
	for _, file := range files {
		attrs, err := scanFile(file)
		if err != nil {
			readErrs = multierr.Append(readErrs, fmt.Errorf("read %s: %w", file, err))
			continue
		}
		for _, attr := range attrs {
			l.checkAttribute(attr, result)
		}
	}
	for _, err := range multierr.Errors(readErrs) {
		l.log.Warn("skipped unreadable file", zap.Error(err))
		result.Warnings = append(result.Warnings, err.Error())
	}

	if l.config.MaxIssuesPerLinter > 0 || l.config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, l.config)
	}
	for _, issue := range result.Issues {
		if issue.Severity == SeverityError {
			result.ErrorCount++
		}
	}

	l.log.Debug("lint finished",
		zap.Int("files", result.FilesScanned),
		zap.Int("attributes", result.Attributes),
		zap.Int("issues", len(result.Issues)))
	return result, nil
}

// checkAttribute validates each declaration of attr, then compares the
// attribute with its normalized form.
func (l *Linter) checkAttribute(attr StyleAttribute, result *Result) {
	result.Attributes++

	invalid := false
	for _, pair := range scan.All(attr.Value) {
		result.Declarations++
		result.Categories[cssdecl.CategoryOf(pair.Name)]++
		column := attr.Location.Column + pair.Offset

		if !cssdecl.IsKnown(pair.Name) {
			result.Unknown++
			if l.config.CheckUnknown && !strings.HasPrefix(pair.Name, "-") {
				result.Issues = append(result.Issues, l.issue(attr, column, SeverityWarning,
					fmt.Sprintf(IssueUnknownProperty, pair.Name)))
			}
			continue
		}

		if err := cssdecl.New("").Set(pair.Name, pair.Value, pair.Important); err != nil {
			invalid = true
			result.Invalid++
			l.log.Debug("invalid declaration",
				zap.String("file", attr.Location.File),
				zap.Int("line", attr.Location.Line),
				zap.Error(err))
			result.Issues = append(result.Issues, l.issue(attr, column, SeverityError,
				fmt.Sprintf(IssueInvalidValue, pair.Value, pair.Name)))
		}
	}

	if !l.config.CheckNormalized || invalid {
		return
	}
	normalized := requote(cssdecl.New(attr.Value).String(), attr.Quote)
	if normalized == "" || normalized == strings.TrimSpace(attr.Value) {
		return
	}
	result.NonNormalized++
	issue := l.issue(attr, attr.Location.Column, SeverityWarning,
		fmt.Sprintf(IssueNotNormalized, normalized))
	issue.Replacement = &Replacement{
		NewText:      normalized,
		InlineLength: len(attr.Value),
	}
	result.Issues = append(result.Issues, issue)
}

func (l *Linter) issue(attr StyleAttribute, column int, severity, text string) Issue {
	filename := attr.Location.File
	if filepath.IsAbs(filename) {
		filename = GetRelativePath(filename)
	}
	return Issue{
		FromLinter:  LinterName,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{attr.Location.Text},
		Pos: IssuePos{
			Filename: filename,
			Line:     attr.Location.Line,
			Column:   column,
		},
	}
}

// requote swaps quotes in a serialized block so it fits inside an attribute
// delimited by quote.
func requote(text string, quote byte) string {
	switch quote {
	case '"':
		return strings.ReplaceAll(text, `"`, `'`)
	case '\'':
		return strings.ReplaceAll(text, `'`, `"`)
	}
	return text
}

// limitIssues applies max-issues-per-linter and max-same-issues
func limitIssues(issues []Issue, config Config) ([]Issue, int) {
	originalCount := len(issues)

	if config.MaxIssuesPerLinter > 0 && len(issues) > config.MaxIssuesPerLinter {
		issues = issues[:config.MaxIssuesPerLinter]
	}

	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
