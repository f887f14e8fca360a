package stylelint

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// FixResult reports what Fix rewrote.
type FixResult struct {
	FilesChanged    int
	AttributesFixed int
	Warnings        []string
}

// Fix rewrites every style attribute that has a Replacement in issues.
// Files are rewritten in place; a file that fails is listed in Warnings and
// the remaining files are still fixed.
func (l *Linter) Fix(issues []Issue) *FixResult {
	byFile := make(map[string][]Issue)
	var files []string
	for _, issue := range issues {
		if issue.Replacement == nil {
			continue
		}
		if _, ok := byFile[issue.Pos.Filename]; !ok {
			files = append(files, issue.Pos.Filename)
		}
		byFile[issue.Pos.Filename] = append(byFile[issue.Pos.Filename], issue)
	}
	sort.Strings(files)

	result := &FixResult{}
	var errs error
	for _, file := range files {
		n, err := fixFile(file, byFile[file])
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("fix %s: %w", file, err))
			continue
		}
		if n == 0 {
			continue
		}
		l.log.Debug("fixed file", zap.String("file", file), zap.Int("attributes", n))
		result.FilesChanged++
		result.AttributesFixed += n
	}
	for _, err := range multierr.Errors(errs) {
		l.log.Warn("fix failed", zap.Error(err))
		result.Warnings = append(result.Warnings, err.Error())
	}
	return result
}

// fixFile applies replacements right to left so earlier columns stay valid.
func fixFile(path string, issues []Issue) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	lines := strings.Split(string(data), "\n")

	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column > issues[j].Pos.Column
	})

	fixed := 0
	for _, issue := range issues {
		idx := issue.Pos.Line - 1
		start := issue.Pos.Column - 1
		if idx < 0 || idx >= len(lines) || start < 0 {
			continue
		}
		line := lines[idx]
		end := start + issue.Replacement.InlineLength
		if end > len(line) {
			continue
		}
		lines[idx] = line[:start] + issue.Replacement.NewText + line[end:]
		fixed++
	}
	if fixed == 0 {
		return 0, nil
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("write: %w", err)
	}
	return fixed, nil
}
