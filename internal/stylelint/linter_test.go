package stylelint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yacobolo/cssdecl"
)

func newTestLinter(config Config) *Linter {
	return &Linter{config: config, log: zap.NewNop()}
}

func attribute(line string) StyleAttribute {
	attrs := extractStylesFromLine(line, 1, "page.html")
	if len(attrs) != 1 {
		panic("expected one style attribute in " + line)
	}
	return attrs[0]
}

func TestCheckAttribute(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		line        string
		wantText    []string
		wantColumn  []int
		wantFix     string
		wantInvalid int
	}{
		{
			name:        "invalid value",
			config:      Config{CheckNormalized: true},
			line:        `<div style="width: wide; color: red">`,
			wantText:    []string{`invalid value "wide" for width`},
			wantColumn:  []int{13},
			wantInvalid: 1,
		},
		{
			name:        "invalid shorthand is reported at its name",
			line:        `<div style="color: red; margin: 1px bogus">`,
			wantText:    []string{`invalid value "1px bogus" for margin`},
			wantColumn:  []int{25},
			wantInvalid: 1,
		},
		{
			name:       "not normalized",
			config:     Config{CheckNormalized: true},
			line:       `<p style="margin:1px 1px 1px 1px;color:red">`,
			wantText:   []string{`style attribute is not normalized, use "margin: 1px; color: red;"`},
			wantColumn: []int{11},
			wantFix:    "margin: 1px; color: red;",
		},
		{
			name:   "already normalized",
			config: Config{CheckNormalized: true},
			line:   `<p style="margin: 1px; color: red;">`,
		},
		{
			name:       "normalized suggestion fits the attribute quotes",
			config:     Config{CheckNormalized: true},
			line:       `<p style="background-image: url(a.png)">`,
			wantText:   []string{`style attribute is not normalized, use "background-image: url('a.png');"`},
			wantColumn: []int{11},
			wantFix:    "background-image: url('a.png');",
		},
		{
			name:       "unknown property",
			config:     Config{CheckUnknown: true},
			line:       `<p style="grid-area: a; -webkit-x: y; --t: 1">`,
			wantText:   []string{`unknown property "grid-area"`},
			wantColumn: []int{11},
		},
		{
			name: "unknown properties ignored by default",
			line: `<p style="grid-area: a">`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := &Result{Categories: map[cssdecl.Category]int{}}
			newTestLinter(tt.config).checkAttribute(attribute(tt.line), result)

			require.Len(t, result.Issues, len(tt.wantText))
			for i, issue := range result.Issues {
				assert.Equal(t, tt.wantText[i], issue.Text)
				assert.Equal(t, tt.wantColumn[i], issue.Pos.Column)
				assert.Equal(t, LinterName, issue.FromLinter)
				assert.Equal(t, []string{tt.line}, issue.SourceLines)
			}
			if tt.wantFix != "" {
				require.NotNil(t, result.Issues[0].Replacement)
				assert.Equal(t, tt.wantFix, result.Issues[0].Replacement.NewText)
			}
			assert.Equal(t, tt.wantInvalid, result.Invalid)
			assert.Equal(t, 1, result.Attributes)
		})
	}
}

func TestCheckAttributeCategories(t *testing.T) {
	result := &Result{Categories: map[cssdecl.Category]int{}}
	l := newTestLinter(Config{})
	l.checkAttribute(attribute(`<p style="color: red; margin: 0; font-size: 1em; --x: 1">`), result)

	assert.Equal(t, 4, result.Declarations)
	assert.Equal(t, 1, result.Categories[cssdecl.CategoryVisual])
	assert.Equal(t, 1, result.Categories[cssdecl.CategoryLayout])
	assert.Equal(t, 1, result.Categories[cssdecl.CategoryTypography])
	assert.Equal(t, 1, result.Categories[cssdecl.CategoryTokens])
	assert.Equal(t, 1, result.Unknown)
}

func TestLimitIssues(t *testing.T) {
	issues := []Issue{
		{Text: "a"}, {Text: "a"}, {Text: "a"}, {Text: "b"}, {Text: "c"},
	}

	limited, truncated := limitIssues(issues, Config{MaxSameIssues: 2})
	assert.Len(t, limited, 4)
	assert.Equal(t, 1, truncated)

	limited, truncated = limitIssues(issues, Config{MaxIssuesPerLinter: 2})
	assert.Len(t, limited, 2)
	assert.Equal(t, 3, truncated)
}

func TestRequote(t *testing.T) {
	assert.Equal(t, `url('a.png')`, requote(`url("a.png")`, '"'))
	assert.Equal(t, `font-family: "A B"`, requote(`font-family: 'A B'`, '\''))
	assert.Equal(t, `url("a.png")`, requote(`url("a.png")`, 0))
}

func TestLintEndToEnd(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "views", "page.html")
	require.NoError(t, os.MkdirAll(filepath.Dir(page), 0o755))
	content := "<main>\n" +
		"  <div style=\"width: wide\"></div>\n" +
		"  <p style=\"margin:0 0 0 0\"></p>\n" +
		"  <span style=\"color: red;\"></span>\n" +
		"</main>\n"
	require.NoError(t, os.WriteFile(page, []byte(content), 0o644))

	l := New(Config{
		Paths:           []string{filepath.Join(dir, "**/*.html")},
		CheckNormalized: true,
	}, zap.NewNop())

	result, err := l.Lint()
	require.NoError(t, err)

	assert.Equal(t, 1, result.FilesScanned)
	assert.Equal(t, 3, result.Attributes)
	assert.Equal(t, 1, result.ErrorCount)
	assert.Equal(t, 1, result.NonNormalized)
	require.Len(t, result.Issues, 2)
	assert.Equal(t, SeverityError, result.Issues[0].Severity)
	assert.Equal(t, 2, result.Issues[0].Pos.Line)
	assert.Equal(t, SeverityWarning, result.Issues[1].Severity)
	assert.Equal(t, 3, result.Issues[1].Pos.Line)

	fixed := l.Fix(result.Issues)
	assert.Empty(t, fixed.Warnings)
	assert.Equal(t, 1, fixed.FilesChanged)
	assert.Equal(t, 1, fixed.AttributesFixed)

	data, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<p style="margin: 0px;"></p>`)
	assert.Contains(t, string(data), `<div style="width: wide"></div>`)

	again, err := l.Lint()
	require.NoError(t, err)
	assert.Equal(t, 0, again.NonNormalized)
}

func TestLintBadPattern(t *testing.T) {
	_, err := New(Config{Paths: []string{"[unclosed"}}, nil).Lint()
	assert.Error(t, err)
}

func TestFixKeepsGoingAfterFailure(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(page, []byte(`<p style="margin:0"></p>`), 0o644))

	replace := &Replacement{NewText: "margin: 0px;", InlineLength: len("margin:0")}
	issues := []Issue{
		{Pos: IssuePos{Filename: filepath.Join(dir, "missing.html"), Line: 1, Column: 11}, Replacement: replace},
		{Pos: IssuePos{Filename: page, Line: 1, Column: 11}, Replacement: replace},
	}

	fixed := newTestLinter(Config{}).Fix(issues)
	require.Len(t, fixed.Warnings, 1)
	assert.Contains(t, fixed.Warnings[0], "missing.html")
	assert.Equal(t, 1, fixed.FilesChanged)

	data, err := os.ReadFile(page)
	require.NoError(t, err)
	assert.Equal(t, `<p style="margin: 0px;"></p>`, string(data))
}
