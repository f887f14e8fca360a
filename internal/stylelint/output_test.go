package stylelint

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/cssdecl"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		flag  string
		quiet bool
		want  OutputFormat
	}{
		{"", false, OutputIssues},
		{"summary", false, OutputSummary},
		{"full", false, OutputFull},
		{"json", false, OutputJSON},
		{"json", true, OutputIssues},
		{"markdown", false, OutputIssues},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineOutputFormat(tt.flag, tt.quiet))
		})
	}
}

func sampleResult() *Result {
	return &Result{
		FilesScanned:  2,
		Attributes:    3,
		Declarations:  4,
		Invalid:       1,
		NonNormalized: 1,
		ErrorCount:    1,
		Categories: map[cssdecl.Category]int{
			cssdecl.CategoryLayout: 3,
			cssdecl.CategoryVisual: 1,
		},
		Issues: []Issue{
			{
				FromLinter:  LinterName,
				Text:        `invalid value "wide" for width`,
				Severity:    SeverityError,
				SourceLines: []string{`<div style="width: wide">`},
				Pos:         IssuePos{Filename: "page.html", Line: 2, Column: 13},
			},
			{
				FromLinter:  LinterName,
				Text:        `style attribute is not normalized, use "margin: 0px;"`,
				Severity:    SeverityWarning,
				Pos:         IssuePos{Filename: "page.html", Line: 3, Column: 11},
				Replacement: &Replacement{NewText: "margin: 0px;", InlineLength: 8},
			},
		},
	}
}

func TestBuildJSONOutput(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	out := buildJSONOutput(sampleResult(), now)

	assert.Equal(t, "1.0", out.Version)
	assert.Equal(t, "2025-01-02T03:04:05Z", out.Timestamp)
	assert.Equal(t, JSONSummary{TotalIssues: 2, Errors: 1, Warnings: 1, FilesScanned: 2}, out.Summary)
	assert.Equal(t, 4, out.Stats.Declarations)
	assert.Equal(t, map[string]int{"Layout": 3, "Visual": 1}, out.Categories)
	require.Len(t, out.Issues, 2)
	assert.Equal(t, `<div style="width: wide">`, out.Issues[0].Source)
	assert.Equal(t, "margin: 0px;", out.Issues[1].Suggestion)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	for _, key := range []string{"version", "timestamp", "summary", "stats", "categories", "issues"} {
		assert.Contains(t, decoded, key)
	}
}

func TestWriteOutputAllFormats(t *testing.T) {
	tests := []struct {
		format   OutputFormat
		contains []string
		excludes []string
	}{
		{
			format:   OutputIssues,
			contains: []string{"page.html:2:13:", "2 issues"},
			excludes: []string{"Style Linter Statistics"},
		},
		{
			format:   OutputSummary,
			contains: []string{"Style Linter Statistics", "Declarations by Category", "Layout"},
			excludes: []string{"page.html:2:13:"},
		},
		{
			format:   OutputFull,
			contains: []string{"page.html:2:13:", "Style Linter Statistics"},
		},
		{
			format:   OutputJSON,
			contains: []string{`"total_issues": 2`},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			WriteOutput(&buf, sampleResult(), tt.format, Config{PrintIssuedLines: true}, nil)
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}
