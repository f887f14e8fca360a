package stylelint

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: `  <div style="color: red">`,
			column:     15,
			want:       "              ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t<p style=\"margin: 0\">",
			column:     13,
			want:       "\t\t          ^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, reporter.buildCaretIndicator(tt.sourceLine, tt.column))
		})
	}
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf, printLines: true, printLinterName: true}

	r.PrintIssues([]Issue{
		{
			FromLinter:  LinterName,
			Text:        `invalid value "wide" for width`,
			Severity:    SeverityError,
			SourceLines: []string{`<div style="width: wide">`},
			Pos:         IssuePos{Filename: "b.html", Line: 1, Column: 13},
		},
		{
			FromLinter: LinterName,
			Text:       `unknown property "grid-area"`,
			Severity:   SeverityWarning,
			Pos:        IssuePos{Filename: "a.html", Line: 4, Column: 2},
		},
	})

	want := "a.html:4:2: unknown property \"grid-area\" (stylelint)\n" +
		"b.html:1:13: invalid value \"wide\" for width (stylelint)\n" +
		"\t<div style=\"width: wide\">\n" +
		"\t            ^\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{
			name:   "no issues",
			result: Result{},
			want:   "\n0 issues:\n",
		},
		{
			name: "mixed severities",
			result: Result{
				Issues: []Issue{
					{FromLinter: LinterName, Severity: SeverityError},
					{FromLinter: LinterName, Severity: SeverityWarning},
				},
				TruncatedCount: 3,
			},
			want: "\n2 issues (1 error, 1 warning, 3 issues truncated):\n* stylelint: 2\n\nHint: Run with --fix to apply normalized suggestions\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			(&Reporter{w: &buf}).PrintSummary(tt.result)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
