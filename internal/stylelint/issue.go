package stylelint

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "stylelint"
	Text        string       `json:"Text"`        // "invalid value \"wide\" for width"
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`
	Column   int    `json:"Column"` // 1-based
}

// Replacement is the normalized text for a style attribute, applied by Fix.
type Replacement struct {
	NewText      string
	InlineLength int // Length of the attribute value being replaced
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// LinterName is reported in the FromLinter field of every issue.
const LinterName = "stylelint"

// Issue message formats
const (
	IssueInvalidValue    = "invalid value %q for %s"
	IssueUnknownProperty = "unknown property %q"
	IssueNotNormalized   = "style attribute is not normalized, use %q"
)
