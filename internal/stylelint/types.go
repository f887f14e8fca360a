package stylelint

import "github.com/yacobolo/cssdecl"

// Config holds linting configuration
type Config struct {
	Paths  []string // Patterns to scan (e.g., "web/**/*.html")
	Strict bool     // Exit with code 1 if issues found

	CheckNormalized bool // Warn when an attribute differs from its serialized form
	CheckUnknown    bool // Warn on property names outside the catalog

	MaxIssuesPerLinter int  // 0 = unlimited
	MaxSameIssues      int  // 0 = unlimited
	PrintIssuedLines   bool // Show source lines with issues
	PrintLinterName    bool // Show (stylelint) suffix
	UseColors          bool // Force color output
}

// Result contains linting analysis results
type Result struct {
	Issues []Issue

	FilesScanned  int
	FilesSkipped  int // Generated or gitignored files
	Attributes    int // style attributes found
	Declarations  int
	Invalid       int // Declarations rejected by the catalog
	Unknown       int // Declarations outside the catalog
	NonNormalized int // Attributes with a normalized suggestion

	ErrorCount     int
	TruncatedCount int // Issues removed due to limits

	// Declarations per property category
	Categories map[cssdecl.Category]int

	// Files that could not be read
	Warnings []string
}

// StyleAttribute is an inline style found in a source file.
type StyleAttribute struct {
	Value    string
	Quote    byte // Quote character delimiting Value
	Location FileLocation
}

// FileLocation tracks where a style attribute was found
type FileLocation struct {
	File   string
	Line   int
	Column int    // 1-based column of the first byte of the value
	Text   string // Full line content for source display
}

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// OutputFormat selects how results are written.
type OutputFormat string

// Output formats
const (
	OutputIssues  OutputFormat = "issues"
	OutputSummary OutputFormat = "summary"
	OutputFull    OutputFormat = "full"
	OutputJSON    OutputFormat = "json"
)
