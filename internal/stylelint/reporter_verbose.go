package stylelint

import (
	"fmt"
	"io"
	"sort"

	"github.com/yacobolo/cssdecl"
)

// VerboseReporter handles detailed statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed linting statistics
func (r *VerboseReporter) PrintStatistics(result Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Style Linter Statistics", r.useColors))
	fmt.Fprintln(r.w, "------------------------")

	fmt.Fprintf(r.w, "Files Scanned:      %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:      %d\n", result.FilesSkipped)
	fmt.Fprintf(r.w, "Style Attributes:   %d\n", result.Attributes)
	fmt.Fprintf(r.w, "Declarations:       %d\n", result.Declarations)
	fmt.Fprintf(r.w, "Invalid Values:     %d\n", result.Invalid)
	fmt.Fprintf(r.w, "Unknown Properties: %d\n", result.Unknown)
	fmt.Fprintf(r.w, "Not Normalized:     %d\n", result.NonNormalized)
}

// categoryOrder is the display order of property categories.
var categoryOrder = []cssdecl.Category{
	cssdecl.CategoryLayout,
	cssdecl.CategoryVisual,
	cssdecl.CategoryTypography,
	cssdecl.CategoryEffects,
	cssdecl.CategoryTokens,
	cssdecl.CategoryInternal,
}

// PrintCategories shows how declarations spread over property categories
func (r *VerboseReporter) PrintCategories(result Result) {
	if result.Declarations == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Declarations by Category", r.useColors))
	fmt.Fprintln(r.w, "--------------------------")

	order := append([]cssdecl.Category(nil), categoryOrder...)
	sort.SliceStable(order, func(i, j int) bool {
		return result.Categories[order[i]] > result.Categories[order[j]]
	})
	for _, c := range order {
		n := result.Categories[c]
		if n == 0 {
			continue
		}
		pct := float64(n) * 100 / float64(result.Declarations)
		fmt.Fprintf(r.w, "%-12s %4d (%.1f%%)\n", c, n, pct)
	}
}

// PrintWarnings shows files that could not be read
func (r *VerboseReporter) PrintWarnings(result Result) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}
