package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssdecl/internal/stylelint"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint inline style attributes",
	Long: `Check style="..." attributes in source files against the property catalog.
Reports invalid values, unknown properties and blocks that are not normalized.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLint(cmd)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", []string{
		"**/*.html",
		"**/*.templ",
	}, "File patterns to scan for style attributes")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (stylelint) suffix on issues")
	f.Bool("check-normalized", true, "Warn when an attribute is not normalized")
	f.Bool("check-unknown", false, "Warn on properties outside the catalog")
	f.Bool("fix", false, "Rewrite attributes that are not normalized")
}

func runLint(cmd *cobra.Command) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	config := buildLintConfig()
	linter := stylelint.New(config, log)

	result, err := linter.Lint()
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := stylelint.DetermineOutputFormat(outputFormat, quiet)

	if fix, _ := cmd.Flags().GetBool("fix"); fix {
		fixed := linter.Fix(result.Issues)
		if !quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "Fixed %d attributes in %d files\n", fixed.AttributesFixed, fixed.FilesChanged)
			for _, w := range fixed.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "  Warning: %s\n", w)
			}
		}
		// Report what is left after fixing
		if fixed.AttributesFixed > 0 {
			if result, err = linter.Lint(); err != nil {
				return fmt.Errorf("lint failed: %w", err)
			}
		}
	}

	if !quiet {
		stylelint.WriteOutput(cmd.OutOrStdout(), result, format, config, log)
	}

	// Default mode: only errors fail the build
	if config.Strict && len(result.Issues) > 0 || result.ErrorCount > 0 {
		os.Exit(1)
	}

	return nil
}
