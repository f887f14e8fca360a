package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/yacobolo/cssdecl"
)

var formatCmd = &cobra.Command{
	Use:     "format [css...]",
	Aliases: []string{"fmt"},
	Short:   "Normalize CSS declaration blocks",
	Long: `Parse each argument as a declaration block and print its normalized form.
With no arguments the block is read from standard input.
Rejected declarations are reported on stderr and dropped from the output.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().Bool("strict", false, "Exit 1 when a declaration is rejected")
}

func runFormat(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	blocks, err := readBlocks(cmd, args)
	if err != nil {
		return err
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	strict := getBoolWithFallback("strict", "format.strict", false)

	var rejected []error
	for _, block := range blocks {
		d, err := cssdecl.Parse(block, cssdecl.WithLogger(log))
		rejected = append(rejected, multierr.Errors(err)...)
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), d.String())
		}
	}

	if !quiet {
		for _, err := range rejected {
			fmt.Fprintf(cmd.ErrOrStderr(), "rejected: %v\n", err)
		}
	}
	if strict && len(rejected) > 0 {
		return fmt.Errorf("%d declarations rejected", len(rejected))
	}
	return nil
}

// readBlocks returns args, or standard input as a single block when no
// arguments are given.
func readBlocks(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return []string{strings.TrimSpace(string(data))}, nil
}
