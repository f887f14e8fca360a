package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssdecl"
)

var getCmd = &cobra.Command{
	Use:   "get <property> [css]",
	Short: "Print the value of a property in a declaration block",
	Long: `Print the value of one property. Shorthands are rebuilt from their longhands:
  cssdecl get margin "margin-top: 1px; margin-right: 2px; margin-bottom: 1px; margin-left: 2px"
prints "1px 2px". With no css argument the block is read from standard input.`,
	Args: cobra.RangeArgs(1, 2),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		blocks, err := readBlocks(cmd, args[1:])
		if err != nil {
			return err
		}

		d := cssdecl.New(blocks[0], cssdecl.WithLogger(log))
		v, ok := d.Get(args[0])
		if !ok {
			return fmt.Errorf("%s has no value", args[0])
		}
		if v.Important {
			fmt.Fprintf(cmd.OutOrStdout(), "%s !important\n", v.Value)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), v.Value)
		return nil
	},
}
