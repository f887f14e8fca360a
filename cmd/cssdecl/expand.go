package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/cssdecl"
)

var expandCmd = &cobra.Command{
	Use:   "expand <property> <value>",
	Short: "Print the longhands a property value expands to",
	Long: `Set one property and print every stored longhand:
  cssdecl expand border "1px solid red"`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		important, _ := cmd.Flags().GetBool("important")
		d := cssdecl.New("", cssdecl.WithLogger(log))
		if err := d.Set(args[0], args[1], important); err != nil {
			return fmt.Errorf("expand failed: %w", err)
		}

		suffix := ""
		if important {
			suffix = " !important"
		}
		for i := range d.Len() {
			name := d.Item(i)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s%s;\n", name, d.Value(name), suffix)
		}
		return nil
	},
}

func init() {
	expandCmd.Flags().Bool("important", false, "Set the property with !important")
}
