package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssdecl",
	Short: "CSS declaration block formatter and style attribute linter",
	Long: `Parse, validate and normalize CSS declaration blocks.
Shorthands are expanded on input and collapsed to their shortest form on output:
  margin:1px 1px 1px 1px;color:red  ->  margin: 1px; color: red;`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".cssdecl.yaml", "Config file path")

	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
