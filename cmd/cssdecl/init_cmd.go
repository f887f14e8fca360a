package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const configFileName = ".cssdecl.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssdecl.yaml config file",
	Long:  `Create a .cssdecl.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(configFileName); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
		}

		if err := os.WriteFile(configFileName, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
		return nil
	},
}

const defaultConfig = `# cssdecl configuration
# Docs: https://github.com/yacobolo/cssdecl

# Shared settings
verbose: false
color: false

# Formatting settings
format:
  strict: false            # fail when a declaration is rejected

# Linting settings
lint:
  paths:
    - "web/**/*.html"
    - "internal/**/*.templ"
  strict: false
  output-format: issues    # issues | summary | full | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
  check-normalized: true
  check-unknown: false
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
