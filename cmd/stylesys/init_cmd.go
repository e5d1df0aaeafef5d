package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .stylesys.yaml config file",
	Long:  `Create a .stylesys.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".stylesys.yaml"); err == nil && !force {
			return fmt.Errorf(".stylesys.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".stylesys.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .stylesys.yaml")
		return nil
	},
}

const defaultConfig = `# stylesys configuration
# Docs: https://github.com/yacobolo/stylesys

# Shared settings
verbose: false
color: false

# Breakpoints, smallest first. Responsive values use these names;
# list values map index 1.. to them in order.
theme:
  breakpoints:
    - name: sm
      min-width: 640px
    - name: md
      min-width: 768px
    - name: lg
      min-width: 1024px
    - name: xl
      min-width: 1280px
    - name: 2xl
      min-width: 1536px

# Generation settings
generate:
  source: styles
  include:
    - "**/*.style.yaml"
    - "**/*.style.yml"
  output: dist/layout.css
  format: summary          # summary | json | css
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
