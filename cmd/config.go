package cmd

import "github.com/spf13/cobra"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tabload configuration file values.",
	Long: `Create, edit, and display the tabload configuration file.

The configuration stores application-wide defaults:
- loader.default_format
- preview.rows
- database.path
- log.level`,
	Example: `
  # Create default config in $HOME/.tabload.yaml
  tabload config create

  # Show active config and source file
  tabload config show

  # Open active config in editor (creates example if missing)
  tabload config edit
`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
