package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tabload/config"
	"tabload/loader"
)

var (
	infoInput string
	infoType  string
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Load a tabular file and show its row and column counts",
	Long: `Load a file and print its shape: row count, column count, and the
column names from the header row. The file itself is never modified.

When --type is omitted, the format is inferred from the file extension;
files without a recognized extension fall back to the configured default
(loader.default_format).`,
	Example: `
  # Inspect a CSV file
  tabload info -i data/raw/sales.csv

  # Inspect an Excel export regardless of its extension
  tabload info -i dump.bin --type excel
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		format, err := resolveInputFormat(infoType, infoInput, cfg.Loader.DefaultFormat)
		if err != nil {
			return err
		}

		dataset, err := loader.New(logger).Load(infoInput, string(format))
		if err != nil {
			return err
		}

		fmt.Printf("File: %s\n", infoInput)
		fmt.Printf("Format: %s\n", format)
		fmt.Printf("Rows: %d\n", dataset.NumRows())
		fmt.Printf("Columns: %d (%s)\n", dataset.NumCols(), strings.Join(dataset.Columns, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&infoInput, "input", "i", "", "Input file path")
	infoCmd.Flags().StringVarP(&infoType, "type", "t", "", "File type: csv|excel|json (optional, inferred from extension when omitted)")

	_ = infoCmd.MarkFlagRequired("input")
}
