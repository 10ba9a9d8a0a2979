package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tabload/config"
	"tabload/loader"
	"tabload/tabular"
)

var (
	previewInput string
	previewType  string
	previewRows  int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Load a tabular file and print its first rows",
	Long: `Load a file and print the header plus the first N data rows as an
aligned text table. N comes from --rows, falling back to preview.rows in
the configuration.`,
	Example: `
  # Preview with the configured row count
  tabload preview -i sales.csv

  # Preview the first 3 rows of a JSON record array
  tabload preview -i events.json --rows 3
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		format, err := resolveInputFormat(previewType, previewInput, cfg.Loader.DefaultFormat)
		if err != nil {
			return err
		}

		dataset, err := loader.New(logger).Load(previewInput, string(format))
		if err != nil {
			return err
		}

		limit := previewRows
		if limit <= 0 {
			limit = cfg.Preview.Rows
		}
		if limit > dataset.NumRows() {
			limit = dataset.NumRows()
		}

		writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, strings.Join(dataset.Columns, "\t"))
		for _, row := range dataset.Rows[:limit] {
			cells := make([]string, len(dataset.Columns))
			for i, column := range dataset.Columns {
				cells[i] = tabular.FormatValue(row[column])
			}
			fmt.Fprintln(writer, strings.Join(cells, "\t"))
		}
		if err := writer.Flush(); err != nil {
			return fmt.Errorf("flush preview output: %w", err)
		}

		if limit < dataset.NumRows() {
			fmt.Printf("... %d of %d rows shown\n", limit, dataset.NumRows())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewInput, "input", "i", "", "Input file path")
	previewCmd.Flags().StringVarP(&previewType, "type", "t", "", "File type: csv|excel|json (optional, inferred from extension when omitted)")
	previewCmd.Flags().IntVarP(&previewRows, "rows", "n", 0, "Number of rows to show (default from preview.rows config)")

	_ = previewCmd.MarkFlagRequired("input")
}
