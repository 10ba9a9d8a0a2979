package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tabload/config"
	"tabload/loader"
	"tabload/output"
)

var (
	convertInput  string
	convertOutput string
	convertFrom   string
	convertTo     string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a tabular file between CSV, Excel, and JSON",
	Long: `Load the input file and write it back out in another format. Column
order and cell values carry over unchanged; no cleaning or coercion
happens on the way through.

Formats are inferred from the file extensions when --from/--to are
omitted.`,
	Example: `
  # CSV to JSON
  tabload convert -i sales.csv -o sales.json

  # Excel to CSV, forcing the input format
  tabload convert -i export.dat --from excel -o export.csv
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		fromFormat, err := resolveInputFormat(convertFrom, convertInput, cfg.Loader.DefaultFormat)
		if err != nil {
			return err
		}
		toFormat, err := resolveInputFormat(convertTo, convertOutput, cfg.Loader.DefaultFormat)
		if err != nil {
			return err
		}

		dataset, err := loader.New(logger).Load(convertInput, string(fromFormat))
		if err != nil {
			return err
		}

		writer, err := output.WriterForFormat(toFormat)
		if err != nil {
			return err
		}
		if err := writer.Write(convertOutput, dataset); err != nil {
			return err
		}

		fmt.Printf("Convert completed. Rows: %d, From: %s, To: %s, File: %s\n",
			dataset.NumRows(), fromFormat, toFormat, convertOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "Input file path")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file path")
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "Input format: csv|excel|json (optional, inferred from extension)")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "Output format: csv|excel|json (optional, inferred from extension)")

	_ = convertCmd.MarkFlagRequired("input")
	_ = convertCmd.MarkFlagRequired("output")
}
