package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tabload/config"
	"tabload/output"
	"tabload/storage"
)

var (
	exportTable  string
	exportOutput string
	exportFormat string
	exportDBPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored dataset from SQLite to CSV, Excel, or JSON",
	Long: `Read a previously imported dataset from the local SQLite database and
write it to a file. Column order is restored from the import.

Output format can be selected explicitly via --format or inferred from
the --output extension.`,
	Example: `
  # Export to CSV
  tabload export --table sales -o sales.csv

  # Force Excel format independent of extension
  tabload export --table sales --format excel -o sales.out
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		format, err := resolveInputFormat(exportFormat, exportOutput, cfg.Loader.DefaultFormat)
		if err != nil {
			return err
		}

		dbPath := exportDBPath
		if strings.TrimSpace(dbPath) == "" {
			dbPath = cfg.Database.Path
		}

		store, err := storage.OpenSQLite(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		dataset, err := store.LoadDataset(exportTable)
		if err != nil {
			return err
		}

		writer, err := output.WriterForFormat(format)
		if err != nil {
			return err
		}
		if err := writer.Write(exportOutput, dataset); err != nil {
			return err
		}

		fmt.Printf("Export completed. Rows: %d, Table: %s, Format: %s, File: %s\n",
			dataset.NumRows(), exportTable, format, exportOutput)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportTable, "table", "", "Stored dataset table name")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: csv|excel|json (optional, inferred from output extension)")
	exportCmd.Flags().StringVar(&exportDBPath, "db", "", "Path to local SQLite database (default from database.path config)")

	_ = exportCmd.MarkFlagRequired("table")
	_ = exportCmd.MarkFlagRequired("output")
}
