package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tabload/config"
	"tabload/loader"
	"tabload/storage"
)

var (
	importInput  string
	importType   string
	importTable  string
	importDBPath string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load a tabular file and store it in the local SQLite database",
	Long: `Load a file and persist its rows in a local SQLite table so the
dataset can be listed, previewed, and exported later without re-reading
the source.

The table name defaults to a sanitized form of the file's basename.
Re-importing under the same table name replaces the previous contents.`,
	Example: `
  # Import a CSV file as table "sales"
  tabload import -i data/raw/sales.csv

  # Import with an explicit table name and database path
  tabload import -i report.xlsx --table q1_report --db ./datasets.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		format, err := resolveInputFormat(importType, importInput, cfg.Loader.DefaultFormat)
		if err != nil {
			return err
		}

		dataset, err := loader.New(logger).Load(importInput, string(format))
		if err != nil {
			return err
		}

		table := strings.TrimSpace(importTable)
		if table == "" {
			table = defaultTableName(importInput)
		}

		dbPath := importDBPath
		if strings.TrimSpace(dbPath) == "" {
			dbPath = cfg.Database.Path
		}

		store, err := storage.OpenSQLite(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		inserted, err := store.SaveDataset(table, dataset, importInput)
		if err != nil {
			return err
		}

		fmt.Printf("Import completed. Rows: %d, Columns: %d, Table: %s, Database: %s\n",
			inserted, dataset.NumCols(), table, dbPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importInput, "input", "i", "", "Input file path")
	importCmd.Flags().StringVarP(&importType, "type", "t", "", "File type: csv|excel|json (optional, inferred from extension when omitted)")
	importCmd.Flags().StringVar(&importTable, "table", "", "Table name (default derived from the input file name)")
	importCmd.Flags().StringVar(&importDBPath, "db", "", "Path to local SQLite database (default from database.path config)")

	_ = importCmd.MarkFlagRequired("input")
}
