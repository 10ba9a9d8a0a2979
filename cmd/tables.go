package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tabload/config"
	"tabload/storage"
)

var tablesDBPath string

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List datasets stored in the local SQLite database",
	Example: `
  # List stored datasets
  tabload tables

  # List datasets in a specific database file
  tabload tables --db ./datasets.db
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		dbPath := tablesDBPath
		if strings.TrimSpace(dbPath) == "" {
			dbPath = cfg.Database.Path
		}

		store, err := storage.OpenSQLite(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		infos, err := store.ListTables()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("No datasets stored. Import one first with: tabload import -i <file>")
			return nil
		}

		writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(writer, "TABLE\tROWS\tCOLUMNS\tSOURCE\tIMPORTED AT")
		for _, info := range infos {
			fmt.Fprintf(writer, "%s\t%d\t%d\t%s\t%s\n",
				info.Name, info.RowCount, len(info.Columns), info.SourceFile, info.ImportedAt)
		}
		return writer.Flush()
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)

	tablesCmd.Flags().StringVar(&tablesDBPath, "db", "", "Path to local SQLite database (default from database.path config)")
}
