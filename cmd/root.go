package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"tabload/config"
	"tabload/internal/logging"
)

var (
	cfgFile string
	logger  = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tabload",
	Short: "Load tabular files (CSV, Excel, JSON) and inspect, convert, or store them.",
	Long: `tabload ingests a tabular file into memory exactly as stored on disk:
no cleaning, no type coercion, no schema validation.

Supported input formats:
- CSV: .csv (UTF-8, BOM tolerated)
- Excel: .xlsx, .xlsm, .xls (first sheet)
- JSON: .json (array of records)

The first row (or the first record's keys) is the header; everything
beneath it is data.`,
	Example: `
  # Show row and column counts
  tabload info -i data/raw/sales.csv

  # Preview the first rows of an Excel sheet
  tabload preview -i report.xlsx --rows 5

  # Convert CSV to JSON
  tabload convert -i sales.csv -o sales.json

  # Import into the local SQLite database
  tabload import -i sales.csv --table sales

  # Export a stored dataset back to Excel
  tabload export --table sales -o sales.xlsx
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	config.SetDefaults()

	rootCmd.PersistentFlags().StringVar(&cfgFile, "configFile", "", "Config file override (default discovery: $HOME/.tabload.yaml, then ./.tabload.yaml)")

	// Logging is initialized here, once, from validated configuration.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		logger, err = logging.New(cfg.Log.Level)
		if err != nil {
			return err
		}
		return nil
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".tabload" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tabload")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// Defaults cover every key, so a missing config file is fine.
	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		fmt.Fprintln(os.Stderr, "Could not read config file:", err)
	}
}
