package main

import (
	"os"

	"github.com/spf13/cobra"

	"exportcheck/internal/config"
	"exportcheck/internal/exitcode"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "exportcheck",
	Short: "Clinical-record CSV export validator",
	Long:  "Validates a directory of exported clinical-record CSV files against the expected file inventory and a set of structural content checks.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.BoolVar(&cfg.Verbose, "verbose", false, "Log per-check passes, not only failures")
	pf.StringVar(&cfg.SchemaFile, "schema", "", "YAML file overriding the expected table catalog")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
