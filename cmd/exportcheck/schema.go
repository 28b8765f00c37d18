package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"exportcheck/internal/exitcode"
	"exportcheck/internal/inventory"
	"exportcheck/internal/logging"
	"exportcheck/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [prefix]",
	Short: "Print the expected table catalog and file names",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateLogFormat(); err != nil {
		fmt.Fprintln(os.Stderr, "exportcheck:", err)
		os.Exit(exitcode.UsageError)
	}
	log := logging.Setup(cfg.LogFormat, cfg.Verbose)

	if cfg.SchemaFile != "" {
		if err := cfg.LoadSchemaFile(cfg.SchemaFile); err != nil {
			log.Error().Err(err).Msg("schema load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if cfg.Catalog == nil {
		cfg.Catalog = schema.Default()
	}
	if err := cfg.Catalog.Validate(); err != nil {
		log.Error().Err(err).Msg("catalog invalid")
		os.Exit(exitcode.UsageError)
	}

	fmt.Printf("%-20s %-26s %s\n", "TABLE", "SUFFIX", "REQUIRED DATE COLUMNS")
	for _, tbl := range cfg.Catalog {
		fmt.Printf("%-20s %-26s %s\n", tbl.Name, tbl.Suffix+".csv", strings.Join(tbl.RequiredDates, ", "))
	}

	if len(args) == 1 {
		prefix := inventory.NormalizePrefix(args[0])
		fmt.Printf("\nExpected files for prefix %s:\n", prefix)
		for _, name := range cfg.Catalog.ExpectedFilenames(prefix) {
			fmt.Println("  " + name)
		}
	}
	return nil
}
