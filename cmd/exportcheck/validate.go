package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"exportcheck/internal/exitcode"
	"exportcheck/internal/inventory"
	"exportcheck/internal/logging"
	"exportcheck/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <path> [prefix...]",
	Short: "Validate one or more patient exports in a directory",
	Long:  "Validates the patient exports identified by the given prefixes, or every prefix discovered in the directory when none are given.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.BoolVar(&cfg.CheckDuplicateLines, "check-duplicate-lines", false, "Also scan every file for duplicate consecutive lines")
	f.BoolVar(&cfg.CheckMissing, "check-missing", false, "Also report expected files absent from disk")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := cfg.ValidateLogFormat(); err != nil {
		fmt.Fprintln(os.Stderr, "exportcheck:", err)
		os.Exit(exitcode.UsageError)
	}
	log := logging.Setup(cfg.LogFormat, cfg.Verbose)

	cfg.Dir = args[0]
	cfg.Prefixes = args[1:]
	if cfg.SchemaFile != "" {
		if err := cfg.LoadSchemaFile(cfg.SchemaFile); err != nil {
			log.Error().Err(err).Msg("schema load failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	batch := &validate.Batch{
		Dir:     cfg.Dir,
		Catalog: cfg.Catalog,
		Options: validate.Options{
			DuplicateLines: cfg.CheckDuplicateLines,
			MissingFiles:   cfg.CheckMissing,
		},
		Log: log,
	}
	sum, err := batch.Run(cfg.Prefixes)
	if err != nil {
		log.Error().Err(err).Msg("batch run failed")
		if errors.Is(err, inventory.ErrPathNotFound) ||
			errors.Is(err, inventory.ErrNotADirectory) ||
			errors.Is(err, inventory.ErrEmptyDirectory) {
			os.Exit(exitcode.PathError)
		}
		os.Exit(exitcode.UsageError)
	}

	printSummary(sum)
	if len(sum.Failed) > 0 {
		os.Exit(exitcode.ValidationFailed)
	}
	return nil
}

func printSummary(sum *validate.Summary) {
	for _, rep := range sum.Reports {
		fmt.Printf("=== %s ===\n", rep.Prefix)
		for _, cr := range rep.Results {
			if cr.Result.Passed() {
				fmt.Printf("  %-22s passed\n", cr.Check)
				continue
			}
			fmt.Printf("  %-22s failed\n", cr.Check)
			for _, msg := range cr.Result.Messages() {
				fmt.Printf("    - %s\n", msg)
			}
		}
		if rep.Passed {
			fmt.Printf("%s: passed\n\n", rep.Prefix)
		} else {
			fmt.Printf("%s: failed\n\n", rep.Prefix)
		}
	}
	if len(sum.Failed) == 0 {
		fmt.Printf("All %d patients passed\n", len(sum.Attempted))
		return
	}
	fmt.Printf("%d of %d patients failed: %s\n",
		len(sum.Failed), len(sum.Attempted), strings.Join(sum.Failed, ", "))
}
