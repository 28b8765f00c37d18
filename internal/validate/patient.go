// Package validate binds the schema catalog, file inventory, and
// structural checks into per-patient and batch validation runs.
package validate

import (
	"fmt"

	"github.com/rs/zerolog"

	"exportcheck/internal/checks"
	"exportcheck/internal/inventory"
	"exportcheck/internal/schema"
)

// Options selects the optional checks for a run.
type Options struct {
	// DuplicateLines also scans every file for consecutive duplicate lines.
	DuplicateLines bool
	// MissingFiles also reports expected files absent from disk.
	MissingFiles bool
}

// Patient validates one (directory, prefix) export unit with a fixed,
// ordered list of enabled checks.
type Patient struct {
	inv    *inventory.Inventory
	checks []checks.Check
}

// CheckResult pairs a check name with its outcome.
type CheckResult struct {
	Check  string
	Result checks.Result
}

// Report is the aggregated outcome for one patient. Passed is true iff
// every enabled check passed.
type Report struct {
	Prefix  string
	Results []CheckResult
	Passed  bool
}

// NewPatient normalizes the prefix and resolves the file inventory.
// Directory preconditions (missing path, non-directory, empty directory)
// fail construction here, before any check runs; content-level problems
// never do.
func NewPatient(dir, prefix string, cat schema.Catalog, opts Options) (*Patient, error) {
	prefix = inventory.NormalizePrefix(prefix)
	if prefix == "" {
		return nil, fmt.Errorf("empty prefix")
	}
	inv, err := inventory.Resolve(dir, prefix, cat)
	if err != nil {
		return nil, err
	}

	cs := []checks.Check{checks.FilenameInventory{}}
	if opts.MissingFiles {
		cs = append(cs, checks.MissingFiles{})
	}
	cs = append(cs, checks.DischargeDate{Catalog: cat}, checks.DuplicateHeader{})
	if opts.DuplicateLines {
		cs = append(cs, checks.DuplicateLines{})
	}
	cs = append(cs, checks.NullDates{Catalog: cat})

	return &Patient{inv: inv, checks: cs}, nil
}

// Inventory exposes the resolved inventory, mainly for reporting.
func (p *Patient) Inventory() *inventory.Inventory { return p.inv }

// Run executes every enabled check in declaration order. A failing check
// never stops the ones after it.
func (p *Patient) Run(log zerolog.Logger) *Report {
	rep := &Report{Prefix: p.inv.Prefix, Passed: true}
	for _, c := range p.checks {
		res := c.Run(p.inv)
		rep.Results = append(rep.Results, CheckResult{Check: c.Name(), Result: res})
		if res.Passed() {
			log.Debug().
				Str("prefix", p.inv.Prefix).
				Str("check", c.Name()).
				Msg("check passed")
			continue
		}
		rep.Passed = false
		log.Warn().
			Str("prefix", p.inv.Prefix).
			Str("check", c.Name()).
			Strs("errors", res.Messages()).
			Msg("check failed")
	}
	return rep
}
