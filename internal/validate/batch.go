package validate

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"exportcheck/internal/checks"
	"exportcheck/internal/inventory"
	"exportcheck/internal/schema"
)

// Batch runs one Patient validator per prefix and accumulates failures.
type Batch struct {
	Dir     string
	Catalog schema.Catalog
	Options Options
	Log     zerolog.Logger

	// PrefixFn overrides the inference strategy used when no explicit
	// prefixes are given. Defaults to CatalogPrefix(Catalog).
	PrefixFn PrefixFunc
}

// Summary is the final outcome of one batch run.
type Summary struct {
	RunID     uuid.UUID
	Attempted []string
	Failed    []string
	Reports   []*Report
}

// Run validates the given prefixes, or every prefix discovered in the
// directory when none are given. A prefix whose directory preconditions
// fail is marked failed and never stops the remaining prefixes.
func (b *Batch) Run(prefixes []string) (*Summary, error) {
	runID := uuid.New()
	log := b.Log.With().Str("run_id", runID.String()).Logger()

	if len(prefixes) > 0 {
		normalized := make([]string, 0, len(prefixes))
		for _, p := range prefixes {
			p = inventory.NormalizePrefix(p)
			if p == "" {
				return nil, fmt.Errorf("empty prefix argument")
			}
			normalized = append(normalized, p)
		}
		prefixes = normalized
	} else {
		fn := b.PrefixFn
		if fn == nil {
			fn = CatalogPrefix(b.Catalog)
		}
		var err error
		prefixes, err = DiscoverPrefixes(b.Dir, fn)
		if err != nil {
			return nil, err
		}
		log.Info().Int("count", len(prefixes)).Msg("discovered prefixes")
	}

	sum := &Summary{RunID: runID, Attempted: prefixes}
	for _, prefix := range prefixes {
		p, err := NewPatient(b.Dir, prefix, b.Catalog, b.Options)
		if err != nil {
			log.Error().Err(err).Str("prefix", prefix).Msg("validation aborted")
			sum.Failed = append(sum.Failed, prefix)
			sum.Reports = append(sum.Reports, &Report{
				Prefix: prefix,
				Results: []CheckResult{
					{Check: "preconditions", Result: checks.Fail(err.Error())},
				},
			})
			continue
		}
		rep := p.Run(log)
		sum.Reports = append(sum.Reports, rep)
		if !rep.Passed {
			sum.Failed = append(sum.Failed, prefix)
		}
	}

	log.Info().
		Int("attempted", len(sum.Attempted)).
		Int("failed", len(sum.Failed)).
		Msg("batch complete")
	return sum, nil
}
