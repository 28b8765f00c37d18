package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"exportcheck/internal/inventory"
	"exportcheck/internal/schema"
)

// PrefixFunc derives a candidate export prefix from a file name.
// ok=false rejects the file.
type PrefixFunc func(name string) (string, bool)

// CatalogPrefix derives the prefix by stripping a known catalog suffix
// from the file name. The longest matching suffix wins, so "A_cs_ce.csv"
// yields "A" rather than "A_cs". Files ending in an unknown suffix fall
// back to dropping the final underscore-delimited token.
func CatalogPrefix(cat schema.Catalog) PrefixFunc {
	return func(name string) (string, bool) {
		if !strings.HasSuffix(name, ".csv") {
			return "", false
		}
		best := ""
		matched := false
		for _, tbl := range cat {
			p, found := strings.CutSuffix(name, "_"+tbl.Suffix+".csv")
			if found && p != "" && (!matched || len(p) < len(best)) {
				best = p
				matched = true
			}
		}
		if matched {
			return best, true
		}
		base := strings.TrimSuffix(name, ".csv")
		i := strings.LastIndex(base, "_")
		if i <= 0 {
			return "", false
		}
		return base[:i], true
	}
}

// FirstTwoTokens is the legacy inference heuristic: the first two
// underscore-delimited tokens of the file name. It misderives prefixes
// that are a single token.
func FirstTwoTokens(name string) (string, bool) {
	if !strings.HasSuffix(name, ".csv") {
		return "", false
	}
	parts := strings.Split(strings.TrimSuffix(name, ".csv"), "_")
	if len(parts) < 2 {
		return "", false
	}
	return parts[0] + "_" + parts[1], true
}

// DiscoverPrefixes scans dir for CSV files and derives the deduplicated
// prefix set using fn. The result is sorted so batch output is
// deterministic.
func DiscoverPrefixes(dir string, fn PrefixFunc) ([]string, error) {
	if err := inventory.CheckDir(dir); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	seen := make(map[string]struct{})
	var prefixes []string
	for _, e := range entries {
		fi, err := os.Stat(filepath.Join(dir, e.Name()))
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		p, ok := fn(e.Name())
		if !ok {
			continue
		}
		p = inventory.NormalizePrefix(p)
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)
	return prefixes, nil
}
