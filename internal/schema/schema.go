package schema

import "fmt"

// Table describes one logical table in a patient export: the file-name
// suffix it is stored under and, for a subset of tables, the date columns
// that must never be empty.
type Table struct {
	Name          string   `yaml:"name"`
	Suffix        string   `yaml:"suffix"`
	RequiredDates []string `yaml:"required_dates"`
}

// FileName returns the on-disk file name for this table under the given
// (normalized) prefix.
func (t Table) FileName(prefix string) string {
	return prefix + "_" + t.Suffix + ".csv"
}

// Catalog is the full set of tables expected in one export. It is built
// once at startup and never mutated afterwards.
type Catalog []Table

// Default returns the canonical export catalog.
func Default() Catalog {
	return Catalog{
		{Name: "enumeration", Suffix: "enumeration"},
		{Name: "enumerationvalue", Suffix: "enumerationvalue"},
		{Name: "numeric", Suffix: "numeric"},
		{Name: "numericvalue", Suffix: "numericvalue"},
		{Name: "wave", Suffix: "wave"},
		{Name: "wavesample", Suffix: "wavesample"},
		{Name: "ce", Suffix: "ce", RequiredDates: []string{"DATE"}},
		{Name: "cs_ce", Suffix: "cs_ce", RequiredDates: []string{"date"}},
		{Name: "cs", Suffix: "cs", RequiredDates: []string{"FORM_DATE"}},
		{Name: "icd", Suffix: "icd", RequiredDates: []string{"DATE"}},
		{Name: "lab", Suffix: "lab", RequiredDates: []string{"EVENT_DATE", "VALID_DATE"}},
		{Name: "loc", Suffix: "loc", RequiredDates: []string{"BEG_DATE", "END_DATE"}},
		{Name: "meds", Suffix: "meds", RequiredDates: []string{"CHART_DATE"}},
		{Name: "io", Suffix: "io", RequiredDates: []string{"DATE"}},
		{Name: "patient", Suffix: "patient", RequiredDates: []string{"Timestamp"}},
		{Name: "micro", Suffix: "micro"},
		{Name: "suscep", Suffix: "suscep"},
		{Name: "dialysis_ce", Suffix: "dialysis_ce"},
		{Name: "dl_details_recent", Suffix: "dl_details_recent"},
		{Name: "surg", Suffix: "surg"},
		{Name: "alert", Suffix: "alert"},
		{Name: "demo", Suffix: "demo", RequiredDates: []string{"REG_DATE", "DISCH_DATE"}},
	}
}

// ByName returns the table with the given logical name, or ok=false.
func (c Catalog) ByName(name string) (Table, bool) {
	for _, t := range c {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// Suffixes returns the file-name suffixes of all tables in catalog order.
func (c Catalog) Suffixes() []string {
	out := make([]string, len(c))
	for i, t := range c {
		out[i] = t.Suffix
	}
	return out
}

// ExpectedFilenames returns every file name the catalog expects for the
// given prefix, in catalog order.
func (c Catalog) ExpectedFilenames(prefix string) []string {
	out := make([]string, len(c))
	for i, t := range c {
		out[i] = t.FileName(prefix)
	}
	return out
}

// Validate checks that every entry has a non-empty name and a unique,
// non-empty suffix. Suffixes are compared case-sensitively.
func (c Catalog) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("catalog has no tables")
	}
	suffixes := make(map[string]string, len(c))
	for _, t := range c {
		if t.Name == "" {
			return fmt.Errorf("table with suffix %q has no name", t.Suffix)
		}
		if t.Suffix == "" {
			return fmt.Errorf("table %q has no suffix", t.Name)
		}
		if other, dup := suffixes[t.Suffix]; dup {
			return fmt.Errorf("tables %q and %q share suffix %q", other, t.Name, t.Suffix)
		}
		suffixes[t.Suffix] = t.Name
	}
	return nil
}
