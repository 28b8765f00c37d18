package checks

import (
	"fmt"
	"strings"
	"time"

	"exportcheck/internal/dates"
	"exportcheck/internal/inventory"
	"exportcheck/internal/schema"
	"exportcheck/internal/tabular"
)

// NullDates verifies that the designated date columns of each catalog
// table contain no empty values. Tables without required date columns,
// and tables whose file is not on disk, are skipped. A table that fails
// to load is reported and does not stop the remaining tables.
type NullDates struct {
	Catalog schema.Catalog
}

func (NullDates) Name() string { return "null-dates" }

func (c NullDates) Run(inv *inventory.Inventory) Result {
	var msgs []string
	for _, tbl := range c.Catalog {
		if len(tbl.RequiredDates) == 0 {
			continue
		}
		name := tbl.FileName(inv.Prefix)
		if !inv.HasValid(name) {
			continue
		}
		t, err := tabular.Load(inv.Path(name))
		if err != nil {
			msgs = append(msgs, fmt.Sprintf("cannot load %s: %v", name, err))
			continue
		}
		for _, col := range tbl.RequiredDates {
			if _, ok := t.Column(col); !ok {
				msgs = append(msgs, fmt.Sprintf("column %s missing from %s", col, name))
				continue
			}
			nulls := 0
			for _, v := range t.Values(col) {
				if strings.TrimSpace(v) == "" {
					nulls++
				}
			}
			if nulls > 0 {
				msgs = append(msgs, fmt.Sprintf("column %s in %s has %d empty values", col, name, nulls))
			}
		}
	}
	if len(msgs) == 0 {
		return Pass()
	}
	return Fail(msgs...)
}

const (
	demoTable       = "demo"
	dischargeColumn = "DISCH_DATE"
	minYear         = 2000
)

// DischargeDate verifies that the demo table holds exactly one row and
// that its discharge date parses to a year between 2000 and the current
// year inclusive. A missing or unreadable demo file is a failure, not a
// silent pass.
type DischargeDate struct {
	Catalog schema.Catalog
}

func (DischargeDate) Name() string { return "discharge-date" }

func (c DischargeDate) Run(inv *inventory.Inventory) Result {
	tbl, ok := c.Catalog.ByName(demoTable)
	if !ok {
		return Fail(fmt.Sprintf("no %q table in catalog", demoTable))
	}
	name := tbl.FileName(inv.Prefix)
	if !inv.HasValid(name) {
		return Fail("demo file not found: " + name)
	}
	t, err := tabular.Load(inv.Path(name))
	if err != nil {
		return Fail(fmt.Sprintf("cannot load %s: %v", name, err))
	}
	if n := t.NumRows(); n != 1 {
		return Fail(fmt.Sprintf("%s: expected exactly one row, found %d", name, n))
	}
	if _, ok := t.Column(dischargeColumn); !ok {
		return Fail(fmt.Sprintf("column %s missing from %s", dischargeColumn, name))
	}
	val := t.Values(dischargeColumn)[0]
	d, ok := dates.Parse(val)
	if !ok {
		return Fail(fmt.Sprintf("unparseable discharge date %q in %s", val, name))
	}
	maxYear := time.Now().Year()
	if year := d.Year(); year < minYear || year > maxYear {
		return Fail(fmt.Sprintf("discharge date %q in %s outside plausible range %d-%d", val, name, minYear, maxYear))
	}
	return Pass()
}
