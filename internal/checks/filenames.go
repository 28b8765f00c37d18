package checks

import (
	"strings"

	"exportcheck/internal/inventory"
)

// FilenameInventory fails when any file matching the prefix does not map
// to a catalog suffix. All offending names are reported in a single
// aggregate message, in directory iteration order.
type FilenameInventory struct{}

func (FilenameInventory) Name() string { return "filename-inventory" }

func (FilenameInventory) Run(inv *inventory.Inventory) Result {
	if len(inv.Unexpected) == 0 {
		return Pass()
	}
	return Fail("unexpected files found: " + strings.Join(inv.Unexpected, ", "))
}

// MissingFiles reports expected files absent from disk, one message per
// file in catalog order. The baseline run leaves it disabled.
type MissingFiles struct{}

func (MissingFiles) Name() string { return "missing-files" }

func (MissingFiles) Run(inv *inventory.Inventory) Result {
	if len(inv.Missing) == 0 {
		return Pass()
	}
	msgs := make([]string, len(inv.Missing))
	for i, name := range inv.Missing {
		msgs[i] = "missing expected file: " + name
	}
	return Fail(msgs...)
}
