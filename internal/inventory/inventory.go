package inventory

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"exportcheck/internal/schema"
)

// Precondition errors returned by Resolve and CheckDir. Callers match
// them with errors.Is.
var (
	ErrPathNotFound   = errors.New("path does not exist")
	ErrNotADirectory  = errors.New("path is not a directory")
	ErrEmptyDirectory = errors.New("directory is empty")
)

// NormalizePrefix strips leading and trailing underscores from a prefix
// argument. File names are built as prefix + "_" + suffix afterwards.
func NormalizePrefix(prefix string) string {
	return strings.Trim(prefix, "_")
}

// Inventory is the resolved file set for one (directory, prefix) pair.
// It is computed once per patient validation and only ever read.
type Inventory struct {
	Dir    string
	Prefix string

	// Matched lists every regular file whose name starts with the
	// prefix, in directory iteration order.
	Matched []string
	// Valid is the subset of Matched whose full name the catalog expects.
	Valid []string
	// Unexpected is the subset of Matched the catalog does not expect.
	Unexpected []string
	// Missing lists expected file names absent from disk, in catalog order.
	Missing []string
}

// Path returns the full path of a file inside the inventory's directory.
func (inv *Inventory) Path(name string) string {
	return filepath.Join(inv.Dir, name)
}

// HasValid reports whether name is among the valid files on disk.
func (inv *Inventory) HasValid(name string) bool {
	for _, v := range inv.Valid {
		if v == name {
			return true
		}
	}
	return false
}

// CheckDir validates the directory preconditions: it must exist, be a
// directory, and contain at least one entry.
func CheckDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, dir)
		}
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyDirectory, dir)
	}
	return nil
}

// Resolve lists the directory and partitions the files matching the
// prefix into expected and unexpected sets. It never modifies the
// directory; repeated calls against an unchanged directory yield
// identical inventories.
func Resolve(dir, prefix string, cat schema.Catalog) (*Inventory, error) {
	if err := CheckDir(dir); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	expected := make(map[string]bool, len(cat))
	for _, name := range cat.ExpectedFilenames(prefix) {
		expected[name] = true
	}

	inv := &Inventory{Dir: dir, Prefix: prefix}
	onDisk := make(map[string]bool)
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, prefix+"_") {
			continue
		}
		// Follow symlinks; only resolved regular files count.
		fi, err := os.Stat(filepath.Join(dir, name))
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		inv.Matched = append(inv.Matched, name)
		if expected[name] {
			inv.Valid = append(inv.Valid, name)
			onDisk[name] = true
		} else {
			inv.Unexpected = append(inv.Unexpected, name)
		}
	}
	for _, name := range cat.ExpectedFilenames(prefix) {
		if !onDisk[name] {
			inv.Missing = append(inv.Missing, name)
		}
	}
	return inv, nil
}
