package validate

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"exportcheck/internal/inventory"
	"exportcheck/internal/schema"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

// writeValidExport writes a complete, structurally valid export for the
// given prefix: every catalog file present, single demo row, all
// required date columns populated.
func writeValidExport(t *testing.T, dir, prefix string) {
	t.Helper()
	for _, tbl := range schema.Default() {
		var sb strings.Builder
		if len(tbl.RequiredDates) > 0 {
			sb.WriteString(strings.Join(tbl.RequiredDates, ","))
			sb.WriteString("\n")
			row := make([]string, len(tbl.RequiredDates))
			for i := range row {
				row[i] = "2015-03-01"
			}
			sb.WriteString(strings.Join(row, ","))
			sb.WriteString("\n")
		} else {
			sb.WriteString("ID,VALUE\n1,a\n")
		}
		writeFile(t, dir, tbl.FileName(prefix), sb.String())
	}
}

func checkNames(rep *Report) []string {
	names := make([]string, len(rep.Results))
	for i, cr := range rep.Results {
		names[i] = cr.Check
	}
	return names
}

func TestNewPatientEmptyDirectory(t *testing.T) {
	_, err := NewPatient(t.TempDir(), "A", schema.Default(), Options{})
	if !errors.Is(err, inventory.ErrEmptyDirectory) {
		t.Errorf("expected ErrEmptyDirectory, got %v", err)
	}
}

func TestNewPatientEmptyPrefix(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "A_demo.csv", "x\n")
	if _, err := NewPatient(dir, "___", schema.Default(), Options{}); err == nil {
		t.Error("expected error for prefix that is empty after trimming")
	}
}

func TestPatientValidExportPasses(t *testing.T) {
	dir := t.TempDir()
	writeValidExport(t, dir, "A")

	p, err := NewPatient(dir, "A", schema.Default(), Options{})
	if err != nil {
		t.Fatalf("NewPatient: %v", err)
	}
	rep := p.Run(zerolog.Nop())
	if !rep.Passed {
		for _, cr := range rep.Results {
			if !cr.Result.Passed() {
				t.Errorf("%s failed: %v", cr.Check, cr.Result.Messages())
			}
		}
	}
}

func TestPatientCheckOrder(t *testing.T) {
	dir := t.TempDir()
	writeValidExport(t, dir, "A")

	p, err := NewPatient(dir, "A", schema.Default(), Options{})
	if err != nil {
		t.Fatalf("NewPatient: %v", err)
	}
	rep := p.Run(zerolog.Nop())
	want := []string{"filename-inventory", "discharge-date", "duplicate-header", "null-dates"}
	if got := checkNames(rep); !reflect.DeepEqual(got, want) {
		t.Errorf("default check order = %v, want %v", got, want)
	}

	p, err = NewPatient(dir, "A", schema.Default(), Options{DuplicateLines: true, MissingFiles: true})
	if err != nil {
		t.Fatalf("NewPatient: %v", err)
	}
	rep = p.Run(zerolog.Nop())
	want = []string{"filename-inventory", "missing-files", "discharge-date", "duplicate-header", "duplicate-lines", "null-dates"}
	if got := checkNames(rep); !reflect.DeepEqual(got, want) {
		t.Errorf("full check order = %v, want %v", got, want)
	}
}

func TestPatientNoFailFast(t *testing.T) {
	dir := t.TempDir()
	writeValidExport(t, dir, "A")
	writeFile(t, dir, "A_junk.csv", "x\n")
	writeFile(t, dir, "A_demo.csv", "REG_DATE,DISCH_DATE\n2015-01-01,1999-12-31\n")

	p, err := NewPatient(dir, "A", schema.Default(), Options{})
	if err != nil {
		t.Fatalf("NewPatient: %v", err)
	}
	rep := p.Run(zerolog.Nop())
	if rep.Passed {
		t.Fatal("expected overall failure")
	}

	byName := make(map[string]bool)
	for _, cr := range rep.Results {
		byName[cr.Check] = cr.Result.Passed()
	}
	if byName["filename-inventory"] {
		t.Error("filename-inventory should have failed on A_junk.csv")
	}
	if byName["discharge-date"] {
		t.Error("discharge-date should have failed on 1999-12-31")
	}
	if passed, ran := byName["null-dates"]; !ran || !passed {
		t.Error("null-dates should still have run and passed")
	}
}

func TestPatientPrefixNormalized(t *testing.T) {
	dir := t.TempDir()
	writeValidExport(t, dir, "A")

	p, err := NewPatient(dir, "_A_", schema.Default(), Options{})
	if err != nil {
		t.Fatalf("NewPatient: %v", err)
	}
	rep := p.Run(zerolog.Nop())
	if rep.Prefix != "A" {
		t.Errorf("prefix = %q, want %q", rep.Prefix, "A")
	}
	if !rep.Passed {
		t.Error("expected pass after prefix normalization")
	}
}

func TestPatientMissingFilesCheck(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "A_demo.csv", "REG_DATE,DISCH_DATE\n2015-01-01,2015-03-01\n")

	p, err := NewPatient(dir, "A", schema.Default(), Options{MissingFiles: true})
	if err != nil {
		t.Fatalf("NewPatient: %v", err)
	}
	rep := p.Run(zerolog.Nop())
	for _, cr := range rep.Results {
		if cr.Check == "missing-files" {
			if cr.Result.Passed() {
				t.Error("missing-files should have failed")
			}
			if len(cr.Result.Messages()) != 21 {
				t.Errorf("expected 21 missing files, got %d", len(cr.Result.Messages()))
			}
			return
		}
	}
	t.Error("missing-files check did not run")
}
