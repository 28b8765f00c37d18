package checks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"exportcheck/internal/inventory"
)

// invWith writes the named files into a temp dir and returns an
// inventory listing all of them as valid.
func invWith(t *testing.T, files map[string]string) *inventory.Inventory {
	t.Helper()
	dir := t.TempDir()
	inv := &inventory.Inventory{Dir: dir, Prefix: "A"}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		inv.Valid = append(inv.Valid, name)
	}
	return inv
}

func TestDuplicateHeaderFail(t *testing.T) {
	inv := invWith(t, map[string]string{
		"A_ce.csv": "DATE,VALUE\nDATE,VALUE\n1,2\n",
	})
	res := DuplicateHeader{}.Run(inv)
	if res.Passed() {
		t.Fatal("expected failure for duplicated header row")
	}
	if !strings.Contains(res.Messages()[0], "A_ce.csv") {
		t.Errorf("message does not name the file: %q", res.Messages()[0])
	}
}

func TestDuplicateHeaderPass(t *testing.T) {
	cases := map[string]string{
		"distinct lines":   "DATE,VALUE\n1,2\n",
		"single line":      "DATE,VALUE\n",
		"empty first line": "\n\n",
		"empty file":       "",
	}
	for label, content := range cases {
		inv := invWith(t, map[string]string{"A_ce.csv": content})
		if res := (DuplicateHeader{}).Run(inv); !res.Passed() {
			t.Errorf("%s: expected pass, got %v", label, res.Messages())
		}
	}
}

func TestDuplicateHeaderUnreadable(t *testing.T) {
	inv := &inventory.Inventory{Dir: t.TempDir(), Prefix: "A", Valid: []string{"A_ce.csv"}}
	res := DuplicateHeader{}.Run(inv)
	if res.Passed() {
		t.Fatal("expected failure for unreadable file")
	}
	if !strings.Contains(res.Messages()[0], "cannot read") {
		t.Errorf("unexpected message: %q", res.Messages()[0])
	}
}

func TestDuplicateLinesFail(t *testing.T) {
	inv := invWith(t, map[string]string{
		"A_ce.csv":  "DATE\n1\n1\n2\n",
		"A_lab.csv": "EVENT_DATE\n1\n2\n",
	})
	res := DuplicateLines{}.Run(inv)
	if res.Passed() {
		t.Fatal("expected failure")
	}
	if len(res.Messages()) != 1 {
		t.Fatalf("expected one message, got %v", res.Messages())
	}
	if !strings.Contains(res.Messages()[0], "A_ce.csv") {
		t.Errorf("message does not name the file: %q", res.Messages()[0])
	}
}

func TestDuplicateLinesChecksEveryFile(t *testing.T) {
	inv := invWith(t, map[string]string{
		"A_ce.csv":  "DATE\n1\n1\n",
		"A_lab.csv": "EVENT_DATE\n2\n2\n",
	})
	res := DuplicateLines{}.Run(inv)
	if len(res.Messages()) != 2 {
		t.Errorf("expected one message per offending file, got %v", res.Messages())
	}
}

func TestDuplicateHeaderKeepsCarriageReturn(t *testing.T) {
	// CRLF and LF endings differ byte-for-byte, so a CRLF first line
	// never equals an otherwise identical LF second line.
	inv := invWith(t, map[string]string{
		"A_ce.csv": "DATE,VALUE\r\nDATE,VALUE\n1,2\n",
	})
	if res := (DuplicateHeader{}).Run(inv); !res.Passed() {
		t.Errorf("expected pass for mixed line endings, got %v", res.Messages())
	}

	inv = invWith(t, map[string]string{
		"A_ce.csv": "DATE,VALUE\r\nDATE,VALUE\r\n1,2\n",
	})
	if res := (DuplicateHeader{}).Run(inv); res.Passed() {
		t.Error("expected failure for identical CRLF header rows")
	}
}

func TestDuplicateLinesBlankLines(t *testing.T) {
	inv := invWith(t, map[string]string{
		"A_ce.csv": "DATE\n1\n\n\n2\n",
	})
	res := DuplicateLines{}.Run(inv)
	if res.Passed() {
		t.Fatal("expected failure for consecutive blank lines")
	}
	if !strings.Contains(res.Messages()[0], "line 4") {
		t.Errorf("expected the second blank line to be reported: %q", res.Messages()[0])
	}
}

func TestDuplicateLinesPass(t *testing.T) {
	inv := invWith(t, map[string]string{
		"A_ce.csv": "DATE\n1\n2\n1\n",
	})
	if res := (DuplicateLines{}).Run(inv); !res.Passed() {
		t.Errorf("expected pass, got %v", res.Messages())
	}
}
