package checks

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"exportcheck/internal/inventory"
)

// maxLine bounds the scanner buffer for a single CSV line.
const maxLine = 1 << 20

// DuplicateHeader flags valid files whose first two lines are
// byte-identical. A file whose first line is empty never triggers the
// check, and a file with fewer than two lines trivially passes.
type DuplicateHeader struct{}

func (DuplicateHeader) Name() string { return "duplicate-header" }

func (DuplicateHeader) Run(inv *inventory.Inventory) Result {
	var msgs []string
	for _, name := range inv.Valid {
		first, second, err := firstTwoLines(inv.Path(name))
		if err != nil {
			msgs = append(msgs, fmt.Sprintf("cannot read %s: %v", name, err))
			continue
		}
		if first != "" && first == second {
			msgs = append(msgs, "duplicate header row in "+name)
		}
	}
	if len(msgs) == 0 {
		return Pass()
	}
	return Fail(msgs...)
}

// firstTwoLines returns the first two lines of the file with only the
// trailing newline removed. The carriage return of a CRLF ending is
// kept so the comparison stays byte-for-byte.
func firstTwoLines(path string) (string, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	br := bufio.NewReaderSize(f, 64*1024)
	var lines [2]string
	for i := 0; i < 2; i++ {
		line, err := br.ReadString('\n')
		lines[i] = strings.TrimSuffix(line, "\n")
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", "", err
		}
	}
	return lines[0], lines[1], nil
}

// DuplicateLines flags any line identical to the one immediately before
// it. Scanning a file stops at its first duplicate, but every valid file
// is scanned.
type DuplicateLines struct{}

func (DuplicateLines) Name() string { return "duplicate-lines" }

func (DuplicateLines) Run(inv *inventory.Inventory) Result {
	var msgs []string
	for _, name := range inv.Valid {
		line, err := firstDuplicateLine(inv.Path(name))
		if err != nil {
			msgs = append(msgs, fmt.Sprintf("cannot read %s: %v", name, err))
			continue
		}
		if line > 0 {
			msgs = append(msgs, fmt.Sprintf("duplicate consecutive line in %s (line %d)", name, line))
		}
	}
	if len(msgs) == 0 {
		return Pass()
	}
	return Fail(msgs...)
}

// firstDuplicateLine returns the 1-based line number of the first line
// equal to its predecessor, or 0 when no such line exists. Blank lines
// count like any other line.
func firstDuplicateLine(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	var prev string
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if n > 1 && line == prev {
			return n, nil
		}
		prev = line
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, nil
}
