package tabular

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Table is one CSV file loaded fully into memory. The first record is
// the header row; everything after it is data.
type Table struct {
	Headers []string
	Rows    [][]string

	index map[string]int
}

// Load reads an entire CSV file into a Table. Quoting is lenient
// (LazyQuotes) so escaped delimiters and stray quotes inside values do
// not abort the load, and rows may have varying field counts.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReaderSize(f, 64*1024)

	// Skip UTF-8 BOM if present
	bom, err := br.Peek(3)
	if err == nil && len(bom) >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		br.Discard(3)
	}

	r := csv.NewReader(br)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no header row")
	}

	t := &Table{
		Headers: records[0],
		Rows:    records[1:],
		index:   make(map[string]int, len(records[0])),
	}
	for i, h := range t.Headers {
		h = strings.TrimSpace(h)
		t.Headers[i] = h
		t.index[h] = i
	}
	return t, nil
}

// NumRows returns the number of data rows (excluding the header).
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// Column returns the index of the named column, or ok=false.
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Values returns the named column's value for every data row. Rows
// shorter than the column index contribute an empty string. The result
// is nil when the column does not exist.
func (t *Table) Values(name string) []string {
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	out := make([]string, len(t.Rows))
	for n, row := range t.Rows {
		if i < len(row) {
			out[n] = row[i]
		}
	}
	return out
}
