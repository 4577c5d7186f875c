package tsv

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Table is a raw parse of one store: the header row plus every data row,
// all cells trimmed of surrounding whitespace. The validators use it when
// they need row positions or columns outside the canonical three.
type Table struct {
	Path   string
	Header []string
	Rows   [][]string
}

// ReadTable loads the store at path without interpreting its columns. An
// empty file yields a table with no header and no rows.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening term store: %w", err)
	}
	defer f.Close()

	t := &Table{Path: path}
	r := newReader(f)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		for i := range row {
			row[i] = strings.TrimSpace(row[i])
		}
		if t.Header == nil {
			t.Header = row
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Col reports the index of the named column in the header, or -1 when the
// table has no such column.
func (t *Table) Col(name string) int {
	return slices.Index(t.Header, name)
}

// Cell returns the cell at data row i and column c, or "" when the row is
// too short or c is negative.
func (t *Table) Cell(i, c int) string {
	if c < 0 || c >= len(t.Rows[i]) {
		return ""
	}
	return t.Rows[i][c]
}

// RowNum converts a data row index to its 1-based position in the file,
// counting the header as row 1.
func (t *Table) RowNum(i int) int {
	return i + 2
}
