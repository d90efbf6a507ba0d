package proddesc

import (
	"context"
	"strings"
)

// Table is a rectangular view over a catalog: named columns and string rows.
// Rows may be ragged; missing cells read as "".
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the index of the named column, or -1 if absent.
// Header names are compared after trimming surrounding whitespace.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if strings.TrimSpace(c) == name {
			return i
		}
	}
	return -1
}

// EnsureColumn returns the index of the named column, appending it when absent.
func (t *Table) EnsureColumn(name string) int {
	if i := t.ColumnIndex(name); i >= 0 {
		return i
	}
	t.Columns = append(t.Columns, name)
	return len(t.Columns) - 1
}

// Cell returns the value at row i, column j, or "" when out of range.
func (t *Table) Cell(i, j int) string {
	if i < 0 || i >= len(t.Rows) || j < 0 || j >= len(t.Rows[i]) {
		return ""
	}
	return t.Rows[i][j]
}

// SetCell writes v at row i, column j, padding the row if it is short.
func (t *Table) SetCell(i, j int, v string) {
	for len(t.Rows[i]) <= j {
		t.Rows[i] = append(t.Rows[i], "")
	}
	t.Rows[i][j] = v
}

// Normalize pads every row to the header width.
func (t *Table) Normalize() {
	for i := range t.Rows {
		for len(t.Rows[i]) < len(t.Columns) {
			t.Rows[i] = append(t.Rows[i], "")
		}
	}
}

// TableSource reads a catalog table.
type TableSource interface {
	ReadTable(ctx context.Context) (*Table, error)
}

// TableSink persists a catalog table. Every write replaces the previous
// contents in full.
type TableSink interface {
	WriteTable(ctx context.Context, t *Table) error
}
