package table

import (
	"sort"
	"strconv"
	"strings"
)

// Row maps a column name to its cell value. Rows need not contain
// every column key; absent keys read as missing cells.
type Row map[string]Cell

// Cell returns the cell stored under name, or the absence marker when
// the row has no entry for it.
func (r Row) Cell(name string) Cell {
	if c, ok := r[name]; ok {
		return c
	}
	return NewMissingCell()
}

// CanonicalKey serializes the row with deterministic key ordering so
// structurally identical rows compare equal regardless of insertion
// order. Each component is length-prefixed, so the encoding stays
// injective even when names or values contain the delimiters.
func (r Row) CanonicalKey() string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		writeComponent(&b, k)
		writeComponent(&b, r[k].CanonicalKey())
	}
	return b.String()
}

func writeComponent(b *strings.Builder, s string) {
	b.WriteString(strconv.Itoa(len(s)))
	b.WriteByte(':')
	b.WriteString(s)
	b.WriteByte(';')
}

// Table is an ordered sequence of rows plus an ordered sequence of
// column names. Column order is display order; statistics never depend
// on it.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// New creates an empty table with the given column order
func New(columns []string) *Table {
	return &Table{Columns: columns}
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// ColumnValues returns the cells of one column in row order
func (t *Table) ColumnValues(name string) []Cell {
	values := make([]Cell, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row.Cell(name))
	}
	return values
}

// AppendRow adds a row to the table
func (t *Table) AppendRow(row Row) {
	t.Rows = append(t.Rows, row)
}

// HasColumn checks whether name is a declared column
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
