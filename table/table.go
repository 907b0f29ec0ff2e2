// Package table holds delimited data in memory and provides bounds-checked access to it.
//
// A Table is immutable once New returns. It may be shared between goroutines
// without locking as long as callers do not modify the slices returned by its
// accessors.
package table

import (
	"fmt"

	csverrors "github.com/vegasq/csvcat/internal/errors"
)

// Row is one record of field values.
type Row = []string

// Table is an in-memory table with a header and rows of equal width.
type Table struct {
	header []string
	rows   []Row
	index  map[string]int
}

// Option configures table construction.
type Option func(*config)

type config struct {
	strictColumns bool
}

// WithStrictColumns makes New reject duplicate column names instead of letting
// the later column shadow the earlier one in name lookups.
func WithStrictColumns() Option {
	return func(c *config) {
		c.strictColumns = true
	}
}

// New builds a table. When header is non-empty every row must have exactly
// len(header) fields. By default a duplicate column name maps to its last
// position; the earlier column stays reachable only by index.
func New(header []string, rows []Row, opts ...Option) (*Table, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(header) > 0 {
		for i, row := range rows {
			if len(row) != len(header) {
				return nil, csverrors.Width(i, len(row), len(header))
			}
		}
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if prev, dup := index[name]; dup && cfg.strictColumns {
			return nil, &csverrors.FormatError{
				Message: fmt.Sprintf("column %q appears at positions %d and %d", name, prev, i),
				Err:     csverrors.ErrDuplicateColumn,
			}
		}
		index[name] = i
	}

	return &Table{
		header: header,
		rows:   rows,
		index:  index,
	}, nil
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnCount returns the number of header columns.
func (t *Table) ColumnCount() int {
	return len(t.header)
}

// Columns returns the header. The slice must not be modified.
func (t *Table) Columns() []string {
	return t.header
}

// Rows returns all rows. The slices must not be modified.
func (t *Table) Rows() []Row {
	return t.rows
}

// HasColumn reports whether name resolves to a column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// LookupColumn returns the position of name and whether it exists.
func (t *Table) LookupColumn(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// ColumnIndex returns the position of name or a NotFoundError.
func (t *Table) ColumnIndex(name string) (int, error) {
	i, ok := t.index[name]
	if !ok {
		return 0, &csverrors.NotFoundError{Resource: "column", Name: name}
	}
	return i, nil
}

// Row returns row i. The slice must not be modified.
func (t *Table) Row(i int) (Row, error) {
	if i < 0 || i >= len(t.rows) {
		return nil, &csverrors.RangeError{What: "row", Index: i, Len: len(t.rows)}
	}
	return t.rows[i], nil
}

// Value returns the field at (row, col).
func (t *Table) Value(row, col int) (string, error) {
	r, err := t.Row(row)
	if err != nil {
		return "", err
	}
	if col < 0 || col >= len(r) {
		return "", &csverrors.RangeError{What: "column", Index: col, Len: len(r)}
	}
	return r[col], nil
}

// ValueByName returns the field in the named column of row.
func (t *Table) ValueByName(row int, name string) (string, error) {
	col, err := t.ColumnIndex(name)
	if err != nil {
		return "", err
	}
	return t.Value(row, col)
}
