package query

import (
	csverrors "github.com/vegasq/csvcat/internal/errors"
	"github.com/vegasq/csvcat/table"
)

// Engine runs queries against a single table.
type Engine struct {
	table *table.Table
}

// NewEngine creates an engine over t.
func NewEngine(t *table.Table) *Engine {
	return &Engine{table: t}
}

// Table returns the table the engine queries.
func (e *Engine) Table() *table.Table {
	return e.table
}

// Head returns the first n rows in table order. n larger than the row count
// selects every row; n == 0 selects none.
func (e *Engine) Head(n int) (*Result, error) {
	if n < 0 {
		return nil, &csverrors.RangeError{What: "count", Index: n}
	}
	if rows := e.table.RowCount(); n > rows {
		n = rows
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return newResult(e.table, indices)
}

// WhereEquals selects rows whose value in column is exactly value.
// The comparison is byte-for-byte: no trimming, case folding or numeric coercion.
func (e *Engine) WhereEquals(column, value string) (*Result, error) {
	col, err := e.table.ColumnIndex(column)
	if err != nil {
		return nil, err
	}

	indices := make([]int, 0)
	for i, row := range e.table.Rows() {
		if row[col] == value {
			indices = append(indices, i)
		}
	}
	return newResult(e.table, indices)
}
