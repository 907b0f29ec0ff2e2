package query

import (
	"fmt"
	"io"
	"strconv"

	"github.com/vegasq/csvcat/csv"
	csverrors "github.com/vegasq/csvcat/internal/errors"
	"github.com/vegasq/csvcat/table"
)

// Result is a view over selected rows of a table. It stores row indices only;
// cell data is read from the table when the result is consumed.
type Result struct {
	table   *table.Table
	indices []int
}

// newResult validates indices against t and takes ownership of the slice.
func newResult(t *table.Table, indices []int) (*Result, error) {
	n := t.RowCount()
	for _, i := range indices {
		if i < 0 || i >= n {
			return nil, &csverrors.RangeError{What: "row", Index: i, Len: n}
		}
	}
	return &Result{table: t, indices: indices}, nil
}

// NewResult creates a result over arbitrary row indices of t, in the given order.
// Every index must address an existing row.
func NewResult(t *table.Table, indices []int) (*Result, error) {
	owned := make([]int, len(indices))
	copy(owned, indices)
	return newResult(t, owned)
}

// Len returns the number of selected rows.
func (r *Result) Len() int {
	return len(r.indices)
}

// Indices returns a copy of the selected row indices.
func (r *Result) Indices() []int {
	out := make([]int, len(r.indices))
	copy(out, r.indices)
	return out
}

// Table returns the table the result reads from.
func (r *Result) Table() *table.Table {
	return r.table
}

// Columns returns the header of the underlying table.
func (r *Result) Columns() []string {
	return r.table.Columns()
}

// Materialize copies out every selected row in result order.
func (r *Result) Materialize() ([][]string, error) {
	rows := make([][]string, 0, len(r.indices))
	for _, i := range r.indices {
		row, err := r.table.Row(i)
		if err != nil {
			return nil, err
		}
		rows = append(rows, append([]string(nil), row...))
	}
	return rows, nil
}

// Column returns the named column's value for every selected row.
func (r *Result) Column(name string) ([]string, error) {
	col, err := r.table.ColumnIndex(name)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(r.indices))
	for _, i := range r.indices {
		v, err := r.table.Value(i, col)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// NumericColumn returns the named column parsed as float64. It stops at the
// first token that is not a number and returns a ConversionError naming it.
func (r *Result) NumericColumn(name string) ([]float64, error) {
	raw, err := r.Column(name)
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, len(raw))
	for k, token := range raw {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, &csverrors.ConversionError{
				Column: name,
				Row:    r.indices[k],
				Value:  token,
				Err:    err,
			}
		}
		values = append(values, f)
	}
	return values, nil
}

// WriteCSV writes the header followed by every selected row. Every line,
// including the header, ends with '\n'. A zero delimiter means ','.
func (r *Result) WriteCSV(w io.Writer, delimiter byte) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter

	if err := cw.Write(r.table.Columns()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, i := range r.indices {
		row, err := r.table.Row(i)
		if err != nil {
			return err
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	if err := cw.Flush(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}
