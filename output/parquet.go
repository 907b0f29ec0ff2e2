package output

import (
	"fmt"
	"io"

	"github.com/parquet-go/parquet-go"

	csverrors "github.com/vegasq/csvcat/internal/errors"
	"github.com/vegasq/csvcat/query"
)

// ParquetFormatter outputs results as a Parquet file with one required
// string column per table column
type ParquetFormatter struct {
	writer io.Writer
}

// NewParquetFormatter creates a new Parquet formatter
func NewParquetFormatter(w io.Writer) *ParquetFormatter {
	return &ParquetFormatter{writer: w}
}

// SetOutput sets the output writer
func (p *ParquetFormatter) SetOutput(w io.Writer) {
	p.writer = w
}

// Format writes a complete Parquet file. Parquet stores columns by name, so a
// header with duplicate or no column names cannot be written.
func (p *ParquetFormatter) Format(res *query.Result) error {
	columns := res.Columns()
	if len(columns) == 0 {
		return &csverrors.FormatError{Message: "parquet output requires at least one column"}
	}

	group := make(parquet.Group, len(columns))
	position := make(map[string]int, len(columns))
	for i, col := range columns {
		if _, dup := position[col]; dup {
			return &csverrors.FormatError{
				Message: fmt.Sprintf("parquet output cannot hold duplicate column %q", col),
				Err:     csverrors.ErrDuplicateColumn,
			}
		}
		position[col] = i
		group[col] = parquet.String()
	}
	schema := parquet.NewSchema("csvcat", group)

	// Leaf columns are ordered by the schema, not by the header.
	fields := schema.Fields()
	order := make([]int, len(fields))
	for leaf, f := range fields {
		order[leaf] = position[f.Name()]
	}

	rows, err := res.Materialize()
	if err != nil {
		return err
	}
	pqRows := make([]parquet.Row, len(rows))
	for i, row := range rows {
		pqRow := make(parquet.Row, len(fields))
		for leaf, pos := range order {
			pqRow[leaf] = parquet.ValueOf(row[pos]).Level(0, 0, leaf)
		}
		pqRows[i] = pqRow
	}

	writer := parquet.NewWriter(p.writer, schema)
	if _, err := writer.WriteRows(pqRows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
