package output

import (
	"io"

	csverrors "github.com/vegasq/csvcat/internal/errors"
	"github.com/vegasq/csvcat/query"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a query result in the target
// format and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the result's header and selected rows
	Format(res *query.Result) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Supported format names
const (
	FormatCSV     = "csv"
	FormatJSONL   = "jsonl"
	FormatTable   = "table"
	FormatParquet = "parquet"
)

// Formats lists the names accepted by New.
var Formats = []string{FormatCSV, FormatJSONL, FormatTable, FormatParquet}

// Options carries per-format settings; each formatter ignores the fields it does not use.
type Options struct {
	// Delimiter is the CSV field delimiter. Zero means ','.
	Delimiter byte
	// MaxWidth truncates table cells to this many display columns. Zero disables truncation.
	MaxWidth int
}

// New returns the formatter registered under name.
func New(name string, w io.Writer, opts Options) (Formatter, error) {
	switch name {
	case FormatCSV:
		return &CSVFormatter{writer: w, Delimiter: opts.Delimiter}, nil
	case FormatJSONL, "json":
		return NewJSONFormatter(w), nil
	case FormatTable:
		return &TableFormatter{writer: w, MaxWidth: opts.MaxWidth}, nil
	case FormatParquet:
		return NewParquetFormatter(w), nil
	default:
		return nil, &csverrors.UnsupportedError{Feature: "format", Value: name}
	}
}
