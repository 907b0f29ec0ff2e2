package output

import (
	"io"

	"github.com/vegasq/csvcat/query"
)

// CSVFormatter outputs results as delimited text with a header row
type CSVFormatter struct {
	writer io.Writer

	// Delimiter separates fields. Zero means ','.
	Delimiter byte
}

// NewCSVFormatter creates a new comma-delimited CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w, Delimiter: ','}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header and every selected row. The header is written
// even when the result is empty.
func (c *CSVFormatter) Format(res *query.Result) error {
	return res.WriteCSV(c.writer, c.Delimiter)
}
