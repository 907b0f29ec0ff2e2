package output

import (
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/csvcat/query"
)

// TableFormatter outputs results as an aligned text table for terminals
type TableFormatter struct {
	writer io.Writer

	// MaxWidth truncates cells wider than this many display columns. Zero disables truncation.
	MaxWidth int
}

// NewTableFormatter creates a new table formatter that truncates cells at 40 columns
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w, MaxWidth: 40}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format renders the header and selected rows. Column names are printed as-is.
func (t *TableFormatter) Format(res *query.Result) error {
	rows, err := res.Materialize()
	if err != nil {
		return err
	}

	tw := tablewriter.NewWriter(t.writer)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetHeader(t.truncateAll(res.Columns()))
	for _, row := range rows {
		tw.Append(t.truncateAll(row))
	}
	tw.Render()
	return nil
}

func (t *TableFormatter) truncateAll(cells []string) []string {
	if t.MaxWidth <= 0 {
		return cells
	}
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = runewidth.Truncate(cell, t.MaxWidth, "...")
	}
	return out
}
