package output

import (
	"io"

	"github.com/segmentio/encoding/json"

	"github.com/vegasq/csvcat/query"
)

// JSONFormatter outputs results as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per selected row, keyed by column name.
// Values stay strings. With duplicate column names the later column wins,
// matching name lookups on the table.
func (j *JSONFormatter) Format(res *query.Result) error {
	columns := res.Columns()
	rows, err := res.Materialize()
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(j.writer)
	for _, row := range rows {
		obj := make(map[string]string, len(columns))
		for i, col := range columns {
			obj[col] = row[i]
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
