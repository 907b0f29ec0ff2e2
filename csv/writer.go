package csv

import (
	"bufio"
	"errors"
	"io"
)

var errWriterNoTarget = errors.New("csv: writer destination cannot be nil")

// Writer emits records using the inverse of Reader's quoting rules.
type Writer struct {
	// Comma is the field delimiter. Default is ','.
	Comma byte

	dst *bufio.Writer
	err error
}

// NewWriter creates a buffered Writer. Call Flush when done.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{
		dst:   bufio.NewWriterSize(w, defaultBufferSize),
		Comma: ',',
	}
}

// Write emits a single record terminated by '\n'. A field is quoted only when it
// contains the delimiter, a double quote or a line break.
func (w *Writer) Write(record []string) error {
	if w.err != nil {
		return w.err
	}
	comma := w.Comma
	if comma == 0 {
		comma = ','
	}

	for i, field := range record {
		if i > 0 {
			if err := w.dst.WriteByte(comma); err != nil {
				w.err = err
				return err
			}
		}
		if err := w.writeField(field, comma); err != nil {
			w.err = err
			return err
		}
	}
	if err := w.dst.WriteByte('\n'); err != nil {
		w.err = err
		return err
	}
	return nil
}

// WriteAll writes records and flushes, stopping at the first error.
func (w *Writer) WriteAll(records [][]string) error {
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	return w.err
}

func (w *Writer) writeField(field string, comma byte) error {
	if !FieldNeedsQuotes(field, comma) {
		_, err := w.dst.WriteString(field)
		return err
	}
	if err := w.dst.WriteByte('"'); err != nil {
		return err
	}
	start := 0
	for i := 0; i < len(field); i++ {
		if field[i] != '"' {
			continue
		}
		if _, err := w.dst.WriteString(field[start : i+1]); err != nil {
			return err
		}
		if err := w.dst.WriteByte('"'); err != nil {
			return err
		}
		start = i + 1
	}
	if _, err := w.dst.WriteString(field[start:]); err != nil {
		return err
	}
	return w.dst.WriteByte('"')
}

// FieldNeedsQuotes reports whether field must be quoted to survive a round trip.
// A bare '\r' is dropped by Reader outside quotes, so it forces quoting too.
func FieldNeedsQuotes(field string, comma byte) bool {
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case comma, '"', '\n', '\r':
			return true
		}
	}
	return false
}
