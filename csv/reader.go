package csv

import (
	"bufio"
	"errors"
	"io"

	csverrors "github.com/vegasq/csvcat/internal/errors"
)

const defaultBufferSize = 4 << 10

// Reader parses delimited records from an underlying stream, one record per Read.
type Reader struct {
	// Comma is the field delimiter. Default is ','.
	Comma byte

	src      *bufio.Reader
	field    []byte
	record   []string
	line     int
	column   int
	finished bool
}

// NewReader creates a Reader that consumes delimited data from r.
// It panics if r is nil.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		panic("csv: reader source cannot be nil")
	}
	return &Reader{
		Comma: ',',
		src:   bufio.NewReaderSize(r, defaultBufferSize),
		field: make([]byte, 0, 64),
		line:  1,
	}
}

// Read returns the next record. io.EOF signals that no more records remain;
// it is distinct from an empty record, which is returned as []string{""}.
// Once Read has returned io.EOF or a parse error, every later call returns io.EOF.
func (r *Reader) Read() ([]string, error) {
	if r.finished {
		return nil, io.EOF
	}
	comma := r.Comma
	if comma == 0 {
		comma = ','
	}
	if comma == '"' || comma == '\n' || comma == '\r' {
		r.finished = true
		return nil, &csverrors.FormatError{
			Message: "delimiter must not be a quote or line break",
			Err:     csverrors.ErrInvalidDelimiter,
		}
	}

	r.record = nil
	r.field = r.field[:0]
	inQuotes := false
	seen := false
	quoteLine, quoteColumn := 0, 0

	for {
		b, err := r.src.ReadByte()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.finished = true
				return nil, &csverrors.IOError{Op: "read", Err: err}
			}
			r.finished = true
			if inQuotes {
				return nil, &csverrors.FormatError{
					Line:   quoteLine,
					Column: quoteColumn,
					Err:    csverrors.ErrUnterminatedQuote,
				}
			}
			if !seen && len(r.field) == 0 && len(r.record) == 0 {
				return nil, io.EOF
			}
			r.flushField()
			return r.record, nil
		}

		seen = true
		r.column++

		if inQuotes {
			if b != '"' {
				r.field = append(r.field, b)
				if b == '\n' {
					r.line++
					r.column = 0
				}
				continue
			}
			next, err := r.src.Peek(1)
			if err == nil && next[0] == '"' {
				_, _ = r.src.ReadByte()
				r.column++
				r.field = append(r.field, '"')
				continue
			}
			if err != nil && !errors.Is(err, io.EOF) {
				r.finished = true
				return nil, &csverrors.IOError{Op: "read", Err: err}
			}
			inQuotes = false
			continue
		}

		switch b {
		case '"':
			inQuotes = true
			quoteLine, quoteColumn = r.line, r.column
		case '\r':
			// dropped
		case '\n':
			r.flushField()
			r.line++
			r.column = 0
			return r.record, nil
		case comma:
			r.flushField()
		default:
			r.field = append(r.field, b)
		}
	}
}

// ReadAll drains the reader and returns every remaining record.
func (r *Reader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}

// Line returns the 1-based line the reader is positioned on.
func (r *Reader) Line() int {
	return r.line
}

func (r *Reader) flushField() {
	r.record = append(r.record, string(r.field))
	r.field = r.field[:0]
}
