// Package errors provides the typed error kinds shared by the csvcat packages.
//
// Every kind unwraps to a sentinel so callers can branch with errors.Is and
// inspect details with errors.As.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for each failure kind
var (
	// ErrIO indicates the input could not be opened, read or decoded
	ErrIO = errors.New("i/o error")
	// ErrFormat indicates malformed delimited text
	ErrFormat = errors.New("format error")
	// ErrNotFound indicates an unknown column name
	ErrNotFound = errors.New("not found")
	// ErrRange indicates a row or column index out of bounds
	ErrRange = errors.New("out of range")
	// ErrConversion indicates a token that is not a number
	ErrConversion = errors.New("conversion error")
	// ErrUnsupported indicates an unsupported option such as an output format
	ErrUnsupported = errors.New("unsupported")
)

// Format error causes
var (
	ErrUnterminatedQuote = errors.New("unterminated quoted field")
	ErrMissingHeader     = errors.New("missing header row")
	ErrWidthMismatch     = errors.New("row width does not match header")
	ErrDuplicateColumn   = errors.New("duplicate column name")
	ErrInvalidDelimiter  = errors.New("invalid delimiter")
)

// IOError represents a failure to open or read the input
type IOError struct {
	Op   string // Operation being performed (e.g., "open", "read", "decompress")
	Path string // File path, empty for anonymous streams
	Err  error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

// Is reports ErrIO for every IOError; the wrapped cause stays reachable through Unwrap.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// FormatError represents malformed input. Line and Column are 1-based and
// zero when the position is unknown (e.g. a width check after parsing).
type FormatError struct {
	Line    int
	Column  int
	Message string
	Err     error // One of the format error causes, if any
}

func (e *FormatError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Line > 0 {
		return fmt.Sprintf("invalid CSV on line %d, column %d: %s", e.Line, e.Column, msg)
	}
	return fmt.Sprintf("invalid CSV: %s", msg)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// NotFoundError represents a lookup of an unknown name
type NotFoundError struct {
	Resource string // Type of resource (e.g., "column")
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown %s: %s", e.Resource, e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// RangeError represents an index outside [0, Len)
type RangeError struct {
	What  string // "row", "column" or "count"
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	if e.What == "count" {
		return fmt.Sprintf("count must be non-negative, got %d", e.Index)
	}
	return fmt.Sprintf("%s index %d out of bounds (size %d)", e.What, e.Index, e.Len)
}

func (e *RangeError) Unwrap() error {
	return ErrRange
}

// ConversionError represents a token that could not be parsed as a number
type ConversionError struct {
	Column string
	Row    int
	Value  string
	Err    error // Underlying strconv error, if any
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("unable to convert value %q in column %s (row %d) to a number", e.Value, e.Column, e.Row)
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// UnsupportedError represents an unsupported feature or option value
type UnsupportedError struct {
	Feature string
	Value   string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Value)
}

func (e *UnsupportedError) Unwrap() error {
	return ErrUnsupported
}

// Width returns the FormatError reported when a row does not match the header width.
func Width(row, got, want int) *FormatError {
	return &FormatError{
		Message: fmt.Sprintf("row %d width (%d) does not match header size (%d)", row, got, want),
		Err:     ErrWidthMismatch,
	}
}
