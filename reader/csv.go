package reader

import (
	"encoding/hex"
	"errors"
	"hash"
	"io"
	"os"
	"strconv"

	"github.com/zeebo/blake3"

	"github.com/vegasq/csvcat/csv"
	csverrors "github.com/vegasq/csvcat/internal/errors"
	"github.com/vegasq/csvcat/table"
)

// Options controls how delimited text is turned into a table.
type Options struct {
	// Delimiter separates fields. Zero means ','.
	Delimiter byte
	// HasHeader treats the first record as column names. When false, columns
	// are named column_0, column_1, ... after the width of the first row.
	HasHeader bool
	// StrictColumns rejects duplicate column names.
	StrictColumns bool
}

// DefaultOptions returns comma-delimited input with a header row.
func DefaultOptions() Options {
	return Options{Delimiter: ',', HasHeader: true}
}

// Reader loads a delimited file into a table.
//
// It owns the OS file handle and any decompressor stacked on top of it, and
// hashes the raw file bytes as they are consumed.
type Reader struct {
	path   string
	opts   Options
	file   *os.File
	codec  io.ReadCloser
	hasher hash.Hash
	closed bool
}

// NewReader opens path for loading. The decompressor is chosen from the file
// extension (see Codec). Returns an IOError if the file cannot be opened or
// its compression header is invalid.
//
// Example:
//
//	r, err := reader.NewReader("data.csv.gz", reader.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
func NewReader(path string, opts Options) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &csverrors.IOError{Op: "open", Path: path, Err: err}
	}

	hasher := blake3.New()
	codec, err := CodecFor(path).open(io.TeeReader(file, hasher))
	if err != nil {
		_ = file.Close()
		return nil, &csverrors.IOError{Op: "decompress", Path: path, Err: err}
	}

	return &Reader{
		path:   path,
		opts:   opts,
		file:   file,
		codec:  codec,
		hasher: hasher,
	}, nil
}

// ReadTable parses the whole file and builds a table.
func (r *Reader) ReadTable() (*table.Table, error) {
	if r.closed {
		return nil, &csverrors.IOError{Op: "read", Path: r.path, Err: os.ErrClosed}
	}
	t, err := ReadTable(r.codec, r.opts)
	if err != nil {
		var ioErr *csverrors.IOError
		if errors.As(err, &ioErr) && ioErr.Path == "" {
			ioErr.Path = r.path
		}
		return nil, err
	}
	return t, nil
}

// Digest returns the hex BLAKE3 hash of the raw file bytes read so far.
// After ReadTable succeeds it covers the whole file.
func (r *Reader) Digest() string {
	return hex.EncodeToString(r.hasher.Sum(nil))
}

// Path returns the file path the reader was opened with.
func (r *Reader) Path() string {
	return r.path
}

// Close releases the decompressor and the file handle. It is safe to call
// Close multiple times.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	codecErr := r.codec.Close()
	fileErr := r.file.Close()
	if codecErr != nil {
		return &csverrors.IOError{Op: "close decompressor for", Path: r.path, Err: codecErr}
	}
	if fileErr != nil {
		return &csverrors.IOError{Op: "close", Path: r.path, Err: fileErr}
	}
	return nil
}

// Load opens path, reads it into a table and closes it on every path.
func Load(path string, opts Options) (*table.Table, error) {
	r, err := NewReader(path, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return r.ReadTable()
}

// ReadTable parses delimited text from src and builds a table.
func ReadTable(src io.Reader, opts Options) (*table.Table, error) {
	cr := csv.NewReader(src)
	cr.Comma = opts.Delimiter

	var header []string
	if opts.HasHeader {
		first, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil, &csverrors.FormatError{
				Message: "CSV input does not contain a header row",
				Err:     csverrors.ErrMissingHeader,
			}
		}
		if err != nil {
			return nil, err
		}
		header = first
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	if !opts.HasHeader && len(rows) > 0 {
		header = SyntheticHeader(len(rows[0]))
	}

	var tableOpts []table.Option
	if opts.StrictColumns {
		tableOpts = append(tableOpts, table.WithStrictColumns())
	}
	return table.New(header, rows, tableOpts...)
}

// SyntheticHeader returns positional column names column_0 ... column_{width-1}.
func SyntheticHeader(width int) []string {
	header := make([]string, width)
	for i := range header {
		header[i] = "column_" + strconv.Itoa(i)
	}
	return header
}
