package reader

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// Codec identifies how a file's bytes are compressed.
type Codec string

// Supported codecs
const (
	CodecNone   Codec = "none"
	CodecGzip   Codec = "gzip"
	CodecZstd   Codec = "zstd"
	CodecLZ4    Codec = "lz4"
	CodecBrotli Codec = "brotli"
	CodecXZ     Codec = "xz"
)

var codecByExt = map[string]Codec{
	".gz":   CodecGzip,
	".gzip": CodecGzip,
	".zst":  CodecZstd,
	".zstd": CodecZstd,
	".lz4":  CodecLZ4,
	".br":   CodecBrotli,
	".xz":   CodecXZ,
}

// CodecFor picks the codec from the extension of path (case-insensitive).
// Unknown extensions, including .csv and .tsv, are read as-is.
func CodecFor(path string) Codec {
	if c, ok := codecByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return c
	}
	return CodecNone
}

// open wraps src in the codec's decompressor.
func (c Codec) open(src io.Reader) (io.ReadCloser, error) {
	switch c {
	case CodecGzip:
		gz, err := gzip.NewReader(src)
		if err != nil {
			return nil, err
		}
		return gz, nil
	case CodecZstd:
		dec, err := zstd.NewReader(src)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CodecLZ4:
		return io.NopCloser(lz4.NewReader(src)), nil
	case CodecBrotli:
		return io.NopCloser(brotli.NewReader(src)), nil
	case CodecXZ:
		r, err := xz.NewReader(src)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(r), nil
	default:
		return io.NopCloser(src), nil
	}
}
