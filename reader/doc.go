// Package reader loads delimited text files into in-memory tables.
//
// It opens the file, undoes any compression implied by the file extension,
// tokenizes the text with package csv and builds a table.Table. The whole
// file is held in memory.
//
// # Basic Usage
//
// Loading a file with default options (comma delimiter, header row):
//
//	tbl, err := reader.Load("data.csv", reader.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tbl.RowCount(), "rows")
//
// Files without a header get positional names column_0, column_1, ...:
//
//	opts := reader.DefaultOptions()
//	opts.HasHeader = false
//	opts.Delimiter = '\t'
//	tbl, err := reader.Load("data.tsv", opts)
//
// # Compressed Input
//
// The codec is chosen from the last file extension:
//   - .gz, .gzip: gzip
//   - .zst, .zstd: Zstandard
//   - .lz4: LZ4 frame
//   - .br: Brotli
//   - .xz: XZ
//
// Anything else is read uncompressed.
//
// # Content Digest
//
// A Reader hashes the raw file bytes with BLAKE3 while loading, which lets
// callers tell whether two runs saw the same input:
//
//	r, err := reader.NewReader("data.csv.zst", reader.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	tbl, err := r.ReadTable()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(r.Digest())
//
// # Resource Management
//
// Load closes the file on every path, including parse failures. When using
// NewReader directly, always call Close.
package reader
