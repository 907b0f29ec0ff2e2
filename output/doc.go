// Package output provides formatters for rendering query results.
//
// This package defines the Formatter interface and implementations for
// delimited text, JSON Lines, aligned terminal tables and Parquet. All
// formatters consume a *query.Result and always emit the table header, even
// when no rows were selected (JSON Lines has no header and emits nothing).
//
// # Supported Formats
//
//   - csv: delimited text, the inverse of the input parser
//   - jsonl: one JSON object per row, values kept as strings
//   - table: aligned text table for terminals
//   - parquet: a Parquet file with one string column per table column
//
// # Basic Usage
//
//	formatter, err := output.New("csv", os.Stdout, output.Options{Delimiter: ';'})
//	if err != nil {
//	    log.Fatal(err) // unsupported format
//	}
//	if err := formatter.Format(result); err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing to Different Destinations
//
//	formatter := output.NewParquetFormatter(os.Stdout)
//
//	file, err := os.Create("selection.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	formatter.SetOutput(file)
//	if err := formatter.Format(result); err != nil {
//	    log.Fatal(err)
//	}
package output
