// Package query selects rows from an in-memory table and serializes the selection.
//
// The Engine offers two selections:
//   - Head: the first n rows, in table order
//   - WhereEquals: rows whose value in a named column equals a string exactly
//
// Both return a *Result, a view that holds row indices rather than copies of
// the data. The table must not be modified while results derived from it are
// in use; tables built by package table are never modified after construction.
//
// # Basic Usage
//
//	tbl, err := reader.Load("people.csv", reader.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	engine := query.NewEngine(tbl)
//	result, err := engine.WhereEquals("city", "Lisbon")
//	if err != nil {
//	    log.Fatal(err) // unknown column
//	}
//
//	if err := result.WriteCSV(os.Stdout, ','); err != nil {
//	    log.Fatal(err)
//	}
//
// # Consuming Results
//
//   - Materialize copies out full rows
//   - Column extracts one column as strings
//   - NumericColumn extracts one column as float64, failing on the first non-number
//   - WriteCSV re-emits the header and selected rows as delimited text
//
// WriteCSV quotes exactly the fields the csv package's Reader would otherwise
// split or alter, so reading its output back yields Materialize's rows.
package query
