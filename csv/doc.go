// Package csv tokenizes and emits RFC 4180 style delimited text.
//
// The Reader is a single-pass state machine over bytes. It yields one record
// per Read call and io.EOF once the input is exhausted, so callers may either
// stream records or drain them with ReadAll.
//
// # Quoting Rules
//
//   - A double quote switches a field into quoted mode; the quote itself is not kept
//   - Inside quotes, "" is a literal quote and a single " ends quoted mode
//   - Quoted and unquoted spans may be mixed within one field: a"b,c"d reads as ab,cd
//   - Inside quotes the delimiter and line feeds are ordinary bytes
//   - Outside quotes '\r' is dropped, so CRLF and LF line endings both work
//   - End of input inside quotes is an error (ErrUnterminatedQuote)
//
// # Basic Usage
//
//	r := csv.NewReader(file)
//	r.Comma = ';'
//	for {
//	    record, err := r.Read()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(record)
//	}
//
// The Writer applies the inverse rules, so records written by it read back
// unchanged:
//
//	w := csv.NewWriter(os.Stdout)
//	if err := w.WriteAll(records); err != nil {
//	    return err
//	}
package csv
