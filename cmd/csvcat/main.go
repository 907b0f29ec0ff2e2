// Command csvcat previews and filters delimited text files.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	csverrors "github.com/vegasq/csvcat/internal/errors"
	"github.com/vegasq/csvcat/internal/logging"
	"github.com/vegasq/csvcat/output"
	"github.com/vegasq/csvcat/query"
	"github.com/vegasq/csvcat/reader"
	"github.com/vegasq/csvcat/table"
)

const version = "0.2.0"

// CLI defines the command-line interface for csvcat.
type CLI struct {
	File string `arg:"" name:"file" help:"CSV file to read (.gz, .zst, .lz4, .br and .xz are decompressed)"`

	Where  Filter `name:"where" placeholder:"COLUMN=VALUE" help:"Keep rows whose column equals value exactly (takes precedence over --head)" env:"CSVCAT_WHERE"`
	Head   int    `name:"head" short:"n" default:"5" help:"Number of rows to preview" env:"CSVCAT_HEAD"`
	Schema bool   `name:"schema" help:"List the columns instead of data"`

	Delimiter       Delimiter `name:"delimiter" short:"d" default:"," help:"Input field delimiter (a single byte, or tab)" env:"CSVCAT_DELIMITER"`
	NoHeader        bool      `name:"no-header" help:"Treat the first line as data and name columns column_0, column_1, ..." env:"CSVCAT_NO_HEADER"`
	StrictHeader    bool      `name:"strict-header" help:"Reject files with duplicate column names" env:"CSVCAT_STRICT_HEADER"`
	Format          string    `name:"format" short:"f" default:"csv" enum:"csv,jsonl,json,table,parquet" help:"Output format: csv, jsonl, table, parquet" env:"CSVCAT_FORMAT"`
	OutputDelimiter Delimiter `name:"output-delimiter" default:"," help:"Field delimiter for csv output" env:"CSVCAT_OUTPUT_DELIMITER"`
	MaxWidth        int       `name:"max-width" default:"40" help:"Truncate table cells to this width (0 = unlimited)" env:"CSVCAT_MAX_WIDTH"`

	LogLevel string `name:"log-level" default:"warn" help:"Log level: debug, info, warn, error" env:"CSVCAT_LOG_LEVEL"`
	SeqURL   string `name:"seq-url" help:"Also ship logs to this Seq server" env:"CSVCAT_SEQ_URL"`

	Version kong.VersionFlag `name:"version" help:"Print version information"`
}

// Filter is a column=value equality filter.
type Filter struct {
	Column string
	Value  string
	set    bool
}

// UnmarshalText parses column=value. Only the first '=' separates; the value may contain more.
func (f *Filter) UnmarshalText(text []byte) error {
	column, value, ok := strings.Cut(string(text), "=")
	if !ok {
		return fmt.Errorf("--where argument must contain '=' (column=value)")
	}
	*f = Filter{Column: column, Value: value, set: true}
	return nil
}

// IsSet reports whether a filter was given.
func (f Filter) IsSet() bool {
	return f.set
}

// Delimiter is a single-byte field separator.
type Delimiter byte

// UnmarshalText accepts one ASCII byte, or "tab" / "\t" for a tab.
func (d *Delimiter) UnmarshalText(text []byte) error {
	s := string(text)
	switch s {
	case "tab", `\t`:
		*d = '\t'
		return nil
	}
	if len(s) != 1 || s[0] >= 0x80 {
		return fmt.Errorf("delimiter must be a single ASCII character, got %q", s)
	}
	switch s[0] {
	case '"', '\n', '\r':
		return fmt.Errorf("delimiter cannot be %q", s)
	}
	*d = Delimiter(s[0])
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("csvcat"),
		kong.Description("A tool to preview and filter CSV files."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Configuration(kong.JSON, ".csvcat.json", "~/.csvcat.json"),
		kong.Vars{"version": version},
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) && parseErr.Context != nil {
			printUsage(parseErr.Context, stderr)
		}
		return 1
	}

	// Validate flag values
	if cli.Head < 0 {
		fmt.Fprintf(stderr, "Error: --head must be non-negative, got %d\n\n", cli.Head)
		printUsage(kctx, stderr)
		return 1
	}
	if cli.Schema && cli.Where.IsSet() {
		fmt.Fprintf(stderr, "Error: --schema and --where cannot be used together\n\n")
		printUsage(kctx, stderr)
		return 1
	}
	level, err := logging.ParseLevel(cli.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		printUsage(kctx, stderr)
		return 1
	}

	logger, closeLog := logging.Setup(stderr, level, cli.SeqURL)
	defer closeLog()

	formatter, err := output.New(cli.Format, stdout, output.Options{
		Delimiter: byte(cli.OutputDelimiter),
		MaxWidth:  cli.MaxWidth,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Supported formats: %s\n", strings.Join(output.Formats, ", "))
		return 1
	}

	tbl, err := load(cli, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(stderr, "Please check the file path and try again.\n")
		}
		return 1
	}

	if cli.Schema {
		return emitSchema(tbl, formatter, stderr)
	}

	engine := query.NewEngine(tbl)
	start := time.Now()

	var res *query.Result
	if cli.Where.IsSet() {
		res, err = engine.WhereEquals(cli.Where.Column, cli.Where.Value)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			if errors.Is(err, csverrors.ErrNotFound) && tbl.ColumnCount() > 0 {
				// List available columns to help user
				fmt.Fprintf(stderr, "\nAvailable columns: %s\n", strings.Join(tbl.Columns(), ", "))
			}
			return 1
		}
		logger.Debug("filter applied",
			"column", cli.Where.Column,
			"matched", res.Len(),
			"elapsed", time.Since(start),
		)

		fmt.Fprintf(stderr, "Matched rows: %d\n", res.Len())
		if res.Len() == 0 {
			return 0
		}
	} else {
		fmt.Fprintf(stderr, "Loaded %d rows across %d columns. Showing first %d rows.\n",
			tbl.RowCount(), tbl.ColumnCount(), cli.Head)
		res, err = engine.Head(cli.Head)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	if err := formatter.Format(res); err != nil {
		fmt.Fprintf(stderr, "Error formatting output: %v\n", err)
		return 1
	}
	return 0
}

// printUsage writes the usage message to w instead of the help stream.
func printUsage(kctx *kong.Context, w io.Writer) {
	kctx.Stdout = w
	_ = kctx.PrintUsage(false)
}

// load reads the input file described by cli into a table.
func load(cli CLI, logger *slog.Logger) (*table.Table, error) {
	opts := reader.Options{
		Delimiter:     byte(cli.Delimiter),
		HasHeader:     !cli.NoHeader,
		StrictColumns: cli.StrictHeader,
	}

	start := time.Now()
	r, err := reader.NewReader(cli.File, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := r.Close(); err != nil {
			logger.Warn("failed to close input", "path", cli.File, "error", err)
		}
	}()

	tbl, err := r.ReadTable()
	if err != nil {
		logger.Debug("load failed", "path", cli.File, "error", err)
		return nil, err
	}

	logger.Debug("table loaded",
		"path", cli.File,
		"codec", reader.CodecFor(cli.File),
		"rows", tbl.RowCount(),
		"columns", tbl.ColumnCount(),
		"blake3", r.Digest(),
		"elapsed", time.Since(start),
	)
	return tbl, nil
}

// emitSchema writes the column listing of tbl with the selected formatter.
func emitSchema(tbl *table.Table, formatter output.Formatter, stderr io.Writer) int {
	infos := reader.ExtractSchemaInfo(tbl)
	schema, err := reader.SchemaTable(infos)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	res, err := query.NewEngine(schema).Head(schema.RowCount())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if err := formatter.Format(res); err != nil {
		fmt.Fprintf(stderr, "Error formatting output: %v\n", err)
		return 1
	}
	return 0
}
