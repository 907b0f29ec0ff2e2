package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

const cities = "name,city,score\n" +
	"alice,Lisbon,1\n" +
	"bob,Porto,2.5\n" +
	"carol,Lisbon,3\n" +
	"dave,\"Lisbon, PT\",4\n" +
	"erin,Faro,5\n" +
	"frank,Braga,6\n"

// createTestCSVFile writes content to a file named filename in a temp dir.
func createTestCSVFile(t *testing.T, filename, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), filename)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

// runCLI runs the command and returns its exit code and both streams.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Preview(t *testing.T) {
	path := createTestCSVFile(t, "cities.csv", cities)

	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantStderr string
	}{
		{
			name:       "default head",
			args:       []string{path},
			wantStdout: "name,city,score\nalice,Lisbon,1\nbob,Porto,2.5\ncarol,Lisbon,3\ndave,\"Lisbon, PT\",4\nerin,Faro,5\n",
			wantStderr: "Loaded 6 rows across 3 columns. Showing first 5 rows.\n",
		},
		{
			name:       "explicit head",
			args:       []string{path, "--head", "2"},
			wantStdout: "name,city,score\nalice,Lisbon,1\nbob,Porto,2.5\n",
			wantStderr: "Loaded 6 rows across 3 columns. Showing first 2 rows.\n",
		},
		{
			name:       "head zero prints header only",
			args:       []string{path, "--head", "0"},
			wantStdout: "name,city,score\n",
			wantStderr: "Loaded 6 rows across 3 columns. Showing first 0 rows.\n",
		},
		{
			name:       "head beyond row count",
			args:       []string{path, "-n", "100"},
			wantStdout: "name,city,score\n" + strings.TrimPrefix(cities, "name,city,score\n"),
			wantStderr: "Loaded 6 rows across 3 columns. Showing first 100 rows.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)
			if code != 0 {
				t.Fatalf("run() = %d, want 0; stderr: %s", code, stderr)
			}
			if stdout != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout, tt.wantStdout)
			}
			if stderr != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestRun_Where(t *testing.T) {
	path := createTestCSVFile(t, "cities.csv", cities)

	tests := []struct {
		name       string
		args       []string
		wantStdout string
		wantStderr string
	}{
		{
			name:       "matches",
			args:       []string{path, "--where", "city=Lisbon"},
			wantStdout: "name,city,score\nalice,Lisbon,1\ncarol,Lisbon,3\n",
			wantStderr: "Matched rows: 2\n",
		},
		{
			name:       "value containing delimiter and equals",
			args:       []string{path, "--where=city=Lisbon, PT"},
			wantStdout: "name,city,score\ndave,\"Lisbon, PT\",4\n",
			wantStderr: "Matched rows: 1\n",
		},
		{
			name:       "takes precedence over head",
			args:       []string{path, "--head", "1", "--where", "city=Lisbon"},
			wantStdout: "name,city,score\nalice,Lisbon,1\ncarol,Lisbon,3\n",
			wantStderr: "Matched rows: 2\n",
		},
		{
			name:       "no matches emits nothing",
			args:       []string{path, "--where", "city=lisbon"},
			wantStdout: "",
			wantStderr: "Matched rows: 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)
			if code != 0 {
				t.Fatalf("run() = %d, want 0; stderr: %s", code, stderr)
			}
			if stdout != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout, tt.wantStdout)
			}
			if stderr != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr, tt.wantStderr)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	good := createTestCSVFile(t, "cities.csv", cities)
	ragged := createTestCSVFile(t, "ragged.csv", "a,b\n1,2\n3\n")
	unterminated := createTestCSVFile(t, "open.csv", "a,b\n1,\"never closed\n")
	empty := createTestCSVFile(t, "empty.csv", "")
	dupes := createTestCSVFile(t, "dupes.csv", "id,id\n1,2\n")

	tests := []struct {
		name        string
		args        []string
		wantContain []string
	}{
		{
			name:        "missing file argument",
			args:        []string{},
			wantContain: []string{"Error:", "Usage:"},
		},
		{
			name:        "negative head",
			args:        []string{good, "--head=-1"},
			wantContain: []string{"Error: --head must be non-negative"},
		},
		{
			name:        "non-numeric head",
			args:        []string{good, "--head", "many"},
			wantContain: []string{"Error:"},
		},
		{
			name:        "where without equals",
			args:        []string{good, "--where", "city"},
			wantContain: []string{"Error:", "must contain '='"},
		},
		{
			name:        "bad delimiter",
			args:        []string{good, "--delimiter", "ab"},
			wantContain: []string{"Error:", "single ASCII character"},
		},
		{
			name:        "unknown format",
			args:        []string{good, "--format", "xml"},
			wantContain: []string{"Error:"},
		},
		{
			name:        "schema with where",
			args:        []string{good, "--schema", "--where", "a=b"},
			wantContain: []string{"cannot be used together"},
		},
		{
			name:        "missing file",
			args:        []string{filepath.Join(t.TempDir(), "nope.csv")},
			wantContain: []string{"Error:", "Please check the file path"},
		},
		{
			name:        "unknown column",
			args:        []string{good, "--where", "country=PT"},
			wantContain: []string{"Error: unknown column: country", "Available columns: name, city, score"},
		},
		{
			name:        "width mismatch",
			args:        []string{ragged},
			wantContain: []string{"Error:", "row 1 width (1) does not match header size (2)"},
		},
		{
			name:        "unterminated quote",
			args:        []string{unterminated},
			wantContain: []string{"Error:", "line 2, column 3"},
		},
		{
			name:        "empty file",
			args:        []string{empty},
			wantContain: []string{"Error:", "header"},
		},
		{
			name:        "strict header",
			args:        []string{dupes, "--strict-header"},
			wantContain: []string{"Error:", "appears at positions 0 and 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)
			if code != 1 {
				t.Errorf("run() = %d, want 1", code)
			}
			if stdout != "" {
				t.Errorf("stdout = %q, want empty", stdout)
			}
			for _, want := range tt.wantContain {
				if !strings.Contains(stderr, want) {
					t.Errorf("stderr missing %q:\n%s", want, stderr)
				}
			}
		})
	}
}

func TestRun_Delimiters(t *testing.T) {
	path := createTestCSVFile(t, "cities.tsv", "name\tcity\nalice\tLisbon, PT\n")

	code, stdout, stderr := runCLI(t, path, "--delimiter", "tab", "--output-delimiter", ";")
	if code != 0 {
		t.Fatalf("run() = %d, want 0; stderr: %s", code, stderr)
	}
	if want := "name;city\nalice;Lisbon, PT\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRun_NoHeader(t *testing.T) {
	path := createTestCSVFile(t, "raw.csv", "1,a\n2,b\n")

	code, stdout, stderr := runCLI(t, path, "--no-header", "--where", "column_1=b")
	if code != 0 {
		t.Fatalf("run() = %d, want 0; stderr: %s", code, stderr)
	}
	if want := "column_0,column_1\n2,b\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRun_Gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(cities)); err != nil {
		t.Fatalf("failed to compress: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("failed to close gzip writer: %v", err)
	}
	path := createTestCSVFile(t, "cities.csv.gz", buf.String())

	code, stdout, stderr := runCLI(t, path, "--where", "name=bob")
	if code != 0 {
		t.Fatalf("run() = %d, want 0; stderr: %s", code, stderr)
	}
	if want := "name,city,score\nbob,Porto,2.5\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRun_Formats(t *testing.T) {
	path := createTestCSVFile(t, "cities.csv", cities)

	tests := []struct {
		format      string
		wantContain string
	}{
		{"jsonl", `"city":"Porto"`},
		{"table", "Porto"},
		{"parquet", "PAR1"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, path, "--format", tt.format, "--where", "name=bob")
			if code != 0 {
				t.Fatalf("run() = %d, want 0; stderr: %s", code, stderr)
			}
			if !strings.Contains(stdout, tt.wantContain) {
				t.Errorf("stdout missing %q:\n%s", tt.wantContain, stdout)
			}
		})
	}
}

func TestRun_Schema(t *testing.T) {
	path := createTestCSVFile(t, "dupes.csv", "id,name,id\n1,a,2\n")

	code, stdout, stderr := runCLI(t, path, "--schema")
	if code != 0 {
		t.Fatalf("run() = %d, want 0; stderr: %s", code, stderr)
	}
	want := "position,name,shadowed\n0,id,true\n1,name,false\n2,id,false\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRun_Env(t *testing.T) {
	path := createTestCSVFile(t, "cities.csv", cities)
	t.Setenv("CSVCAT_HEAD", "1")

	code, stdout, stderr := runCLI(t, path)
	if code != 0 {
		t.Fatalf("run() = %d, want 0; stderr: %s", code, stderr)
	}
	if want := "name,city,score\nalice,Lisbon,1\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestFilter_UnmarshalText(t *testing.T) {
	tests := []struct {
		input      string
		wantColumn string
		wantValue  string
		wantErr    bool
	}{
		{"city=Lisbon", "city", "Lisbon", false},
		{"expr=a=b", "expr", "a=b", false},
		{"city=", "city", "", false},
		{"=x", "", "x", false},
		{"city", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var f Filter
			err := f.UnmarshalText([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if f.IsSet() {
					t.Errorf("IsSet() = true after failed parse")
				}
				return
			}
			if f.Column != tt.wantColumn || f.Value != tt.wantValue || !f.IsSet() {
				t.Errorf("UnmarshalText() = %+v, want column %q value %q", f, tt.wantColumn, tt.wantValue)
			}
		})
	}
}

func TestDelimiter_UnmarshalText(t *testing.T) {
	tests := []struct {
		input   string
		want    Delimiter
		wantErr bool
	}{
		{",", ',', false},
		{";", ';', false},
		{"|", '|', false},
		{"tab", '\t', false},
		{`\t`, '\t', false},
		{"\t", '\t', false},
		{"", 0, true},
		{"ab", 0, true},
		{`"`, 0, true},
		{"\n", 0, true},
		{"é", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var d Delimiter
			err := d.UnmarshalText([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && d != tt.want {
				t.Errorf("UnmarshalText() = %q, want %q", byte(d), byte(tt.want))
			}
		})
	}
}
