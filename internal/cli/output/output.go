// Package output formats tripdesk's scriptable command output.
//
// Supported formats:
//   - table: human-readable columns (default)
//   - json: machine-readable JSON
//   - yaml: machine-readable YAML
//   - quiet: record ids only, one per line
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format is an output format
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatQuiet Format = "quiet"
)

// ParseFormat parses a format string, defaulting to table
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	case "quiet", "q":
		return FormatQuiet
	default:
		return FormatTable
	}
}

// Listing is one page of records prepared for output: the table form
// for humans, the raw records for the machine formats, and the ids
// for quiet mode.
type Listing struct {
	Table *Table
	Raw   any
	IDs   []int
}

// Writer renders command output in the configured format
type Writer struct {
	format Format
	out    io.Writer
	err    io.Writer
}

// NewWriter creates a writer for the given format
func NewWriter(format Format) *Writer {
	return &Writer{
		format: format,
		out:    os.Stdout,
		err:    os.Stderr,
	}
}

// WithOutput overrides the output stream
func (w *Writer) WithOutput(out io.Writer) *Writer {
	w.out = out
	return w
}

// Format returns the current format
func (w *Writer) Format() Format {
	return w.format
}

// WriteListing renders one page of records
func (w *Writer) WriteListing(l Listing) error {
	switch w.format {
	case FormatJSON:
		return w.writeJSON(l.Raw)
	case FormatYAML:
		return yaml.NewEncoder(w.out).Encode(l.Raw)
	case FormatQuiet:
		for _, id := range l.IDs {
			fmt.Fprintln(w.out, strconv.Itoa(id))
		}
		return nil
	default:
		return w.renderTable(l.Table)
	}
}

// Record is a single fetched record prepared for output: labelled
// fields for humans, the raw record for the machine formats, and the
// id for quiet mode.
type Record struct {
	Fields [][2]string
	Raw    any
	ID     int
}

// WriteRecord renders one record
func (w *Writer) WriteRecord(r Record) error {
	switch w.format {
	case FormatJSON:
		return w.writeJSON(r.Raw)
	case FormatYAML:
		return yaml.NewEncoder(w.out).Encode(r.Raw)
	case FormatQuiet:
		fmt.Fprintln(w.out, strconv.Itoa(r.ID))
		return nil
	default:
		tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
		for _, f := range r.Fields {
			fmt.Fprintf(tw, "%s\t%s\n", strings.ToUpper(f[0]), f[1])
		}
		return tw.Flush()
	}
}

// writeJSON outputs data as pretty-printed JSON
func (w *Writer) writeJSON(data any) error {
	encoder := json.NewEncoder(w.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// renderTable renders a table with tab-aligned columns
func (w *Writer) renderTable(t *Table) error {
	if t == nil || len(t.Headers) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	for i, h := range t.Headers {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, strings.ToUpper(h))
	}
	fmt.Fprintln(tw)

	for _, row := range t.Rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// Printf writes formatted output
func (w *Writer) Printf(format string, a ...any) {
	fmt.Fprintf(w.out, format, a...)
}

// Table is tabular data ready to render
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable creates a table with headers
func NewTable(headers ...string) *Table {
	return &Table{
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow appends a row
func (t *Table) AddRow(cells ...string) *Table {
	t.Rows = append(t.Rows, cells)
	return t
}
