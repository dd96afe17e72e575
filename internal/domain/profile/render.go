package profile

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Render writes the report as sectioned console tables. With plain set, the
// section banners carry no colour escapes.
func (r *Report) Render(w io.Writer, plain bool) error {
	ew := &errWriter{w: w}

	banner(ew, plain, "=== %s (%d rows) ===", strings.ToUpper(r.Label), r.Rows)

	section(ew, plain, "First %d rows", len(r.Preview))
	t := newTable(ew, r.Header)
	t.AppendBulk(r.Preview)
	t.Render()

	section(ew, plain, "Columns")
	t = newTable(ew, []string{"#", "column", "non-null", "type"})
	for i, c := range r.Columns {
		t.Append([]string{strconv.Itoa(i), c.Name, strconv.Itoa(c.NonNull), c.Type})
	}
	t.Render()

	section(ew, plain, "Describe")
	t = newTable(ew, []string{"column", "count", "unique", "top", "freq", "mean", "std", "min", "25%", "50%", "75%", "max"})
	for _, s := range r.Stats {
		row := []string{s.Name, strconv.Itoa(s.Count), strconv.Itoa(s.Unique), s.Top, "", "", "", "", "", "", "", ""}
		if s.Numeric {
			row[2] = ""
			for i, f := range []float64{s.Mean, s.Std, s.Min, s.Q25, s.Q50, s.Q75, s.Max} {
				row[5+i] = formatFloat(f)
			}
		} else if s.Count > 0 {
			row[4] = strconv.Itoa(s.Freq)
		}
		t.Append(row)
	}
	t.Render()

	section(ew, plain, "Nulls per column")
	t = newTable(ew, []string{"column", "nulls"})
	for _, c := range r.Columns {
		t.Append([]string{c.Name, strconv.Itoa(c.Nulls)})
	}
	t.Render()

	section(ew, plain, "Duplicated rows")
	fmt.Fprintf(ew, "%d\n", r.Duplicates)

	section(ew, plain, "Column names")
	fmt.Fprintf(ew, "%s\n", strings.Join(r.Header, ", "))

	return ew.err
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	return t
}

func banner(w io.Writer, plain bool, format string, args ...any) {
	if plain {
		fmt.Fprintf(w, "\n"+format+"\n", args...)
		return
	}
	color.New(color.FgCyan, color.Bold).Fprintf(w, "\n"+format+"\n", args...)
}

func section(w io.Writer, plain bool, format string, args ...any) {
	if plain {
		fmt.Fprintf(w, "\n-- "+format+"\n", args...)
		return
	}
	color.New(color.FgYellow).Fprintf(w, "\n-- "+format+"\n", args...)
}

// errWriter keeps the first write error so rendering can proceed unchecked.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	if _, err := e.w.Write(p); err != nil {
		e.err = err
	}
	return len(p), nil
}
