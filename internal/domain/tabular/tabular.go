// Package tabular holds the frame operations of the cleaning stage: the
// keyed left join and null handling over gota data frames.
package tabular

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// NA is the cell text gota uses for a missing value.
const NA = "NaN"

// RequireColumns returns ErrMissingColumn naming the first absent column.
func RequireColumns(df dataframe.DataFrame, table string, cols ...string) error {
	have := make(map[string]struct{}, df.Ncol())
	for _, n := range df.Names() {
		have[n] = struct{}{}
	}
	for _, c := range cols {
		if _, ok := have[c]; !ok {
			return fmt.Errorf("%w: %s.%s", ErrMissingColumn, table, c)
		}
	}
	return nil
}

// NullCounts returns the number of missing cells per column, in column order.
func NullCounts(df dataframe.DataFrame) []int {
	out := make([]int, df.Ncol())
	for i, n := range df.Names() {
		for _, na := range df.Col(n).IsNaN() {
			if na {
				out[i]++
			}
		}
	}
	return out
}

// HasNulls reports whether any cell of df is missing.
func HasNulls(df dataframe.DataFrame) bool {
	for _, n := range NullCounts(df) {
		if n > 0 {
			return true
		}
	}
	return false
}

// rows returns the data rows of df without the header.
func rows(df dataframe.DataFrame) [][]string {
	recs := df.Records()
	if len(recs) == 0 {
		return nil
	}
	return recs[1:]
}

// Rows returns the cell text of every data row.
func Rows(df dataframe.DataFrame) [][]string { return rows(df) }

// emptyLike returns a frame with the columns and types of df and no rows.
func emptyLike(df dataframe.DataFrame) dataframe.DataFrame {
	names := df.Names()
	types := df.Types()
	cols := make([]series.Series, len(names))
	for i, n := range names {
		cols[i] = series.New([]string{}, types[i], n)
	}
	return dataframe.New(cols...)
}

// EmptyFrame returns a frame with string columns named names and no rows.
func EmptyFrame(names []string) dataframe.DataFrame {
	cols := make([]series.Series, len(names))
	for i, n := range names {
		cols[i] = series.New([]string{}, series.String, n)
	}
	return dataframe.New(cols...)
}

// subset keeps the rows at idx, in order. Indices may repeat.
func subset(df dataframe.DataFrame, idx []int) (dataframe.DataFrame, error) {
	if len(idx) == 0 {
		return emptyLike(df), nil
	}
	out := df.Subset(idx)
	if out.Err != nil {
		return out, fmt.Errorf("%w: subset: %w", ErrFrame, out.Err)
	}
	return out, nil
}
