package tabular

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// FillValue replaces missing cells left after DropNA.
const FillValue = "0"

// DropNA returns a copy of df without the rows containing a missing cell.
func DropNA(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	names := df.Names()
	masks := make([][]bool, len(names))
	for i, n := range names {
		masks[i] = df.Col(n).IsNaN()
	}
	keep := make([]int, 0, df.Nrow())
	for r := 0; r < df.Nrow(); r++ {
		ok := true
		for _, m := range masks {
			if m[r] {
				ok = false
				break
			}
		}
		if ok {
			keep = append(keep, r)
		}
	}
	if len(keep) == df.Nrow() {
		return df.Copy(), nil
	}
	return subset(df, keep)
}

// FillNA returns a copy of df with every missing cell set to value. Column
// types are kept.
func FillNA(df dataframe.DataFrame, value string) (dataframe.DataFrame, error) {
	names := df.Names()
	cols := make([]series.Series, len(names))
	for i, n := range names {
		src := df.Col(n)
		recs := src.Records()
		for j, na := range src.IsNaN() {
			if na {
				recs[j] = value
			}
		}
		cols[i] = series.New(recs, src.Type(), n)
		if cols[i].Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("%w: fill %s: %w", ErrFrame, n, cols[i].Err)
		}
	}
	out := dataframe.New(cols...)
	if out.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%w: fill: %w", ErrFrame, out.Err)
	}
	return out, nil
}

// CleanStats reports how much a Clean call removed.
type CleanStats struct {
	RowsIn      int
	RowsDropped int
}

// Clean drops every row with a missing cell, then fills what is left with
// FillValue. The input frame is not modified.
func Clean(df dataframe.DataFrame) (dataframe.DataFrame, CleanStats, error) {
	stats := CleanStats{RowsIn: df.Nrow()}
	dropped, err := DropNA(df)
	if err != nil {
		return dataframe.DataFrame{}, stats, err
	}
	stats.RowsDropped = df.Nrow() - dropped.Nrow()
	filled, err := FillNA(dropped, FillValue)
	if err != nil {
		return dataframe.DataFrame{}, stats, err
	}
	return filled, stats, nil
}
