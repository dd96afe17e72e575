// Package profile builds descriptive reports of loaded tables.
package profile

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/okian/podium/internal/domain/dedupe"
	"github.com/okian/podium/internal/domain/ranking"
	"github.com/okian/podium/internal/domain/tabular"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnInfo is the type and null summary of one column.
type ColumnInfo struct {
	Name    string
	Type    string
	NonNull int
	Nulls   int
}

// ColumnStats holds descriptive statistics of one column. Numeric fields are
// set only when Numeric is true; Top and Freq only when it is false.
type ColumnStats struct {
	Name    string
	Count   int
	Unique  int
	Top     string
	Freq    int
	Numeric bool
	Mean    float64
	Std     float64
	Min     float64
	Q25     float64
	Q50     float64
	Q75     float64
	Max     float64
}

// Report is the profile of one table. Building it never mutates the frame.
type Report struct {
	Label      string
	Rows       int
	Header     []string
	Preview    [][]string
	Columns    []ColumnInfo
	Stats      []ColumnStats
	Duplicates int
}

// Build profiles df under label, previewing the first previewRows rows.
func Build(ctx context.Context, label string, df dataframe.DataFrame, previewRows int) (*Report, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadableTable, label, df.Err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body := tabular.Rows(df)
	r := &Report{
		Label:  label,
		Rows:   df.Nrow(),
		Header: df.Names(),
	}
	if previewRows > len(body) {
		previewRows = len(body)
	}
	r.Preview = body[:previewRows]

	nulls := tabular.NullCounts(df)
	types := df.Types()
	for i, name := range r.Header {
		r.Columns = append(r.Columns, ColumnInfo{
			Name:    name,
			Type:    string(types[i]),
			NonNull: r.Rows - nulls[i],
			Nulls:   nulls[i],
		})
		r.Stats = append(r.Stats, describe(df.Col(name)))
	}

	r.Duplicates = dedupe.CountDuplicates(ctx, body)
	return r, nil
}

func describe(s series.Series) ColumnStats {
	cs := ColumnStats{Name: s.Name}
	na := s.IsNaN()
	recs := s.Records()

	values := ranking.NewTally()
	for i, rec := range recs {
		if na[i] {
			continue
		}
		cs.Count++
		values.Inc(rec)
	}
	cs.Unique = values.Len()

	numeric := s.Type() == series.Int || s.Type() == series.Float
	if !numeric {
		if top := values.TopN(1); len(top) == 1 {
			cs.Top, cs.Freq = top[0].Key, top[0].Count
		}
		return cs
	}
	if cs.Count == 0 {
		return cs
	}

	x := make([]float64, 0, cs.Count)
	for i, f := range s.Float() {
		if !na[i] {
			x = append(x, f)
		}
	}
	sort.Float64s(x)

	cs.Numeric = true
	cs.Mean = stat.Mean(x, nil)
	cs.Std = math.NaN()
	if len(x) > 1 {
		cs.Std = stat.StdDev(x, nil)
	}
	cs.Min = floats.Min(x)
	cs.Max = floats.Max(x)
	cs.Q25 = quantile(x, 0.25)
	cs.Q50 = quantile(x, 0.50)
	cs.Q75 = quantile(x, 0.75)
	return cs
}

// quantile interpolates linearly between the closest ranks of sorted x,
// placing p at position p*(n-1).
func quantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', 6, 64)
}
