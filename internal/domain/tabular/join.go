package tabular

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// JoinStats describes the outcome of a left join.
type JoinStats struct {
	// Unmatched counts left rows without any right match.
	Unmatched int
	// Dropped lists right-side columns discarded because the left side
	// already carries a column with that name.
	Dropped []string
}

// LeftJoin joins right onto left on the key column.
//
// Every left row is kept in its original order. A left row with several
// right matches is repeated once per match in right-table order; a row
// without a match gets missing values in the right-side columns. Missing
// keys never match. On a name collision the left column wins and the right
// one is dropped.
func LeftJoin(left, right dataframe.DataFrame, key string) (dataframe.DataFrame, JoinStats, error) {
	var stats JoinStats

	if err := RequireColumns(left, "left", key); err != nil {
		return dataframe.DataFrame{}, stats, err
	}
	if err := RequireColumns(right, "right", key); err != nil {
		return dataframe.DataFrame{}, stats, err
	}

	index := make(map[string][]int, right.Nrow())
	rk := right.Col(key)
	for j, na := range rk.IsNaN() {
		if na {
			continue
		}
		k := rk.Elem(j).String()
		index[k] = append(index[k], j)
	}

	lk := left.Col(key)
	lna := lk.IsNaN()
	leftIdx := make([]int, 0, left.Nrow())
	rightIdx := make([]int, 0, left.Nrow())
	for i := 0; i < left.Nrow(); i++ {
		var matches []int
		if !lna[i] {
			matches = index[lk.Elem(i).String()]
		}
		if len(matches) == 0 {
			leftIdx = append(leftIdx, i)
			rightIdx = append(rightIdx, -1)
			stats.Unmatched++
			continue
		}
		for _, j := range matches {
			leftIdx = append(leftIdx, i)
			rightIdx = append(rightIdx, j)
		}
	}

	out, err := subset(left, leftIdx)
	if err != nil {
		return dataframe.DataFrame{}, stats, err
	}

	taken := make(map[string]struct{}, left.Ncol())
	for _, n := range left.Names() {
		taken[n] = struct{}{}
	}

	var cols []series.Series
	for _, name := range right.Names() {
		if name == key {
			continue
		}
		if _, clash := taken[name]; clash {
			stats.Dropped = append(stats.Dropped, name)
			continue
		}
		src := right.Col(name)
		recs := src.Records()
		na := src.IsNaN()
		vals := make([]string, len(rightIdx))
		for i, j := range rightIdx {
			if j < 0 || na[j] {
				vals[i] = NA
				continue
			}
			vals[i] = recs[j]
		}
		cols = append(cols, series.New(vals, src.Type(), name))
	}
	if len(cols) == 0 {
		return out, stats, nil
	}

	joined := out.CBind(dataframe.New(cols...))
	if joined.Err != nil {
		return dataframe.DataFrame{}, stats, fmt.Errorf("%w: join on %s: %w", ErrFrame, key, joined.Err)
	}
	return joined, stats, nil
}
