package views

import (
	"sort"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

func countByYear(rows []model.AthleteMedal) map[int]int {
	counts := make(map[int]int)
	for _, r := range rows {
		counts[r.YearBirth]++
	}
	return counts
}

func sortedPoints(counts map[int]int) []types.YearCount {
	pts := make([]types.YearCount, 0, len(counts))
	for y, c := range counts {
		pts = append(pts, types.YearCount{Year: y, Count: c})
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Year < pts[j].Year })
	return pts
}

// ParticipationByBirthYear counts medal rows per athlete birth year and
// smooths the counts with a spline sampled at samples points.
func ParticipationByBirthYear(rows []model.AthleteMedal, samples int) (types.BirthYearParticipation, error) {
	var out types.BirthYearParticipation
	if len(rows) == 0 {
		return out, ErrEmptySubset
	}
	out.Points = sortedPoints(countByYear(rows))

	xs := make([]float64, len(out.Points))
	ys := make([]float64, len(out.Points))
	for i, p := range out.Points {
		xs[i] = float64(p.Year)
		ys[i] = float64(p.Count)
	}
	curve, err := Smooth(xs, ys, samples)
	if err != nil {
		return out, err
	}
	out.Smooth = curve
	return out, nil
}

// ParticipationByGender counts medal rows per birth year for each event
// gender, one series per gender in alphabetical order.
func ParticipationByGender(rows []model.AthleteMedal) ([]types.Series, error) {
	if len(rows) == 0 {
		return nil, ErrEmptySubset
	}
	byGender := make(map[string]map[int]int)
	for _, r := range rows {
		c, ok := byGender[r.EventGender]
		if !ok {
			c = make(map[int]int)
			byGender[r.EventGender] = c
		}
		c[r.YearBirth]++
	}
	pts := make(map[string][]types.YearCount, len(byGender))
	for g, c := range byGender {
		for y, n := range c {
			pts[g] = append(pts[g], types.YearCount{Year: y, Count: n})
		}
	}
	return seriesOf(pts), nil
}
