package views

import (
	"slices"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/ranking"
	"github.com/okian/podium/internal/domain/types"
)

func golds(rows []model.AthleteMedal) []model.AthleteMedal {
	var out []model.AthleteMedal
	for _, r := range rows {
		if r.Type == model.Gold {
			out = append(out, r)
		}
	}
	return out
}

// TopGoldByDiscipline returns, for the n disciplines with most golds, the
// country with most golds in each. Disciplines come in gold-count order;
// ties go to the alphabetically first name.
func TopGoldByDiscipline(rows []model.AthleteMedal, n int) ([]types.DisciplineLeader, error) {
	g := golds(rows)
	if len(g) == 0 {
		return nil, ErrEmptySubset
	}

	byDiscipline := ranking.NewTally()
	perCountry := make(map[string]*ranking.Tally)
	for _, r := range g {
		byDiscipline.Inc(r.Discipline)
		t, ok := perCountry[r.Discipline]
		if !ok {
			t = ranking.NewTally()
			perCountry[r.Discipline] = t
		}
		t.Inc(r.CountryName)
	}

	top := byDiscipline.TopN(n)
	out := make([]types.DisciplineLeader, 0, len(top))
	for _, d := range top {
		leader := perCountry[d.Key].TopN(1)[0]
		out = append(out, types.DisciplineLeader{
			Discipline:      d.Key,
			Country:         leader.Key,
			Golds:           leader.Count,
			DisciplineGolds: d.Count,
		})
	}
	return out, nil
}

// WomenMedalsByCountry counts medals per type in women's events for the n
// countries with most such medals, in total-count order.
func WomenMedalsByCountry(rows []model.AthleteMedal, n int) ([]types.CountryMedals, error) {
	totals := ranking.NewTally()
	byCountry := make(map[string]*types.CountryMedals)
	for _, r := range rows {
		if r.EventGender != "Women" || !slices.Contains(model.MedalTypes, r.Type) {
			continue
		}
		totals.Inc(r.CountryName)
		c, ok := byCountry[r.CountryName]
		if !ok {
			c = &types.CountryMedals{Country: r.CountryName}
			byCountry[r.CountryName] = c
		}
		switch r.Type {
		case model.Gold:
			c.Gold++
		case model.Silver:
			c.Silver++
		case model.Bronze:
			c.Bronze++
		}
	}
	if totals.Len() == 0 {
		return nil, ErrEmptySubset
	}

	top := totals.Keys(n)
	out := make([]types.CountryMedals, len(top))
	for i, k := range top {
		out[i] = *byCountry[k]
	}
	return out, nil
}

// GoldByCountry counts gold medal rows per country, in count order.
func GoldByCountry(rows []model.AthleteMedal) ([]types.CountryValue, error) {
	t := ranking.NewTally()
	for _, r := range golds(rows) {
		t.Inc(r.CountryName)
	}
	if t.Len() == 0 {
		return nil, ErrEmptySubset
	}
	entries := t.Entries()
	out := make([]types.CountryValue, len(entries))
	for i, e := range entries {
		out[i] = types.CountryValue{Country: e.Key, Value: float64(e.Count)}
	}
	return out, nil
}
