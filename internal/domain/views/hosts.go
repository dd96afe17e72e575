package views

import (
	"fmt"
	"sort"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/ranking"
	"github.com/okian/podium/internal/domain/types"
)

// hostMatch pairs a medal row with one host edition it joins to.
type hostMatch struct {
	medal *model.AthleteMedal
	host  *model.Host
}

// joinBySlug returns one match per medal whose slug_game names a host.
func joinBySlug(rows []model.AthleteMedal, hosts []model.Host) []hostMatch {
	bySlug := make(map[string][]int, len(hosts))
	for i, h := range hosts {
		bySlug[h.Slug] = append(bySlug[h.Slug], i)
	}
	var out []hostMatch
	for i := range rows {
		for _, j := range bySlug[rows[i].GameSlug] {
			out = append(out, hostMatch{medal: &rows[i], host: &hosts[j]})
		}
	}
	return out
}

// TopLocalAthletes returns the n athletes with most medals won as locals.
//
// With JoinSlug a medal counts when it was won at an edition hosted by the
// athlete's country. With JoinLocation every medal of a host country counts
// once per edition that country hosted, whatever edition it was won at.
func TopLocalAthletes(rows []model.AthleteMedal, hosts []model.Host, n int, mode string) ([]types.AthleteCount, error) {
	t := ranking.NewTally()
	switch mode {
	case JoinSlug, "":
		matches := joinBySlug(rows, hosts)
		if len(matches) == 0 {
			return nil, ErrEmptyJoin
		}
		for _, m := range matches {
			if m.medal.CountryName == m.host.Location {
				t.Inc(m.medal.AthleteName)
			}
		}
	case JoinLocation:
		hosted := make(map[string]int, len(hosts))
		for _, h := range hosts {
			hosted[h.Location]++
		}
		for _, r := range rows {
			if k := hosted[r.CountryName]; k > 0 {
				t.Add(r.AthleteName, k)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownJoin, mode)
	}
	if t.Len() == 0 {
		return nil, ErrEmptySubset
	}

	top := t.TopN(n)
	out := make([]types.AthleteCount, len(top))
	for i, e := range top {
		out[i] = types.AthleteCount{Athlete: e.Key, Count: e.Count}
	}
	return out, nil
}

// NationsBySeason counts distinct medal-winning countries per game year, one
// series per season in alphabetical order.
func NationsBySeason(rows []model.AthleteMedal, hosts []model.Host) ([]types.Series, error) {
	matches := joinBySlug(rows, hosts)
	if len(matches) == 0 {
		return nil, ErrEmptyJoin
	}

	type key struct {
		season string
		year   int
	}
	nations := make(map[key]map[string]struct{})
	for _, m := range matches {
		k := key{season: string(m.host.Season), year: m.host.Year}
		set, ok := nations[k]
		if !ok {
			set = make(map[string]struct{})
			nations[k] = set
		}
		set[m.medal.CountryName] = struct{}{}
	}

	bySeason := make(map[string][]types.YearCount)
	for k, set := range nations {
		bySeason[k.season] = append(bySeason[k.season], types.YearCount{Year: k.year, Count: len(set)})
	}
	return seriesOf(bySeason), nil
}

// YoungestWinterGold finds, per country, the youngest athlete to win gold at
// a Winter edition. Age is the edition year from the slug minus the birth
// year. Equal ages go to the alphabetically first athlete. Rows whose slug
// carries no year are skipped.
func YoungestWinterGold(rows []model.AthleteMedal, hosts []model.Host) ([]types.YoungestWinner, error) {
	matches := joinBySlug(rows, hosts)
	if len(matches) == 0 {
		return nil, ErrEmptyJoin
	}

	best := make(map[string]types.YoungestWinner)
	for _, m := range matches {
		if m.host.Season != model.Winter || m.medal.Type != model.Gold {
			continue
		}
		year, ok := model.SlugYear(m.medal.GameSlug)
		if !ok {
			continue
		}
		cand := types.YoungestWinner{
			Country: m.medal.CountryName,
			Athlete: m.medal.AthleteName,
			Age:     year - m.medal.YearBirth,
			Game:    m.medal.GameSlug,
		}
		cur, seen := best[cand.Country]
		if !seen || younger(cand, cur) {
			best[cand.Country] = cand
		}
	}
	if len(best) == 0 {
		return nil, ErrEmptySubset
	}

	out := make([]types.YoungestWinner, 0, len(best))
	for _, w := range best {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Country < out[j].Country })
	return out, nil
}

func younger(a, b types.YoungestWinner) bool {
	if a.Age != b.Age {
		return a.Age < b.Age
	}
	if a.Athlete != b.Athlete {
		return a.Athlete < b.Athlete
	}
	return a.Game < b.Game
}

// seriesOf sorts series by name and their points by year.
func seriesOf(m map[string][]types.YearCount) []types.Series {
	out := make([]types.Series, 0, len(m))
	for name, pts := range m {
		sort.Slice(pts, func(i, j int) bool { return pts[i].Year < pts[j].Year })
		out = append(out, types.Series{Name: name, Points: pts})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
