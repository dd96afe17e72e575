package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/okian/podium/internal/adapters/render/chart"
	"github.com/okian/podium/internal/adapters/render/geo"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/pkg/logger"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot"
)

// renderJob draws one view.
type renderJob struct {
	name string
	run  func() error
}

// render draws every view, at most RenderWorkers at a time. Unmatched
// choropleth countries are recorded on v.
func (s *Service) render(ctx context.Context, v *types.Views, maps *geo.MapRenderer) error {
	var mu sync.Mutex
	unmatched := map[string][]string{}

	static := func(name string, build func() (*plot.Plot, error)) renderJob {
		return renderJob{name: name, run: func() error {
			p, err := build()
			if err != nil {
				return err
			}
			path, err := s.charts.Save(name, p)
			if err != nil {
				return err
			}
			s.logger.Debug(ctx, "chart rendered", logger.String("view", name), logger.String("path", path))
			return nil
		}}
	}
	choropleth := func(name, title, legend string, values []types.CountryValue) renderJob {
		return renderJob{name: name, run: func() error {
			out, err := maps.Render(name, title, legend, values)
			if err != nil {
				return err
			}
			if len(out.Unmatched) > 0 {
				s.logger.Warn(ctx, "countries without boundary",
					logger.String("view", name),
					logger.Strings("countries", out.Unmatched),
				)
				mu.Lock()
				unmatched[name] = out.Unmatched
				mu.Unlock()
			}
			return nil
		}}
	}

	jobs := []renderJob{
		static(types.ViewTopGoldByDiscipline, func() (*plot.Plot, error) {
			return chart.DisciplineLeaders(v.TopGoldByDiscipline)
		}),
		static(types.ViewWomenMedalsByCountry, func() (*plot.Plot, error) {
			return chart.StackedMedals(v.WomenMedalsByCountry)
		}),
		static(types.ViewTopLocalAthletes, func() (*plot.Plot, error) {
			return chart.LocalAthletesPie(v.TopLocalAthletes)
		}),
		static(types.ViewParticipationByBirthYear, func() (*plot.Plot, error) {
			return chart.BirthYearCurve(v.ParticipationByBirthYear)
		}),
		static(types.ViewParticipationByGender, func() (*plot.Plot, error) {
			return chart.SeriesLines("Medallists by birth year and gender", "Birth year", "Medals", v.ParticipationByGender)
		}),
		static(types.ViewNationsBySeason, func() (*plot.Plot, error) {
			return chart.SeriesLines("Participating nations by season", "Year", "Nations", v.NationsBySeason)
		}),
	}
	if maps != nil {
		jobs = append(jobs,
			choropleth(types.ViewGoldByCountry, "Gold medals by country", "Gold medals", v.GoldByCountry),
			choropleth(types.ViewYoungestWinterGold, "Youngest Winter gold medallist by country", "Age", youngestValues(v.YoungestWinterGold)),
		)
	} else {
		s.logger.Warn(ctx, "no boundaries configured; choropleths skipped")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.RenderWorkers)
	for _, j := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := j.run(); err != nil {
				return fmt.Errorf("render %s: %w", j.name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if len(unmatched) > 0 {
		v.UnmatchedCountries = unmatched
	}
	return nil
}

// youngestValues maps the youngest winners to ages labelled with the athlete.
func youngestValues(rows []types.YoungestWinner) []types.CountryValue {
	out := make([]types.CountryValue, 0, len(rows))
	for _, r := range rows {
		out = append(out, types.CountryValue{
			Country: r.Country,
			Value:   float64(r.Age),
			Label:   r.Athlete + " (" + strconv.Itoa(r.Age) + ", " + r.Game + ")",
		})
	}
	return out
}
