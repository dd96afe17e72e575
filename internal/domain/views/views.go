// Package views computes the aggregate views charted by the pipeline. Every
// view is a pure function of the typed records it is given.
package views

import (
	"context"
	"fmt"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

// Local-athlete join modes.
const (
	// JoinSlug matches a medal to the edition it was won at.
	JoinSlug = "slug"
	// JoinLocation matches a medal to every edition hosted by the athlete's
	// country, repeating it once per edition.
	JoinLocation = "location"
)

// Options tunes the view limits.
type Options struct {
	TopDisciplines    int
	TopWomenCountries int
	TopLocalAthletes  int
	SplineSamples     int
	LocalJoin         string
}

// DefaultOptions returns the default view limits.
func DefaultOptions() Options {
	return Options{
		TopDisciplines:    5,
		TopWomenCountries: 15,
		TopLocalAthletes:  10,
		SplineSamples:     500,
		LocalJoin:         JoinSlug,
	}
}

// Compute runs every view in order and stops at the first failure.
func Compute(ctx context.Context, medals []model.AthleteMedal, hosts []model.Host, opts Options) (*types.Views, error) {
	var (
		v   types.Views
		err error
	)
	steps := []struct {
		name string
		run  func() error
	}{
		{types.ViewTopGoldByDiscipline, func() error {
			v.TopGoldByDiscipline, err = TopGoldByDiscipline(medals, opts.TopDisciplines)
			return err
		}},
		{types.ViewWomenMedalsByCountry, func() error {
			v.WomenMedalsByCountry, err = WomenMedalsByCountry(medals, opts.TopWomenCountries)
			return err
		}},
		{types.ViewGoldByCountry, func() error {
			v.GoldByCountry, err = GoldByCountry(medals)
			return err
		}},
		{types.ViewTopLocalAthletes, func() error {
			v.TopLocalAthletes, err = TopLocalAthletes(medals, hosts, opts.TopLocalAthletes, opts.LocalJoin)
			return err
		}},
		{types.ViewParticipationByBirthYear, func() error {
			v.ParticipationByBirthYear, err = ParticipationByBirthYear(medals, opts.SplineSamples)
			return err
		}},
		{types.ViewParticipationByGender, func() error {
			v.ParticipationByGender, err = ParticipationByGender(medals)
			return err
		}},
		{types.ViewNationsBySeason, func() error {
			v.NationsBySeason, err = NationsBySeason(medals, hosts)
			return err
		}},
		{types.ViewYoungestWinterGold, func() error {
			v.YoungestWinterGold, err = YoungestWinterGold(medals, hosts)
			return err
		}},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.run(); err != nil {
			return nil, fmt.Errorf("view %s: %w", s.name, err)
		}
	}
	return &v, nil
}
