// Package sampledata writes a small deterministic Olympic Games dataset:
// the four source CSV files and a GeoJSON file of country boundaries.
package sampledata

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/pkg/logger"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// FileBoundaries is the boundary file written next to the CSVs.
const FileBoundaries = "countries.geojson"

// Dataset holds the sample tables as header-first records.
type Dataset struct {
	Athletes [][]string
	Hosts    [][]string
	Medals   [][]string
	Results  [][]string
}

// Generate builds the dataset. The output is identical on every call.
func Generate() *Dataset {
	d := &Dataset{
		Athletes: [][]string{{
			repository.ColAthleteURL, repository.ColAthleteFullName, repository.ColGamesParticipations,
			repository.ColFirstGame, repository.ColAthleteYearBirth, repository.ColAthleteMedals, repository.ColBio,
		}},
		Hosts: [][]string{{
			repository.ColGameSlug, repository.ColGameEndDate, repository.ColGameStartDate,
			repository.ColGameLocation, repository.ColGameName, repository.ColGameSeason, repository.ColGameYear,
		}},
		Medals: [][]string{{
			repository.ColDisciplineTitle, repository.ColSlugGame, repository.ColEventTitle, repository.ColEventGender,
			repository.ColMedalType, repository.ColParticipantType, repository.ColParticipantTitle,
			repository.ColAthleteURL, repository.ColAthleteFullName, repository.ColCountryName,
			repository.ColCountryCode, repository.ColCountry3LetterCode,
		}},
		Results: [][]string{{
			repository.ColDisciplineTitle, repository.ColEventTitle, repository.ColSlugGame,
			repository.ColParticipantType, repository.ColMedalType, "rank_position",
			repository.ColCountryName, repository.ColAthleteFullName,
		}},
	}

	for _, g := range games {
		d.Hosts = append(d.Hosts, []string{
			g.slug, g.end, g.start, g.location, g.name, string(g.season), strconv.Itoa(g.year),
		})
	}

	for i, a := range athletes {
		url := athleteURL(a.name)
		played := eligibleGames(a)
		tally := map[model.MedalType]int{}
		for k, g := range played {
			medal := model.MedalTypes[(i+k)%len(model.MedalTypes)]
			tally[medal]++
			c := countries[a.country]
			d.Medals = append(d.Medals, []string{
				a.discipline, g.slug, events[a.discipline], a.gender, string(medal),
				"Athlete", a.country, url, a.name, c.name, c.code, c.code3,
			})
			d.Results = append(d.Results, []string{
				a.discipline, events[a.discipline], g.slug, "Athlete", string(medal),
				strconv.Itoa(rankOf(medal)), a.country, a.name,
			})
		}
		first := ""
		if len(played) > 0 {
			first = played[0].name
		}
		d.Athletes = append(d.Athletes, []string{
			url, a.name, strconv.Itoa(len(played)), first, strconv.Itoa(a.born), medalSummary(tally), a.bio,
		})
	}

	// Team medals carry no athlete and are dropped after the merge.
	d.Medals = append(d.Medals,
		[]string{"Cross-Country Skiing", "lillehammer-1994", "4x10km Relay", "Men", string(model.Gold), "GameTeam", "Norway", "", "", "Norway", "NO", "NOR"},
		[]string{"Swimming", "los-angeles-1984", "4x100m Medley", "Women", string(model.Gold), "GameTeam", "United States of America", "", "", "United States of America", "US", "USA"},
	)
	// A repeated row and a row without a rank.
	d.Results = append(d.Results,
		append([]string(nil), d.Results[1]...),
		[]string{"Athletics", "100m", "paris-2024", "Athlete", "", "", "France", "Luc Petit"},
	)
	return d
}

func eligibleGames(a athlete) []game {
	var out []game
	for _, g := range games {
		age := g.year - a.born
		if g.season != a.season || age < minAge || age > maxAge {
			continue
		}
		out = append(out, g)
		if len(out) == maxGames {
			break
		}
	}
	return out
}

func athleteURL(name string) string {
	return "https://olympics.com/en/athletes/" + strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

func rankOf(m model.MedalType) int {
	for i, t := range model.MedalTypes {
		if t == m {
			return i + 1
		}
	}
	return 0
}

func medalSummary(tally map[model.MedalType]int) string {
	var parts []string
	for _, t := range model.MedalTypes {
		if n := tally[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, string(t)[:1]))
		}
	}
	return strings.Join(parts, " ")
}

// Boundaries returns one rectangle per sample country except Atlantis, which
// is left out so the maps report it as unmatched.
func Boundaries() *geojson.FeatureCollection {
	names := []string{"Canada", "France", "Germany", "Italy", "Japan", "Norway", "United States of America"}
	fc := &geojson.FeatureCollection{}
	for i, name := range names {
		x := float64(i%4) * 30
		y := float64(i/4) * 30
		poly := geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{{
			{x, y}, {x, y + 20}, {x + 20, y + 20}, {x + 20, y}, {x, y},
		}})
		fc.Features = append(fc.Features, &geojson.Feature{
			Geometry:   poly,
			Properties: map[string]interface{}{"ADMIN": name, "name": name},
		})
	}
	return fc
}

// Files lists what Write produced.
type Files struct {
	Dir        string
	Boundaries string
}

// Write stores the dataset under dir in the layout the pipeline reads.
func Write(ctx context.Context, dir string) (Files, error) {
	d := Generate()
	store := repository.NewCSVStore(dir)
	tables := []struct {
		name    string
		records [][]string
	}{
		{repository.FileAthletes, d.Athletes},
		{repository.FileHosts, d.Hosts},
		{repository.FileMedals, d.Medals},
		{repository.FileResults, d.Results},
	}
	for _, t := range tables {
		df := dataframe.LoadRecords(t.records,
			dataframe.DetectTypes(false),
			dataframe.DefaultType(series.String),
		)
		if err := store.Write(ctx, t.name, df); err != nil {
			return Files{}, err
		}
		logger.Get().Debug(ctx, "sample table written", logger.String("table", t.name), logger.Int("rows", len(t.records)-1))
	}

	data, err := json.Marshal(Boundaries())
	if err != nil {
		return Files{}, fmt.Errorf("boundaries: %w", err)
	}
	path := filepath.Join(dir, FileBoundaries)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Files{}, fmt.Errorf("boundaries: %w", err)
	}
	return Files{Dir: dir, Boundaries: path}, nil
}
