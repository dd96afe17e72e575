package repository

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/tabular"
)

// columnIndex maps header names to positions.
type columnIndex map[string]int

func indexOf(header []string) columnIndex {
	idx := make(columnIndex, len(header))
	for i, h := range header {
		idx[h] = i
	}
	return idx
}

// cell returns the named cell of row, or "" when the table lacks the column
// or the cell is missing.
func (c columnIndex) cell(row []string, name string) string {
	i, ok := c[name]
	if !ok || row[i] == tabular.NA {
		return ""
	}
	return row[i]
}

// ParseYear reads a whole year written as an integer or as a float such as
// "1998.0".
func ParseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: not a year: %q", ErrDecode, s)
	}
	return int(f), nil
}

func parseCount(s string) int {
	n, err := ParseYear(s)
	if err != nil {
		return 0
	}
	return n
}

func records(df dataframe.DataFrame, table string, required []string) (columnIndex, [][]string, error) {
	if df.Err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrDecode, table, df.Err)
	}
	if err := tabular.RequireColumns(df, table, required...); err != nil {
		return nil, nil, err
	}
	recs := df.Records()
	if len(recs) == 0 {
		return indexOf(df.Names()), nil, nil
	}
	return indexOf(recs[0]), recs[1:], nil
}

// DecodeAthleteMedals converts the cleaned athlete-medal table to records.
func DecodeAthleteMedals(df dataframe.DataFrame) ([]model.AthleteMedal, error) {
	idx, rows, err := records(df, "athlete_medals", AthleteMedalColumns)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: athlete_medals", tabular.ErrEmptyTable)
	}
	out := make([]model.AthleteMedal, 0, len(rows))
	for i, r := range rows {
		born, err := ParseYear(idx.cell(r, ColAthleteYearBirth))
		if err != nil {
			return nil, fmt.Errorf("athlete_medals row %d: %w", i+1, err)
		}
		out = append(out, model.AthleteMedal{
			Medal: model.Medal{
				Discipline:       idx.cell(r, ColDisciplineTitle),
				GameSlug:         idx.cell(r, ColSlugGame),
				Event:            idx.cell(r, ColEventTitle),
				EventGender:      idx.cell(r, ColEventGender),
				Type:             model.MedalType(idx.cell(r, ColMedalType)),
				ParticipantType:  idx.cell(r, ColParticipantType),
				ParticipantTitle: idx.cell(r, ColParticipantTitle),
				AthleteURL:       idx.cell(r, ColAthleteURL),
				AthleteName:      idx.cell(r, ColAthleteFullName),
				CountryName:      idx.cell(r, ColCountryName),
				CountryCode:      idx.cell(r, ColCountryCode),
				Country3Code:     idx.cell(r, ColCountry3LetterCode),
			},
			GamesParticipations: parseCount(idx.cell(r, ColGamesParticipations)),
			FirstGame:           idx.cell(r, ColFirstGame),
			YearBirth:           born,
			AthleteMedals:       idx.cell(r, ColAthleteMedals),
			Bio:                 idx.cell(r, ColBio),
		})
	}
	return out, nil
}

// DecodeHosts converts the host table to records.
func DecodeHosts(df dataframe.DataFrame) ([]model.Host, error) {
	idx, rows, err := records(df, "hosts", HostColumns)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: hosts", tabular.ErrEmptyTable)
	}
	out := make([]model.Host, 0, len(rows))
	for i, r := range rows {
		year, err := ParseYear(idx.cell(r, ColGameYear))
		if err != nil {
			return nil, fmt.Errorf("hosts row %d: %w", i+1, err)
		}
		out = append(out, model.Host{
			Slug:      idx.cell(r, ColGameSlug),
			EndDate:   idx.cell(r, ColGameEndDate),
			StartDate: idx.cell(r, ColGameStartDate),
			Location:  idx.cell(r, ColGameLocation),
			Name:      idx.cell(r, ColGameName),
			Season:    model.Season(idx.cell(r, ColGameSeason)),
			Year:      year,
		})
	}
	return out, nil
}
