package report

import (
	"fmt"
	"path/filepath"

	"github.com/okian/podium/internal/domain/types"
	"github.com/xuri/excelize/v2"
)

// UnmatchedSheet lists countries that found no boundary on a map.
const UnmatchedSheet = "unmatched_countries"

type sheet struct {
	name   string
	header []interface{}
	rows   [][]interface{}
}

func sheets(v *types.Views) []sheet {
	var out []sheet

	s := sheet{name: types.ViewTopGoldByDiscipline, header: []interface{}{"discipline", "country", "golds", "discipline_golds"}}
	for _, r := range v.TopGoldByDiscipline {
		s.rows = append(s.rows, []interface{}{r.Discipline, r.Country, r.Golds, r.DisciplineGolds})
	}
	out = append(out, s)

	s = sheet{name: types.ViewWomenMedalsByCountry, header: []interface{}{"country", "gold", "silver", "bronze", "total"}}
	for _, r := range v.WomenMedalsByCountry {
		s.rows = append(s.rows, []interface{}{r.Country, r.Gold, r.Silver, r.Bronze, r.Total()})
	}
	out = append(out, s)

	s = sheet{name: types.ViewGoldByCountry, header: []interface{}{"country", "golds"}}
	for _, r := range v.GoldByCountry {
		s.rows = append(s.rows, []interface{}{r.Country, r.Value})
	}
	out = append(out, s)

	s = sheet{name: types.ViewTopLocalAthletes, header: []interface{}{"athlete", "medals"}}
	for _, r := range v.TopLocalAthletes {
		s.rows = append(s.rows, []interface{}{r.Athlete, r.Count})
	}
	out = append(out, s)

	s = sheet{name: types.ViewParticipationByBirthYear, header: []interface{}{"birth_year", "count", "", "smooth_x", "smooth_y"}}
	pts, sm := v.ParticipationByBirthYear.Points, v.ParticipationByBirthYear.Smooth
	for i := 0; i < len(pts) || i < len(sm.X); i++ {
		row := []interface{}{nil, nil, nil, nil, nil}
		if i < len(pts) {
			row[0], row[1] = pts[i].Year, pts[i].Count
		}
		if i < len(sm.X) {
			row[3], row[4] = sm.X[i], sm.Y[i]
		}
		s.rows = append(s.rows, row)
	}
	out = append(out, s)

	out = append(out, seriesSheet(types.ViewParticipationByGender, "event_gender", "birth_year", v.ParticipationByGender))
	out = append(out, seriesSheet(types.ViewNationsBySeason, "game_season", "game_year", v.NationsBySeason))

	s = sheet{name: types.ViewYoungestWinterGold, header: []interface{}{"country", "athlete", "age", "game"}}
	for _, r := range v.YoungestWinterGold {
		s.rows = append(s.rows, []interface{}{r.Country, r.Athlete, r.Age, r.Game})
	}
	out = append(out, s)

	if len(v.UnmatchedCountries) > 0 {
		s = sheet{name: UnmatchedSheet, header: []interface{}{"view", "country"}}
		for _, name := range types.ViewNames {
			for _, c := range v.UnmatchedCountries[name] {
				s.rows = append(s.rows, []interface{}{name, c})
			}
		}
		out = append(out, s)
	}
	return out
}

func seriesSheet(name, seriesCol, yearCol string, series []types.Series) sheet {
	s := sheet{name: name, header: []interface{}{seriesCol, yearCol, "count"}}
	for _, ser := range series {
		for _, p := range ser.Points {
			s.rows = append(s.rows, []interface{}{ser.Name, p.Year, p.Count})
		}
	}
	return s
}

// WriteWorkbook writes every view to views.xlsx, one sheet per view.
func (w *Writer) WriteWorkbook(v *types.Views) (string, error) {
	if err := w.ensureDir(); err != nil {
		return "", err
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, s := range sheets(v) {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return "", fmt.Errorf("%w: sheet %s: %w", ErrWriteReport, s.name, err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return "", fmt.Errorf("%w: sheet %s: %w", ErrWriteReport, s.name, err)
		}
		if err := writeSheet(f, s); err != nil {
			return "", err
		}
	}

	path := filepath.Join(w.dir, FileViewsWorkbook)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrWriteReport, path, err)
	}
	return path, nil
}

func writeSheet(f *excelize.File, s sheet) error {
	for i, row := range append([][]interface{}{s.header}, s.rows...) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrWriteReport, s.name, err)
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return fmt.Errorf("%w: %s row %d: %w", ErrWriteReport, s.name, i+1, err)
		}
	}
	last, _ := excelize.ColumnNumberToName(len(s.header))
	if err := f.SetColWidth(s.name, "A", last, 18); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteReport, s.name, err)
	}
	return nil
}
