// Package types contains the view result types shared by the chart, report
// and HTTP layers.
package types

// DisciplineLeader is the top country of one discipline by gold medals.
type DisciplineLeader struct {
	Discipline string `json:"discipline"`
	Country    string `json:"country"`
	Golds      int    `json:"golds"`
	// DisciplineGolds counts every gold awarded in the discipline.
	DisciplineGolds int `json:"discipline_golds"`
}

// CountryMedals holds per-type medal counts of one country.
type CountryMedals struct {
	Country string `json:"country"`
	Gold    int    `json:"gold"`
	Silver  int    `json:"silver"`
	Bronze  int    `json:"bronze"`
}

// Total returns the stacked medal count.
func (c CountryMedals) Total() int { return c.Gold + c.Silver + c.Bronze }

// CountryValue is a numeric value keyed by country name.
type CountryValue struct {
	Country string  `json:"country"`
	Value   float64 `json:"value"`
	// Label is an optional tooltip text.
	Label string `json:"label,omitempty"`
}

// AthleteCount is the number of medals of one athlete.
type AthleteCount struct {
	Athlete string `json:"athlete"`
	Count   int    `json:"count"`
}

// YearCount is a count observed for one year.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// Curve is a sampled smooth curve.
type Curve struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// BirthYearParticipation is the count of medal rows per birth year and its
// smoothed curve.
type BirthYearParticipation struct {
	Points []YearCount `json:"points"`
	Smooth Curve       `json:"smooth"`
}

// Series is a named sequence of year counts.
type Series struct {
	Name   string      `json:"name"`
	Points []YearCount `json:"points"`
}

// YoungestWinner is the youngest gold medallist of one country.
type YoungestWinner struct {
	Country string `json:"country"`
	Athlete string `json:"athlete"`
	Age     int    `json:"age"`
	Game    string `json:"game"`
}

// Views bundles every aggregate view of one run.
type Views struct {
	TopGoldByDiscipline      []DisciplineLeader     `json:"top_gold_by_discipline"`
	WomenMedalsByCountry     []CountryMedals        `json:"women_medals_by_country"`
	GoldByCountry            []CountryValue         `json:"gold_by_country"`
	TopLocalAthletes         []AthleteCount         `json:"top_local_athletes"`
	ParticipationByBirthYear BirthYearParticipation `json:"participation_by_birth_year"`
	ParticipationByGender    []Series               `json:"participation_by_gender"`
	NationsBySeason          []Series               `json:"nations_by_season"`
	YoungestWinterGold       []YoungestWinner       `json:"youngest_winter_gold"`
	UnmatchedCountries       map[string][]string    `json:"unmatched_countries,omitempty"`
}

// View names used for files, metrics and routes.
const (
	ViewTopGoldByDiscipline      = "top_gold_by_discipline"
	ViewWomenMedalsByCountry     = "women_medals_by_country"
	ViewGoldByCountry            = "gold_by_country"
	ViewTopLocalAthletes         = "top_local_athletes"
	ViewParticipationByBirthYear = "participation_by_birth_year"
	ViewParticipationByGender    = "participation_by_gender"
	ViewNationsBySeason          = "nations_by_season"
	ViewYoungestWinterGold       = "youngest_winter_gold"
)

// ViewNames lists every view in pipeline order.
var ViewNames = []string{
	ViewTopGoldByDiscipline,
	ViewWomenMedalsByCountry,
	ViewGoldByCountry,
	ViewTopLocalAthletes,
	ViewParticipationByBirthYear,
	ViewParticipationByGender,
	ViewNationsBySeason,
	ViewYoungestWinterGold,
}

// ViewNamed returns the result of one view by name.
func (v *Views) ViewNamed(name string) (any, bool) {
	switch name {
	case ViewTopGoldByDiscipline:
		return v.TopGoldByDiscipline, true
	case ViewWomenMedalsByCountry:
		return v.WomenMedalsByCountry, true
	case ViewGoldByCountry:
		return v.GoldByCountry, true
	case ViewTopLocalAthletes:
		return v.TopLocalAthletes, true
	case ViewParticipationByBirthYear:
		return v.ParticipationByBirthYear, true
	case ViewParticipationByGender:
		return v.ParticipationByGender, true
	case ViewNationsBySeason:
		return v.NationsBySeason, true
	case ViewYoungestWinterGold:
		return v.YoungestWinterGold, true
	}
	return nil, false
}
