// Package model contains the typed Olympic records passed between layers.
package model

import (
	"regexp"
	"strconv"
)

// MedalType is the medal awarded for a podium finish.
type MedalType string

// Medal types as they appear in the medals table.
const (
	Gold   MedalType = "GOLD"
	Silver MedalType = "SILVER"
	Bronze MedalType = "BRONZE"
)

// MedalTypes lists medal types in stacking order.
var MedalTypes = []MedalType{Gold, Silver, Bronze}

// Season of an Olympic edition.
type Season string

// Known seasons.
const (
	Summer Season = "Summer"
	Winter Season = "Winter"
)

// Host is one Olympic edition from olympic_hosts.csv.
type Host struct {
	Slug      string
	EndDate   string
	StartDate string
	Location  string
	Name      string
	Season    Season
	Year      int
}

// Medal is one awarded medal from olympic_medals.csv.
type Medal struct {
	Discipline       string
	GameSlug         string
	Event            string
	EventGender      string
	Type             MedalType
	ParticipantType  string
	ParticipantTitle string
	AthleteURL       string
	AthleteName      string
	CountryName      string
	CountryCode      string
	Country3Code     string
}

// AthleteMedal is a medal row enriched with the winning athlete's fields.
type AthleteMedal struct {
	Medal
	GamesParticipations int
	FirstGame           string
	YearBirth           int
	AthleteMedals       string
	Bio                 string
}

var slugYear = regexp.MustCompile(`-(\d{4})`)

// SlugYear extracts the four digit edition year from a game slug such as
// "beijing-2022". It reports false when the slug carries no year.
func SlugYear(slug string) (int, bool) {
	m := slugYear.FindStringSubmatch(slug)
	if m == nil {
		return 0, false
	}
	y, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return y, true
}
