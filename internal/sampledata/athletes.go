package sampledata

import "github.com/okian/podium/internal/domain/model"

type game struct {
	slug     string
	name     string
	location string
	season   model.Season
	year     int
	start    string
	end      string
}

var games = []game{
	{"berlin-1936", "Berlin 1936", "Germany", model.Summer, 1936, "1936-08-01", "1936-08-16"},
	{"oslo-1952", "Oslo 1952", "Norway", model.Winter, 1952, "1952-02-14", "1952-02-25"},
	{"los-angeles-1984", "Los Angeles 1984", "United States of America", model.Summer, 1984, "1984-07-28", "1984-08-12"},
	{"lillehammer-1994", "Lillehammer 1994", "Norway", model.Winter, 1994, "1994-02-12", "1994-02-27"},
	{"nagano-1998", "Nagano 1998", "Japan", model.Winter, 1998, "1998-02-07", "1998-02-22"},
	{"turin-2006", "Turin 2006", "Italy", model.Winter, 2006, "2006-02-10", "2006-02-26"},
	{"vancouver-2010", "Vancouver 2010", "Canada", model.Winter, 2010, "2010-02-12", "2010-02-28"},
	{"paris-2024", "Paris 2024", "France", model.Summer, 2024, "2024-07-26", "2024-08-11"},
}

type country struct {
	name  string
	code  string
	code3 string
}

var countries = map[string]country{
	"Norway":                   {"Norway", "NO", "NOR"},
	"Japan":                    {"Japan", "JP", "JPN"},
	"Germany":                  {"Germany", "DE", "GER"},
	"United States of America": {"United States of America", "US", "USA"},
	"France":                   {"France", "FR", "FRA"},
	"Italy":                    {"Italy", "IT", "ITA"},
	"Canada":                   {"Canada", "CA", "CAN"},
	"Atlantis":                 {"Atlantis", "AX", "ATL"},
}

type athlete struct {
	name       string
	country    string
	gender     string
	born       int
	season     model.Season
	discipline string
	bio        string
}

// Each athlete medals at the editions of their season held while they were
// between minAge and maxAge, at most maxGames of them.
var athletes = []athlete{
	{"Ole Nordvik", "Norway", "Men", 1974, model.Winter, "Cross-Country Skiing", "Distance skier from Trondheim."},
	{"Kari Solberg", "Norway", "Women", 1976, model.Winter, "Cross-Country Skiing", "Sprint and relay specialist."},
	{"Hjalmar Berg", "Norway", "Men", 1928, model.Winter, "Alpine Skiing", "Won at home in Oslo."},
	{"Marit Lunde", "Norway", "Women", 1990, model.Winter, "Alpine Skiing", "Youngest of a skiing family."},
	{"Yuki Tanaka", "Japan", "Women", 1980, model.Winter, "Alpine Skiing", "Raced in Nagano as a teenager."},
	{"Kenji Mori", "Japan", "Men", 1960, model.Summer, "Judo", "Lightweight champion."},
	{"Ayumi Sato", "Japan", "Women", 2002, model.Summer, "Judo", "Half-middleweight."},
	{"Carl Weber", "Germany", "Men", 1912, model.Summer, "Athletics", "Sprinter from Hamburg."},
	{"Greta Vogel", "Germany", "Women", 1915, model.Summer, "Swimming", "Breaststroke pioneer."},
	{"Lena Krause", "Germany", "Women", 1988, model.Winter, "Cross-Country Skiing", "Relay anchor."},
	{"Mary Johnson", "United States of America", "Women", 1962, model.Summer, "Athletics", "Hurdler."},
	{"James Carter", "United States of America", "Men", 1964, model.Summer, "Swimming", "Freestyle swimmer."},
	{"Ava Brooks", "United States of America", "Women", 2000, model.Summer, "Swimming", "Butterfly specialist."},
	{"Tom Baker", "United States of America", "Men", 1978, model.Winter, "Alpine Skiing", "Downhill racer."},
	{"Claire Martin", "France", "Women", 1998, model.Summer, "Cycling", "Road cyclist."},
	{"Louis Bernard", "France", "Men", 1966, model.Summer, "Cycling", "Track cyclist."},
	{"Giulia Rossi", "Italy", "Women", 1984, model.Winter, "Alpine Skiing", "Slalom skier."},
	{"Marco Bianchi", "Italy", "Men", 1970, model.Winter, "Cross-Country Skiing", "Classic technique."},
	{"Emily Tremblay", "Canada", "Women", 1991, model.Winter, "Alpine Skiing", "Super-G skier."},
	{"Liam Roy", "Canada", "Men", 1986, model.Winter, "Cross-Country Skiing", "Skiathlon."},
	// No bio: every medal of this athlete is dropped by the cleaner.
	{"Sven Aas", "Norway", "Men", 1970, model.Winter, "Cross-Country Skiing", ""},
	{"Nani Kai", "Atlantis", "Men", 1990, model.Summer, "Athletics", "Javelin thrower."},
}

const (
	minAge   = 16
	maxAge   = 38
	maxGames = 3
)

var events = map[string]string{
	"Athletics":            "100m",
	"Swimming":             "200m Freestyle",
	"Cross-Country Skiing": "15km Classic",
	"Alpine Skiing":        "Downhill",
	"Judo":                 "-63kg",
	"Cycling":              "Road Race",
}
