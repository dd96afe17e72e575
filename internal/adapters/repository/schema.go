package repository

// Source and export file names.
const (
	FileAthletes      = "olympic_athletes.csv"
	FileHosts         = "olympic_hosts.csv"
	FileMedals        = "olympic_medals.csv"
	FileResults       = "olympic_results.csv"
	FileAthleteMedals = "olympic_athletes_medals.csv"
)

// Column names shared by several tables.
const (
	ColAthleteURL      = "athlete_url"
	ColAthleteFullName = "athlete_full_name"
	ColSlugGame        = "slug_game"
	ColCountryName     = "country_name"
)

// Medal table columns.
const (
	ColDisciplineTitle    = "discipline_title"
	ColEventTitle         = "event_title"
	ColEventGender        = "event_gender"
	ColMedalType          = "medal_type"
	ColParticipantType    = "participant_type"
	ColParticipantTitle   = "participant_title"
	ColCountryCode        = "country_code"
	ColCountry3LetterCode = "country_3_letter_code"
)

// Athlete table columns.
const (
	ColGamesParticipations = "games_participations"
	ColFirstGame           = "first_game"
	ColAthleteYearBirth    = "athlete_year_birth"
	ColAthleteMedals       = "athlete_medals"
	ColBio                 = "bio"
)

// Host table columns.
const (
	ColGameSlug      = "game_slug"
	ColGameEndDate   = "game_end_date"
	ColGameStartDate = "game_start_date"
	ColGameLocation  = "game_location"
	ColGameName      = "game_name"
	ColGameSeason    = "game_season"
	ColGameYear      = "game_year"
)

// Required columns per table. Extra columns are carried through untouched.
var (
	MedalColumns = []string{
		ColDisciplineTitle, ColSlugGame, ColEventTitle, ColEventGender, ColMedalType,
		ColParticipantType, ColAthleteURL, ColAthleteFullName, ColCountryName,
	}
	AthleteColumns = []string{ColAthleteURL, ColAthleteFullName, ColAthleteYearBirth}
	HostColumns    = []string{ColGameSlug, ColGameLocation, ColGameSeason, ColGameYear}
	ResultColumns  = []string{ColDisciplineTitle, ColEventTitle, ColSlugGame}

	// AthleteMedalColumns are the columns the chart stage decodes.
	AthleteMedalColumns = []string{
		ColDisciplineTitle, ColSlugGame, ColEventGender, ColMedalType,
		ColAthleteFullName, ColCountryName, ColAthleteYearBirth,
	}
)
