package schedule

// 25/26 season calendar. Round one runs Sep 9 through Nov 25 with Nov 11
// off; round two picks up Dec 2.
var round1Fall25 = []string{
	"2025-09-09", "2025-09-16", "2025-09-23", "2025-09-30",
	"2025-10-07", "2025-10-14", "2025-10-21", "2025-10-28",
	"2025-11-04", "2025-11-18", "2025-11-25",
}

var round2Winter26 = []string{
	"2025-12-02", "2025-12-09",
	"2026-01-06", "2026-01-13", "2026-01-20", "2026-01-27",
	"2026-02-03", "2026-02-10", "2026-02-17", "2026-02-24",
	"2026-03-03",
}

// SeasonDates is the full 25/26 calendar, in order.
var SeasonDates = append(append([]string{}, round1Fall25...), round2Winter26...)

// UpcomingDates is the window the upcoming-matches view covers: the fall
// round plus the first winter week.
var UpcomingDates = append(append([]string{}, round1Fall25...), "2025-12-02")

// homeVenues is the default pub for each team, applied when a fixture has
// no explicit venue.
var homeVenues = map[string]string{
	"Kilkenny":        "Owls Unit #306",
	"Highwaymen":      "Owls Unit #306",
	"Wombles":         "Owls Unit #306",
	"Clamour":         "Owls Unit #306",
	"Shooters":        "R.C.L.B 266 / 46",
	"Torpedoes":       "Owls Unit #306",
	"Who Darted":      "Owls Unit #306",
	"Taz's Devils":    "Coronation 259",
	"Bullshooters":    "AC Ranch Café",
	"Redeeming Ronin": "Japas",
	"Dart Attack":     "Owls Unit #306",
	"Darty McFly":     "Owls Unit #306",
}

// withVenues fills in each fixture's home venue where none was posted.
func withVenues(fixtures []Fixture) []Fixture {
	out := make([]Fixture, len(fixtures))
	for i, f := range fixtures {
		if f.Venue == "" {
			f.Venue = homeVenues[f.Home]
		}
		out[i] = f
	}
	return out
}

// weekFixtures holds the posted matchups, week 1 through 12. Weeks without
// posted fixtures yet render as empty.
var weekFixtures = [][]Fixture{
	{
		{Home: "Highwaymen", Away: "Kilkenny", Venue: "R.C.L.B 266 / 46"},
		{Home: "Clamour", Away: "Darty McFly", Venue: "Coronation 259"},
		{Home: "Bullshooters", Away: "Who Darted", Venue: "Japas"},
		{Home: "Wombles", Away: "Shooters", Venue: "Owls Unit #306"},
		{Home: "Torpedoes", Away: "Taz's Devils", Venue: "R.C.L.B 266 / 46"},
		{Home: "Redeeming Ronin", Away: "Dart Attack", Venue: "Owls Unit #306"},
	},
	{
		{Home: "Darty McFly", Away: "Highwaymen", Venue: "Owls Unit #306"},
		{Home: "Clamour", Away: "Who Darted", Venue: "Owls Unit #306"},
		{Home: "Bullshooters", Away: "Shooters", Venue: "AC Ranch Café"},
		{Home: "Wombles", Away: "Torpedoes", Venue: "Owls Unit #306"},
		{Home: "Taz's Devils", Away: "Dart Attack", Venue: "Coronation 259"},
		{Home: "Kilkenny", Away: "Redeeming Ronin", Venue: "R.C.L.B 266 / 46"},
	},
	{
		{Home: "Kilkenny", Away: "Darty McFly", Venue: "R.C.L.B 266 / 46"},
		{Home: "Taz's Devils", Away: "Redeeming Ronin", Venue: "Coronation 259"},
		{Home: "Dart Attack", Away: "Wombles", Venue: "Owls Unit #306"},
		{Home: "Clamour", Away: "Shooters", Venue: "Owls Unit #306"},
		{Home: "Who Darted", Away: "Highwaymen", Venue: "Owls Unit #306"},
		{Home: "Torpedoes", Away: "Bullshooters", Venue: "Owls Unit #306"},
	},
	{
		{Home: "Clamour", Away: "Torpedoes", Venue: "Owls Unit #306"},
		{Home: "Dart Attack", Away: "Bullshooters", Venue: "Owls Unit #306"},
		{Home: "Darty McFly", Away: "Who Darted", Venue: "Owls Unit #306"},
		{Home: "Taz's Devils", Away: "Kilkenny", Venue: "Coronation 259"},
		{Home: "Wombles", Away: "Redeeming Ronin", Venue: "Owls Unit #306"},
		{Home: "Shooters", Away: "Highwaymen", Venue: "R.C.L.B 266 / 46"},
	},
	{
		{Home: "Torpedoes", Away: "Highwaymen", Venue: "Owls Unit #306"},
		{Home: "Shooters", Away: "Darty McFly", Venue: "R.C.L.B 266 / 46"},
		{Home: "Taz's Devils", Away: "Wombles", Venue: "Coronation 259"},
		{Home: "Clamour", Away: "Dart Attack", Venue: "Owls Unit #306"},
		{Home: "Who Darted", Away: "Kilkenny", Venue: "Owls Unit #306"},
		{Home: "Redeeming Ronin", Away: "Bullshooters", Venue: "Japas"},
	},
	{
		{Home: "Redeeming Ronin", Away: "Clamour", Venue: "Japas"},
		{Home: "Bullshooters", Away: "Taz's Devils", Venue: "AC Ranch Café"},
		{Home: "Wombles", Away: "Kilkenny", Venue: "Owls Unit #306"},
		{Home: "Shooters", Away: "Who Darted", Venue: "R.C.L.B 266 / 46"},
		{Home: "Highwaymen", Away: "Dart Attack", Venue: "Owls Unit #306"},
		{Home: "Darty McFly", Away: "Torpedoes", Venue: "Owls Unit #306"},
	},
	{
		{Home: "Kilkenny", Away: "Shooters", Venue: "R.C.L.B 266 / 46"},
		{Home: "Who Darted", Away: "Torpedoes", Venue: "Owls Unit #306"},
		{Home: "Clamour", Away: "Taz's Devils", Venue: "Owls Unit #306"},
		{Home: "Redeeming Ronin", Away: "Highwaymen", Venue: "Japas"},
		{Home: "Darty McFly", Away: "Dart Attack", Venue: "Owls Unit #306"},
		{Home: "Bullshooters", Away: "Wombles", Venue: "AC Ranch Café"},
	},
	{
		{Home: "Darty McFly", Away: "Redeeming Ronin", Venue: "Owls Unit #306"},
		{Home: "Shooters", Away: "Torpedoes", Venue: "R.C.L.B 266 / 46"},
		{Home: "Highwaymen", Away: "Taz's Devils", Venue: "Owls Unit #306"},
		{Home: "Dart Attack", Away: "Who Darted", Venue: "Owls Unit #306"},
		{Home: "Bullshooters", Away: "Kilkenny", Venue: "AC Ranch Café"},
		{Home: "Wombles", Away: "Clamour", Venue: "Owls Unit #306"},
	},
	{
		{Home: "Dart Attack", Away: "Shooters", Venue: "Owls Unit #306"},
		{Home: "Kilkenny", Away: "Torpedoes", Venue: "R.C.L.B 266 / 46"},
		{Home: "Who Darted", Away: "Redeeming Ronin", Venue: "Owls Unit #306"},
		{Home: "Highwaymen", Away: "Wombles", Venue: "Owls Unit #306"},
		{Home: "Bullshooters", Away: "Clamour", Venue: "AC Ranch Café"},
		{Home: "Darty McFly", Away: "Taz's Devils", Venue: "Owls Unit #306"},
	},
	{
		{Home: "Dart Attack", Away: "Torpedoes", Venue: "Owls Unit #306"},
		{Home: "Clamour", Away: "Kilkenny", Venue: "Owls Unit #306"},
		{Home: "Who Darted", Away: "Taz's Devils", Venue: "Owls Unit #306"},
		{Home: "Shooters", Away: "Redeeming Ronin", Venue: "R.C.L.B 266 / 46"},
		{Home: "Darty McFly", Away: "Wombles", Venue: "Owls Unit #306"},
		{Home: "Bullshooters", Away: "Highwaymen", Venue: "AC Ranch Café"},
	},
	{
		{Home: "Wombles", Away: "Who Darted", Venue: "Owls Unit #306"},
		{Home: "Kilkenny", Away: "Dart Attack", Venue: "R.C.L.B 266 / 46"},
		{Home: "Redeeming Ronin", Away: "Torpedoes", Venue: "Japas"},
		{Home: "Darty McFly", Away: "Bullshooters", Venue: "Owls Unit #306"},
		{Home: "Clamour", Away: "Highwaymen", Venue: "Owls Unit #306"},
		{Home: "Taz's Devils", Away: "Shooters", Venue: "Coronation 259"},
	},
	{
		{Home: "Highwaymen", Away: "Kilkenny", Venue: "Owls Unit #306"},
		{Home: "Darty McFly", Away: "Clamour", Venue: "Owls Unit #306"},
		{Home: "Who Darted", Away: "Bullshooters", Venue: "Owls Unit #306"},
		{Home: "Shooters", Away: "Wombles", Venue: "R.C.L.B 266 / 46"},
		{Home: "Taz's Devils", Away: "Torpedoes", Venue: "Coronation 259"},
		{Home: "Dart Attack", Away: "Redeeming Ronin", Venue: "Owls Unit #306"},
	},
}

// WeekFixtures returns the fixtures for a 1-based week number, with home
// venues filled in. Unknown weeks return nil.
func WeekFixtures(week int) []Fixture {
	if week < 1 || week > len(weekFixtures) {
		return nil
	}
	return withVenues(weekFixtures[week-1])
}

// NumWeeks is the number of weeks with posted matchups.
func NumWeeks() int { return len(weekFixtures) }
