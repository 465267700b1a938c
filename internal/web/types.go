package web

import (
	"github.com/shimbeld/bsdl/internal/schedule"
	"github.com/shimbeld/bsdl/internal/tables"
)

// HeaderView is one sortable column header with its click-through state.
type HeaderView struct {
	Label     string
	Href      string
	SortClass string
}

// StandingView is one standings row, formatted for display.
type StandingView struct {
	Pos           int
	Team          string
	NightsPlayed  string
	NightsWon     string
	NightsLost    string
	GamesWon      string
	GamesLost     string
	WinPercentage string
	SkunkW        string
	SkunkL        string
}

// PageView is one pagination button.
type PageView struct {
	Number int
	Href   string
	Active bool
}

// WeekTabView is one week tab, for the schedule and upcoming views.
type WeekTabView struct {
	Number   int
	Href     string
	Selected bool
}

// FixtureView is one schedule row with its venue styling resolved. Time is
// only set for the upcoming view.
type FixtureView struct {
	Home       string
	Away       string
	Venue      string
	VenueClass string
	Time       string
}

// UpcomingView is the upcoming-matches table: one week at a time.
type UpcomingView struct {
	Tabs      []WeekTabView
	BadgeISO  string
	BadgeText string
	Date      string
	Fixtures  []FixtureView
}

// PlayersView is the player stats table with search and pagination.
type PlayersView struct {
	Headers []HeaderView
	Rows    [][]tables.StatCell
	Pages   []PageView
	Query   string
	Empty   bool
	NumCols int
}

// StandingsView is the team standings table.
type StandingsView struct {
	Headers []HeaderView
	Rows    []StandingView
	Error   string
}

// MatchDetailsView is the week-by-week schedule with its tab strip.
type MatchDetailsView struct {
	Tabs     []WeekTabView
	Week     int
	Fixtures []FixtureView
}

// PageData is everything the page template needs for one render.
type PageData struct {
	Badge        schedule.Badge
	Standings    StandingsView
	Players      PlayersView
	MatchDetails MatchDetailsView
	Upcoming     UpcomingView
}
