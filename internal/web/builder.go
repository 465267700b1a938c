package web

import (
	"github.com/shimbeld/bsdl/internal/league"
	"github.com/shimbeld/bsdl/internal/schedule"
	"github.com/shimbeld/bsdl/internal/standings"
	"github.com/shimbeld/bsdl/internal/tables"
)

// StandingsLoadError is shown inline when the upstream sheet cannot be
// reached. Player load failures only log; the table renders empty.
const StandingsLoadError = "Could not load standings. Please refresh."

func sortClass(state tables.ViewState, column string) string {
	if state.Column != column {
		return ""
	}
	if state.Ascending {
		return "sort-asc"
	}
	return "sort-desc"
}

func buildPlayersView(rows []league.StatsRow, p Params) PlayersView {
	filtered := tables.FilterStats(rows, p.Players.Query)
	p.Players.Page = tables.ClampPage(p.Players.Page, len(filtered))
	sorted := tables.SortStats(filtered, p.Players)
	pageRows, totalPages := tables.Paginate(sorted, p.Players.Page)

	view := PlayersView{
		Query:   p.Players.Query,
		NumCols: league.NumColumns,
		Empty:   len(pageRows) == 0,
	}
	for _, col := range league.Columns {
		view.Headers = append(view.Headers, HeaderView{
			Label:     col.Label,
			Href:      p.withPlayerSort(col.Label),
			SortClass: sortClass(p.Players, col.Label),
		})
	}
	for _, row := range pageRows {
		view.Rows = append(view.Rows, tables.FormatStatRow(row))
	}
	for i := 1; i <= totalPages; i++ {
		view.Pages = append(view.Pages, PageView{
			Number: i,
			Href:   p.withPlayerPage(i),
			Active: i == p.Players.Page,
		})
	}
	return view
}

func buildStandingsView(rows []standings.TeamStanding, loadErr error, p Params) StandingsView {
	view := StandingsView{}
	for _, f := range standings.DisplayFields {
		view.Headers = append(view.Headers, HeaderView{
			Label:     string(f),
			Href:      p.withTeamSort(string(f)),
			SortClass: sortClass(p.Teams, string(f)),
		})
	}
	if loadErr != nil {
		view.Error = StandingsLoadError
		return view
	}
	// Sort and renumber the full table first so filtered rows keep the
	// positions they hold in the whole ordering.
	filtered := tables.FilterStandings(tables.SortStandings(rows, p.Teams), p.Teams.Query)
	for _, t := range filtered {
		view.Rows = append(view.Rows, StandingView{
			Pos:           t.Pos,
			Team:          t.Team,
			NightsPlayed:  t.NightsPlayed.String(),
			NightsWon:     t.NightsWon.String(),
			NightsLost:    t.NightsLost.String(),
			GamesWon:      t.GamesWon.String(),
			GamesLost:     t.GamesLost.String(),
			WinPercentage: tables.FormatWinPercentage(t.WinPercentage),
			SkunkW:        t.SkunkW.String(),
			SkunkL:        t.SkunkL.String(),
		})
	}
	return view
}

func buildFixtureViews(fixtures []schedule.Fixture) []FixtureView {
	views := make([]FixtureView, 0, len(fixtures))
	for _, f := range fixtures {
		views = append(views, FixtureView{
			Home:       f.Home,
			Away:       f.Away,
			Venue:      f.Venue,
			VenueClass: schedule.VenueClass(f.Venue, f.Class),
		})
	}
	return views
}

func buildMatchDetailsView(today string, p Params) MatchDetailsView {
	week := p.Week
	if week == 0 {
		week = schedule.CurrentWeek(today)
	}
	view := MatchDetailsView{Week: week}
	for i := 1; i <= len(schedule.SeasonDates); i++ {
		view.Tabs = append(view.Tabs, WeekTabView{
			Number:   i,
			Href:     p.withWeek(i),
			Selected: i == week,
		})
	}
	view.Fixtures = buildFixtureViews(schedule.WeekFixtures(week))
	return view
}

func buildUpcomingView(today string, p Params) UpcomingView {
	weekNum := p.UpWeek
	var week schedule.Week
	if weekNum == 0 {
		weekNum, week = schedule.UpcomingWeek(today)
	} else {
		if weekNum > len(schedule.UpcomingDates) {
			weekNum = len(schedule.UpcomingDates)
		}
		fixtures := schedule.WeekFixtures(weekNum)
		for i := range fixtures {
			if fixtures[i].Time == "" {
				fixtures[i].Time = schedule.DefaultThrowTime
			}
		}
		week = schedule.Week{Date: schedule.UpcomingDates[weekNum-1], Fixtures: fixtures}
	}

	view := UpcomingView{
		BadgeISO:  week.Date,
		BadgeText: schedule.FormatDate(week.Date),
		Date:      schedule.FormatDate(week.Date),
	}
	for i := 1; i <= len(schedule.UpcomingDates); i++ {
		view.Tabs = append(view.Tabs, WeekTabView{
			Number:   i,
			Href:     p.withUpWeek(i),
			Selected: i == weekNum,
		})
	}
	for _, f := range week.Fixtures {
		view.Fixtures = append(view.Fixtures, FixtureView{
			Home:       f.Home,
			Away:       f.Away,
			Venue:      f.Venue,
			VenueClass: schedule.VenueClass(f.Venue, f.Class),
			Time:       f.Time,
		})
	}
	return view
}

// BuildPage assembles the full page model from the loaded data and the
// request's view state.
func BuildPage(players []league.StatsRow, teamRows []standings.TeamStanding, standingsErr error, p Params, today string) PageData {
	data := PageData{
		Badge:        schedule.BadgeFor(today),
		Standings:    buildStandingsView(teamRows, standingsErr, p),
		Players:      buildPlayersView(players, p),
		MatchDetails: buildMatchDetailsView(today, p),
		Upcoming:     buildUpcomingView(today, p),
	}
	return data
}
