package web

import (
	"net/url"
	"strconv"

	"github.com/shimbeld/bsdl/internal/league"
	"github.com/shimbeld/bsdl/internal/tables"
)

// Params is the page's full view state, round-tripped through the query
// string so every interaction is a plain link.
type Params struct {
	Players tables.ViewState
	Teams   tables.ViewState
	Week    int // 1-based; 0 means follow the calendar
	UpWeek  int // 1-based; 0 means follow the calendar
}

// ParseParams reads the view state out of a request's query values,
// falling back to defaults for anything absent or malformed.
func ParseParams(values url.Values) Params {
	p := Params{
		Players: tables.DefaultState(),
		Teams:   tables.DefaultState(),
	}
	if v := values.Get("psort"); v != "" {
		p.Players.Column = league.CanonicalLabel(v)
	}
	p.Players.Ascending = values.Get("pdir") != "desc"
	if n, err := strconv.Atoi(values.Get("page")); err == nil && n > 0 {
		p.Players.Page = n
	}
	p.Players.Query = values.Get("q")

	if v := values.Get("tsort"); v != "" {
		p.Teams.Column = v
	}
	p.Teams.Ascending = values.Get("tdir") != "desc"
	p.Teams.Query = values.Get("tq")

	if n, err := strconv.Atoi(values.Get("week")); err == nil && n > 0 {
		p.Week = n
	}
	if n, err := strconv.Atoi(values.Get("uweek")); err == nil && n > 0 {
		p.UpWeek = n
	}
	return p
}

// Encode renders the state back into a query string, leaving defaults out
// to keep links short.
func (p Params) Encode() string {
	values := url.Values{}
	def := tables.DefaultState()
	if p.Players.Column != def.Column {
		values.Set("psort", p.Players.Column)
	}
	if !p.Players.Ascending {
		values.Set("pdir", "desc")
	}
	if p.Players.Page > 1 {
		values.Set("page", strconv.Itoa(p.Players.Page))
	}
	if p.Players.Query != "" {
		values.Set("q", p.Players.Query)
	}
	if p.Teams.Column != def.Column {
		values.Set("tsort", p.Teams.Column)
	}
	if !p.Teams.Ascending {
		values.Set("tdir", "desc")
	}
	if p.Teams.Query != "" {
		values.Set("tq", p.Teams.Query)
	}
	if p.Week > 0 {
		values.Set("week", strconv.Itoa(p.Week))
	}
	if p.UpWeek > 0 {
		values.Set("uweek", strconv.Itoa(p.UpWeek))
	}
	if enc := values.Encode(); enc != "" {
		return "/?" + enc
	}
	return "/"
}

func (p Params) withPlayerSort(column string) string {
	p.Players = p.Players.WithSort(column)
	p.Players.Page = 1
	return p.Encode()
}

func (p Params) withPlayerPage(page int) string {
	p.Players = p.Players.WithPage(page)
	return p.Encode()
}

func (p Params) withTeamSort(column string) string {
	p.Teams = p.Teams.WithSort(column)
	return p.Encode()
}

func (p Params) withWeek(week int) string {
	p.Week = week
	return p.Encode()
}

func (p Params) withUpWeek(week int) string {
	p.UpWeek = week
	return p.Encode()
}
