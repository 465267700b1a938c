package tables

// PageSize is the fixed number of player rows per page.
const PageSize = 15

// ViewState captures everything a table interaction can change: the active
// sort column and direction, the current page, and the search text. It is an
// explicit value threaded through the pure sort/filter/paginate functions
// rather than mutable globals.
type ViewState struct {
	Column    string
	Ascending bool
	Page      int
	Query     string
}

// DefaultState is the state a table first renders with.
func DefaultState() ViewState {
	return ViewState{
		Column:    "Pos",
		Ascending: true,
		Page:      1,
	}
}

// WithSort returns the state after a header click: the same column toggles
// direction, a new column starts ascending.
func (s ViewState) WithSort(column string) ViewState {
	if column == "" {
		return s
	}
	if s.Column == column {
		s.Ascending = !s.Ascending
	} else {
		s.Column = column
		s.Ascending = true
	}
	return s
}

// WithQuery returns the state after a search input change. Any change resets
// to the first page.
func (s ViewState) WithQuery(query string) ViewState {
	if query != s.Query {
		s.Query = query
		s.Page = 1
	}
	return s
}

// WithPage returns the state after a pagination click.
func (s ViewState) WithPage(page int) ViewState {
	if page < 1 {
		page = 1
	}
	s.Page = page
	return s
}
