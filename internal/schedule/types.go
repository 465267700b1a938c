package schedule

// Fixture is one match in a week: home and away teams plus where it is
// played. Class carries an explicit styling class when the venue rules
// should not apply; Time is blank for the default throw time.
type Fixture struct {
	Home  string `json:"home"`
	Away  string `json:"away"`
	Venue string `json:"venue"`
	Class string `json:"class,omitempty"`
	Time  string `json:"time,omitempty"`
}

// Week pairs a match date with its fixtures.
type Week struct {
	Date     string    `json:"date"`
	Fixtures []Fixture `json:"fixtures"`
}

// Badge is the date chip rendered beside the standings heading.
type Badge struct {
	ISO   string
	Text  string
	Title string
}

// DefaultThrowTime is used when a fixture has no explicit start time.
const DefaultThrowTime = "7:30 PM"
