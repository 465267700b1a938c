package schedule

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TodayISO formats a time as the YYYY-MM-DD key the calendar is indexed by.
func TodayISO(now time.Time) string {
	return now.Format("2006-01-02")
}

// NextMatchIndex finds today's match if today is a match day, else the next
// upcoming one. Returns -1 once the last date has passed.
func NextMatchIndex(dates []string, today string) int {
	for i, d := range dates {
		if d >= today {
			return i
		}
	}
	return -1
}

// UpcomingIndex is NextMatchIndex clamped to the last date, for views that
// must always show some week.
func UpcomingIndex(dates []string, today string) int {
	if i := NextMatchIndex(dates, today); i >= 0 {
		return i
	}
	return len(dates) - 1
}

// CurrentWeek returns the 1-based week number to highlight for the full
// season schedule. After the season it stays on the final week.
func CurrentWeek(today string) int {
	idx := NextMatchIndex(SeasonDates, today)
	if idx < 0 {
		idx = len(SeasonDates) - 1
	}
	return idx + 1
}

// FormatDate renders an ISO date the way the page shows it, e.g.
// "September 9, 2025". Unparseable input passes through untouched.
func FormatDate(iso string) string {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return d.Format("January 2, 2006")
}

// BadgeFor builds the standings date chip for a given day: the next match
// date during the season, or a season-complete marker after the last one.
func BadgeFor(today string) Badge {
	idx := NextMatchIndex(SeasonDates, today)
	if idx < 0 {
		last := SeasonDates[len(SeasonDates)-1]
		return Badge{
			ISO:   last,
			Text:  "Season Complete (Mar 3, 2026)",
			Title: "Season Complete",
		}
	}
	iso := SeasonDates[idx]
	title := "Next Match"
	if iso == today {
		title = "Match Day"
	}
	return Badge{ISO: iso, Text: FormatDate(iso), Title: title}
}

// UpcomingWeek builds the week to show in the upcoming-matches view for a
// given day, with the default throw time applied.
func UpcomingWeek(today string) (weekNum int, week Week) {
	idx := UpcomingIndex(UpcomingDates, today)
	fixtures := WeekFixtures(idx + 1)
	for i := range fixtures {
		if fixtures[i].Time == "" {
			fixtures[i].Time = DefaultThrowTime
		}
	}
	return idx + 1, Week{Date: UpcomingDates[idx], Fixtures: fixtures}
}

var venueNormalizer = regexp.MustCompile(`[^a-z0-9]`)

var venueFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normVenue folds accents, lowercases and strips everything but letters and
// digits, so "AC Ranch Café" and "ac ranch cafe" key the same rule.
func normVenue(v string) string {
	if folded, _, err := transform.String(venueFolder, v); err == nil {
		v = folded
	}
	return venueNormalizer.ReplaceAllString(strings.ToLower(v), "")
}

type venueRule struct {
	substr string
	class  string
}

// Ordered: first match wins.
var venueClassRules = []venueRule{
	{"owlsunit306", "green-highlight"},
	{"rclb26646", "green-highlight"},
	{"acranchcafe", "orange-highlight"},
	{"coronation", "venue-coronation"},
	{"japas", "venue-japas"},
}

// VenueClass picks the styling class for a venue cell. An explicit class on
// the fixture always wins; otherwise the venue name is normalized to lower
// alphanumerics and matched against the substring rules.
func VenueClass(venue, explicit string) string {
	if explicit != "" {
		return explicit
	}
	nv := normVenue(venue)
	for _, r := range venueClassRules {
		if strings.Contains(nv, r.substr) {
			return r.class
		}
	}
	return ""
}
