package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeasonCalendar(t *testing.T) {
	require.Len(t, SeasonDates, 22)
	require.Len(t, UpcomingDates, 12)

	assert.Equal(t, "2025-09-09", SeasonDates[0])
	assert.Equal(t, "2026-03-03", SeasonDates[len(SeasonDates)-1])
	assert.Equal(t, "2025-12-02", UpcomingDates[11])
	assert.NotContains(t, SeasonDates, "2025-11-11", "Remembrance Day week is off")

	for i := 1; i < len(SeasonDates); i++ {
		assert.Less(t, SeasonDates[i-1], SeasonDates[i], "dates are strictly increasing")
	}
}

func TestNextMatchIndex(t *testing.T) {
	t.Run("before the season", func(t *testing.T) {
		assert.Equal(t, 0, NextMatchIndex(SeasonDates, "2025-08-01"))
	})

	t.Run("match day selects itself", func(t *testing.T) {
		assert.Equal(t, 2, NextMatchIndex(SeasonDates, "2025-09-23"))
	})

	t.Run("mid-week advances to the next date", func(t *testing.T) {
		assert.Equal(t, 3, NextMatchIndex(SeasonDates, "2025-09-24"))
	})

	t.Run("skipped week jumps past Nov 11", func(t *testing.T) {
		idx := NextMatchIndex(SeasonDates, "2025-11-11")
		assert.Equal(t, "2025-11-18", SeasonDates[idx])
	})

	t.Run("after the season", func(t *testing.T) {
		assert.Equal(t, -1, NextMatchIndex(SeasonDates, "2026-03-04"))
	})
}

func TestUpcomingIndexClampsToLast(t *testing.T) {
	assert.Equal(t, 11, UpcomingIndex(UpcomingDates, "2026-06-01"))
	assert.Equal(t, 0, UpcomingIndex(UpcomingDates, "2025-01-01"))
}

func TestBadgeFor(t *testing.T) {
	t.Run("match day", func(t *testing.T) {
		b := BadgeFor("2025-09-09")
		assert.Equal(t, "2025-09-09", b.ISO)
		assert.Equal(t, "September 9, 2025", b.Text)
		assert.Equal(t, "Match Day", b.Title)
	})

	t.Run("between matches", func(t *testing.T) {
		b := BadgeFor("2025-09-10")
		assert.Equal(t, "2025-09-16", b.ISO)
		assert.Equal(t, "Next Match", b.Title)
	})

	t.Run("season complete", func(t *testing.T) {
		b := BadgeFor("2026-03-04")
		assert.Equal(t, "2026-03-03", b.ISO)
		assert.Equal(t, "Season Complete (Mar 3, 2026)", b.Text)
		assert.Equal(t, "Season Complete", b.Title)
	})
}

func TestCurrentWeek(t *testing.T) {
	assert.Equal(t, 1, CurrentWeek("2025-09-09"))
	assert.Equal(t, 12, CurrentWeek("2025-12-02"))
	assert.Equal(t, 22, CurrentWeek("2026-03-03"))
	assert.Equal(t, 22, CurrentWeek("2026-04-01"), "stays on the final week after the season")
}

func TestWeekFixtures(t *testing.T) {
	require.Equal(t, 12, NumWeeks())

	week1 := WeekFixtures(1)
	require.Len(t, week1, 6)
	assert.Equal(t, "Highwaymen", week1[0].Home)
	assert.Equal(t, "Kilkenny", week1[0].Away)
	assert.Equal(t, "R.C.L.B 266 / 46", week1[0].Venue)

	assert.Nil(t, WeekFixtures(0))
	assert.Nil(t, WeekFixtures(13))
}

func TestWithVenuesFillsHomeVenue(t *testing.T) {
	got := withVenues([]Fixture{
		{Home: "Taz's Devils", Away: "Wombles"},
		{Home: "Shooters", Away: "Kilkenny", Venue: "Somewhere Else"},
	})
	assert.Equal(t, "Coronation 259", got[0].Venue)
	assert.Equal(t, "Somewhere Else", got[1].Venue, "explicit venue is kept")
}

func TestUpcomingWeek(t *testing.T) {
	num, week := UpcomingWeek("2025-09-16")
	assert.Equal(t, 2, num)
	assert.Equal(t, "2025-09-16", week.Date)
	require.Len(t, week.Fixtures, 6)
	for _, f := range week.Fixtures {
		assert.Equal(t, DefaultThrowTime, f.Time)
	}

	num, week = UpcomingWeek("2026-06-01")
	assert.Equal(t, 12, num, "past the window clamps to the last week")
	assert.Equal(t, "2025-12-02", week.Date)
}

func TestVenueClass(t *testing.T) {
	cases := []struct {
		venue, explicit, want string
	}{
		{"Owls Unit #306", "", "green-highlight"},
		{"R.C.L.B 266 / 46", "", "green-highlight"},
		{"AC Ranch Café", "", "orange-highlight"},
		{"Coronation 259", "", "venue-coronation"},
		{"Japas", "", "venue-japas"},
		{"Some Pub", "", ""},
		{"Owls Unit #306", "custom-class", "custom-class"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, VenueClass(tc.venue, tc.explicit), tc.venue)
	}
}

func TestTodayISO(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)
	assert.Equal(t, "2025-09-09", TodayISO(time.Date(2025, 9, 9, 23, 30, 0, 0, loc)))
}
