package scheduler

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-co-op/gocron/v2"

	"github.com/shimbeld/bsdl/internal/schedule"
)

// RolloverCron fires at local midnight, when the date badge and week
// highlight may advance.
const RolloverCron = "0 0 * * *"

// RegisterRollover adds the daily job that logs where the season calendar
// now points. Pages compute this per request; the job gives operators a
// breadcrumb in the logs each time it moves.
func (s *Scheduler) RegisterRollover() (gocron.Job, error) {
	return s.AddJob("season-rollover", RolloverCron, func() {
		today := schedule.TodayISO(time.Now())
		badge := schedule.BadgeFor(today)
		week := schedule.CurrentWeek(today)
		log.Info("season rollover", "today", today, "badge", badge.Text, "week", week)
	})
}
