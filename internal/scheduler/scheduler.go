package scheduler

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

var (
	ErrEmptyJobName  = errors.New("job name is required")
	ErrEmptyCronExpr = errors.New("cron expression is required")
)

// Scheduler wraps a gocron scheduler for the app's background jobs.
type Scheduler struct {
	sched gocron.Scheduler
}

// New creates a stopped scheduler. Job panics are logged, not propagated.
func New() (*Scheduler, error) {
	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					log.Error("scheduler job panicked", "job_id", jobID.String(), "job_name", jobName, "panic", recoverData)
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}
	return &Scheduler{sched: sched}, nil
}

// AddJob registers a cron-based job.
func (s *Scheduler) AddJob(name, cronExpr string, task func()) (gocron.Job, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyJobName
	}
	if strings.TrimSpace(cronExpr) == "" {
		return nil, ErrEmptyCronExpr
	}

	wrapped := func() {
		log.Debug("scheduler job started", "job_name", name)
		task()
		log.Debug("scheduler job completed", "job_name", name)
	}

	job, err := s.sched.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(wrapped),
		gocron.WithName(name),
	)
	if err != nil {
		log.Error("failed to register scheduler job", "job_name", name, "cron", cronExpr, "error", err)
		return nil, err
	}
	log.Info("scheduler job registered", "job_name", name, "cron", cronExpr)
	return job, nil
}

// Start begins running registered jobs.
func (s *Scheduler) Start() {
	log.Info("scheduler starting")
	s.sched.Start()
}

// Stop shuts the scheduler down and waits for running jobs.
func (s *Scheduler) Stop() error {
	log.Info("scheduler stopping")
	return s.sched.Shutdown()
}
