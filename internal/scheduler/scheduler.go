// Package scheduler runs periodic background jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is one scheduled task.
type Job struct {
	Name     string
	Schedule string // cron expression or descriptor such as "@daily"
	Run      func()
}

// Scheduler wraps a cron runner with logging.
type Scheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
}

// New registers jobs on a new scheduler. Jobs with an empty schedule are
// skipped. Returns an error if a schedule does not parse.
func New(logger *zap.Logger, jobs ...Job) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.Recover(cronLogger{logger})))

	for _, job := range jobs {
		if job.Schedule == "" {
			logger.Info("scheduled job disabled", zap.String("job", job.Name))
			continue
		}
		run, name := job.Run, job.Name
		if _, err := c.AddFunc(job.Schedule, func() {
			logger.Debug("running scheduled job", zap.String("job", name))
			run()
		}); err != nil {
			return nil, fmt.Errorf("invalid schedule %q for job %s: %w", job.Schedule, job.Name, err)
		}
		logger.Info("scheduled job registered", zap.String("job", job.Name), zap.String("schedule", job.Schedule))
	}

	return &Scheduler{cron: c, logger: logger}, nil
}

// Len returns the number of registered jobs.
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

// Run starts the scheduler and blocks until ctx is done, then waits for
// running jobs to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.logger.Info("scheduler stopped")
	return nil
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	logger *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Infow(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
