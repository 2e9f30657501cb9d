package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/goto/approvals/pkg/log"
)

const defaultInterval = time.Minute

// Scheduler runs jobs on fixed intervals until its context is cancelled.
// A tick that is still running when the next one is due makes the next one skip.
type Scheduler struct {
	logger   log.Logger
	handlers map[Type]func(context.Context, Config) error
	jobs     []Job
}

func NewScheduler(logger log.Logger, handlers map[Type]func(context.Context, Config) error, jobs []Job) (*Scheduler, error) {
	for _, j := range jobs {
		if _, ok := handlers[j.Type]; !ok {
			return nil, fmt.Errorf("invalid job type %q", j.Type)
		}
	}
	return &Scheduler{logger: logger, handlers: handlers, jobs: jobs}, nil
}

// Run blocks until ctx is done and every running tick returned
func (s *Scheduler) Run(ctx context.Context) {
	cl := cronLogger{ctx: ctx, logger: s.logger}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	for _, j := range s.jobs {
		if !j.Enabled {
			continue
		}
		interval := j.Interval
		if interval <= 0 {
			interval = defaultInterval
		}
		c.Schedule(every(interval), s.job(ctx, j))
		s.logger.Info(ctx, "job scheduled", "type", j.Type, "interval", interval.String())
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	s.logger.Info(ctx, "scheduler stopped")
}

func (s *Scheduler) job(ctx context.Context, j Job) cron.Job {
	return cron.FuncJob(func() {
		start := time.Now()
		if err := s.handlers[j.Type](ctx, j.Config); err != nil {
			s.logger.Error(ctx, "job failed", "type", j.Type, "error", err)
			return
		}
		s.logger.Debug(ctx, "job finished", "type", j.Type, "duration", time.Since(start).String())
	})
}

// every is a fixed delay schedule without the one second rounding of cron.Every
type every time.Duration

func (e every) Next(t time.Time) time.Time {
	return t.Add(time.Duration(e))
}

type cronLogger struct {
	ctx    context.Context
	logger log.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(l.ctx, "cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(l.ctx, "cron: "+msg, append(keysAndValues, "error", err)...)
}
