package scheduler

import (
	apperrors "BPJS_Monitoring_Service/internal/monitor/errors"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Job is one periodic task. Timeout bounds a single run, zero means no bound.
type Job struct {
	Name    string
	Spec    string
	Timeout time.Duration
	Run     func(ctx context.Context) error
}

type Scheduler interface {
	Start()
	Stop()
}

type cronScheduler struct {
	cron   *cron.Cron
	logger *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func (s *cronScheduler) Start() {
	s.cron.Start()
	for _, entry := range s.cron.Entries() {
		s.logger.Info("job scheduled", zap.Time("next_run", entry.Next), zap.Int("entry_id", int(entry.ID)))
	}
}

// Stop cancels running jobs and waits for them to return.
func (s *cronScheduler) Stop() {
	s.cancel()
	<-s.cron.Stop().Done()
}

func (s *cronScheduler) runJob(job Job) {
	ctx := s.ctx
	if job.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, job.Timeout)
		defer cancel()
	}
	startedAt := time.Now()
	err := job.Run(ctx)
	switch {
	case err == nil:
		s.logger.Info("job finished", zap.String("job", job.Name), zap.Duration("duration", time.Since(startedAt)))
	case errors.Is(err, apperrors.ErrCycleInProgress):
		s.logger.Warn("job skipped, previous run still in progress", zap.String("job", job.Name))
	default:
		s.logger.Error("job failed", zap.String("job", job.Name), zap.Duration("duration", time.Since(startedAt)), zap.Error(err))
	}
}

// NewScheduler uses standard 5-field cron specs. Overlapping runs of one job are skipped and panics are recovered.
func NewScheduler(logger *zap.Logger, jobs ...Job) (Scheduler, error) {
	cronLogger := NewCronLogger(logger)
	c := cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)
	ctx, cancel := context.WithCancel(context.Background())
	s := &cronScheduler{
		cron:   c,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
	for _, job := range jobs {
		if _, err := c.AddFunc(job.Spec, func() { s.runJob(job) }); err != nil {
			cancel()
			return nil, fmt.Errorf("NewScheduler: job %s: %w", job.Name, err)
		}
	}
	return s, nil
}
