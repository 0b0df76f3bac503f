package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Poller runs one poll cycle.
type Poller interface {
	Poll(ctx context.Context)
}

// PollScheduler repeats poll cycles on a fixed period. Cycles never overlap.
type PollScheduler struct {
	cronEngine *cron.Cron
	poller     Poller
	logger     *logrus.Entry
	period     time.Duration
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewPollScheduler(poller Poller, logger *logrus.Entry, period time.Duration) *PollScheduler {
	cronLogger := cron.PrintfLogger(logger.WithField("component", "cron"))
	ctx, cancel := context.WithCancel(context.Background())
	return &PollScheduler{
		cronEngine: cron.New(
			cron.WithLocation(time.Local),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		poller: poller,
		logger: logger.WithField("component", "scheduler"),
		period: period,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start runs the first cycle synchronously, then hands further cycles to cron.
func (s *PollScheduler) Start() {
	s.logger.WithField("period", s.period.String()).Info("Starting poll scheduler...")

	s.runCycle()

	s.cronEngine.Schedule(cron.Every(s.period), cron.FuncJob(s.runCycle))
	s.cronEngine.Start()
	s.logger.Info("Poll scheduler started.")
}

func (s *PollScheduler) runCycle() {
	if s.ctx.Err() != nil {
		return
	}
	started := time.Now()
	s.poller.Poll(s.ctx)
	s.logger.WithField("took", time.Since(started).String()).Debug("Poll cycle finished")
}

// Stop cancels an in-flight cycle and waits for it to return.
func (s *PollScheduler) Stop() {
	s.logger.Info("Stopping poll scheduler...")
	s.cancel()
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()
	s.logger.Info("Poll scheduler gracefully stopped.")
}
