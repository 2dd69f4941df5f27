package engine

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the daily market snapshot refresh.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger
}

// NewScheduler creates a Scheduler that refreshes market snapshots on the
// given cron spec ("@daily", "0 5 * * *", ...).
func NewScheduler(eng *Engine, marketRefresh string, log *slog.Logger) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:   c,
		engine: eng,
		log:    log,
	}

	if _, err := c.AddFunc(marketRefresh, s.runMarketRefresh); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// RunNow performs one market refresh immediately, outside the schedule.
// The server calls it at startup so quotes never wait a day for snapshots.
func (s *Scheduler) RunNow() {
	s.runMarketRefresh()
}

func (s *Scheduler) runMarketRefresh() {
	ctx := context.Background()
	s.log.Info("scheduled market refresh starting")
	n, err := s.engine.RefreshMarketSnapshots(ctx)
	if err != nil {
		s.log.Error("scheduled market refresh failed", "created", n, "error", err)
	}
}
