// Package jobs runs the periodic housekeeping of the API process.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/01moynul/vapeshop-golang/internal/metrics"
	"github.com/01moynul/vapeshop-golang/internal/middleware"
	"github.com/01moynul/vapeshop-golang/internal/storage"
)

const (
	// PruneSessionsSpec is how often expired sessions are deleted.
	PruneSessionsSpec = "@every 15m"
	// LimiterCleanupSpec is how often idle login rate limiters are dropped.
	LimiterCleanupSpec = "@every 1h"

	limiterMaxIdle = time.Hour
	jobTimeout     = time.Minute
)

type Scheduler struct {
	cron     *cron.Cron
	sessions storage.SessionStore
	limiter  *middleware.RateLimiter // optional
	metrics  *metrics.Metrics
	log      logrus.FieldLogger
}

func New(sessions storage.SessionStore, limiter *middleware.RateLimiter, m *metrics.Metrics, log logrus.FieldLogger) *Scheduler {
	cronLog := cron.PrintfLogger(log.WithField("component", "cron"))
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLog),
			cron.SkipIfStillRunning(cronLog),
		)),
		sessions: sessions,
		limiter:  limiter,
		metrics:  m,
		log:      log,
	}
}

// Start registers the jobs and starts the scheduler in its own goroutine.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(PruneSessionsSpec, s.runPruneSessions); err != nil {
		return fmt.Errorf("schedule session pruning: %w", err)
	}
	if s.limiter != nil {
		if _, err := s.cron.AddFunc(LimiterCleanupSpec, s.runLimiterCleanup); err != nil {
			return fmt.Errorf("schedule limiter cleanup: %w", err)
		}
	}
	s.cron.Start()
	s.log.WithField("jobs", len(s.cron.Entries())).Info("Background jobs started")
	return nil
}

// Stop stops scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.log.Warn("Background jobs still running at shutdown")
	}
}

// PruneSessions deletes expired sessions once.
func (s *Scheduler) PruneSessions(ctx context.Context) (int64, error) {
	n, err := s.sessions.PruneSessions(ctx)
	if err != nil {
		return 0, err
	}
	if s.metrics != nil {
		s.metrics.SessionsPruned.Add(float64(n))
	}
	return n, nil
}

func (s *Scheduler) runPruneSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := s.PruneSessions(ctx)
	if err != nil {
		s.log.WithError(err).Error("Failed to prune sessions")
		return
	}
	if n > 0 {
		s.log.WithField("removed", n).Info("Expired sessions pruned")
	}
}

func (s *Scheduler) runLimiterCleanup() {
	if n := s.limiter.Cleanup(limiterMaxIdle); n > 0 {
		s.log.WithField("removed", n).Debug("Idle rate limiters dropped")
	}
}
