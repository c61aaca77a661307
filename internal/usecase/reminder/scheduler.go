package reminder

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Scheduler runs the sweeper on a fixed interval in the server process.
type Scheduler struct {
	sweeper  *Sweeper
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func NewScheduler(sweeper *Sweeper, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{sweeper: sweeper, interval: interval, logger: logger}
}

func (s *Scheduler) Enabled() bool {
	return s.interval > 0
}

// Start returns immediately; sweeps run until Stop or ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	if !s.Enabled() {
		s.logger.Info("reminder scheduler disabled")
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("reminder scheduler started", slog.Duration("interval", s.interval))
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.sweeper.Run(ctx); err != nil && ctx.Err() == nil {
					s.logger.Error("reminder sweep failed", slog.String("error", err.Error()))
				}
			}
		}
	}()
}

func (s *Scheduler) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.once.Do(s.cancel)
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
