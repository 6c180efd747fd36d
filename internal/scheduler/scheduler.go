package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type queueReplayer interface {
	ReplayPending(ctx context.Context) []error
}

type connectivitySignal interface {
	Online() bool
}

// Scheduler watches the connectivity signal and replays the offline action
// queue on the offline→online edge. The first online tick also replays, so
// actions left over from a previous run are picked up on startup.
type Scheduler struct {
	replayer  queueReplayer
	online    connectivitySignal
	interval  time.Duration
	logger    logger.Logger
	wasOnline bool
}

func New(
	replayer queueReplayer,
	online connectivitySignal,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		replayer: replayer,
		online:   online,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("replay scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("replay scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	online := s.online.Online()
	defer func() { s.wasOnline = online }()

	if !online || s.wasOnline {
		return
	}

	errs := s.replayer.ReplayPending(ctx)
	for _, err := range errs {
		s.logger.Warn("replay action failed",
			logger.String("error", err.Error()),
		)
	}
}
