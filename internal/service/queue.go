package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/metrics"
	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// OfflineQueue is the durable FIFO of vendor updates recorded without
// connectivity. Replay processes strictly in insertion order: a domain-level
// rejection is recorded and skipped so a stale patch cannot block later
// actions, while a storage failure aborts the pass and keeps the unapplied
// tail queued for the next connectivity event.
type OfflineQueue struct {
	actions ports.OfflineActionRepo
	logger  logger.Logger

	mu sync.Mutex // one replay pass at a time
}

func NewOfflineQueue(actions ports.OfflineActionRepo, logger logger.Logger) *OfflineQueue {
	return &OfflineQueue{
		actions: actions,
		logger:  logger,
	}
}

func (q *OfflineQueue) Enqueue(ctx context.Context, a *domain.OfflineAction) error {
	if err := q.actions.Append(ctx, a); err != nil {
		return fmt.Errorf("append action: %w", err)
	}
	metrics.OfflineEnqueued.Inc()
	return nil
}

// Replay applies each queued action via apply. Returned errors are
// per-action; an empty slice means a clean full pass. After a full pass the
// queue is persisted empty.
func (q *OfflineQueue) Replay(ctx context.Context, apply func(context.Context, *domain.OfflineAction) error) []error {
	q.mu.Lock()
	defer q.mu.Unlock()

	start := time.Now()
	defer func() {
		metrics.ReplayDuration.Observe(time.Since(start).Seconds())
	}()

	pending, err := q.actions.ListPending(ctx)
	if err != nil {
		return []error{fmt.Errorf("load queue: %w", err)}
	}
	if len(pending) == 0 {
		return nil
	}

	q.logger.Info("offline replay started", logger.Int("pending", len(pending)))

	var errs []error
	for i, action := range pending {
		if err := apply(ctx, action); err != nil {
			if errors.Is(err, domain.ErrStorage) {
				// Abort the pass. Drop the prefix that already applied so
				// the next pass cannot apply it twice.
				metrics.ReplayActions.WithLabelValues("aborted").Inc()
				if i > 0 {
					if derr := q.actions.DeleteThrough(ctx, pending[i-1].Position); derr != nil {
						errs = append(errs, fmt.Errorf("trim applied prefix: %w", derr))
					}
				}
				errs = append(errs, fmt.Errorf("replay aborted at action %s: %w", action.ID, err))
				return errs
			}

			// Guard or ordering rejection: record it and advance.
			metrics.ReplayActions.WithLabelValues("rejected").Inc()
			errs = append(errs, fmt.Errorf("action %s rejected: %w", action.ID, err))

			q.logger.Warn("queued action rejected on replay",
				logger.String("action_id", action.ID),
				logger.String("event_id", action.EventID),
				logger.String("error", err.Error()),
			)
			continue
		}
		metrics.ReplayActions.WithLabelValues("applied").Inc()
	}

	if err := q.actions.Clear(ctx); err != nil {
		errs = append(errs, fmt.Errorf("clear queue: %w", err))
		return errs
	}

	q.logger.Info("offline replay finished",
		logger.Int("processed", len(pending)),
		logger.Int("rejected", len(errs)),
	)

	return errs
}
