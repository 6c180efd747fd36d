package ports

import (
	"context"

	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
)

type OfflineActionRepo interface {
	Append(ctx context.Context, a *domain.OfflineAction) error
	// ListPending returns all queued actions in insertion order.
	ListPending(ctx context.Context) ([]*domain.OfflineAction, error)
	// DeleteThrough removes every action up to and including position.
	DeleteThrough(ctx context.Context, position int64) error
	Clear(ctx context.Context) error
}
