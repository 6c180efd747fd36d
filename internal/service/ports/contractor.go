package ports

import (
	"context"
	"time"

	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
)

type ContractorRepo interface {
	Get(ctx context.Context, id string) (*domain.Contractor, error)
	// IncrementOneStar bumps the one-star counter atomically and returns the
	// state after the increment (suspension flags reflect the state before any
	// new suspension).
	IncrementOneStar(ctx context.Context, id string) (*domain.Contractor, error)
	Suspend(ctx context.Context, id, reason string, at time.Time) error
}
