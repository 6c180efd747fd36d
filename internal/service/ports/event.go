package ports

import (
	"context"

	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// Save replaces the stored record wholesale; partial writes never happen.
	Save(ctx context.Context, e *domain.Event) error
	ListVisible(ctx context.Context, role domain.Role, actorID string) ([]*domain.Event, error)
}
