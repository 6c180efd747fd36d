package service

import (
	"context"
	"fmt"

	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/service/ports"
)

// Visibility is the role-scoped projection over the event collection exposed
// to the UI layer.
type Visibility struct {
	events ports.EventRepo
}

func NewVisibility(events ports.EventRepo) *Visibility {
	return &Visibility{events: events}
}

// VisibleEvents filters by ownership and connection rules: businesses see
// events they own or claimed plus open host listings, hosts see events they
// host plus business proposals without a host, contractors see only
// host-connected events.
func (s *Visibility) VisibleEvents(ctx context.Context, role domain.Role, actorID string) ([]*domain.Event, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, role)
	}
	if actorID == "" {
		return nil, fmt.Errorf("%w: actor id is required", domain.ErrValidation)
	}
	return s.events.ListVisible(ctx, role, actorID)
}
