package ports

import (
	"context"

	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
)

// Publisher fans a domain event out to subscribers. Publishing never fails
// the mutation that produced the event.
type Publisher interface {
	Publish(ctx context.Context, ev domain.DomainEvent)
}
