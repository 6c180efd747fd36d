package bus

import (
	"context"

	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Handler consumes one domain event. A returned error is logged by the bus
// and never reaches the publisher.
type Handler func(ctx context.Context, ev domain.DomainEvent) error

// Bus is a synchronous in-process event bus. Subscribers run in registration
// order on the publisher's goroutine, so side effects stay ordered and finish
// before the per-event lock is released.
type Bus struct {
	handlers []Handler
	log      logger.Logger
}

func New(log logger.Logger) *Bus {
	return &Bus{log: log}
}

// Subscribe registers a handler. Not safe to call after Publish traffic
// starts; all subscriptions happen during wiring.
func (b *Bus) Subscribe(h Handler) {
	b.handlers = append(b.handlers, h)
}

func (b *Bus) Publish(ctx context.Context, ev domain.DomainEvent) {
	for _, h := range b.handlers {
		if err := h(ctx, ev); err != nil {
			b.log.Error("event handler failed",
				logger.String("event_type", ev.EventType()),
				logger.String("aggregate_id", ev.AggregateID()),
				logger.String("error", err.Error()),
			)
		}
	}
}
