package ports

import (
	"context"

	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
)

// Notifier is the external message dispatcher. Implementations deliver
// best-effort; callers log and swallow errors.
type Notifier interface {
	Send(ctx context.Context, n domain.Notice) error
}
