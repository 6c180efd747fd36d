package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/metrics"
	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// oneStarLimit is strict: the count must exceed it, so the 4th one-star
// review is the first to suspend.
const oneStarLimit = 3

const suspensionReason = "Received more than 3 one-star ratings from hosts"

// Suspension evaluates contractor rating history and flips the account
// suspension flag once one-star reviews accumulate past the limit. Each
// review triggers at most one suspension side effect.
type Suspension struct {
	contractors ports.ContractorRepo
	notifier    ports.Notifier
	logger      logger.Logger
}

func NewSuspension(contractors ports.ContractorRepo, notifier ports.Notifier, logger logger.Logger) *Suspension {
	return &Suspension{
		contractors: contractors,
		notifier:    notifier,
		logger:      logger,
	}
}

// HandleEvent is the bus subscription: only one-star review submissions are
// of interest.
func (p *Suspension) HandleEvent(ctx context.Context, ev domain.DomainEvent) error {
	review, ok := ev.(*domain.ReviewSubmitted)
	if !ok || review.Rating != 1 {
		return nil
	}
	_, err := p.OnOneStarReview(ctx, review.ContractorID, review.EventID, review.HostID)
	return err
}

// OnOneStarReview increments the contractor's one-star count and suspends the
// account when the new count exceeds the limit. The suspension notice is
// best-effort; its failure never rolls back the suspension write. The hostID
// is the reviewer whose rating tipped the count, recorded as the notice
// sender.
func (p *Suspension) OnOneStarReview(ctx context.Context, contractorID, eventID, hostID string) (bool, error) {
	c, err := p.contractors.IncrementOneStar(ctx, contractorID)
	if err != nil {
		return false, fmt.Errorf("increment one-star count: %w", err)
	}

	p.logger.Info("one-star review recorded",
		logger.String("contractor_id", contractorID),
		logger.String("event_id", eventID),
		logger.Int("one_star_count", c.OneStarCount),
	)

	if c.OneStarCount <= oneStarLimit || c.Suspended {
		return false, nil
	}

	now := time.Now().UTC()
	if err := p.contractors.Suspend(ctx, contractorID, suspensionReason, now); err != nil {
		return false, fmt.Errorf("suspend contractor: %w", err)
	}
	metrics.Suspensions.Inc()

	p.logger.Warn("contractor suspended",
		logger.String("contractor_id", contractorID),
		logger.Int("one_star_count", c.OneStarCount),
	)

	notice := domain.Notice{
		ID:         uuid.New().String(),
		FromUserID: hostID,
		FromRole:   domain.RoleHost,
		ToUserID:   contractorID,
		ToRole:     domain.RoleContractor,
		EventID:    eventID,
		Kind:       domain.NoticeSuspension,
		Subject:    "Account suspended",
		Body:       suspensionReason,
		Meta:       domain.SuspensionMeta{OneStarCount: c.OneStarCount},
	}
	if err := p.notifier.Send(ctx, notice); err != nil {
		metrics.Notices.WithLabelValues(string(domain.NoticeSuspension), "failed").Inc()
		p.logger.Error("suspension notice failed",
			logger.String("contractor_id", contractorID),
			logger.String("error", err.Error()),
		)
	} else {
		metrics.Notices.WithLabelValues(string(domain.NoticeSuspension), "sent").Inc()
	}

	return true, nil
}
