package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/metrics"
	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// NoticeRelay subscribes to the bus and turns domain events into dispatcher
// notices. Dispatch failures are logged and swallowed so the messaging
// system's availability never leaks into workflow state.
type NoticeRelay struct {
	notifier ports.Notifier
	logger   logger.Logger
}

func NewNoticeRelay(notifier ports.Notifier, logger logger.Logger) *NoticeRelay {
	return &NoticeRelay{
		notifier: notifier,
		logger:   logger,
	}
}

func (r *NoticeRelay) HandleEvent(ctx context.Context, ev domain.DomainEvent) error {
	switch e := ev.(type) {
	case *domain.ContractorsSelected:
		for _, contractorID := range e.ContractorIDs {
			r.send(ctx, domain.Notice{
				ID:         uuid.New().String(),
				FromUserID: e.BusinessID,
				FromRole:   domain.RoleBusiness,
				ToUserID:   contractorID,
				ToRole:     domain.RoleContractor,
				EventID:    e.EventID,
				Kind:       domain.NoticeAcceptance,
				Subject:    "You're hired",
				Body:       fmt.Sprintf("You have been selected to work %q.", e.EventTitle),
			})
		}
		r.send(ctx, domain.Notice{
			ID:         uuid.New().String(),
			FromUserID: e.BusinessID,
			FromRole:   domain.RoleBusiness,
			ToUserID:   e.HostID,
			ToRole:     domain.RoleHost,
			EventID:    e.EventID,
			Kind:       domain.NoticeCoordination,
			Subject:    "Contractors hired",
			Body:       fmt.Sprintf("%d contractor(s) were hired for %q.", len(e.ContractorIDs), e.EventTitle),
		})

	case *domain.MaterialsSent:
		r.send(ctx, domain.Notice{
			ID:         uuid.New().String(),
			FromUserID: e.BusinessID,
			FromRole:   domain.RoleBusiness,
			ToUserID:   e.HostID,
			ToRole:     domain.RoleHost,
			EventID:    e.EventID,
			Kind:       domain.NoticeMaterialConfirmation,
			Subject:    "Materials on the way",
			Body:       fmt.Sprintf("Materials for %q were shipped, tracking %s.", e.EventTitle, e.TrackingNumber),
			Meta:       domain.ShipmentMeta{TrackingNumber: e.TrackingNumber},
		})

	case *domain.FundsReleased:
		r.send(ctx, domain.Notice{
			ID:         uuid.New().String(),
			FromUserID: e.HostID,
			FromRole:   domain.RoleHost,
			ToUserID:   e.ContractorID,
			ToRole:     domain.RoleContractor,
			EventID:    e.EventID,
			Kind:       domain.NoticePaymentConfirmation,
			Subject:    "Payment released",
			Body:       fmt.Sprintf("Your payment for %q is eligible for release.", e.EventTitle),
			Meta:       domain.PayoutMeta{Amount: e.Amount},
		})

	case *domain.DiscrepancyReported:
		r.send(ctx, domain.Notice{
			ID:         uuid.New().String(),
			FromUserID: e.HostID,
			FromRole:   domain.RoleHost,
			ToUserID:   e.BusinessID,
			ToRole:     domain.RoleBusiness,
			EventID:    e.EventID,
			Kind:       domain.NoticeCoordination,
			Subject:    "URGENT: inventory discrepancy",
			Body:       fmt.Sprintf("%d item(s) arrived with quantity mismatches for %q. %s", e.TotalDiscrepancies, e.EventTitle, e.Notes),
			Meta: domain.DiscrepancyMeta{
				Urgent:             true,
				DiscrepancyID:      e.DiscrepancyID,
				TotalDiscrepancies: e.TotalDiscrepancies,
			},
		})
	}

	return nil
}

func (r *NoticeRelay) send(ctx context.Context, n domain.Notice) {
	if n.ToUserID == "" {
		r.logger.Debug("notice skipped (no recipient)",
			logger.String("event_id", n.EventID),
			logger.String("kind", string(n.Kind)),
		)
		return
	}

	if err := r.notifier.Send(ctx, n); err != nil {
		metrics.Notices.WithLabelValues(string(n.Kind), "failed").Inc()
		r.logger.Error("notice dispatch failed",
			logger.String("event_id", n.EventID),
			logger.String("kind", string(n.Kind)),
			logger.String("to", n.ToUserID),
			logger.String("error", err.Error()),
		)
		return
	}
	metrics.Notices.WithLabelValues(string(n.Kind), "sent").Inc()
}
