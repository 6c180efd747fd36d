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

// CheckIn drives the per-vendor sub-workflow inside an event: arrival →
// halfway → end → funds release → review. Updates made while offline are
// queued and later replayed through the same ApplyPatch path, so replay and
// live application share validation and side effects.
type CheckIn struct {
	events ports.EventRepo
	queue  *OfflineQueue
	online ports.Connectivity
	bus    ports.Publisher
	locks  *EventLocks
	logger logger.Logger
}

func NewCheckIn(
	events ports.EventRepo,
	queue *OfflineQueue,
	online ports.Connectivity,
	bus ports.Publisher,
	locks *EventLocks,
	logger logger.Logger,
) *CheckIn {
	return &CheckIn{
		events: events,
		queue:  queue,
		online: online,
		bus:    bus,
		locks:  locks,
		logger: logger,
	}
}

// UpdateVendor applies the patch when connectivity is up; otherwise it queues
// the patch for replay and returns a nil vendor.
func (s *CheckIn) UpdateVendor(ctx context.Context, eventID, contractorID string, patch domain.VendorPatch) (*domain.VendorCheckIn, error) {
	if !s.online.Online() {
		action := &domain.OfflineAction{
			ID:           uuid.New().String(),
			EventID:      eventID,
			ContractorID: contractorID,
			Patch:        patch,
			QueuedAt:     time.Now().UTC(),
		}
		if err := s.queue.Enqueue(ctx, action); err != nil {
			return nil, fmt.Errorf("queue offline update: %w", err)
		}
		metrics.VendorUpdates.WithLabelValues("queued").Inc()

		s.logger.Info("vendor update queued offline",
			logger.String("event_id", eventID),
			logger.String("contractor_id", contractorID),
			logger.String("action_id", action.ID),
		)

		return nil, nil
	}

	return s.ApplyPatch(ctx, eventID, contractorID, patch)
}

// ApplyPatch is the live mutation path. It re-validates the stage ordering on
// the patched state and rejects violations with domain.ErrInvalidOrder
// without writing anything.
func (s *CheckIn) ApplyPatch(ctx context.Context, eventID, contractorID string, patch domain.VendorPatch) (*domain.VendorCheckIn, error) {
	unlock := s.locks.Lock(eventID)
	defer unlock()

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	vendor := event.Vendor(contractorID)
	if vendor == nil {
		metrics.VendorUpdates.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: contractor %s is not a vendor of event %s", domain.ErrVendorNotFound, contractorID, eventID)
	}

	patched := *vendor
	patch.Apply(&patched)
	if err := patched.ValidateOrder(); err != nil {
		metrics.VendorUpdates.WithLabelValues("rejected").Inc()
		return nil, err
	}

	*vendor = patched
	event.UpdatedAt = time.Now().UTC()

	if err := s.events.Save(ctx, event); err != nil {
		return nil, fmt.Errorf("save event: %w", err)
	}
	metrics.VendorUpdates.WithLabelValues("applied").Inc()

	s.logger.Info("vendor updated",
		logger.String("event_id", eventID),
		logger.String("contractor_id", contractorID),
	)

	result := *vendor
	return &result, nil
}

// ReleaseFunds flags the vendor's payout as eligible. Requires a confirmed
// end check-in and fires at most once per vendor.
func (s *CheckIn) ReleaseFunds(ctx context.Context, eventID, contractorID string) (*domain.VendorCheckIn, error) {
	unlock := s.locks.Lock(eventID)
	defer unlock()

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	vendor := event.Vendor(contractorID)
	if vendor == nil {
		return nil, fmt.Errorf("%w: contractor %s is not a vendor of event %s", domain.ErrVendorNotFound, contractorID, eventID)
	}
	if !vendor.EndConfirmed {
		return nil, fmt.Errorf("%w: end of event not confirmed", domain.ErrPreconditionFailed)
	}
	if vendor.FundsReleased {
		return nil, fmt.Errorf("%w: funds already released", domain.ErrPreconditionFailed)
	}

	vendor.FundsReleased = true
	event.UpdatedAt = time.Now().UTC()

	if err := s.events.Save(ctx, event); err != nil {
		return nil, fmt.Errorf("save event: %w", err)
	}

	s.logger.Info("funds released",
		logger.String("event_id", eventID),
		logger.String("contractor_id", contractorID),
	)

	s.bus.Publish(ctx, &domain.FundsReleased{
		EventID:      event.ID,
		EventTitle:   event.Title,
		HostID:       event.EventHostID,
		ContractorID: contractorID,
		Amount:       event.ContractorPay,
		Timestamp:    time.Now().UTC(),
	})

	result := *vendor
	return &result, nil
}

// SubmitReview attaches the host's review to the vendor. Reviews require a
// prior funds release, are immutable once set, derive rehirability from the
// rating, and demand a host response on one-star ratings.
func (s *CheckIn) SubmitReview(ctx context.Context, eventID, contractorID string, input domain.ReviewInput) (*domain.VendorCheckIn, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", domain.ErrValidation)
	}
	if input.Tip < 0 {
		return nil, fmt.Errorf("%w: tip must not be negative", domain.ErrValidation)
	}

	unlock := s.locks.Lock(eventID)
	defer unlock()

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	vendor := event.Vendor(contractorID)
	if vendor == nil {
		return nil, fmt.Errorf("%w: contractor %s is not a vendor of event %s", domain.ErrVendorNotFound, contractorID, eventID)
	}
	if !vendor.FundsReleased {
		return nil, fmt.Errorf("%w: funds not released yet", domain.ErrPreconditionFailed)
	}
	if vendor.Review != nil {
		return nil, fmt.Errorf("%w: vendor already reviewed", domain.ErrPreconditionFailed)
	}
	if input.Rating == 1 && input.HostResponse == "" {
		return nil, domain.ErrResponseRequired
	}

	now := time.Now().UTC()
	vendor.Review = &domain.VendorReview{
		Rating:       input.Rating,
		Tip:          input.Tip,
		IsRehirable:  input.Rating >= domain.MinRehirableRating,
		HostResponse: input.HostResponse,
		CreatedAt:    now,
	}
	event.UpdatedAt = now

	if err := s.events.Save(ctx, event); err != nil {
		return nil, fmt.Errorf("save event: %w", err)
	}
	metrics.ReviewsSubmitted.WithLabelValues(fmt.Sprint(input.Rating)).Inc()

	s.logger.Info("review submitted",
		logger.String("event_id", eventID),
		logger.String("contractor_id", contractorID),
		logger.Int("rating", input.Rating),
	)

	s.bus.Publish(ctx, &domain.ReviewSubmitted{
		EventID:      event.ID,
		HostID:       event.EventHostID,
		ContractorID: contractorID,
		Rating:       input.Rating,
		Timestamp:    now,
	})

	result := *vendor
	return &result, nil
}

// ReplayPending drains the offline queue through the live ApplyPatch path.
func (s *CheckIn) ReplayPending(ctx context.Context) []error {
	return s.queue.Replay(ctx, func(ctx context.Context, a *domain.OfflineAction) error {
		_, err := s.ApplyPatch(ctx, a.EventID, a.ContractorID, a.Patch)
		return err
	})
}
