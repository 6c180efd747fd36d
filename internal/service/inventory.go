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

// Inventory detects expected-vs-received quantity mismatches on shipped
// materials and escalates them to the responsible business party.
type Inventory struct {
	events ports.EventRepo
	bus    ports.Publisher
	locks  *EventLocks
	logger logger.Logger
}

func NewInventory(events ports.EventRepo, bus ports.Publisher, locks *EventLocks, logger logger.Logger) *Inventory {
	return &Inventory{
		events: events,
		bus:    bus,
		locks:  locks,
		logger: logger,
	}
}

// Detect filters to items with an assigned discrepancy type and a quantity
// mismatch.
func Detect(items []domain.InventoryItem) []domain.InventoryItem {
	var mismatched []domain.InventoryItem
	for _, item := range items {
		if item.Mismatched() {
			mismatched = append(mismatched, item)
		}
	}
	return mismatched
}

// Report records a discrepancy for the mismatched items, or returns nil when
// nothing mismatches. When the event resolves to a business recipient, an
// urgent coordination notice goes out and the record is marked notified.
func (s *Inventory) Report(ctx context.Context, eventID string, items []domain.InventoryItem, notes string) (*domain.InventoryDiscrepancy, error) {
	mismatched := Detect(items)
	if len(mismatched) == 0 {
		return nil, nil
	}

	unlock := s.locks.Lock(eventID)
	defer unlock()

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	now := time.Now().UTC()
	discrepancy := domain.InventoryDiscrepancy{
		ID:                 uuid.New().String(),
		Items:              mismatched,
		TotalDiscrepancies: len(mismatched),
		Notes:              notes,
		ReportedBy:         event.EventHostID,
		ReportedAt:         now,
	}

	// Dispatch first, mark after: the notified flag records that the urgent
	// notice went out to a business recipient, not that one was intended.
	if recipient := event.BusinessRecipient(); recipient != "" {
		s.bus.Publish(ctx, &domain.DiscrepancyReported{
			EventID:            event.ID,
			EventTitle:         event.Title,
			DiscrepancyID:      discrepancy.ID,
			HostID:             event.EventHostID,
			BusinessID:         recipient,
			TotalDiscrepancies: discrepancy.TotalDiscrepancies,
			Notes:              notes,
			Timestamp:          now,
		})
		discrepancy.BusinessOwnerNotified = true
	}

	event.InventoryItems = items
	event.InventoryDiscrepancies = append(event.InventoryDiscrepancies, discrepancy)
	event.UpdatedAt = now

	if err := s.events.Save(ctx, event); err != nil {
		return nil, fmt.Errorf("save event: %w", err)
	}
	metrics.Discrepancies.Inc()

	s.logger.Warn("inventory discrepancy reported",
		logger.String("event_id", eventID),
		logger.String("discrepancy_id", discrepancy.ID),
		logger.Int("total", discrepancy.TotalDiscrepancies),
	)

	return &discrepancy, nil
}

// Resolve closes a discrepancy. Resolution never un-notifies.
func (s *Inventory) Resolve(ctx context.Context, eventID, discrepancyID, notes string) (*domain.InventoryDiscrepancy, error) {
	unlock := s.locks.Lock(eventID)
	defer unlock()

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	discrepancy := event.Discrepancy(discrepancyID)
	if discrepancy == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDiscrepancyNotFound, discrepancyID)
	}

	now := time.Now().UTC()
	discrepancy.Resolved = true
	discrepancy.ResolvedAt = &now
	discrepancy.ResolutionNotes = notes
	event.UpdatedAt = now

	if err := s.events.Save(ctx, event); err != nil {
		return nil, fmt.Errorf("save event: %w", err)
	}

	s.logger.Info("inventory discrepancy resolved",
		logger.String("event_id", eventID),
		logger.String("discrepancy_id", discrepancyID),
	)

	result := *discrepancy
	return &result, nil
}
