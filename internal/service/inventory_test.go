package service

import (
	"context"
	"testing"

	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInventory(t *testing.T) (*Inventory, *mocks.MockEventRepo, *mocks.MockPublisher) {
	t.Helper()
	events := mocks.NewMockEventRepo(t)
	bus := mocks.NewMockPublisher(t)
	return NewInventory(events, bus, NewEventLocks(), newTestLogger(t)), events, bus
}

func TestDetect_FiltersToMismatchedItems(t *testing.T) {
	items := []domain.InventoryItem{
		{Name: "banners", ExpectedQuantity: 10, ReceivedQuantity: 10},
		{Name: "flyers", ExpectedQuantity: 500, ReceivedQuantity: 380, DiscrepancyType: domain.DiscrepancyMissing},
		{Name: "tablecloths", ExpectedQuantity: 5, ReceivedQuantity: 4}, // mismatch without a type is not flagged
		{Name: "samples", ExpectedQuantity: 100, ReceivedQuantity: 120, DiscrepancyType: domain.DiscrepancyExtra},
	}

	mismatched := Detect(items)

	require.Len(t, mismatched, 2)
	assert.Equal(t, "flyers", mismatched[0].Name)
	assert.Equal(t, "samples", mismatched[1].Name)
}

func TestInventory_Report_NoMismatchIsNil(t *testing.T) {
	svc, _, _ := newInventory(t)

	items := []domain.InventoryItem{
		{Name: "banners", ExpectedQuantity: 10, ReceivedQuantity: 10},
	}

	discrepancy, err := svc.Report(context.Background(), "e1", items, "")

	require.NoError(t, err)
	assert.Nil(t, discrepancy)
}

func TestInventory_Report_NotifiesBusinessOwner(t *testing.T) {
	svc, events, bus := newInventory(t)

	event := &domain.Event{
		ID:              "e1",
		Title:           "Expo",
		BusinessOwnerID: "biz-1",
		EventHostID:     "host-1",
	}
	events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	events.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	bus.EXPECT().Publish(mock.Anything, mock.Anything).Run(func(ctx context.Context, ev domain.DomainEvent) {
		reported, ok := ev.(*domain.DiscrepancyReported)
		require.True(t, ok)
		assert.Equal(t, "biz-1", reported.BusinessID)
		assert.Equal(t, 1, reported.TotalDiscrepancies)
	}).Return()

	items := []domain.InventoryItem{
		{Name: "flyers", ExpectedQuantity: 500, ReceivedQuantity: 380, DiscrepancyType: domain.DiscrepancyMissing},
	}

	discrepancy, err := svc.Report(context.Background(), "e1", items, "box arrived torn")

	require.NoError(t, err)
	require.NotNil(t, discrepancy)
	assert.True(t, discrepancy.BusinessOwnerNotified)
	assert.Equal(t, 1, discrepancy.TotalDiscrepancies)
	assert.Equal(t, "host-1", discrepancy.ReportedBy)
	require.Len(t, event.InventoryDiscrepancies, 1)
}

func TestInventory_Report_DispatchPrecedesNotifiedMark(t *testing.T) {
	svc, events, bus := newInventory(t)

	event := &domain.Event{
		ID:              "e1",
		BusinessOwnerID: "biz-1",
		EventHostID:     "host-1",
	}
	events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)

	var order []string
	bus.EXPECT().Publish(mock.Anything, mock.Anything).Run(func(ctx context.Context, ev domain.DomainEvent) {
		order = append(order, "publish")
	}).Return()
	events.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, e *domain.Event) error {
		order = append(order, "save")
		require.Len(t, e.InventoryDiscrepancies, 1)
		assert.True(t, e.InventoryDiscrepancies[0].BusinessOwnerNotified)
		return nil
	})

	items := []domain.InventoryItem{
		{Name: "flyers", ExpectedQuantity: 500, ReceivedQuantity: 380, DiscrepancyType: domain.DiscrepancyMissing},
	}

	_, err := svc.Report(context.Background(), "e1", items, "")

	require.NoError(t, err)
	assert.Equal(t, []string{"publish", "save"}, order)
}

func TestInventory_Report_ClaimedEventEscalatesToClaimingBusiness(t *testing.T) {
	svc, events, bus := newInventory(t)

	event := &domain.Event{
		ID:                   "e1",
		BusinessOwnerID:      "biz-1",
		SelectedByBusinessID: "biz-2",
		EventHostID:          "host-1",
	}
	events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	events.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	bus.EXPECT().Publish(mock.Anything, mock.Anything).Run(func(ctx context.Context, ev domain.DomainEvent) {
		reported := ev.(*domain.DiscrepancyReported)
		assert.Equal(t, "biz-2", reported.BusinessID)
	}).Return()

	items := []domain.InventoryItem{
		{Name: "banners", ExpectedQuantity: 3, ReceivedQuantity: 1, DiscrepancyType: domain.DiscrepancyLostPackage},
	}

	_, err := svc.Report(context.Background(), "e1", items, "")
	require.NoError(t, err)
}

func TestInventory_Report_NoBusinessPartyRecordsWithoutNotice(t *testing.T) {
	svc, events, _ := newInventory(t)

	event := &domain.Event{ID: "e1", EventHostID: "host-1"}
	events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	events.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	// no Publish: there is nobody to escalate to

	items := []domain.InventoryItem{
		{Name: "flyers", ExpectedQuantity: 10, ReceivedQuantity: 0, DiscrepancyType: domain.DiscrepancyMissing},
	}

	discrepancy, err := svc.Report(context.Background(), "e1", items, "")

	require.NoError(t, err)
	require.NotNil(t, discrepancy)
	assert.False(t, discrepancy.BusinessOwnerNotified)
}

func TestInventory_Resolve_ClosesDiscrepancy(t *testing.T) {
	svc, events, _ := newInventory(t)

	event := &domain.Event{
		ID: "e1",
		InventoryDiscrepancies: []domain.InventoryDiscrepancy{
			{ID: "d1", TotalDiscrepancies: 2, BusinessOwnerNotified: true},
		},
	}
	events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	events.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	resolved, err := svc.Resolve(context.Background(), "e1", "d1", "replacement shipped")

	require.NoError(t, err)
	assert.True(t, resolved.Resolved)
	require.NotNil(t, resolved.ResolvedAt)
	assert.Equal(t, "replacement shipped", resolved.ResolutionNotes)
	assert.True(t, resolved.BusinessOwnerNotified) // resolution never un-notifies
}

func TestInventory_Resolve_UnknownDiscrepancy(t *testing.T) {
	svc, events, _ := newInventory(t)

	events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)

	_, err := svc.Resolve(context.Background(), "e1", "ghost", "")

	assert.ErrorIs(t, err, domain.ErrDiscrepancyNotFound)
}
