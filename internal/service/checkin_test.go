package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func newCheckIn(t *testing.T) (*CheckIn, *mocks.MockEventRepo, *mocks.MockOfflineActionRepo, *mocks.MockConnectivity, *mocks.MockPublisher) {
	t.Helper()
	events := mocks.NewMockEventRepo(t)
	actions := mocks.NewMockOfflineActionRepo(t)
	online := mocks.NewMockConnectivity(t)
	bus := mocks.NewMockPublisher(t)
	queue := NewOfflineQueue(actions, newTestLogger(t))
	svc := NewCheckIn(events, queue, online, bus, NewEventLocks(), newTestLogger(t))
	return svc, events, actions, online, bus
}

func eventWithVendor(vendor domain.VendorCheckIn) *domain.Event {
	return &domain.Event{
		ID:          "e1",
		Title:       "Expo",
		EventHostID: "host-1",
		Status:      domain.StatusMaterialsSent,
		Vendors:     []domain.VendorCheckIn{vendor},
	}
}

func TestCheckIn_UpdateVendor_ConfirmsArrival(t *testing.T) {
	svc, events, _, online, _ := newCheckIn(t)

	online.EXPECT().Online().Return(true)
	events.EXPECT().GetByID(mock.Anything, "e1").Return(eventWithVendor(domain.VendorCheckIn{ContractorID: "c1"}), nil)
	events.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	vendor, err := svc.UpdateVendor(context.Background(), "e1", "c1", domain.VendorPatch{
		ArrivalConfirmed: boolPtr(true),
		ArrivalTime:      strPtr("09:00"),
	})

	require.NoError(t, err)
	require.NotNil(t, vendor)
	assert.True(t, vendor.ArrivalConfirmed)
	assert.Equal(t, "09:00", vendor.ArrivalTime)
}

func TestCheckIn_UpdateVendor_HalfwayBeforeArrivalRejected(t *testing.T) {
	svc, events, _, online, _ := newCheckIn(t)

	online.EXPECT().Online().Return(true)
	events.EXPECT().GetByID(mock.Anything, "e1").Return(eventWithVendor(domain.VendorCheckIn{ContractorID: "c1"}), nil)

	_, err := svc.UpdateVendor(context.Background(), "e1", "c1", domain.VendorPatch{
		HalfwayConfirmed: boolPtr(true),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidOrder)
}

func TestCheckIn_UpdateVendor_EndBeforeHalfwayRejected(t *testing.T) {
	svc, events, _, online, _ := newCheckIn(t)

	online.EXPECT().Online().Return(true)
	events.EXPECT().GetByID(mock.Anything, "e1").Return(eventWithVendor(domain.VendorCheckIn{
		ContractorID:     "c1",
		ArrivalConfirmed: true,
	}), nil)

	_, err := svc.UpdateVendor(context.Background(), "e1", "c1", domain.VendorPatch{
		EndConfirmed: boolPtr(true),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidOrder)
}

func TestCheckIn_UpdateVendor_RejectionWritesNothing(t *testing.T) {
	svc, events, _, online, _ := newCheckIn(t)

	event := eventWithVendor(domain.VendorCheckIn{ContractorID: "c1"})
	online.EXPECT().Online().Return(true)
	events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	// no Save expectation: a rejected patch must not reach storage

	_, err := svc.UpdateVendor(context.Background(), "e1", "c1", domain.VendorPatch{
		HalfwayConfirmed: boolPtr(true),
	})

	require.ErrorIs(t, err, domain.ErrInvalidOrder)
	assert.False(t, event.Vendors[0].HalfwayConfirmed)
}

func TestCheckIn_UpdateVendor_UnknownVendor(t *testing.T) {
	svc, events, _, online, _ := newCheckIn(t)

	online.EXPECT().Online().Return(true)
	events.EXPECT().GetByID(mock.Anything, "e1").Return(eventWithVendor(domain.VendorCheckIn{ContractorID: "c1"}), nil)

	_, err := svc.UpdateVendor(context.Background(), "e1", "ghost", domain.VendorPatch{
		ArrivalConfirmed: boolPtr(true),
	})

	assert.ErrorIs(t, err, domain.ErrVendorNotFound)
}

func TestCheckIn_UpdateVendor_OfflineQueuesAction(t *testing.T) {
	svc, _, actions, online, _ := newCheckIn(t)

	online.EXPECT().Online().Return(false)
	actions.EXPECT().Append(mock.Anything, mock.Anything).Run(func(ctx context.Context, a *domain.OfflineAction) {
		assert.Equal(t, "e1", a.EventID)
		assert.Equal(t, "c1", a.ContractorID)
		assert.NotEmpty(t, a.ID)
	}).Return(nil)

	vendor, err := svc.UpdateVendor(context.Background(), "e1", "c1", domain.VendorPatch{
		ArrivalConfirmed: boolPtr(true),
	})

	require.NoError(t, err)
	assert.Nil(t, vendor) // queued, not applied
}

func TestCheckIn_FullChainInOrder(t *testing.T) {
	svc, events, _, online, _ := newCheckIn(t)

	event := eventWithVendor(domain.VendorCheckIn{ContractorID: "c1"})
	online.EXPECT().Online().Return(true)
	events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	events.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	stages := []domain.VendorPatch{
		{ArrivalConfirmed: boolPtr(true)},
		{HalfwayConfirmed: boolPtr(true)},
		{EndConfirmed: boolPtr(true)},
	}
	for _, patch := range stages {
		_, err := svc.UpdateVendor(context.Background(), "e1", "c1", patch)
		require.NoError(t, err)
	}

	assert.True(t, event.Vendors[0].ArrivalConfirmed)
	assert.True(t, event.Vendors[0].HalfwayConfirmed)
	assert.True(t, event.Vendors[0].EndConfirmed)
}

// Applying the three stage confirmations in any order must end either fully
// confirmed (when the order happened to be valid) or partially confirmed with
// every rejected step leaving no trace.
func TestCheckIn_StageOrderProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for run := 0; run < 50; run++ {
		events := mocks.NewMockEventRepo(t)
		online := mocks.NewMockConnectivity(t)
		queue := NewOfflineQueue(mocks.NewMockOfflineActionRepo(t), newTestLogger(t))
		svc := NewCheckIn(events, queue, online, mocks.NewMockPublisher(t), NewEventLocks(), newTestLogger(t))

		event := eventWithVendor(domain.VendorCheckIn{ContractorID: "c1"})
		online.EXPECT().Online().Return(true).Maybe()
		events.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil).Maybe()
		events.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Maybe()

		patches := []domain.VendorPatch{
			{ArrivalConfirmed: boolPtr(true)},
			{HalfwayConfirmed: boolPtr(true)},
			{EndConfirmed: boolPtr(true)},
		}
		rng.Shuffle(len(patches), func(i, j int) {
			patches[i], patches[j] = patches[j], patches[i]
		})

		for _, patch := range patches {
			_, err := svc.UpdateVendor(context.Background(), "e1", "c1", patch)
			if err != nil {
				require.ErrorIs(t, err, domain.ErrInvalidOrder)
			}
		}

		v := event.Vendors[0]
		if v.HalfwayConfirmed {
			assert.True(t, v.ArrivalConfirmed)
		}
		if v.EndConfirmed {
			assert.True(t, v.HalfwayConfirmed)
		}
	}
}

func TestCheckIn_ReleaseFunds_RequiresEndConfirmed(t *testing.T) {
	svc, events, _, _, _ := newCheckIn(t)

	events.EXPECT().GetByID(mock.Anything, "e1").Return(eventWithVendor(domain.VendorCheckIn{
		ContractorID:     "c1",
		ArrivalConfirmed: true,
		HalfwayConfirmed: true,
	}), nil)

	_, err := svc.ReleaseFunds(context.Background(), "e1", "c1")

	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
}

func TestCheckIn_ReleaseFunds_OncePerVendor(t *testing.T) {
	svc, events, _, _, _ := newCheckIn(t)

	events.EXPECT().GetByID(mock.Anything, "e1").Return(eventWithVendor(domain.VendorCheckIn{
		ContractorID:     "c1",
		ArrivalConfirmed: true,
		HalfwayConfirmed: true,
		EndConfirmed:     true,
		FundsReleased:    true,
	}), nil)

	_, err := svc.ReleaseFunds(context.Background(), "e1", "c1")

	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
}

func TestCheckIn_ReleaseFunds_PublishesPayout(t *testing.T) {
	svc, events, _, _, bus := newCheckIn(t)

	events.EXPECT().GetByID(mock.Anything, "e1").Return(eventWithVendor(domain.VendorCheckIn{
		ContractorID:     "c1",
		ArrivalConfirmed: true,
		HalfwayConfirmed: true,
		EndConfirmed:     true,
	}), nil)
	events.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	bus.EXPECT().Publish(mock.Anything, mock.Anything).Run(func(ctx context.Context, ev domain.DomainEvent) {
		released, ok := ev.(*domain.FundsReleased)
		require.True(t, ok)
		assert.Equal(t, "c1", released.ContractorID)
	}).Return()

	vendor, err := svc.ReleaseFunds(context.Background(), "e1", "c1")

	require.NoError(t, err)
	assert.True(t, vendor.FundsReleased)
}

func TestCheckIn_SubmitReview_RequiresFundsReleased(t *testing.T) {
	svc, events, _, _, _ := newCheckIn(t)

	events.EXPECT().GetByID(mock.Anything, "e1").Return(eventWithVendor(domain.VendorCheckIn{
		ContractorID:     "c1",
		ArrivalConfirmed: true,
		HalfwayConfirmed: true,
		EndConfirmed:     true,
	}), nil)

	_, err := svc.SubmitReview(context.Background(), "e1", "c1", domain.ReviewInput{Rating: 5})

	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
}

func TestCheckIn_SubmitReview_OneStarNeedsResponse(t *testing.T) {
	svc, events, _, _, _ := newCheckIn(t)

	events.EXPECT().GetByID(mock.Anything, "e1").Return(eventWithVendor(domain.VendorCheckIn{
		ContractorID:     "c1",
		ArrivalConfirmed: true,
		HalfwayConfirmed: true,
		EndConfirmed:     true,
		FundsReleased:    true,
	}), nil)

	_, err := svc.SubmitReview(context.Background(), "e1", "c1", domain.ReviewInput{Rating: 1})

	assert.ErrorIs(t, err, domain.ErrResponseRequired)
}

func TestCheckIn_SubmitReview_OneStarNotRehirable(t *testing.T) {
	svc, events, _, _, bus := newCheckIn(t)

	events.EXPECT().GetByID(mock.Anything, "e1").Return(eventWithVendor(domain.VendorCheckIn{
		ContractorID:     "c1",
		ArrivalConfirmed: true,
		HalfwayConfirmed: true,
		EndConfirmed:     true,
		FundsReleased:    true,
	}), nil)
	events.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	bus.EXPECT().Publish(mock.Anything, mock.Anything).Return()

	vendor, err := svc.SubmitReview(context.Background(), "e1", "c1", domain.ReviewInput{
		Rating:       1,
		HostResponse: "did not show up for half the shift",
	})

	require.NoError(t, err)
	require.NotNil(t, vendor.Review)
	assert.False(t, vendor.Review.IsRehirable)
}

func TestCheckIn_SubmitReview_TwoStarsRehirable(t *testing.T) {
	svc, events, _, _, bus := newCheckIn(t)

	events.EXPECT().GetByID(mock.Anything, "e1").Return(eventWithVendor(domain.VendorCheckIn{
		ContractorID:     "c1",
		ArrivalConfirmed: true,
		HalfwayConfirmed: true,
		EndConfirmed:     true,
		FundsReleased:    true,
	}), nil)
	events.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	bus.EXPECT().Publish(mock.Anything, mock.Anything).Return()

	vendor, err := svc.SubmitReview(context.Background(), "e1", "c1", domain.ReviewInput{Rating: 2})

	require.NoError(t, err)
	assert.True(t, vendor.Review.IsRehirable)
}

func TestCheckIn_SubmitReview_Immutable(t *testing.T) {
	svc, events, _, _, _ := newCheckIn(t)

	events.EXPECT().GetByID(mock.Anything, "e1").Return(eventWithVendor(domain.VendorCheckIn{
		ContractorID:     "c1",
		ArrivalConfirmed: true,
		HalfwayConfirmed: true,
		EndConfirmed:     true,
		FundsReleased:    true,
		Review:           &domain.VendorReview{Rating: 4},
	}), nil)

	_, err := svc.SubmitReview(context.Background(), "e1", "c1", domain.ReviewInput{Rating: 5})

	assert.ErrorIs(t, err, domain.ErrPreconditionFailed)
}

func TestCheckIn_SubmitReview_RatingOutOfRange(t *testing.T) {
	svc, _, _, _, _ := newCheckIn(t)

	_, err := svc.SubmitReview(context.Background(), "e1", "c1", domain.ReviewInput{Rating: 6})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
