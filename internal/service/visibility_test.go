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

func TestVisibility_ContractorSeesConnectedEvents(t *testing.T) {
	events := mocks.NewMockEventRepo(t)
	svc := NewVisibility(events)

	visible := []*domain.Event{{ID: "e1", HostConnected: true}}
	events.EXPECT().ListVisible(mock.Anything, domain.RoleContractor, "c1").Return(visible, nil)

	got, err := svc.VisibleEvents(context.Background(), domain.RoleContractor, "c1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].ID)
}

func TestVisibility_UnknownRole(t *testing.T) {
	events := mocks.NewMockEventRepo(t)
	svc := NewVisibility(events)

	_, err := svc.VisibleEvents(context.Background(), domain.Role("admin"), "a1")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestVisibility_EmptyActorID(t *testing.T) {
	events := mocks.NewMockEventRepo(t)
	svc := NewVisibility(events)

	_, err := svc.VisibleEvents(context.Background(), domain.RoleHost, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
