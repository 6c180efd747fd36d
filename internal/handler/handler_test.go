package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/handler/dto"
	hmocks "github.com/lashonsvoice-bot/rork-vendo-sub001/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockWorkflowSvc, *hmocks.MockCheckInSvc, *hmocks.MockInventorySvc, *hmocks.MockVisibilitySvc, http.Handler) {
	t.Helper()
	workflowSvc := hmocks.NewMockWorkflowSvc(t)
	checkInSvc := hmocks.NewMockCheckInSvc(t)
	inventorySvc := hmocks.NewMockInventorySvc(t)
	visibilitySvc := hmocks.NewMockVisibilitySvc(t)

	h := NewHandler(workflowSvc, checkInSvc, inventorySvc, visibilitySvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListVisibleEvents)
		api.GET("/events/:id", h.GetEvent)
		api.POST("/events/:id/proposal", h.SendProposal)
		api.POST("/events/:id/host", h.ConnectHost)
		api.POST("/events/:id/applications", h.SubmitApplication)
		api.POST("/events/:id/contractors", h.SelectContractors)
		api.POST("/events/:id/materials", h.SendMaterials)
		api.PATCH("/events/:id/vendors/:contractorId", h.UpdateVendor)
		api.POST("/events/:id/vendors/:contractorId/funds", h.ReleaseFunds)
		api.POST("/events/:id/vendors/:contractorId/review", h.SubmitReview)
		api.POST("/events/:id/discrepancies", h.ReportDiscrepancy)
		api.POST("/events/:id/discrepancies/:discrepancyId/resolve", h.ResolveDiscrepancy)
		api.POST("/replay", h.ReplayQueue)
	}

	return workflowSvc, checkInSvc, inventorySvc, visibilitySvc, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	workflowSvc, _, _, _, r := setupRouter(t)

	event := &domain.Event{
		ID:        uuid.New().String(),
		Title:     "Farmers market",
		CreatedBy: domain.RoleBusiness,
		Status:    domain.StatusDraft,
	}
	workflowSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:           "Farmers market",
		CreatedBy:       "business",
		BusinessOwnerID: "biz-1",
		EventDate:       time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Farmers market", resp.Title)
	assert.Equal(t, "draft", resp.Status)
}

func TestHandler_CreateEvent_InvalidRole(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", map[string]any{
		"title":      "Bad",
		"created_by": "admin",
		"event_date": time.Now().Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	workflowSvc, _, _, _, r := setupRouter(t)

	id := uuid.New().String()
	workflowSvc.EXPECT().GetEvent(mock.Anything, id).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListVisibleEvents(t *testing.T) {
	_, _, _, visibilitySvc, r := setupRouter(t)

	visibilitySvc.EXPECT().VisibleEvents(mock.Anything, domain.RoleContractor, "c1").
		Return([]*domain.Event{{ID: uuid.New().String(), HostConnected: true}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events?role=contractor&actor_id=c1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.True(t, resp[0].HostConnected)
}

// --- Workflow transitions ---

func TestHandler_ConnectHost_Conflict(t *testing.T) {
	workflowSvc, _, _, _, r := setupRouter(t)

	id := uuid.New().String()
	workflowSvc.EXPECT().ConnectHost(mock.Anything, id, "host-2").
		Return(nil, domain.ErrPreconditionFailed)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+id+"/host", dto.ConnectHostRequest{HostID: "host-2"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SelectContractors_Success(t *testing.T) {
	workflowSvc, _, _, _, r := setupRouter(t)

	id := uuid.New().String()
	event := &domain.Event{
		ID:                  id,
		Status:              domain.StatusContractorsHired,
		SelectedContractors: []string{"c1"},
		Vendors:             []domain.VendorCheckIn{{ContractorID: "c1"}},
	}
	workflowSvc.EXPECT().SelectContractors(mock.Anything, id, []string{"c1"}).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+id+"/contractors", dto.SelectContractorsRequest{
		ContractorIDs: []string{"c1"},
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Vendors, 1)
	assert.False(t, resp.Vendors[0].ArrivalConfirmed)
}

func TestHandler_SelectContractors_EmptyList(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	id := uuid.New().String()
	w := doJSON(t, r, http.MethodPost, "/api/events/"+id+"/contractors", dto.SelectContractorsRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Vendor check-in ---

func TestHandler_UpdateVendor_Applied(t *testing.T) {
	_, checkInSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	checkInSvc.EXPECT().UpdateVendor(mock.Anything, id, "c1", mock.Anything).
		Return(&domain.VendorCheckIn{ContractorID: "c1", ArrivalConfirmed: true}, nil)

	arrived := true
	w := doJSON(t, r, http.MethodPatch, "/api/events/"+id+"/vendors/c1", dto.VendorPatchRequest{
		ArrivalConfirmed: &arrived,
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.VendorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.ArrivalConfirmed)
}

func TestHandler_UpdateVendor_QueuedOffline(t *testing.T) {
	_, checkInSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	checkInSvc.EXPECT().UpdateVendor(mock.Anything, id, "c1", mock.Anything).Return(nil, nil)

	arrived := true
	w := doJSON(t, r, http.MethodPatch, "/api/events/"+id+"/vendors/c1", dto.VendorPatchRequest{
		ArrivalConfirmed: &arrived,
	})

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp dto.QueuedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "queued", resp.Status)
}

func TestHandler_UpdateVendor_OutOfOrder(t *testing.T) {
	_, checkInSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	checkInSvc.EXPECT().UpdateVendor(mock.Anything, id, "c1", mock.Anything).
		Return(nil, domain.ErrInvalidOrder)

	halfway := true
	w := doJSON(t, r, http.MethodPatch, "/api/events/"+id+"/vendors/c1", dto.VendorPatchRequest{
		HalfwayConfirmed: &halfway,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SubmitReview_ResponseRequired(t *testing.T) {
	_, checkInSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	checkInSvc.EXPECT().SubmitReview(mock.Anything, id, "c1", mock.Anything).
		Return(nil, domain.ErrResponseRequired)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+id+"/vendors/c1/review", dto.SubmitReviewRequest{
		Rating: 1,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SubmitReview_Created(t *testing.T) {
	_, checkInSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	vendor := &domain.VendorCheckIn{
		ContractorID:  "c1",
		FundsReleased: true,
		Review:        &domain.VendorReview{Rating: 5, IsRehirable: true, CreatedAt: time.Now()},
	}
	checkInSvc.EXPECT().SubmitReview(mock.Anything, id, "c1", mock.Anything).Return(vendor, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+id+"/vendors/c1/review", dto.SubmitReviewRequest{
		Rating: 5,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.VendorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Review)
	assert.True(t, resp.Review.IsRehirable)
}

func TestHandler_ReleaseFunds_Conflict(t *testing.T) {
	_, checkInSvc, _, _, r := setupRouter(t)

	id := uuid.New().String()
	checkInSvc.EXPECT().ReleaseFunds(mock.Anything, id, "c1").
		Return(nil, domain.ErrPreconditionFailed)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+id+"/vendors/c1/funds", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Inventory ---

func TestHandler_ReportDiscrepancy_Created(t *testing.T) {
	_, _, inventorySvc, _, r := setupRouter(t)

	id := uuid.New().String()
	inventorySvc.EXPECT().Report(mock.Anything, id, mock.Anything, "torn box").
		Return(&domain.InventoryDiscrepancy{
			ID:                    uuid.New().String(),
			TotalDiscrepancies:    1,
			BusinessOwnerNotified: true,
			ReportedAt:            time.Now(),
		}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+id+"/discrepancies", dto.ReportDiscrepancyRequest{
		Items: []dto.InventoryItemRequest{
			{Name: "flyers", ExpectedQuantity: 500, ReceivedQuantity: 380, DiscrepancyType: "missing"},
		},
		Notes: "torn box",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.DiscrepancyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.TotalDiscrepancies)
	assert.True(t, resp.BusinessOwnerNotified)
}

func TestHandler_ReportDiscrepancy_NoMismatch(t *testing.T) {
	_, _, inventorySvc, _, r := setupRouter(t)

	id := uuid.New().String()
	inventorySvc.EXPECT().Report(mock.Anything, id, mock.Anything, "").Return(nil, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+id+"/discrepancies", dto.ReportDiscrepancyRequest{
		Items: []dto.InventoryItemRequest{
			{Name: "banners", ExpectedQuantity: 10, ReceivedQuantity: 10},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "no discrepancies")
}

func TestHandler_ResolveDiscrepancy_NotFound(t *testing.T) {
	_, _, inventorySvc, _, r := setupRouter(t)

	id := uuid.New().String()
	inventorySvc.EXPECT().Resolve(mock.Anything, id, "d1", mock.Anything).
		Return(nil, domain.ErrDiscrepancyNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+id+"/discrepancies/d1/resolve", dto.ResolveDiscrepancyRequest{})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Offline queue ---

func TestHandler_ReplayQueue_ReportsRejections(t *testing.T) {
	_, checkInSvc, _, _, r := setupRouter(t)

	checkInSvc.EXPECT().ReplayPending(mock.Anything).
		Return([]error{errors.New("action a2 rejected: check-in stage out of order")})

	w := doJSON(t, r, http.MethodPost, "/api/replay", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReplayResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "out of order")
}

func TestHandler_InternalErrorIsOpaque(t *testing.T) {
	workflowSvc, _, _, _, r := setupRouter(t)

	id := uuid.New().String()
	workflowSvc.EXPECT().SendProposal(mock.Anything, id).Return(nil, errors.New("pq: terminating connection"))

	w := doJSON(t, r, http.MethodPost, "/api/events/"+id+"/proposal", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "pq:")
}
