package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type WorkflowSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetEvent(ctx context.Context, id string) (*domain.Event, error)
	SendProposal(ctx context.Context, eventID string) (*domain.Event, error)
	ConnectHost(ctx context.Context, eventID, hostID string) (*domain.Event, error)
	SubmitApplication(ctx context.Context, eventID, contractorID, message string) (*domain.Event, error)
	SelectContractors(ctx context.Context, eventID string, contractorIDs []string) (*domain.Event, error)
	SendMaterials(ctx context.Context, eventID, trackingNumber, description string) (*domain.Event, error)
}

type CheckInSvc interface {
	UpdateVendor(ctx context.Context, eventID, contractorID string, patch domain.VendorPatch) (*domain.VendorCheckIn, error)
	ReleaseFunds(ctx context.Context, eventID, contractorID string) (*domain.VendorCheckIn, error)
	SubmitReview(ctx context.Context, eventID, contractorID string, input domain.ReviewInput) (*domain.VendorCheckIn, error)
	ReplayPending(ctx context.Context) []error
}

type InventorySvc interface {
	Report(ctx context.Context, eventID string, items []domain.InventoryItem, notes string) (*domain.InventoryDiscrepancy, error)
	Resolve(ctx context.Context, eventID, discrepancyID, notes string) (*domain.InventoryDiscrepancy, error)
}

type VisibilitySvc interface {
	VisibleEvents(ctx context.Context, role domain.Role, actorID string) ([]*domain.Event, error)
}

type Handler struct {
	workflow   WorkflowSvc
	checkIn    CheckInSvc
	inventory  InventorySvc
	visibility VisibilitySvc
}

func NewHandler(workflow WorkflowSvc, checkIn CheckInSvc, inventory InventorySvc, visibility VisibilitySvc) *Handler {
	return &Handler{
		workflow:   workflow,
		checkIn:    checkIn,
		inventory:  inventory,
		visibility: visibility,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339",
		})
		return
	}

	input := domain.CreateEventInput{
		Title:                req.Title,
		Description:          req.Description,
		Location:             req.Location,
		CreatedBy:            domain.Role(req.CreatedBy),
		BusinessOwnerID:      req.BusinessOwnerID,
		EventHostID:          req.EventHostID,
		EventDate:            eventDate,
		ContractorsNeeded:    req.ContractorsNeeded,
		TotalVendorSpaces:    req.TotalVendorSpaces,
		ContractorPay:        req.ContractorPay,
		HostSupervisionFee:   req.HostSupervisionFee,
		FoodStipend:          req.FoodStipend,
		TravelStipend:        req.TravelStipend,
		StipendReleaseMethod: domain.StipendReleaseMethod(req.StipendReleaseMethod),
	}
	for _, t := range req.TableOptions {
		input.TableOptions = append(input.TableOptions, domain.TableOption{
			ID:                  uuid.New().String(),
			Size:                t.Size,
			Quantity:            t.Quantity,
			ContractorsPerTable: t.ContractorsPerTable,
			Price:               t.Price,
		})
	}

	event, err := h.workflow.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.workflow.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListVisibleEvents(c *ginext.Context) {
	role := domain.Role(c.Query("role"))
	actorID := c.Query("actor_id")

	events, err := h.visibility.VisibleEvents(c.Request.Context(), role, actorID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

// Workflow transitions

func (h *Handler) SendProposal(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.workflow.SendProposal(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ConnectHost(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.ConnectHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.workflow.ConnectHost(c.Request.Context(), id, req.HostID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) SubmitApplication(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.workflow.SubmitApplication(c.Request.Context(), id, req.ContractorID, req.Message)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) SelectContractors(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.SelectContractorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.workflow.SelectContractors(c.Request.Context(), id, req.ContractorIDs)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) SendMaterials(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.SendMaterialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.workflow.SendMaterials(c.Request.Context(), id, req.TrackingNumber, req.Description)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// Vendor check-in

func (h *Handler) UpdateVendor(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}
	contractorID := c.Param("contractorId")

	var req dto.VendorPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	patch := domain.VendorPatch{
		ArrivalConfirmed: req.ArrivalConfirmed,
		ArrivalTime:      req.ArrivalTime,
		HalfwayConfirmed: req.HalfwayConfirmed,
		HalfwayTime:      req.HalfwayTime,
		EndConfirmed:     req.EndConfirmed,
		EndTime:          req.EndTime,
		Notes:            req.Notes,
		EventPhotos:      req.EventPhotos,
		TableLabel:       req.TableLabel,
	}

	vendor, err := h.checkIn.UpdateVendor(c.Request.Context(), id, contractorID, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if vendor == nil {
		// Offline: the patch is queued for replay.
		c.JSON(http.StatusAccepted, dto.QueuedResponse{Status: "queued"})
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

func (h *Handler) ReleaseFunds(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	vendor, err := h.checkIn.ReleaseFunds(c.Request.Context(), id, c.Param("contractorId"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

func (h *Handler) SubmitReview(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	vendor, err := h.checkIn.SubmitReview(c.Request.Context(), id, c.Param("contractorId"), domain.ReviewInput{
		Rating:       req.Rating,
		Tip:          req.Tip,
		HostResponse: req.HostResponse,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVendorResponse(vendor))
}

// Inventory

func (h *Handler) ReportDiscrepancy(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.ReportDiscrepancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	items := make([]domain.InventoryItem, 0, len(req.Items))
	for _, item := range req.Items {
		itemID := item.ID
		if itemID == "" {
			itemID = uuid.New().String()
		}
		items = append(items, domain.InventoryItem{
			ID:               itemID,
			Name:             item.Name,
			ExpectedQuantity: item.ExpectedQuantity,
			ReceivedQuantity: item.ReceivedQuantity,
			DiscrepancyType:  domain.DiscrepancyType(item.DiscrepancyType),
		})
	}

	discrepancy, err := h.inventory.Report(c.Request.Context(), id, items, req.Notes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if discrepancy == nil {
		c.JSON(http.StatusOK, ginext.H{"status": "no discrepancies"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToDiscrepancyResponse(discrepancy))
}

func (h *Handler) ResolveDiscrepancy(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.ResolveDiscrepancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	discrepancy, err := h.inventory.Resolve(c.Request.Context(), id, c.Param("discrepancyId"), req.Notes)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDiscrepancyResponse(discrepancy))
}

// Offline queue

func (h *Handler) ReplayQueue(c *ginext.Context) {
	errs := h.checkIn.ReplayPending(c.Request.Context())

	resp := dto.ReplayResponse{Errors: make([]string, 0, len(errs))}
	for _, err := range errs {
		resp.Errors = append(resp.Errors, err.Error())
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrVendorNotFound),
		errors.Is(err, domain.ErrContractorNotFound),
		errors.Is(err, domain.ErrDiscrepancyNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPreconditionFailed),
		errors.Is(err, domain.ErrInvalidOrder):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrResponseRequired),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
