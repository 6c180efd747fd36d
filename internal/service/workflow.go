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

// Workflow validates and applies event lifecycle transitions. A guard
// violation returns domain.ErrPreconditionFailed and mutates nothing; side
// effects fire synchronously through the bus only after a successful save.
type Workflow struct {
	events ports.EventRepo
	bus    ports.Publisher
	locks  *EventLocks
	logger logger.Logger
}

func NewWorkflow(events ports.EventRepo, bus ports.Publisher, locks *EventLocks, logger logger.Logger) *Workflow {
	return &Workflow{
		events: events,
		bus:    bus,
		locks:  locks,
		logger: logger,
	}
}

func (s *Workflow) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if !input.CreatedBy.Valid() {
		return nil, fmt.Errorf("%w: unknown creator role %q", domain.ErrValidation, input.CreatedBy)
	}
	if input.ContractorsNeeded < 0 {
		return nil, fmt.Errorf("%w: contractors_needed must not be negative", domain.ErrValidation)
	}

	status := domain.StatusDraft
	if input.CreatedBy == domain.RoleHost {
		// Host listings are immediately open for business selection.
		status = domain.StatusActive
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:                   uuid.New().String(),
		Title:                input.Title,
		Description:          input.Description,
		Location:             input.Location,
		CreatedBy:            input.CreatedBy,
		BusinessOwnerID:      input.BusinessOwnerID,
		EventHostID:          input.EventHostID,
		Status:               status,
		HostConnected:        input.CreatedBy == domain.RoleHost && input.EventHostID != "",
		ContractorsNeeded:    input.ContractorsNeeded,
		TableOptions:         input.TableOptions,
		TotalVendorSpaces:    input.TotalVendorSpaces,
		ContractorPay:        input.ContractorPay,
		HostSupervisionFee:   input.HostSupervisionFee,
		FoodStipend:          input.FoodStipend,
		TravelStipend:        input.TravelStipend,
		StipendReleaseMethod: input.StipendReleaseMethod,
		EventDate:            input.EventDate,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("created_by", string(event.CreatedBy)),
		logger.String("status", string(event.Status)),
	)

	return event, nil
}

func (s *Workflow) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

// SendProposal marks a business-created event as proposed to hosts. Allowed
// once, and only before a host connects.
func (s *Workflow) SendProposal(ctx context.Context, eventID string) (*domain.Event, error) {
	unlock := s.locks.Lock(eventID)
	defer unlock()

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		metrics.Transitions.WithLabelValues("send_proposal", "error").Inc()
		return nil, fmt.Errorf("get event: %w", err)
	}

	if event.CreatedBy != domain.RoleBusiness {
		metrics.Transitions.WithLabelValues("send_proposal", "rejected").Inc()
		return nil, fmt.Errorf("%w: only business-created events send proposals", domain.ErrPreconditionFailed)
	}
	if event.HostConnected {
		metrics.Transitions.WithLabelValues("send_proposal", "rejected").Inc()
		return nil, fmt.Errorf("%w: host already connected", domain.ErrPreconditionFailed)
	}
	if event.ProposalSent {
		metrics.Transitions.WithLabelValues("send_proposal", "rejected").Inc()
		return nil, fmt.Errorf("%w: proposal already sent", domain.ErrPreconditionFailed)
	}

	event.ProposalSent = true
	event.Status = domain.StatusAwaitingHost
	event.UpdatedAt = time.Now().UTC()

	if err := s.events.Save(ctx, event); err != nil {
		metrics.Transitions.WithLabelValues("send_proposal", "error").Inc()
		return nil, fmt.Errorf("save event: %w", err)
	}
	metrics.Transitions.WithLabelValues("send_proposal", "ok").Inc()

	s.logger.Info("proposal sent", logger.String("event_id", event.ID))

	return event, nil
}

// ConnectHost attaches a host to a business-created event and opens the
// public listing. A second call rejects with a precondition failure and
// leaves the first host in place.
func (s *Workflow) ConnectHost(ctx context.Context, eventID, hostID string) (*domain.Event, error) {
	if hostID == "" {
		return nil, fmt.Errorf("%w: host id is required", domain.ErrValidation)
	}

	unlock := s.locks.Lock(eventID)
	defer unlock()

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		metrics.Transitions.WithLabelValues("connect_host", "error").Inc()
		return nil, fmt.Errorf("get event: %w", err)
	}

	if event.CreatedBy != domain.RoleBusiness {
		metrics.Transitions.WithLabelValues("connect_host", "rejected").Inc()
		return nil, fmt.Errorf("%w: only business-created events accept a host", domain.ErrPreconditionFailed)
	}
	if event.HostConnected {
		metrics.Transitions.WithLabelValues("connect_host", "rejected").Inc()
		return nil, fmt.Errorf("%w: host already connected", domain.ErrPreconditionFailed)
	}

	event.EventHostID = hostID
	event.HostConnected = true
	event.Status = domain.StatusHostConnected
	event.IsPublicListing = true
	event.UpdatedAt = time.Now().UTC()

	if err := s.events.Save(ctx, event); err != nil {
		metrics.Transitions.WithLabelValues("connect_host", "error").Inc()
		return nil, fmt.Errorf("save event: %w", err)
	}
	metrics.Transitions.WithLabelValues("connect_host", "ok").Inc()

	s.logger.Info("host connected",
		logger.String("event_id", event.ID),
		logger.String("host_id", hostID),
	)

	return event, nil
}

// SubmitApplication appends a pending contractor application. Events accept
// applications once a host is connected.
func (s *Workflow) SubmitApplication(ctx context.Context, eventID, contractorID, message string) (*domain.Event, error) {
	if contractorID == "" {
		return nil, fmt.Errorf("%w: contractor id is required", domain.ErrValidation)
	}

	unlock := s.locks.Lock(eventID)
	defer unlock()

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		metrics.Transitions.WithLabelValues("submit_application", "error").Inc()
		return nil, fmt.Errorf("get event: %w", err)
	}

	if !event.HostConnected {
		metrics.Transitions.WithLabelValues("submit_application", "rejected").Inc()
		return nil, fmt.Errorf("%w: event is not accepting applications", domain.ErrPreconditionFailed)
	}
	for _, a := range event.ContractorApplications {
		if a.ContractorID == contractorID && a.Status != domain.ApplicationRejected {
			metrics.Transitions.WithLabelValues("submit_application", "rejected").Inc()
			return nil, fmt.Errorf("%w: contractor already applied", domain.ErrValidation)
		}
	}

	event.ContractorApplications = append(event.ContractorApplications, domain.ContractorApplication{
		ContractorID: contractorID,
		Message:      message,
		Status:       domain.ApplicationPending,
		AppliedAt:    time.Now().UTC(),
	})
	event.UpdatedAt = time.Now().UTC()

	if err := s.events.Save(ctx, event); err != nil {
		metrics.Transitions.WithLabelValues("submit_application", "error").Inc()
		return nil, fmt.Errorf("save event: %w", err)
	}
	metrics.Transitions.WithLabelValues("submit_application", "ok").Inc()

	s.logger.Info("application submitted",
		logger.String("event_id", event.ID),
		logger.String("contractor_id", contractorID),
	)

	return event, nil
}

// SelectContractors accepts the given applications, rejects the rest and
// derives a fresh vendor check-in list, one per selected contractor with all
// stages unset. The replace is wholesale: re-invoking recomputes vendors from
// scratch, discarding any in-progress check-in state.
func (s *Workflow) SelectContractors(ctx context.Context, eventID string, contractorIDs []string) (*domain.Event, error) {
	if len(contractorIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one contractor must be selected", domain.ErrValidation)
	}

	unlock := s.locks.Lock(eventID)
	defer unlock()

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		metrics.Transitions.WithLabelValues("select_contractors", "error").Inc()
		return nil, fmt.Errorf("get event: %w", err)
	}

	if !event.HostConnected {
		metrics.Transitions.WithLabelValues("select_contractors", "rejected").Inc()
		return nil, fmt.Errorf("%w: event has no connected host", domain.ErrPreconditionFailed)
	}

	selected := make(map[string]bool, len(contractorIDs))
	for _, id := range contractorIDs {
		selected[id] = true
	}
	// A contractor may hold several applications on the event (rejected ones
	// plus a reapplication). Accept at most one live application per selected
	// id; already-rejected applications stay rejected.
	matched := make(map[string]bool, len(contractorIDs))
	for i := range event.ContractorApplications {
		a := &event.ContractorApplications[i]
		if selected[a.ContractorID] && !matched[a.ContractorID] && a.Status != domain.ApplicationRejected {
			a.Status = domain.ApplicationAccepted
			matched[a.ContractorID] = true
			continue
		}
		a.Status = domain.ApplicationRejected
	}
	if len(matched) != len(contractorIDs) {
		metrics.Transitions.WithLabelValues("select_contractors", "rejected").Inc()
		return nil, fmt.Errorf("%w: selection includes contractors without an application", domain.ErrValidation)
	}

	vendors := make([]domain.VendorCheckIn, 0, len(contractorIDs))
	for _, id := range contractorIDs {
		vendors = append(vendors, domain.VendorCheckIn{ContractorID: id})
	}

	event.SelectedContractors = contractorIDs
	event.Vendors = vendors
	event.Status = domain.StatusContractorsHired
	event.UpdatedAt = time.Now().UTC()

	if err := s.events.Save(ctx, event); err != nil {
		metrics.Transitions.WithLabelValues("select_contractors", "error").Inc()
		return nil, fmt.Errorf("save event: %w", err)
	}
	metrics.Transitions.WithLabelValues("select_contractors", "ok").Inc()

	s.logger.Info("contractors selected",
		logger.String("event_id", event.ID),
		logger.Int("count", len(contractorIDs)),
	)

	s.bus.Publish(ctx, &domain.ContractorsSelected{
		EventID:       event.ID,
		EventTitle:    event.Title,
		BusinessID:    event.BusinessRecipient(),
		HostID:        event.EventHostID,
		ContractorIDs: contractorIDs,
		Timestamp:     time.Now().UTC(),
	})

	return event, nil
}

// SendMaterials records the materials shipment and moves the event forward.
// Allowed only once contractors are hired.
func (s *Workflow) SendMaterials(ctx context.Context, eventID, trackingNumber, description string) (*domain.Event, error) {
	if trackingNumber == "" {
		return nil, fmt.Errorf("%w: tracking number is required", domain.ErrValidation)
	}

	unlock := s.locks.Lock(eventID)
	defer unlock()

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		metrics.Transitions.WithLabelValues("send_materials", "error").Inc()
		return nil, fmt.Errorf("get event: %w", err)
	}

	if event.Status != domain.StatusContractorsHired {
		metrics.Transitions.WithLabelValues("send_materials", "rejected").Inc()
		return nil, fmt.Errorf("%w: materials can be sent only after contractors are hired", domain.ErrPreconditionFailed)
	}

	now := time.Now().UTC()
	event.MaterialsSentAt = &now
	event.TrackingNumber = trackingNumber
	event.MaterialsDescription = description
	event.Status = domain.StatusMaterialsSent
	event.UpdatedAt = now

	if err := s.events.Save(ctx, event); err != nil {
		metrics.Transitions.WithLabelValues("send_materials", "error").Inc()
		return nil, fmt.Errorf("save event: %w", err)
	}
	metrics.Transitions.WithLabelValues("send_materials", "ok").Inc()

	s.logger.Info("materials sent",
		logger.String("event_id", event.ID),
		logger.String("tracking_number", trackingNumber),
	)

	s.bus.Publish(ctx, &domain.MaterialsSent{
		EventID:        event.ID,
		EventTitle:     event.Title,
		BusinessID:     event.BusinessRecipient(),
		HostID:         event.EventHostID,
		TrackingNumber: trackingNumber,
		Timestamp:      now,
	})

	return event, nil
}
