package dto

import (
	"time"

	"github.com/lashonsvoice-bot/rork-vendo-sub001/internal/domain"
)

type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`

	CreatedBy            string `json:"created_by"`
	BusinessOwnerID      string `json:"business_owner_id,omitempty"`
	EventHostID          string `json:"event_host_id,omitempty"`
	SelectedByBusinessID string `json:"selected_by_business_id,omitempty"`

	Status          string `json:"status"`
	ProposalSent    bool   `json:"proposal_sent"`
	HostConnected   bool   `json:"host_connected"`
	IsPublicListing bool   `json:"is_public_listing"`

	ContractorsNeeded int     `json:"contractors_needed"`
	TotalVendorSpaces int     `json:"total_vendor_spaces"`
	ContractorPay     float64 `json:"contractor_pay"`

	Applications  []ApplicationResponse `json:"applications,omitempty"`
	Selected      []string              `json:"selected_contractors,omitempty"`
	Vendors       []VendorResponse      `json:"vendors,omitempty"`
	Discrepancies []DiscrepancyResponse `json:"discrepancies,omitempty"`

	TrackingNumber  string `json:"tracking_number,omitempty"`
	MaterialsSentAt string `json:"materials_sent_at,omitempty"`

	EventDate string `json:"event_date"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type ApplicationResponse struct {
	ContractorID string `json:"contractor_id"`
	Message      string `json:"message,omitempty"`
	Status       string `json:"status"`
	AppliedAt    string `json:"applied_at"`
}

type VendorResponse struct {
	ContractorID     string          `json:"contractor_id"`
	ArrivalConfirmed bool            `json:"arrival_confirmed"`
	ArrivalTime      string          `json:"arrival_time,omitempty"`
	HalfwayConfirmed bool            `json:"halfway_confirmed"`
	HalfwayTime      string          `json:"halfway_time,omitempty"`
	EndConfirmed     bool            `json:"end_confirmed"`
	EndTime          string          `json:"end_time,omitempty"`
	FundsReleased    bool            `json:"funds_released"`
	Review           *ReviewResponse `json:"review,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	EventPhotos      []string        `json:"event_photos,omitempty"`
	TableLabel       string          `json:"table_label,omitempty"`
}

type ReviewResponse struct {
	Rating       int     `json:"rating"`
	Tip          float64 `json:"tip"`
	IsRehirable  bool    `json:"is_rehirable"`
	HostResponse string  `json:"host_response,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type DiscrepancyResponse struct {
	ID                    string `json:"id"`
	TotalDiscrepancies    int    `json:"total_discrepancies"`
	Notes                 string `json:"notes,omitempty"`
	Resolved              bool   `json:"resolved"`
	ResolvedAt            string `json:"resolved_at,omitempty"`
	BusinessOwnerNotified bool   `json:"business_owner_notified"`
	ReportedAt            string `json:"reported_at"`
}

type QueuedResponse struct {
	Status string `json:"status"`
}

type ReplayResponse struct {
	Errors []string `json:"errors"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		ID:                   e.ID,
		Title:                e.Title,
		Description:          e.Description,
		Location:             e.Location,
		CreatedBy:            string(e.CreatedBy),
		BusinessOwnerID:      e.BusinessOwnerID,
		EventHostID:          e.EventHostID,
		SelectedByBusinessID: e.SelectedByBusinessID,
		Status:               string(e.Status),
		ProposalSent:         e.ProposalSent,
		HostConnected:        e.HostConnected,
		IsPublicListing:      e.IsPublicListing,
		ContractorsNeeded:    e.ContractorsNeeded,
		TotalVendorSpaces:    e.TotalVendorSpaces,
		ContractorPay:        e.ContractorPay,
		Selected:             e.SelectedContractors,
		TrackingNumber:       e.TrackingNumber,
		EventDate:            e.EventDate.Format(time.RFC3339),
		CreatedAt:            e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            e.UpdatedAt.Format(time.RFC3339),
	}
	if e.MaterialsSentAt != nil {
		resp.MaterialsSentAt = e.MaterialsSentAt.Format(time.RFC3339)
	}
	for _, a := range e.ContractorApplications {
		resp.Applications = append(resp.Applications, ApplicationResponse{
			ContractorID: a.ContractorID,
			Message:      a.Message,
			Status:       string(a.Status),
			AppliedAt:    a.AppliedAt.Format(time.RFC3339),
		})
	}
	for i := range e.Vendors {
		resp.Vendors = append(resp.Vendors, ToVendorResponse(&e.Vendors[i]))
	}
	for i := range e.InventoryDiscrepancies {
		resp.Discrepancies = append(resp.Discrepancies, ToDiscrepancyResponse(&e.InventoryDiscrepancies[i]))
	}
	return resp
}

func ToVendorResponse(v *domain.VendorCheckIn) VendorResponse {
	resp := VendorResponse{
		ContractorID:     v.ContractorID,
		ArrivalConfirmed: v.ArrivalConfirmed,
		ArrivalTime:      v.ArrivalTime,
		HalfwayConfirmed: v.HalfwayConfirmed,
		HalfwayTime:      v.HalfwayTime,
		EndConfirmed:     v.EndConfirmed,
		EndTime:          v.EndTime,
		FundsReleased:    v.FundsReleased,
		Notes:            v.Notes,
		EventPhotos:      v.EventPhotos,
		TableLabel:       v.TableLabel,
	}
	if v.Review != nil {
		resp.Review = &ReviewResponse{
			Rating:       v.Review.Rating,
			Tip:          v.Review.Tip,
			IsRehirable:  v.Review.IsRehirable,
			HostResponse: v.Review.HostResponse,
			CreatedAt:    v.Review.CreatedAt.Format(time.RFC3339),
		}
	}
	return resp
}

func ToDiscrepancyResponse(d *domain.InventoryDiscrepancy) DiscrepancyResponse {
	resp := DiscrepancyResponse{
		ID:                    d.ID,
		TotalDiscrepancies:    d.TotalDiscrepancies,
		Notes:                 d.Notes,
		Resolved:              d.Resolved,
		BusinessOwnerNotified: d.BusinessOwnerNotified,
		ReportedAt:            d.ReportedAt.Format(time.RFC3339),
	}
	if d.ResolvedAt != nil {
		resp.ResolvedAt = d.ResolvedAt.Format(time.RFC3339)
	}
	return resp
}
