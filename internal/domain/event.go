package domain

import "time"

type Role string

const (
	RoleBusiness   Role = "business"
	RoleHost       Role = "host"
	RoleContractor Role = "contractor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBusiness, RoleHost, RoleContractor:
		return true
	}
	return false
}

type EventStatus string

const (
	StatusDraft            EventStatus = "draft"
	StatusActive           EventStatus = "active"
	StatusAwaitingHost     EventStatus = "awaiting_host"
	StatusHostConnected    EventStatus = "host_connected"
	StatusContractorsHired EventStatus = "contractors_hired"
	StatusMaterialsSent    EventStatus = "materials_sent"
	StatusReadyForEvent    EventStatus = "ready_for_event"
	StatusFilled           EventStatus = "filled"
	StatusCompleted        EventStatus = "completed"
	StatusCancelled        EventStatus = "cancelled"
)

type StipendReleaseMethod string

const (
	StipendNotification StipendReleaseMethod = "notification"
	StipendEscrow       StipendReleaseMethod = "escrow"
	StipendPrepaidCards StipendReleaseMethod = "prepaid_cards"
)

type TableOption struct {
	ID                  string  `json:"id"`
	Size                string  `json:"size"`
	Quantity            int     `json:"quantity"`
	ContractorsPerTable int     `json:"contractors_per_table"`
	Price               float64 `json:"price"`
}

// Event is the central aggregate: one staffing engagement linking a business,
// a host and zero or more contractors. It is mutated only through the workflow
// and check-in services.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`

	CreatedBy            Role   `json:"created_by"`
	BusinessOwnerID      string `json:"business_owner_id,omitempty"`
	EventHostID          string `json:"event_host_id,omitempty"`
	SelectedByBusinessID string `json:"selected_by_business_id,omitempty"`

	Status EventStatus `json:"status"`

	ProposalSent          bool `json:"proposal_sent"`
	HostConnected         bool `json:"host_connected"`
	BusinessOwnerSelected bool `json:"business_owner_selected"`
	IsPublicListing       bool `json:"is_public_listing"`

	ContractorsNeeded int           `json:"contractors_needed"`
	TableOptions      []TableOption `json:"table_options,omitempty"`
	TotalVendorSpaces int           `json:"total_vendor_spaces"`

	ContractorPay        float64              `json:"contractor_pay"`
	HostSupervisionFee   float64              `json:"host_supervision_fee"`
	FoodStipend          *float64             `json:"food_stipend,omitempty"`
	TravelStipend        *float64             `json:"travel_stipend,omitempty"`
	StipendReleaseMethod StipendReleaseMethod `json:"stipend_release_method,omitempty"`

	ContractorApplications []ContractorApplication `json:"contractor_applications,omitempty"`
	SelectedContractors    []string                `json:"selected_contractors,omitempty"`

	MaterialsSentAt      *time.Time `json:"materials_sent_at,omitempty"`
	TrackingNumber       string     `json:"tracking_number,omitempty"`
	MaterialsDescription string     `json:"materials_description,omitempty"`
	PaymentReceived      bool       `json:"payment_received"`
	MaterialsReceived    bool       `json:"materials_received"`

	Vendors []VendorCheckIn `json:"vendors,omitempty"`

	InventoryItems         []InventoryItem        `json:"inventory_items,omitempty"`
	InventoryDiscrepancies []InventoryDiscrepancy `json:"inventory_discrepancies,omitempty"`

	EventDate time.Time `json:"event_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Vendor returns the check-in record for the given contractor, or nil.
func (e *Event) Vendor(contractorID string) *VendorCheckIn {
	for i := range e.Vendors {
		if e.Vendors[i].ContractorID == contractorID {
			return &e.Vendors[i]
		}
	}
	return nil
}

// Discrepancy returns the inventory discrepancy with the given id, or nil.
func (e *Event) Discrepancy(id string) *InventoryDiscrepancy {
	for i := range e.InventoryDiscrepancies {
		if e.InventoryDiscrepancies[i].ID == id {
			return &e.InventoryDiscrepancies[i]
		}
	}
	return nil
}

// BusinessRecipient resolves the business party to escalate to, preferring the
// business that claimed the event over its original owner.
func (e *Event) BusinessRecipient() string {
	if e.SelectedByBusinessID != "" {
		return e.SelectedByBusinessID
	}
	return e.BusinessOwnerID
}

type CreateEventInput struct {
	Title                string
	Description          string
	Location             string
	CreatedBy            Role
	BusinessOwnerID      string
	EventHostID          string
	EventDate            time.Time
	ContractorsNeeded    int
	TableOptions         []TableOption
	TotalVendorSpaces    int
	ContractorPay        float64
	HostSupervisionFee   float64
	FoodStipend          *float64
	TravelStipend        *float64
	StipendReleaseMethod StipendReleaseMethod
}
