package dto

type TableOptionRequest struct {
	Size                string  `json:"size" binding:"required"`
	Quantity            int     `json:"quantity" binding:"required,gt=0"`
	ContractorsPerTable int     `json:"contractors_per_table"`
	Price               float64 `json:"price"`
}

type CreateEventRequest struct {
	Title                string               `json:"title" binding:"required"`
	Description          string               `json:"description"`
	Location             string               `json:"location"`
	CreatedBy            string               `json:"created_by" binding:"required,oneof=business host contractor"`
	BusinessOwnerID      string               `json:"business_owner_id"`
	EventHostID          string               `json:"event_host_id"`
	EventDate            string               `json:"event_date" binding:"required"`
	ContractorsNeeded    int                  `json:"contractors_needed"`
	TableOptions         []TableOptionRequest `json:"table_options"`
	TotalVendorSpaces    int                  `json:"total_vendor_spaces"`
	ContractorPay        float64              `json:"contractor_pay"`
	HostSupervisionFee   float64              `json:"host_supervision_fee"`
	FoodStipend          *float64             `json:"food_stipend"`
	TravelStipend        *float64             `json:"travel_stipend"`
	StipendReleaseMethod string               `json:"stipend_release_method" binding:"omitempty,oneof=notification escrow prepaid_cards"`
}

type ConnectHostRequest struct {
	HostID string `json:"host_id" binding:"required"`
}

type SubmitApplicationRequest struct {
	ContractorID string `json:"contractor_id" binding:"required"`
	Message      string `json:"message"`
}

type SelectContractorsRequest struct {
	ContractorIDs []string `json:"contractor_ids" binding:"required,min=1"`
}

type SendMaterialsRequest struct {
	TrackingNumber string `json:"tracking_number" binding:"required"`
	Description    string `json:"description"`
}

type VendorPatchRequest struct {
	ArrivalConfirmed *bool    `json:"arrival_confirmed"`
	ArrivalTime      *string  `json:"arrival_time"`
	HalfwayConfirmed *bool    `json:"halfway_confirmed"`
	HalfwayTime      *string  `json:"halfway_time"`
	EndConfirmed     *bool    `json:"end_confirmed"`
	EndTime          *string  `json:"end_time"`
	Notes            *string  `json:"notes"`
	EventPhotos      []string `json:"event_photos"`
	TableLabel       *string  `json:"table_label"`
}

type SubmitReviewRequest struct {
	Rating       int     `json:"rating" binding:"required,min=1,max=5"`
	Tip          float64 `json:"tip" binding:"gte=0"`
	HostResponse string  `json:"host_response"`
}

type InventoryItemRequest struct {
	ID               string `json:"id"`
	Name             string `json:"name" binding:"required"`
	ExpectedQuantity int    `json:"expected_quantity" binding:"gte=0"`
	ReceivedQuantity int    `json:"received_quantity" binding:"gte=0"`
	DiscrepancyType  string `json:"discrepancy_type" binding:"omitempty,oneof=damaged missing lost_package extra"`
}

type ReportDiscrepancyRequest struct {
	Items []InventoryItemRequest `json:"items" binding:"required,min=1"`
	Notes string                 `json:"notes"`
}

type ResolveDiscrepancyRequest struct {
	Notes string `json:"notes"`
}
