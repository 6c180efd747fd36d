package domain

import "time"

// MinRehirableRating is the lowest review rating that keeps a contractor
// rehirable for future events.
const MinRehirableRating = 2

// VendorCheckIn tracks one contractor's attendance and payout progress inside
// an event: arrival, halfway, end, funds release, review. Each stage may only
// be reached after the previous one.
type VendorCheckIn struct {
	ContractorID string `json:"contractor_id"`

	ArrivalConfirmed bool   `json:"arrival_confirmed"`
	ArrivalTime      string `json:"arrival_time,omitempty"`
	HalfwayConfirmed bool   `json:"halfway_confirmed"`
	HalfwayTime      string `json:"halfway_time,omitempty"`
	EndConfirmed     bool   `json:"end_confirmed"`
	EndTime          string `json:"end_time,omitempty"`

	FundsReleased bool          `json:"funds_released"`
	Review        *VendorReview `json:"review,omitempty"`

	Notes       string   `json:"notes,omitempty"`
	EventPhotos []string `json:"event_photos,omitempty"`
	TableLabel  string   `json:"table_label,omitempty"`
}

// VendorReview is immutable once created. IsRehirable is derived from the
// rating, never set by the caller.
type VendorReview struct {
	Rating       int       `json:"rating"`
	Tip          float64   `json:"tip"`
	IsRehirable  bool      `json:"is_rehirable"`
	HostResponse string    `json:"host_response,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// VendorPatch is a partial update for a VendorCheckIn. Nil fields are left
// untouched.
type VendorPatch struct {
	ArrivalConfirmed *bool     `json:"arrival_confirmed,omitempty"`
	ArrivalTime      *string   `json:"arrival_time,omitempty"`
	HalfwayConfirmed *bool     `json:"halfway_confirmed,omitempty"`
	HalfwayTime      *string   `json:"halfway_time,omitempty"`
	EndConfirmed     *bool     `json:"end_confirmed,omitempty"`
	EndTime          *string   `json:"end_time,omitempty"`
	Notes            *string   `json:"notes,omitempty"`
	EventPhotos      []string  `json:"event_photos,omitempty"`
	TableLabel       *string   `json:"table_label,omitempty"`
}

// Apply copies the set fields of the patch onto the check-in record.
func (p VendorPatch) Apply(v *VendorCheckIn) {
	if p.ArrivalConfirmed != nil {
		v.ArrivalConfirmed = *p.ArrivalConfirmed
	}
	if p.ArrivalTime != nil {
		v.ArrivalTime = *p.ArrivalTime
	}
	if p.HalfwayConfirmed != nil {
		v.HalfwayConfirmed = *p.HalfwayConfirmed
	}
	if p.HalfwayTime != nil {
		v.HalfwayTime = *p.HalfwayTime
	}
	if p.EndConfirmed != nil {
		v.EndConfirmed = *p.EndConfirmed
	}
	if p.EndTime != nil {
		v.EndTime = *p.EndTime
	}
	if p.Notes != nil {
		v.Notes = *p.Notes
	}
	if p.EventPhotos != nil {
		v.EventPhotos = p.EventPhotos
	}
	if p.TableLabel != nil {
		v.TableLabel = *p.TableLabel
	}
}

// ValidateOrder checks the check-in stage chain on the resulting state:
// halfway requires arrival, end requires halfway, funds require end, review
// requires funds.
func (v *VendorCheckIn) ValidateOrder() error {
	switch {
	case v.HalfwayConfirmed && !v.ArrivalConfirmed:
		return ErrInvalidOrder
	case v.EndConfirmed && !v.HalfwayConfirmed:
		return ErrInvalidOrder
	case v.FundsReleased && !v.EndConfirmed:
		return ErrInvalidOrder
	case v.Review != nil && !v.FundsReleased:
		return ErrInvalidOrder
	}
	return nil
}

type ReviewInput struct {
	Rating       int
	Tip          float64
	HostResponse string
}
