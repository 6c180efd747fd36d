package domain

import "time"

// DomainEvent is a fact produced by a successful mutation, fanned out
// synchronously to subscribers (notifications, suspension policy) by the
// mutating service while it still holds the event lock.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// ContractorsSelected fires when a business finalizes its contractor pick.
type ContractorsSelected struct {
	EventID       string    `json:"event_id"`
	EventTitle    string    `json:"event_title"`
	BusinessID    string    `json:"business_id"`
	HostID        string    `json:"host_id"`
	ContractorIDs []string  `json:"contractor_ids"`
	Timestamp     time.Time `json:"timestamp"`
}

func (e *ContractorsSelected) EventType() string     { return "ContractorsSelected" }
func (e *ContractorsSelected) AggregateID() string   { return e.EventID }
func (e *ContractorsSelected) OccurredAt() time.Time { return e.Timestamp }

// MaterialsSent fires when the business ships event materials to the host.
type MaterialsSent struct {
	EventID        string    `json:"event_id"`
	EventTitle     string    `json:"event_title"`
	BusinessID     string    `json:"business_id"`
	HostID         string    `json:"host_id"`
	TrackingNumber string    `json:"tracking_number"`
	Timestamp      time.Time `json:"timestamp"`
}

func (e *MaterialsSent) EventType() string     { return "MaterialsSent" }
func (e *MaterialsSent) AggregateID() string   { return e.EventID }
func (e *MaterialsSent) OccurredAt() time.Time { return e.Timestamp }

// FundsReleased fires when a vendor's payout becomes eligible after the end
// check-in. It flags eligibility only; no money moves here.
type FundsReleased struct {
	EventID      string    `json:"event_id"`
	EventTitle   string    `json:"event_title"`
	HostID       string    `json:"host_id"`
	ContractorID string    `json:"contractor_id"`
	Amount       float64   `json:"amount"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *FundsReleased) EventType() string     { return "FundsReleased" }
func (e *FundsReleased) AggregateID() string   { return e.EventID }
func (e *FundsReleased) OccurredAt() time.Time { return e.Timestamp }

// ReviewSubmitted fires when the host reviews a vendor after funds release.
type ReviewSubmitted struct {
	EventID      string    `json:"event_id"`
	HostID       string    `json:"host_id"`
	ContractorID string    `json:"contractor_id"`
	Rating       int       `json:"rating"`
	Timestamp    time.Time `json:"timestamp"`
}

func (e *ReviewSubmitted) EventType() string     { return "ReviewSubmitted" }
func (e *ReviewSubmitted) AggregateID() string   { return e.EventID }
func (e *ReviewSubmitted) OccurredAt() time.Time { return e.Timestamp }

// DiscrepancyReported fires when a host reports mismatched inventory and a
// business recipient could be resolved.
type DiscrepancyReported struct {
	EventID            string    `json:"event_id"`
	EventTitle         string    `json:"event_title"`
	DiscrepancyID      string    `json:"discrepancy_id"`
	HostID             string    `json:"host_id"`
	BusinessID         string    `json:"business_id"`
	TotalDiscrepancies int       `json:"total_discrepancies"`
	Notes              string    `json:"notes,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
}

func (e *DiscrepancyReported) EventType() string     { return "DiscrepancyReported" }
func (e *DiscrepancyReported) AggregateID() string   { return e.EventID }
func (e *DiscrepancyReported) OccurredAt() time.Time { return e.Timestamp }
