package domain

import "time"

type DiscrepancyType string

const (
	DiscrepancyDamaged     DiscrepancyType = "damaged"
	DiscrepancyMissing     DiscrepancyType = "missing"
	DiscrepancyLostPackage DiscrepancyType = "lost_package"
	DiscrepancyExtra       DiscrepancyType = "extra"
)

type InventoryItem struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	ExpectedQuantity int             `json:"expected_quantity"`
	ReceivedQuantity int             `json:"received_quantity"`
	DiscrepancyType  DiscrepancyType `json:"discrepancy_type,omitempty"`
}

// Mismatched reports whether the item counts as a discrepancy: a type was
// assigned and the received quantity differs from the expected one.
func (i InventoryItem) Mismatched() bool {
	return i.DiscrepancyType != "" && i.ReceivedQuantity != i.ExpectedQuantity
}

// InventoryDiscrepancy aggregates the mismatched items of one reporting event.
type InventoryDiscrepancy struct {
	ID                    string          `json:"id"`
	Items                 []InventoryItem `json:"items"`
	TotalDiscrepancies    int             `json:"total_discrepancies"`
	Notes                 string          `json:"notes,omitempty"`
	ReportedBy            string          `json:"reported_by,omitempty"`
	ReportedAt            time.Time       `json:"reported_at"`
	Resolved              bool            `json:"resolved"`
	ResolvedAt            *time.Time      `json:"resolved_at,omitempty"`
	ResolutionNotes       string          `json:"resolution_notes,omitempty"`
	BusinessOwnerNotified bool            `json:"business_owner_notified"`
}
