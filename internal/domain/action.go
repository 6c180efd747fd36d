package domain

import "time"

// OfflineAction is a vendor update recorded while disconnected, waiting to be
// replayed through the live update path. Position is assigned by the store and
// fixes the FIFO replay order.
type OfflineAction struct {
	ID           string      `json:"id"`
	Position     int64       `json:"position"`
	EventID      string      `json:"event_id"`
	ContractorID string      `json:"contractor_id"`
	Patch        VendorPatch `json:"patch"`
	QueuedAt     time.Time   `json:"queued_at"`
}
