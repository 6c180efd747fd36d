package domain

import "time"

// Contractor is the slice of a contractor profile this core owns: the running
// one-star count and the suspension state derived from it.
type Contractor struct {
	ID               string     `json:"id"`
	OneStarCount     int        `json:"one_star_count"`
	Suspended        bool       `json:"suspended"`
	SuspendedAt      *time.Time `json:"suspended_at,omitempty"`
	SuspensionReason string     `json:"suspension_reason,omitempty"`
}
