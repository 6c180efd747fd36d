package domain

type NoticeKind string

const (
	NoticeMaterialConfirmation NoticeKind = "material_confirmation"
	NoticePaymentConfirmation  NoticeKind = "payment_confirmation"
	NoticeAcceptance           NoticeKind = "acceptance"
	NoticeCoordination         NoticeKind = "coordination"
	NoticeSuspension           NoticeKind = "suspension"
)

// Notice is one cross-party message handed to the dispatcher. Delivery is
// best-effort: a failed send never fails the operation that produced it.
type Notice struct {
	ID         string     `json:"id"`
	FromUserID string     `json:"from_user_id"`
	FromRole   Role       `json:"from_role"`
	ToUserID   string     `json:"to_user_id"`
	ToRole     Role       `json:"to_role"`
	EventID    string     `json:"event_id"`
	Kind       NoticeKind `json:"kind"`
	Subject    string     `json:"subject"`
	Body       string     `json:"body"`
	Meta       NoticeMeta `json:"meta,omitempty"`
}

// NoticeMeta is a closed union: one concrete type per notice kind that carries
// structured payload, instead of an open map.
type NoticeMeta interface {
	noticeMeta()
}

// DiscrepancyMeta rides on coordination notices about inventory mismatches.
// Urgent distinguishes escalations from ordinary coordination traffic.
type DiscrepancyMeta struct {
	Urgent             bool   `json:"urgent"`
	DiscrepancyID      string `json:"discrepancy_id"`
	TotalDiscrepancies int    `json:"total_discrepancies"`
}

func (DiscrepancyMeta) noticeMeta() {}

// SuspensionMeta rides on suspension notices.
type SuspensionMeta struct {
	OneStarCount int `json:"one_star_count"`
}

func (SuspensionMeta) noticeMeta() {}

// ShipmentMeta rides on material confirmation notices.
type ShipmentMeta struct {
	TrackingNumber string `json:"tracking_number"`
}

func (ShipmentMeta) noticeMeta() {}

// PayoutMeta rides on payment confirmation notices.
type PayoutMeta struct {
	Amount float64 `json:"amount"`
}

func (PayoutMeta) noticeMeta() {}

// Urgent reports whether the notice carries the urgent escalation flag.
func (n Notice) Urgent() bool {
	m, ok := n.Meta.(DiscrepancyMeta)
	return ok && m.Urgent
}
