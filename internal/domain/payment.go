package domain

import "time"

type SessionStatus string

const (
	SessionCreated   SessionStatus = "created"
	SessionCompleted SessionStatus = "completed"
	SessionFailed    SessionStatus = "failed"
	SessionExpired   SessionStatus = "expired"
)

// PaymentSession records one checkout handoff to the external processor.
// Completion is reconciled via the provider callback, keyed by SessionRef.
type PaymentSession struct {
	ID         int64  `json:"id"`
	BookingID  int64  `json:"booking_id" gorm:"index"`
	SessionRef string `json:"session_ref" gorm:"uniqueIndex"`

	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`

	Status      SessionStatus `json:"status"`
	CheckoutURL string        `json:"checkout_url"`
	FailReason  string        `json:"fail_reason,omitempty"`
	RawPayload  string        `json:"-" gorm:"type:text"`

	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
