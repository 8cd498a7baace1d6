package domain

import "time"

type ReportStatus string

const (
	ReportPending     ReportStatus = "pending"
	ReportUnderReview ReportStatus = "under_review"
	ReportResolved    ReportStatus = "resolved"
	ReportDismissed   ReportStatus = "dismissed"
)

// Report is a moderation ticket. At least one of ListingID, ReportedUserID,
// BookingID is set; status is mutated only by admins.
type Report struct {
	ID         int64 `json:"id"`
	ReporterID int64 `json:"reporter_id"`

	ListingID      *int64 `json:"listing_id,omitempty"`
	ReportedUserID *int64 `json:"reported_user_id,omitempty"`
	BookingID      *int64 `json:"booking_id,omitempty"`

	Reason  string `json:"reason"`
	Details string `json:"details,omitempty" gorm:"type:text"`

	Status     ReportStatus `json:"status"`
	AdminNotes string       `json:"admin_notes,omitempty" gorm:"type:text"`
	ResolvedAt *time.Time   `json:"resolved_at,omitempty"`
	ResolvedBy *int64       `json:"resolved_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
