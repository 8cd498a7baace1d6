package report

type CreateReportRequest struct {
	ListingID      *int64 `json:"listing_id"`
	ReportedUserID *int64 `json:"reported_user_id"`
	BookingID      *int64 `json:"booking_id"`

	Reason  string `json:"reason" binding:"required,min=3,max=200"`
	Details string `json:"details"`
}
