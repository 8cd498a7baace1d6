package admin

type UserActionRequest struct {
	Action string `json:"action" binding:"required"`
	Reason string `json:"reason"`
}

type ListingActionRequest struct {
	Action string `json:"action" binding:"required"`
	Reason string `json:"reason"`
}

type ReportUpdateRequest struct {
	Status     string `json:"status" binding:"required"`
	AdminNotes string `json:"admin_notes"`
}

type StatsResponse struct {
	TotalUsers      int64 `json:"total_users"`
	TotalListings   int64 `json:"total_listings"`
	PendingListings int64 `json:"pending_listings"`
	TotalBookings   int64 `json:"total_bookings"`
	PendingReports  int64 `json:"pending_reports"`
}
