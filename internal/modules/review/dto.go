package review

type CreateReviewRequest struct {
	BookingID     int64  `json:"booking_id" binding:"required"`
	Overall       int    `json:"overall" binding:"required,gte=1,lte=5"`
	Cleanliness   int    `json:"cleanliness" binding:"omitempty,gte=1,lte=5"`
	Accuracy      int    `json:"accuracy" binding:"omitempty,gte=1,lte=5"`
	Communication int    `json:"communication" binding:"omitempty,gte=1,lte=5"`
	Location      int    `json:"location" binding:"omitempty,gte=1,lte=5"`
	Value         int    `json:"value" binding:"omitempty,gte=1,lte=5"`
	Content       string `json:"content"`
}

type HostReplyRequest struct {
	Reply string `json:"reply" binding:"required"`
}
