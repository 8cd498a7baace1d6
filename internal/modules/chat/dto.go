package chat

type StartConversationRequest struct {
	RecipientID int64  `json:"recipient_id" binding:"required"`
	ListingID   *int64 `json:"listing_id"`
	BookingID   *int64 `json:"booking_id"`
	Message     string `json:"message"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required,min=1,max=4000"`
}

// WSEvent is the frame pushed to connected participants.
type WSEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
