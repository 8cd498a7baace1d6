package domain

import "time"

// Conversation is a two-participant thread, optionally scoped to a listing
// or booking. ParticipantA < ParticipantB so lookups are order-independent.
type Conversation struct {
	ID           int64  `json:"id"`
	ParticipantA int64  `json:"participant_a" gorm:"index:idx_conv_participants"`
	ParticipantB int64  `json:"participant_b" gorm:"index:idx_conv_participants"`
	ListingID    *int64 `json:"listing_id,omitempty"`
	BookingID    *int64 `json:"booking_id,omitempty"`

	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`

	Messages []Message `json:"messages,omitempty"`
}

type Message struct {
	ID             int64      `json:"id"`
	ConversationID int64      `json:"conversation_id" gorm:"index"`
	SenderID       int64      `json:"sender_id"`
	Content        string     `json:"content" gorm:"type:text"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
