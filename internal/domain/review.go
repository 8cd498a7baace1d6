package domain

import "time"

// Review is one-to-one with a completed booking; the unique index on
// BookingID enforces one review per booking.
type Review struct {
	ID        int64 `json:"id"`
	BookingID int64 `json:"booking_id" gorm:"uniqueIndex"`
	ListingID int64 `json:"listing_id" gorm:"index"`
	AuthorID  int64 `json:"author_id"`
	HostID    int64 `json:"host_id"`

	Overall       int `json:"overall" validate:"required,gte=1,lte=5"`
	Cleanliness   int `json:"cleanliness,omitempty"`
	Accuracy      int `json:"accuracy,omitempty"`
	Communication int `json:"communication,omitempty"`
	Location      int `json:"location,omitempty"`
	Value         int `json:"value,omitempty"`

	Content string `json:"content,omitempty" gorm:"type:text"`

	HostReply *string    `json:"host_reply,omitempty"`
	RepliedAt *time.Time `json:"replied_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author *User `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}
