package booking

import (
	"context"
	"time"

	"housequay/internal/domain"
)

// BookingRepository is the persistence surface the service needs.
type BookingRepository interface {
	CreateIfAvailable(ctx context.Context, b *domain.Booking) error
	HasOverlap(ctx context.Context, listingID int64, checkIn, checkOut time.Time) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByIDWithListing(ctx context.Context, id int64) (*domain.Booking, error)
	ListByGuest(ctx context.Context, guestID int64, limit, offset int) ([]domain.Booking, error)
	ListByHost(ctx context.Context, hostID int64, limit, offset int) ([]domain.Booking, error)
	ListForListing(ctx context.Context, listingID int64, from, to time.Time) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id, cancelledBy int64, reason string, at time.Time) error
}

type ListingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}

type BlockedDateReader interface {
	HasOverlap(ctx context.Context, listingID int64, start, end time.Time) (bool, error)
	ListForListing(ctx context.Context, listingID int64) ([]domain.BlockedDate, error)
}
