package review

import (
	"context"

	"housequay/internal/domain"
)

type ReviewRepository interface {
	CreateAndRecompute(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	GetByBooking(ctx context.Context, bookingID int64) (*domain.Review, error)
	ListByListing(ctx context.Context, listingID int64, limit, offset int) ([]domain.Review, error)
	ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]domain.Review, error)
	SetHostReply(ctx context.Context, id int64, reply string) (*domain.Review, error)
}

type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}
