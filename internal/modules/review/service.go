package review

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"housequay/internal/domain"
)

type Service struct {
	reviews  ReviewRepository
	bookings BookingReader
}

func NewService(reviews ReviewRepository, bookings BookingReader) *Service {
	return &Service{reviews: reviews, bookings: bookings}
}

// Create inserts a review for a completed booking owned by the caller.
// One review per booking; the unique index backs the duplicate check.
// The listing aggregate is recomputed in the same transaction as the insert.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req CreateReviewRequest) (*domain.Review, error) {
	if req.BookingID <= 0 || req.Overall < 1 || req.Overall > 5 {
		return nil, ErrInvalidRequest
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.GuestID != actor.UserID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrBookingNotEnded
	}

	rv := &domain.Review{
		BookingID:     b.ID,
		ListingID:     b.ListingID,
		AuthorID:      actor.UserID,
		HostID:        b.HostID,
		Overall:       req.Overall,
		Cleanliness:   req.Cleanliness,
		Accuracy:      req.Accuracy,
		Communication: req.Communication,
		Location:      req.Location,
		Value:         req.Value,
		Content:       req.Content,
	}

	if err := s.reviews.CreateAndRecompute(ctx, rv); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) ListByListing(ctx context.Context, listingID int64, limit, offset int) ([]domain.Review, error) {
	if listingID <= 0 {
		return nil, ErrInvalidRequest
	}
	return s.reviews.ListByListing(ctx, listingID, limit, offset)
}

func (s *Service) ListByAuthor(ctx context.Context, authorID int64, limit, offset int) ([]domain.Review, error) {
	if authorID <= 0 {
		return nil, ErrInvalidRequest
	}
	return s.reviews.ListByAuthor(ctx, authorID, limit, offset)
}

// AddHostReply attaches the host's response; only the reviewed host may reply.
func (s *Service) AddHostReply(ctx context.Context, actor domain.Actor, reviewID int64, reply string) (*domain.Review, error) {
	if reviewID <= 0 || strings.TrimSpace(reply) == "" {
		return nil, ErrInvalidRequest
	}

	rv, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if rv.HostID != actor.UserID {
		return nil, ErrForbidden
	}

	return s.reviews.SetHostReply(ctx, reviewID, reply)
}

func isUniqueViolation(err error) bool {
	s := err.Error()
	return strings.Contains(s, "duplicate key value violates unique constraint") ||
		strings.Contains(s, "UNIQUE constraint failed") ||
		strings.Contains(s, "23505")
}
