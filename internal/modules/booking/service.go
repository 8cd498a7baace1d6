package booking

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"

	"housequay/internal/domain"
	"housequay/internal/modules/pricing"
	"housequay/internal/repository"
)

const dateLayout = "2006-01-02"

type Service struct {
	bookings BookingRepository
	listings ListingReader
	blocked  BlockedDateReader
}

func NewService(bookings BookingRepository, listings ListingReader, blocked BlockedDateReader) *Service {
	return &Service{
		bookings: bookings,
		listings: listings,
		blocked:  blocked,
	}
}

// ParseDate accepts YYYY-MM-DD and normalizes to UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrValidation
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC), nil
}

// IsAvailable applies the half-open overlap rule against active bookings
// and host-blocked ranges. Read-only; ranges with checkOut <= checkIn are
// rejected before any conflict check.
func (s *Service) IsAvailable(ctx context.Context, listingID int64, checkIn, checkOut time.Time) (bool, error) {
	if !checkOut.After(checkIn) {
		return false, ErrValidation
	}

	conflict, err := s.bookings.HasOverlap(ctx, listingID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	if conflict {
		return false, nil
	}

	blocked, err := s.blocked.HasOverlap(ctx, listingID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return !blocked, nil
}

// Create validates in order: listing bookable -> caller is not the host ->
// dates valid -> minimum stay -> range available. Any failure aborts with
// no write; the insert itself re-checks under a transaction.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req CreateBookingRequest) (*domain.Booking, error) {
	listing, err := s.listings.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if !listing.Bookable() {
		return nil, ErrNotBookable
	}
	if actor.UserID == listing.HostID {
		return nil, ErrOwnListing
	}

	checkIn, err := ParseDate(req.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := ParseDate(req.CheckOut)
	if err != nil {
		return nil, err
	}

	nights := pricing.Nights(checkIn, checkOut)
	if nights < 1 {
		return nil, ErrValidation
	}
	if nights < listing.MinimumStay {
		return nil, ErrMinimumStay
	}

	ok, err := s.IsAvailable(ctx, listing.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAvailable
	}

	breakdown, err := pricing.Quote(listing.PricePerNight, nights, listing.CleaningFee, listing.ServiceFeeRate)
	if err != nil {
		return nil, ErrValidation
	}

	status := domain.BookingPending
	if listing.InstantBook {
		status = domain.BookingConfirmed
	}

	b := &domain.Booking{
		ListingID:     listing.ID,
		GuestID:       actor.UserID,
		HostID:        listing.HostID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Nights:        nights,
		Subtotal:      breakdown.Subtotal,
		CleaningFee:   breakdown.CleaningFee,
		ServiceFee:    breakdown.ServiceFee,
		Total:         breakdown.Total,
		Status:        status,
		PaymentStatus: domain.PaymentPending,
		BoatName:      req.BoatName,
		BoatLength:    req.BoatLength,
	}

	if err := s.bookings.CreateIfAvailable(ctx, b); err != nil {
		if errors.Is(err, repository.ErrOverlap) {
			return nil, ErrNotAvailable
		}
		return nil, err
	}

	return b, nil
}

// Transition applies approve/decline/cancel under the central policy check.
// Rejections mutate nothing.
func (s *Service) Transition(ctx context.Context, actor domain.Actor, bookingID int64, req TransitionRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	action := Action(req.Action)
	switch action {
	case ActionApprove, ActionDecline, ActionCancel:
	default:
		return nil, ErrValidation
	}

	if !CanTransition(b, actor, action) {
		// Distinguish wrong-state from wrong-actor so the handler can
		// return 400 vs 403.
		if actor.UserID != b.GuestID && actor.UserID != b.HostID {
			return nil, ErrForbidden
		}
		if action == ActionCancel {
			return nil, ErrInvalidTransition
		}
		if actor.UserID != b.HostID {
			return nil, ErrForbidden
		}
		return nil, ErrInvalidTransition
	}

	switch action {
	case ActionApprove:
		err = s.bookings.UpdateStatus(ctx, b.ID, domain.BookingConfirmed)
	case ActionDecline:
		err = s.bookings.UpdateStatus(ctx, b.ID, domain.BookingDeclined)
	case ActionCancel:
		err = s.bookings.Cancel(ctx, b.ID, actor.UserID, req.CancellationReason, time.Now().UTC())
	}
	if err != nil {
		return nil, err
	}

	return s.bookings.GetByID(ctx, b.ID)
}

// Get returns a booking visible to its guest, its host, or an admin.
func (s *Service) Get(ctx context.Context, actor domain.Actor, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByIDWithListing(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if actor.UserID != b.GuestID && actor.UserID != b.HostID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) ListMine(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListByGuest(ctx, actor.UserID, limit, offset)
}

func (s *Service) ListForHost(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Booking, error) {
	return s.bookings.ListByHost(ctx, actor.UserID, limit, offset)
}

// Calendar merges held bookings and host blocks into a sorted list of
// unavailable ranges for [from, to).
func (s *Service) Calendar(ctx context.Context, listingID int64, from, to time.Time) ([]CalendarEntry, error) {
	if !to.After(from) {
		return nil, ErrValidation
	}

	held, err := s.bookings.ListForListing(ctx, listingID, from, to)
	if err != nil {
		return nil, err
	}

	blocks, err := s.blocked.ListForListing(ctx, listingID)
	if err != nil {
		return nil, err
	}

	out := make([]CalendarEntry, 0, len(held)+len(blocks))
	for _, b := range held {
		out = append(out, CalendarEntry{Start: b.CheckIn, End: b.CheckOut, Source: "booking"})
	}
	for _, bl := range blocks {
		if bl.StartDate.Before(to) && from.Before(bl.EndDate) {
			out = append(out, CalendarEntry{Start: bl.StartDate, End: bl.EndDate, Source: "blocked"})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}
