package catalog

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"housequay/internal/domain"
	"housequay/internal/repository"
)

const dateLayout = "2006-01-02"

var boatSizes = map[domain.BoatSizeCategory]bool{
	domain.BoatSizeSmall:  true,
	domain.BoatSizeMedium: true,
	domain.BoatSizeLarge:  true,
	domain.BoatSizeYacht:  true,
}

type Service struct {
	listings ListingRepository
	blocked  BlockedDateRepository

	// Platform-wide fee rate stamped onto new listings.
	serviceFeeRate float64
}

func NewService(listings ListingRepository, blocked BlockedDateRepository, serviceFeeRate float64) *Service {
	return &Service{listings: listings, blocked: blocked, serviceFeeRate: serviceFeeRate}
}

// Create submits a new listing. Every new listing starts in pending_review
// and only becomes searchable once moderation approves it.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req CreateListingRequest) (*domain.Listing, error) {
	size := domain.BoatSizeCategory(req.BoatSize)
	if !boatSizes[size] {
		return nil, ErrValidation
	}
	if req.MinimumStay < 0 || req.CleaningFee < 0 {
		return nil, ErrValidation
	}

	l := &domain.Listing{
		HostID:      actor.UserID,
		Title:       req.Title,
		Description: req.Description,

		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Lat:     req.Lat,
		Lng:     req.Lng,

		MaxBoatLength: req.MaxBoatLength,
		BoatSize:      size,
		Depth:         req.Depth,
		Width:         req.Width,

		PricePerNight:  req.PricePerNight,
		CleaningFee:    req.CleaningFee,
		ServiceFeeRate: s.serviceFeeRate,

		InstantBook: req.InstantBook,
		MinimumStay: req.MinimumStay,

		Status:   domain.ListingPendingReview,
		IsActive: true,
	}

	if err := s.listings.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Get returns a listing. Listings that are not live are visible only to
// their host and to admins.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if l.Status != domain.ListingActive && l.HostID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrNotFound
	}
	return l, nil
}

func (s *Service) Update(ctx context.Context, actor domain.Actor, id int64, req UpdateListingRequest) (*domain.Listing, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if l.HostID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		l.Title = *req.Title
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.MaxBoatLength != nil {
		if *req.MaxBoatLength <= 0 {
			return nil, ErrValidation
		}
		l.MaxBoatLength = *req.MaxBoatLength
	}
	if req.BoatSize != nil {
		size := domain.BoatSizeCategory(*req.BoatSize)
		if !boatSizes[size] {
			return nil, ErrValidation
		}
		l.BoatSize = size
	}
	if req.Depth != nil {
		l.Depth = *req.Depth
	}
	if req.Width != nil {
		l.Width = *req.Width
	}
	if req.PricePerNight != nil {
		if *req.PricePerNight <= 0 {
			return nil, ErrValidation
		}
		l.PricePerNight = *req.PricePerNight
	}
	if req.CleaningFee != nil {
		if *req.CleaningFee < 0 {
			return nil, ErrValidation
		}
		l.CleaningFee = *req.CleaningFee
	}
	if req.InstantBook != nil {
		l.InstantBook = *req.InstantBook
	}
	if req.MinimumStay != nil {
		if *req.MinimumStay < 0 {
			return nil, ErrValidation
		}
		l.MinimumStay = *req.MinimumStay
	}
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}

	if err := s.listings.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Service) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if l.HostID != actor.UserID && !actor.IsAdmin() {
		return ErrForbidden
	}
	return s.listings.SoftDelete(ctx, id, time.Now().UTC())
}

// Search serves the public catalog; only live listings are returned.
func (s *Service) Search(ctx context.Context, f repository.ListingFilters) ([]domain.Listing, int64, error) {
	f.OnlyLive = true
	f.Status = ""
	f.HostID = 0
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	return s.listings.Search(ctx, f)
}

// ListMine returns all of the host's listings regardless of status.
func (s *Service) ListMine(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Listing, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.listings.Search(ctx, repository.ListingFilters{
		HostID: actor.UserID,
		Limit:  limit,
		Offset: offset,
	})
}

// BlockDates reserves a half-open [start, end) range on the host's own
// listing so it cannot be booked.
func (s *Service) BlockDates(ctx context.Context, actor domain.Actor, listingID int64, req BlockDatesRequest) (*domain.BlockedDate, error) {
	l, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if l.HostID != actor.UserID {
		return nil, ErrForbidden
	}

	start, err := time.ParseInLocation(dateLayout, req.StartDate, time.UTC)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := time.ParseInLocation(dateLayout, req.EndDate, time.UTC)
	if err != nil {
		return nil, ErrValidation
	}
	if !end.After(start) {
		return nil, ErrValidation
	}

	b := &domain.BlockedDate{
		ListingID: listingID,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	}
	if err := s.blocked.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) UnblockDates(ctx context.Context, actor domain.Actor, listingID, blockID int64) error {
	l, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if l.HostID != actor.UserID {
		return ErrForbidden
	}

	if err := s.blocked.Delete(ctx, listingID, blockID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListBlockedDates(ctx context.Context, actor domain.Actor, listingID int64) ([]domain.BlockedDate, error) {
	l, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if l.HostID != actor.UserID && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.blocked.ListForListing(ctx, listingID)
}
