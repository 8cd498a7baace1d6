package catalog

import (
	"context"
	"time"

	"housequay/internal/domain"
	"housequay/internal/repository"
)

type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) error
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	Update(ctx context.Context, l *domain.Listing) error
	SoftDelete(ctx context.Context, id int64, at time.Time) error
	Search(ctx context.Context, f repository.ListingFilters) ([]domain.Listing, int64, error)
}

type BlockedDateRepository interface {
	Create(ctx context.Context, b *domain.BlockedDate) error
	Delete(ctx context.Context, listingID, id int64) error
	ListForListing(ctx context.Context, listingID int64) ([]domain.BlockedDate, error)
}
