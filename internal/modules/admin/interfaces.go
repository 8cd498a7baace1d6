package admin

import (
	"context"

	"gorm.io/gorm"

	"housequay/internal/domain"
	"housequay/internal/repository"
)

type UserRepository interface {
	DB() *gorm.DB
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	List(ctx context.Context, f repository.UserFilters) ([]domain.User, int64, error)
}

type ListingRepository interface {
	DB() *gorm.DB
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ListingStatus, reason string) error
	Search(ctx context.Context, f repository.ListingFilters) ([]domain.Listing, int64, error)
}

type ReportRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Report, error)
	Update(ctx context.Context, rep *domain.Report) error
	List(ctx context.Context, status string, limit, offset int) ([]domain.Report, int64, error)
}

type BookingCounter interface {
	DB() *gorm.DB
}
