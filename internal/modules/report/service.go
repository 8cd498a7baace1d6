package report

import (
	"context"
	"strings"

	"housequay/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, rep *domain.Report) error
	ListByReporter(ctx context.Context, reporterID int64, limit, offset int) ([]domain.Report, error)
}

type Service struct {
	reports Repository
}

func NewService(reports Repository) *Service {
	return &Service{reports: reports}
}

// File opens a moderation ticket. Exactly which target fields are set is
// up to the reporter, but at least one must be present.
func (s *Service) File(ctx context.Context, actor domain.Actor, req CreateReportRequest) (*domain.Report, error) {
	if req.ListingID == nil && req.ReportedUserID == nil && req.BookingID == nil {
		return nil, ErrNoTarget
	}
	if strings.TrimSpace(req.Reason) == "" {
		return nil, ErrValidation
	}
	if req.ReportedUserID != nil && *req.ReportedUserID == actor.UserID {
		return nil, ErrValidation
	}

	rep := &domain.Report{
		ReporterID:     actor.UserID,
		ListingID:      req.ListingID,
		ReportedUserID: req.ReportedUserID,
		BookingID:      req.BookingID,
		Reason:         strings.TrimSpace(req.Reason),
		Details:        strings.TrimSpace(req.Details),
		Status:         domain.ReportPending,
	}

	if err := s.reports.Create(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *Service) ListMine(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Report, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.reports.ListByReporter(ctx, actor.UserID, limit, offset)
}
