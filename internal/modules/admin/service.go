package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"housequay/internal/domain"
	"housequay/internal/repository"
)

type Service struct {
	users    UserRepository
	listings ListingRepository
	reports  ReportRepository
	bookings BookingCounter
}

func NewService(users UserRepository, listings ListingRepository, reports ReportRepository, bookings BookingCounter) *Service {
	return &Service{
		users:    users,
		listings: listings,
		reports:  reports,
		bookings: bookings,
	}
}

// -------------------- Users --------------------

type UserAction string

const (
	UserSuspend   UserAction = "suspend"
	UserUnsuspend UserAction = "unsuspend"
	UserMakeAdmin UserAction = "makeAdmin"
	UserDemote    UserAction = "demote"
	UserVerify    UserAction = "verify"
	UserUnverify  UserAction = "unverify"
)

// ApplyUserAction executes one moderation action against a user account.
// Self-targeting suspend/demote is rejected regardless of role.
func (s *Service) ApplyUserAction(ctx context.Context, admin domain.Actor, userID int64, action UserAction, reason string) (*domain.User, error) {
	if admin.UserID == userID && (action == UserSuspend || action == UserDemote) {
		return nil, ErrSelfTarget
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()

	switch action {
	case UserSuspend:
		if strings.TrimSpace(reason) == "" {
			return nil, ErrValidation
		}
		u.IsSuspended = true
		u.SuspendedAt = &now
		u.SuspendedBy = &admin.UserID
		u.SuspensionReason = reason
	case UserUnsuspend:
		u.IsSuspended = false
		u.SuspendedAt = nil
		u.SuspendedBy = nil
		u.SuspensionReason = ""
	case UserMakeAdmin:
		u.Role = domain.RoleAdmin
	case UserDemote:
		u.Role = domain.RoleBoater
		if u.IsHost {
			u.Role = domain.RoleHost
		}
	case UserVerify:
		u.IsVerified = true
	case UserUnverify:
		u.IsVerified = false
	default:
		return nil, ErrValidation
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) ListUsers(ctx context.Context, f repository.UserFilters) ([]domain.User, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	return s.users.List(ctx, f)
}

func (s *Service) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// -------------------- Listings --------------------

type ListingAction string

const (
	ListingApprove  ListingAction = "approve"
	ListingReject   ListingAction = "reject"
	ListingPause    ListingAction = "pause"
	ListingActivate ListingAction = "activate"
)

// listingTransitions maps action -> required current status and target.
var listingTransitions = map[ListingAction]struct {
	from domain.ListingStatus
	to   domain.ListingStatus
}{
	ListingApprove:  {domain.ListingPendingReview, domain.ListingActive},
	ListingReject:   {domain.ListingPendingReview, domain.ListingRejected},
	ListingPause:    {domain.ListingActive, domain.ListingPaused},
	ListingActivate: {domain.ListingPaused, domain.ListingActive},
}

func (s *Service) ApplyListingAction(ctx context.Context, listingID int64, action ListingAction, reason string) (*domain.Listing, error) {
	tr, ok := listingTransitions[action]
	if !ok {
		return nil, ErrValidation
	}
	if action == ListingReject && strings.TrimSpace(reason) == "" {
		return nil, ErrValidation
	}

	l, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if l.Status != tr.from {
		return nil, ErrInvalidTransition
	}

	if err := s.listings.UpdateStatus(ctx, l.ID, tr.to, reason); err != nil {
		return nil, err
	}

	l.Status = tr.to
	if reason != "" {
		l.RejectedReason = reason
	}
	return l, nil
}

func (s *Service) ListPendingListings(ctx context.Context, limit, offset int) ([]domain.Listing, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.listings.Search(ctx, repository.ListingFilters{
		Status: string(domain.ListingPendingReview),
		Limit:  limit,
		Offset: offset,
	})
}

// -------------------- Reports --------------------

// reportTransitions lists the allowed next statuses for each current one.
// under_review may only be left for a terminal status; pending may be
// dismissed directly.
var reportTransitions = map[domain.ReportStatus][]domain.ReportStatus{
	domain.ReportPending:     {domain.ReportUnderReview, domain.ReportDismissed},
	domain.ReportUnderReview: {domain.ReportResolved, domain.ReportDismissed},
}

func (s *Service) UpdateReport(ctx context.Context, admin domain.Actor, reportID int64, status domain.ReportStatus, notes string) (*domain.Report, error) {
	rep, err := s.reports.GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	allowed := false
	for _, next := range reportTransitions[rep.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrInvalidTransition
	}

	rep.Status = status
	if notes != "" {
		rep.AdminNotes = notes
	}
	if status == domain.ReportResolved || status == domain.ReportDismissed {
		now := time.Now().UTC()
		rep.ResolvedAt = &now
		rep.ResolvedBy = &admin.UserID
	}

	if err := s.reports.Update(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}

func (s *Service) ListReports(ctx context.Context, status string, limit, offset int) ([]domain.Report, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.reports.List(ctx, status, limit, offset)
}

// -------------------- Statistics --------------------

func (s *Service) GetStats(ctx context.Context) (*StatsResponse, error) {
	out := &StatsResponse{}

	if err := s.users.DB().WithContext(ctx).Model(&domain.User{}).Count(&out.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.listings.DB().WithContext(ctx).Model(&domain.Listing{}).Where("deleted_at IS NULL").Count(&out.TotalListings).Error; err != nil {
		return nil, err
	}
	if err := s.listings.DB().WithContext(ctx).Model(&domain.Listing{}).
		Where("status = ? AND deleted_at IS NULL", domain.ListingPendingReview).Count(&out.PendingListings).Error; err != nil {
		return nil, err
	}
	if err := s.bookings.DB().WithContext(ctx).Model(&domain.Booking{}).Count(&out.TotalBookings).Error; err != nil {
		return nil, err
	}
	if err := s.users.DB().WithContext(ctx).Model(&domain.Report{}).
		Where("status = ?", domain.ReportPending).Count(&out.PendingReports).Error; err != nil {
		return nil, err
	}

	return out, nil
}
