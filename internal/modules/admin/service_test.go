package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"housequay/internal/domain"
	"housequay/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) DB() *gorm.DB { return nil }

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, f repository.UserFilters) ([]domain.User, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) DB() *gorm.DB { return nil }

func (m *MockListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockListingRepository) UpdateStatus(ctx context.Context, id int64, status domain.ListingStatus, reason string) error {
	args := m.Called(ctx, id, status, reason)
	return args.Error(0)
}

func (m *MockListingRepository) Search(ctx context.Context, f repository.ListingFilters) ([]domain.Listing, int64, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Listing), args.Get(1).(int64), args.Error(2)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockReportRepository) Update(ctx context.Context, rep *domain.Report) error {
	args := m.Called(ctx, rep)
	return args.Error(0)
}

func (m *MockReportRepository) List(ctx context.Context, status string, limit, offset int) ([]domain.Report, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	return args.Get(0).([]domain.Report), args.Get(1).(int64), args.Error(2)
}

type MockBookingCounter struct{}

func (MockBookingCounter) DB() *gorm.DB { return nil }

func newTestService() (*Service, *MockUserRepository, *MockListingRepository, *MockReportRepository) {
	users := new(MockUserRepository)
	listings := new(MockListingRepository)
	reports := new(MockReportRepository)
	return NewService(users, listings, reports, MockBookingCounter{}), users, listings, reports
}

var adminActor = domain.Actor{UserID: 100, Role: domain.RoleAdmin}

func TestApplyUserAction_SuspendSetsMetadata(t *testing.T) {
	svc, users, _, _ := newTestService()

	target := &domain.User{ID: 5, Role: domain.RoleBoater}
	users.On("GetByID", mock.Anything, int64(5)).Return(target, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	u, err := svc.ApplyUserAction(context.Background(), adminActor, 5, UserSuspend, "spam listings")

	assert.NoError(t, err)
	assert.True(t, u.IsSuspended)
	assert.NotNil(t, u.SuspendedAt)
	assert.Equal(t, int64(100), *u.SuspendedBy)
	assert.Equal(t, "spam listings", u.SuspensionReason)
}

func TestApplyUserAction_SuspendRequiresReason(t *testing.T) {
	svc, users, _, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5}, nil)

	_, err := svc.ApplyUserAction(context.Background(), adminActor, 5, UserSuspend, "  ")

	assert.ErrorIs(t, err, ErrValidation)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestApplyUserAction_SelfSuspendRejected(t *testing.T) {
	svc, users, _, _ := newTestService()

	_, err := svc.ApplyUserAction(context.Background(), adminActor, 100, UserSuspend, "reason")
	assert.ErrorIs(t, err, ErrSelfTarget)

	_, err = svc.ApplyUserAction(context.Background(), adminActor, 100, UserDemote, "")
	assert.ErrorIs(t, err, ErrSelfTarget)

	users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestApplyUserAction_UnsuspendClearsMetadata(t *testing.T) {
	svc, users, _, _ := newTestService()

	when := adminActor.UserID
	target := &domain.User{
		ID:               5,
		IsSuspended:      true,
		SuspendedBy:      &when,
		SuspensionReason: "spam",
	}
	users.On("GetByID", mock.Anything, int64(5)).Return(target, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	u, err := svc.ApplyUserAction(context.Background(), adminActor, 5, UserUnsuspend, "")

	assert.NoError(t, err)
	assert.False(t, u.IsSuspended)
	assert.Nil(t, u.SuspendedAt)
	assert.Empty(t, u.SuspensionReason)
}

func TestApplyUserAction_DemoteKeepsHostRole(t *testing.T) {
	svc, users, _, _ := newTestService()

	target := &domain.User{ID: 5, Role: domain.RoleAdmin, IsHost: true}
	users.On("GetByID", mock.Anything, int64(5)).Return(target, nil)
	users.On("Update", mock.Anything, mock.Anything).Return(nil)

	u, err := svc.ApplyUserAction(context.Background(), adminActor, 5, UserDemote, "")

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleHost, u.Role)
}

func TestApplyUserAction_UnknownAction(t *testing.T) {
	svc, users, _, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5}, nil)

	_, err := svc.ApplyUserAction(context.Background(), adminActor, 5, UserAction("ban"), "")

	assert.ErrorIs(t, err, ErrValidation)
}

func TestApplyListingAction_Approve(t *testing.T) {
	svc, _, listings, _ := newTestService()

	listings.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Listing{ID: 3, Status: domain.ListingPendingReview}, nil)
	listings.On("UpdateStatus", mock.Anything, int64(3), domain.ListingActive, "").Return(nil)

	l, err := svc.ApplyListingAction(context.Background(), 3, ListingApprove, "")

	assert.NoError(t, err)
	assert.Equal(t, domain.ListingActive, l.Status)
}

func TestApplyListingAction_WrongStateRejected(t *testing.T) {
	svc, _, listings, _ := newTestService()

	listings.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Listing{ID: 3, Status: domain.ListingActive}, nil)

	_, err := svc.ApplyListingAction(context.Background(), 3, ListingApprove, "")

	assert.ErrorIs(t, err, ErrInvalidTransition)
	listings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyListingAction_RejectRequiresReason(t *testing.T) {
	svc, _, listings, _ := newTestService()

	_, err := svc.ApplyListingAction(context.Background(), 3, ListingReject, "")

	assert.ErrorIs(t, err, ErrValidation)
	listings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestApplyListingAction_PauseAndActivate(t *testing.T) {
	svc, _, listings, _ := newTestService()

	listings.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Listing{ID: 3, Status: domain.ListingActive}, nil).Once()
	listings.On("UpdateStatus", mock.Anything, int64(3), domain.ListingPaused, "").Return(nil)

	l, err := svc.ApplyListingAction(context.Background(), 3, ListingPause, "")
	assert.NoError(t, err)
	assert.Equal(t, domain.ListingPaused, l.Status)

	listings.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Listing{ID: 3, Status: domain.ListingPaused}, nil).Once()
	listings.On("UpdateStatus", mock.Anything, int64(3), domain.ListingActive, "").Return(nil)

	l, err = svc.ApplyListingAction(context.Background(), 3, ListingActivate, "")
	assert.NoError(t, err)
	assert.Equal(t, domain.ListingActive, l.Status)
}

func TestUpdateReport_Workflow(t *testing.T) {
	svc, _, _, reports := newTestService()

	reports.On("GetByID", mock.Anything, int64(8)).
		Return(&domain.Report{ID: 8, Status: domain.ReportPending}, nil).Once()
	reports.On("Update", mock.Anything, mock.Anything).Return(nil)

	rep, err := svc.UpdateReport(context.Background(), adminActor, 8, domain.ReportUnderReview, "looking into it")
	assert.NoError(t, err)
	assert.Equal(t, domain.ReportUnderReview, rep.Status)
	assert.Nil(t, rep.ResolvedAt)

	reports.On("GetByID", mock.Anything, int64(8)).
		Return(&domain.Report{ID: 8, Status: domain.ReportUnderReview}, nil).Once()

	rep, err = svc.UpdateReport(context.Background(), adminActor, 8, domain.ReportResolved, "listing removed")
	assert.NoError(t, err)
	assert.Equal(t, domain.ReportResolved, rep.Status)
	assert.NotNil(t, rep.ResolvedAt)
	assert.Equal(t, int64(100), *rep.ResolvedBy)
}

func TestUpdateReport_DirectDismissFromPending(t *testing.T) {
	svc, _, _, reports := newTestService()

	reports.On("GetByID", mock.Anything, int64(8)).
		Return(&domain.Report{ID: 8, Status: domain.ReportPending}, nil)
	reports.On("Update", mock.Anything, mock.Anything).Return(nil)

	rep, err := svc.UpdateReport(context.Background(), adminActor, 8, domain.ReportDismissed, "")

	assert.NoError(t, err)
	assert.Equal(t, domain.ReportDismissed, rep.Status)
	assert.NotNil(t, rep.ResolvedAt)
}

func TestUpdateReport_InvalidTransitions(t *testing.T) {
	svc, _, _, reports := newTestService()

	// pending cannot jump straight to resolved
	reports.On("GetByID", mock.Anything, int64(8)).
		Return(&domain.Report{ID: 8, Status: domain.ReportPending}, nil).Once()
	_, err := svc.UpdateReport(context.Background(), adminActor, 8, domain.ReportResolved, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// terminal states are frozen
	reports.On("GetByID", mock.Anything, int64(8)).
		Return(&domain.Report{ID: 8, Status: domain.ReportResolved}, nil).Once()
	_, err = svc.UpdateReport(context.Background(), adminActor, 8, domain.ReportDismissed, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	reports.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
