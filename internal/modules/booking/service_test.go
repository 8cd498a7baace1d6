package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"housequay/internal/domain"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateIfAvailable(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) HasOverlap(ctx context.Context, listingID int64, checkIn, checkOut time.Time) (bool, error) {
	args := m.Called(ctx, listingID, checkIn, checkOut)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByIDWithListing(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByGuest(ctx context.Context, guestID int64, limit, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, guestID, limit, offset)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByHost(ctx context.Context, hostID int64, limit, offset int) ([]domain.Booking, error) {
	args := m.Called(ctx, hostID, limit, offset)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListForListing(ctx context.Context, listingID int64, from, to time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, listingID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepository) Cancel(ctx context.Context, id, cancelledBy int64, reason string, at time.Time) error {
	args := m.Called(ctx, id, cancelledBy, reason, at)
	return args.Error(0)
}

type MockListingReader struct {
	mock.Mock
}

func (m *MockListingReader) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

type MockBlockedDateReader struct {
	mock.Mock
}

func (m *MockBlockedDateReader) HasOverlap(ctx context.Context, listingID int64, start, end time.Time) (bool, error) {
	args := m.Called(ctx, listingID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockBlockedDateReader) ListForListing(ctx context.Context, listingID int64) ([]domain.BlockedDate, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlockedDate), args.Error(1)
}

func activeListing() *domain.Listing {
	return &domain.Listing{
		ID:             10,
		HostID:         2,
		PricePerNight:  100,
		CleaningFee:    0,
		ServiceFeeRate: 0.12,
		MinimumStay:    2,
		Status:         domain.ListingActive,
		IsActive:       true,
	}
}

func newTestService() (*Service, *MockBookingRepository, *MockListingReader, *MockBlockedDateReader) {
	bookings := new(MockBookingRepository)
	listings := new(MockListingReader)
	blocked := new(MockBlockedDateReader)
	return NewService(bookings, listings, blocked), bookings, listings, blocked
}

func TestService_Create_Success(t *testing.T) {
	svc, bookings, listings, blocked := newTestService()
	guest := domain.Actor{UserID: 1, Role: domain.RoleBoater}

	listings.On("GetByID", mock.Anything, int64(10)).Return(activeListing(), nil)
	bookings.On("HasOverlap", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(false, nil)
	blocked.On("HasOverlap", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(false, nil)
	bookings.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(nil)

	b, err := svc.Create(context.Background(), guest, CreateBookingRequest{
		ListingID: 10,
		CheckIn:   "2025-06-01",
		CheckOut:  "2025-06-04",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, 300.0, b.Subtotal)
	assert.Equal(t, 36.0, b.ServiceFee)
	assert.Equal(t, 336.0, b.Total)
	assert.Equal(t, int64(2), b.HostID)
	bookings.AssertExpectations(t)
}

func TestService_Create_InstantBookConfirms(t *testing.T) {
	svc, bookings, listings, blocked := newTestService()
	guest := domain.Actor{UserID: 1, Role: domain.RoleBoater}

	l := activeListing()
	l.InstantBook = true
	listings.On("GetByID", mock.Anything, int64(10)).Return(l, nil)
	bookings.On("HasOverlap", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(false, nil)
	blocked.On("HasOverlap", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(false, nil)
	bookings.On("CreateIfAvailable", mock.Anything, mock.Anything).Return(nil)

	b, err := svc.Create(context.Background(), guest, CreateBookingRequest{
		ListingID: 10,
		CheckIn:   "2025-06-01",
		CheckOut:  "2025-06-03",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

func TestService_Create_ListingNotBookable(t *testing.T) {
	svc, bookings, listings, _ := newTestService()
	guest := domain.Actor{UserID: 1, Role: domain.RoleBoater}

	for _, status := range []domain.ListingStatus{domain.ListingPendingReview, domain.ListingPaused, domain.ListingRejected} {
		l := activeListing()
		l.Status = status
		listings.ExpectedCalls = nil
		listings.On("GetByID", mock.Anything, int64(10)).Return(l, nil)

		_, err := svc.Create(context.Background(), guest, CreateBookingRequest{
			ListingID: 10,
			CheckIn:   "2025-06-01",
			CheckOut:  "2025-06-03",
		})

		assert.ErrorIs(t, err, ErrNotBookable)
	}

	// inactive flag alone also blocks
	l := activeListing()
	l.IsActive = false
	listings.ExpectedCalls = nil
	listings.On("GetByID", mock.Anything, int64(10)).Return(l, nil)

	_, err := svc.Create(context.Background(), guest, CreateBookingRequest{
		ListingID: 10,
		CheckIn:   "2025-06-01",
		CheckOut:  "2025-06-03",
	})

	assert.ErrorIs(t, err, ErrNotBookable)
	bookings.AssertNotCalled(t, "CreateIfAvailable", mock.Anything, mock.Anything)
}

func TestService_Create_HostCannotBookOwnListing(t *testing.T) {
	svc, bookings, listings, _ := newTestService()
	host := domain.Actor{UserID: 2, Role: domain.RoleHost}

	listings.On("GetByID", mock.Anything, int64(10)).Return(activeListing(), nil)

	_, err := svc.Create(context.Background(), host, CreateBookingRequest{
		ListingID: 10,
		CheckIn:   "2025-06-01",
		CheckOut:  "2025-06-03",
	})

	assert.ErrorIs(t, err, ErrOwnListing)
	bookings.AssertNotCalled(t, "CreateIfAvailable", mock.Anything, mock.Anything)
}

func TestService_Create_RejectsZeroNights(t *testing.T) {
	svc, bookings, listings, _ := newTestService()
	guest := domain.Actor{UserID: 1, Role: domain.RoleBoater}

	listings.On("GetByID", mock.Anything, int64(10)).Return(activeListing(), nil)

	_, err := svc.Create(context.Background(), guest, CreateBookingRequest{
		ListingID: 10,
		CheckIn:   "2025-06-04",
		CheckOut:  "2025-06-04",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), guest, CreateBookingRequest{
		ListingID: 10,
		CheckIn:   "2025-06-04",
		CheckOut:  "2025-06-01",
	})
	assert.ErrorIs(t, err, ErrValidation)

	bookings.AssertNotCalled(t, "HasOverlap", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_RejectsBelowMinimumStay(t *testing.T) {
	svc, bookings, listings, _ := newTestService()
	guest := domain.Actor{UserID: 1, Role: domain.RoleBoater}

	listings.On("GetByID", mock.Anything, int64(10)).Return(activeListing(), nil)

	_, err := svc.Create(context.Background(), guest, CreateBookingRequest{
		ListingID: 10,
		CheckIn:   "2025-06-01",
		CheckOut:  "2025-06-02", // 1 night, minimum is 2
	})

	assert.ErrorIs(t, err, ErrMinimumStay)
	bookings.AssertNotCalled(t, "CreateIfAvailable", mock.Anything, mock.Anything)
}

func TestService_Create_RejectsOverlap(t *testing.T) {
	svc, bookings, listings, _ := newTestService()
	guest := domain.Actor{UserID: 1, Role: domain.RoleBoater}

	listings.On("GetByID", mock.Anything, int64(10)).Return(activeListing(), nil)
	bookings.On("HasOverlap", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(true, nil)

	_, err := svc.Create(context.Background(), guest, CreateBookingRequest{
		ListingID: 10,
		CheckIn:   "2025-06-03",
		CheckOut:  "2025-06-05",
	})

	assert.ErrorIs(t, err, ErrNotAvailable)
	bookings.AssertNotCalled(t, "CreateIfAvailable", mock.Anything, mock.Anything)
}

func TestService_Create_RejectsBlockedDates(t *testing.T) {
	svc, bookings, listings, blocked := newTestService()
	guest := domain.Actor{UserID: 1, Role: domain.RoleBoater}

	listings.On("GetByID", mock.Anything, int64(10)).Return(activeListing(), nil)
	bookings.On("HasOverlap", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(false, nil)
	blocked.On("HasOverlap", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(true, nil)

	_, err := svc.Create(context.Background(), guest, CreateBookingRequest{
		ListingID: 10,
		CheckIn:   "2025-06-01",
		CheckOut:  "2025-06-03",
	})

	assert.ErrorIs(t, err, ErrNotAvailable)
	bookings.AssertNotCalled(t, "CreateIfAvailable", mock.Anything, mock.Anything)
}

func TestService_Create_ListingNotFound(t *testing.T) {
	svc, _, listings, _ := newTestService()
	guest := domain.Actor{UserID: 1, Role: domain.RoleBoater}

	listings.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), guest, CreateBookingRequest{
		ListingID: 99,
		CheckIn:   "2025-06-01",
		CheckOut:  "2025-06-03",
	})

	assert.ErrorIs(t, err, ErrListingNotFound)
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:        7,
		ListingID: 10,
		GuestID:   1,
		HostID:    2,
		Status:    domain.BookingPending,
	}
}

func TestService_Transition_HostApproves(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	host := domain.Actor{UserID: 2, Role: domain.RoleHost}

	b := pendingBooking()
	confirmed := *b
	confirmed.Status = domain.BookingConfirmed

	bookings.On("GetByID", mock.Anything, int64(7)).Return(b, nil).Once()
	bookings.On("UpdateStatus", mock.Anything, int64(7), domain.BookingConfirmed).Return(nil)
	bookings.On("GetByID", mock.Anything, int64(7)).Return(&confirmed, nil).Once()

	got, err := svc.Transition(context.Background(), host, 7, TransitionRequest{Action: "approve"})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, got.Status)
	bookings.AssertExpectations(t)
}

func TestService_Transition_GuestCannotApprove(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	guest := domain.Actor{UserID: 1, Role: domain.RoleBoater}

	bookings.On("GetByID", mock.Anything, int64(7)).Return(pendingBooking(), nil)

	_, err := svc.Transition(context.Background(), guest, 7, TransitionRequest{Action: "approve"})

	assert.ErrorIs(t, err, ErrForbidden)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Transition_ApproveNonPendingRejected(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	host := domain.Actor{UserID: 2, Role: domain.RoleHost}

	b := pendingBooking()
	b.Status = domain.BookingConfirmed
	bookings.On("GetByID", mock.Anything, int64(7)).Return(b, nil)

	_, err := svc.Transition(context.Background(), host, 7, TransitionRequest{Action: "approve"})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Transition_GuestCancelsWithReason(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	guest := domain.Actor{UserID: 1, Role: domain.RoleBoater}

	b := pendingBooking()
	b.Status = domain.BookingConfirmed
	cancelled := *b
	cancelled.Status = domain.BookingCancelled

	bookings.On("GetByID", mock.Anything, int64(7)).Return(b, nil).Once()
	bookings.On("Cancel", mock.Anything, int64(7), int64(1), "change of plans", mock.Anything).Return(nil)
	bookings.On("GetByID", mock.Anything, int64(7)).Return(&cancelled, nil).Once()

	got, err := svc.Transition(context.Background(), guest, 7, TransitionRequest{
		Action:             "cancel",
		CancellationReason: "change of plans",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, got.Status)
	bookings.AssertExpectations(t)
}

func TestService_Transition_CancelCompletedRejected(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	guest := domain.Actor{UserID: 1, Role: domain.RoleBoater}

	b := pendingBooking()
	b.Status = domain.BookingCompleted
	bookings.On("GetByID", mock.Anything, int64(7)).Return(b, nil)

	_, err := svc.Transition(context.Background(), guest, 7, TransitionRequest{Action: "cancel"})

	assert.ErrorIs(t, err, ErrInvalidTransition)
	bookings.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Transition_StrangerForbidden(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	stranger := domain.Actor{UserID: 42, Role: domain.RoleBoater}

	bookings.On("GetByID", mock.Anything, int64(7)).Return(pendingBooking(), nil)

	_, err := svc.Transition(context.Background(), stranger, 7, TransitionRequest{Action: "cancel"})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Transition_UnknownAction(t *testing.T) {
	svc, bookings, _, _ := newTestService()
	host := domain.Actor{UserID: 2, Role: domain.RoleHost}

	bookings.On("GetByID", mock.Anything, int64(7)).Return(pendingBooking(), nil)

	_, err := svc.Transition(context.Background(), host, 7, TransitionRequest{Action: "complete"})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_IsAvailable_BoundaryTouchDoesNotConflict(t *testing.T) {
	svc, bookings, _, blocked := newTestService()

	checkIn, _ := ParseDate("2025-06-04")
	checkOut, _ := ParseDate("2025-06-06")

	// The repository query owns the half-open comparison; the service must
	// pass the boundaries through untouched.
	bookings.On("HasOverlap", mock.Anything, int64(10), checkIn, checkOut).Return(false, nil)
	blocked.On("HasOverlap", mock.Anything, int64(10), checkIn, checkOut).Return(false, nil)

	ok, err := svc.IsAvailable(context.Background(), 10, checkIn, checkOut)

	assert.NoError(t, err)
	assert.True(t, ok)
	bookings.AssertExpectations(t)
}

func TestService_IsAvailable_RejectsEmptyRange(t *testing.T) {
	svc, _, _, _ := newTestService()

	d, _ := ParseDate("2025-06-04")
	_, err := svc.IsAvailable(context.Background(), 10, d, d)

	assert.ErrorIs(t, err, ErrValidation)
}
