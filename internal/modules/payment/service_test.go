package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"housequay/internal/domain"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, s *domain.PaymentSession) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		s.ID = 777
	}
	return args.Error(0)
}

func (m *MockSessionRepository) GetByRef(ctx context.Context, ref string) (*domain.PaymentSession, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentSession), args.Error(1)
}

func (m *MockSessionRepository) ListByBooking(ctx context.Context, bookingID int64) ([]domain.PaymentSession, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).([]domain.PaymentSession), args.Error(1)
}

func (m *MockSessionRepository) MarkCompletedIdempotent(ctx context.Context, ref, rawPayload string, at time.Time) (bool, error) {
	args := m.Called(ctx, ref, rawPayload, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockSessionRepository) MarkFailed(ctx context.Context, ref, reason, rawPayload string) error {
	args := m.Called(ctx, ref, reason, rawPayload)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus, ref string) error {
	args := m.Called(ctx, id, status, ref)
	return args.Error(0)
}

func newTestService() (*Service, *MockSessionRepository, *MockBookingRepository) {
	sessions := new(MockSessionRepository)
	bookings := new(MockBookingRepository)
	svc := NewService(sessions, bookings, Config{
		CheckoutBaseURL: "https://checkout.example.com/session",
		Currency:        "USD",
	})
	return svc, sessions, bookings
}

var guest = domain.Actor{UserID: 10, Role: domain.RoleBoater}

func payableBooking() *domain.Booking {
	return &domain.Booking{
		ID:            42,
		GuestID:       10,
		HostID:        20,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPending,
		Total:         356,
	}
}

func TestCreateCheckout_Success(t *testing.T) {
	svc, sessions, bookings := newTestService()

	bookings.On("GetByID", mock.Anything, int64(42)).Return(payableBooking(), nil)
	sessions.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.PaymentSession) bool {
		return s.BookingID == 42 && s.Amount == 356 && s.Status == domain.SessionCreated && s.SessionRef != ""
	})).Return(nil)
	bookings.On("UpdatePaymentStatus", mock.Anything, int64(42), domain.PaymentProcessing, mock.Anything).Return(nil)

	out, err := svc.CreateCheckout(context.Background(), guest, 42)

	assert.NoError(t, err)
	assert.NotEmpty(t, out.SessionRef)
	assert.Contains(t, out.CheckoutURL, out.SessionRef)
	assert.Equal(t, 356.0, out.Amount)
	assert.Equal(t, "USD", out.Currency)
	sessions.AssertExpectations(t)
	bookings.AssertExpectations(t)
}

func TestCreateCheckout_OnlyGuestMayPay(t *testing.T) {
	svc, _, bookings := newTestService()

	bookings.On("GetByID", mock.Anything, int64(42)).Return(payableBooking(), nil)

	host := domain.Actor{UserID: 20, Role: domain.RoleHost}
	_, err := svc.CreateCheckout(context.Background(), host, 42)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateCheckout_TerminalBookingNotPayable(t *testing.T) {
	svc, _, bookings := newTestService()

	for _, status := range []domain.BookingStatus{
		domain.BookingCancelled, domain.BookingDeclined, domain.BookingCompleted,
	} {
		b := payableBooking()
		b.Status = status
		bookings.On("GetByID", mock.Anything, int64(42)).Return(b, nil).Once()

		_, err := svc.CreateCheckout(context.Background(), guest, 42)
		assert.ErrorIs(t, err, ErrNotPayable, "status %s", status)
	}
}

func TestCreateCheckout_AlreadyPaid(t *testing.T) {
	svc, _, bookings := newTestService()

	b := payableBooking()
	b.PaymentStatus = domain.PaymentCompleted
	bookings.On("GetByID", mock.Anything, int64(42)).Return(b, nil)

	_, err := svc.CreateCheckout(context.Background(), guest, 42)

	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestCreateCheckout_BookingNotFound(t *testing.T) {
	svc, _, bookings := newTestService()

	bookings.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.CreateCheckout(context.Background(), guest, 42)

	assert.ErrorIs(t, err, ErrBookingGone)
}

func TestHandleProviderResult_Success(t *testing.T) {
	svc, sessions, bookings := newTestService()

	sessions.On("GetByRef", mock.Anything, "ref-1").
		Return(&domain.PaymentSession{BookingID: 42, SessionRef: "ref-1", Status: domain.SessionCreated}, nil)
	sessions.On("MarkCompletedIdempotent", mock.Anything, "ref-1", mock.Anything, mock.Anything).Return(true, nil)
	bookings.On("UpdatePaymentStatus", mock.Anything, int64(42), domain.PaymentCompleted, "ref-1").Return(nil)

	err := svc.HandleProviderResult(context.Background(), ProviderResult{SessionRef: "ref-1", Status: "success"})

	assert.NoError(t, err)
	bookings.AssertExpectations(t)
}

func TestHandleProviderResult_ReplayIsNoOp(t *testing.T) {
	svc, sessions, bookings := newTestService()

	sessions.On("GetByRef", mock.Anything, "ref-1").
		Return(&domain.PaymentSession{BookingID: 42, SessionRef: "ref-1", Status: domain.SessionCompleted}, nil)
	sessions.On("MarkCompletedIdempotent", mock.Anything, "ref-1", mock.Anything, mock.Anything).Return(false, nil)

	err := svc.HandleProviderResult(context.Background(), ProviderResult{SessionRef: "ref-1", Status: "success"})

	assert.NoError(t, err)
	bookings.AssertNotCalled(t, "UpdatePaymentStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleProviderResult_Failure(t *testing.T) {
	svc, sessions, bookings := newTestService()

	sessions.On("GetByRef", mock.Anything, "ref-1").
		Return(&domain.PaymentSession{BookingID: 42, SessionRef: "ref-1", Status: domain.SessionCreated}, nil)
	sessions.On("MarkFailed", mock.Anything, "ref-1", "card declined", mock.Anything).Return(nil)
	bookings.On("UpdatePaymentStatus", mock.Anything, int64(42), domain.PaymentFailed, "ref-1").Return(nil)

	err := svc.HandleProviderResult(context.Background(), ProviderResult{
		SessionRef: "ref-1",
		Status:     "failed",
		Reason:     "card declined",
	})

	assert.NoError(t, err)
	sessions.AssertExpectations(t)
}

func TestHandleProviderResult_UnknownRef(t *testing.T) {
	svc, sessions, _ := newTestService()

	sessions.On("GetByRef", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	err := svc.HandleProviderResult(context.Background(), ProviderResult{SessionRef: "missing", Status: "success"})

	assert.ErrorIs(t, err, ErrUnknownSession)
}

func TestHandleProviderResult_UnknownStatus(t *testing.T) {
	svc, sessions, _ := newTestService()

	sessions.On("GetByRef", mock.Anything, "ref-1").
		Return(&domain.PaymentSession{BookingID: 42, SessionRef: "ref-1"}, nil)

	err := svc.HandleProviderResult(context.Background(), ProviderResult{SessionRef: "ref-1", Status: "mystery"})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestListForBooking_VisibleToParticipantsOnly(t *testing.T) {
	svc, sessions, bookings := newTestService()

	bookings.On("GetByID", mock.Anything, int64(42)).Return(payableBooking(), nil)
	sessions.On("ListByBooking", mock.Anything, int64(42)).Return([]domain.PaymentSession{{ID: 1}}, nil)

	out, err := svc.ListForBooking(context.Background(), guest, 42)
	assert.NoError(t, err)
	assert.Len(t, out, 1)

	stranger := domain.Actor{UserID: 999, Role: domain.RoleBoater}
	_, err = svc.ListForBooking(context.Background(), stranger, 42)
	assert.ErrorIs(t, err, ErrForbidden)
}
