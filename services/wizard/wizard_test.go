package wizard

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	bookingModel "venue-booking/models/booking"
	"venue-booking/services/payment"
	bookingTypes "venue-booking/types/booking"
	paymentTypes "venue-booking/types/payment"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// memStore is an in-memory Store for exercising the state machine without
// redis. Sessions round-trip through JSON so tests see the same copy
// semantics the redis store has.
type memStore struct {
	sessions map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string][]byte)}
}

func (m *memStore) Save(ctx context.Context, s *Session) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	m.sessions[s.ID] = payload
	return nil
}

func (m *memStore) Get(ctx context.Context, id string) (*Session, error) {
	payload, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func (m *memStore) seed(t *testing.T, s *Session) {
	t.Helper()
	require.NoError(t, m.Save(context.Background(), s))
}

func newTestService(store Store) *Service {
	gateway := payment.New(1.0, 0, rand.NewSource(1))
	return NewService(nil, store, gateway, nil)
}

// newMockDB opens gorm over a sqlmock connection so persistence paths can be
// exercised without postgres.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func validCard() paymentTypes.CardRequest {
	return paymentTypes.CardRequest{
		CardNumber: "4111111111111111",
		CardName:   "Priya Sharma",
		ExpiryDate: "12/30",
		CVV:        "123",
	}
}

func detailsSession(id string) *Session {
	capacity := 500
	return &Session{
		ID:           id,
		Step:         StepDetails,
		PaymentState: PaymentIdle,
		Item: Item{
			Kind:     bookingModel.ItemKindVenue,
			ID:       1,
			Name:     "Luxury Banquet Hall",
			Price:    50000,
			Capacity: &capacity,
		},
		Date:      "2026-10-15",
		CreatedAt: time.Now(),
	}
}

func validDetails() bookingTypes.DetailsRequest {
	return bookingTypes.DetailsRequest{
		Name:          "Priya Sharma",
		Email:         "priya@example.com",
		Phone:         "9876543210",
		Guests:        250,
		EventCategory: "wedding",
	}
}

func TestGetUnknownSession(t *testing.T) {
	svc := newTestService(newMemStore())

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSubmitDetailsAdvancesToPayment(t *testing.T) {
	store := newMemStore()
	store.seed(t, detailsSession("s1"))
	svc := newTestService(store)

	session, err := svc.SubmitDetails(context.Background(), "s1", validDetails())
	require.NoError(t, err)

	assert.Equal(t, StepPayment, session.Step)
	assert.Equal(t, PaymentIdle, session.PaymentState)
	assert.Equal(t, "Priya Sharma", session.Draft.Name)
	assert.Equal(t, bookingModel.EventCategoryWedding, session.Draft.EventCategory)
	assert.Regexp(t, `^BK\d{7}$`, session.Reference)
}

func TestSubmitDetailsValidationKeepsStep(t *testing.T) {
	store := newMemStore()
	store.seed(t, detailsSession("s1"))
	svc := newTestService(store)

	req := validDetails()
	req.Guests = 501

	session, err := svc.SubmitDetails(context.Background(), "s1", req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "guest count exceeds the capacity of 500")

	// The stored session must still be on the details step with no reference.
	assert.Equal(t, StepDetails, session.Step)
	stored, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, StepDetails, stored.Step)
	assert.Empty(t, stored.Reference)
}

func TestSubmitDetailsFromPaymentStepRejected(t *testing.T) {
	store := newMemStore()
	s := detailsSession("s1")
	s.Step = StepPayment
	store.seed(t, s)
	svc := newTestService(store)

	_, err := svc.SubmitDetails(context.Background(), "s1", validDetails())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestResubmitDetailsIssuesFreshReference(t *testing.T) {
	store := newMemStore()
	store.seed(t, detailsSession("s1"))
	svc := newTestService(store)

	ctx := context.Background()
	first, err := svc.SubmitDetails(ctx, "s1", validDetails())
	require.NoError(t, err)

	_, err = svc.GoBack(ctx, "s1")
	require.NoError(t, err)

	second, err := svc.SubmitDetails(ctx, "s1", validDetails())
	require.NoError(t, err)

	assert.NotEqual(t, first.Reference, second.Reference)
}

func TestGoBackPreservesDraft(t *testing.T) {
	store := newMemStore()
	store.seed(t, detailsSession("s1"))
	svc := newTestService(store)

	ctx := context.Background()
	_, err := svc.SubmitDetails(ctx, "s1", validDetails())
	require.NoError(t, err)

	session, err := svc.GoBack(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, StepDetails, session.Step)
	assert.Equal(t, "Priya Sharma", session.Draft.Name)
	assert.Equal(t, "priya@example.com", session.Draft.Email)
}

func TestGoBackFromDetailsRejected(t *testing.T) {
	store := newMemStore()
	store.seed(t, detailsSession("s1"))
	svc := newTestService(store)

	_, err := svc.GoBack(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSubmitPaymentFromDetailsRejected(t *testing.T) {
	store := newMemStore()
	store.seed(t, detailsSession("s1"))
	svc := newTestService(store)

	_, err := svc.SubmitPayment(context.Background(), "s1", validCard())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSubmitPaymentCardValidationKeepsSubState(t *testing.T) {
	store := newMemStore()
	s := detailsSession("s1")
	s.Step = StepPayment
	s.Reference = "BK0001234"
	store.seed(t, s)
	svc := newTestService(store)

	card := paymentTypes.CardRequest{
		CardNumber: "4111",
		CardName:   "Priya Sharma",
		ExpiryDate: "12/30",
		CVV:        "123",
	}
	_, err := svc.SubmitPayment(context.Background(), "s1", card)
	assert.ErrorIs(t, err, ErrValidation)

	stored, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, StepPayment, stored.Step)
	assert.Equal(t, PaymentIdle, stored.PaymentState)
}

func TestSubmitPaymentWhileProcessingRejected(t *testing.T) {
	store := newMemStore()
	s := detailsSession("s1")
	s.Step = StepPayment
	s.PaymentState = PaymentProcessing
	store.seed(t, s)
	svc := newTestService(store)

	_, err := svc.SubmitPayment(context.Background(), "s1", validCard())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRetryOnlyFromFailedPayment(t *testing.T) {
	store := newMemStore()
	s := detailsSession("s1")
	s.Step = StepPayment
	s.PaymentState = PaymentFailed
	s.PaymentError = "Your payment could not be processed. Please check your details and try again."
	store.seed(t, s)
	svc := newTestService(store)

	session, err := svc.Retry(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, PaymentIdle, session.PaymentState)
	assert.Empty(t, session.PaymentError)

	// Retrying again from the idle sub-state is an invalid transition.
	_, err = svc.Retry(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestResetClearsSession(t *testing.T) {
	store := newMemStore()
	store.seed(t, detailsSession("s1"))
	svc := newTestService(store)

	ctx := context.Background()
	_, err := svc.SubmitDetails(ctx, "s1", validDetails())
	require.NoError(t, err)

	session, err := svc.Reset(ctx, "s1")
	require.NoError(t, err)

	assert.Equal(t, StepDetails, session.Step)
	assert.Equal(t, Draft{}, session.Draft)
	assert.Empty(t, session.Reference)
	assert.Zero(t, session.BookingID)

	// The item snapshot survives a reset so the customer can book again.
	assert.Equal(t, "Luxury Banquet Hall", session.Item.Name)
}

func paymentSession(id string) *Session {
	s := detailsSession(id)
	s.Step = StepPayment
	s.Reference = "BK0001234"
	s.Draft = Draft{
		Name:          "Priya Sharma",
		Email:         "priya@example.com",
		Phone:         "9876543210",
		Guests:        250,
		EventCategory: bookingModel.EventCategoryWedding,
	}
	return s
}

func TestSubmitPaymentDeclinedKeepsSessionForRetry(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY=")

	store := newMemStore()
	store.seed(t, paymentSession("s1"))

	db, mock := newMockDB(t)

	// The declined attempt is still recorded in the payment audit trail.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	svc := NewService(db, store, payment.New(0.0, 0, rand.NewSource(1)), nil)

	ctx := context.Background()
	session, err := svc.SubmitPayment(ctx, "s1", validCard())
	assert.ErrorIs(t, err, payment.ErrDeclined)

	assert.Equal(t, StepPayment, session.Step)
	assert.Equal(t, PaymentFailed, session.PaymentState)
	assert.Contains(t, session.PaymentError, "could not be processed")

	// The failed sub-state is persisted, and retry clears it.
	stored, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, PaymentFailed, stored.PaymentState)

	session, err = svc.Retry(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, PaymentIdle, session.PaymentState)
	assert.Empty(t, session.PaymentError)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitPaymentSuccessConfirmsBooking(t *testing.T) {
	t.Setenv("ENCRYPTION_KEY", "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY=")

	store := newMemStore()
	store.seed(t, paymentSession("s1"))

	db, mock := newMockDB(t)

	// One transaction: pending booking + audit event, confirm + audit event,
	// then the succeeded payment attempt.
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectQuery(`INSERT INTO "booking_status_events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "bookings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "booking_status_events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	svc := NewService(db, store, payment.New(1.0, 0, rand.NewSource(1)), nil)

	ctx := context.Background()
	session, err := svc.SubmitPayment(ctx, "s1", validCard())
	require.NoError(t, err)

	assert.Equal(t, StepConfirmation, session.Step)
	assert.Equal(t, PaymentIdle, session.PaymentState)
	assert.Equal(t, uint(42), session.BookingID)

	stored, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, StepConfirmation, stored.Step)
	assert.Equal(t, uint(42), stored.BookingID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceBeforeConfirmationRejected(t *testing.T) {
	store := newMemStore()
	s := detailsSession("s1")
	s.Step = StepPayment
	store.seed(t, s)
	svc := newTestService(store)

	_, _, err := svc.Invoice(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
