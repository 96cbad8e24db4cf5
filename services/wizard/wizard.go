// Package wizard implements the server-side booking checkout: a linear
// DETAILS → PAYMENT → CONFIRMATION state machine with a session per
// customer, a simulated card gateway and a PDF invoice on confirmation.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venue-booking/logger"
	bookingModel "venue-booking/models/booking"
	eventModel "venue-booking/models/event"
	paymentModel "venue-booking/models/payment"
	venueModel "venue-booking/models/venue"
	"venue-booking/services/invoice"
	"venue-booking/services/payment"
	bookingTypes "venue-booking/types/booking"
	paymentTypes "venue-booking/types/payment"
	"venue-booking/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notifier sends the post-confirmation email. Failures must never block or
// undo a confirmed booking.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, b *bookingModel.Booking) error
}

// Service drives wizard sessions. All state lives in the Store; the service
// itself is stateless and safe to share across requests.
type Service struct {
	db       *gorm.DB
	store    Store
	gateway  *payment.Simulator
	notifier Notifier
}

// NewService wires the wizard. notifier may be nil when no mail gateway is
// configured.
func NewService(db *gorm.DB, store Store, gateway *payment.Simulator, notifier Notifier) *Service {
	return &Service{
		db:       db,
		store:    store,
		gateway:  gateway,
		notifier: notifier,
	}
}

// Start opens a checkout session for a bookable item. A failed item lookup
// is surfaced as ErrItemNotFound; there is no silent fallback record.
func (s *Service) Start(ctx context.Context, kind bookingModel.ItemKind, itemID uint, date string, userID *uint) (*Session, error) {
	item, err := s.loadItem(ctx, kind, itemID)
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:           uuid.NewString(),
		Step:         StepDetails,
		PaymentState: PaymentIdle,
		Item:         *item,
		Date:         date,
		UserID:       userID,
		CreatedAt:    time.Now(),
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns the current session state.
func (s *Service) Get(ctx context.Context, sessionID string) (*Session, error) {
	return s.store.Get(ctx, sessionID)
}

// SubmitDetails validates the detail form and, on success, issues a fresh
// booking reference and advances to the payment step. Validation reports the
// first failing rule only and leaves the session in the details step.
func (s *Service) SubmitDetails(ctx context.Context, sessionID string, req bookingTypes.DetailsRequest) (*Session, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepDetails {
		return session, fmt.Errorf("submit details from %s: %w", session.Step, ErrInvalidTransition)
	}

	if err := req.Validate(session.Item.Capacity); err != nil {
		return session, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	session.Draft = Draft{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Guests:          req.Guests,
		EventCategory:   req.Category(),
		SpecialRequests: req.SpecialRequests,
	}

	// References are random per submit, never reused across resubmits.
	session.Reference = utils.GenerateBookingReference()
	session.Step = StepPayment
	session.PaymentState = PaymentIdle
	session.PaymentError = ""

	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitPayment validates the card form, runs the simulated gateway and, on
// success, persists the booking and advances to confirmation. A declined
// charge leaves the session in the payment step's failed sub-state so the
// customer can retry without re-entering card data.
func (s *Service) SubmitPayment(ctx context.Context, sessionID string, card paymentTypes.CardRequest) (*Session, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepPayment {
		return session, fmt.Errorf("submit payment from %s: %w", session.Step, ErrInvalidTransition)
	}
	if session.PaymentState == PaymentProcessing {
		return session, fmt.Errorf("payment already in flight: %w", ErrInvalidTransition)
	}

	// Card validation only gates whether the gateway is invoked; it never
	// influences the simulated outcome.
	if err := card.Validate(time.Now()); err != nil {
		return session, fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	session.PaymentState = PaymentProcessing
	session.PaymentError = ""
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	amount := session.Item.Price
	gatewayRef, procErr := s.gateway.Process(ctx, amount, session.Reference)

	if procErr != nil {
		if errors.Is(procErr, payment.ErrDeclined) {
			s.recordAttempt(session, card, gatewayRef, paymentModel.OutcomeDeclined)
			session.PaymentState = PaymentFailed
			session.PaymentError = "Your payment could not be processed. Please check your details and try again."
			if err := s.store.Save(ctx, session); err != nil {
				return nil, err
			}
			return session, fmt.Errorf("payment for %s: %w", session.Reference, payment.ErrDeclined)
		}
		// Cancellation or store failure: roll the sub-state back to idle.
		session.PaymentState = PaymentIdle
		if saveErr := s.store.Save(ctx, session); saveErr != nil {
			logger.Error("Failed to reset payment sub-state", saveErr)
		}
		return session, procErr
	}

	booking, err := s.confirmBooking(session, card, gatewayRef)
	if err != nil {
		session.PaymentState = PaymentIdle
		if saveErr := s.store.Save(ctx, session); saveErr != nil {
			logger.Error("Failed to reset payment sub-state", saveErr)
		}
		return session, err
	}

	session.Step = StepConfirmation
	session.PaymentState = PaymentIdle
	session.BookingID = booking.ID
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		go func(b bookingModel.Booking) {
			sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := s.notifier.SendBookingConfirmation(sendCtx, &b); err != nil {
				logger.Error("Failed to send confirmation email for "+b.Reference, err)
			}
		}(*booking)
	}

	logger.Success(fmt.Sprintf("Booking %s confirmed for %s", booking.Reference, booking.Email))
	return session, nil
}

// Retry clears a failed payment attempt so the customer can submit again.
func (s *Service) Retry(ctx context.Context, sessionID string) (*Session, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepPayment || session.PaymentState != PaymentFailed {
		return session, fmt.Errorf("retry from %s/%s: %w", session.Step, session.PaymentState, ErrInvalidTransition)
	}

	session.PaymentState = PaymentIdle
	session.PaymentError = ""
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GoBack returns from the payment step to the details step without clearing
// previously entered fields.
func (s *Service) GoBack(ctx context.Context, sessionID string) (*Session, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != StepPayment {
		return session, fmt.Errorf("go back from %s: %w", session.Step, ErrInvalidTransition)
	}
	if session.PaymentState == PaymentProcessing {
		return session, fmt.Errorf("payment in flight: %w", ErrInvalidTransition)
	}

	session.Step = StepDetails
	session.PaymentState = PaymentIdle
	session.PaymentError = ""
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Reset returns the session to an empty details step so the customer can
// book another date on the same item.
func (s *Service) Reset(ctx context.Context, sessionID string) (*Session, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Step = StepDetails
	session.PaymentState = PaymentIdle
	session.PaymentError = ""
	session.Draft = Draft{}
	session.Reference = ""
	session.BookingID = 0
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Invoice renders the confirmation PDF for a completed checkout.
func (s *Service) Invoice(ctx context.Context, sessionID string) (string, []byte, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return "", nil, err
	}
	if session.Step != StepConfirmation {
		return "", nil, fmt.Errorf("invoice from %s: %w", session.Step, ErrInvalidTransition)
	}

	var b bookingModel.Booking
	if err := s.db.WithContext(ctx).First(&b, session.BookingID).Error; err != nil {
		return "", nil, fmt.Errorf("load booking %d: %w", session.BookingID, err)
	}

	pdf, err := invoice.Render(&b)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("invoice_%s.pdf", b.Reference), pdf, nil
}

// loadItem snapshots the bookable item. Only approved listings can be booked.
func (s *Service) loadItem(ctx context.Context, kind bookingModel.ItemKind, itemID uint) (*Item, error) {
	switch kind {
	case bookingModel.ItemKindVenue:
		var v venueModel.Venue
		err := s.db.WithContext(ctx).First(&v, itemID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("load venue %d: %w", itemID, err)
		}
		if !v.Status.CanBeBooked() {
			return nil, ErrItemNotFound
		}
		capacity := v.Capacity
		return &Item{
			Kind:        bookingModel.ItemKindVenue,
			ID:          v.ID,
			Name:        v.Name,
			Description: v.Description,
			Price:       v.Price,
			Capacity:    &capacity,
			Address:     v.Address,
			City:        v.City,
			State:       v.State,
		}, nil

	case bookingModel.ItemKindEvent:
		var e eventModel.Event
		err := s.db.WithContext(ctx).First(&e, itemID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("load event %d: %w", itemID, err)
		}
		if !e.Status.CanBeBooked() {
			return nil, ErrItemNotFound
		}
		return &Item{
			Kind:        bookingModel.ItemKindEvent,
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Price:       e.Price,
			Capacity:    e.Capacity,
		}, nil

	default:
		return nil, ErrItemNotFound
	}
}

// confirmBooking persists the confirmed record, its status audit trail and
// the successful payment attempt in one transaction.
func (s *Service) confirmBooking(session *Session, card paymentTypes.CardRequest, gatewayRef string) (*bookingModel.Booking, error) {
	createdBy := session.Draft.Email

	b := bookingModel.Booking{
		Reference:       session.Reference,
		UserID:          session.UserID,
		ItemKind:        session.Item.Kind,
		ItemID:          session.Item.ID,
		ItemName:        session.Item.Name,
		ItemPrice:       session.Item.Price,
		Name:            session.Draft.Name,
		Email:           session.Draft.Email,
		Phone:           session.Draft.Phone,
		Guests:          session.Draft.Guests,
		EventCategory:   session.Draft.EventCategory,
		SpecialRequests: session.Draft.SpecialRequests,
		Date:            session.Date,
		TotalAmount:     session.Item.Price,
		Status:          bookingModel.BookingStatusPending,
		CreatedBy:       createdBy,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&b).Error; err != nil {
			return err
		}
		if err := tx.Create(&bookingModel.BookingStatusEvent{
			BookingID: b.ID,
			Status:    bookingModel.BookingStatusPending,
			CreatedBy: createdBy,
		}).Error; err != nil {
			return err
		}

		// Payment has settled, so the record confirms in the same commit.
		if err := tx.Model(&b).Update("status", bookingModel.BookingStatusConfirmed).Error; err != nil {
			return err
		}
		b.Status = bookingModel.BookingStatusConfirmed
		if err := tx.Create(&bookingModel.BookingStatusEvent{
			BookingID: b.ID,
			Status:    bookingModel.BookingStatusConfirmed,
			CreatedBy: createdBy,
		}).Error; err != nil {
			return err
		}

		attempt := buildAttempt(session, card, gatewayRef, paymentModel.OutcomeSucceeded)
		return tx.Create(attempt).Error
	})
	if err != nil {
		return nil, fmt.Errorf("persist booking %s: %w", session.Reference, err)
	}
	return &b, nil
}

// recordAttempt writes a declined attempt for the audit trail. Failures are
// logged and otherwise ignored so they never mask the decline itself.
func (s *Service) recordAttempt(session *Session, card paymentTypes.CardRequest, gatewayRef string, outcome paymentModel.Outcome) {
	attempt := buildAttempt(session, card, gatewayRef, outcome)
	if err := s.db.Create(attempt).Error; err != nil {
		logger.Error("Failed to record payment attempt for "+session.Reference, err)
	}
}

func buildAttempt(session *Session, card paymentTypes.CardRequest, gatewayRef string, outcome paymentModel.Outcome) *paymentModel.Payment {
	attempt := &paymentModel.Payment{
		BookingReference: session.Reference,
		Amount:           session.Item.Price,
		GatewayRef:       gatewayRef,
		CardLast4:        card.Last4(),
		CardholderName:   card.CardName,
		Outcome:          outcome,
	}

	if encrypted, err := utils.EncryptCardPAN(card.Number()); err != nil {
		logger.Error("Failed to encrypt card number", err)
	} else if encrypted != "" {
		attempt.CardPANEncrypted = &encrypted
	}
	return attempt
}
