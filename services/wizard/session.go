package wizard

import (
	"errors"
	"time"

	bookingModel "venue-booking/models/booking"
)

// Step is the wizard's current position in the checkout flow.
type Step string

const (
	StepDetails      Step = "details"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// PaymentState is the sub-state within the payment step.
type PaymentState string

const (
	PaymentIdle       PaymentState = "idle"
	PaymentProcessing PaymentState = "processing"
	PaymentFailed     PaymentState = "failed"
)

var (
	// ErrSessionNotFound is returned for unknown or expired sessions.
	ErrSessionNotFound = errors.New("checkout session not found")

	// ErrInvalidTransition is returned when an operation is called from the
	// wrong step.
	ErrInvalidTransition = errors.New("invalid wizard transition")

	// ErrItemNotFound is returned when the bookable item does not exist or
	// is not open for booking.
	ErrItemNotFound = errors.New("bookable item not found")

	// ErrValidation wraps a human-readable form validation message.
	ErrValidation = errors.New("validation failed")
)

// Item is the read-only snapshot of the venue or vendor service being
// booked, taken when the session starts. Capacity is nil for services
// without a headcount limit.
type Item struct {
	Kind        bookingModel.ItemKind `json:"kind"`
	ID          uint                  `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Price       int64                 `json:"price"`
	Capacity    *int                  `json:"capacity,omitempty"`
	Address     string                `json:"address,omitempty"`
	City        string                `json:"city,omitempty"`
	State       string                `json:"state,omitempty"`
}

// Draft holds the customer-entered reservation details for the session's
// lifetime. It is frozen once payment succeeds.
type Draft struct {
	Name            string                     `json:"name"`
	Email           string                     `json:"email"`
	Phone           string                     `json:"phone"`
	Guests          int                        `json:"guests"`
	EventCategory   bookingModel.EventCategory `json:"event_category"`
	SpecialRequests string                     `json:"special_requests"`
}

// Session is one customer's walk through the booking wizard. It is owned by
// a single checkout; the store's TTL reclaims abandoned sessions.
type Session struct {
	ID           string       `json:"id"`
	Step         Step         `json:"step"`
	PaymentState PaymentState `json:"payment_state"`
	PaymentError string       `json:"payment_error,omitempty"`

	Item Item   `json:"item"`
	Date string `json:"date"`

	Draft Draft `json:"draft"`

	// Reference is issued when the details step passes validation and is
	// regenerated on every successful resubmit.
	Reference string `json:"reference,omitempty"`

	// BookingID links to the persisted record once payment settles.
	BookingID uint `json:"booking_id,omitempty"`

	// UserID ties the checkout to an authenticated customer, if any.
	UserID *uint `json:"user_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
