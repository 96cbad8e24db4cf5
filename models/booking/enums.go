package booking

// ItemKind distinguishes what the booking reserves.
type ItemKind string

const (
	ItemKindVenue ItemKind = "venue"
	ItemKindEvent ItemKind = "event"
)

func (ik ItemKind) IsValid() bool {
	switch ik {
	case ItemKindVenue, ItemKindEvent:
		return true
	default:
		return false
	}
}

// EventCategory is the occasion the customer is booking for.
type EventCategory string

const (
	EventCategoryWedding     EventCategory = "wedding"
	EventCategoryCorporate   EventCategory = "corporate"
	EventCategoryBirthday    EventCategory = "birthday"
	EventCategoryAnniversary EventCategory = "anniversary"
	EventCategoryOther       EventCategory = "other"
)

func (ec EventCategory) String() string {
	return string(ec)
}

func (ec EventCategory) IsValid() bool {
	switch ec {
	case EventCategoryWedding, EventCategoryCorporate, EventCategoryBirthday,
		EventCategoryAnniversary, EventCategoryOther:
		return true
	default:
		return false
	}
}

// BookingStatus is the lifecycle state of a confirmed booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (bs BookingStatus) String() string {
	return string(bs)
}

func (bs BookingStatus) IsValid() bool {
	switch bs {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusApproved,
		BookingStatusRejected, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsFinal returns true once no further status change is allowed.
func (bs BookingStatus) IsFinal() bool {
	return bs == BookingStatusRejected || bs == BookingStatusCancelled
}

// CanBeCancelled returns true if the customer may still cancel.
func (bs BookingStatus) CanBeCancelled() bool {
	return bs == BookingStatusPending || bs == BookingStatusConfirmed || bs == BookingStatusApproved
}

// CanBeActioned returns true if the vendor may still approve or reject.
func (bs BookingStatus) CanBeActioned() bool {
	return bs == BookingStatusConfirmed
}

// GetAllBookingStatuses returns all valid booking statuses
func GetAllBookingStatuses() []BookingStatus {
	return []BookingStatus{
		BookingStatusPending,
		BookingStatusConfirmed,
		BookingStatusApproved,
		BookingStatusRejected,
		BookingStatusCancelled,
	}
}
