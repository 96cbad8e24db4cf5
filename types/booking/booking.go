package booking

import (
	"fmt"
	"regexp"

	bookingModel "venue-booking/models/booking"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// StartWizardRequest opens a new checkout session for a bookable item.
type StartWizardRequest struct {
	ItemKind string `json:"item_kind" validate:"required,oneof=venue event"`
	ItemID   uint   `json:"item_id" validate:"required"`
	Date     string `json:"date" validate:"omitempty,max=20"`
}

func (r StartWizardRequest) Validate() error {
	if !bookingModel.ItemKind(r.ItemKind).IsValid() {
		return fmt.Errorf("item_kind must be either 'venue' or 'event'")
	}
	if r.ItemID == 0 {
		return fmt.Errorf("item_id is required")
	}
	return nil
}

// DetailsRequest is the customer detail form submitted on the first wizard
// step. Validation reports only the first failing rule.
type DetailsRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=255"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,len=10"`
	Guests          int    `json:"guests" validate:"required,min=1"`
	EventCategory   string `json:"event_category" validate:"omitempty,oneof=wedding corporate birthday anniversary other"`
	SpecialRequests string `json:"special_requests" validate:"omitempty"`
}

// Validate checks the detail form against an item capacity. A nil capacity
// means the item has no headcount limit (vendor services).
func (r DetailsRequest) Validate(capacity *int) error {
	if r.Name == "" || r.Email == "" || r.Phone == "" || r.Guests == 0 {
		return fmt.Errorf("please fill in all required fields")
	}
	if !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("please enter a valid email address")
	}
	if !phonePattern.MatchString(r.Phone) {
		return fmt.Errorf("please enter a valid 10-digit phone number")
	}
	if r.Guests < 1 {
		return fmt.Errorf("guest count must be a positive number")
	}
	if capacity != nil && r.Guests > *capacity {
		return fmt.Errorf("guest count exceeds the capacity of %d", *capacity)
	}
	if r.EventCategory != "" && !bookingModel.EventCategory(r.EventCategory).IsValid() {
		return fmt.Errorf("invalid event category")
	}
	return nil
}

// Category returns the selected category, defaulting to wedding like the
// booking form does.
func (r DetailsRequest) Category() bookingModel.EventCategory {
	if r.EventCategory == "" {
		return bookingModel.EventCategoryWedding
	}
	return bookingModel.EventCategory(r.EventCategory)
}
