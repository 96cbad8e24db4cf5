package message

import (
	"fmt"
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CreateRequest is a contact-form submission.
type CreateRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,min=1"`
}

func (r CreateRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("please enter a valid email address")
	}
	if r.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}
