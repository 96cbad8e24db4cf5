package event

import (
	"fmt"
)

// UpsertRequest covers both service creation and update by vendors.
type UpsertRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Category    string `json:"category" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty"`
	Image       string `json:"image" validate:"omitempty,max=2048"`
	Price       int64  `json:"price" validate:"required,min=1"`
	Capacity    *int   `json:"capacity" validate:"omitempty,min=1"`
}

func (r UpsertRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Category == "" {
		return fmt.Errorf("category is required")
	}
	if r.Price < 1 {
		return fmt.Errorf("price must be a positive amount")
	}
	if r.Capacity != nil && *r.Capacity < 1 {
		return fmt.Errorf("capacity must be a positive number")
	}
	return nil
}
