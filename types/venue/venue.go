package venue

import (
	"fmt"
)

// UpsertRequest covers both venue creation and update by vendors.
type UpsertRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty"`
	Image       string `json:"image" validate:"omitempty,max=2048"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
	Price       int64  `json:"price" validate:"required,min=1"`
	Address     string `json:"address" validate:"omitempty,max=255"`
	City        string `json:"city" validate:"omitempty,max=100"`
	State       string `json:"state" validate:"omitempty,max=100"`
}

func (r UpsertRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.Capacity < 1 {
		return fmt.Errorf("capacity must be a positive number")
	}
	if r.Price < 1 {
		return fmt.Errorf("price must be a positive amount")
	}
	return nil
}

// DescribeRequest asks for an AI-drafted listing description.
type DescribeRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	City     string `json:"city" validate:"omitempty,max=100"`
	Capacity int    `json:"capacity" validate:"omitempty,min=1"`
	Keywords string `json:"keywords" validate:"omitempty,max=500"`
}

func (r DescribeRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
