package auth

import (
	"fmt"
	"regexp"

	userModel "venue-booking/models/user"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,len=10"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=customer vendor"`
}

func (r RegisterRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !emailPattern.MatchString(r.Email) {
		return fmt.Errorf("please enter a valid email address")
	}
	if len(r.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	if r.Role != "" && r.Role != string(userModel.RoleCustomer) && r.Role != string(userModel.RoleVendor) {
		return fmt.Errorf("role must be either 'customer' or 'vendor'")
	}
	return nil
}

// AccountRole returns the requested role, defaulting to customer. Admin
// accounts are never self-registered.
func (r RegisterRequest) AccountRole() userModel.Role {
	if r.Role == "" {
		return userModel.RoleCustomer
	}
	return userModel.Role(r.Role)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

type UpdateProfileRequest struct {
	Name   string `json:"name" validate:"omitempty,max=255"`
	Phone  string `json:"phone" validate:"omitempty,len=10"`
	Avatar string `json:"avatar" validate:"omitempty,max=2048"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=customer vendor admin"`
}

func (r UpdateRoleRequest) Validate() error {
	if !userModel.Role(r.Role).IsValid() {
		return fmt.Errorf("role must be one of 'customer', 'vendor' or 'admin'")
	}
	return nil
}
