package booking

import (
	"testing"

	bookingModel "venue-booking/models/booking"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func validDetails() DetailsRequest {
	return DetailsRequest{
		Name:          "Priya Sharma",
		Email:         "priya@example.com",
		Phone:         "9876543210",
		Guests:        250,
		EventCategory: "wedding",
	}
}

func TestDetailsRequestValidate(t *testing.T) {
	capacity := intPtr(500)

	tests := []struct {
		name    string
		mutate  func(*DetailsRequest)
		wantErr string
	}{
		{
			name:   "valid form",
			mutate: func(r *DetailsRequest) {},
		},
		{
			name:    "missing name",
			mutate:  func(r *DetailsRequest) { r.Name = "" },
			wantErr: "please fill in all required fields",
		},
		{
			name:    "missing email",
			mutate:  func(r *DetailsRequest) { r.Email = "" },
			wantErr: "please fill in all required fields",
		},
		{
			name:    "malformed email",
			mutate:  func(r *DetailsRequest) { r.Email = "not-an-email" },
			wantErr: "please enter a valid email address",
		},
		{
			name:    "email with spaces",
			mutate:  func(r *DetailsRequest) { r.Email = "a b@example.com" },
			wantErr: "please enter a valid email address",
		},
		{
			name:    "phone too short",
			mutate:  func(r *DetailsRequest) { r.Phone = "12345" },
			wantErr: "please enter a valid 10-digit phone number",
		},
		{
			name:    "phone with letters",
			mutate:  func(r *DetailsRequest) { r.Phone = "98765abcde" },
			wantErr: "please enter a valid 10-digit phone number",
		},
		{
			name:    "guest count over capacity",
			mutate:  func(r *DetailsRequest) { r.Guests = 501 },
			wantErr: "guest count exceeds the capacity of 500",
		},
		{
			name:   "guest count exactly at capacity",
			mutate: func(r *DetailsRequest) { r.Guests = 500 },
		},
		{
			name:    "unknown category",
			mutate:  func(r *DetailsRequest) { r.EventCategory = "festival" },
			wantErr: "invalid event category",
		},
		{
			name:   "empty category allowed",
			mutate: func(r *DetailsRequest) { r.EventCategory = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validDetails()
			tt.mutate(&req)

			err := req.Validate(capacity)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestDetailsRequestValidateNilCapacity(t *testing.T) {
	req := validDetails()
	req.Guests = 100000

	// Listings without a headcount limit accept any positive guest count.
	assert.NoError(t, req.Validate(nil))
}

func TestDetailsRequestCategoryDefaultsToWedding(t *testing.T) {
	req := validDetails()
	req.EventCategory = ""
	assert.Equal(t, bookingModel.EventCategoryWedding, req.Category())

	req.EventCategory = "corporate"
	assert.Equal(t, bookingModel.EventCategoryCorporate, req.Category())
}

func TestStartWizardRequestValidate(t *testing.T) {
	assert.NoError(t, StartWizardRequest{ItemKind: "venue", ItemID: 1}.Validate())
	assert.NoError(t, StartWizardRequest{ItemKind: "event", ItemID: 7}.Validate())
	assert.Error(t, StartWizardRequest{ItemKind: "hotel", ItemID: 1}.Validate())
	assert.Error(t, StartWizardRequest{ItemKind: "venue", ItemID: 0}.Validate())
}
