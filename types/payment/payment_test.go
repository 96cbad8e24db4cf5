package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validCard() CardRequest {
	return CardRequest{
		CardNumber: "4111111111111111",
		CardName:   "Priya Sharma",
		ExpiryDate: "12/30",
		CVV:        "123",
	}
}

func TestCardRequestValidate(t *testing.T) {
	at := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mutate  func(*CardRequest)
		wantErr string
	}{
		{
			name:   "valid card",
			mutate: func(r *CardRequest) {},
		},
		{
			name:   "card number with spaces",
			mutate: func(r *CardRequest) { r.CardNumber = "4111 1111 1111 1111" },
		},
		{
			name:    "card number too short",
			mutate:  func(r *CardRequest) { r.CardNumber = "411111111111" },
			wantErr: "please enter a valid 16-digit card number",
		},
		{
			name:    "card number with letters",
			mutate:  func(r *CardRequest) { r.CardNumber = "4111x11111111111" },
			wantErr: "please enter a valid 16-digit card number",
		},
		{
			name:    "blank cardholder name",
			mutate:  func(r *CardRequest) { r.CardName = "   " },
			wantErr: "please enter the name on card",
		},
		{
			name:    "malformed expiry",
			mutate:  func(r *CardRequest) { r.ExpiryDate = "13/30" },
			wantErr: "please enter a valid expiry date (MM/YY)",
		},
		{
			name:    "expiry missing slash",
			mutate:  func(r *CardRequest) { r.ExpiryDate = "1230" },
			wantErr: "please enter a valid expiry date (MM/YY)",
		},
		{
			name:    "expired card",
			mutate:  func(r *CardRequest) { r.ExpiryDate = "01/20" },
			wantErr: "card has expired",
		},
		{
			name:   "expires in the current month",
			mutate: func(r *CardRequest) { r.ExpiryDate = "06/26" },
		},
		{
			name:    "expired last month",
			mutate:  func(r *CardRequest) { r.ExpiryDate = "05/26" },
			wantErr: "card has expired",
		},
		{
			name:    "cvv too short",
			mutate:  func(r *CardRequest) { r.CVV = "12" },
			wantErr: "please enter a valid CVV (3 or 4 digits)",
		},
		{
			name:   "four digit cvv",
			mutate: func(r *CardRequest) { r.CVV = "1234" },
		},
		{
			name:    "cvv with letters",
			mutate:  func(r *CardRequest) { r.CVV = "12a" },
			wantErr: "please enter a valid CVV (3 or 4 digits)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCard()
			tt.mutate(&req)

			err := req.Validate(at)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestCardRequestNumberStripsSpaces(t *testing.T) {
	req := CardRequest{CardNumber: "4111 1111 1111 1111"}
	assert.Equal(t, "4111111111111111", req.Number())
	assert.Equal(t, "1111", req.Last4())
}
