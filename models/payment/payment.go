package payment

import (
	"time"
)

// Outcome is the settled result of a payment attempt.
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeDeclined  Outcome = "declined"
)

func (o Outcome) IsValid() bool {
	return o == OutcomeSucceeded || o == OutcomeDeclined
}

// Payment is the audit row written for every simulated gateway attempt.
// Card data is stored masked; the full pan never leaves the request scope
// except AES-GCM encrypted for dispute lookups.
type Payment struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingReference string `gorm:"type:varchar(20);not null;index" json:"booking_reference"`
	Amount           int64  `gorm:"not null" json:"amount"`

	// Gateway correlation id issued by the simulator.
	GatewayRef string `gorm:"type:varchar(64);not null" json:"gateway_ref"`

	CardLast4        string  `gorm:"type:varchar(4);not null" json:"card_last4"`
	CardholderName   string  `gorm:"type:varchar(255);not null" json:"cardholder_name"`
	CardPANEncrypted *string `gorm:"type:text" json:"-"`
	Outcome          Outcome `gorm:"size:20;not null" json:"outcome"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
