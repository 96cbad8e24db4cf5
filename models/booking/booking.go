package booking

import (
	"time"

	"venue-booking/models/user"
)

// Booking is the confirmed reservation record produced by the booking wizard.
// Item name and price are denormalized at confirmation time so the invoice
// stays stable even if the vendor later edits the listing.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Server-issued reference shown to the customer ("BK" + 7 digits).
	Reference string `gorm:"type:varchar(20);not null;unique" json:"reference"`

	// Optional link to an authenticated customer account. Wizard checkouts
	// are allowed for guests, so this stays nullable.
	UserID *uint      `gorm:"index" json:"user_id,omitempty"`
	User   *user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	ItemKind  ItemKind `gorm:"size:20;not null" json:"item_kind"`
	ItemID    uint     `gorm:"not null;index" json:"item_id"`
	ItemName  string   `gorm:"type:varchar(255);not null" json:"item_name"`
	ItemPrice int64    `gorm:"not null" json:"item_price"`

	Name            string        `gorm:"type:varchar(255);not null" json:"name"`
	Email           string        `gorm:"type:varchar(255);not null" json:"email"`
	Phone           string        `gorm:"type:varchar(20);not null" json:"phone"`
	Guests          int           `gorm:"not null" json:"guests"`
	EventCategory   EventCategory `gorm:"size:20;not null;default:wedding" json:"event_category"`
	SpecialRequests string        `gorm:"type:text" json:"special_requests"`

	// Raw date string as selected by the customer; availability is not
	// checked against a calendar.
	Date string `gorm:"type:varchar(20)" json:"date"`

	TotalAmount int64         `gorm:"not null" json:"total_amount"`
	Status      BookingStatus `gorm:"size:20;not null;default:pending" json:"status"`

	CreatedBy string     `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedBy string     `gorm:"type:varchar(255)" json:"updated_by,omitempty"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
