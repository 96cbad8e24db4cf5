package event

import (
	"time"

	"venue-booking/models/user"
	"venue-booking/models/venue"
)

// Event represents a vendor service listing (catering, decoration, photography
// and similar). Unlike a venue it has no fixed headcount, so Capacity is
// nullable and a nil value means unbounded.
type Event struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	VendorID uint      `gorm:"not null;index" json:"vendor_id"`
	Vendor   user.User `gorm:"foreignKey:VendorID" json:"vendor"`

	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Category    string `gorm:"type:varchar(100);not null" json:"category"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"type:varchar(2048)" json:"image"`
	Price       int64  `gorm:"not null" json:"price"`
	Capacity    *int   `gorm:"" json:"capacity,omitempty"`

	Status    venue.ListingStatus `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time          `gorm:"index" json:"deleted_at,omitempty"`
}
