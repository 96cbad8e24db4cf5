package venue

import (
	"time"

	"venue-booking/models/user"
)

// Venue represents a bookable venue listed by a vendor.
type Venue struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for vendor relationship
	VendorID uint      `gorm:"not null;index" json:"vendor_id"`
	Vendor   user.User `gorm:"foreignKey:VendorID" json:"vendor"`

	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Image       string `gorm:"type:varchar(2048)" json:"image"`
	Capacity    int    `gorm:"not null" json:"capacity"`
	Price       int64  `gorm:"not null" json:"price"` // smallest currency unit

	Address string `gorm:"type:varchar(255)" json:"address"`
	City    string `gorm:"type:varchar(100)" json:"city"`
	State   string `gorm:"type:varchar(100)" json:"state"`

	Status    ListingStatus `gorm:"size:20;not null;default:pending" json:"status"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time    `gorm:"index" json:"deleted_at,omitempty"`
}
