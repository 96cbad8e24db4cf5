package seeders

import (
	"errors"
	"fmt"
	"log"

	"venue-booking/models/user"
	"venue-booking/models/venue"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedDemoVenues ensures the demo vendor and demo venue exist. The demo venue
// replaces the hard-coded fallback record the old client substituted on fetch
// failures; lookups that fail now surface an error and demo data lives here.
func SeedDemoVenues(db *gorm.DB) error {
	log.Printf("🔍 Checking demo venue data integrity...")

	var vendor user.User
	err := db.Where("email = ?", "vendor@eventhive.local").First(&vendor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte("changeme-demo"), bcrypt.DefaultCost)
		if hashErr != nil {
			return fmt.Errorf("hash demo vendor password: %w", hashErr)
		}
		vendor = user.User{
			Uuid:         uuid.NewString(),
			Name:         "EventHive Demo Vendor",
			Email:        "vendor@eventhive.local",
			PasswordHash: string(hash),
			Role:         user.RoleVendor,
		}
		if err := db.Create(&vendor).Error; err != nil {
			return fmt.Errorf("seed demo vendor: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("check demo vendor: %w", err)
	}

	venues := []venue.Venue{
		{
			VendorID:    vendor.ID,
			Name:        "Luxury Banquet Hall",
			Description: "A stunning banquet hall offering world-class services, perfect for weddings, corporate events, and special occasions.",
			Image:       "https://images.unsplash.com/photo-1568530873454-e4103a0b3c71",
			Capacity:    500,
			Price:       50000,
			Address:     "123 Main St",
			City:        "Mumbai",
			State:       "Maharashtra",
			Status:      venue.ListingStatusApproved,
		},
	}

	for _, v := range venues {
		var existing venue.Venue
		err := db.Where("vendor_id = ? AND name = ?", v.VendorID, v.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&v).Error; err != nil {
				return fmt.Errorf("seed venue %q: %w", v.Name, err)
			}
			log.Printf("✅ Seeded venue %q", v.Name)
		} else if err != nil {
			return fmt.Errorf("check venue %q: %w", v.Name, err)
		}
	}

	return nil
}
