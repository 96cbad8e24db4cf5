package database

import (
	"fmt"
	"os"

	"venue-booking/logger"
	bookingModel "venue-booking/models/booking"
	eventModel "venue-booking/models/event"
	logModel "venue-booking/models/log"
	messageModel "venue-booking/models/message"
	paymentModel "venue-booking/models/payment"
	userModel "venue-booking/models/user"
	venueModel "venue-booking/models/venue"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	// Get database configuration from environment variables
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// InitRedis opens the redis connection used for wizard checkout sessions.
func InitRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}

// autoMigrate runs auto migration for all models in dependency order.
func autoMigrate() error {
	// Stage 1: Core foundation models
	stage1Models := []interface{}{
		&userModel.User{},
		&logModel.Log{},
		&messageModel.Message{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: Listings depending on users
	stage2Models := []interface{}{
		&venueModel.Venue{},
		&eventModel.Event{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: Bookings and their audit trails
	stage3Models := []interface{}{
		&bookingModel.Booking{},
		&bookingModel.BookingStatusEvent{},
		&paymentModel.Payment{},
	}

	for _, model := range stage3Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for common lookups.
func createIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_bookings_reference ON bookings (reference)",
		"CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings (status)",
		"CREATE INDEX IF NOT EXISTS idx_bookings_item ON bookings (item_kind, item_id)",
		"CREATE INDEX IF NOT EXISTS idx_venues_status ON venues (status)",
		"CREATE INDEX IF NOT EXISTS idx_events_status ON events (status)",
		"CREATE INDEX IF NOT EXISTS idx_payments_booking_reference ON payments (booking_reference)",
	}

	for _, stmt := range indexes {
		if err := DB.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
