package booking_event

import (
	bookingModel "venue-booking/models/booking"

	"gorm.io/gorm"
)

// AppendStatusEvent records a booking status change in the append-only audit
// trail. Call inside the same transaction as the status update itself.
func AppendStatusEvent(tx *gorm.DB, bookingID uint, status bookingModel.BookingStatus, updatedBy string) error {
	ev := bookingModel.BookingStatusEvent{
		BookingID: bookingID,
		Status:    status,
		CreatedBy: updatedBy,
	}
	return tx.Create(&ev).Error
}

// Transition updates a booking's status and appends the audit event in one
// transaction.
func Transition(db *gorm.DB, b *bookingModel.Booking, status bookingModel.BookingStatus, updatedBy string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(b).Updates(map[string]interface{}{
			"status":     status,
			"updated_by": updatedBy,
		}).Error; err != nil {
			return err
		}
		b.Status = status
		return AppendStatusEvent(tx, b.ID, status, updatedBy)
	})
}
