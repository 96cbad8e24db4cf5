package booking

import (
	"errors"
	"fmt"

	"venue-booking/constants"
	"venue-booking/logger"
	bookingModel "venue-booking/models/booking"
	eventModel "venue-booking/models/event"
	venueModel "venue-booking/models/venue"
	"venue-booking/services/booking_event"
	"venue-booking/types"
	"venue-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BookingController serves confirmed bookings: customer history, vendor
// dashboards and admin moderation. Creation happens only through the wizard.
type BookingController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewBookingController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *BookingController {
	return &BookingController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// CustomerIndex lists the authenticated customer's bookings, newest first.
func (bc *BookingController) CustomerIndex(c *fiber.Ctx) error {
	account, err := utils.CurrentUser(c)
	if err != nil {
		return bc.unauthorized(c)
	}

	var bookings []bookingModel.Booking
	if err := bc.DB.Where("user_id = ? OR email = ?", account.ID, account.Email).
		Order("created_at DESC").Find(&bookings).Error; err != nil {
		logger.Error("Failed to list customer bookings", err)
		return bc.databaseError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings retrieved successfully",
		Data:    bookings,
	})
}

// Show returns one booking with its status history. Customers may only see
// their own; vendors and admins pass through the route-level role check.
func (bc *BookingController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
			Data:    nil,
		})
	}

	account, err := utils.CurrentUser(c)
	if err != nil {
		return bc.unauthorized(c)
	}

	var b bookingModel.Booking
	if err := bc.DB.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bc.notFound(c)
		}
		logger.Error("Failed to load booking", err)
		return bc.databaseError(c)
	}

	if !bc.canView(account.ID, string(account.Role), &b) {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "You do not have access to this booking",
			Data:    nil,
		})
	}

	var history []bookingModel.BookingStatusEvent
	if err := bc.DB.Where("booking_id = ?", b.ID).
		Order("created_at ASC").Find(&history).Error; err != nil {
		logger.Error("Failed to load booking history", err)
		return bc.databaseError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking retrieved successfully",
		Data: fiber.Map{
			"booking": b,
			"history": history,
		},
	})
}

// VendorIndex lists bookings placed against the vendor's own listings.
func (bc *BookingController) VendorIndex(c *fiber.Ctx) error {
	vendor, err := utils.CurrentUser(c)
	if err != nil {
		return bc.unauthorized(c)
	}

	venueIDs := bc.DB.Model(&venueModel.Venue{}).
		Select("id").Where("vendor_id = ?", vendor.ID)
	eventIDs := bc.DB.Model(&eventModel.Event{}).
		Select("id").Where("vendor_id = ?", vendor.ID)

	var bookings []bookingModel.Booking
	if err := bc.DB.
		Where("(item_kind = ? AND item_id IN (?)) OR (item_kind = ? AND item_id IN (?))",
			bookingModel.ItemKindVenue, venueIDs,
			bookingModel.ItemKindEvent, eventIDs).
		Order("created_at DESC").Find(&bookings).Error; err != nil {
		logger.Error("Failed to list vendor bookings", err)
		return bc.databaseError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Vendor bookings retrieved successfully",
		Data:    bookings,
	})
}

// AdminIndex lists every booking.
func (bc *BookingController) AdminIndex(c *fiber.Ctx) error {
	var bookings []bookingModel.Booking
	if err := bc.DB.Order("created_at DESC").Find(&bookings).Error; err != nil {
		logger.Error("Failed to list bookings", err)
		return bc.databaseError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Bookings retrieved successfully",
		Data:    bookings,
	})
}

// Cancel lets a customer cancel their own booking while it is still
// cancellable.
func (bc *BookingController) Cancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
			Data:    nil,
		})
	}

	account, err := utils.CurrentUser(c)
	if err != nil {
		return bc.unauthorized(c)
	}

	var b bookingModel.Booking
	if err := bc.DB.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bc.notFound(c)
		}
		logger.Error("Failed to load booking", err)
		return bc.databaseError(c)
	}

	owns := (b.UserID != nil && *b.UserID == account.ID) || b.Email == account.Email
	if !owns {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "You do not have access to this booking",
			Data:    nil,
		})
	}

	if !b.Status.CanBeCancelled() {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: fmt.Sprintf("Booking in status '%s' cannot be cancelled", b.Status),
			Data:    nil,
		})
	}

	if err := booking_event.Transition(bc.DB, &b, bookingModel.BookingStatusCancelled, account.Email); err != nil {
		logger.Error("Failed to cancel booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to cancel booking",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Booking %s cancelled by %s", b.Reference, account.Email))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Booking cancelled successfully",
		Data:    b,
	})
}

// Approve moves a confirmed booking to approved. Vendor action on their own
// listings; admins may action any booking.
func (bc *BookingController) Approve(c *fiber.Ctx) error {
	return bc.action(c, bookingModel.BookingStatusApproved, "approved")
}

// Reject moves a confirmed booking to rejected.
func (bc *BookingController) Reject(c *fiber.Ctx) error {
	return bc.action(c, bookingModel.BookingStatusRejected, "rejected")
}

func (bc *BookingController) action(c *fiber.Ctx, target bookingModel.BookingStatus, verb string) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid booking id",
			Data:    nil,
		})
	}

	account, err := utils.CurrentUser(c)
	if err != nil {
		return bc.unauthorized(c)
	}

	var b bookingModel.Booking
	if err := bc.DB.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bc.notFound(c)
		}
		logger.Error("Failed to load booking", err)
		return bc.databaseError(c)
	}

	if string(account.Role) != constants.RoleAdmin && !bc.ownsListing(account.ID, &b) {
		return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "You do not have access to this booking",
			Data:    nil,
		})
	}

	if !b.Status.CanBeActioned() {
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: fmt.Sprintf("Booking in status '%s' cannot be %s", b.Status, verb),
			Data:    nil,
		})
	}

	if err := booking_event.Transition(bc.DB, &b, target, account.Email); err != nil {
		logger.Error("Failed to update booking status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update booking status",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: fmt.Sprintf("Booking %s successfully", verb),
		Data:    b,
	})
}

// canView reports whether the account may read the booking.
func (bc *BookingController) canView(accountID uint, role string, b *bookingModel.Booking) bool {
	switch role {
	case constants.RoleAdmin:
		return true
	case constants.RoleVendor:
		return bc.ownsListing(accountID, b)
	default:
		return b.UserID != nil && *b.UserID == accountID
	}
}

// ownsListing reports whether the booking targets a listing owned by the
// given vendor.
func (bc *BookingController) ownsListing(vendorID uint, b *bookingModel.Booking) bool {
	var count int64
	switch b.ItemKind {
	case bookingModel.ItemKindVenue:
		bc.DB.Model(&venueModel.Venue{}).
			Where("id = ? AND vendor_id = ?", b.ItemID, vendorID).Count(&count)
	case bookingModel.ItemKindEvent:
		bc.DB.Model(&eventModel.Event{}).
			Where("id = ? AND vendor_id = ?", b.ItemID, vendorID).Count(&count)
	}
	return count > 0
}

func (bc *BookingController) notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
		Status:  fiber.StatusNotFound,
		Message: "Booking not found",
		Data:    nil,
	})
}

func (bc *BookingController) databaseError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Database error",
		Data:    nil,
	})
}

func (bc *BookingController) unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: "User not found",
		Data:    nil,
	})
}
