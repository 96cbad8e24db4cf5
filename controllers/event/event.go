package event

import (
	"errors"
	"fmt"

	"venue-booking/logger"
	eventModel "venue-booking/models/event"
	venueModel "venue-booking/models/venue"
	"venue-booking/types"
	eventTypes "venue-booking/types/event"
	"venue-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EventController handles vendor service listings and their moderation.
type EventController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewEventController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *EventController {
	return &EventController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Index lists approved services for customers.
func (ec *EventController) Index(c *fiber.Ctx) error {
	var events []eventModel.Event
	if err := ec.DB.Where("status = ?", venueModel.ListingStatusApproved).
		Order("created_at DESC").Find(&events).Error; err != nil {
		logger.Error("Failed to list events", err)
		return ec.databaseError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Services retrieved successfully",
		Data:    events,
	})
}

// Show returns one service listing.
func (ec *EventController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid service id",
			Data:    nil,
		})
	}

	var e eventModel.Event
	if err := ec.DB.Preload("Vendor").First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Service not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to load event", err)
		return ec.databaseError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Service retrieved successfully",
		Data:    e,
	})
}

// VendorIndex lists the authenticated vendor's services, any status.
func (ec *EventController) VendorIndex(c *fiber.Ctx) error {
	vendor, err := utils.CurrentUser(c)
	if err != nil {
		return ec.unauthorized(c)
	}

	var events []eventModel.Event
	if err := ec.DB.Where("vendor_id = ?", vendor.ID).
		Order("created_at DESC").Find(&events).Error; err != nil {
		logger.Error("Failed to list vendor events", err)
		return ec.databaseError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Vendor services retrieved successfully",
		Data:    events,
	})
}

// Store creates a service listing, pending until approved.
func (ec *EventController) Store(c *fiber.Ctx) error {
	vendor, err := utils.CurrentUser(c)
	if err != nil {
		return ec.unauthorized(c)
	}

	var req eventTypes.UpsertRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	e := eventModel.Event{
		VendorID:    vendor.ID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Capacity:    req.Capacity,
		Status:      venueModel.ListingStatusPending,
	}

	if err := ec.DB.Create(&e).Error; err != nil {
		logger.Error("Failed to create event", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create service",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Service created successfully with ID: %d", e.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Service created successfully",
		Data:    e,
	})
}

// Update edits a service owned by the authenticated vendor.
func (ec *EventController) Update(c *fiber.Ctx) error {
	vendor, err := utils.CurrentUser(c)
	if err != nil {
		return ec.unauthorized(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid service id",
			Data:    nil,
		})
	}

	var req eventTypes.UpsertRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: err.Error(),
			Data:    nil,
		})
	}

	e, errResp := ec.findOwnedEvent(c, uint(id), vendor.ID)
	if e == nil {
		return errResp
	}

	e.Name = req.Name
	e.Category = req.Category
	e.Description = req.Description
	e.Image = req.Image
	e.Price = req.Price
	e.Capacity = req.Capacity

	if err := ec.DB.Save(e).Error; err != nil {
		logger.Error("Failed to update event", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update service",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Service updated successfully",
		Data:    e,
	})
}

// Delete removes a service owned by the authenticated vendor.
func (ec *EventController) Delete(c *fiber.Ctx) error {
	vendor, err := utils.CurrentUser(c)
	if err != nil {
		return ec.unauthorized(c)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid service id",
			Data:    nil,
		})
	}

	e, errResp := ec.findOwnedEvent(c, uint(id), vendor.ID)
	if e == nil {
		return errResp
	}

	if err := ec.DB.Delete(e).Error; err != nil {
		logger.Error("Failed to delete event", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete service",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Service deleted successfully",
		Data:    nil,
	})
}

// Pending lists services awaiting admin moderation.
func (ec *EventController) Pending(c *fiber.Ctx) error {
	var events []eventModel.Event
	if err := ec.DB.Preload("Vendor").
		Where("status = ?", venueModel.ListingStatusPending).
		Order("created_at ASC").Find(&events).Error; err != nil {
		logger.Error("Failed to list pending events", err)
		return ec.databaseError(c)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Pending services retrieved successfully",
		Data:    events,
	})
}

// Approve marks a pending service as approved.
func (ec *EventController) Approve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid service id",
			Data:    nil,
		})
	}

	var e eventModel.Event
	if err := ec.DB.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Service not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to load event", err)
		return ec.databaseError(c)
	}

	e.Status = venueModel.ListingStatusApproved
	if err := ec.DB.Save(&e).Error; err != nil {
		logger.Error("Failed to approve event", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to approve service",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Service approved successfully",
		Data:    e,
	})
}

// Reject removes a pending service.
func (ec *EventController) Reject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid service id",
			Data:    nil,
		})
	}

	if err := ec.DB.Delete(&eventModel.Event{}, id).Error; err != nil {
		logger.Error("Failed to reject event", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to reject service",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Service rejected successfully",
		Data:    nil,
	})
}

func (ec *EventController) findOwnedEvent(c *fiber.Ctx, id, vendorID uint) (*eventModel.Event, error) {
	var e eventModel.Event
	if err := ec.DB.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Service not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to load event", err)
		return nil, ec.databaseError(c)
	}

	if e.VendorID != vendorID {
		return nil, c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "You do not own this service",
			Data:    nil,
		})
	}
	return &e, nil
}

func (ec *EventController) databaseError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Database error",
		Data:    nil,
	})
}

func (ec *EventController) unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
		Status:  fiber.StatusUnauthorized,
		Message: "User not found",
		Data:    nil,
	})
}
