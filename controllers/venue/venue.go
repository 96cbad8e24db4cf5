package venue

import (
	"errors"
	"fmt"

	"venue-booking/logger"
	venueModel "venue-booking/models/venue"
	"venue-booking/services/describe"
	"venue-booking/types"
	venueTypes "venue-booking/types/venue"
	"venue-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// VenueController handles venue listing, vendor CRUD and admin moderation.
type VenueController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewVenueController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *VenueController {
	return &VenueController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Index lists approved venues for customers.
func (vc *VenueController) Index(c *fiber.Ctx) error {
	var venues []venueModel.Venue
	if err := vc.DB.Where("status = ?", venueModel.ListingStatusApproved).
		Order("created_at DESC").Find(&venues).Error; err != nil {
		logger.Error("Failed to list venues", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Venues retrieved successfully",
		Data:    venues,
	})
}

// Show returns one venue. Lookup failures surface as an explicit 404; the
// client no longer substitutes fallback data.
func (vc *VenueController) Show(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid venue id",
			Data:    nil,
		})
	}

	var v venueModel.Venue
	if err := vc.DB.Preload("Vendor").First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Venue not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to load venue", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Venue retrieved successfully",
		Data:    v,
	})
}

// VendorIndex lists the authenticated vendor's venues, any status.
func (vc *VenueController) VendorIndex(c *fiber.Ctx) error {
	vendor, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}

	var venues []venueModel.Venue
	if err := vc.DB.Where("vendor_id = ?", vendor.ID).
		Order("created_at DESC").Find(&venues).Error; err != nil {
		logger.Error("Failed to list vendor venues", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Vendor venues retrieved successfully",
		Data:    venues,
	})
}

// Store creates a venue for the authenticated vendor; it starts pending
// until an admin approves it.
func (vc *VenueController) Store(c *fiber.Ctx) error {
	vendor, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}

	var req venueTypes.UpsertRequest
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

	v := venueModel.Venue{
		VendorID:    vendor.ID,
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Status:      venueModel.ListingStatusPending,
	}

	if err := vc.DB.Create(&v).Error; err != nil {
		logger.Error("Failed to create venue", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to create venue",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Venue created successfully with ID: %d", v.ID))

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Venue created successfully",
		Data:    v,
	})
}

// Update edits a venue owned by the authenticated vendor.
func (vc *VenueController) Update(c *fiber.Ctx) error {
	vendor, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid venue id",
			Data:    nil,
		})
	}

	var req venueTypes.UpsertRequest
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

	v, errResp := vc.findOwnedVenue(c, uint(id), vendor.ID)
	if v == nil {
		return errResp
	}

	v.Name = req.Name
	v.Description = req.Description
	v.Image = req.Image
	v.Capacity = req.Capacity
	v.Price = req.Price
	v.Address = req.Address
	v.City = req.City
	v.State = req.State

	if err := vc.DB.Save(v).Error; err != nil {
		logger.Error("Failed to update venue", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to update venue",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Venue updated successfully",
		Data:    v,
	})
}

// Delete removes a venue owned by the authenticated vendor.
func (vc *VenueController) Delete(c *fiber.Ctx) error {
	vendor, err := utils.CurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Status:  fiber.StatusUnauthorized,
			Message: "User not found",
			Data:    nil,
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid venue id",
			Data:    nil,
		})
	}

	v, errResp := vc.findOwnedVenue(c, uint(id), vendor.ID)
	if v == nil {
		return errResp
	}

	if err := vc.DB.Delete(v).Error; err != nil {
		logger.Error("Failed to delete venue", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to delete venue",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Venue deleted successfully",
		Data:    nil,
	})
}

// Pending lists venues awaiting admin moderation.
func (vc *VenueController) Pending(c *fiber.Ctx) error {
	var venues []venueModel.Venue
	if err := vc.DB.Preload("Vendor").
		Where("status = ?", venueModel.ListingStatusPending).
		Order("created_at ASC").Find(&venues).Error; err != nil {
		logger.Error("Failed to list pending venues", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Pending venues retrieved successfully",
		Data:    venues,
	})
}

// Approve marks a pending venue as approved.
func (vc *VenueController) Approve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid venue id",
			Data:    nil,
		})
	}

	var v venueModel.Venue
	if err := vc.DB.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Venue not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to load venue", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	v.Status = venueModel.ListingStatusApproved
	if err := vc.DB.Save(&v).Error; err != nil {
		logger.Error("Failed to approve venue", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to approve venue",
			Data:    nil,
		})
	}

	logger.Success(fmt.Sprintf("Venue %d approved", v.ID))

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Venue approved successfully",
		Data:    v,
	})
}

// Reject removes a pending venue.
func (vc *VenueController) Reject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid venue id",
			Data:    nil,
		})
	}

	if err := vc.DB.Delete(&venueModel.Venue{}, id).Error; err != nil {
		logger.Error("Failed to reject venue", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to reject venue",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Venue rejected successfully",
		Data:    nil,
	})
}

// Describe drafts a listing description with Gemini for the vendor form.
func (vc *VenueController) Describe(c *fiber.Ctx) error {
	var req venueTypes.DescribeRequest
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

	text, err := describe.Draft(c.Context(), req)
	if err != nil {
		logger.Error("Failed to draft description", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(types.ApiResponse{
			Status:  fiber.StatusServiceUnavailable,
			Message: "Description drafting is not available",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Description drafted successfully",
		Data:    map[string]interface{}{"description": text},
	})
}

// findOwnedVenue loads a venue and checks vendor ownership. On failure it
// returns nil and the error response already written to the context.
func (vc *VenueController) findOwnedVenue(c *fiber.Ctx, id, vendorID uint) (*venueModel.Venue, error) {
	var v venueModel.Venue
	if err := vc.DB.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Status:  fiber.StatusNotFound,
				Message: "Venue not found",
				Data:    nil,
			})
		}
		logger.Error("Failed to load venue", err)
		return nil, c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	if v.VendorID != vendorID {
		return nil, c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
			Status:  fiber.StatusForbidden,
			Message: "You do not own this venue",
			Data:    nil,
		})
	}
	return &v, nil
}
