package message

import (
	"venue-booking/logger"
	messageModel "venue-booking/models/message"
	"venue-booking/types"
	messageTypes "venue-booking/types/message"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// MessageController stores contact-form submissions for admin review.
type MessageController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewMessageController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *MessageController {
	return &MessageController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// Store accepts a contact-form submission. No authentication required.
func (mc *MessageController) Store(c *fiber.Ctx) error {
	var req messageTypes.CreateRequest
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

	m := messageModel.Message{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := mc.DB.Create(&m).Error; err != nil {
		logger.Error("Failed to store message", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Failed to send message",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Message sent successfully",
		Data:    m,
	})
}

// Index lists contact messages for admins, newest first.
func (mc *MessageController) Index(c *fiber.Ctx) error {
	var messages []messageModel.Message
	if err := mc.DB.Order("created_at DESC").Find(&messages).Error; err != nil {
		logger.Error("Failed to list messages", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Messages retrieved successfully",
		Data:    messages,
	})
}
