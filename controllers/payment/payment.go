package payment

import (
	"venue-booking/logger"
	paymentModel "venue-booking/models/payment"
	"venue-booking/types"
	"venue-booking/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PaymentController exposes the payment attempt audit trail for admin
// dispute reconciliation.
type PaymentController struct {
	DB     *gorm.DB
	Logger *logger.AsyncLogger
}

func NewPaymentController(db *gorm.DB, asyncLogger *logger.AsyncLogger) *PaymentController {
	return &PaymentController{
		DB:     db,
		Logger: asyncLogger,
	}
}

// attemptView is a Payment row with the sealed pan opened and masked for the
// support screen. The full pan is never serialized.
type attemptView struct {
	paymentModel.Payment
	MaskedPAN string `json:"masked_pan,omitempty"`
}

// Attempts lists every gateway attempt recorded for a booking reference,
// declined ones included, so a disputed retry can be matched to its card.
func (pc *PaymentController) Attempts(c *fiber.Ctx) error {
	reference := c.Params("reference")

	var attempts []paymentModel.Payment
	if err := pc.DB.Where("booking_reference = ?", reference).
		Order("created_at ASC").Find(&attempts).Error; err != nil {
		logger.Error("Failed to list payment attempts", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Database error",
			Data:    nil,
		})
	}

	if len(attempts) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "No payment attempts found for this booking reference",
			Data:    nil,
		})
	}

	views := make([]attemptView, 0, len(attempts))
	for _, attempt := range attempts {
		view := attemptView{Payment: attempt}
		if attempt.CardPANEncrypted != nil {
			pan, err := utils.DecryptCardPAN(*attempt.CardPANEncrypted)
			if err != nil {
				logger.Error("Failed to decrypt card number for attempt", err)
			} else {
				view.MaskedPAN = utils.MaskPAN(pan)
			}
		}
		views = append(views, view)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payment attempts retrieved successfully",
		Data:    views,
	})
}
