package booking

import (
	"errors"

	"venue-booking/logger"
	bookingModel "venue-booking/models/booking"
	"venue-booking/services/payment"
	"venue-booking/services/wizard"
	"venue-booking/types"
	bookingTypes "venue-booking/types/booking"
	paymentTypes "venue-booking/types/payment"
	"venue-booking/utils"

	"github.com/gofiber/fiber/v2"
)

// WizardController exposes the checkout state machine over HTTP. Sessions are
// anonymous by default; a valid bearer token links the resulting booking to
// the account.
type WizardController struct {
	Wizard *wizard.Service
	Logger *logger.AsyncLogger
}

func NewWizardController(svc *wizard.Service, asyncLogger *logger.AsyncLogger) *WizardController {
	return &WizardController{
		Wizard: svc,
		Logger: asyncLogger,
	}
}

// Start opens a checkout session for an approved listing.
func (wc *WizardController) Start(c *fiber.Ctx) error {
	var req bookingTypes.StartWizardRequest
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

	session, err := wc.Wizard.Start(c.Context(), bookingModel.ItemKind(req.ItemKind), req.ItemID, req.Date, wc.optionalUserID(c))
	if err != nil {
		return wc.wizardError(c, session, err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Status:  fiber.StatusCreated,
		Message: "Checkout session started",
		Data:    session,
	})
}

// Get returns the current state of a session.
func (wc *WizardController) Get(c *fiber.Ctx) error {
	session, err := wc.Wizard.Get(c.Context(), c.Params("id"))
	if err != nil {
		return wc.wizardError(c, session, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Checkout session retrieved",
		Data:    session,
	})
}

// SubmitDetails submits the customer detail form.
func (wc *WizardController) SubmitDetails(c *fiber.Ctx) error {
	var req bookingTypes.DetailsRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	session, err := wc.Wizard.SubmitDetails(c.Context(), c.Params("id"), req)
	if err != nil {
		return wc.wizardError(c, session, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Details saved, proceed to payment",
		Data:    session,
	})
}

// SubmitPayment submits the card form and settles the charge.
func (wc *WizardController) SubmitPayment(c *fiber.Ctx) error {
	var req paymentTypes.CardRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: "Invalid request body",
			Data:    nil,
		})
	}

	session, err := wc.Wizard.SubmitPayment(c.Context(), c.Params("id"), req)
	if err != nil {
		return wc.wizardError(c, session, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payment successful, booking confirmed",
		Data:    session,
	})
}

// Retry clears a failed payment so the customer can submit the card again.
func (wc *WizardController) Retry(c *fiber.Ctx) error {
	session, err := wc.Wizard.Retry(c.Context(), c.Params("id"))
	if err != nil {
		return wc.wizardError(c, session, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Payment reset, try again",
		Data:    session,
	})
}

// GoBack returns the session from payment to the details step.
func (wc *WizardController) GoBack(c *fiber.Ctx) error {
	session, err := wc.Wizard.GoBack(c.Context(), c.Params("id"))
	if err != nil {
		return wc.wizardError(c, session, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Returned to details step",
		Data:    session,
	})
}

// Reset clears the session back to an empty details step.
func (wc *WizardController) Reset(c *fiber.Ctx) error {
	session, err := wc.Wizard.Reset(c.Context(), c.Params("id"))
	if err != nil {
		return wc.wizardError(c, session, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Checkout session reset",
		Data:    session,
	})
}

// Invoice streams the confirmation PDF.
func (wc *WizardController) Invoice(c *fiber.Ctx) error {
	filename, pdf, err := wc.Wizard.Invoice(c.Context(), c.Params("id"))
	if err != nil {
		return wc.wizardError(c, nil, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Status(fiber.StatusOK).Send(pdf)
}

// wizardError maps service sentinels onto HTTP statuses. A declined charge is
// not a transport failure: the updated session travels with the 402 so the
// client can render the failed sub-state.
func (wc *WizardController) wizardError(c *fiber.Ctx, session *wizard.Session, err error) error {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "Checkout session not found or expired",
			Data:    nil,
		})
	case errors.Is(err, wizard.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
			Status:  fiber.StatusNotFound,
			Message: "The selected listing is not available for booking",
			Data:    nil,
		})
	case errors.Is(err, wizard.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Status:  fiber.StatusBadRequest,
			Message: validationMessage(err),
			Data:    session,
		})
	case errors.Is(err, wizard.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
			Status:  fiber.StatusConflict,
			Message: "This action is not allowed from the current checkout step",
			Data:    session,
		})
	case errors.Is(err, payment.ErrDeclined):
		return c.Status(fiber.StatusPaymentRequired).JSON(types.ApiResponse{
			Status:  fiber.StatusPaymentRequired,
			Message: session.PaymentError,
			Data:    session,
		})
	default:
		logger.Error("Wizard operation failed", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Status:  fiber.StatusInternalServerError,
			Message: "Something went wrong, please try again",
			Data:    nil,
		})
	}
}

// validationMessage strips the sentinel prefix so the client sees only the
// human-readable rule.
func validationMessage(err error) string {
	msg := err.Error()
	prefix := wizard.ErrValidation.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}

// optionalUserID resolves the account behind a bearer token if one is
// present. Guests check out with a nil user id.
func (wc *WizardController) optionalUserID(c *fiber.Ctx) *uint {
	token, err := utils.ExtractBearerToken(c)
	if err != nil {
		return nil
	}
	claims, err := utils.ParseToken(token)
	if err != nil {
		return nil
	}
	uuid, ok := claims["uuid"].(string)
	if !ok {
		return nil
	}
	account, err := utils.GetUserByUUID(uuid)
	if err != nil {
		return nil
	}
	return &account.ID
}
