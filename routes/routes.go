package routes

import (
	"os"

	"venue-booking/constants"
	authController "venue-booking/controllers/auth"
	bookingController "venue-booking/controllers/booking"
	eventController "venue-booking/controllers/event"
	messageController "venue-booking/controllers/message"
	paymentController "venue-booking/controllers/payment"
	userController "venue-booking/controllers/user"
	venueController "venue-booking/controllers/venue"
	"venue-booking/httpServices/mailer"
	"venue-booking/logger"
	"venue-booking/middleware"
	"venue-booking/services/payment"
	"venue-booking/services/wizard"
	"venue-booking/types"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, rdb *redis.Client) {
	asyncLogger := logger.NewAsyncLogger(db)

	// The mail gateway is optional; without it confirmations are logged only.
	var notifier wizard.Notifier
	if baseURL := os.Getenv("MAIL_BASE_URL"); baseURL != "" {
		notifier = mailer.NewClient(baseURL)
	}

	wizardService := wizard.NewService(db, wizard.NewRedisStore(rdb), payment.NewSimulator(), notifier)

	authCtrl := authController.NewAuthController(db, asyncLogger)
	userCtrl := userController.NewUserController(db, asyncLogger)
	venueCtrl := venueController.NewVenueController(db, asyncLogger)
	eventCtrl := eventController.NewEventController(db, asyncLogger)
	bookingCtrl := bookingController.NewBookingController(db, asyncLogger)
	wizardCtrl := bookingController.NewWizardController(wizardService, asyncLogger)
	messageCtrl := messageController.NewMessageController(db, asyncLogger)
	paymentCtrl := paymentController.NewPaymentController(db, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	vendorOnly := middleware.RequireRoles(constants.RoleVendor, constants.RoleAdmin)
	adminOnly := middleware.RequireRoles(constants.RoleAdmin)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Status:  fiber.StatusOK,
			Message: "EventHive API",
			Data:    nil,
		})
	})

	api := app.Group("/api").Use(middleware.RequestLogger(asyncLogger))

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api.Post("/register", authCtrl.Register)
	api.Post("/login", authCtrl.Login)
	api.Post("/messages", messageCtrl.Store)

	/*=============================================================================
	| Auth Routes
	===============================================================================*/
	authGroup := api.Group("/auth").Use(middleware.RequireAuthentication())
	authGroup.Post("/logout", authCtrl.LogOut)
	authGroup.Get("/profile", authCtrl.GetProfile)
	authGroup.Put("/profile", authCtrl.UpdateProfile)

	/*=============================================================================
	| Venue Routes (static paths before :id)
	===============================================================================*/
	api.Get("/venues", venueCtrl.Index)
	api.Get("/venues/vendor", vendorOnly, venueCtrl.VendorIndex)
	api.Get("/venues/pending", adminOnly, venueCtrl.Pending)
	api.Post("/venues/describe", vendorOnly, venueCtrl.Describe)
	api.Get("/venues/:id", venueCtrl.Show)
	api.Post("/venues", vendorOnly, venueCtrl.Store)
	api.Put("/venues/:id", vendorOnly, venueCtrl.Update)
	api.Delete("/venues/:id", vendorOnly, venueCtrl.Delete)
	api.Put("/venues/:id/approve", adminOnly, venueCtrl.Approve)
	api.Delete("/venues/:id/reject", adminOnly, venueCtrl.Reject)

	/*=============================================================================
	| Event (vendor service) Routes
	===============================================================================*/
	api.Get("/events", eventCtrl.Index)
	api.Get("/events/vendor", vendorOnly, eventCtrl.VendorIndex)
	api.Get("/events/pending", adminOnly, eventCtrl.Pending)
	api.Get("/events/:id", eventCtrl.Show)
	api.Post("/events", vendorOnly, eventCtrl.Store)
	api.Put("/events/:id", vendorOnly, eventCtrl.Update)
	api.Delete("/events/:id", vendorOnly, eventCtrl.Delete)
	api.Put("/events/:id/approve", adminOnly, eventCtrl.Approve)
	api.Delete("/events/:id/reject", adminOnly, eventCtrl.Reject)

	/*=============================================================================
	| Booking Wizard Routes (guest checkout allowed)
	===============================================================================*/
	wizardGroup := api.Group("/bookings/wizard")
	wizardGroup.Post("/", wizardCtrl.Start)
	wizardGroup.Get("/:sid", wizardCtrl.Get)
	wizardGroup.Post("/:sid/details", wizardCtrl.SubmitDetails)
	wizardGroup.Post("/:sid/payment", wizardCtrl.SubmitPayment)
	wizardGroup.Post("/:sid/retry", wizardCtrl.Retry)
	wizardGroup.Post("/:sid/back", wizardCtrl.GoBack)
	wizardGroup.Post("/:sid/reset", wizardCtrl.Reset)
	wizardGroup.Get("/:sid/invoice", wizardCtrl.Invoice)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	api.Get("/bookings", adminOnly, bookingCtrl.AdminIndex)
	api.Get("/bookings/customer", middleware.RequireAuthentication(), bookingCtrl.CustomerIndex)
	api.Get("/bookings/vendor", vendorOnly, bookingCtrl.VendorIndex)
	api.Get("/bookings/:id", middleware.RequireAuthentication(), bookingCtrl.Show)
	api.Delete("/bookings/:id", middleware.RequireAuthentication(), bookingCtrl.Cancel)
	api.Put("/bookings/:id/approve", vendorOnly, bookingCtrl.Approve)
	api.Put("/bookings/:id/reject", vendorOnly, bookingCtrl.Reject)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	api.Get("/users", adminOnly, userCtrl.Index)
	api.Delete("/users/:id", adminOnly, userCtrl.Delete)
	api.Put("/users/:id/role", adminOnly, userCtrl.UpdateRole)
	api.Get("/messages", adminOnly, messageCtrl.Index)
	api.Get("/payments/:reference", adminOnly, paymentCtrl.Attempts)
}
