package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hbc-community/community-backend/internal/handlers"
	"github.com/hbc-community/community-backend/internal/services"
	"github.com/hbc-community/community-backend/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, store storage.Store, otps *services.OTPRegistry, mailer services.Mailer) {
	members := handlers.NewMemberHandler(store)
	auth := handlers.NewAuthHandler(store, otps, mailer)

	// Member records
	app.Get("/member/:email", members.GetMember)
	app.Put("/update-member", members.UpdateMember)
	app.Post("/submit-form", members.SubmitForm)
	app.Get("/submissions", members.ListSubmissions)

	// Email ownership verification
	app.Post("/check-email", auth.CheckEmail)
	app.Post("/send-otp", auth.SendOTP)
	app.Post("/verify-otp", auth.VerifyOTP)
}
