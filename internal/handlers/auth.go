package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/hbc-community/community-backend/internal/services"
	"github.com/hbc-community/community-backend/internal/storage"
)

const mailDisplayName = "Bharat Community"

// AuthHandler handles email ownership verification: registration checks,
// OTP dispatch and OTP verification.
type AuthHandler struct {
	store  storage.Store
	otps   *services.OTPRegistry
	mailer services.Mailer
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(store storage.Store, otps *services.OTPRegistry, mailer services.Mailer) *AuthHandler {
	return &AuthHandler{
		store:  store,
		otps:   otps,
		mailer: mailer,
	}
}

type emailRequest struct {
	Email string `json:"email"`
}

type verifyRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// CheckEmail confirms whether an email belongs to a registered member
func (h *AuthHandler) CheckEmail(c *fiber.Ctx) error {
	var req emailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if _, err := h.store.GetSubmissionByEmail(req.Email); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error":   "Email not found",
				"message": "This email is not registered in our database. Please join our network first.",
			})
		}
		log.Printf("Email check error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to verify email",
		})
	}

	return c.JSON(fiber.Map{"message": "Email found"})
}

// SendOTP issues a verification code for a registered email and mails it
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var req emailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	// Only registered members can request a code
	if _, err := h.store.GetSubmissionByEmail(req.Email); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Email not found",
			"message": "This email is not registered in our database",
		})
	}

	code, err := h.otps.Issue(req.Email)
	if err != nil {
		log.Printf("Error generating OTP: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send OTP",
		})
	}

	subject := "Your Verification Code - Bharat Community"
	body := otpEmailHTML(code, h.otps.TTL())
	if err := h.mailer.SendMail(req.Email, subject, body, mailDisplayName); err != nil {
		log.Printf("Error sending OTP: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send OTP",
		})
	}

	return c.JSON(fiber.Map{"message": "OTP sent successfully"})
}

// VerifyOTP checks a supplied code against the outstanding one for the email
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req verifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if !h.otps.Verify(req.Email, req.OTP) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid OTP",
		})
	}

	return c.JSON(fiber.Map{"message": "OTP verified successfully"})
}
