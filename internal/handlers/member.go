package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/hbc-community/community-backend/internal/models"
	"github.com/hbc-community/community-backend/internal/storage"
)

// MemberHandler handles member record requests
type MemberHandler struct {
	store storage.Store
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(store storage.Store) *MemberHandler {
	return &MemberHandler{
		store: store,
	}
}

// GetMember retrieves a member record by email
func (h *MemberHandler) GetMember(c *fiber.Ctx) error {
	email := c.Params("email")
	if decoded, err := url.PathUnescape(email); err == nil {
		email = decoded
	}
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Email parameter is required",
		})
	}

	sub, err := h.store.GetSubmissionByEmail(email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Member not found",
			})
		}
		log.Printf("Error fetching member: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fetch member data",
			"details": err.Error(),
		})
	}

	return c.JSON(sub)
}

// UpdateMember applies a partial update to the record matching the payload's
// email. Only the fields present in the request body are written.
func (h *MemberHandler) UpdateMember(c *fiber.Ctx) error {
	var upd models.SubmissionUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(&upd); err != nil {
		if phoneFormatViolated(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Invalid phone format",
				"details": "Phone must be in +91xxxxxxxxxx format",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	data, err := h.store.UpdateSubmissionByEmail(upd.Email, upd.Changes())
	if err != nil {
		log.Printf("Update error: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Database error",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Member updated successfully",
		"data":    data,
	})
}

// SubmitForm registers a new member from the community sign-up form
func (h *MemberHandler) SubmitForm(c *fiber.Ctx) error {
	var form models.SubmissionForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(&form); err != nil {
		if phoneFormatViolated(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   "Invalid phone format",
				"details": "Phone must be in +91xxxxxxxxxx format",
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Validation failed",
			"details": err.Error(),
		})
	}

	sub, err := h.store.CreateSubmission(form.ToSubmission())
	if err != nil {
		var conflict *storage.ConflictError
		if errors.As(err, &conflict) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":   fmt.Sprintf("%s already exists", conflict.Field),
				"details": fmt.Sprintf("%s address is already registered", conflict.Field),
			})
		}
		log.Printf("Submission insert error: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Database error",
			"details": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Form submitted successfully!",
		"data":    sub,
	})
}

// ListSubmissions returns every member record, newest first
func (h *MemberHandler) ListSubmissions(c *fiber.Ctx) error {
	subs, err := h.store.GetAllSubmissions()
	if err != nil {
		log.Printf("Submissions fetch error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve submissions",
		})
	}

	return c.JSON(subs)
}
