package storage

import (
	"errors"
	"fmt"

	"github.com/hbc-community/community-backend/internal/models"
)

// ErrNotFound is returned when no submission matches the lookup.
var ErrNotFound = errors.New("submission not found")

// ConflictField identifies which uniqueness constraint an insert violated.
type ConflictField string

const (
	ConflictEmail ConflictField = "Email"
	ConflictPhone ConflictField = "Phone"
)

// ConflictError reports a uniqueness violation on insert. The field is a
// structured value so callers never have to parse driver error text.
type ConflictError struct {
	Field ConflictField
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists", string(e.Field))
}

// Store defines the interface for submission storage operations
type Store interface {
	// CreateSubmission inserts a new record. Returns *ConflictError when
	// the email or phone is already registered.
	CreateSubmission(sub *models.Submission) (*models.Submission, error)

	// GetSubmissionByEmail returns the record matching email exactly, or
	// ErrNotFound.
	GetSubmissionByEmail(email string) (*models.Submission, error)

	// UpdateSubmissionByEmail applies the given column changes to the
	// record matching email and returns the records that matched. The
	// slice is empty when no record matched.
	UpdateSubmissionByEmail(email string, changes map[string]interface{}) ([]*models.Submission, error)

	// GetAllSubmissions returns every record, newest first.
	GetAllSubmissions() ([]*models.Submission, error)
}
