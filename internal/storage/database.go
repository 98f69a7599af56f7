package storage

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/hbc-community/community-backend/internal/models"
)

// DatabaseStore persists submissions in the database through GORM.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a store backed by the given GORM connection
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (s *DatabaseStore) CreateSubmission(sub *models.Submission) (*models.Submission, error) {
	if err := s.db.Create(sub).Error; err != nil {
		if field, ok := s.conflictField(err, sub.Email); ok {
			return nil, &ConflictError{Field: field}
		}
		return nil, err
	}
	return sub, nil
}

// conflictField resolves a unique-violation error to the field that caused
// it. Postgres reports the violated constraint name on error 23505; drivers
// that only surface gorm.ErrDuplicatedKey fall back to an email-existence
// lookup to tell the two constraints apart.
func (s *DatabaseStore) conflictField(err error, email string) (ConflictField, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != "23505" {
			return "", false
		}
		if strings.Contains(pgErr.ConstraintName, "phone") {
			return ConflictPhone, true
		}
		return ConflictEmail, true
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		var count int64
		s.db.Model(&models.Submission{}).Where("email = ?", email).Count(&count)
		if count > 0 {
			return ConflictEmail, true
		}
		return ConflictPhone, true
	}

	return "", false
}

func (s *DatabaseStore) GetSubmissionByEmail(email string) (*models.Submission, error) {
	var sub models.Submission
	if err := s.db.Where("email = ?", email).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (s *DatabaseStore) UpdateSubmissionByEmail(email string, changes map[string]interface{}) ([]*models.Submission, error) {
	if len(changes) > 0 {
		err := s.db.Model(&models.Submission{}).Where("email = ?", email).Updates(changes).Error
		if err != nil {
			return nil, err
		}
	}

	var subs []*models.Submission
	if err := s.db.Where("email = ?", email).Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *DatabaseStore) GetAllSubmissions() ([]*models.Submission, error) {
	var subs []*models.Submission
	if err := s.db.Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}
