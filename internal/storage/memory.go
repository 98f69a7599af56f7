package storage

import (
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/hbc-community/community-backend/internal/models"
)

// MemoryStore holds all submissions in memory. Used for tests and for
// running the service without a database (USE_MEMORY_STORE=true).
type MemoryStore struct {
	mu     sync.RWMutex
	subs   map[string]*models.Submission // keyed by email
	nextID uint
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		subs: make(map[string]*models.Submission),
	}
}

func (m *MemoryStore) CreateSubmission(sub *models.Submission) (*models.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.subs[sub.Email]; exists {
		return nil, &ConflictError{Field: ConflictEmail}
	}
	for _, existing := range m.subs {
		if existing.Phone == sub.Phone {
			return nil, &ConflictError{Field: ConflictPhone}
		}
	}

	m.nextID++
	stored := *sub
	stored.Model = gorm.Model{
		ID:        m.nextID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	m.subs[stored.Email] = &stored
	return &stored, nil
}

func (m *MemoryStore) GetSubmissionByEmail(email string) (*models.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sub, exists := m.subs[email]
	if !exists {
		return nil, ErrNotFound
	}
	copied := *sub
	return &copied, nil
}

func (m *MemoryStore) UpdateSubmissionByEmail(email string, changes map[string]interface{}) ([]*models.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub, exists := m.subs[email]
	if !exists {
		return []*models.Submission{}, nil
	}

	// Phone is unique across all records, matching the database index
	if phone, ok := changes["phone"].(string); ok {
		for otherEmail, other := range m.subs {
			if otherEmail != email && other.Phone == phone {
				return nil, &ConflictError{Field: ConflictPhone}
			}
		}
	}

	for column, value := range changes {
		v, ok := value.(string)
		if !ok {
			continue
		}
		applyColumn(sub, column, v)
	}
	sub.UpdatedAt = time.Now()

	copied := *sub
	return []*models.Submission{&copied}, nil
}

func (m *MemoryStore) GetAllSubmissions() ([]*models.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	subs := make([]*models.Submission, 0, len(m.subs))
	for _, sub := range m.subs {
		copied := *sub
		subs = append(subs, &copied)
	}

	// Newest first; IDs break ties for records created in the same instant
	sort.Slice(subs, func(i, j int) bool {
		if !subs[i].CreatedAt.Equal(subs[j].CreatedAt) {
			return subs[i].CreatedAt.After(subs[j].CreatedAt)
		}
		return subs[i].ID > subs[j].ID
	})

	return subs, nil
}

func applyColumn(sub *models.Submission, column, value string) {
	switch column {
	case "name":
		sub.Name = value
	case "phone":
		sub.Phone = value
	case "address":
		sub.Address = value
	case "city":
		sub.City = value
	case "state":
		sub.State = value
	case "business_name":
		sub.BusinessName = value
	case "business_category":
		sub.BusinessCategory = value
	case "business_description":
		sub.BusinessDescription = value
	case "business_website":
		sub.BusinessWebsite = value
	case "business_social_media":
		sub.BusinessSocialMedia = value
	case "services_offered":
		sub.ServicesOffered = value
	case "looking_for":
		sub.LookingFor = value
	}
}
