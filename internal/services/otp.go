package services

import (
	"sync"
	"time"

	"github.com/hbc-community/community-backend/internal/utils"
)

// OTPRegistry maps an email address to its outstanding verification code.
// Codes are single use: a successful verification consumes the entry, a
// failed attempt leaves it in place. The registry is process-local, so
// verification breaks across horizontally scaled instances unless requests
// for one email stick to one instance.
type OTPRegistry struct {
	mu    sync.Mutex
	ttl   time.Duration
	codes map[string]otpEntry
	now   func() time.Time
}

type otpEntry struct {
	code     string
	issuedAt time.Time
}

// NewOTPRegistry creates a registry whose codes expire after ttl.
// A zero or negative ttl disables expiry.
func NewOTPRegistry(ttl time.Duration) *OTPRegistry {
	return &OTPRegistry{
		ttl:   ttl,
		codes: make(map[string]otpEntry),
		now:   time.Now,
	}
}

// TTL returns the configured code lifetime.
func (r *OTPRegistry) TTL() time.Duration {
	return r.ttl
}

// Issue generates a fresh 6-digit code for email, replacing any
// outstanding code for the same address.
func (r *OTPRegistry) Issue(email string) (string, error) {
	code, err := utils.GenerateSecureOTP()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.codes[email] = otpEntry{code: code, issuedAt: r.now()}
	r.mu.Unlock()

	return code, nil
}

// Verify consumes the outstanding code for email if suppliedCode matches it
// exactly and the code has not expired. Returns false otherwise; a wrong
// code does not invalidate the entry, so the caller may retry.
func (r *OTPRegistry) Verify(email, suppliedCode string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.codes[email]
	if !exists {
		return false
	}

	if r.ttl > 0 && r.now().Sub(entry.issuedAt) > r.ttl {
		delete(r.codes, email)
		return false
	}

	if entry.code != suppliedCode {
		return false
	}

	delete(r.codes, email)
	return true
}
