package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hbc-community/community-backend/internal/models"
	"github.com/hbc-community/community-backend/internal/routes"
	"github.com/hbc-community/community-backend/internal/services"
	"github.com/hbc-community/community-backend/internal/storage"
)

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendMail(to, subject, htmlBody, displayName string) error {
	return m.Called(to, subject, htmlBody, displayName).Error(0)
}

type testEnv struct {
	app    *fiber.App
	store  *storage.MemoryStore
	otps   *services.OTPRegistry
	mailer *mockMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		store:  storage.NewMemoryStore(),
		otps:   services.NewOTPRegistry(10 * time.Minute),
		mailer: &mockMailer{},
	}
	env.app = fiber.New()
	routes.SetupRoutes(env.app, env.store, env.otps, env.mailer)

	return env
}

// register seeds a member record directly through the store
func (e *testEnv) register(t *testing.T, email, phone string) {
	t.Helper()

	_, err := e.store.CreateSubmission(&models.Submission{
		Name:  "Seeded Member",
		Email: email,
		Phone: phone,
	})
	require.NoError(t, err)
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}

	return resp.StatusCode, decoded
}

func (e *testEnv) requestList(t *testing.T, path string) (int, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))

	return resp.StatusCode, decoded
}

func submitPayload(email, phone string) map[string]interface{} {
	return map[string]interface{}{
		"name":             "Asha Patel",
		"email":            email,
		"phone":            phone,
		"address":          "12 MG Road",
		"city":             "Mumbai",
		"state":            "Maharashtra",
		"employmentType":   "business owner",
		"businessName":     "Asha Textiles",
		"businessCategory": "Retail",
		"servicesOffered":  "Fabric wholesale",
		"lookingFor":       "Distributors",
		"agreeToRules":     true,
	}
}
