package handlers_test

import (
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var codeInEmail = regexp.MustCompile(`>(\d{6})</h1>`)

// sendOTP drives /send-otp and extracts the issued code from the captured
// email body.
func sendOTP(t *testing.T, env *testEnv, email string) string {
	t.Helper()

	var htmlBody string
	env.mailer.On("SendMail", email, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { htmlBody = args.String(2) }).
		Return(nil).Once()

	status, body := env.request(t, http.MethodPost, "/send-otp", map[string]string{"email": email})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "OTP sent successfully", body["message"])

	match := codeInEmail.FindStringSubmatch(htmlBody)
	require.Len(t, match, 2, "verification code missing from email body")
	return match[1]
}

func TestCheckEmail(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@x.com", "+919876543210")

	status, body := env.request(t, http.MethodPost, "/check-email", map[string]string{"email": "a@x.com"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Email found", body["message"])
}

func TestCheckEmailNotRegistered(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodPost, "/check-email", map[string]string{"email": "a@x.com"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Email not found", body["error"])
	assert.Equal(t, "This email is not registered in our database. Please join our network first.", body["message"])
}

func TestSendAndVerifyOTP(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@x.com", "+919876543210")

	code := sendOTP(t, env, "a@x.com")

	status, body := env.request(t, http.MethodPost, "/verify-otp", map[string]string{
		"email": "a@x.com",
		"otp":   code,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OTP verified successfully", body["message"])

	// codes are single use
	status, body = env.request(t, http.MethodPost, "/verify-otp", map[string]string{
		"email": "a@x.com",
		"otp":   code,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid OTP", body["error"])

	env.mailer.AssertExpectations(t)
}

func TestSendOTPMailIncludesSubjectAndRecipient(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@x.com", "+919876543210")

	env.mailer.On("SendMail",
		"a@x.com",
		"Your Verification Code - Bharat Community",
		mock.Anything,
		"Bharat Community",
	).Return(nil).Once()

	status, _ := env.request(t, http.MethodPost, "/send-otp", map[string]string{"email": "a@x.com"})
	assert.Equal(t, http.StatusOK, status)

	env.mailer.AssertExpectations(t)
}

func TestSendOTPUnregisteredEmail(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodPost, "/send-otp", map[string]string{"email": "nobody@x.com"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Email not found", body["error"])

	env.mailer.AssertNotCalled(t, "SendMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSendOTPDeliveryFailure(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@x.com", "+919876543210")

	env.mailer.On("SendMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp: connection refused")).Once()

	status, body := env.request(t, http.MethodPost, "/send-otp", map[string]string{"email": "a@x.com"})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Failed to send OTP", body["error"])
}

func TestVerifyOTPWithoutIssuance(t *testing.T) {
	env := newTestEnv(t)

	status, body := env.request(t, http.MethodPost, "/verify-otp", map[string]string{
		"email": "a@x.com",
		"otp":   "000000",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid OTP", body["error"])
}

func TestVerifyOTPWrongCodeThenRetry(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@x.com", "+919876543210")

	code := sendOTP(t, env, "a@x.com")

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	status, _ := env.request(t, http.MethodPost, "/verify-otp", map[string]string{
		"email": "a@x.com",
		"otp":   wrong,
	})
	require.Equal(t, http.StatusBadRequest, status)

	// a failed attempt leaves the code usable
	status, _ = env.request(t, http.MethodPost, "/verify-otp", map[string]string{
		"email": "a@x.com",
		"otp":   code,
	})
	assert.Equal(t, http.StatusOK, status)
}

func TestReissueInvalidatesPreviousCode(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@x.com", "+919876543210")

	first := sendOTP(t, env, "a@x.com")
	second := sendOTP(t, env, "a@x.com")

	if first != second {
		status, _ := env.request(t, http.MethodPost, "/verify-otp", map[string]string{
			"email": "a@x.com",
			"otp":   first,
		})
		assert.Equal(t, http.StatusBadRequest, status)
	}

	status, _ := env.request(t, http.MethodPost, "/verify-otp", map[string]string{
		"email": "a@x.com",
		"otp":   second,
	})
	assert.Equal(t, http.StatusOK, status)
}
