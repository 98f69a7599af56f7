package config

import (
	"os"
	"strconv"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	Port string

	// DatabaseURL takes precedence over the discrete DB_* variables
	// read by the database package.
	DatabaseURL string

	// Gmail-style SMTP submission: EmailUser doubles as the login and
	// the From address.
	EmailUser string
	EmailPass string
	SMTPHost  string
	SMTPPort  string

	// AllowedOrigins is the CORS allow-list for browser clients.
	AllowedOrigins []string

	// OTPTTLMinutes controls how long an issued verification code stays
	// valid. Zero or negative disables expiry.
	OTPTTLMinutes int
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "3001"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		EmailUser:      getEnv("EMAIL_USER", ""),
		EmailPass:      getEnv("EMAIL_PASS", ""),
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		AllowedOrigins: allowedOrigins(),
		OTPTTLMinutes:  getEnvInt("OTP_TTL_MINUTES", 10),
	}
}

func allowedOrigins() []string {
	origins := []string{
		"https://hbc-community.vercel.app",
		"http://localhost:3000",
	}
	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		origins = append(origins, clientURL)
	}
	return origins
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
