package config

import (
	"fmt"
	"os"
)

// JWTConfig holds configuration for JWT token generation and validation.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig creates a new JWT configuration from environment variables.
// It reads JWT_SECRET (required) and JWT_EXPIRATION_HOURS (default: 24).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	hours, err := envInt("JWT_EXPIRATION_HOURS", 24)
	if err != nil {
		return nil, err
	}
	if hours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1 hour, got: %d", hours)
	}

	return &JWTConfig{Secret: secret, ExpirationHours: hours}, nil
}
