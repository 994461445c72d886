package config

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// PasswordConfig holds configuration for password hashing and verification.
type PasswordConfig struct {
	BcryptCost int
	Pepper     string // optional global secret mixed into every password
}

// NewPasswordConfig creates a new password configuration from environment
// variables. It reads BCRYPT_COST (default: 12) and optionally
// PASSWORD_PEPPER.
func NewPasswordConfig() (*PasswordConfig, error) {
	cost, err := envInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, err
	}
	if cost < 10 || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be 10-14)", cost)
	}

	return &PasswordConfig{
		BcryptCost: cost,
		Pepper:     os.Getenv("PASSWORD_PEPPER"),
	}, nil
}

// HashPassword hashes a password using bcrypt with the configured cost.
func (c *PasswordConfig) HashPassword(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw+c.Pepper), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword verifies a password against a stored hash.
func (c *PasswordConfig) VerifyPassword(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(pw+c.Pepper)) == nil
}
