package server

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolemark/rolemark/internal/config"
)

func setupTestJWTService(_ *testing.T, expirationHours int) *JWTService {
	cfg := &config.JWTConfig{
		Secret:          "test-secret-key-for-jwt-signing-minimum-32-bytes",
		ExpirationHours: expirationHours,
	}
	return NewJWTService(cfg)
}

func TestJWTService_GenerateToken(t *testing.T) {
	service := setupTestJWTService(t, 24)
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parts := strings.Split(token, ".")
	assert.Equal(t, 3, len(parts), "JWT should have 3 parts separated by dots")
}

func TestJWTService_RoundTrip(t *testing.T) {
	service := setupTestJWTService(t, 24)
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID, claims.GetUserID())
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	service := setupTestJWTService(t, 24)
	other := NewJWTService(&config.JWTConfig{
		Secret:          "a-completely-different-secret-also-32-bytes!",
		ExpirationHours: 24,
	})

	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	// Negative expiration puts ExpiresAt in the past
	service := setupTestJWTService(t, -1)

	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	service := setupTestJWTService(t, 24)

	_, err := service.ValidateToken("")
	assert.Error(t, err)

	_, err = service.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestJWTService_AsTokenValidator(t *testing.T) {
	service := setupTestJWTService(t, 24)
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)

	validator := service.AsTokenValidator()
	getter, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, getter.GetUserID())
}
