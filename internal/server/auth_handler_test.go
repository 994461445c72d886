package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolemark/rolemark/internal/types"
)

func newTestAuthHandler() (*AuthHandler, *mockDBClient) {
	mock := newMockDBClient()
	return NewAuthHandler(testUserService(mock), setupTestJWTService(nil, 24)), mock
}

func postJSON(t *testing.T, body any) *bytes.Buffer {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func TestAuthHandler_Register(t *testing.T) {
	h, _ := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", postJSON(t, types.CreateUserRequest{
		Name:     "Dana Smith",
		Email:    "dana@example.com",
		Password: "password123",
	}))
	w := httptest.NewRecorder()

	h.Register(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, "dana@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	h, _ := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", postJSON(t, types.CreateUserRequest{
		Name:     "Dana Smith",
		Email:    "dana@example.com",
		Password: "short",
	}))
	w := httptest.NewRecorder()

	h.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation error")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h, _ := newTestAuthHandler()

	body := types.CreateUserRequest{Name: "Dana", Email: "dup@example.com", Password: "password123"}

	w := httptest.NewRecorder()
	h.Register(w, httptest.NewRequest(http.MethodPost, "/auth/register", postJSON(t, body)))
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	h.Register(w, httptest.NewRequest(http.MethodPost, "/auth/register", postJSON(t, body)))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	h, _ := newTestAuthHandler()

	w := httptest.NewRecorder()
	h.Register(w, httptest.NewRequest(http.MethodPost, "/auth/register", postJSON(t, types.CreateUserRequest{
		Name: "Dana", Email: "dana@example.com", Password: "password123",
	})))
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("valid", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Login(w, httptest.NewRequest(http.MethodPost, "/auth/login", postJSON(t, types.LoginRequest{
			Email: "dana@example.com", Password: "password123",
		})))
		require.Equal(t, http.StatusOK, w.Code)

		var resp types.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Login(w, httptest.NewRequest(http.MethodPost, "/auth/login", postJSON(t, types.LoginRequest{
			Email: "dana@example.com", Password: "password456",
		})))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.Login(w, httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString("{")))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	h, mock := newTestAuthHandler()

	w := httptest.NewRecorder()
	h.Register(w, httptest.NewRequest(http.MethodPost, "/auth/register", postJSON(t, types.CreateUserRequest{
		Name: "Dana", Email: "dana@example.com", Password: "password123",
	})))
	require.Equal(t, http.StatusCreated, w.Code)
	userID := mock.byEmail["dana@example.com"]

	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.UpdatePassword(w, httptest.NewRequest(http.MethodPut, "/auth/password", postJSON(t, types.UpdatePasswordRequest{
			CurrentPassword: "password123",
			NewPassword:     "password456",
		})), userID)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong current password", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.UpdatePassword(w, httptest.NewRequest(http.MethodPut, "/auth/password", postJSON(t, types.UpdatePasswordRequest{
			CurrentPassword: "password123", // already rotated above
			NewPassword:     "password789",
		})), userID)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("new password too short", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.UpdatePassword(w, httptest.NewRequest(http.MethodPut, "/auth/password", postJSON(t, types.UpdatePasswordRequest{
			CurrentPassword: "password456",
			NewPassword:     "tiny",
		})), uuid.New())
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
