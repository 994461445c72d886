package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rolemark/rolemark/internal/validation"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates a named resource does not exist
type ErrNotFound struct {
	Resource string
	ID       uuid.UUID
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrForbidden indicates the resource belongs to another user
type ErrForbidden struct {
	Resource string
}

func (e *ErrForbidden) Error() string {
	return fmt.Sprintf("%s belongs to another user", e.Resource)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials, *ErrPasswordMismatch:
		return http.StatusUnauthorized
	case *ErrUserNotFound, *ErrNotFound:
		return http.StatusNotFound
	case *ErrForbidden:
		return http.StatusForbidden
	case *ErrValidation, *validation.ConfigError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
