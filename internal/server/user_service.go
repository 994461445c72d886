package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rolemark/rolemark/internal/config"
	"github.com/rolemark/rolemark/internal/db"
	"github.com/rolemark/rolemark/internal/types"
)

// DBClient is the subset of db.DB the user service needs. Declared as an
// interface so handler tests can substitute a mock.
type DBClient interface {
	CreateUser(ctx context.Context, name, email string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByEmail(ctx context.Context, email string) (*db.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}

// UserService provides business logic for user authentication operations
type UserService struct {
	db             DBClient
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(db DBClient, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             db,
		passwordConfig: passwordConfig,
	}
}

// convertDBUserToTypesUser converts db.User to types.User, excluding password hash
func convertDBUserToTypesUser(dbUser *db.User) *types.User {
	if dbUser == nil {
		return nil
	}
	return &types.User{
		ID:        dbUser.ID,
		Name:      dbUser.Name,
		Email:     dbUser.Email,
		CreatedAt: dbUser.CreatedAt,
		UpdatedAt: dbUser.UpdatedAt,
	}
}

// Register creates a new user with password authentication
func (s *UserService) Register(ctx context.Context, req *types.CreateUserRequest) (*types.User, error) {
	exists, err := s.db.CheckEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Two-step: create user, then set password
	userID, err := s.db.CreateUser(ctx, req.Name, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.db.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return nil, fmt.Errorf("failed to set password: %w", err)
	}

	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if dbUser == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}

	return convertDBUserToTypesUser(dbUser), nil
}

// Login authenticates a user and returns user data
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	dbUser, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Always return the same generic error if the user is missing, the
	// password is wrong, or no password has been set
	if dbUser == nil || !dbUser.PasswordSet {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return convertDBUserToTypesUser(dbUser), nil
}

// UpdatePassword updates a user's password after verifying the current one
func (s *UserService) UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return &ErrUserNotFound{UserID: userID}
	}

	if !s.passwordConfig.VerifyPassword(currentPassword, dbUser.PasswordHash) {
		return &ErrPasswordMismatch{}
	}

	newPasswordHash, err := s.passwordConfig.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.db.UpdatePassword(ctx, userID, newPasswordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
