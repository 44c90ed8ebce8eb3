package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/keepnote/keepnote-api/internal/domain"
	"github.com/keepnote/keepnote-api/internal/service/auth"
	"github.com/keepnote/keepnote-api/internal/store"
)

// UserService provides registration, credential validation and account
// management for users.
type UserService interface {
	// Register persists a new user.
	// Returns store.ErrUserExists when the user ID is already taken.
	Register(ctx context.Context, user *domain.User) error

	// Validate fetches the user and compares the supplied credential against
	// the stored one. Returns store.ErrUserNotFound if the user is absent;
	// otherwise reports whether the credential matched exactly.
	Validate(ctx context.Context, userID, password string) (bool, error)

	// Update overwrites the user identified by id with the supplied record
	// and returns the updated user.
	// Returns store.ErrUserNotFound if no such user exists.
	Update(ctx context.Context, user *domain.User, id string) (*domain.User, error)

	// GetByID retrieves a user by ID.
	// Returns store.ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id string) (*domain.User, error)

	// Delete removes the user.
	// Returns store.ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id string) error
}

// userServiceImpl implements the UserService interface.
type userServiceImpl struct {
	userStore store.UserStore
	verifier  auth.PasswordVerifier
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) UserService {
	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore: userStore,
		verifier:  verifier,
		logger:    logger.With("component", "user_service"),
	}
}

// Register persists a new user.
func (s *userServiceImpl) Register(ctx context.Context, user *domain.User) error {
	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			s.logger.Debug("attempted to register taken user ID",
				"user_id", user.ID)
			return err
		}
		s.logger.Error("failed to register user",
			"error", err,
			"user_id", user.ID)
		return fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return nil
}

// Validate checks the supplied credential against the stored one.
// The comparison is exact: case-sensitive, no trimming.
func (s *userServiceImpl) Validate(ctx context.Context, userID, password string) (bool, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("credential validation for unknown user",
				"user_id", userID)
			return false, err
		}
		s.logger.Error("failed to fetch user for validation",
			"error", err,
			"user_id", userID)
		return false, fmt.Errorf("failed to validate user: %w", err)
	}

	return s.verifier.Compare(user.Password, password), nil
}

// Update overwrites the user identified by id with the supplied record.
// The preflight fetch both confirms existence and pins the immutable fields
// (ID, registration date) against whatever the caller sent.
func (s *userServiceImpl) Update(ctx context.Context, user *domain.User, id string) (*domain.User, error) {
	existing, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found for update", "user_id", id)
			return nil, err
		}
		s.logger.Error("failed to fetch user for update",
			"error", err,
			"user_id", id)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	user.ID = existing.ID
	user.AddedDate = existing.AddedDate

	if err := s.userStore.Update(ctx, user); err != nil {
		s.logger.Error("failed to update user",
			"error", err,
			"user_id", id)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("user updated", "user_id", id)
	return user, nil
}

// GetByID retrieves a user by ID.
func (s *userServiceImpl) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, err
		}
		s.logger.Error("failed to retrieve user",
			"error", err,
			"user_id", id)
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	return user, nil
}

// Delete removes the user.
func (s *userServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.userStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("user not found for delete", "user_id", id)
			return err
		}
		s.logger.Error("failed to delete user",
			"error", err,
			"user_id", id)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}
