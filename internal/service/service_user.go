package service

import (
	"context"
	"fmt"

	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/store"
	"github.com/freightex/freightex/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService on top of the user repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers returns every account.
func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

// SetUserRole reassigns the role of an existing account. Granting superadmin
// requires the caller to be a superadmin; every reassignment is audit-logged
// with the acting principal.
func (s *userService) SetUserRole(ctx context.Context, principal models.Principal, userID, role string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	newRole := models.Role(role)
	if !newRole.Valid() {
		log.Warn().Str("user_id", userID).Str("role", role).Msg("invalid role submitted")
		return models.User{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	if newRole == models.RoleSuperadmin && principal.Role != models.RoleSuperadmin {
		log.Warn().
			Str("actor_id", principal.UserID).
			Str("user_id", userID).
			Msg("admin attempted to grant superadmin role")
		return models.User{}, ErrSuperadminGrantDenied
	}

	updated, err := s.userRepository.UpdateUserRole(ctx, userID, newRole)
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user role reassignment ended with error")
		return models.User{}, err
	}

	log.Warn().
		Str("actor_id", principal.UserID).
		Str("actor_role", string(principal.Role)).
		Str("user_id", userID).
		Str("role", string(newRole)).
		Msg("user role reassigned")

	return updated, nil
}

// DeleteUser hard-deletes an account. The superadmin-only gate sits at the
// routing layer; the guard here covers any future internal callers.
func (s *userService) DeleteUser(ctx context.Context, principal models.Principal, userID string) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return ErrInvalidDataProvided
	}

	if principal.Role != models.RoleSuperadmin {
		log.Warn().Str("actor_id", principal.UserID).Str("user_id", userID).Msg("non-superadmin attempted user deletion")
		return ErrAccessDenied
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Str("user_id", userID).Msg("user deletion ended with error")
		return err
	}

	log.Warn().
		Str("actor_id", principal.UserID).
		Str("user_id", userID).
		Msg("user account deleted")

	return nil
}
