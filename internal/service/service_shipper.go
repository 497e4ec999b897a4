package service

import (
	"context"
	"fmt"

	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/store"
	"github.com/freightex/freightex/internal/utils"
	"github.com/freightex/freightex/internal/validators"
	"github.com/freightex/freightex/models"
)

// shipperService is the concrete implementation of ShipperService.
type shipperService struct {
	shipperRepository store.ShipperRepository
	userRepository    store.UserRepository
	validator         validators.Validator
	logger            *logger.Logger
}

// NewShipperService constructs a ShipperService on top of the shipper and
// user repositories.
func NewShipperService(shipperRepository store.ShipperRepository, userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) ShipperService {
	return &shipperService{
		shipperRepository: shipperRepository,
		userRepository:    userRepository,
		validator:         validator,
		logger:            logger,
	}
}

// CreateProfile submits the shipper profile for the authenticated account.
// New profiles always start in pending_verification; only an admin moves
// them to verified. On success the account role is set to shipper.
func (s *shipperService) CreateProfile(ctx context.Context, principal models.Principal, shipper models.Shipper) (models.Shipper, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, shipper); err != nil {
		log.Error().Err(err).Str("user_id", principal.UserID).Msg("invalid shipper profile provided")
		return models.Shipper{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	shipper.ID = utils.NewUUID()
	shipper.UserID = principal.UserID
	shipper.Status = models.ShipperPendingVerification

	created, err := s.shipperRepository.CreateShipper(ctx, shipper)
	if err != nil {
		log.Err(err).Str("user_id", principal.UserID).Msg("shipper profile creation ended with error")
		return models.Shipper{}, fmt.Errorf("shipper profile creation ended with error: %w", err)
	}

	if _, err := s.userRepository.UpdateUserRole(ctx, principal.UserID, models.RoleShipper); err != nil {
		log.Err(err).Str("user_id", principal.UserID).Msg("failed to align account role with shipper profile")
		return models.Shipper{}, fmt.Errorf("failed to align account role: %w", err)
	}

	return created, nil
}

// GetOwnProfile returns the caller's shipper profile.
func (s *shipperService) GetOwnProfile(ctx context.Context, principal models.Principal) (models.Shipper, error) {
	return s.shipperRepository.GetShipperByUserID(ctx, principal.UserID)
}

// GetShipper returns one shipper profile by id.
func (s *shipperService) GetShipper(ctx context.Context, id string) (models.Shipper, error) {
	if id == "" {
		return models.Shipper{}, ErrInvalidDataProvided
	}

	return s.shipperRepository.GetShipperByID(ctx, id)
}

// ListShippers returns every shipper profile.
func (s *shipperService) ListShippers(ctx context.Context) ([]models.Shipper, error) {
	return s.shipperRepository.ListShippers(ctx)
}

// UpdateShipperStatus is the admin verification operation. The submitted
// status must be a member of the shipper status enum.
func (s *shipperService) UpdateShipperStatus(ctx context.Context, id string, status string) (models.Shipper, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.Shipper{}, ErrInvalidDataProvided
	}

	shipperStatus := models.ShipperStatus(status)
	if !shipperStatus.Valid() {
		log.Warn().Str("shipper_id", id).Str("status", status).Msg("invalid shipper status submitted")
		return models.Shipper{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	updated, err := s.shipperRepository.UpdateShipperStatus(ctx, id, shipperStatus)
	if err != nil {
		log.Err(err).Str("shipper_id", id).Msg("shipper status update ended with error")
		return models.Shipper{}, err
	}

	return updated, nil
}
