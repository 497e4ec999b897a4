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

// customerService is the concrete implementation of CustomerService.
type customerService struct {
	customerRepository store.CustomerRepository
	userRepository     store.UserRepository
	validator          validators.Validator
	logger             *logger.Logger
}

// NewCustomerService constructs a CustomerService on top of the customer and
// user repositories. The user repository is needed to align the account role
// with the submitted profile.
func NewCustomerService(customerRepository store.CustomerRepository, userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) CustomerService {
	return &customerService{
		customerRepository: customerRepository,
		userRepository:     userRepository,
		validator:          validator,
		logger:             logger,
	}
}

// CreateProfile submits the customer profile for the authenticated account.
// The profile is always linked to the caller; a user_id in the body is
// ignored. On success the account role is set to customer.
func (s *customerService) CreateProfile(ctx context.Context, principal models.Principal, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, customer); err != nil {
		log.Error().Err(err).Str("user_id", principal.UserID).Msg("invalid customer profile provided")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	customer.ID = utils.NewUUID()
	customer.UserID = principal.UserID
	customer.Status = models.CustomerActive

	created, err := s.customerRepository.CreateCustomer(ctx, customer)
	if err != nil {
		log.Err(err).Str("user_id", principal.UserID).Msg("customer profile creation ended with error")
		return models.Customer{}, fmt.Errorf("customer profile creation ended with error: %w", err)
	}

	if _, err := s.userRepository.UpdateUserRole(ctx, principal.UserID, models.RoleCustomer); err != nil {
		log.Err(err).Str("user_id", principal.UserID).Msg("failed to align account role with customer profile")
		return models.Customer{}, fmt.Errorf("failed to align account role: %w", err)
	}

	return created, nil
}

// GetOwnProfile returns the caller's customer profile.
func (s *customerService) GetOwnProfile(ctx context.Context, principal models.Principal) (models.Customer, error) {
	return s.customerRepository.GetCustomerByUserID(ctx, principal.UserID)
}

// GetCustomer returns one customer profile by id.
func (s *customerService) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	if id == "" {
		return models.Customer{}, ErrInvalidDataProvided
	}

	return s.customerRepository.GetCustomerByID(ctx, id)
}

// ListCustomers returns every customer profile.
func (s *customerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return s.customerRepository.ListCustomers(ctx)
}

// DeleteCustomer removes a customer profile.
func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if id == "" {
		return ErrInvalidDataProvided
	}

	if err := s.customerRepository.DeleteCustomer(ctx, id); err != nil {
		log.Err(err).Str("customer_id", id).Msg("customer profile deletion ended with error")
		return err
	}

	log.Info().Str("customer_id", id).Msg("customer profile deleted")

	return nil
}
