package service

import (
	"context"
	"fmt"

	"github.com/freightex/freightex/internal/config"
	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/store"
	"github.com/freightex/freightex/internal/utils"
	"github.com/freightex/freightex/internal/validators"
	"github.com/freightex/freightex/models"
)

// quotationService is the concrete implementation of QuotationService.
type quotationService struct {
	quotationRepository store.QuotationRepository
	requestRepository   store.ShipmentRequestRepository
	customerRepository  store.CustomerRepository
	shipperRepository   store.ShipperRepository
	validator           validators.Validator

	// restrictToInvited, when enabled, rejects quotations from shippers the
	// request was never forwarded to. Off by default: any verified shipper
	// may quote on an open request.
	restrictToInvited bool

	logger *logger.Logger
}

// NewQuotationService constructs a QuotationService. The quoting policy is
// taken from cfg.RestrictQuotesToInvited.
func NewQuotationService(
	quotationRepository store.QuotationRepository,
	requestRepository store.ShipmentRequestRepository,
	customerRepository store.CustomerRepository,
	shipperRepository store.ShipperRepository,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) QuotationService {
	return &quotationService{
		quotationRepository: quotationRepository,
		requestRepository:   requestRepository,
		customerRepository:  customerRepository,
		shipperRepository:   shipperRepository,
		validator:           validator,
		restrictToInvited:   cfg.RestrictQuotesToInvited,
		logger:              logger,
	}
}

// Create submits a quotation from the caller's shipper profile against an
// open request. The shipper must be verified; under the restricted policy it
// must also have received the request.
func (s *quotationService) Create(ctx context.Context, principal models.Principal, quotation models.Quotation) (models.Quotation, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, quotation); err != nil {
		log.Error().Err(err).Str("user_id", principal.UserID).Msg("invalid quotation provided")
		return models.Quotation{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if quotation.ShipmentRequestID == "" {
		return models.Quotation{}, fmt.Errorf("%w: shipment request id is required", ErrInvalidDataProvided)
	}

	shipper, err := s.shipperRepository.GetShipperByUserID(ctx, principal.UserID)
	if err != nil {
		log.Err(err).Str("user_id", principal.UserID).Msg("shipper profile lookup failed")
		return models.Quotation{}, err
	}
	if shipper.Status != models.ShipperVerified {
		log.Warn().Str("shipper_id", shipper.ID).Str("status", string(shipper.Status)).Msg("unverified shipper attempted to quote")
		return models.Quotation{}, store.ErrShipperNotVerified
	}

	if s.restrictToInvited {
		invited, err := s.requestRepository.IsShipperInvited(ctx, quotation.ShipmentRequestID, shipper.ID)
		if err != nil {
			return models.Quotation{}, err
		}
		if !invited {
			log.Warn().
				Str("shipper_id", shipper.ID).
				Str("request_id", quotation.ShipmentRequestID).
				Msg("shipper quoted on a request not forwarded to them")
			return models.Quotation{}, store.ErrShipperNotInvited
		}
	}

	quotation.ID = utils.NewUUID()
	quotation.ShipperID = shipper.ID

	created, first, err := s.quotationRepository.CreateQuotation(ctx, quotation)
	if err != nil {
		log.Err(err).Str("shipper_id", shipper.ID).Str("request_id", quotation.ShipmentRequestID).Msg("quotation creation ended with error")
		return models.Quotation{}, fmt.Errorf("quotation creation ended with error: %w", err)
	}

	if first {
		log.Info().
			Str("quotation_id", created.ID).
			Str("request_id", created.ShipmentRequestID).
			Msg("first quotation for request")
	}

	return created, nil
}

// Get returns one quotation. Admins see any quotation; shippers see their
// own; customers see quotations against their own requests.
func (s *quotationService) Get(ctx context.Context, principal models.Principal, id string) (models.Quotation, error) {
	log := logger.FromContext(ctx)

	quotation, err := s.quotationRepository.GetQuotationByID(ctx, id)
	if err != nil {
		return models.Quotation{}, err
	}

	switch {
	case principal.Role.IsAdmin():
		return quotation, nil

	case principal.Role == models.RoleShipper:
		shipper, err := s.shipperRepository.GetShipperByUserID(ctx, principal.UserID)
		if err != nil {
			return models.Quotation{}, err
		}
		if shipper.ID != quotation.ShipperID {
			log.Warn().Str("user_id", principal.UserID).Str("quotation_id", id).Msg("shipper attempted to read foreign quotation")
			return models.Quotation{}, ErrAccessDenied
		}
		return quotation, nil

	case principal.Role == models.RoleCustomer:
		if err := s.checkRequestOwnership(ctx, principal, quotation.ShipmentRequestID); err != nil {
			return models.Quotation{}, err
		}
		return quotation, nil

	default:
		return models.Quotation{}, ErrAccessDenied
	}
}

// List returns every quotation. Admin-only; route-level authorization
// guards access.
func (s *quotationService) List(ctx context.Context) ([]models.Quotation, error) {
	return s.quotationRepository.ListQuotations(ctx)
}

// ListByRequest returns the quotations submitted against one request.
// Admins see any request's quotations; customers only their own requests'.
func (s *quotationService) ListByRequest(ctx context.Context, principal models.Principal, requestID string) ([]models.Quotation, error) {
	if requestID == "" {
		return nil, ErrInvalidDataProvided
	}

	if !principal.Role.IsAdmin() {
		if err := s.checkRequestOwnership(ctx, principal, requestID); err != nil {
			return nil, err
		}
	}

	return s.quotationRepository.ListQuotationsByRequest(ctx, requestID)
}

// checkRequestOwnership verifies that the principal's customer profile owns
// the given request.
func (s *quotationService) checkRequestOwnership(ctx context.Context, principal models.Principal, requestID string) error {
	log := logger.FromContext(ctx)

	request, err := s.requestRepository.GetRequestByID(ctx, requestID)
	if err != nil {
		return err
	}

	customer, err := s.customerRepository.GetCustomerByUserID(ctx, principal.UserID)
	if err != nil {
		return err
	}

	if customer.ID != request.CustomerID {
		log.Warn().Str("user_id", principal.UserID).Str("request_id", requestID).Msg("customer attempted to read quotations of foreign request")
		return ErrAccessDenied
	}

	return nil
}

// OverrideStatus sets the quotation status directly, bypassing workflow
// preconditions. The submitted value must be a member of the quotation
// status enum; every applied override is audit-logged with the acting
// principal.
func (s *quotationService) OverrideStatus(ctx context.Context, principal models.Principal, id, status string) (models.Quotation, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.Quotation{}, ErrInvalidDataProvided
	}

	quotationStatus := models.QuotationStatus(status)
	if !quotationStatus.Valid() {
		log.Warn().Str("quotation_id", id).Str("status", status).Msg("invalid quotation status submitted")
		return models.Quotation{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	updated, err := s.quotationRepository.OverrideQuotationStatus(ctx, id, quotationStatus)
	if err != nil {
		log.Err(err).Str("quotation_id", id).Msg("quotation status override ended with error")
		return models.Quotation{}, err
	}

	log.Warn().
		Str("quotation_id", id).
		Str("status", status).
		Str("overridden_by", principal.UserID).
		Msg("quotation status overridden outside the workflow")

	return updated, nil
}
