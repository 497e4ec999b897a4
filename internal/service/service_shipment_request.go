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

// shipmentRequestService is the concrete implementation of
// ShipmentRequestService. State-machine preconditions are enforced inside the
// repository transactions; this layer contributes input validation, ownership
// checks, and audit logging of the legacy overrides.
type shipmentRequestService struct {
	requestRepository  store.ShipmentRequestRepository
	customerRepository store.CustomerRepository
	shipperRepository  store.ShipperRepository
	validator          validators.Validator
	logger             *logger.Logger
}

// NewShipmentRequestService constructs a ShipmentRequestService.
func NewShipmentRequestService(
	requestRepository store.ShipmentRequestRepository,
	customerRepository store.CustomerRepository,
	shipperRepository store.ShipperRepository,
	validator validators.Validator,
	logger *logger.Logger,
) ShipmentRequestService {
	return &shipmentRequestService{
		requestRepository:  requestRepository,
		customerRepository: customerRepository,
		shipperRepository:  shipperRepository,
		validator:          validator,
		logger:             logger,
	}
}

// Create submits a new shipment request for the caller's customer profile.
// The request is always linked to the caller; a customer_id in the body is
// ignored.
func (s *shipmentRequestService) Create(ctx context.Context, principal models.Principal, request models.ShipmentRequest) (models.ShipmentRequest, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("user_id", principal.UserID).Msg("invalid shipment request provided")
		return models.ShipmentRequest{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	customer, err := s.customerRepository.GetCustomerByUserID(ctx, principal.UserID)
	if err != nil {
		log.Err(err).Str("user_id", principal.UserID).Msg("customer profile lookup failed")
		return models.ShipmentRequest{}, err
	}

	request.ID = utils.NewUUID()
	request.CustomerID = customer.ID

	created, err := s.requestRepository.CreateRequest(ctx, request)
	if err != nil {
		log.Err(err).Str("customer_id", customer.ID).Msg("shipment request creation ended with error")
		return models.ShipmentRequest{}, fmt.Errorf("shipment request creation ended with error: %w", err)
	}

	return created, nil
}

// Get returns one shipment request. Admins see any request; customers see
// their own; shippers see requests that were forwarded to them.
func (s *shipmentRequestService) Get(ctx context.Context, principal models.Principal, id string) (models.ShipmentRequest, error) {
	log := logger.FromContext(ctx)

	request, err := s.requestRepository.GetRequestByID(ctx, id)
	if err != nil {
		return models.ShipmentRequest{}, err
	}

	switch {
	case principal.Role.IsAdmin():
		return request, nil

	case principal.Role == models.RoleCustomer:
		customer, err := s.customerRepository.GetCustomerByUserID(ctx, principal.UserID)
		if err != nil {
			return models.ShipmentRequest{}, err
		}
		if customer.ID != request.CustomerID {
			log.Warn().Str("user_id", principal.UserID).Str("request_id", id).Msg("customer attempted to read foreign request")
			return models.ShipmentRequest{}, ErrAccessDenied
		}
		return request, nil

	case principal.Role == models.RoleShipper:
		shipper, err := s.shipperRepository.GetShipperByUserID(ctx, principal.UserID)
		if err != nil {
			return models.ShipmentRequest{}, err
		}
		invited, err := s.requestRepository.IsShipperInvited(ctx, id, shipper.ID)
		if err != nil {
			return models.ShipmentRequest{}, err
		}
		if !invited {
			log.Warn().Str("user_id", principal.UserID).Str("request_id", id).Msg("shipper attempted to read a request not forwarded to them")
			return models.ShipmentRequest{}, ErrAccessDenied
		}
		return request, nil

	default:
		return models.ShipmentRequest{}, ErrAccessDenied
	}
}

// List returns the shipment requests visible to the caller: all of them for
// admins, own requests for customers.
func (s *shipmentRequestService) List(ctx context.Context, principal models.Principal) ([]models.ShipmentRequest, error) {
	if principal.Role.IsAdmin() {
		return s.requestRepository.ListRequests(ctx)
	}

	customer, err := s.customerRepository.GetCustomerByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	return s.requestRepository.ListRequestsByCustomer(ctx, customer.ID)
}

// SendToShippers broadcasts a pending request to all verified shippers.
func (s *shipmentRequestService) SendToShippers(ctx context.Context, requestID string, body models.SendToShippersRequest) (models.ShipmentRequest, []models.Shipper, error) {
	log := logger.FromContext(ctx)

	if requestID == "" {
		return models.ShipmentRequest{}, nil, ErrInvalidDataProvided
	}
	if body.FilterMode != "" && !body.FilterMode.Valid() {
		log.Warn().Str("request_id", requestID).Str("filter_mode", string(body.FilterMode)).Msg("invalid transport mode filter")
		return models.ShipmentRequest{}, nil, fmt.Errorf("%w: unknown transport mode %q", ErrInvalidDataProvided, body.FilterMode)
	}

	return s.requestRepository.SendToShippers(ctx, requestID, body.AdminNotes, body.FilterMode)
}

// SendToSingleShipper forwards a request to one verified shipper.
func (s *shipmentRequestService) SendToSingleShipper(ctx context.Context, requestID, shipperID, adminNotes string) (models.RequestShipperLink, error) {
	if requestID == "" || shipperID == "" {
		return models.RequestShipperLink{}, ErrInvalidDataProvided
	}

	return s.requestRepository.SendToSingleShipper(ctx, requestID, shipperID, adminNotes)
}

// SelectQuotation marks one quotation of the request for customer review.
func (s *shipmentRequestService) SelectQuotation(ctx context.Context, requestID string, body models.SelectQuotationRequest) (models.ShipmentRequest, models.Quotation, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, body); err != nil {
		log.Error().Err(err).Str("request_id", requestID).Msg("invalid quotation selection provided")
		return models.ShipmentRequest{}, models.Quotation{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.requestRepository.SelectQuotation(ctx, requestID, body.QuotationID, body.AdminSelectionNotes)
}

// ApproveQuotation applies the owning customer's approval of the selected
// quotation.
func (s *shipmentRequestService) ApproveQuotation(ctx context.Context, principal models.Principal, requestID, notes string) (models.ShipmentRequest, error) {
	if err := s.checkRequestOwnership(ctx, principal, requestID); err != nil {
		return models.ShipmentRequest{}, err
	}

	return s.requestRepository.ApproveQuotation(ctx, requestID, notes)
}

// RejectQuotation applies the owning customer's rejection of the selected
// quotation, reopening the request for another selection.
func (s *shipmentRequestService) RejectQuotation(ctx context.Context, principal models.Principal, requestID, notes string) (models.ShipmentRequest, error) {
	if err := s.checkRequestOwnership(ctx, principal, requestID); err != nil {
		return models.ShipmentRequest{}, err
	}

	return s.requestRepository.RejectQuotation(ctx, requestID, notes)
}

// checkRequestOwnership verifies that the principal's customer profile owns
// the request. Admins pass unconditionally.
func (s *shipmentRequestService) checkRequestOwnership(ctx context.Context, principal models.Principal, requestID string) error {
	log := logger.FromContext(ctx)

	if requestID == "" {
		return ErrInvalidDataProvided
	}
	if principal.Role.IsAdmin() {
		return nil
	}

	request, err := s.requestRepository.GetRequestByID(ctx, requestID)
	if err != nil {
		return err
	}

	customer, err := s.customerRepository.GetCustomerByUserID(ctx, principal.UserID)
	if err != nil {
		return err
	}

	if customer.ID != request.CustomerID {
		log.Warn().
			Str("user_id", principal.UserID).
			Str("request_id", requestID).
			Msg("customer attempted to decide on foreign request")
		return ErrAccessDenied
	}

	return nil
}

// OverrideStatus sets the request status directly, bypassing workflow
// preconditions. The submitted value must be a member of the request status
// enum; every applied override is audit-logged with the acting principal.
func (s *shipmentRequestService) OverrideStatus(ctx context.Context, principal models.Principal, requestID, status string) (models.ShipmentRequest, error) {
	log := logger.FromContext(ctx)

	if requestID == "" {
		return models.ShipmentRequest{}, ErrInvalidDataProvided
	}

	requestStatus := models.RequestStatus(status)
	if !requestStatus.Valid() {
		log.Warn().Str("request_id", requestID).Str("status", status).Msg("invalid request status submitted")
		return models.ShipmentRequest{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	updated, err := s.requestRepository.OverrideRequestStatus(ctx, requestID, requestStatus)
	if err != nil {
		log.Err(err).Str("request_id", requestID).Msg("request status override ended with error")
		return models.ShipmentRequest{}, err
	}

	log.Warn().
		Str("request_id", requestID).
		Str("status", status).
		Str("overridden_by", principal.UserID).
		Msg("request status overridden outside the workflow")

	return updated, nil
}
