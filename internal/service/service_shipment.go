package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/store"
	"github.com/freightex/freightex/internal/utils"
	"github.com/freightex/freightex/models"
)

// shipmentService is the concrete implementation of ShipmentService.
type shipmentService struct {
	shipmentRepository  store.ShipmentRepository
	quotationRepository store.QuotationRepository
	requestRepository   store.ShipmentRequestRepository
	customerRepository  store.CustomerRepository
	shipperRepository   store.ShipperRepository
	logger              *logger.Logger
}

// NewShipmentService constructs a ShipmentService. The quotation and request
// repositories are consulted to assemble the shipment record from the
// negotiation that produced it.
func NewShipmentService(
	shipmentRepository store.ShipmentRepository,
	quotationRepository store.QuotationRepository,
	requestRepository store.ShipmentRequestRepository,
	customerRepository store.CustomerRepository,
	shipperRepository store.ShipperRepository,
	logger *logger.Logger,
) ShipmentService {
	return &shipmentService{
		shipmentRepository:  shipmentRepository,
		quotationRepository: quotationRepository,
		requestRepository:   requestRepository,
		customerRepository:  customerRepository,
		shipperRepository:   shipperRepository,
		logger:              logger,
	}
}

// CreateFromQuotation finalizes a negotiation: the cargo details are copied
// from the originating request, the commercial terms come from the approved
// quotation, and a tracking number is assigned. The repository enforces the
// customer_approved precondition transactionally.
func (s *shipmentService) CreateFromQuotation(ctx context.Context, quotationID string, notes string) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	if quotationID == "" {
		return models.Shipment{}, ErrInvalidDataProvided
	}

	quotation, err := s.quotationRepository.GetQuotationByID(ctx, quotationID)
	if err != nil {
		log.Err(err).Str("quotation_id", quotationID).Msg("quotation lookup failed")
		return models.Shipment{}, err
	}

	request, err := s.requestRepository.GetRequestByID(ctx, quotation.ShipmentRequestID)
	if err != nil {
		log.Err(err).Str("request_id", quotation.ShipmentRequestID).Msg("shipment request lookup failed")
		return models.Shipment{}, err
	}

	estimatedDelivery := time.Now().AddDate(0, 0, quotation.EstimatedDeliveryDays)

	shipment := models.Shipment{
		ID:                    utils.NewUUID(),
		QuotationID:           quotation.ID,
		ShipperID:             quotation.ShipperID,
		CustomerID:            request.CustomerID,
		Origin:                request.Origin,
		Destination:           request.Destination,
		CargoType:             request.CargoType,
		ContainerType:         request.ContainerType,
		Weight:                request.Weight,
		Volume:                request.Volume,
		EstimatedDeliveryDate: &estimatedDelivery,
		TrackingNumber:        newTrackingNumber(),
		Notes:                 notes,
	}

	created, err := s.shipmentRepository.CreateFromQuotation(ctx, shipment)
	if err != nil {
		log.Err(err).Str("quotation_id", quotationID).Msg("shipment creation ended with error")
		return models.Shipment{}, err
	}

	return created, nil
}

// Get returns one shipment. Admins see any shipment; shippers and customers
// see shipments they are party to.
func (s *shipmentService) Get(ctx context.Context, principal models.Principal, id string) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	shipment, err := s.shipmentRepository.GetShipmentByID(ctx, id)
	if err != nil {
		return models.Shipment{}, err
	}

	switch {
	case principal.Role.IsAdmin():
		return shipment, nil

	case principal.Role == models.RoleShipper:
		shipper, err := s.shipperRepository.GetShipperByUserID(ctx, principal.UserID)
		if err != nil {
			return models.Shipment{}, err
		}
		if shipper.ID != shipment.ShipperID {
			log.Warn().Str("user_id", principal.UserID).Str("shipment_id", id).Msg("shipper attempted to read foreign shipment")
			return models.Shipment{}, ErrAccessDenied
		}
		return shipment, nil

	case principal.Role == models.RoleCustomer:
		customer, err := s.customerRepository.GetCustomerByUserID(ctx, principal.UserID)
		if err != nil {
			return models.Shipment{}, err
		}
		if customer.ID != shipment.CustomerID {
			log.Warn().Str("user_id", principal.UserID).Str("shipment_id", id).Msg("customer attempted to read foreign shipment")
			return models.Shipment{}, ErrAccessDenied
		}
		return shipment, nil

	default:
		return models.Shipment{}, ErrAccessDenied
	}
}

// List returns the shipments visible to the caller. Admins see all
// shipments; shippers and customers see the ones they are party to.
func (s *shipmentService) List(ctx context.Context, principal models.Principal) ([]models.Shipment, error) {
	shipments, err := s.shipmentRepository.ListShipments(ctx)
	if err != nil {
		return nil, err
	}

	if principal.Role.IsAdmin() {
		return shipments, nil
	}

	switch principal.Role {
	case models.RoleShipper:
		shipper, err := s.shipperRepository.GetShipperByUserID(ctx, principal.UserID)
		if err != nil {
			return nil, err
		}
		return filterShipments(shipments, func(sh models.Shipment) bool { return sh.ShipperID == shipper.ID }), nil

	case models.RoleCustomer:
		customer, err := s.customerRepository.GetCustomerByUserID(ctx, principal.UserID)
		if err != nil {
			return nil, err
		}
		return filterShipments(shipments, func(sh models.Shipment) bool { return sh.CustomerID == customer.ID }), nil

	default:
		return nil, ErrAccessDenied
	}
}

// UpdateStatus sets the operational status of a shipment. Admins update any
// shipment; the carrying shipper updates its own.
func (s *shipmentService) UpdateStatus(ctx context.Context, principal models.Principal, id, status string) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	if id == "" {
		return models.Shipment{}, ErrInvalidDataProvided
	}

	shipmentStatus := models.ShipmentStatus(status)
	if !shipmentStatus.Valid() {
		log.Warn().Str("shipment_id", id).Str("status", status).Msg("invalid shipment status submitted")
		return models.Shipment{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if !principal.Role.IsAdmin() {
		shipment, err := s.shipmentRepository.GetShipmentByID(ctx, id)
		if err != nil {
			return models.Shipment{}, err
		}
		shipper, err := s.shipperRepository.GetShipperByUserID(ctx, principal.UserID)
		if err != nil {
			return models.Shipment{}, err
		}
		if shipper.ID != shipment.ShipperID {
			log.Warn().Str("user_id", principal.UserID).Str("shipment_id", id).Msg("shipper attempted to update foreign shipment")
			return models.Shipment{}, ErrAccessDenied
		}
	}

	return s.shipmentRepository.UpdateShipmentStatus(ctx, id, shipmentStatus)
}

func filterShipments(shipments []models.Shipment, keep func(models.Shipment) bool) []models.Shipment {
	filtered := make([]models.Shipment, 0, len(shipments))
	for _, shipment := range shipments {
		if keep(shipment) {
			filtered = append(filtered, shipment)
		}
	}
	return filtered
}

// newTrackingNumber derives a human-readable tracking number from a fresh
// UUID, e.g. "TRK-0192A7E3F2B4".
func newTrackingNumber() string {
	compact := strings.ToUpper(strings.ReplaceAll(utils.NewUUID(), "-", ""))
	return "TRK-" + compact[:12]
}
