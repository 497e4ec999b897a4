package store

import (
	"context"

	"github.com/freightex/freightex/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserRole(ctx context.Context, id string, role models.Role) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// CustomerRepository persists customer profiles.
type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)
	GetCustomerByID(ctx context.Context, id string) (models.Customer, error)
	GetCustomerByUserID(ctx context.Context, userID string) (models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// ShipperRepository persists shipper profiles.
type ShipperRepository interface {
	CreateShipper(ctx context.Context, shipper models.Shipper) (models.Shipper, error)
	GetShipperByID(ctx context.Context, id string) (models.Shipper, error)
	GetShipperByUserID(ctx context.Context, userID string) (models.Shipper, error)
	ListShippers(ctx context.Context) ([]models.Shipper, error)
	UpdateShipperStatus(ctx context.Context, id string, status models.ShipperStatus) (models.Shipper, error)
}

// ShipmentRequestRepository persists shipment requests and executes the
// request-side workflow transitions. Multi-row transitions run inside a
// single database transaction with the request row locked, so a transition
// either applies completely or not at all.
type ShipmentRequestRepository interface {
	CreateRequest(ctx context.Context, request models.ShipmentRequest) (models.ShipmentRequest, error)
	GetRequestByID(ctx context.Context, id string) (models.ShipmentRequest, error)
	ListRequests(ctx context.Context) ([]models.ShipmentRequest, error)
	ListRequestsByCustomer(ctx context.Context, customerID string) ([]models.ShipmentRequest, error)

	// SendToShippers broadcasts a pending request to all verified shippers,
	// optionally filtered by supported transport mode. Returns the updated
	// request and the notified shippers, or ErrRequestNotPending /
	// ErrNoEligibleShippers.
	SendToShippers(ctx context.Context, requestID, adminNotes string, filterMode models.TransportMode) (models.ShipmentRequest, []models.Shipper, error)

	// SendToSingleShipper upserts one join record for a verified shipper
	// without touching the request's own status.
	SendToSingleShipper(ctx context.Context, requestID, shipperID, adminNotes string) (models.RequestShipperLink, error)

	// IsShipperInvited reports whether a join record exists for the pair.
	// Consulted only under the restricted quoting policy.
	IsShipperInvited(ctx context.Context, requestID, shipperID string) (bool, error)

	// SelectQuotation marks one pending quotation of the request as
	// admin_selected and moves the request to quotation_selected.
	SelectQuotation(ctx context.Context, requestID, quotationID, adminSelectionNotes string) (models.ShipmentRequest, models.Quotation, error)

	// ApproveQuotation applies the customer's approval: the selected
	// quotation moves to customer_approved and so does the request.
	ApproveQuotation(ctx context.Context, requestID, customerApprovalNotes string) (models.ShipmentRequest, error)

	// RejectQuotation rejects the selected quotation, clears the selection,
	// and returns the request to quotations_received.
	RejectQuotation(ctx context.Context, requestID, customerApprovalNotes string) (models.ShipmentRequest, error)

	// OverrideRequestStatus is the legacy escape hatch: sets any valid
	// status directly, bypassing transition preconditions.
	OverrideRequestStatus(ctx context.Context, requestID string, status models.RequestStatus) (models.ShipmentRequest, error)
}

// QuotationRepository persists quotations.
type QuotationRepository interface {
	// CreateQuotation inserts a pending quotation against a request in
	// sent_to_shippers status and flips the request to quotations_received
	// when the inserted quotation is the first one. The boolean result
	// reports whether the flip was performed.
	CreateQuotation(ctx context.Context, quotation models.Quotation) (models.Quotation, bool, error)

	GetQuotationByID(ctx context.Context, id string) (models.Quotation, error)
	ListQuotations(ctx context.Context) ([]models.Quotation, error)
	ListQuotationsByRequest(ctx context.Context, requestID string) ([]models.Quotation, error)

	// OverrideQuotationStatus is the legacy escape hatch for quotations.
	OverrideQuotationStatus(ctx context.Context, id string, status models.QuotationStatus) (models.Quotation, error)

	// ExpireStaleQuotations moves pending quotations whose valid_until has
	// passed to the expired status. Returns the number of rows affected.
	ExpireStaleQuotations(ctx context.Context) (int64, error)
}

// ShipmentRepository persists shipment records.
type ShipmentRepository interface {
	// CreateFromQuotation finalizes a negotiation: inserts the shipment,
	// moves the quotation to accepted and the originating request to
	// quotation_accepted, all inside one transaction. Fails with
	// ErrQuotationNotApproved unless the quotation is customer_approved.
	CreateFromQuotation(ctx context.Context, shipment models.Shipment) (models.Shipment, error)

	GetShipmentByID(ctx context.Context, id string) (models.Shipment, error)
	ListShipments(ctx context.Context) ([]models.Shipment, error)
	UpdateShipmentStatus(ctx context.Context, id string, status models.ShipmentStatus) (models.Shipment, error)
}
