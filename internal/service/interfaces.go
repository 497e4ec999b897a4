package service

import (
	"context"

	"github.com/freightex/freightex/models"
)

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService is the admin-facing account management surface: listing
// accounts, reassigning roles and hard-deleting users. Role assignment is
// tiered: admins may assign any role except superadmin, which only an
// existing superadmin can grant.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	SetUserRole(ctx context.Context, principal models.Principal, userID, role string) (models.User, error)

	// DeleteUser removes the account and, via cascade, its profile rows.
	// Superadmin-only.
	DeleteUser(ctx context.Context, principal models.Principal, userID string) error
}

// CustomerService manages customer profiles.
type CustomerService interface {
	CreateProfile(ctx context.Context, principal models.Principal, customer models.Customer) (models.Customer, error)
	GetOwnProfile(ctx context.Context, principal models.Principal) (models.Customer, error)
	GetCustomer(ctx context.Context, id string) (models.Customer, error)
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// ShipperService manages shipper profiles and admin verification.
type ShipperService interface {
	CreateProfile(ctx context.Context, principal models.Principal, shipper models.Shipper) (models.Shipper, error)
	GetOwnProfile(ctx context.Context, principal models.Principal) (models.Shipper, error)
	GetShipper(ctx context.Context, id string) (models.Shipper, error)
	ListShippers(ctx context.Context) ([]models.Shipper, error)
	UpdateShipperStatus(ctx context.Context, id string, status string) (models.Shipper, error)
}

// ShipmentRequestService owns the request side of the negotiation workflow.
// Access rules: customers act on their own requests, shippers see requests
// forwarded to them, admins see and drive everything.
type ShipmentRequestService interface {
	Create(ctx context.Context, principal models.Principal, request models.ShipmentRequest) (models.ShipmentRequest, error)
	Get(ctx context.Context, principal models.Principal, id string) (models.ShipmentRequest, error)
	List(ctx context.Context, principal models.Principal) ([]models.ShipmentRequest, error)

	SendToShippers(ctx context.Context, requestID string, body models.SendToShippersRequest) (models.ShipmentRequest, []models.Shipper, error)
	SendToSingleShipper(ctx context.Context, requestID, shipperID, adminNotes string) (models.RequestShipperLink, error)
	SelectQuotation(ctx context.Context, requestID string, body models.SelectQuotationRequest) (models.ShipmentRequest, models.Quotation, error)
	ApproveQuotation(ctx context.Context, principal models.Principal, requestID, notes string) (models.ShipmentRequest, error)
	RejectQuotation(ctx context.Context, principal models.Principal, requestID, notes string) (models.ShipmentRequest, error)

	// OverrideStatus sets the request status directly, bypassing workflow
	// preconditions. Admin-only; every call is audit-logged.
	OverrideStatus(ctx context.Context, principal models.Principal, requestID, status string) (models.ShipmentRequest, error)
}

// QuotationService owns quotation submission and retrieval.
type QuotationService interface {
	Create(ctx context.Context, principal models.Principal, quotation models.Quotation) (models.Quotation, error)
	Get(ctx context.Context, principal models.Principal, id string) (models.Quotation, error)
	List(ctx context.Context) ([]models.Quotation, error)
	ListByRequest(ctx context.Context, principal models.Principal, requestID string) ([]models.Quotation, error)

	// OverrideStatus sets the quotation status directly, bypassing workflow
	// preconditions. Admin-only; every call is audit-logged.
	OverrideStatus(ctx context.Context, principal models.Principal, id, status string) (models.Quotation, error)
}

// ShipmentService finalizes negotiations into shipment records and tracks
// their operational status.
type ShipmentService interface {
	CreateFromQuotation(ctx context.Context, quotationID string, notes string) (models.Shipment, error)
	Get(ctx context.Context, principal models.Principal, id string) (models.Shipment, error)
	List(ctx context.Context, principal models.Principal) ([]models.Shipment, error)
	UpdateStatus(ctx context.Context, principal models.Principal, id, status string) (models.Shipment, error)
}
