package service

import (
	"context"

	"github.com/freightex/freightex/models"
)

// Function-field mocks of the repository interfaces. Tests set only the
// fields they need; calling an unset field panics, which points straight at
// the unexpected repository interaction.

type mockUserRepository struct {
	createUserFunc      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFunc func(ctx context.Context, email string) (models.User, error)
	findUserByIDFunc    func(ctx context.Context, id string) (models.User, error)
	listUsersFunc       func(ctx context.Context) ([]models.User, error)
	updateUserRoleFunc  func(ctx context.Context, id string, role models.Role) (models.User, error)
	deleteUserFunc      func(ctx context.Context, id string) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createUserFunc(ctx, user)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findUserByEmailFunc(ctx, email)
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return m.findUserByIDFunc(ctx, id)
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFunc(ctx)
}

func (m *mockUserRepository) UpdateUserRole(ctx context.Context, id string, role models.Role) (models.User, error) {
	return m.updateUserRoleFunc(ctx, id, role)
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, id string) error {
	return m.deleteUserFunc(ctx, id)
}

type mockCustomerRepository struct {
	createCustomerFunc      func(ctx context.Context, customer models.Customer) (models.Customer, error)
	getCustomerByIDFunc     func(ctx context.Context, id string) (models.Customer, error)
	getCustomerByUserIDFunc func(ctx context.Context, userID string) (models.Customer, error)
	listCustomersFunc       func(ctx context.Context) ([]models.Customer, error)
	deleteCustomerFunc      func(ctx context.Context, id string) error
}

func (m *mockCustomerRepository) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	return m.createCustomerFunc(ctx, customer)
}

func (m *mockCustomerRepository) GetCustomerByID(ctx context.Context, id string) (models.Customer, error) {
	return m.getCustomerByIDFunc(ctx, id)
}

func (m *mockCustomerRepository) GetCustomerByUserID(ctx context.Context, userID string) (models.Customer, error) {
	return m.getCustomerByUserIDFunc(ctx, userID)
}

func (m *mockCustomerRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return m.listCustomersFunc(ctx)
}

func (m *mockCustomerRepository) DeleteCustomer(ctx context.Context, id string) error {
	return m.deleteCustomerFunc(ctx, id)
}

type mockShipperRepository struct {
	createShipperFunc       func(ctx context.Context, shipper models.Shipper) (models.Shipper, error)
	getShipperByIDFunc      func(ctx context.Context, id string) (models.Shipper, error)
	getShipperByUserIDFunc  func(ctx context.Context, userID string) (models.Shipper, error)
	listShippersFunc        func(ctx context.Context) ([]models.Shipper, error)
	updateShipperStatusFunc func(ctx context.Context, id string, status models.ShipperStatus) (models.Shipper, error)
}

func (m *mockShipperRepository) CreateShipper(ctx context.Context, shipper models.Shipper) (models.Shipper, error) {
	return m.createShipperFunc(ctx, shipper)
}

func (m *mockShipperRepository) GetShipperByID(ctx context.Context, id string) (models.Shipper, error) {
	return m.getShipperByIDFunc(ctx, id)
}

func (m *mockShipperRepository) GetShipperByUserID(ctx context.Context, userID string) (models.Shipper, error) {
	return m.getShipperByUserIDFunc(ctx, userID)
}

func (m *mockShipperRepository) ListShippers(ctx context.Context) ([]models.Shipper, error) {
	return m.listShippersFunc(ctx)
}

func (m *mockShipperRepository) UpdateShipperStatus(ctx context.Context, id string, status models.ShipperStatus) (models.Shipper, error) {
	return m.updateShipperStatusFunc(ctx, id, status)
}

type mockRequestRepository struct {
	createRequestFunc          func(ctx context.Context, request models.ShipmentRequest) (models.ShipmentRequest, error)
	getRequestByIDFunc         func(ctx context.Context, id string) (models.ShipmentRequest, error)
	listRequestsFunc           func(ctx context.Context) ([]models.ShipmentRequest, error)
	listRequestsByCustomerFunc func(ctx context.Context, customerID string) ([]models.ShipmentRequest, error)
	sendToShippersFunc         func(ctx context.Context, requestID, adminNotes string, filterMode models.TransportMode) (models.ShipmentRequest, []models.Shipper, error)
	sendToSingleShipperFunc    func(ctx context.Context, requestID, shipperID, adminNotes string) (models.RequestShipperLink, error)
	isShipperInvitedFunc       func(ctx context.Context, requestID, shipperID string) (bool, error)
	selectQuotationFunc        func(ctx context.Context, requestID, quotationID, adminSelectionNotes string) (models.ShipmentRequest, models.Quotation, error)
	approveQuotationFunc       func(ctx context.Context, requestID, notes string) (models.ShipmentRequest, error)
	rejectQuotationFunc        func(ctx context.Context, requestID, notes string) (models.ShipmentRequest, error)
	overrideRequestStatusFunc  func(ctx context.Context, requestID string, status models.RequestStatus) (models.ShipmentRequest, error)
}

func (m *mockRequestRepository) CreateRequest(ctx context.Context, request models.ShipmentRequest) (models.ShipmentRequest, error) {
	return m.createRequestFunc(ctx, request)
}

func (m *mockRequestRepository) GetRequestByID(ctx context.Context, id string) (models.ShipmentRequest, error) {
	return m.getRequestByIDFunc(ctx, id)
}

func (m *mockRequestRepository) ListRequests(ctx context.Context) ([]models.ShipmentRequest, error) {
	return m.listRequestsFunc(ctx)
}

func (m *mockRequestRepository) ListRequestsByCustomer(ctx context.Context, customerID string) ([]models.ShipmentRequest, error) {
	return m.listRequestsByCustomerFunc(ctx, customerID)
}

func (m *mockRequestRepository) SendToShippers(ctx context.Context, requestID, adminNotes string, filterMode models.TransportMode) (models.ShipmentRequest, []models.Shipper, error) {
	return m.sendToShippersFunc(ctx, requestID, adminNotes, filterMode)
}

func (m *mockRequestRepository) SendToSingleShipper(ctx context.Context, requestID, shipperID, adminNotes string) (models.RequestShipperLink, error) {
	return m.sendToSingleShipperFunc(ctx, requestID, shipperID, adminNotes)
}

func (m *mockRequestRepository) IsShipperInvited(ctx context.Context, requestID, shipperID string) (bool, error) {
	return m.isShipperInvitedFunc(ctx, requestID, shipperID)
}

func (m *mockRequestRepository) SelectQuotation(ctx context.Context, requestID, quotationID, adminSelectionNotes string) (models.ShipmentRequest, models.Quotation, error) {
	return m.selectQuotationFunc(ctx, requestID, quotationID, adminSelectionNotes)
}

func (m *mockRequestRepository) ApproveQuotation(ctx context.Context, requestID, notes string) (models.ShipmentRequest, error) {
	return m.approveQuotationFunc(ctx, requestID, notes)
}

func (m *mockRequestRepository) RejectQuotation(ctx context.Context, requestID, notes string) (models.ShipmentRequest, error) {
	return m.rejectQuotationFunc(ctx, requestID, notes)
}

func (m *mockRequestRepository) OverrideRequestStatus(ctx context.Context, requestID string, status models.RequestStatus) (models.ShipmentRequest, error) {
	return m.overrideRequestStatusFunc(ctx, requestID, status)
}

type mockQuotationRepository struct {
	createQuotationFunc         func(ctx context.Context, quotation models.Quotation) (models.Quotation, bool, error)
	getQuotationByIDFunc        func(ctx context.Context, id string) (models.Quotation, error)
	listQuotationsFunc          func(ctx context.Context) ([]models.Quotation, error)
	listQuotationsByRequestFunc func(ctx context.Context, requestID string) ([]models.Quotation, error)
	overrideQuotationStatusFunc func(ctx context.Context, id string, status models.QuotationStatus) (models.Quotation, error)
	expireStaleQuotationsFunc   func(ctx context.Context) (int64, error)
}

func (m *mockQuotationRepository) CreateQuotation(ctx context.Context, quotation models.Quotation) (models.Quotation, bool, error) {
	return m.createQuotationFunc(ctx, quotation)
}

func (m *mockQuotationRepository) GetQuotationByID(ctx context.Context, id string) (models.Quotation, error) {
	return m.getQuotationByIDFunc(ctx, id)
}

func (m *mockQuotationRepository) ListQuotations(ctx context.Context) ([]models.Quotation, error) {
	return m.listQuotationsFunc(ctx)
}

func (m *mockQuotationRepository) ListQuotationsByRequest(ctx context.Context, requestID string) ([]models.Quotation, error) {
	return m.listQuotationsByRequestFunc(ctx, requestID)
}

func (m *mockQuotationRepository) OverrideQuotationStatus(ctx context.Context, id string, status models.QuotationStatus) (models.Quotation, error) {
	return m.overrideQuotationStatusFunc(ctx, id, status)
}

func (m *mockQuotationRepository) ExpireStaleQuotations(ctx context.Context) (int64, error) {
	return m.expireStaleQuotationsFunc(ctx)
}

type mockShipmentRepository struct {
	createFromQuotationFunc  func(ctx context.Context, shipment models.Shipment) (models.Shipment, error)
	getShipmentByIDFunc      func(ctx context.Context, id string) (models.Shipment, error)
	listShipmentsFunc        func(ctx context.Context) ([]models.Shipment, error)
	updateShipmentStatusFunc func(ctx context.Context, id string, status models.ShipmentStatus) (models.Shipment, error)
}

func (m *mockShipmentRepository) CreateFromQuotation(ctx context.Context, shipment models.Shipment) (models.Shipment, error) {
	return m.createFromQuotationFunc(ctx, shipment)
}

func (m *mockShipmentRepository) GetShipmentByID(ctx context.Context, id string) (models.Shipment, error) {
	return m.getShipmentByIDFunc(ctx, id)
}

func (m *mockShipmentRepository) ListShipments(ctx context.Context) ([]models.Shipment, error) {
	return m.listShipmentsFunc(ctx)
}

func (m *mockShipmentRepository) UpdateShipmentStatus(ctx context.Context, id string, status models.ShipmentStatus) (models.Shipment, error) {
	return m.updateShipmentStatusFunc(ctx, id, status)
}
