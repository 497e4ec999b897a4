package http

import (
	"context"
	"net/http"

	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/service"
	"github.com/freightex/freightex/models"
)

// Function-field mocks for the service interfaces consumed by the HTTP
// layer. Tests set only the fields they need; calling an unset field panics,
// which points straight at the unexpected service interaction.

type mockAuthService struct {
	registerFunc    func(ctx context.Context, credentials models.Credentials) (models.User, error)
	loginFunc       func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFunc func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFunc  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.registerFunc(ctx, credentials)
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	return m.loginFunc(ctx, credentials)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFunc(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFunc(ctx, tokenString)
}

type mockUserService struct {
	listUsersFunc   func(ctx context.Context) ([]models.User, error)
	setUserRoleFunc func(ctx context.Context, principal models.Principal, userID, role string) (models.User, error)
	deleteUserFunc  func(ctx context.Context, principal models.Principal, userID string) error
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFunc(ctx)
}

func (m *mockUserService) SetUserRole(ctx context.Context, principal models.Principal, userID, role string) (models.User, error) {
	return m.setUserRoleFunc(ctx, principal, userID, role)
}

func (m *mockUserService) DeleteUser(ctx context.Context, principal models.Principal, userID string) error {
	return m.deleteUserFunc(ctx, principal, userID)
}

type mockCustomerService struct {
	createProfileFunc  func(ctx context.Context, principal models.Principal, customer models.Customer) (models.Customer, error)
	getOwnProfileFunc  func(ctx context.Context, principal models.Principal) (models.Customer, error)
	getCustomerFunc    func(ctx context.Context, id string) (models.Customer, error)
	listCustomersFunc  func(ctx context.Context) ([]models.Customer, error)
	deleteCustomerFunc func(ctx context.Context, id string) error
}

func (m *mockCustomerService) CreateProfile(ctx context.Context, principal models.Principal, customer models.Customer) (models.Customer, error) {
	return m.createProfileFunc(ctx, principal, customer)
}

func (m *mockCustomerService) GetOwnProfile(ctx context.Context, principal models.Principal) (models.Customer, error) {
	return m.getOwnProfileFunc(ctx, principal)
}

func (m *mockCustomerService) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	return m.getCustomerFunc(ctx, id)
}

func (m *mockCustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	return m.listCustomersFunc(ctx)
}

func (m *mockCustomerService) DeleteCustomer(ctx context.Context, id string) error {
	return m.deleteCustomerFunc(ctx, id)
}

type mockShipmentRequestService struct {
	createFunc              func(ctx context.Context, principal models.Principal, request models.ShipmentRequest) (models.ShipmentRequest, error)
	getFunc                 func(ctx context.Context, principal models.Principal, id string) (models.ShipmentRequest, error)
	listFunc                func(ctx context.Context, principal models.Principal) ([]models.ShipmentRequest, error)
	sendToShippersFunc      func(ctx context.Context, requestID string, body models.SendToShippersRequest) (models.ShipmentRequest, []models.Shipper, error)
	sendToSingleShipperFunc func(ctx context.Context, requestID, shipperID, adminNotes string) (models.RequestShipperLink, error)
	selectQuotationFunc     func(ctx context.Context, requestID string, body models.SelectQuotationRequest) (models.ShipmentRequest, models.Quotation, error)
	approveQuotationFunc    func(ctx context.Context, principal models.Principal, requestID, notes string) (models.ShipmentRequest, error)
	rejectQuotationFunc     func(ctx context.Context, principal models.Principal, requestID, notes string) (models.ShipmentRequest, error)
	overrideStatusFunc      func(ctx context.Context, principal models.Principal, requestID, status string) (models.ShipmentRequest, error)
}

func (m *mockShipmentRequestService) Create(ctx context.Context, principal models.Principal, request models.ShipmentRequest) (models.ShipmentRequest, error) {
	return m.createFunc(ctx, principal, request)
}

func (m *mockShipmentRequestService) Get(ctx context.Context, principal models.Principal, id string) (models.ShipmentRequest, error) {
	return m.getFunc(ctx, principal, id)
}

func (m *mockShipmentRequestService) List(ctx context.Context, principal models.Principal) ([]models.ShipmentRequest, error) {
	return m.listFunc(ctx, principal)
}

func (m *mockShipmentRequestService) SendToShippers(ctx context.Context, requestID string, body models.SendToShippersRequest) (models.ShipmentRequest, []models.Shipper, error) {
	return m.sendToShippersFunc(ctx, requestID, body)
}

func (m *mockShipmentRequestService) SendToSingleShipper(ctx context.Context, requestID, shipperID, adminNotes string) (models.RequestShipperLink, error) {
	return m.sendToSingleShipperFunc(ctx, requestID, shipperID, adminNotes)
}

func (m *mockShipmentRequestService) SelectQuotation(ctx context.Context, requestID string, body models.SelectQuotationRequest) (models.ShipmentRequest, models.Quotation, error) {
	return m.selectQuotationFunc(ctx, requestID, body)
}

func (m *mockShipmentRequestService) ApproveQuotation(ctx context.Context, principal models.Principal, requestID, notes string) (models.ShipmentRequest, error) {
	return m.approveQuotationFunc(ctx, principal, requestID, notes)
}

func (m *mockShipmentRequestService) RejectQuotation(ctx context.Context, principal models.Principal, requestID, notes string) (models.ShipmentRequest, error) {
	return m.rejectQuotationFunc(ctx, principal, requestID, notes)
}

func (m *mockShipmentRequestService) OverrideStatus(ctx context.Context, principal models.Principal, requestID, status string) (models.ShipmentRequest, error) {
	return m.overrideStatusFunc(ctx, principal, requestID, status)
}

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services: services,
		version:  "test",
		logger:   logger.Nop(),
	}
}

// injectNopLogger puts a nop logger into the request context so middlewares
// relying on logger.FromRequest stay quiet during tests.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.WithContext(r.Context()))
}
