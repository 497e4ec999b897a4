package service

import (
	"github.com/freightex/freightex/internal/config"
	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/store"
	"github.com/freightex/freightex/internal/validators"
)

type Services struct {
	AuthService            AuthService
	UserService            UserService
	CustomerService        CustomerService
	ShipperService         ShipperService
	ShipmentRequestService ShipmentRequestService
	QuotationService       QuotationService
	ShipmentService        ShipmentService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewMarketplaceValidator()

	return &Services{
		AuthService:     NewAuthService(repositories.UserRepository, validator, cfg.App, logger),
		UserService:     NewUserService(repositories.UserRepository, logger),
		CustomerService: NewCustomerService(repositories.CustomerRepository, repositories.UserRepository, validator, logger),
		ShipperService:  NewShipperService(repositories.ShipperRepository, repositories.UserRepository, validator, logger),
		ShipmentRequestService: NewShipmentRequestService(
			repositories.ShipmentRequestRepository,
			repositories.CustomerRepository,
			repositories.ShipperRepository,
			validator,
			logger,
		),
		QuotationService: NewQuotationService(
			repositories.QuotationRepository,
			repositories.ShipmentRequestRepository,
			repositories.CustomerRepository,
			repositories.ShipperRepository,
			validator,
			cfg.App,
			logger,
		),
		ShipmentService: NewShipmentService(
			repositories.ShipmentRepository,
			repositories.QuotationRepository,
			repositories.ShipmentRequestRepository,
			repositories.CustomerRepository,
			repositories.ShipperRepository,
			logger,
		),
	}
}
