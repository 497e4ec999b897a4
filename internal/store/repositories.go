package store

import (
	"context"

	"github.com/freightex/freightex/internal/config"
	"github.com/freightex/freightex/internal/logger"
)

// Repositories bundles every repository of the application behind one
// constructor so that wiring in main stays flat.
type Repositories struct {
	UserRepository            UserRepository
	CustomerRepository        CustomerRepository
	ShipperRepository         ShipperRepository
	ShipmentRequestRepository ShipmentRequestRepository
	QuotationRepository       QuotationRepository
	ShipmentRepository        ShipmentRepository

	// DB is exposed for migrations and shutdown.
	DB *DB
}

// NewRepositories connects to PostgreSQL and constructs all repositories on
// top of the shared connection.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, err
	}

	return &Repositories{
		UserRepository:            NewUserRepository(db, log),
		CustomerRepository:        NewCustomerRepository(db, log),
		ShipperRepository:         NewShipperRepository(db, log),
		ShipmentRequestRepository: NewShipmentRequestRepository(db, log),
		QuotationRepository:       NewQuotationRepository(db, log),
		ShipmentRepository:        NewShipmentRepository(db, log),
		DB:                        db,
	}, nil
}
