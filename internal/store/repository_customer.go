package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/models"
	"github.com/jackc/pgerrcode"
)

// customerRepository is the PostgreSQL-backed implementation of
// [CustomerRepository] against the "customers" table.
type customerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCustomerRepository constructs a [CustomerRepository] backed by the
// provided database connection and logger.
func NewCustomerRepository(db *DB, logger *logger.Logger) CustomerRepository {
	logger.Debug().Msg("creating customer repository")
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

// scanCustomer scans one row of customerColumns into a [models.Customer].
func scanCustomer(row interface{ Scan(dest ...any) error }) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.CompanyName,
		&c.ContactName,
		&c.Phone,
		&c.Address,
		&c.Country,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}

// CreateCustomer inserts a new customer profile. One profile per user account
// is allowed; a second submission fails with [ErrProfileAlreadyExists].
func (r *customerRepository) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createCustomer,
		customer.ID,
		customer.UserID,
		customer.CompanyName,
		customer.ContactName,
		customer.Phone,
		customer.Address,
		customer.Country,
		customer.Status,
	)

	saved, err := scanCustomer(row)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Warn().Str("func", "*customerRepository.CreateCustomer").Str("user_id", customer.UserID).Msg("customer profile already exists")
			return models.Customer{}, ErrProfileAlreadyExists
		default:
			log.Err(err).Str("func", "*customerRepository.CreateCustomer").Msg("failed to insert customer")
			return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return saved, nil
}

// GetCustomerByID retrieves a customer profile by primary key.
func (r *customerRepository) GetCustomerByID(ctx context.Context, id string) (models.Customer, error) {
	log := logger.FromContext(ctx)

	found, err := scanCustomer(r.db.QueryRowContext(ctx, getCustomerByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, ErrCustomerNotFound
		}
		log.Err(err).Str("func", "*customerRepository.GetCustomerByID").Str("customer_id", id).Msg("failed to get customer")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// GetCustomerByUserID retrieves the customer profile owned by the given user
// account. Used for ownership checks on customer-scoped operations.
func (r *customerRepository) GetCustomerByUserID(ctx context.Context, userID string) (models.Customer, error) {
	log := logger.FromContext(ctx)

	found, err := scanCustomer(r.db.QueryRowContext(ctx, getCustomerByUserID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Customer{}, ErrCustomerNotFound
		}
		log.Err(err).Str("func", "*customerRepository.GetCustomerByUserID").Str("user_id", userID).Msg("failed to get customer by user id")
		return models.Customer{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// ListCustomers returns every customer profile ordered by creation time.
func (r *customerRepository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCustomers)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.ListCustomers").Msg("failed to list customers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	customers := make([]models.Customer, 0, 20)

	for rows.Next() {
		customer, scanErr := scanCustomer(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*customerRepository.ListCustomers").Msg("failed to scan customer row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		customers = append(customers, customer)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*customerRepository.ListCustomers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return customers, nil
}

// DeleteCustomer removes a customer profile by primary key.
func (r *customerRepository) DeleteCustomer(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCustomer, id)
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.DeleteCustomer").Str("customer_id", id).Msg("failed to delete customer")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*customerRepository.DeleteCustomer").Str("customer_id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}
