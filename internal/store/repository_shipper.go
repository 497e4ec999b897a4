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

// shipperRepository is the PostgreSQL-backed implementation of
// [ShipperRepository] against the "shippers" table.
type shipperRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewShipperRepository constructs a [ShipperRepository] backed by the
// provided database connection and logger.
func NewShipperRepository(db *DB, logger *logger.Logger) ShipperRepository {
	logger.Debug().Msg("creating shipper repository")
	return &shipperRepository{
		db:     db,
		logger: logger,
	}
}

// scanShipper scans one row of shipperColumns into a [models.Shipper].
// The modes_supported jsonb column is decoded by the
// [models.TransportModes] scanner.
func scanShipper(row interface{ Scan(dest ...any) error }) (models.Shipper, error) {
	var s models.Shipper
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.CompanyName,
		&s.ContactName,
		&s.Phone,
		&s.LicenseNumber,
		&s.ModesSupported,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// CreateShipper inserts a new shipper profile in pending_verification status.
// A second profile for the same user account fails with
// [ErrProfileAlreadyExists].
func (r *shipperRepository) CreateShipper(ctx context.Context, shipper models.Shipper) (models.Shipper, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createShipper,
		shipper.ID,
		shipper.UserID,
		shipper.CompanyName,
		shipper.ContactName,
		shipper.Phone,
		shipper.LicenseNumber,
		shipper.ModesSupported,
		shipper.Status,
	)

	saved, err := scanShipper(row)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Warn().Str("func", "*shipperRepository.CreateShipper").Str("user_id", shipper.UserID).Msg("shipper profile already exists")
			return models.Shipper{}, ErrProfileAlreadyExists
		default:
			log.Err(err).Str("func", "*shipperRepository.CreateShipper").Msg("failed to insert shipper")
			return models.Shipper{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return saved, nil
}

// GetShipperByID retrieves a shipper profile by primary key.
func (r *shipperRepository) GetShipperByID(ctx context.Context, id string) (models.Shipper, error) {
	log := logger.FromContext(ctx)

	found, err := scanShipper(r.db.QueryRowContext(ctx, getShipperByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Shipper{}, ErrShipperNotFound
		}
		log.Err(err).Str("func", "*shipperRepository.GetShipperByID").Str("shipper_id", id).Msg("failed to get shipper")
		return models.Shipper{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// GetShipperByUserID retrieves the shipper profile owned by the given user
// account. Used for ownership checks on shipper-scoped operations.
func (r *shipperRepository) GetShipperByUserID(ctx context.Context, userID string) (models.Shipper, error) {
	log := logger.FromContext(ctx)

	found, err := scanShipper(r.db.QueryRowContext(ctx, getShipperByUserID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Shipper{}, ErrShipperNotFound
		}
		log.Err(err).Str("func", "*shipperRepository.GetShipperByUserID").Str("user_id", userID).Msg("failed to get shipper by user id")
		return models.Shipper{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// ListShippers returns every shipper profile ordered by creation time.
func (r *shipperRepository) ListShippers(ctx context.Context) ([]models.Shipper, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listShippers)
	if err != nil {
		log.Err(err).Str("func", "*shipperRepository.ListShippers").Msg("failed to list shippers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	shippers := make([]models.Shipper, 0, 20)

	for rows.Next() {
		shipper, scanErr := scanShipper(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*shipperRepository.ListShippers").Msg("failed to scan shipper row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		shippers = append(shippers, shipper)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*shipperRepository.ListShippers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return shippers, nil
}

// UpdateShipperStatus sets the verification status of a shipper. This is the
// admin verification operation: only verified shippers receive broadcasts and
// may submit quotations.
func (r *shipperRepository) UpdateShipperStatus(ctx context.Context, id string, status models.ShipperStatus) (models.Shipper, error) {
	log := logger.FromContext(ctx)

	updated, err := scanShipper(r.db.QueryRowContext(ctx, updateShipperStatus, id, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Shipper{}, ErrShipperNotFound
		}
		log.Err(err).Str("func", "*shipperRepository.UpdateShipperStatus").Str("shipper_id", id).Msg("failed to update shipper status")
		return models.Shipper{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "*shipperRepository.UpdateShipperStatus").
		Str("shipper_id", id).
		Str("status", string(status)).
		Msg("shipper status updated")

	return updated, nil
}
