package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/models"
)

// shipmentRepository is the PostgreSQL-backed implementation of
// [ShipmentRepository] against the "shipments" table.
type shipmentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewShipmentRepository constructs a [ShipmentRepository] backed by the
// provided database connection and logger.
func NewShipmentRepository(db *DB, logger *logger.Logger) ShipmentRepository {
	logger.Debug().Msg("creating shipment repository")
	return &shipmentRepository{
		db:     db,
		logger: logger,
	}
}

// scanShipment scans one row of shipmentColumns into a [models.Shipment].
func scanShipment(row interface{ Scan(dest ...any) error }) (models.Shipment, error) {
	var s models.Shipment
	err := row.Scan(
		&s.ID,
		&s.QuotationID,
		&s.ShipperID,
		&s.CustomerID,
		&s.Origin,
		&s.Destination,
		&s.CargoType,
		&s.ContainerType,
		&s.Weight,
		&s.Volume,
		&s.EstimatedDeliveryDate,
		&s.TrackingNumber,
		&s.Notes,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// CreateFromQuotation finalizes a completed negotiation inside one
// transaction:
//  1. the quotation row is locked and required to be customer_approved;
//  2. the shipment record is inserted as in_transit;
//  3. the quotation moves to accepted;
//  4. the originating request moves to quotation_accepted.
//
// A quotation in any other status aborts with [ErrQuotationNotApproved] and
// nothing is written.
func (r *shipmentRepository) CreateFromQuotation(ctx context.Context, shipment models.Shipment) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRepository.CreateFromQuotation").Str("quotation_id", shipment.QuotationID).Msg("failed to begin transaction")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	quotation, err := scanQuotation(tx.QueryRowContext(ctx, getApprovedQuotationForUpdate, shipment.QuotationID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().
				Str("func", "*shipmentRepository.CreateFromQuotation").
				Str("quotation_id", shipment.QuotationID).
				Msg("quotation missing or not customer approved")
			return models.Shipment{}, ErrQuotationNotApproved
		}
		log.Err(err).Str("func", "*shipmentRepository.CreateFromQuotation").Str("quotation_id", shipment.QuotationID).Msg("failed to lock quotation")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	row := tx.QueryRowContext(ctx, createShipment,
		shipment.ID,
		shipment.QuotationID,
		shipment.ShipperID,
		shipment.CustomerID,
		shipment.Origin,
		shipment.Destination,
		shipment.CargoType,
		shipment.ContainerType,
		shipment.Weight,
		shipment.Volume,
		shipment.EstimatedDeliveryDate,
		shipment.TrackingNumber,
		shipment.Notes,
		models.ShipmentInTransit,
	)

	saved, err := scanShipment(row)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRepository.CreateFromQuotation").Str("quotation_id", shipment.QuotationID).Msg("failed to insert shipment")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, execErr := tx.ExecContext(ctx, markQuotationAccepted, quotation.ID); execErr != nil {
		log.Err(execErr).Str("func", "*shipmentRepository.CreateFromQuotation").Str("quotation_id", quotation.ID).Msg("failed to mark quotation as accepted")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	if _, execErr := tx.ExecContext(ctx, markRequestQuotationAccepted, quotation.ShipmentRequestID); execErr != nil {
		log.Err(execErr).Str("func", "*shipmentRepository.CreateFromQuotation").Str("request_id", quotation.ShipmentRequestID).Msg("failed to mark request as quotation_accepted")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*shipmentRepository.CreateFromQuotation").Str("quotation_id", quotation.ID).Msg("failed to commit transaction")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "*shipmentRepository.CreateFromQuotation").
		Str("shipment_id", saved.ID).
		Str("quotation_id", quotation.ID).
		Str("request_id", quotation.ShipmentRequestID).
		Msg("shipment created from approved quotation")

	return saved, nil
}

// GetShipmentByID retrieves a shipment by primary key.
func (r *shipmentRepository) GetShipmentByID(ctx context.Context, id string) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	found, err := scanShipment(r.db.QueryRowContext(ctx, getShipmentByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Shipment{}, ErrShipmentNotFound
		}
		log.Err(err).Str("func", "*shipmentRepository.GetShipmentByID").Str("shipment_id", id).Msg("failed to get shipment")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// ListShipments returns every shipment ordered by creation time.
func (r *shipmentRepository) ListShipments(ctx context.Context) ([]models.Shipment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listShipments)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRepository.ListShipments").Msg("failed to list shipments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	shipments := make([]models.Shipment, 0, 20)

	for rows.Next() {
		shipment, scanErr := scanShipment(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*shipmentRepository.ListShipments").Msg("failed to scan shipment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		shipments = append(shipments, shipment)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*shipmentRepository.ListShipments").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return shipments, nil
}

// UpdateShipmentStatus sets the operational status of a shipment.
func (r *shipmentRepository) UpdateShipmentStatus(ctx context.Context, id string, status models.ShipmentStatus) (models.Shipment, error) {
	log := logger.FromContext(ctx)

	updated, err := scanShipment(r.db.QueryRowContext(ctx, updateShipmentStatus, id, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Shipment{}, ErrShipmentNotFound
		}
		log.Err(err).Str("func", "*shipmentRepository.UpdateShipmentStatus").Str("shipment_id", id).Msg("failed to update shipment status")
		return models.Shipment{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "*shipmentRepository.UpdateShipmentStatus").
		Str("shipment_id", id).
		Str("status", string(status)).
		Msg("shipment status updated")

	return updated, nil
}
