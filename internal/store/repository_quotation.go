package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/models"
)

// quotationRepository is the PostgreSQL-backed implementation of
// [QuotationRepository] against the "quotations" table.
type quotationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewQuotationRepository constructs a [QuotationRepository] backed by the
// provided database connection and logger.
func NewQuotationRepository(db *DB, logger *logger.Logger) QuotationRepository {
	logger.Debug().Msg("creating quotation repository")
	return &quotationRepository{
		db:     db,
		logger: logger,
	}
}

// scanQuotation scans one row of quotationColumns into a [models.Quotation].
func scanQuotation(row interface{ Scan(dest ...any) error }) (models.Quotation, error) {
	var q models.Quotation
	err := row.Scan(
		&q.ID,
		&q.ShipmentRequestID,
		&q.ShipperID,
		&q.Price,
		&q.Currency,
		&q.EstimatedDeliveryDays,
		&q.ValidUntil,
		&q.AdditionalTerms,
		&q.Status,
		&q.AdminSelectionNotes,
		&q.CustomerApprovalNotes,
		&q.CreatedAt,
		&q.UpdatedAt,
	)
	return q, err
}

// CreateQuotation inserts a pending quotation against a request currently in
// sent_to_shippers status and, when no other quotation exists for the
// request, flips the request to quotations_received. The boolean result
// reports whether the flip was performed.
//
// The insert and the flip deliberately run as separate statements without a
// request lock: two shippers submitting the first quotation at the same time
// may both observe an empty quotation set, and both flips resolve to the same
// quotations_received status.
func (r *quotationRepository) CreateQuotation(ctx context.Context, quotation models.Quotation) (models.Quotation, bool, error) {
	log := logger.FromContext(ctx)

	request, err := scanRequest(r.db.QueryRowContext(ctx, getRequestByID, quotation.ShipmentRequestID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Quotation{}, false, ErrRequestNotOpenForQuotes
		}
		log.Err(err).Str("func", "*quotationRepository.CreateQuotation").Str("request_id", quotation.ShipmentRequestID).Msg("failed to get shipment request")
		return models.Quotation{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if request.Status != models.RequestSentToShippers {
		log.Warn().
			Str("func", "*quotationRepository.CreateQuotation").
			Str("request_id", quotation.ShipmentRequestID).
			Str("status", string(request.Status)).
			Msg("request not open for quotations")
		return models.Quotation{}, false, ErrRequestNotOpenForQuotes
	}

	row := r.db.QueryRowContext(ctx, createQuotation,
		quotation.ID,
		quotation.ShipmentRequestID,
		quotation.ShipperID,
		quotation.Price,
		quotation.Currency,
		quotation.EstimatedDeliveryDays,
		quotation.ValidUntil,
		quotation.AdditionalTerms,
		models.QuotationPending,
	)

	saved, err := scanQuotation(row)
	if err != nil {
		log.Err(err).Str("func", "*quotationRepository.CreateQuotation").Str("request_id", quotation.ShipmentRequestID).Msg("failed to insert quotation")
		return models.Quotation{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var othersExist bool
	if err := r.db.QueryRowContext(ctx, otherQuotationsExist, saved.ShipmentRequestID, saved.ID).Scan(&othersExist); err != nil {
		log.Err(err).Str("func", "*quotationRepository.CreateQuotation").Str("request_id", saved.ShipmentRequestID).Msg("failed to count sibling quotations")
		return models.Quotation{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if othersExist {
		return saved, false, nil
	}

	if _, err := r.db.ExecContext(ctx, markRequestQuotationsReceived, saved.ShipmentRequestID); err != nil {
		log.Err(err).Str("func", "*quotationRepository.CreateQuotation").Str("request_id", saved.ShipmentRequestID).Msg("failed to flip request to quotations_received")
		return models.Quotation{}, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "*quotationRepository.CreateQuotation").
		Str("request_id", saved.ShipmentRequestID).
		Str("quotation_id", saved.ID).
		Msg("first quotation received, request flipped to quotations_received")

	return saved, true, nil
}

// GetQuotationByID retrieves a quotation by primary key.
func (r *quotationRepository) GetQuotationByID(ctx context.Context, id string) (models.Quotation, error) {
	log := logger.FromContext(ctx)

	found, err := scanQuotation(r.db.QueryRowContext(ctx, getQuotationByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Quotation{}, ErrQuotationNotFound
		}
		log.Err(err).Str("func", "*quotationRepository.GetQuotationByID").Str("quotation_id", id).Msg("failed to get quotation")
		return models.Quotation{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// ListQuotations returns every quotation ordered by creation time.
func (r *quotationRepository) ListQuotations(ctx context.Context) ([]models.Quotation, error) {
	return r.listQuotations(ctx, listQuotations)
}

// ListQuotationsByRequest returns the quotations submitted against one
// request, ordered by creation time.
func (r *quotationRepository) ListQuotationsByRequest(ctx context.Context, requestID string) ([]models.Quotation, error) {
	return r.listQuotations(ctx, listQuotationsByRequest, requestID)
}

func (r *quotationRepository) listQuotations(ctx context.Context, query string, args ...any) ([]models.Quotation, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*quotationRepository.listQuotations").Msg("failed to list quotations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	quotations := make([]models.Quotation, 0, 20)

	for rows.Next() {
		quotation, scanErr := scanQuotation(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*quotationRepository.listQuotations").Msg("failed to scan quotation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		quotations = append(quotations, quotation)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*quotationRepository.listQuotations").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return quotations, nil
}

// ExpireStaleQuotations moves every pending quotation whose valid_until is in
// the past to the expired status and returns how many rows were affected.
func (r *quotationRepository) ExpireStaleQuotations(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, expireStaleQuotations)
	if err != nil {
		log.Err(err).Str("func", "*quotationRepository.ExpireStaleQuotations").Msg("failed to expire stale quotations")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	expired, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*quotationRepository.ExpireStaleQuotations").Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return expired, nil
}

// OverrideQuotationStatus sets the quotation status directly, bypassing
// transition preconditions. The caller is responsible for validating the
// status value and auditing the override.
func (r *quotationRepository) OverrideQuotationStatus(ctx context.Context, id string, status models.QuotationStatus) (models.Quotation, error) {
	log := logger.FromContext(ctx)

	updated, err := scanQuotation(r.db.QueryRowContext(ctx, updateQuotationStatus, id, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Quotation{}, ErrQuotationNotFound
		}
		log.Err(err).Str("func", "*quotationRepository.OverrideQuotationStatus").Str("quotation_id", id).Msg("failed to override quotation status")
		return models.Quotation{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}
