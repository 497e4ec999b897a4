package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/models"
)

// shipmentRequestRepository is the PostgreSQL-backed implementation of
// [ShipmentRequestRepository]. Besides plain CRUD it owns the request-side
// workflow transitions (broadcast, selection, customer decision, override).
//
// Every multi-row transition runs inside a transaction with the request row
// locked via SELECT ... FOR UPDATE, so the status precondition observed at
// the start of the transition still holds when the updates apply.
type shipmentRequestRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewShipmentRequestRepository constructs a [ShipmentRequestRepository]
// backed by the provided database connection and logger.
func NewShipmentRequestRepository(db *DB, logger *logger.Logger) ShipmentRequestRepository {
	logger.Debug().Msg("creating shipment request repository")
	return &shipmentRequestRepository{
		db:     db,
		logger: logger,
	}
}

// scanRequest scans one row of requestColumns into a [models.ShipmentRequest].
func scanRequest(row interface{ Scan(dest ...any) error }) (models.ShipmentRequest, error) {
	var sr models.ShipmentRequest
	err := row.Scan(
		&sr.ID,
		&sr.CustomerID,
		&sr.Origin,
		&sr.Destination,
		&sr.PreferredMode,
		&sr.CargoType,
		&sr.ContainerType,
		&sr.Weight,
		&sr.Volume,
		&sr.Notes,
		&sr.Status,
		&sr.SelectedQuotationID,
		&sr.AdminNotes,
		&sr.CustomerApprovalNotes,
		&sr.CreatedAt,
		&sr.UpdatedAt,
	)
	return sr, err
}

// CreateRequest inserts a new shipment request in pending status.
func (r *shipmentRequestRepository) CreateRequest(ctx context.Context, request models.ShipmentRequest) (models.ShipmentRequest, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createRequest,
		request.ID,
		request.CustomerID,
		request.Origin,
		request.Destination,
		request.PreferredMode,
		request.CargoType,
		request.ContainerType,
		request.Weight,
		request.Volume,
		request.Notes,
		models.RequestPending,
	)

	saved, err := scanRequest(row)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRequestRepository.CreateRequest").Msg("failed to insert shipment request")
		return models.ShipmentRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

// GetRequestByID retrieves a shipment request by primary key.
func (r *shipmentRequestRepository) GetRequestByID(ctx context.Context, id string) (models.ShipmentRequest, error) {
	log := logger.FromContext(ctx)

	found, err := scanRequest(r.db.QueryRowContext(ctx, getRequestByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ShipmentRequest{}, ErrRequestNotFound
		}
		log.Err(err).Str("func", "*shipmentRequestRepository.GetRequestByID").Str("request_id", id).Msg("failed to get shipment request")
		return models.ShipmentRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// ListRequests returns every shipment request ordered by creation time.
func (r *shipmentRequestRepository) ListRequests(ctx context.Context) ([]models.ShipmentRequest, error) {
	return r.listRequests(ctx, listRequests)
}

// ListRequestsByCustomer returns the shipment requests created by one
// customer, ordered by creation time.
func (r *shipmentRequestRepository) ListRequestsByCustomer(ctx context.Context, customerID string) ([]models.ShipmentRequest, error) {
	return r.listRequests(ctx, listRequestsByCustomer, customerID)
}

func (r *shipmentRequestRepository) listRequests(ctx context.Context, query string, args ...any) ([]models.ShipmentRequest, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRequestRepository.listRequests").Msg("failed to list shipment requests")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	requests := make([]models.ShipmentRequest, 0, 20)

	for rows.Next() {
		request, scanErr := scanRequest(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*shipmentRequestRepository.listRequests").Msg("failed to scan shipment request row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		requests = append(requests, request)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*shipmentRequestRepository.listRequests").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return requests, nil
}

// SendToShippers broadcasts a pending request to all verified shippers,
// optionally filtered by supported transport mode.
//
// Inside one transaction:
//  1. the request row is locked and its status checked to be pending;
//  2. eligible shippers are selected (verified, mode filter applied);
//  3. one join record per shipper is inserted;
//  4. the request moves to sent_to_shippers.
//
// An empty eligible set aborts the transition with [ErrNoEligibleShippers]
// and the request stays pending.
func (r *shipmentRequestRepository) SendToShippers(ctx context.Context, requestID, adminNotes string, filterMode models.TransportMode) (models.ShipmentRequest, []models.Shipper, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRequestRepository.SendToShippers").Str("request_id", requestID).Msg("failed to begin transaction")
		return models.ShipmentRequest{}, nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	request, err := scanRequest(tx.QueryRowContext(ctx, getRequestByIDForShare, requestID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ShipmentRequest{}, nil, ErrRequestNotFound
		}
		log.Err(err).Str("func", "*shipmentRequestRepository.SendToShippers").Str("request_id", requestID).Msg("failed to lock shipment request")
		return models.ShipmentRequest{}, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if request.Status != models.RequestPending {
		log.Warn().
			Str("func", "*shipmentRequestRepository.SendToShippers").
			Str("request_id", requestID).
			Str("status", string(request.Status)).
			Msg("request has already left pending status")
		return models.ShipmentRequest{}, nil, ErrRequestNotPending
	}

	query, args, err := buildEligibleShippersQuery(filterMode)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRequestRepository.SendToShippers").Str("request_id", requestID).Msg("failed to build eligible shippers query")
		return models.ShipmentRequest{}, nil, err
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRequestRepository.SendToShippers").Str("request_id", requestID).Msg("failed to select eligible shippers")
		return models.ShipmentRequest{}, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	shippers := make([]models.Shipper, 0, 20)
	for rows.Next() {
		shipper, scanErr := scanShipper(rows)
		if scanErr != nil {
			rows.Close()
			log.Err(scanErr).Str("func", "*shipmentRequestRepository.SendToShippers").Msg("failed to scan shipper row")
			return models.ShipmentRequest{}, nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		shippers = append(shippers, shipper)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		rows.Close()
		log.Err(rowsErr).Str("func", "*shipmentRequestRepository.SendToShippers").Msg("error occurred during rows iteration")
		return models.ShipmentRequest{}, nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}
	rows.Close()

	if len(shippers) == 0 {
		log.Warn().
			Str("func", "*shipmentRequestRepository.SendToShippers").
			Str("request_id", requestID).
			Str("filter_mode", string(filterMode)).
			Msg("no eligible shippers for broadcast")
		return models.ShipmentRequest{}, nil, ErrNoEligibleShippers
	}

	for _, shipper := range shippers {
		if _, execErr := tx.ExecContext(ctx, insertRequestShipperLink, requestID, shipper.ID, models.LinkPending); execErr != nil {
			log.Err(execErr).
				Str("func", "*shipmentRequestRepository.SendToShippers").
				Str("request_id", requestID).
				Str("shipper_id", shipper.ID).
				Msg("failed to insert request-shipper link")
			return models.ShipmentRequest{}, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}
	}

	updated, err := scanRequest(tx.QueryRowContext(ctx, markRequestSent, requestID, adminNotes))
	if err != nil {
		log.Err(err).Str("func", "*shipmentRequestRepository.SendToShippers").Str("request_id", requestID).Msg("failed to mark request as sent")
		return models.ShipmentRequest{}, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*shipmentRequestRepository.SendToShippers").Str("request_id", requestID).Msg("failed to commit transaction")
		return models.ShipmentRequest{}, nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "*shipmentRequestRepository.SendToShippers").
		Str("request_id", requestID).
		Int("shippers_count", len(shippers)).
		Msg("request broadcast to shippers")

	return updated, shippers, nil
}

// SendToSingleShipper upserts one join record for a verified shipper. Unlike
// the broadcast it never changes the request's own status, and repeating the
// call refreshes the existing record instead of failing.
func (r *shipmentRequestRepository) SendToSingleShipper(ctx context.Context, requestID, shipperID, adminNotes string) (models.RequestShipperLink, error) {
	log := logger.FromContext(ctx)

	if _, err := r.GetRequestByID(ctx, requestID); err != nil {
		return models.RequestShipperLink{}, err
	}

	if _, err := scanShipper(r.db.QueryRowContext(ctx, getVerifiedShipperByID, shipperID)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RequestShipperLink{}, ErrShipperNotVerified
		}
		log.Err(err).Str("func", "*shipmentRequestRepository.SendToSingleShipper").Str("shipper_id", shipperID).Msg("failed to check shipper verification")
		return models.RequestShipperLink{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var link models.RequestShipperLink
	row := r.db.QueryRowContext(ctx, upsertRequestShipperLink, requestID, shipperID, adminNotes)
	if err := row.Scan(&link.ShipmentRequestID, &link.ShipperID, &link.Status, &link.AdminNotes, &link.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "*shipmentRequestRepository.SendToSingleShipper").
			Str("request_id", requestID).
			Str("shipper_id", shipperID).
			Msg("failed to upsert request-shipper link")
		return models.RequestShipperLink{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Info().
		Str("func", "*shipmentRequestRepository.SendToSingleShipper").
		Str("request_id", requestID).
		Str("shipper_id", shipperID).
		Msg("request forwarded to single shipper")

	return link, nil
}

// IsShipperInvited reports whether a join record exists for the pair.
func (r *shipmentRequestRepository) IsShipperInvited(ctx context.Context, requestID, shipperID string) (bool, error) {
	log := logger.FromContext(ctx)

	var invited bool
	if err := r.db.QueryRowContext(ctx, requestShipperLinkExists, requestID, shipperID).Scan(&invited); err != nil {
		log.Err(err).
			Str("func", "*shipmentRequestRepository.IsShipperInvited").
			Str("request_id", requestID).
			Str("shipper_id", shipperID).
			Msg("failed to check request-shipper link")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return invited, nil
}

// SelectQuotation marks one pending quotation of the request as
// admin_selected and moves the request to quotation_selected.
//
// Preconditions enforced inside the transaction:
//   - the request exists and is in quotations_received status, otherwise
//     [ErrRequestNotAwaitingSelection];
//   - the quotation belongs to the request and is pending, otherwise
//     [ErrQuotationNotAvailable].
func (r *shipmentRequestRepository) SelectQuotation(ctx context.Context, requestID, quotationID, adminSelectionNotes string) (models.ShipmentRequest, models.Quotation, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRequestRepository.SelectQuotation").Str("request_id", requestID).Msg("failed to begin transaction")
		return models.ShipmentRequest{}, models.Quotation{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	request, err := scanRequest(tx.QueryRowContext(ctx, getRequestByIDForShare, requestID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ShipmentRequest{}, models.Quotation{}, ErrRequestNotAwaitingSelection
		}
		log.Err(err).Str("func", "*shipmentRequestRepository.SelectQuotation").Str("request_id", requestID).Msg("failed to lock shipment request")
		return models.ShipmentRequest{}, models.Quotation{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if request.Status != models.RequestQuotationsReceived {
		log.Warn().
			Str("func", "*shipmentRequestRepository.SelectQuotation").
			Str("request_id", requestID).
			Str("status", string(request.Status)).
			Msg("request not awaiting quotation selection")
		return models.ShipmentRequest{}, models.Quotation{}, ErrRequestNotAwaitingSelection
	}

	quotation, err := scanQuotation(tx.QueryRowContext(ctx, getPendingQuotationForRequest, quotationID, requestID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ShipmentRequest{}, models.Quotation{}, ErrQuotationNotAvailable
		}
		log.Err(err).Str("func", "*shipmentRequestRepository.SelectQuotation").Str("quotation_id", quotationID).Msg("failed to lock quotation")
		return models.ShipmentRequest{}, models.Quotation{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if _, execErr := tx.ExecContext(ctx, markQuotationSelected, quotationID, adminSelectionNotes); execErr != nil {
		log.Err(execErr).Str("func", "*shipmentRequestRepository.SelectQuotation").Str("quotation_id", quotationID).Msg("failed to mark quotation as selected")
		return models.ShipmentRequest{}, models.Quotation{}, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	updated, err := scanRequest(tx.QueryRowContext(ctx, markRequestQuotationSelected, requestID, quotationID))
	if err != nil {
		log.Err(err).Str("func", "*shipmentRequestRepository.SelectQuotation").Str("request_id", requestID).Msg("failed to mark request as quotation_selected")
		return models.ShipmentRequest{}, models.Quotation{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*shipmentRequestRepository.SelectQuotation").Str("request_id", requestID).Msg("failed to commit transaction")
		return models.ShipmentRequest{}, models.Quotation{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	quotation.Status = models.QuotationAdminSelected
	quotation.AdminSelectionNotes = adminSelectionNotes

	log.Info().
		Str("func", "*shipmentRequestRepository.SelectQuotation").
		Str("request_id", requestID).
		Str("quotation_id", quotationID).
		Msg("quotation selected for customer review")

	return updated, quotation, nil
}

// ApproveQuotation applies the customer's approval of the selected quotation.
// The quotation moves to customer_approved and so does the request.
func (r *shipmentRequestRepository) ApproveQuotation(ctx context.Context, requestID, customerApprovalNotes string) (models.ShipmentRequest, error) {
	return r.applyCustomerDecision(ctx, requestID, customerApprovalNotes, true)
}

// RejectQuotation rejects the selected quotation, clears the selection, and
// returns the request to quotations_received so the admin can pick another.
func (r *shipmentRequestRepository) RejectQuotation(ctx context.Context, requestID, customerApprovalNotes string) (models.ShipmentRequest, error) {
	return r.applyCustomerDecision(ctx, requestID, customerApprovalNotes, false)
}

// applyCustomerDecision runs the shared approve/reject transaction: lock the
// request, require quotation_selected status with a selection present, then
// update the quotation and the request together.
func (r *shipmentRequestRepository) applyCustomerDecision(ctx context.Context, requestID, customerApprovalNotes string, approved bool) (models.ShipmentRequest, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*shipmentRequestRepository.applyCustomerDecision").Str("request_id", requestID).Msg("failed to begin transaction")
		return models.ShipmentRequest{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	request, err := scanRequest(tx.QueryRowContext(ctx, getRequestByIDForShare, requestID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ShipmentRequest{}, ErrRequestNotFound
		}
		log.Err(err).Str("func", "*shipmentRequestRepository.applyCustomerDecision").Str("request_id", requestID).Msg("failed to lock shipment request")
		return models.ShipmentRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if request.Status != models.RequestQuotationSelected || request.SelectedQuotationID == nil {
		log.Warn().
			Str("func", "*shipmentRequestRepository.applyCustomerDecision").
			Str("request_id", requestID).
			Str("status", string(request.Status)).
			Msg("request not waiting for customer approval")
		return models.ShipmentRequest{}, ErrRequestNotAwaitingApproval
	}

	quotationStatus := models.QuotationCustomerApproved
	requestQuery := markRequestCustomerApproved
	if !approved {
		quotationStatus = models.QuotationRejected
		requestQuery = markRequestQuotationRejected
	}

	if _, execErr := tx.ExecContext(ctx, markQuotationCustomerDecision, *request.SelectedQuotationID, quotationStatus, customerApprovalNotes); execErr != nil {
		log.Err(execErr).
			Str("func", "*shipmentRequestRepository.applyCustomerDecision").
			Str("quotation_id", *request.SelectedQuotationID).
			Msg("failed to update quotation with customer decision")
		return models.ShipmentRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	updated, err := scanRequest(tx.QueryRowContext(ctx, requestQuery, requestID, customerApprovalNotes))
	if err != nil {
		log.Err(err).Str("func", "*shipmentRequestRepository.applyCustomerDecision").Str("request_id", requestID).Msg("failed to update request with customer decision")
		return models.ShipmentRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*shipmentRequestRepository.applyCustomerDecision").Str("request_id", requestID).Msg("failed to commit transaction")
		return models.ShipmentRequest{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "*shipmentRequestRepository.applyCustomerDecision").
		Str("request_id", requestID).
		Bool("approved", approved).
		Msg("customer decision applied")

	return updated, nil
}

// OverrideRequestStatus sets the request status directly, bypassing
// transition preconditions. The caller is responsible for validating the
// status value and auditing the override.
func (r *shipmentRequestRepository) OverrideRequestStatus(ctx context.Context, requestID string, status models.RequestStatus) (models.ShipmentRequest, error) {
	log := logger.FromContext(ctx)

	updated, err := scanRequest(r.db.QueryRowContext(ctx, overrideRequestStatus, requestID, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ShipmentRequest{}, ErrRequestNotFound
		}
		log.Err(err).Str("func", "*shipmentRequestRepository.OverrideRequestStatus").Str("request_id", requestID).Msg("failed to override request status")
		return models.ShipmentRequest{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}
