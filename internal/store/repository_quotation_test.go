package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/models"
)

var quotationTestColumns = []string{
	"id", "shipment_request_id", "shipper_id", "price", "currency",
	"estimated_delivery_days", "valid_until", "additional_terms", "status",
	"admin_selection_notes", "customer_approval_notes", "created_at", "updated_at",
}

func quotationRow(id, requestID string, status models.QuotationStatus) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(quotationTestColumns).
		AddRow(id, requestID, "s-1", 4200.0, "USD", 21, nil, "", status, "", "", now, now)
}

func newTestQuotationRepo(t *testing.T) (*quotationRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &quotationRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateQuotation_FirstQuotationFlipsRequest(t *testing.T) {
	repo, mock, db := newTestQuotationRepo(t)
	defer db.Close()

	ctx := context.Background()
	quotation := models.Quotation{
		ID:                    "q-1",
		ShipmentRequestID:     "r-1",
		ShipperID:             "s-1",
		Price:                 4200,
		Currency:              "USD",
		EstimatedDeliveryDays: 21,
	}

	mock.ExpectQuery("FROM shipment_requests").
		WithArgs("r-1").
		WillReturnRows(requestRow("r-1", models.RequestSentToShippers, nil))
	mock.ExpectQuery("INSERT INTO quotations").
		WillReturnRows(quotationRow("q-1", "r-1", models.QuotationPending))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("r-1", "q-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("UPDATE shipment_requests").
		WithArgs("r-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	saved, flipped, err := repo.CreateQuotation(ctx, quotation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !flipped {
		t.Error("expected the first quotation to flip the request")
	}
	if saved.Status != models.QuotationPending {
		t.Errorf("expected status pending, got %s", saved.Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateQuotation_SiblingExists(t *testing.T) {
	repo, mock, db := newTestQuotationRepo(t)
	defer db.Close()

	ctx := context.Background()
	quotation := models.Quotation{ID: "q-2", ShipmentRequestID: "r-1", ShipperID: "s-2"}

	mock.ExpectQuery("FROM shipment_requests").
		WithArgs("r-1").
		WillReturnRows(requestRow("r-1", models.RequestSentToShippers, nil))
	mock.ExpectQuery("INSERT INTO quotations").
		WillReturnRows(quotationRow("q-2", "r-1", models.QuotationPending))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("r-1", "q-2").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	_, flipped, err := repo.CreateQuotation(ctx, quotation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flipped {
		t.Error("expected no flip when sibling quotations exist")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateQuotation_RequestNotOpen(t *testing.T) {
	repo, mock, db := newTestQuotationRepo(t)
	defer db.Close()

	ctx := context.Background()
	quotation := models.Quotation{ID: "q-1", ShipmentRequestID: "r-1"}

	mock.ExpectQuery("FROM shipment_requests").
		WithArgs("r-1").
		WillReturnRows(requestRow("r-1", models.RequestPending, nil))

	_, _, err := repo.CreateQuotation(ctx, quotation)
	if !errors.Is(err, ErrRequestNotOpenForQuotes) {
		t.Fatalf("expected ErrRequestNotOpenForQuotes, got %v", err)
	}
}

func TestCreateQuotation_RequestMissing(t *testing.T) {
	repo, mock, db := newTestQuotationRepo(t)
	defer db.Close()

	ctx := context.Background()
	quotation := models.Quotation{ID: "q-1", ShipmentRequestID: "r-404"}

	mock.ExpectQuery("FROM shipment_requests").
		WithArgs("r-404").
		WillReturnError(sql.ErrNoRows)

	_, _, err := repo.CreateQuotation(ctx, quotation)
	if !errors.Is(err, ErrRequestNotOpenForQuotes) {
		t.Fatalf("expected ErrRequestNotOpenForQuotes, got %v", err)
	}
}

func TestGetQuotationByID_NotFound(t *testing.T) {
	repo, mock, db := newTestQuotationRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("FROM quotations").
		WithArgs("q-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetQuotationByID(ctx, "q-404")
	if !errors.Is(err, ErrQuotationNotFound) {
		t.Fatalf("expected ErrQuotationNotFound, got %v", err)
	}
}

func TestListQuotationsByRequest(t *testing.T) {
	repo, mock, db := newTestQuotationRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := quotationRow("q-1", "r-1", models.QuotationPending)
	now := time.Now()
	rows.AddRow("q-2", "r-1", "s-2", 3900.0, "USD", 25, nil, "", "pending", "", "", now, now)

	mock.ExpectQuery("FROM quotations").
		WithArgs("r-1").
		WillReturnRows(rows)

	quotations, err := repo.ListQuotationsByRequest(ctx, "r-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quotations) != 2 {
		t.Errorf("expected 2 quotations, got %d", len(quotations))
	}
}

func TestExpireStaleQuotations(t *testing.T) {
	repo, mock, db := newTestQuotationRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE quotations").
		WillReturnResult(sqlmock.NewResult(0, 3))

	expired, err := repo.ExpireStaleQuotations(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if expired != 3 {
		t.Errorf("expected 3 expired quotations, got %d", expired)
	}
}

func TestOverrideQuotationStatus_NotFound(t *testing.T) {
	repo, mock, db := newTestQuotationRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE quotations").
		WithArgs("q-404", models.QuotationExpired).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.OverrideQuotationStatus(ctx, "q-404", models.QuotationExpired)
	if !errors.Is(err, ErrQuotationNotFound) {
		t.Fatalf("expected ErrQuotationNotFound, got %v", err)
	}
}
