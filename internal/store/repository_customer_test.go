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
	"github.com/jackc/pgerrcode"
)

var customerTestColumns = []string{
	"id", "user_id", "company_name", "contact_name", "phone", "address",
	"country", "status", "created_at", "updated_at",
}

func customerRow(id, userID string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(customerTestColumns).
		AddRow(id, userID, "Globex Trading", "John Smith", "+86-000",
			"12 Harbor Rd", "CN", "active", now, now)
}

func newTestCustomerRepo(t *testing.T) (*customerRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &customerRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateCustomer_Success(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()
	customer := models.Customer{
		ID:          "c-1",
		UserID:      "u-1",
		CompanyName: "Globex Trading",
		ContactName: "John Smith",
	}

	mock.ExpectQuery("INSERT INTO customers").
		WillReturnRows(customerRow("c-1", "u-1"))

	created, err := repo.CreateCustomer(ctx, customer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "c-1" {
		t.Errorf("expected id c-1, got %s", created.ID)
	}
}

func TestCreateCustomer_DuplicateProfile(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()
	customer := models.Customer{ID: "c-1", UserID: "u-1"}

	mock.ExpectQuery("INSERT INTO customers").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateCustomer(ctx, customer)
	if !errors.Is(err, ErrProfileAlreadyExists) {
		t.Fatalf("expected ErrProfileAlreadyExists, got %v", err)
	}
}

func TestGetCustomerByUserID_NotFound(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("FROM customers").
		WithArgs("u-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetCustomerByUserID(ctx, "u-404")
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}

func TestListCustomers(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := customerRow("c-1", "u-1")
	now := time.Now()
	rows.AddRow("c-2", "u-2", "Initech Logistics", "Pat Lee", "", "", "US", "active", now, now)

	mock.ExpectQuery("FROM customers").
		WillReturnRows(rows)

	customers, err := repo.ListCustomers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(customers) != 2 {
		t.Errorf("expected 2 customers, got %d", len(customers))
	}
}

func TestDeleteCustomer_NotFound(t *testing.T) {
	repo, mock, db := newTestCustomerRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM customers").
		WithArgs("c-404").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteCustomer(ctx, "c-404")
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
}
