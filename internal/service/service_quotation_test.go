package service

import (
	"context"
	"testing"

	"github.com/freightex/freightex/internal/config"
	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/store"
	"github.com/freightex/freightex/internal/validators"
	"github.com/freightex/freightex/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuotationBody() models.Quotation {
	return models.Quotation{
		ShipmentRequestID:     "r-1",
		Price:                 4200,
		Currency:              "USD",
		EstimatedDeliveryDays: 21,
	}
}

func newTestQuotationService(
	quotations *mockQuotationRepository,
	requests *mockRequestRepository,
	customers *mockCustomerRepository,
	shippers *mockShipperRepository,
	restrictToInvited bool,
) QuotationService {
	cfg := config.App{RestrictQuotesToInvited: restrictToInvited}
	return NewQuotationService(quotations, requests, customers, shippers,
		validators.NewMarketplaceValidator(), cfg, logger.Nop())
}

func verifiedShipperRepo() *mockShipperRepository {
	return &mockShipperRepository{
		getShipperByUserIDFunc: func(ctx context.Context, userID string) (models.Shipper, error) {
			return models.Shipper{ID: "s-1", UserID: userID, Status: models.ShipperVerified}, nil
		},
	}
}

func TestQuotationCreate_Success(t *testing.T) {
	var created models.Quotation
	quotations := &mockQuotationRepository{
		createQuotationFunc: func(ctx context.Context, quotation models.Quotation) (models.Quotation, bool, error) {
			created = quotation
			return quotation, true, nil
		},
	}
	svc := newTestQuotationService(quotations, &mockRequestRepository{}, &mockCustomerRepository{}, verifiedShipperRepo(), false)

	_, err := svc.Create(context.Background(), models.Principal{UserID: "u-3", Role: models.RoleShipper}, validQuotationBody())
	require.NoError(t, err)

	assert.Equal(t, "s-1", created.ShipperID, "shipper_id must come from the caller's profile")
	assert.NotEmpty(t, created.ID)
}

func TestQuotationCreate_UnverifiedShipper(t *testing.T) {
	shippers := &mockShipperRepository{
		getShipperByUserIDFunc: func(ctx context.Context, userID string) (models.Shipper, error) {
			return models.Shipper{ID: "s-1", Status: models.ShipperPendingVerification}, nil
		},
	}
	svc := newTestQuotationService(&mockQuotationRepository{}, &mockRequestRepository{}, &mockCustomerRepository{}, shippers, false)

	_, err := svc.Create(context.Background(), models.Principal{UserID: "u-3", Role: models.RoleShipper}, validQuotationBody())
	assert.ErrorIs(t, err, store.ErrShipperNotVerified)
}

func TestQuotationCreate_RestrictedPolicyBlocksUninvited(t *testing.T) {
	requests := &mockRequestRepository{
		isShipperInvitedFunc: func(ctx context.Context, requestID, shipperID string) (bool, error) {
			return false, nil
		},
	}
	svc := newTestQuotationService(&mockQuotationRepository{}, requests, &mockCustomerRepository{}, verifiedShipperRepo(), true)

	_, err := svc.Create(context.Background(), models.Principal{UserID: "u-3", Role: models.RoleShipper}, validQuotationBody())
	assert.ErrorIs(t, err, store.ErrShipperNotInvited)
}

func TestQuotationCreate_RestrictedPolicyAllowsInvited(t *testing.T) {
	requests := &mockRequestRepository{
		isShipperInvitedFunc: func(ctx context.Context, requestID, shipperID string) (bool, error) {
			return true, nil
		},
	}
	quotations := &mockQuotationRepository{
		createQuotationFunc: func(ctx context.Context, quotation models.Quotation) (models.Quotation, bool, error) {
			return quotation, false, nil
		},
	}
	svc := newTestQuotationService(quotations, requests, &mockCustomerRepository{}, verifiedShipperRepo(), true)

	_, err := svc.Create(context.Background(), models.Principal{UserID: "u-3", Role: models.RoleShipper}, validQuotationBody())
	assert.NoError(t, err)
}

func TestQuotationCreate_InvalidBody(t *testing.T) {
	svc := newTestQuotationService(&mockQuotationRepository{}, &mockRequestRepository{}, &mockCustomerRepository{}, verifiedShipperRepo(), false)

	body := validQuotationBody()
	body.Price = 0

	_, err := svc.Create(context.Background(), models.Principal{UserID: "u-3", Role: models.RoleShipper}, body)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestQuotationCreate_MissingRequestID(t *testing.T) {
	svc := newTestQuotationService(&mockQuotationRepository{}, &mockRequestRepository{}, &mockCustomerRepository{}, verifiedShipperRepo(), false)

	body := validQuotationBody()
	body.ShipmentRequestID = ""

	_, err := svc.Create(context.Background(), models.Principal{UserID: "u-3", Role: models.RoleShipper}, body)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestQuotationGet_ShipperOwnsQuotation(t *testing.T) {
	quotations := &mockQuotationRepository{
		getQuotationByIDFunc: func(ctx context.Context, id string) (models.Quotation, error) {
			return models.Quotation{ID: id, ShipperID: "s-1"}, nil
		},
	}
	svc := newTestQuotationService(quotations, &mockRequestRepository{}, &mockCustomerRepository{}, verifiedShipperRepo(), false)

	_, err := svc.Get(context.Background(), models.Principal{UserID: "u-3", Role: models.RoleShipper}, "q-1")
	assert.NoError(t, err)
}

func TestQuotationGet_ForeignShipperDenied(t *testing.T) {
	quotations := &mockQuotationRepository{
		getQuotationByIDFunc: func(ctx context.Context, id string) (models.Quotation, error) {
			return models.Quotation{ID: id, ShipperID: "s-9"}, nil
		},
	}
	svc := newTestQuotationService(quotations, &mockRequestRepository{}, &mockCustomerRepository{}, verifiedShipperRepo(), false)

	_, err := svc.Get(context.Background(), models.Principal{UserID: "u-3", Role: models.RoleShipper}, "q-1")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestQuotationGet_CustomerOwnsRequest(t *testing.T) {
	quotations := &mockQuotationRepository{
		getQuotationByIDFunc: func(ctx context.Context, id string) (models.Quotation, error) {
			return models.Quotation{ID: id, ShipmentRequestID: "r-1", ShipperID: "s-1"}, nil
		},
	}
	requests := &mockRequestRepository{
		getRequestByIDFunc: func(ctx context.Context, id string) (models.ShipmentRequest, error) {
			return models.ShipmentRequest{ID: id, CustomerID: "c-1"}, nil
		},
	}
	customers := &mockCustomerRepository{
		getCustomerByUserIDFunc: func(ctx context.Context, userID string) (models.Customer, error) {
			return models.Customer{ID: "c-1"}, nil
		},
	}
	svc := newTestQuotationService(quotations, requests, customers, &mockShipperRepository{}, false)

	_, err := svc.Get(context.Background(), models.Principal{UserID: "u-1", Role: models.RoleCustomer}, "q-1")
	assert.NoError(t, err)
}

func TestQuotationListByRequest_ForeignCustomerDenied(t *testing.T) {
	requests := &mockRequestRepository{
		getRequestByIDFunc: func(ctx context.Context, id string) (models.ShipmentRequest, error) {
			return models.ShipmentRequest{ID: id, CustomerID: "c-1"}, nil
		},
	}
	customers := &mockCustomerRepository{
		getCustomerByUserIDFunc: func(ctx context.Context, userID string) (models.Customer, error) {
			return models.Customer{ID: "c-2"}, nil
		},
	}
	svc := newTestQuotationService(&mockQuotationRepository{}, requests, customers, &mockShipperRepository{}, false)

	_, err := svc.ListByRequest(context.Background(), models.Principal{UserID: "u-2", Role: models.RoleCustomer}, "r-1")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestQuotationOverrideStatus_InvalidStatus(t *testing.T) {
	svc := newTestQuotationService(&mockQuotationRepository{}, &mockRequestRepository{}, &mockCustomerRepository{}, &mockShipperRepository{}, false)

	_, err := svc.OverrideStatus(context.Background(), models.Principal{UserID: "u-admin", Role: models.RoleAdmin}, "q-1", "vaporised")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
