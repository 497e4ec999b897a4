package validators

import (
	"context"
	"testing"

	"github.com/freightex/freightex/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateCredentials_TableTest(t *testing.T) {
	v := NewMarketplaceValidator()

	tests := []struct {
		name        string
		credentials models.Credentials
		fields      []string
		wantErr     error
	}{
		{
			name:        "valid credentials",
			credentials: models.Credentials{Email: "buyer@example.com", Password: "secret-pass"},
		},
		{
			name:        "missing at sign",
			credentials: models.Credentials{Email: "buyer.example.com", Password: "secret-pass"},
			wantErr:     ErrInvalidEmail,
		},
		{
			name:        "empty local part",
			credentials: models.Credentials{Email: "@example.com", Password: "secret-pass"},
			wantErr:     ErrInvalidEmail,
		},
		{
			name:        "domain without dot",
			credentials: models.Credentials{Email: "buyer@example", Password: "secret-pass"},
			wantErr:     ErrInvalidEmail,
		},
		{
			name:        "short password",
			credentials: models.Credentials{Email: "buyer@example.com", Password: "short"},
			wantErr:     ErrInvalidPassword,
		},
		{
			name:        "unknown role",
			credentials: models.Credentials{Email: "buyer@example.com", Password: "secret-pass", Role: "overlord"},
			fields:      []string{FieldEmail, FieldPassword, FieldRole},
			wantErr:     ErrInvalidRole,
		},
		{
			name:        "empty role is allowed",
			credentials: models.Credentials{Email: "buyer@example.com", Password: "secret-pass"},
			fields:      []string{FieldEmail, FieldPassword, FieldRole},
		},
		{
			name:        "unknown field name",
			credentials: models.Credentials{Email: "buyer@example.com", Password: "secret-pass"},
			fields:      []string{"favourite_colour"},
			wantErr:     ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.credentials, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateShipper_TableTest(t *testing.T) {
	v := NewMarketplaceValidator()

	valid := models.Shipper{
		CompanyName:    "Acme Shipping",
		ContactName:    "Jane Doe",
		LicenseNumber:  "LIC-42",
		ModesSupported: models.TransportModes{models.ModeSea, models.ModeRoad},
	}

	tests := []struct {
		name    string
		mutate  func(s *models.Shipper)
		wantErr error
	}{
		{
			name:   "valid shipper",
			mutate: func(s *models.Shipper) {},
		},
		{
			name:    "blank company name",
			mutate:  func(s *models.Shipper) { s.CompanyName = "   " },
			wantErr: ErrEmptyCompanyName,
		},
		{
			name:    "blank license",
			mutate:  func(s *models.Shipper) { s.LicenseNumber = "" },
			wantErr: ErrEmptyLicenseNumber,
		},
		{
			name:    "no transport modes",
			mutate:  func(s *models.Shipper) { s.ModesSupported = nil },
			wantErr: ErrEmptyModesSupported,
		},
		{
			name:    "unknown transport mode",
			mutate:  func(s *models.Shipper) { s.ModesSupported = models.TransportModes{"teleport"} },
			wantErr: ErrInvalidTransportMode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shipper := valid
			tt.mutate(&shipper)

			err := v.Validate(context.Background(), shipper)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateShipmentRequest_TableTest(t *testing.T) {
	v := NewMarketplaceValidator()

	valid := models.ShipmentRequest{
		Origin:        "Shanghai",
		Destination:   "Rotterdam",
		PreferredMode: models.ModeSea,
		CargoType:     "electronics",
		Weight:        1200,
		Volume:        28,
	}

	tests := []struct {
		name    string
		mutate  func(r *models.ShipmentRequest)
		wantErr error
	}{
		{
			name:   "valid request",
			mutate: func(r *models.ShipmentRequest) {},
		},
		{
			name:   "empty preferred mode is allowed",
			mutate: func(r *models.ShipmentRequest) { r.PreferredMode = "" },
		},
		{
			name:    "unknown preferred mode",
			mutate:  func(r *models.ShipmentRequest) { r.PreferredMode = "teleport" },
			wantErr: ErrInvalidTransportMode,
		},
		{
			name:    "blank origin",
			mutate:  func(r *models.ShipmentRequest) { r.Origin = " " },
			wantErr: ErrEmptyOrigin,
		},
		{
			name:    "zero weight",
			mutate:  func(r *models.ShipmentRequest) { r.Weight = 0 },
			wantErr: ErrInvalidWeight,
		},
		{
			name:    "negative volume",
			mutate:  func(r *models.ShipmentRequest) { r.Volume = -3 },
			wantErr: ErrInvalidVolume,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := valid
			tt.mutate(&request)

			err := v.Validate(context.Background(), request)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateQuotation_TableTest(t *testing.T) {
	v := NewMarketplaceValidator()

	tests := []struct {
		name      string
		quotation models.Quotation
		wantErr   error
	}{
		{
			name:      "valid quotation",
			quotation: models.Quotation{Price: 4200, Currency: "USD", EstimatedDeliveryDays: 21},
		},
		{
			name:      "zero price",
			quotation: models.Quotation{Price: 0, Currency: "USD", EstimatedDeliveryDays: 21},
			wantErr:   ErrInvalidPrice,
		},
		{
			name:      "blank currency",
			quotation: models.Quotation{Price: 4200, Currency: " ", EstimatedDeliveryDays: 21},
			wantErr:   ErrEmptyCurrency,
		},
		{
			name:      "zero delivery days",
			quotation: models.Quotation{Price: 4200, Currency: "USD"},
			wantErr:   ErrInvalidDeliveryDays,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.quotation)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_PointerAndValueAreEquivalent(t *testing.T) {
	v := NewMarketplaceValidator()

	body := models.SelectQuotationRequest{QuotationID: "q-1"}

	assert.NoError(t, v.Validate(context.Background(), body))
	assert.NoError(t, v.Validate(context.Background(), &body))
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewMarketplaceValidator()

	err := v.Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidateSelectQuotation_EmptyID(t *testing.T) {
	v := NewMarketplaceValidator()

	err := v.Validate(context.Background(), models.SelectQuotationRequest{})
	assert.ErrorIs(t, err, ErrEmptyQuotationID)
}
