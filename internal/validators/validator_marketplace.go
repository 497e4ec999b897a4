package validators

import (
	"context"
	"strings"

	"github.com/freightex/freightex/models"
)

const (
	FieldEmail          = "email"
	FieldPassword       = "password"
	FieldRole           = "role"
	FieldCompanyName    = "company_name"
	FieldContactName    = "contact_name"
	FieldLicenseNumber  = "license_number"
	FieldModesSupported = "modes_supported"
	FieldOrigin         = "origin"
	FieldDestination    = "destination"
	FieldPreferredMode  = "preferred_mode"
	FieldCargoType      = "cargo_type"
	FieldWeight         = "weight"
	FieldVolume         = "volume"
	FieldPrice          = "price"
	FieldCurrency       = "currency"
	FieldDeliveryDays   = "estimated_delivery_days"
	FieldQuotationID    = "quotation_id"
)

// MarketplaceValidator validates the request bodies of the marketplace API:
// credentials, profile submissions, shipment requests and quotations.
type MarketplaceValidator struct {
}

func NewMarketplaceValidator() Validator {
	return &MarketplaceValidator{}
}

func (v *MarketplaceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.Customer:
		return v.validateCustomer(ctx, value, fields...)
	case *models.Customer:
		return v.validateCustomer(ctx, *value, fields...)

	case models.Shipper:
		return v.validateShipper(ctx, value, fields...)
	case *models.Shipper:
		return v.validateShipper(ctx, *value, fields...)

	case models.ShipmentRequest:
		return v.validateShipmentRequest(ctx, value, fields...)
	case *models.ShipmentRequest:
		return v.validateShipmentRequest(ctx, *value, fields...)

	case models.Quotation:
		return v.validateQuotation(ctx, value, fields...)
	case *models.Quotation:
		return v.validateQuotation(ctx, *value, fields...)

	case models.SelectQuotationRequest:
		return v.validateSelectQuotation(ctx, value, fields...)
	case *models.SelectQuotationRequest:
		return v.validateSelectQuotation(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MarketplaceValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(credentials.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if len(credentials.Password) < 8 {
				return ErrInvalidPassword
			}
		case FieldRole:
			if credentials.Role != "" && !credentials.Role.Valid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MarketplaceValidator) validateCustomer(_ context.Context, customer models.Customer, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCompanyName, FieldContactName}
	}

	for _, f := range fields {
		switch f {
		case FieldCompanyName:
			if strings.TrimSpace(customer.CompanyName) == "" {
				return ErrEmptyCompanyName
			}
		case FieldContactName:
			if strings.TrimSpace(customer.ContactName) == "" {
				return ErrEmptyContactName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MarketplaceValidator) validateShipper(_ context.Context, shipper models.Shipper, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCompanyName, FieldContactName, FieldLicenseNumber, FieldModesSupported}
	}

	for _, f := range fields {
		switch f {
		case FieldCompanyName:
			if strings.TrimSpace(shipper.CompanyName) == "" {
				return ErrEmptyCompanyName
			}
		case FieldContactName:
			if strings.TrimSpace(shipper.ContactName) == "" {
				return ErrEmptyContactName
			}
		case FieldLicenseNumber:
			if strings.TrimSpace(shipper.LicenseNumber) == "" {
				return ErrEmptyLicenseNumber
			}
		case FieldModesSupported:
			if len(shipper.ModesSupported) == 0 {
				return ErrEmptyModesSupported
			}
			for _, mode := range shipper.ModesSupported {
				if !mode.Valid() {
					return ErrInvalidTransportMode
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MarketplaceValidator) validateShipmentRequest(_ context.Context, request models.ShipmentRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOrigin, FieldDestination, FieldPreferredMode, FieldCargoType, FieldWeight, FieldVolume}
	}

	for _, f := range fields {
		switch f {
		case FieldOrigin:
			if strings.TrimSpace(request.Origin) == "" {
				return ErrEmptyOrigin
			}
		case FieldDestination:
			if strings.TrimSpace(request.Destination) == "" {
				return ErrEmptyDestination
			}
		case FieldPreferredMode:
			if request.PreferredMode != "" && !request.PreferredMode.Valid() {
				return ErrInvalidTransportMode
			}
		case FieldCargoType:
			if strings.TrimSpace(request.CargoType) == "" {
				return ErrEmptyCargoType
			}
		case FieldWeight:
			if request.Weight <= 0 {
				return ErrInvalidWeight
			}
		case FieldVolume:
			if request.Volume <= 0 {
				return ErrInvalidVolume
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MarketplaceValidator) validateQuotation(_ context.Context, quotation models.Quotation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrice, FieldCurrency, FieldDeliveryDays}
	}

	for _, f := range fields {
		switch f {
		case FieldPrice:
			if quotation.Price <= 0 {
				return ErrInvalidPrice
			}
		case FieldCurrency:
			if strings.TrimSpace(quotation.Currency) == "" {
				return ErrEmptyCurrency
			}
		case FieldDeliveryDays:
			if quotation.EstimatedDeliveryDays <= 0 {
				return ErrInvalidDeliveryDays
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MarketplaceValidator) validateSelectQuotation(_ context.Context, request models.SelectQuotationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuotationID}
	}

	for _, f := range fields {
		switch f {
		case FieldQuotationID:
			if strings.TrimSpace(request.QuotationID) == "" {
				return ErrEmptyQuotationID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidEmail applies a minimal structural check: one "@" with a non-empty
// local part and a dot-containing domain. Full RFC 5322 parsing is left to
// the mail provider.
func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.Contains(domain, "@") {
		return false
	}
	dot := strings.Index(domain, ".")

	return dot > 0 && dot < len(domain)-1
}
