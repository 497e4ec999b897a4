package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail         = errors.New("valid email is required")
	ErrInvalidPassword      = errors.New("password must be at least 8 characters")
	ErrInvalidRole          = errors.New("invalid role")
	ErrEmptyCompanyName     = errors.New("company name is required")
	ErrEmptyContactName     = errors.New("contact name is required")
	ErrEmptyLicenseNumber   = errors.New("license number is required")
	ErrEmptyModesSupported  = errors.New("at least one transport mode is required")
	ErrInvalidTransportMode = errors.New("invalid transport mode")
	ErrEmptyOrigin          = errors.New("origin is required")
	ErrEmptyDestination     = errors.New("destination is required")
	ErrEmptyCargoType       = errors.New("cargo type is required")
	ErrInvalidWeight        = errors.New("weight must be positive")
	ErrInvalidVolume        = errors.New("volume must be positive")
	ErrInvalidPrice         = errors.New("price must be positive")
	ErrEmptyCurrency        = errors.New("currency is required")
	ErrInvalidDeliveryDays  = errors.New("estimated delivery days must be positive")
	ErrEmptyQuotationID     = errors.New("quotation id is required")
	ErrEmptyStatus          = errors.New("status is required")
)
