package models

import "time"

// Shipper is the carrier-side profile linked 1:1 to a user account.
// A shipper starts in pending_verification and must be verified by an admin
// before it becomes eligible to receive forwarded shipment requests.
type Shipper struct {
	// ID is the unique identifier of the profile (UUID).
	ID string `json:"id"`

	// UserID links the profile to its owning account. Unique: one profile
	// per account, enforced by the database.
	UserID string `json:"user_id"`

	CompanyName   string `json:"company_name"`
	ContactName   string `json:"contact_name"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`

	// ModesSupported is the set of transport modes the shipper operates.
	// Used by the eligibility filter when broadcasting a request.
	ModesSupported TransportModes `json:"modes_supported"`

	// Status is mutated only by admin/superadmin.
	Status ShipperStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Shipper model.
func (s Shipper) TableName() string {
	return "shippers"
}
