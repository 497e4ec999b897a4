package models

import "time"

// Customer is the customer-side profile linked 1:1 to a user account.
// It is created on first profile submission and owns shipment requests.
type Customer struct {
	// ID is the unique identifier of the profile (UUID).
	ID string `json:"id"`

	// UserID links the profile to its owning account. Unique: one profile
	// per account, enforced by the database.
	UserID string `json:"user_id"`

	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Country     string `json:"country"`

	// Status is active on creation; mutated only by admins.
	Status CustomerStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Customer model.
func (c Customer) TableName() string {
	return "customers"
}
