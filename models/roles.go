package models

// Role is the closed set of actor roles recognised by the marketplace.
// Every authenticated principal carries exactly one role; handlers declare
// the roles allowed per operation as data rather than scattered literals.
type Role string

const (
	// RoleCustomer may create shipment requests and approve or reject
	// quotations selected for their own requests.
	RoleCustomer Role = "customer"

	// RoleShipper may maintain a shipper profile and submit quotations
	// against requests that were sent out for quoting.
	RoleShipper Role = "shipper"

	// RoleAdmin brokers the workflow: forwards requests to shippers,
	// selects quotations, and finalizes shipments.
	RoleAdmin Role = "admin"

	// RoleSuperadmin is functionally equivalent to RoleAdmin, with the
	// additional rights to assign the superadmin role and hard-delete
	// arbitrary user accounts.
	RoleSuperadmin Role = "superadmin"
)

// Valid reports whether r is one of the recognised roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleShipper, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// IsAdmin reports whether r carries brokering rights.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

// Principal is the authenticated actor extracted from a bearer token.
type Principal struct {
	// UserID is the account identifier from the token subject claim.
	UserID string

	// Role is the role claim carried by the token.
	Role Role
}
