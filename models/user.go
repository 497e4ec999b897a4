package models

import "time"

// User represents an account entity used for authentication and authorization.
// A user account is linked to at most one Customer or Shipper profile,
// depending on its role. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// ID is the unique identifier of the account (UUID).
	ID string `json:"id"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	// Never serialised.
	PasswordHash string `json:"-"`

	// Role determines which workflow operations the account may invoke.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Credentials is the request body for registration and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// Role is only honoured at registration time; superadmin cannot be
	// self-assigned (see AuthService.Register).
	Role Role `json:"role,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
