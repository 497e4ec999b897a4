package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrAccessDenied is returned when an authenticated principal attempts
	// an operation on an entity it does not own.
	ErrAccessDenied = errors.New("access denied")

	// ErrRoleNotAllowed is returned when registration requests a role that
	// cannot be self-assigned.
	ErrRoleNotAllowed = errors.New("role cannot be self-assigned")

	// ErrInvalidStatus is returned by the override operations when the
	// submitted status is not a member of the target enum.
	ErrInvalidStatus = errors.New("invalid status value")

	// ErrInvalidRole is returned by the role-management operations when the
	// submitted role is not a member of the role enum.
	ErrInvalidRole = errors.New("invalid role value")

	// ErrSuperadminGrantDenied is returned when an admin attempts to assign
	// the superadmin role. Only an existing superadmin may grant it.
	ErrSuperadminGrantDenied = errors.New("only a superadmin can assign the superadmin role")
)
