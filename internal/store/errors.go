package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering an account whose
	// email is already taken (unique violation on users.email).
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a user lookup produces no rows.
	ErrUserNotFound = errors.New("user not found")

	// ErrProfileAlreadyExists is returned when a user submits a second
	// customer or shipper profile (unique violation on the user_id column).
	ErrProfileAlreadyExists = errors.New("profile already exists for this user")

	// ErrCustomerNotFound is returned when no customer profile matches the
	// given id or user id.
	ErrCustomerNotFound = errors.New("customer profile not found")

	// ErrShipperNotFound is returned when no shipper profile matches the
	// given id or user id.
	ErrShipperNotFound = errors.New("shipper profile not found")

	// ErrShipperNotVerified is returned when a single-shipper send targets a
	// shipper whose status is not verified.
	ErrShipperNotVerified = errors.New("shipper not found or not verified")

	// ErrRequestNotFound is returned when no shipment request matches the
	// given id.
	ErrRequestNotFound = errors.New("shipment request not found")

	// ErrRequestNotPending is returned when send-to-shippers targets a
	// request that has already left the pending state.
	ErrRequestNotPending = errors.New("shipment request not in pending status")

	// ErrNoEligibleShippers is returned when the broadcast matches no
	// verified shippers (optionally after mode filtering).
	ErrNoEligibleShippers = errors.New("no eligible shippers found")

	// ErrRequestNotOpenForQuotes is returned when a quotation targets a
	// request that is not in sent_to_shippers status.
	ErrRequestNotOpenForQuotes = errors.New("shipment request not available for quotations")

	// ErrShipperNotInvited is returned, under the restricted quoting policy,
	// when a shipper quotes on a request that was never forwarded to them.
	ErrShipperNotInvited = errors.New("shipment request was not sent to this shipper")

	// ErrQuotationNotFound is returned when no quotation matches the given id.
	ErrQuotationNotFound = errors.New("quotation not found")

	// ErrQuotationNotAvailable is returned when selection targets a
	// quotation that does not belong to the request or is not pending.
	ErrQuotationNotAvailable = errors.New("quotation not found or not available")

	// ErrRequestNotAwaitingSelection is returned when select-quotation
	// targets a request that is not in quotations_received status.
	ErrRequestNotAwaitingSelection = errors.New("shipment request not found or no quotations received")

	// ErrRequestNotAwaitingApproval is returned when a customer decision
	// targets a request that is not in quotation_selected status.
	ErrRequestNotAwaitingApproval = errors.New("shipment request not waiting for approval")

	// ErrQuotationNotApproved is returned when shipment finalization targets
	// a quotation whose status is not customer_approved.
	ErrQuotationNotApproved = errors.New("valid customer-approved quotation not found")

	// ErrShipmentNotFound is returned when no shipment matches the given id.
	ErrShipmentNotFound = errors.New("shipment not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
