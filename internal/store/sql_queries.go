package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/freightex/freightex/models"
)

// Fixed statements. Dynamic filters (shipper eligibility) are built with
// squirrel below.
const (
	createUser = `INSERT INTO users (id, email, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING id, email, password_hash, role, created_at;`

	findUserByEmail = `SELECT id, email, password_hash, role, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT id, email, password_hash, role, created_at
    FROM users
    WHERE id = $1;`

	listUsers = `SELECT id, email, password_hash, role, created_at
    FROM users
    ORDER BY created_at;`

	updateUserRole = `UPDATE users
    SET role = $2
    WHERE id = $1
    RETURNING id, email, password_hash, role, created_at;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	customerColumns = `id, user_id, company_name, contact_name, phone, address, country, status, created_at, updated_at`

	createCustomer = `INSERT INTO customers (id, user_id, company_name, contact_name, phone, address, country, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING ` + customerColumns + `;`

	getCustomerByID     = `SELECT ` + customerColumns + ` FROM customers WHERE id = $1;`
	getCustomerByUserID = `SELECT ` + customerColumns + ` FROM customers WHERE user_id = $1;`
	listCustomers       = `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at;`
	deleteCustomer      = `DELETE FROM customers WHERE id = $1;`

	shipperColumns = `id, user_id, company_name, contact_name, phone, license_number, modes_supported, status, created_at, updated_at`

	createShipper = `INSERT INTO shippers (id, user_id, company_name, contact_name, phone, license_number, modes_supported, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING ` + shipperColumns + `;`

	getShipperByID         = `SELECT ` + shipperColumns + ` FROM shippers WHERE id = $1;`
	getShipperByUserID     = `SELECT ` + shipperColumns + ` FROM shippers WHERE user_id = $1;`
	getVerifiedShipperByID = `SELECT ` + shipperColumns + ` FROM shippers WHERE id = $1 AND status = 'verified';`
	listShippers           = `SELECT ` + shipperColumns + ` FROM shippers ORDER BY created_at;`

	updateShipperStatus = `UPDATE shippers
    SET status = $2, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + shipperColumns + `;`

	requestColumns = `id, customer_id, origin, destination, preferred_mode, cargo_type, container_type, weight, volume, notes, status, selected_quotation_id, admin_notes, customer_approval_notes, created_at, updated_at`

	createRequest = `INSERT INTO shipment_requests (id, customer_id, origin, destination, preferred_mode, cargo_type, container_type, weight, volume, notes, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    RETURNING ` + requestColumns + `;`

	getRequestByID         = `SELECT ` + requestColumns + ` FROM shipment_requests WHERE id = $1;`
	getRequestByIDForShare = `SELECT ` + requestColumns + ` FROM shipment_requests WHERE id = $1 FOR UPDATE;`
	listRequests           = `SELECT ` + requestColumns + ` FROM shipment_requests ORDER BY created_at;`
	listRequestsByCustomer = `SELECT ` + requestColumns + ` FROM shipment_requests WHERE customer_id = $1 ORDER BY created_at;`

	markRequestSent = `UPDATE shipment_requests
    SET status = 'sent_to_shippers', admin_notes = $2, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + requestColumns + `;`

	insertRequestShipperLink = `INSERT INTO shipment_request_shippers (shipment_request_id, shipper_id, status)
    VALUES ($1, $2, $3);`

	upsertRequestShipperLink = `INSERT INTO shipment_request_shippers (shipment_request_id, shipper_id, status, admin_notes)
    VALUES ($1, $2, 'acknowledged', $3)
    ON CONFLICT (shipment_request_id, shipper_id)
    DO UPDATE SET status = 'acknowledged', admin_notes = EXCLUDED.admin_notes
    RETURNING shipment_request_id, shipper_id, status, admin_notes, created_at;`

	requestShipperLinkExists = `SELECT EXISTS (
        SELECT 1 FROM shipment_request_shippers
        WHERE shipment_request_id = $1 AND shipper_id = $2
    );`

	quotationColumns = `id, shipment_request_id, shipper_id, price, currency, estimated_delivery_days, valid_until, additional_terms, status, admin_selection_notes, customer_approval_notes, created_at, updated_at`

	createQuotation = `INSERT INTO quotations (id, shipment_request_id, shipper_id, price, currency, estimated_delivery_days, valid_until, additional_terms, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING ` + quotationColumns + `;`

	getQuotationByID = `SELECT ` + quotationColumns + ` FROM quotations WHERE id = $1;`

	getPendingQuotationForRequest = `SELECT ` + quotationColumns + `
    FROM quotations
    WHERE id = $1 AND shipment_request_id = $2 AND status = 'pending'
    FOR UPDATE;`

	listQuotations          = `SELECT ` + quotationColumns + ` FROM quotations ORDER BY created_at;`
	listQuotationsByRequest = `SELECT ` + quotationColumns + ` FROM quotations WHERE shipment_request_id = $1 ORDER BY created_at;`

	otherQuotationsExist = `SELECT EXISTS (
        SELECT 1 FROM quotations
        WHERE shipment_request_id = $1 AND id <> $2
    );`

	markRequestQuotationsReceived = `UPDATE shipment_requests
    SET status = 'quotations_received', updated_at = NOW()
    WHERE id = $1;`

	updateQuotationStatus = `UPDATE quotations
    SET status = $2, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + quotationColumns + `;`

	expireStaleQuotations = `UPDATE quotations
    SET status = 'expired', updated_at = NOW()
    WHERE status = 'pending' AND valid_until IS NOT NULL AND valid_until < NOW();`

	markQuotationSelected = `UPDATE quotations
    SET status = 'admin_selected', admin_selection_notes = $2, updated_at = NOW()
    WHERE id = $1;`

	markRequestQuotationSelected = `UPDATE shipment_requests
    SET status = 'quotation_selected', selected_quotation_id = $2, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + requestColumns + `;`

	markQuotationCustomerDecision = `UPDATE quotations
    SET status = $2, customer_approval_notes = $3, updated_at = NOW()
    WHERE id = $1;`

	markRequestCustomerApproved = `UPDATE shipment_requests
    SET status = 'customer_approved', customer_approval_notes = $2, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + requestColumns + `;`

	markRequestQuotationRejected = `UPDATE shipment_requests
    SET status = 'quotations_received', selected_quotation_id = NULL, customer_approval_notes = $2, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + requestColumns + `;`

	overrideRequestStatus = `UPDATE shipment_requests
    SET status = $2, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + requestColumns + `;`

	shipmentColumns = `id, quotation_id, shipper_id, customer_id, origin, destination, cargo_type, container_type, weight, volume, estimated_delivery_date, tracking_number, notes, status, created_at, updated_at`

	getApprovedQuotationForUpdate = `SELECT ` + quotationColumns + `
    FROM quotations
    WHERE id = $1 AND status = 'customer_approved'
    FOR UPDATE;`

	createShipment = `INSERT INTO shipments (id, quotation_id, shipper_id, customer_id, origin, destination, cargo_type, container_type, weight, volume, estimated_delivery_date, tracking_number, notes, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
    RETURNING ` + shipmentColumns + `;`

	markQuotationAccepted = `UPDATE quotations
    SET status = 'accepted', updated_at = NOW()
    WHERE id = $1;`

	markRequestQuotationAccepted = `UPDATE shipment_requests
    SET status = 'quotation_accepted', updated_at = NOW()
    WHERE id = $1;`

	getShipmentByID = `SELECT ` + shipmentColumns + ` FROM shipments WHERE id = $1;`
	listShipments   = `SELECT ` + shipmentColumns + ` FROM shipments ORDER BY created_at;`

	updateShipmentStatus = `UPDATE shipments
    SET status = $2, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + shipmentColumns + `;`
)

// buildEligibleShippersQuery builds the SELECT for verified shippers,
// optionally narrowed to shippers supporting filterMode. The mode filter uses
// the jsonb containment operator against the modes_supported column.
func buildEligibleShippersQuery(filterMode models.TransportMode) (string, []any, error) {
	builder := sq.Select("id", "user_id", "company_name", "contact_name", "phone", "license_number", "modes_supported", "status", "created_at", "updated_at").
		From("shippers").
		Where(sq.Eq{"status": models.ShipperVerified}).
		PlaceholderFormat(sq.Dollar)

	if filterMode != "" {
		modeJSON, err := json.Marshal(models.TransportModes{filterMode})
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		builder = builder.Where(sq.Expr("modes_supported @> ?", modeJSON))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
