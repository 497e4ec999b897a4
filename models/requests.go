package models

// Request bodies for the workflow transition endpoints. Each carries only
// the free-text notes and parameters of the transition; the entity ids come
// from the URL.

// SendToShippersRequest is the body of PATCH …/send-to-shippers.
type SendToShippersRequest struct {
	AdminNotes string `json:"admin_notes"`

	// FilterMode optionally narrows the broadcast to shippers supporting
	// the given transport mode. Empty means all verified shippers.
	FilterMode TransportMode `json:"filter_mode,omitempty"`
}

// SendToShipperRequest is the body of PATCH …/send-to-shipper/:shipperId.
type SendToShipperRequest struct {
	AdminNotes string `json:"admin_notes"`
}

// SelectQuotationRequest is the body of PATCH …/select-quotation.
type SelectQuotationRequest struct {
	QuotationID         string `json:"quotation_id"`
	AdminSelectionNotes string `json:"admin_selection_notes"`
}

// CustomerDecisionRequest is the body of PATCH …/approve-quotation and
// PATCH …/reject-quotation.
type CustomerDecisionRequest struct {
	CustomerApprovalNotes string `json:"customer_approval_notes"`
}

// RoleUpdateRequest is the body of the admin and superadmin
// PATCH …/users/:id/role endpoints.
type RoleUpdateRequest struct {
	Role string `json:"role"`
}

// StatusOverrideRequest is the body of the legacy PATCH …/status endpoints.
type StatusOverrideRequest struct {
	Status string `json:"status"`
}

// CreateShipmentRequest is the body of POST /shipments: the quotation to
// finalize plus optional handling notes. All other shipment fields are
// derived server-side from the quotation and its request.
type CreateShipmentRequest struct {
	QuotationID string `json:"quotation_id"`
	Notes       string `json:"notes"`
}
