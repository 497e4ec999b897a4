package models

// ErrorResponse is the JSON body of every failed request. Code is a stable
// machine-readable error kind so that callers do not need to pattern-match
// on the message text.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// SendToShippersResponse is returned by PATCH …/send-to-shippers.
type SendToShippersResponse struct {
	Message         string          `json:"message"`
	ShipmentRequest ShipmentRequest `json:"shipmentRequest"`

	// ShippersSent lists the shippers that received the request.
	ShippersSent []Shipper `json:"shippersSent"`
}

// SelectQuotationResponse is returned by PATCH …/select-quotation.
type SelectQuotationResponse struct {
	Message           string          `json:"message"`
	ShipmentRequest   ShipmentRequest `json:"shipmentRequest"`
	SelectedQuotation Quotation       `json:"selectedQuotation"`
}

// RequestDecisionResponse is returned by the approve/reject endpoints and by
// the legacy request status override.
type RequestDecisionResponse struct {
	Message         string          `json:"message"`
	ShipmentRequest ShipmentRequest `json:"shipmentRequest"`
}

// QuotationStatusResponse is returned by the legacy quotation status override.
type QuotationStatusResponse struct {
	Message   string    `json:"message"`
	Quotation Quotation `json:"quotation"`
}

// ShipmentStatusResponse is returned by PATCH /shipments/:id/status.
type ShipmentStatusResponse struct {
	Message  string   `json:"message"`
	Shipment Shipment `json:"shipment"`
}

// UserRoleResponse is returned by the role-management endpoints.
type UserRoleResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// MessageResponse is a bare confirmation envelope.
type MessageResponse struct {
	Message string `json:"message"`
}
