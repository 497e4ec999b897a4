package models

import "time"

// ShipmentRequest is a customer's request for shipment. Its Status field is
// the authoritative state of the negotiation workflow; see [RequestStatus]
// for the transition sequence.
type ShipmentRequest struct {
	// ID is the unique identifier of the request (UUID).
	ID string `json:"id"`

	// CustomerID references the owning customer profile.
	CustomerID string `json:"customer_id"`

	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	PreferredMode TransportMode `json:"preferred_mode"`
	CargoType     string        `json:"cargo_type"`
	ContainerType string        `json:"container_type"`
	Weight        float64       `json:"weight"`
	Volume        float64       `json:"volume"`
	Notes         string        `json:"notes"`

	Status RequestStatus `json:"status"`

	// SelectedQuotationID references the quotation currently selected by an
	// admin. Non-nil only in quotation_selected and later states; always a
	// quotation belonging to this request. Cleared when the customer rejects.
	SelectedQuotationID *string `json:"selected_quotation_id"`

	AdminNotes            string `json:"admin_notes"`
	CustomerApprovalNotes string `json:"customer_approval_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the ShipmentRequest model.
func (r ShipmentRequest) TableName() string {
	return "shipment_requests"
}

// RequestShipperLink is the join record stating that a shipment request was
// forwarded to a shipper. Its own status tracks notification delivery only;
// the request's Status field stays authoritative for the workflow.
type RequestShipperLink struct {
	ShipmentRequestID string     `json:"shipment_request_id"`
	ShipperID         string     `json:"shipper_id"`
	Status            LinkStatus `json:"status"`
	AdminNotes        string     `json:"admin_notes"`
	CreatedAt         time.Time  `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the RequestShipperLink model.
func (l RequestShipperLink) TableName() string {
	return "shipment_request_shippers"
}
