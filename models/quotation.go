package models

import "time"

// Quotation is a shipper's priced offer against one shipment request.
// Multiple quotations may exist per request, one per responding shipper;
// at most one of them is in admin_selected or customer_approved at a time.
type Quotation struct {
	// ID is the unique identifier of the quotation (UUID).
	ID string `json:"id"`

	// ShipmentRequestID references the request this quotation answers.
	ShipmentRequestID string `json:"shipment_request_id"`

	// ShipperID references the shipper profile that submitted the offer.
	ShipperID string `json:"shipper_id"`

	Price                 float64    `json:"price"`
	Currency              string     `json:"currency"`
	EstimatedDeliveryDays int        `json:"estimated_delivery_days"`
	ValidUntil            *time.Time `json:"valid_until"`
	AdditionalTerms       string     `json:"additional_terms"`

	Status QuotationStatus `json:"status"`

	AdminSelectionNotes   string `json:"admin_selection_notes"`
	CustomerApprovalNotes string `json:"customer_approval_notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Quotation model.
func (q Quotation) TableName() string {
	return "quotations"
}
