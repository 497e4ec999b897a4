package models

import "time"

// Shipment is the delivery record created exactly once per negotiation, when
// an admin finalizes a customer-approved quotation. Its status evolves
// independently of the originating request and quotation.
type Shipment struct {
	// ID is the unique identifier of the shipment (UUID).
	ID string `json:"id"`

	// QuotationID references the quotation the shipment was created from.
	QuotationID string `json:"quotation_id"`

	// ShipperID references the carrying shipper profile.
	ShipperID string `json:"shipper_id"`

	// CustomerID references the owning customer profile.
	CustomerID string `json:"customer_id"`

	Origin                string     `json:"origin"`
	Destination           string     `json:"destination"`
	CargoType             string     `json:"cargo_type"`
	ContainerType         string     `json:"container_type"`
	Weight                float64    `json:"weight"`
	Volume                float64    `json:"volume"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date"`
	TrackingNumber        string     `json:"tracking_number"`
	Notes                 string     `json:"notes"`

	Status ShipmentStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Shipment model.
func (s Shipment) TableName() string {
	return "shipments"
}
