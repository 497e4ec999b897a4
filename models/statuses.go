package models

// RequestStatus is the lifecycle state of a [ShipmentRequest]. The status
// sequence is the spine of the negotiation workflow; transitions are only
// performed by the service layer operations, never by ad-hoc writes
// (the legacy admin override being the audited exception).
type RequestStatus string

const (
	// RequestPending — created by the customer, not yet brokered.
	RequestPending RequestStatus = "pending"

	// RequestSentToShippers — forwarded by an admin to all eligible shippers.
	RequestSentToShippers RequestStatus = "sent_to_shippers"

	// RequestQuotationsReceived — at least one quotation has arrived.
	RequestQuotationsReceived RequestStatus = "quotations_received"

	// RequestQuotationSelected — an admin picked one quotation and the
	// request is waiting for the customer's verdict.
	RequestQuotationSelected RequestStatus = "quotation_selected"

	// RequestCustomerApproved — the customer accepted the selected quotation.
	RequestCustomerApproved RequestStatus = "customer_approved"

	// RequestQuotationAccepted — a shipment record has been created; the
	// negotiation is finished.
	RequestQuotationAccepted RequestStatus = "quotation_accepted"

	// RequestCancelled is not reachable through the workflow; it exists
	// only for the administrative override.
	RequestCancelled RequestStatus = "cancelled"
)

// Valid reports whether s is one of the recognised request statuses.
func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestSentToShippers, RequestQuotationsReceived,
		RequestQuotationSelected, RequestCustomerApproved,
		RequestQuotationAccepted, RequestCancelled:
		return true
	}
	return false
}

// QuotationStatus is the lifecycle state of a [Quotation].
type QuotationStatus string

const (
	QuotationPending          QuotationStatus = "pending"
	QuotationAdminSelected    QuotationStatus = "admin_selected"
	QuotationCustomerApproved QuotationStatus = "customer_approved"
	QuotationAccepted         QuotationStatus = "accepted"
	QuotationRejected         QuotationStatus = "rejected"
	QuotationExpired          QuotationStatus = "expired"
)

// Valid reports whether s is one of the recognised quotation statuses.
func (s QuotationStatus) Valid() bool {
	switch s {
	case QuotationPending, QuotationAdminSelected, QuotationCustomerApproved,
		QuotationAccepted, QuotationRejected, QuotationExpired:
		return true
	}
	return false
}

// ShipmentStatus is the delivery state of a [Shipment]. It is independent of
// the originating request and quotation statuses.
type ShipmentStatus string

const (
	ShipmentPending   ShipmentStatus = "pending"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentDelivered ShipmentStatus = "delivered"
	ShipmentCancelled ShipmentStatus = "cancelled"
	ShipmentDelayed   ShipmentStatus = "delayed"
)

// Valid reports whether s is one of the recognised shipment statuses.
func (s ShipmentStatus) Valid() bool {
	switch s {
	case ShipmentPending, ShipmentInTransit, ShipmentDelivered,
		ShipmentCancelled, ShipmentDelayed:
		return true
	}
	return false
}

// ShipperStatus is the verification state of a [Shipper] profile.
// Only verified shippers are eligible to receive forwarded requests.
type ShipperStatus string

const (
	ShipperPendingVerification ShipperStatus = "pending_verification"
	ShipperVerified            ShipperStatus = "verified"
	ShipperSuspended           ShipperStatus = "suspended"
	ShipperRejected            ShipperStatus = "rejected"
)

// Valid reports whether s is one of the recognised shipper statuses.
func (s ShipperStatus) Valid() bool {
	switch s {
	case ShipperPendingVerification, ShipperVerified, ShipperSuspended, ShipperRejected:
		return true
	}
	return false
}

// CustomerStatus is the account state of a [Customer] profile.
type CustomerStatus string

const (
	CustomerActive    CustomerStatus = "active"
	CustomerInactive  CustomerStatus = "inactive"
	CustomerSuspended CustomerStatus = "suspended"
)

// Valid reports whether s is one of the recognised customer statuses.
func (s CustomerStatus) Valid() bool {
	switch s {
	case CustomerActive, CustomerInactive, CustomerSuspended:
		return true
	}
	return false
}

// LinkStatus is the notification state of a request-to-shipper join record.
// It tracks delivery of the "request forwarded" notification only and is not
// authoritative for the request's own status.
type LinkStatus string

const (
	LinkPending      LinkStatus = "pending"
	LinkAcknowledged LinkStatus = "acknowledged"
)
