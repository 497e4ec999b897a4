package http

import (
	"github.com/freightex/freightex/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires the REST API. Authorization is declared per route group: the
// auth middleware establishes the principal, requireRoles narrows it. Routes
// whose ownership rules depend on the entity (own request, own quotation)
// admit every role here and leave the fine-grained check to the service.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRateLimit)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		// profile submission is open to any authenticated account; the
		// matching role is assigned on success
		r.With(h.requireRoles(anyRole...)).Post("/api/customers", h.createCustomerProfile)
		r.With(h.requireRoles(anyRole...)).Post("/api/shippers", h.createShipperProfile)

		r.With(h.requireRoles(models.RoleCustomer)).Get("/api/customers/me", h.getOwnCustomerProfile)
		r.With(h.requireRoles(models.RoleShipper)).Get("/api/shippers/me", h.getOwnShipperProfile)

		r.Group(func(r chi.Router) {
			r.Use(h.requireRoles(adminRoles...))

			r.Get("/api/admin/users", h.listUsers)
			r.Patch("/api/admin/users/{userId}/role", h.setUserRole)

			r.Get("/api/customers", h.listCustomers)
			r.Get("/api/customers/{customerId}", h.getCustomer)
			r.Delete("/api/customers/{customerId}", h.deleteCustomer)

			r.Get("/api/shippers", h.listShippers)
			r.Get("/api/shippers/{shipperId}", h.getShipper)
			r.Patch("/api/shippers/{shipperId}/status", h.updateShipperStatus)

			r.Patch("/api/shipments/requests/{requestId}/send-to-shippers", h.sendToShippers)
			r.Patch("/api/shipments/requests/{requestId}/send-to-shipper/{shipperId}", h.sendToSingleShipper)
			r.Patch("/api/shipments/requests/{requestId}/select-quotation", h.selectQuotation)
			r.Patch("/api/shipments/requests/{requestId}/status", h.overrideRequestStatus)

			r.Get("/api/quotations", h.listQuotations)
			r.Patch("/api/quotations/{quotationId}/status", h.overrideQuotationStatus)

			r.Post("/api/shipments", h.createShipment)
		})

		// the superadmin surface can additionally grant the superadmin role
		// and hard-delete accounts
		r.Group(func(r chi.Router) {
			r.Use(h.requireRoles(models.RoleSuperadmin))

			r.Patch("/api/superadmin/users/{userId}/role", h.setUserRole)
			r.Delete("/api/superadmin/users/{userId}", h.deleteUser)
		})

		r.With(h.requireRoles(models.RoleCustomer)).Post("/api/shipments/requests", h.createShipmentRequest)
		r.With(h.requireRoles(models.RoleCustomer, models.RoleAdmin, models.RoleSuperadmin)).
			Get("/api/shipments/requests", h.listShipmentRequests)
		r.With(h.requireRoles(anyRole...)).Get("/api/shipments/requests/{requestId}", h.getShipmentRequest)

		r.With(h.requireRoles(models.RoleCustomer)).Patch("/api/shipments/requests/{requestId}/approve-quotation", h.approveQuotation)
		r.With(h.requireRoles(models.RoleCustomer)).Patch("/api/shipments/requests/{requestId}/reject-quotation", h.rejectQuotation)

		r.With(h.requireRoles(models.RoleShipper)).Post("/api/quotations", h.createQuotation)
		r.With(h.requireRoles(models.RoleCustomer, models.RoleAdmin, models.RoleSuperadmin)).
			Get("/api/quotations/request/{requestId}", h.listQuotationsByRequest)
		r.With(h.requireRoles(anyRole...)).Get("/api/quotations/{quotationId}", h.getQuotation)

		r.With(h.requireRoles(anyRole...)).Get("/api/shipments", h.listShipments)
		r.With(h.requireRoles(anyRole...)).Get("/api/shipments/{shipmentId}", h.getShipment)
		r.With(h.requireRoles(models.RoleShipper, models.RoleAdmin, models.RoleSuperadmin)).
			Patch("/api/shipments/{shipmentId}/status", h.updateShipmentStatus)
	})

	return router
}
