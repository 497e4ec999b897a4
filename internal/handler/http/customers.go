package http

import (
	"encoding/json"
	"net/http"

	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/utils"
	"github.com/freightex/freightex/models"
	"github.com/go-chi/chi/v5"
)

// principalFromRequest extracts the authenticated principal placed into the
// context by the auth middleware, rejecting the request with 401 if absent.
func principalFromRequest(w http.ResponseWriter, r *http.Request) (models.Principal, bool) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no principal in context on protected route")
		writeUnauthorized(w, "authentication required")
	}
	return principal, ok
}

func (h *Handler) createCustomerProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var customer models.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		log.Err(err).Str("func", "*Handler.createCustomerProfile").Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	created, err := h.services.CustomerService.CreateProfile(r.Context(), principal, customer)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getOwnCustomerProfile(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	customer, err := h.services.CustomerService.GetOwnProfile(r.Context(), principal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, customer, http.StatusOK)
}

func (h *Handler) getCustomer(w http.ResponseWriter, r *http.Request) {
	customer, err := h.services.CustomerService.GetCustomer(r.Context(), chi.URLParam(r, "customerId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, customer, http.StatusOK)
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.services.CustomerService.ListCustomers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, customers, http.StatusOK)
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CustomerService.DeleteCustomer(r.Context(), chi.URLParam(r, "customerId")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "customer profile deleted"}, http.StatusOK)
}
