package http

import (
	"encoding/json"
	"net/http"

	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/utils"
	"github.com/freightex/freightex/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createShipperProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var shipper models.Shipper
	if err := json.NewDecoder(r.Body).Decode(&shipper); err != nil {
		log.Err(err).Str("func", "*Handler.createShipperProfile").Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	created, err := h.services.ShipperService.CreateProfile(r.Context(), principal, shipper)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getOwnShipperProfile(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	shipper, err := h.services.ShipperService.GetOwnProfile(r.Context(), principal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, shipper, http.StatusOK)
}

func (h *Handler) getShipper(w http.ResponseWriter, r *http.Request) {
	shipper, err := h.services.ShipperService.GetShipper(r.Context(), chi.URLParam(r, "shipperId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, shipper, http.StatusOK)
}

func (h *Handler) listShippers(w http.ResponseWriter, r *http.Request) {
	shippers, err := h.services.ShipperService.ListShippers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, shippers, http.StatusOK)
}

// updateShipperStatus is the admin verification endpoint.
func (h *Handler) updateShipperStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body models.StatusOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.updateShipperStatus").Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	updated, err := h.services.ShipperService.UpdateShipperStatus(r.Context(), chi.URLParam(r, "shipperId"), body.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}
