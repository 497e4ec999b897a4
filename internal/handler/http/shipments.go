package http

import (
	"encoding/json"
	"net/http"

	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/utils"
	"github.com/freightex/freightex/models"
	"github.com/go-chi/chi/v5"
)

// createShipment finalizes a customer-approved quotation into a shipment
// record.
func (h *Handler) createShipment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body models.CreateShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.createShipment").Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	shipment, err := h.services.ShipmentService.CreateFromQuotation(r.Context(), body.QuotationID, body.Notes)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, shipment, http.StatusCreated)
}

func (h *Handler) getShipment(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	shipment, err := h.services.ShipmentService.Get(r.Context(), principal, chi.URLParam(r, "shipmentId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, shipment, http.StatusOK)
}

func (h *Handler) listShipments(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	shipments, err := h.services.ShipmentService.List(r.Context(), principal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, shipments, http.StatusOK)
}

func (h *Handler) updateShipmentStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var body models.StatusOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.updateShipmentStatus").Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	shipment, err := h.services.ShipmentService.UpdateStatus(r.Context(), principal, chi.URLParam(r, "shipmentId"), body.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ShipmentStatusResponse{
		Message:  "shipment status updated",
		Shipment: shipment,
	}, http.StatusOK)
}
