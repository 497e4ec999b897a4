package http

import (
	"encoding/json"
	"net/http"

	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/utils"
	"github.com/freightex/freightex/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createShipmentRequest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var request models.ShipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createShipmentRequest").Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	created, err := h.services.ShipmentRequestService.Create(r.Context(), principal, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getShipmentRequest(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	request, err := h.services.ShipmentRequestService.Get(r.Context(), principal, chi.URLParam(r, "requestId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, request, http.StatusOK)
}

func (h *Handler) listShipmentRequests(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	requests, err := h.services.ShipmentRequestService.List(r.Context(), principal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, requests, http.StatusOK)
}

func (h *Handler) sendToShippers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body models.SendToShippersRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.sendToShippers").Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	request, shippers, err := h.services.ShipmentRequestService.SendToShippers(r.Context(), chi.URLParam(r, "requestId"), body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SendToShippersResponse{
		Message:         "shipment request sent to shippers",
		ShipmentRequest: request,
		ShippersSent:    shippers,
	}, http.StatusOK)
}

func (h *Handler) sendToSingleShipper(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body models.SendToShipperRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.sendToSingleShipper").Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	link, err := h.services.ShipmentRequestService.SendToSingleShipper(
		r.Context(),
		chi.URLParam(r, "requestId"),
		chi.URLParam(r, "shipperId"),
		body.AdminNotes,
	)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, link, http.StatusOK)
}

func (h *Handler) selectQuotation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body models.SelectQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.selectQuotation").Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	request, quotation, err := h.services.ShipmentRequestService.SelectQuotation(r.Context(), chi.URLParam(r, "requestId"), body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SelectQuotationResponse{
		Message:           "quotation selected for customer review",
		ShipmentRequest:   request,
		SelectedQuotation: quotation,
	}, http.StatusOK)
}

func (h *Handler) approveQuotation(w http.ResponseWriter, r *http.Request) {
	h.customerDecision(w, r, true)
}

func (h *Handler) rejectQuotation(w http.ResponseWriter, r *http.Request) {
	h.customerDecision(w, r, false)
}

func (h *Handler) customerDecision(w http.ResponseWriter, r *http.Request, approved bool) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var body models.CustomerDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.customerDecision").Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	requestID := chi.URLParam(r, "requestId")

	var request models.ShipmentRequest
	var err error
	message := "quotation approved"
	if approved {
		request, err = h.services.ShipmentRequestService.ApproveQuotation(r.Context(), principal, requestID, body.CustomerApprovalNotes)
	} else {
		request, err = h.services.ShipmentRequestService.RejectQuotation(r.Context(), principal, requestID, body.CustomerApprovalNotes)
		message = "quotation rejected"
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RequestDecisionResponse{
		Message:         message,
		ShipmentRequest: request,
	}, http.StatusOK)
}

// overrideRequestStatus is the legacy escape hatch that sets any valid
// request status directly.
func (h *Handler) overrideRequestStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var body models.StatusOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.overrideRequestStatus").Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	request, err := h.services.ShipmentRequestService.OverrideStatus(r.Context(), principal, chi.URLParam(r, "requestId"), body.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RequestDecisionResponse{
		Message:         "shipment request status updated",
		ShipmentRequest: request,
	}, http.StatusOK)
}
