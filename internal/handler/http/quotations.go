package http

import (
	"encoding/json"
	"net/http"

	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/utils"
	"github.com/freightex/freightex/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createQuotation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var quotation models.Quotation
	if err := json.NewDecoder(r.Body).Decode(&quotation); err != nil {
		log.Err(err).Str("func", "*Handler.createQuotation").Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	created, err := h.services.QuotationService.Create(r.Context(), principal, quotation)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getQuotation(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	quotation, err := h.services.QuotationService.Get(r.Context(), principal, chi.URLParam(r, "quotationId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, quotation, http.StatusOK)
}

func (h *Handler) listQuotations(w http.ResponseWriter, r *http.Request) {
	quotations, err := h.services.QuotationService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, quotations, http.StatusOK)
}

func (h *Handler) listQuotationsByRequest(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	quotations, err := h.services.QuotationService.ListByRequest(r.Context(), principal, chi.URLParam(r, "requestId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, quotations, http.StatusOK)
}

// overrideQuotationStatus is the legacy escape hatch that sets any valid
// quotation status directly.
func (h *Handler) overrideQuotationStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	principal, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var body models.StatusOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.overrideQuotationStatus").Msg("Invalid JSON was passed")
		writeBadRequest(w, "Invalid JSON was passed")
		return
	}

	quotation, err := h.services.QuotationService.OverrideStatus(r.Context(), principal, chi.URLParam(r, "quotationId"), body.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.QuotationStatusResponse{
		Message:   "quotation status updated",
		Quotation: quotation,
	}, http.StatusOK)
}
