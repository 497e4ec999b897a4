package http

import (
	"errors"
	"net/http"

	"github.com/freightex/freightex/internal/logger"
	"github.com/freightex/freightex/internal/service"
	"github.com/freightex/freightex/internal/store"
	"github.com/freightex/freightex/internal/utils"
	"github.com/freightex/freightex/models"
)

// errorKind couples the HTTP status with the stable machine-readable code
// placed into the "code" field of every [models.ErrorResponse].
type errorKind struct {
	status int
	code   string
}

var errorKindMap = map[error]errorKind{
	service.ErrInvalidDataProvided:     {http.StatusBadRequest, "invalid_data"},
	service.ErrInvalidStatus:           {http.StatusBadRequest, "invalid_status"},
	service.ErrInvalidRole:             {http.StatusBadRequest, "invalid_role"},
	service.ErrSuperadminGrantDenied:   {http.StatusForbidden, "superadmin_required"},
	service.ErrWrongPassword:           {http.StatusUnauthorized, "invalid_credentials"},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, "invalid_token"},
	service.ErrAccessDenied:            {http.StatusForbidden, "access_denied"},
	service.ErrRoleNotAllowed:          {http.StatusForbidden, "role_not_allowed"},

	store.ErrEmailAlreadyExists:   {http.StatusConflict, "email_taken"},
	store.ErrProfileAlreadyExists: {http.StatusConflict, "profile_exists"},
	store.ErrUserNotFound:         {http.StatusNotFound, "user_not_found"},
	store.ErrCustomerNotFound:     {http.StatusNotFound, "customer_not_found"},
	store.ErrShipperNotFound:      {http.StatusNotFound, "shipper_not_found"},
	store.ErrRequestNotFound:      {http.StatusNotFound, "request_not_found"},
	store.ErrQuotationNotFound:    {http.StatusNotFound, "quotation_not_found"},
	store.ErrShipmentNotFound:     {http.StatusNotFound, "shipment_not_found"},

	store.ErrShipperNotVerified:          {http.StatusBadRequest, "shipper_not_verified"},
	store.ErrRequestNotPending:           {http.StatusBadRequest, "request_not_pending"},
	store.ErrNoEligibleShippers:          {http.StatusNotFound, "no_eligible_shippers"},
	store.ErrRequestNotOpenForQuotes:     {http.StatusBadRequest, "request_not_open_for_quotes"},
	store.ErrShipperNotInvited:           {http.StatusForbidden, "shipper_not_invited"},
	store.ErrQuotationNotAvailable:       {http.StatusNotFound, "quotation_not_available"},
	store.ErrRequestNotAwaitingSelection: {http.StatusBadRequest, "request_not_awaiting_selection"},
	store.ErrRequestNotAwaitingApproval:  {http.StatusBadRequest, "request_not_awaiting_approval"},
	store.ErrQuotationNotApproved:        {http.StatusBadRequest, "quotation_not_approved"},
}

// kindFromError resolves the HTTP status and error code for err via
// [errors.Is]. Unclassified errors map to 500 with the generic code.
func kindFromError(err error) errorKind {
	for target, kind := range errorKindMap {
		if errors.Is(err, target) {
			return kind
		}
	}
	return errorKind{http.StatusInternalServerError, "internal_error"}
}

// writeError renders err as the standard error envelope. Internal errors are
// logged with their cause but reported to the client with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	kind := kindFromError(err)

	message := err.Error()
	if kind.status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with internal error")
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message, Code: kind.code}, kind.status)
}

// writeBadRequest renders a 400 with the invalid_data code for body parsing
// failures.
func writeBadRequest(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message, Code: "invalid_data"}, http.StatusBadRequest)
}

// writeUnauthorized renders a 401 for failed authentication.
func writeUnauthorized(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message, Code: "unauthorized"}, http.StatusUnauthorized)
}
