package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/app"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/internal/validators"
	"github.com/MKhiriev/go-auth-service/models"
)

// decodeRequest reads the JSON body into dst and runs boundary validation on
// it. On failure the 400 response is already written and false is returned.
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	log := logger.FromRequest(r)

	if err := utils.DecodeJSON(r, dst); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidDataProvided}, http.StatusBadRequest)
		return false
	}

	if err := h.validator.Validate(r.Context(), dst); err != nil {
		log.Debug().Err(err).Msg("request validation failed")
		utils.WriteJSON(w, models.ValidationErrorResponse{
			Message: app.MsgInvalidDataProvided,
			Errors:  validators.FieldErrors(err),
		}, http.StatusBadRequest)
		return false
	}

	return true
}

// writeResult answers with the outcome of a workflow operation. A non-nil err
// is an unexpected failure and its details are not disclosed.
func writeResult(ctx context.Context, w http.ResponseWriter, result models.Result, err error) {
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, result.Response, result.StatusCode)
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFromError(err)
	logger.FromContext(ctx).Err(err).Int("status", status).Msg("request failed")

	message := app.MsgInternalServerError
	if status == http.StatusUnauthorized {
		message = app.MsgTokenIsExpiredOrInvalid
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
