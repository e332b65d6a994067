package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/app"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

// currentUser answers with the authenticated user, or JSON null if the
// session no longer refers to a valid account.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	principal, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		logger.FromRequest(r).Error().Msg("no session token in request context")
		utils.WriteJSON(w, models.MessageResponse{Message: app.MsgTokenIsExpiredOrInvalid}, http.StatusUnauthorized)
		return
	}

	user, err := h.services.UserService.GetCurrentUser(ctx, principal)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
