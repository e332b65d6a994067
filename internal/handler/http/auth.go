package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/models"
	"github.com/go-chi/chi/v5"
)

// loginPath is the web client page the confirm-email endpoint redirects to.
const loginPath = "/auth/login"

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.LoginRequest
	if !h.decodeRequest(w, r, &request) {
		return
	}

	result, err := h.services.AuthService.Login(ctx, request.Email, request.Password)
	writeResult(ctx, w, result, err)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.RegisterRequest
	if !h.decodeRequest(w, r, &request) {
		return
	}

	result, err := h.services.AuthService.SignUp(ctx, request.Email, request.Password)
	writeResult(ctx, w, result, err)
}

// confirmEmail always redirects to the client login page. The outcome is
// carried by the emailConfirmed query parameter.
func (h *Handler) confirmEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	query := r.URL.Query()
	result, err := h.services.AuthService.ConfirmEmail(ctx, query.Get("userId"), query.Get("token"))
	if err != nil {
		log.Err(err).Msg("email confirmation failed")
	}

	confirmed := err == nil && result.StatusCode == http.StatusOK
	log.Debug().Bool("email_confirmed", confirmed).Send()

	http.Redirect(w, r, h.loginRedirectURL(confirmed), http.StatusFound)
}

func (h *Handler) resendConfirmEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.EmailRequest
	if !h.decodeRequest(w, r, &request) {
		return
	}

	result, err := h.services.AuthService.ResendConfirmEmailLink(ctx, request.Email)
	writeResult(ctx, w, result, err)
}

func (h *Handler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.EmailRequest
	if !h.decodeRequest(w, r, &request) {
		return
	}

	result, err := h.services.AuthService.SendPasswordResetLink(ctx, request.Email)
	writeResult(ctx, w, result, err)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.PasswordResetRequest
	if !h.decodeRequest(w, r, &request) {
		return
	}

	userID := chi.URLParam(r, "userId")
	result, err := h.services.AuthService.ResetPassword(ctx, userID, request.Token, request.NewPassword)
	writeResult(ctx, w, result, err)
}

func (h *Handler) loginRedirectURL(confirmed bool) string {
	return strings.TrimRight(h.clientBaseURL, "/") + loginPath + "?emailConfirmed=" + strconv.FormatBool(confirmed)
}
