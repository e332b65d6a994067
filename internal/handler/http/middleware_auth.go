package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-service/internal/app"
	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

const bearerScheme = "Bearer"

// auth is an HTTP middleware that enforces session-token authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and, on success, stores the parsed
// token as the request principal (see [utils.WithToken]) before delegating to
// the next handler.
//
// The middleware answers 401 Unauthorized if the header is absent, is not a
// bearer credential, or carries a token that is expired, forged or issued by
// another issuer. Rejections are logged with the request-scoped logger.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			unauthorized(w)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithToken(ctx, token)))
	})
}

func unauthorized(w http.ResponseWriter) {
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgTokenIsExpiredOrInvalid}, http.StatusUnauthorized)
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization"
// header value of the form:
//
//	Authorization: Bearer <token>
//
// The scheme is matched case-insensitively. It returns
// [ErrInvalidAuthorizationHeader] if the value is not a two-part bearer
// credential.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) || parts[1] == "" {
		return "", ErrInvalidAuthorizationHeader
	}

	return parts[1], nil
}
