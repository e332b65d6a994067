package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-service/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTokenDuration is the fixed lifetime of a session token.
const SessionTokenDuration = 7 * 24 * time.Hour

// ErrInvalidTokenParams is returned when a token cannot be issued because a
// required parameter is empty.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

// GenerateSessionToken creates a signed HMAC-SHA256 session JWT for user.
//
// The token carries the following claims:
//   - iss:   issuer (the public API base URL)
//   - sub:   user ID
//   - name:  username
//   - jti:   a fresh random UUID
//   - role:  one entry per assigned role
//   - stamp: the user's security stamp at issuance
//   - iat/exp: now and now plus SessionTokenDuration
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("https://api.example.com", user, []string{"Admin"}, "secret")
func GenerateSessionToken(issuer string, user models.User, roles []string, signKey string) (models.Token, error) {
	if issuer == "" || signKey == "" || user.ID == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	if roles == nil {
		roles = []string{}
	}

	now := time.Now()
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTokenDuration)),
		},
		Name:          user.UserName,
		Roles:         roles,
		SecurityStamp: user.SecurityStamp,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return tokenFromClaims(token, tokenString, claims), nil
}

// ValidateAndParseSessionToken validates a session JWT and extracts its claims.
//
// Validation includes the HS256 signature, the issuer, expiry and a non-empty
// subject. The security stamp is returned as-is; comparing it with the stored
// one is the caller's job.
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return tokenFromClaims(token, tokenString, claims), nil
}

func tokenFromClaims(token *jwt.Token, signed string, claims *models.SessionClaims) models.Token {
	t := models.Token{
		Token:         token,
		SignedString:  signed,
		UserID:        claims.Subject,
		UserName:      claims.Name,
		Roles:         claims.Roles,
		SecurityStamp: claims.SecurityStamp,
		JTI:           claims.ID,
	}
	if claims.IssuedAt != nil {
		t.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		t.ExpiresAt = claims.ExpiresAt.Time
	}
	return t
}
