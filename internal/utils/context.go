// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, key derivation,
// HTTP request and response helpers, HTTP client initialization, session
// token generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TokenCtxKey is the key under which the authenticated session token is
// stored in the request context by the auth middleware.
var TokenCtxKey = contextKey("sessionToken")

// WithToken returns a copy of ctx carrying token.
func WithToken(ctx context.Context, token models.Token) context.Context {
	return context.WithValue(ctx, TokenCtxKey, token)
}

// GetTokenFromContext retrieves the session token from the context.
//
// ok is false if no token is stored or it has an unexpected type.
//
// Example usage:
//
//	token, ok := utils.GetTokenFromContext(ctx)
//	if !ok {
//	    // request is not authenticated
//	}
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}
