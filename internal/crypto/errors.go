package crypto

import "errors"

var (
	// ErrInvalidToken is returned by TokenProvider.Validate for any token that
	// must not be accepted: bad signature, wrong purpose or user, rotated
	// security stamp or expiry.
	ErrInvalidToken = errors.New("invalid token")
	// ErrEmptyTokenInput is returned when a token is requested for a user
	// without an ID or security stamp.
	ErrEmptyTokenInput = errors.New("user id and security stamp are required")
	// ErrUnknownPurpose is returned for a purpose the provider does not serve.
	ErrUnknownPurpose = errors.New("unknown token purpose")
)
