// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import "github.com/MKhiriev/go-auth-service/models"

// PasswordHasher turns plaintext passwords into storable hashes and checks
// candidates against them.
type PasswordHasher interface {
	// Hash returns the encoded hash of password.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. A mismatch is not an
	// error; a malformed hash is.
	Compare(hash, password string) (bool, error)
}

// TokenProvider mints and checks single-use tokens bound to a user, a
// purpose and the user's current security stamp.
type TokenProvider interface {
	// Generate mints a token for user that is only valid for purpose.
	Generate(purpose models.Purpose, user models.User) (string, error)

	// Validate returns nil only if token was minted by Generate for the same
	// purpose and user, the user's security stamp is unchanged and the token
	// has not expired.
	Validate(purpose models.Purpose, token string, user models.User) error
}
