package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set of a session token issued on login.
//
// Subject carries the user ID and ID (jti) a fresh random nonce. Roles holds
// one entry per role assigned to the user at issuance time.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Name is the username of the authenticated user.
	Name string `json:"name"`

	// Roles lists the role names assigned to the user.
	Roles []string `json:"role"`

	// SecurityStamp is the user's stamp at issuance; a rotated stamp marks the
	// session as stale.
	SecurityStamp string `json:"stamp"`
}

// Token wraps a session token together with its decoded claims.
//
// It is produced both when a token is issued (SignedString populated) and when
// an incoming bearer token is parsed (Token populated), and serves as the
// authenticated principal inside a request context.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	UserID        string    `json:"-"`
	UserName      string    `json:"-"`
	Roles         []string  `json:"-"`
	SecurityStamp string    `json:"-"`
	JTI           string    `json:"-"`
	IssuedAt      time.Time `json:"-"`
	ExpiresAt     time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Purpose identifies what a single-use token was minted for. A token minted
// for one purpose never validates for another.
type Purpose string

const (
	PurposeEmailConfirmation Purpose = "email_confirmation"
	PurposePasswordReset     Purpose = "password_reset"
)

// PurposeClaims is the claim set of a single-use confirmation or reset token.
// Audience carries the purpose and Subject the user ID.
type PurposeClaims struct {
	jwt.RegisteredClaims

	// SecurityStamp binds the token to the user's stamp at mint time.
	SecurityStamp string `json:"stamp"`
}
