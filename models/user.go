// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account of the identity store.
// Credential-related fields are never serialized.
type User struct {
	// ID is the opaque unique identifier of the user (UUID string).
	ID string `json:"id"`

	// Email is the address as it was provided at registration.
	Email string `json:"email"`

	// NormalizedEmail is the trimmed, lower-cased form of Email.
	// Lookups by email and the uniqueness constraint use this value.
	NormalizedEmail string `json:"-"`

	// UserName is the display login of the user. Equals Email for
	// self-registered accounts.
	UserName string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// EmailConfirmed flips to true only through a successful email confirmation.
	EmailConfirmed bool `json:"email_confirmed"`

	// SecurityStamp is an invalidation nonce. Every outstanding confirmation,
	// reset and session token is bound to the stamp it was issued with and
	// stops validating once the stamp is rotated.
	SecurityStamp string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// CurrentUser is the public projection of the authenticated user.
type CurrentUser struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Role     []string `json:"role"`
}
