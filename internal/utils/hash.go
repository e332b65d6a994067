package utils

import (
	"crypto/hmac"
	"crypto/sha256"
)

// DeriveKey returns HMAC-SHA256(secret, label).
//
// It is used to derive independent signing keys from one master secret, so a
// value signed under one label never verifies under another.
//
// Example usage:
//
//	key := utils.DeriveKey("master-secret", "purpose:password_reset")
func DeriveKey(secret, label string) []byte {
	hasher := hmac.New(sha256.New, []byte(secret))
	hasher.Write([]byte(label))
	return hasher.Sum(nil)
}
