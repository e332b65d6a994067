package utils

import (
	"encoding/base64"
	"strings"
)

// Base64URLEncode encodes s with the URL-safe base64 alphabet without padding,
// making it safe to embed in a query string.
func Base64URLEncode(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}

// Base64URLDecode reverses Base64URLEncode. Trailing padding is tolerated.
func Base64URLDecode(s string) (string, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// NormalizeEmail returns the lookup form of an email address: surrounding
// whitespace removed and lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
