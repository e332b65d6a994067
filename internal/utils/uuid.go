package utils

import "github.com/google/uuid"

// IDGenerator produces identifiers for new users and security stamps.
type IDGenerator struct {
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// NewID returns a time-ordered UUIDv7, falling back to a random UUIDv4.
func (g *IDGenerator) NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewSecurityStamp returns a random UUIDv4.
func (g *IDGenerator) NewSecurityStamp() string {
	return uuid.NewString()
}
