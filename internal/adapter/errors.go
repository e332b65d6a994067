package adapter

import "errors"

var (
	ErrMailUnauthorized = errors.New("mail provider rejected the credentials")
	ErrMailBadRequest   = errors.New("mail provider rejected the message")
	ErrMailRejected     = errors.New("mail provider failed to accept the message")

	ErrInvalidBaseURL = errors.New("invalid mail provider base url")
)
