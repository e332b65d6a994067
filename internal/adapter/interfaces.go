// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound integrations of the auth service.
//
// The primary abstraction is [MailAdapter], which decouples the notification
// service from the transactional email provider. The package ships a SendGrid
// v3 implementation ([NewSendGridMailAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for provider-agnostic error
// handling (e.g. [ErrMailUnauthorized] for 401/403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mail_adapter_mock.go -package=mock

// MailAdapter delivers a single transactional email. Implementations supply
// the sender identity and return once the provider accepted the message.
// Nothing is retried.
type MailAdapter interface {
	Send(ctx context.Context, email models.Email) error
}
