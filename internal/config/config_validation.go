// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"golang.org/x/crypto/bcrypt"
)

// minTokenSignKeyLength is the shortest HMAC-SHA256 secret accepted at startup.
const minTokenSignKeyLength = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	app := &cfg.App
	if err := validation.ValidateStruct(app,
		validation.Field(&app.TokenSignKey, validation.Required, validation.Length(minTokenSignKeyLength, 0)),
		validation.Field(&app.APIBaseURL, validation.Required, is.URL),
		validation.Field(&app.ClientBaseURL, validation.Required, is.URL),
		validation.Field(&app.Name, validation.Required),
		validation.Field(&app.EmailTokenLifespan, validation.Required),
		validation.Field(&app.PasswordHashCost, validation.Min(bcrypt.MinCost), validation.Max(bcrypt.MaxCost)),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAppConfigs, err)
	}

	if err := validation.Validate(cfg.Storage.DB.DSN, validation.Required); err != nil {
		return fmt.Errorf("%w: dsn: %v", ErrInvalidStorageConfigs, err)
	}

	server := &cfg.Server
	if err := validation.ValidateStruct(server,
		validation.Field(&server.HTTPAddress, validation.Required),
		validation.Field(&server.RequestTimeout, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidServerConfigs, err)
	}

	mail := &cfg.Adapter.Mail
	if err := validation.ValidateStruct(mail,
		validation.Field(&mail.APIKey, validation.Required),
		validation.Field(&mail.FromAddress, validation.Required, is.Email),
		validation.Field(&mail.BaseURL, validation.Required, is.URL),
		validation.Field(&mail.RequestTimeout, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
	}

	return nil
}
