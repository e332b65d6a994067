// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the auth API.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - RequestValidator: ozzo-validation rules for the request bodies of the
//     /api/auth endpoints.
//   - PasswordPolicy: the composition rules every stored password must meet.
//
// Field errors are returned as [validation.Errors] keyed by the JSON field
// name; [FieldErrors] flattens them for a response body.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
