// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// auth service layer, HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails boundary validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccountAlreadyExists is returned by sign up when the email is taken.
	MsgAccountAlreadyExists = "Account already exists with this email!"

	// MsgSignUpFailed is returned when the account could not be created, for
	// instance because the password violates the policy. The reason is not
	// disclosed.
	MsgSignUpFailed = "Sign up failed, please try again"

	// MsgSignedUp is returned after an account was created and the
	// confirmation email was sent.
	MsgSignedUp = "Successfully signed up, Please check your email to confirm"

	// MsgEmailConfirmed is returned after a successful email confirmation.
	MsgEmailConfirmed = "Email confirmed"

	// MsgInvalidToken is returned when a confirmation or reset token is not
	// accepted, or the user it names does not exist.
	MsgInvalidToken = "Invalid token"

	// MsgBadCredentials is returned for an unknown email and a wrong password
	// alike.
	MsgBadCredentials = "Username or Password doesn't match"

	// MsgConfirmEmailFirst is returned when a user with valid credentials
	// tries to log in before confirming the email.
	MsgConfirmEmailFirst = "Please confirm your email first"

	// MsgPasswordResetLinkSent is returned after the reset email was sent.
	MsgPasswordResetLinkSent = "Password reset link is sent via email"

	// MsgNoUserForEmail is returned by forgot password for an unknown email.
	MsgNoUserForEmail = "No user found for this email"

	// MsgPasswordReset is returned after the password was replaced.
	MsgPasswordReset = "Successfully reset password"

	// MsgConfirmationResent is returned after a new confirmation email was
	// sent.
	MsgConfirmationResent = "Successfully sent, please check your email"

	// MsgEmailNotFound is returned by resend confirmation for an unknown
	// email.
	MsgEmailNotFound = "Email not found"
)
