// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Email is a single transactional message handed to the mail provider.
// Sender address and name are supplied by the adapter configuration.
type Email struct {
	// To is the recipient address.
	To string

	// Subject is the message subject line.
	Subject string

	// PlainText is the text/plain alternative. May be empty.
	PlainText string

	// HTML is the text/html body.
	HTML string
}
