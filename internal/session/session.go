// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package session holds the identity of the caller as handed over by the
// authentication layer, and the broker announcing sign-in transitions.
package session

// Session is the authenticated caller. Email may be empty.
type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

// HasEmail reports whether an email is available for email keyed lookups.
func (s *Session) HasEmail() bool {
	return s != nil && s.Email != ""
}

// Same reports whether a and b describe the same identity, nil included.
func Same(a, b *Session) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.UserID == b.UserID && a.Email == b.Email
}
