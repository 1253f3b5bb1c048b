// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notify

import (
	"context"
	"encoding"
	"errors"
)

// Severity is the tone of a user facing notification.
type Severity int

const (
	// SeverityInfo is a neutral notification.
	SeverityInfo Severity = iota

	// SeveritySuccess reports a completed action.
	SeveritySuccess

	// SeverityError reports a failed action.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseSeverity parses a severity string, returning -1 when it is unknown.
func ParseSeverity(s string) Severity {
	switch s {
	case "info":
		return SeverityInfo
	case "success":
		return SeveritySuccess
	case "error":
		return SeverityError
	default:
		return Severity(-1)
	}
}

var (
	_ encoding.TextMarshaler   = Severity(0)
	_ encoding.TextUnmarshaler = (*Severity)(nil)
)

var ErrInvalidSeverity = errors.New("invalid severity")

func (s *Severity) UnmarshalText(text []byte) error {
	v := ParseSeverity(string(text))
	if v < 0 {
		return ErrInvalidSeverity
	}

	*s = v

	return nil
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Notification is a transient message surfaced to the user.
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// NotifierInterface delivers notifications to whoever is watching.
type NotifierInterface interface {
	Notify(context.Context, Notification)
}

// NotifierFunc adapts a function to NotifierInterface.
type NotifierFunc func(context.Context, Notification)

func (f NotifierFunc) Notify(ctx context.Context, n Notification) {
	f(ctx, n)
}
