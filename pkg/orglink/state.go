// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orglink

import (
	"encoding"
	"errors"
)

// State is a step of the organization link flow.
type State int

const (
	// Idle means no code is pending.
	Idle State = iota
	// CodeCaptured means a code is pending and waits for a session.
	CodeCaptured
	// Attaching means the profile is being linked.
	Attaching
	// Attached means the profile belongs to the organization.
	Attached
	// AttachFailed means a lookup or the write failed. The code is dropped.
	AttachFailed
	// OrgNotFound means no organization has the code. The code is dropped.
	OrgNotFound
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case CodeCaptured:
		return "code-captured"
	case Attaching:
		return "attaching"
	case Attached:
		return "attached"
	case AttachFailed:
		return "attach-failed"
	case OrgNotFound:
		return "org-not-found"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state consumed the pending code.
func (s State) Terminal() bool {
	return s == Attached || s == AttachFailed || s == OrgNotFound
}

func ParseState(s string) State {
	for st := Idle; st <= OrgNotFound; st++ {
		if st.String() == s {
			return st
		}
	}

	return State(-1)
}

var (
	_ encoding.TextMarshaler   = State(0)
	_ encoding.TextUnmarshaler = (*State)(nil)
)

var ErrInvalidState = errors.New("invalid state")

func (s *State) UnmarshalText(text []byte) error {
	st := ParseState(string(text))
	if st < 0 {
		return ErrInvalidState
	}

	*s = st

	return nil
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
