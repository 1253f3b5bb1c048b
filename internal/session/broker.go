// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"sync"

	"github.com/canonical/access-service/internal/logging"
)

type EventType int

const (
	// Established fires once per sign-in.
	Established EventType = iota
	// Updated fires when the signed in user keeps its ID but its email changes.
	Updated
	// SignedOut fires when the session goes away or is replaced by another user.
	SignedOut
)

func (t EventType) String() string {
	switch t {
	case Established:
		return "established"
	case Updated:
		return "updated"
	case SignedOut:
		return "signed-out"
	default:
		return "unknown"
	}
}

type Event struct {
	Type     EventType
	Session  *Session
	Previous *Session
}

type Handler func(context.Context, Event)

type subscription struct {
	id      uint64
	handler Handler
}

// Broker turns a stream of session observations, which may repeat the same
// session any number of times, into sign-in transitions.
type Broker struct {
	mu      sync.Mutex
	current *Session
	subs    []subscription
	nextID  uint64

	logger logging.LoggerInterface
}

// Subscribe registers h and returns a function removing it.
func (b *Broker) Subscribe(h Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, handler: h})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		for i, sub := range b.subs {
			if sub.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Current returns a copy of the last published session, nil when signed out.
func (b *Broker) Current() *Session {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.current == nil {
		return nil
	}
	s := *b.current
	return &s
}

// Publish records s as the current session and synchronously notifies the
// subscribers of the resulting transitions. Publishing the session already
// held is a no-op.
func (b *Broker) Publish(ctx context.Context, s *Session) {
	if s != nil && s.UserID == "" {
		s = nil
	}
	if s != nil {
		c := *s
		s = &c
	}

	b.mu.Lock()
	prev := b.current
	events := transitions(prev, s)
	b.current = s
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, e := range events {
		b.logger.Debugf("session %s", e.Type)
		for _, sub := range subs {
			sub.handler(ctx, e)
		}
	}
}

func transitions(prev, next *Session) []Event {
	switch {
	case Same(prev, next):
		return nil
	case prev == nil:
		return []Event{{Type: Established, Session: next}}
	case next == nil:
		return []Event{{Type: SignedOut, Previous: prev}}
	case prev.UserID != next.UserID:
		return []Event{
			{Type: SignedOut, Previous: prev},
			{Type: Established, Session: next},
		}
	default:
		return []Event{{Type: Updated, Session: next, Previous: prev}}
	}
}

func NewBroker(logger logging.LoggerInterface) *Broker {
	b := new(Broker)
	b.logger = logger

	return b
}
