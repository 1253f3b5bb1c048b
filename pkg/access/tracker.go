// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"sync"

	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/session"
)

type lookupFunc func(context.Context, string) (bool, error)

// lookup is one keyed, cancellable check. Results are accepted only for the
// generation that started them.
type lookup struct {
	name     string
	key      string
	gen      uint64
	cancel   context.CancelFunc
	inFlight bool
	value    bool
	fn       lookupFunc
}

// Tracker keeps the access status of a changing session up to date. A new
// user id restarts only the profile lookup and a new email restarts only the
// legacy check; results from superseded lookups are dropped.
type Tracker struct {
	mu      sync.Mutex
	profile *lookup
	legacy  *lookup
	changed chan struct{}

	logger logging.LoggerInterface
}

// Observe feeds the current session, nil when signed out.
func (t *Tracker) Observe(ctx context.Context, s *session.Session) {
	var userID, email string
	if s != nil {
		userID = s.UserID
		email = s.Email
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.restart(ctx, t.profile, userID)
	t.restart(ctx, t.legacy, email)
}

// Handle lets the tracker subscribe to a session.Broker.
func (t *Tracker) Handle(ctx context.Context, e session.Event) {
	switch e.Type {
	case session.Established, session.Updated:
		t.Observe(ctx, e.Session)
	case session.SignedOut:
		t.Observe(ctx, nil)
	}
}

// State returns a snapshot of the tracked status.
func (t *Tracker) State() Status {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state()
}

// Wait blocks until no lookup is in flight or ctx is done.
func (t *Tracker) Wait(ctx context.Context) (Status, error) {
	for {
		t.mu.Lock()
		status := t.state()
		changed := t.changed
		t.mu.Unlock()

		if !status.Loading {
			return status, nil
		}

		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-changed:
		}
	}
}

// Close cancels every in flight lookup.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, l := range []*lookup{t.profile, t.legacy} {
		if l.cancel != nil {
			l.cancel()
			l.cancel = nil
		}
		l.gen++
		l.inFlight = false
	}

	t.broadcast()
}

func (t *Tracker) state() Status {
	loading := t.profile.inFlight || t.legacy.inFlight
	return NewStatus(t.legacy.value, t.profile.value, loading)
}

func (t *Tracker) restart(ctx context.Context, l *lookup, key string) {
	if l.gen > 0 && key == l.key {
		return
	}

	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}

	l.key = key
	l.gen++
	l.value = false
	l.inFlight = false

	defer t.broadcast()

	if key == "" {
		return
	}

	gen := l.gen
	lctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.inFlight = true

	go func() {
		value, err := l.fn(lctx, key)

		t.mu.Lock()
		defer t.mu.Unlock()

		if l.gen != gen {
			return
		}

		cancel()
		l.cancel = nil
		l.inFlight = false

		if err != nil {
			t.logger.Errorf("%s lookup failed: %v", l.name, err)
			value = false
		}

		l.value = value
		t.broadcast()
	}()
}

func (t *Tracker) broadcast() {
	close(t.changed)
	t.changed = make(chan struct{})
}

func NewTracker(service ServiceInterface, logger logging.LoggerInterface) *Tracker {
	t := new(Tracker)
	t.changed = make(chan struct{})
	t.logger = logger

	t.profile = &lookup{
		name: "profile",
		fn: func(ctx context.Context, userID string) (bool, error) {
			profile, err := service.LookupProfile(ctx, userID)
			if err != nil {
				return false, err
			}

			return profile.HasOrganization(), nil
		},
	}

	t.legacy = &lookup{
		name: "legacy",
		fn:   service.CheckLegacy,
	}

	return t
}
