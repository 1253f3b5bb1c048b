// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/session"
	"github.com/canonical/access-service/internal/types"
)

type fakeService struct {
	mu sync.Mutex

	calls    map[string]int
	gates    map[string]chan struct{}
	stubborn map[string]bool
	returned chan string

	orgs   map[string]bool
	legacy map[string]bool
	errs   map[string]error
}

func newFakeService() *fakeService {
	f := new(fakeService)
	f.calls = make(map[string]int)
	f.gates = make(map[string]chan struct{})
	f.stubborn = make(map[string]bool)
	f.returned = make(chan string, 16)
	f.orgs = make(map[string]bool)
	f.legacy = make(map[string]bool)
	f.errs = make(map[string]error)

	return f
}

func (f *fakeService) gate(key string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()

	g := make(chan struct{})
	f.gates[key] = g

	return g
}

func (f *fakeService) wait(ctx context.Context, key string) error {
	f.mu.Lock()
	f.calls[key]++
	gate := f.gates[key]
	stubborn := f.stubborn[key]
	err := f.errs[key]
	f.mu.Unlock()

	if gate != nil {
		if stubborn {
			<-gate
		} else {
			select {
			case <-gate:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	return err
}

func (f *fakeService) count(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls[key]
}

func (f *fakeService) LookupProfile(ctx context.Context, userID string) (*types.Profile, error) {
	key := "profile:" + userID
	defer func() { f.returned <- key }()

	if err := f.wait(ctx, key); err != nil {
		return nil, err
	}

	if !f.orgs[userID] {
		return &types.Profile{UserID: userID}, nil
	}

	return &types.Profile{UserID: userID, OrganizationID: strPtr("org-1")}, nil
}

func (f *fakeService) CheckLegacy(ctx context.Context, email string) (bool, error) {
	key := "legacy:" + email
	defer func() { f.returned <- key }()

	if err := f.wait(ctx, key); err != nil {
		return false, err
	}

	return f.legacy[email], nil
}

func (f *fakeService) Resolve(context.Context, *session.Session) *Status {
	return nil
}

func waitTracker(t *testing.T, tracker *Tracker) Status {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	status, err := tracker.Wait(ctx)
	if err != nil {
		t.Fatalf("tracker did not settle: %v", err)
	}

	return status
}

func eventually(t *testing.T, tracker *Tracker, cond func(Status) bool) Status {
	t.Helper()

	deadline := time.Now().Add(time.Second)
	for {
		status := tracker.State()
		if cond(status) {
			return status
		}
		if time.Now().After(deadline) {
			t.Fatalf("condition not met, last status %+v", status)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestTracker_HoldsFullAccessWhileLoading(t *testing.T) {
	svc := newFakeService()
	svc.legacy["alice@example.com"] = true
	gate := svc.gate("profile:user-1")

	tracker := NewTracker(svc, logging.NewNoopLogger())
	defer tracker.Close()

	tracker.Observe(context.Background(), &session.Session{UserID: "user-1", Email: "alice@example.com"})

	// the legacy check lands while the profile is still pending
	status := eventually(t, tracker, func(s Status) bool { return s.IsLegacy })

	if !status.Loading {
		t.Errorf("expected loading while the profile lookup is pending")
	}
	if !status.IsLegacy {
		t.Errorf("expected legacy result to be visible")
	}
	if status.FullAccess {
		t.Errorf("expected full access to be held false while loading")
	}

	close(gate)

	status = waitTracker(t, tracker)
	if !status.FullAccess || status.Loading {
		t.Errorf("expected settled full access, got %+v", status)
	}
}

func TestTracker_DiscardsStaleResults(t *testing.T) {
	svc := newFakeService()
	svc.orgs["user-1"] = true
	svc.stubborn["profile:user-1"] = true
	gate := svc.gate("profile:user-1")

	tracker := NewTracker(svc, logging.NewNoopLogger())
	defer tracker.Close()

	tracker.Observe(context.Background(), &session.Session{UserID: "user-1"})
	tracker.Observe(context.Background(), &session.Session{UserID: "user-2"})

	status := waitTracker(t, tracker)
	if status.HasOrg {
		t.Errorf("expected user-2 to have no organization, got %+v", status)
	}

	close(gate)
	for key := range svc.returned {
		if key == "profile:user-1" {
			break
		}
	}

	deadline := time.Now().Add(50 * time.Millisecond)
	for time.Now().Before(deadline) {
		if status := tracker.State(); status.HasOrg || status.FullAccess {
			t.Fatalf("expected stale user-1 result to be discarded, got %+v", status)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestTracker_RestartsOnlyChangedLookups(t *testing.T) {
	svc := newFakeService()

	tracker := NewTracker(svc, logging.NewNoopLogger())
	defer tracker.Close()

	tracker.Observe(context.Background(), &session.Session{UserID: "user-1", Email: "a@example.com"})
	waitTracker(t, tracker)

	svc.legacy["b@example.com"] = true
	tracker.Observe(context.Background(), &session.Session{UserID: "user-1", Email: "b@example.com"})
	status := waitTracker(t, tracker)

	if n := svc.count("profile:user-1"); n != 1 {
		t.Errorf("expected a single profile lookup, got %d", n)
	}
	if n := svc.count("legacy:b@example.com"); n != 1 {
		t.Errorf("expected the new email to be checked once, got %d", n)
	}
	if !status.FullAccess || !status.IsLegacy {
		t.Errorf("expected legacy access after email change, got %+v", status)
	}

	tracker.Observe(context.Background(), &session.Session{UserID: "user-1", Email: "b@example.com"})
	waitTracker(t, tracker)

	if n := svc.count("legacy:b@example.com"); n != 1 {
		t.Errorf("expected unchanged email not to be checked again, got %d", n)
	}
}

func TestTracker_FailuresAndSignOut(t *testing.T) {
	svc := newFakeService()
	svc.orgs["user-1"] = true
	svc.errs["legacy:a@example.com"] = errors.New("unreachable")

	broker := session.NewBroker(logging.NewNoopLogger())
	tracker := NewTracker(svc, logging.NewNoopLogger())
	defer tracker.Close()

	broker.Subscribe(tracker.Handle)

	broker.Publish(context.Background(), &session.Session{UserID: "user-1", Email: "a@example.com"})
	status := waitTracker(t, tracker)

	if status.IsLegacy {
		t.Errorf("expected a failed legacy check to count as false")
	}
	if !status.FullAccess || !status.HasOrg {
		t.Errorf("expected organization access, got %+v", status)
	}

	broker.Publish(context.Background(), nil)
	status = waitTracker(t, tracker)

	if status != (Status{}) {
		t.Errorf("expected all false after sign out, got %+v", status)
	}
}
