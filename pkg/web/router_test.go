// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/monitoring"
	"github.com/canonical/access-service/internal/notify"
	"github.com/canonical/access-service/internal/pending"
	"github.com/canonical/access-service/internal/session"
	"github.com/canonical/access-service/internal/tracing"
	"github.com/canonical/access-service/internal/types"
	"github.com/canonical/access-service/pkg/access"
	"github.com/canonical/access-service/pkg/orgadmin"
	"github.com/canonical/access-service/pkg/orglink"
	"github.com/canonical/access-service/pkg/webhooks"
)

type fakeAccess struct {
	seen *session.Session
}

func (f *fakeAccess) LookupProfile(context.Context, string) (*types.Profile, error) { return nil, nil }
func (f *fakeAccess) CheckLegacy(context.Context, string) (bool, error)             { return false, nil }
func (f *fakeAccess) Resolve(_ context.Context, s *session.Session) *access.Status {
	f.seen = s
	status := access.NewStatus(true, false, false)
	return &status
}

type fakeAdmins struct{}

func (fakeAdmins) Resolve(context.Context, string) (*orgadmin.Result, error) {
	return &orgadmin.Result{}, nil
}

type fakeHooks struct{}

func (fakeHooks) HandleRegistration(context.Context, string, string) error { return nil }
func (fakeHooks) HandleAccessTokenHook(context.Context, *webhooks.AccessTokenHookRequest) (*webhooks.AccessTokenHookResponse, error) {
	return &webhooks.AccessTokenHookResponse{Claims: map[string]interface{}{webhooks.ClaimFullAccess: true}}, nil
}

func newTestRouter(accessService access.ServiceInterface, sessions func(http.Handler) http.Handler) http.Handler {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("access-service", logger)

	attacher := orglink.NewAttacher(nil, nil, notify.NewLoggerNotifier(logger), tracer, monitor, logger)

	return NewRouter(
		accessService,
		fakeAdmins{},
		attacher,
		fakeHooks{},
		sessions,
		nil,
		Config{CORSAllowedOrigins: []string{"*"}},
		tracer,
		monitor,
		logger,
	)
}

func withSession(s *session.Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), s)))
		})
	}
}

func rejectAll(http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
}

func TestRouterStatusBypassesSessions(t *testing.T) {
	router := newTestRouter(&fakeAccess{}, rejectAll)

	for _, path := range []string{"/api/v0/status", "/api/v0/metrics"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Code != http.StatusOK {
			t.Errorf("expected %s to answer 200, got %d", path, w.Code)
		}
	}
}

func TestRouterWebhooksBypassSessions(t *testing.T) {
	router := newTestRouter(&fakeAccess{}, rejectAll)

	body, _ := json.Marshal(webhooks.AccessTokenHookRequest{UserID: "user-1"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/access-token", bytes.NewReader(body)))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestRouterAccessUsesSession(t *testing.T) {
	svc := &fakeAccess{}
	sess := &session.Session{UserID: "user-1", Email: "user@example.com"}
	router := newTestRouter(svc, withSession(sess))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/access", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if svc.seen == nil || svc.seen.UserID != sess.UserID {
		t.Errorf("expected session %v to reach the access service, got %v", sess, svc.seen)
	}
}

func TestRouterSessionScopedRejected(t *testing.T) {
	router := newTestRouter(&fakeAccess{}, rejectAll)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/access", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestRouterCapturesOrganizationCode(t *testing.T) {
	router := newTestRouter(&fakeAccess{}, withSession(nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard?org=ACME-42&tab=1", nil))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}

	if location := w.Header().Get("Location"); location != "/dashboard?tab=1" {
		t.Errorf("expected redirect to /dashboard?tab=1, got %q", location)
	}

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == pending.CookieName && c.Value == "ACME-42" {
			found = true
		}
	}

	if !found {
		t.Errorf("expected pending code cookie to be set")
	}
}
