// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orglink

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/mock/gomock"

	"github.com/canonical/access-service/internal/pending"
	"github.com/canonical/access-service/internal/session"
)

func TestAPI_CaptureMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		location string
	}{
		{
			name:     "strips the code",
			target:   "/welcome?org=ABC123&ref=mail",
			location: "/welcome?ref=mail",
		},
		{
			name:     "protocol relative path stays on host",
			target:   "//evil.example/phish?org=ABC123",
			location: "/evil.example/phish",
		},
		{
			name:     "backslash path stays on host",
			target:   "/\\evil.example/phish?org=ABC123",
			location: "/evil.example/phish",
		},
		{
			name:     "repeated slashes collapse",
			target:   "///evil.example?org=ABC123&tab=1",
			location: "/evil.example?tab=1",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAttacher := NewMockAttacherInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockAttacher.EXPECT().Capture(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, slot pending.SlotInterface, u *url.URL) (*url.URL, bool, error) {
					_ = slot.Set(ctx, u.Query().Get(CodeParam))
					return stripCode(u), true, nil
				},
			)

			api := NewAPI(mockAttacher, validator.New(validator.WithRequiredStructEnabled()), true, mockLogger)

			w := httptest.NewRecorder()
			api.CaptureMiddleware(http.NotFoundHandler()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, test.target, nil))

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != http.StatusSeeOther {
				t.Fatalf("expected status %d, got %d", http.StatusSeeOther, res.StatusCode)
			}
			if location := res.Header.Get("Location"); location != test.location {
				t.Errorf("expected redirect to %q, got %q", test.location, location)
			}

			cookies := res.Cookies()
			if len(cookies) != 1 || cookies[0].Name != pending.CookieName || cookies[0].Value != "ABC123" {
				t.Errorf("expected pending code cookie, got %v", cookies)
			}
		})
	}
}

func TestAPI_CaptureMiddlewarePassThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewAPI(NewMockAttacherInterface(ctrl), validator.New(), true, NewMockLoggerInterface(ctrl))

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := api.CaptureMiddleware(next)

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/welcome", nil),
		httptest.NewRequest(http.MethodPost, "/welcome?org=ABC123", nil),
	} {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		if w.Code != http.StatusTeapot {
			t.Errorf("expected %s %s to pass through, got %d", req.Method, req.URL, w.Code)
		}
	}
}

func TestAPI_Attach(t *testing.T) {
	alice := &session.Session{UserID: "user-1", Email: "alice@example.com"}

	tests := []struct {
		name           string
		body           string
		cookie         string
		session        *session.Session
		setupMocks     func(*MockAttacherInterface)
		expectedStatus int
		expectedState  string
	}{
		{
			name:    "attaches the pending cookie",
			cookie:  "VALID1",
			session: alice,
			setupMocks: func(a *MockAttacherInterface) {
				a.EXPECT().Attach(gomock.Any(), gomock.Any(), alice).DoAndReturn(
					func(ctx context.Context, slot pending.SlotInterface, _ *session.Session) (*Outcome, error) {
						code, _ := slot.Get(ctx)
						if code != "VALID1" {
							t.Errorf("expected cookie code, got %q", code)
						}
						_, _ = slot.CompareAndClear(ctx, code)
						return &Outcome{State: Attached, Code: code}, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
			expectedState:  "attached",
		},
		{
			name:    "body code replaces the cookie",
			body:    `{"code":"OTHER"}`,
			cookie:  "VALID1",
			session: alice,
			setupMocks: func(a *MockAttacherInterface) {
				a.EXPECT().Attach(gomock.Any(), gomock.Any(), alice).DoAndReturn(
					func(ctx context.Context, slot pending.SlotInterface, _ *session.Session) (*Outcome, error) {
						code, _ := slot.Get(ctx)
						if code != "OTHER" {
							t.Errorf("expected body code, got %q", code)
						}
						return &Outcome{State: OrgNotFound, Code: code}, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
			expectedState:  "org-not-found",
		},
		{
			name:   "no session keeps the code",
			cookie: "VALID1",
			setupMocks: func(a *MockAttacherInterface) {
				a.EXPECT().Attach(gomock.Any(), gomock.Any(), gomock.Nil()).Return(&Outcome{State: CodeCaptured, Code: "VALID1"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedState:  "code-captured",
		},
		{
			name:           "invalid body",
			body:           "not-json",
			setupMocks:     func(*MockAttacherInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid code",
			body:           `{"code":"` + strings.Repeat("A", 200) + `"}`,
			setupMocks:     func(*MockAttacherInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAttacher := NewMockAttacherInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			tt.setupMocks(mockAttacher)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/org-link/attach", bytes.NewBufferString(tt.body))
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: pending.CookieName, Value: tt.cookie})
			}
			if tt.session != nil {
				req = req.WithContext(session.WithSession(req.Context(), tt.session))
			}
			w := httptest.NewRecorder()

			mux := chi.NewMux()
			NewAPI(mockAttacher, validator.New(validator.WithRequiredStructEnabled()), false, mockLogger).RegisterEndpoints(mux)
			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, res.StatusCode)
			}

			if tt.expectedState == "" {
				return
			}

			var body struct {
				Data struct {
					State string `json:"state"`
				} `json:"data"`
			}
			if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if body.Data.State != tt.expectedState {
				t.Errorf("expected state %q, got %q", tt.expectedState, body.Data.State)
			}
		})
	}
}

func TestAPI_Pending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := NewAPI(NewMockAttacherInterface(ctrl), validator.New(), false, NewMockLoggerInterface(ctrl))

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/org-link", nil)
	req.AddCookie(&http.Cookie{Name: pending.CookieName, Value: "ABC123"})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	var body struct {
		Data PendingResponse `json:"data"`
	}
	if err := json.NewDecoder(w.Result().Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !body.Data.Pending || body.Data.Code != "ABC123" {
		t.Errorf("expected pending ABC123, got %+v", body.Data)
	}
	if body.Data.Notification == nil || body.Data.Notification.Title != "Organization link detected" {
		t.Errorf("expected link detected notification, got %+v", body.Data.Notification)
	}

	// nothing pending, nothing to announce
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/org-link", nil))

	body.Data = PendingResponse{}
	if err := json.NewDecoder(w.Result().Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Data.Pending || body.Data.Notification != nil {
		t.Errorf("expected nothing pending, got %+v", body.Data)
	}
}
