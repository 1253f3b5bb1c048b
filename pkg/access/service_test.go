// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/access-service/internal/session"
	"github.com/canonical/access-service/internal/storage"
	"github.com/canonical/access-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_access.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func strPtr(s string) *string {
	return &s
}

func TestService_Resolve(t *testing.T) {
	alice := &session.Session{UserID: "user-1", Email: "alice@example.com"}
	noEmail := &session.Session{UserID: "user-1"}

	withOrg := &types.Profile{ID: "profile-1", UserID: "user-1", OrganizationID: strPtr("org-1")}
	withoutOrg := &types.Profile{ID: "profile-1", UserID: "user-1"}

	tests := []struct {
		name       string
		session    *session.Session
		setupMocks func(*MockProfileStoreInterface, *MockLegacyStoreInterface, *MockLoggerInterface)
		expected   Status
	}{
		{
			name:       "no session",
			session:    nil,
			setupMocks: func(*MockProfileStoreInterface, *MockLegacyStoreInterface, *MockLoggerInterface) {},
			expected:   Status{},
		},
		{
			name:    "legacy subscriber without organization",
			session: alice,
			setupMocks: func(p *MockProfileStoreInterface, l *MockLegacyStoreInterface, _ *MockLoggerInterface) {
				p.EXPECT().GetProfileByUserID(gomock.Any(), "user-1").Return(withoutOrg, nil)
				l.EXPECT().IsLegacySubscriber(gomock.Any(), "alice@example.com").Return(true, nil)
			},
			expected: Status{FullAccess: true, IsLegacy: true},
		},
		{
			name:    "organization member",
			session: alice,
			setupMocks: func(p *MockProfileStoreInterface, l *MockLegacyStoreInterface, _ *MockLoggerInterface) {
				p.EXPECT().GetProfileByUserID(gomock.Any(), "user-1").Return(withOrg, nil)
				l.EXPECT().IsLegacySubscriber(gomock.Any(), "alice@example.com").Return(false, nil)
			},
			expected: Status{FullAccess: true, HasOrg: true},
		},
		{
			name:    "no profile and not legacy",
			session: alice,
			setupMocks: func(p *MockProfileStoreInterface, l *MockLegacyStoreInterface, _ *MockLoggerInterface) {
				p.EXPECT().GetProfileByUserID(gomock.Any(), "user-1").Return(nil, storage.ErrNotFound)
				l.EXPECT().IsLegacySubscriber(gomock.Any(), "alice@example.com").Return(false, nil)
			},
			expected: Status{},
		},
		{
			name:    "profile lookup failure counts as no organization",
			session: alice,
			setupMocks: func(p *MockProfileStoreInterface, l *MockLegacyStoreInterface, logger *MockLoggerInterface) {
				p.EXPECT().GetProfileByUserID(gomock.Any(), "user-1").Return(nil, errors.New("connection refused"))
				l.EXPECT().IsLegacySubscriber(gomock.Any(), "alice@example.com").Return(true, nil)
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expected: Status{FullAccess: true, IsLegacy: true},
		},
		{
			name:    "legacy check failure counts as not legacy",
			session: alice,
			setupMocks: func(p *MockProfileStoreInterface, l *MockLegacyStoreInterface, logger *MockLoggerInterface) {
				p.EXPECT().GetProfileByUserID(gomock.Any(), "user-1").Return(withOrg, nil)
				l.EXPECT().IsLegacySubscriber(gomock.Any(), "alice@example.com").Return(true, errors.New("timeout"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expected: Status{FullAccess: true, HasOrg: true},
		},
		{
			name:    "both lookups failing",
			session: alice,
			setupMocks: func(p *MockProfileStoreInterface, l *MockLegacyStoreInterface, logger *MockLoggerInterface) {
				p.EXPECT().GetProfileByUserID(gomock.Any(), "user-1").Return(nil, errors.New("boom"))
				l.EXPECT().IsLegacySubscriber(gomock.Any(), "alice@example.com").Return(false, errors.New("boom"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
			},
			expected: Status{},
		},
		{
			name:    "missing email skips the legacy check",
			session: noEmail,
			setupMocks: func(p *MockProfileStoreInterface, _ *MockLegacyStoreInterface, _ *MockLoggerInterface) {
				p.EXPECT().GetProfileByUserID(gomock.Any(), "user-1").Return(withoutOrg, nil)
			},
			expected: Status{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockProfiles := NewMockProfileStoreInterface(ctrl)
			mockLegacy := NewMockLegacyStoreInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

			test.setupMocks(mockProfiles, mockLegacy, mockLogger)

			s := NewService(mockProfiles, mockLegacy, time.Second, mockTracer, mockMonitor, mockLogger)

			status := s.Resolve(context.Background(), test.session)

			if status == nil {
				t.Fatalf("expected a status, got nil")
			}
			if *status != test.expected {
				t.Errorf("expected %+v, got %+v", test.expected, *status)
			}
		})
	}
}

func TestService_LookupProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfiles := NewMockProfileStoreInterface(ctrl)
	mockLegacy := NewMockLegacyStoreInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "access.Service.LookupProfile").Return(context.Background(), trace.SpanFromContext(context.Background())).Times(3)

	s := NewService(mockProfiles, mockLegacy, 0, mockTracer, mockMonitor, mockLogger)

	if p, err := s.LookupProfile(context.Background(), ""); p != nil || err != nil {
		t.Errorf("expected no lookup for an empty user id, got %v %v", p, err)
	}

	mockProfiles.EXPECT().GetProfileByUserID(gomock.Any(), "user-1").Return(nil, storage.ErrNotFound)
	if p, err := s.LookupProfile(context.Background(), "user-1"); p != nil || err != nil {
		t.Errorf("expected not found to be a nil profile, got %v %v", p, err)
	}

	dbErr := errors.New("db down")
	mockProfiles.EXPECT().GetProfileByUserID(gomock.Any(), "user-1").Return(nil, dbErr)
	if _, err := s.LookupProfile(context.Background(), "user-1"); !errors.Is(err, dbErr) {
		t.Errorf("expected wrapped %v, got %v", dbErr, err)
	}
}

func TestService_CheckLegacyTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProfiles := NewMockProfileStoreInterface(ctrl)
	mockLegacy := NewMockLegacyStoreInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "access.Service.CheckLegacy").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockLegacy.EXPECT().IsLegacySubscriber(gomock.Any(), "slow@example.com").DoAndReturn(
		func(ctx context.Context, _ string) (bool, error) {
			<-ctx.Done()
			return false, ctx.Err()
		},
	)

	s := NewService(mockProfiles, mockLegacy, 10*time.Millisecond, mockTracer, mockMonitor, mockLogger)

	legacy, err := s.CheckLegacy(context.Background(), "slow@example.com")
	if legacy {
		t.Errorf("expected a timed out check to be false")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}
