// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/access-service/internal/session"
	"github.com/canonical/access-service/internal/types"
	"github.com/canonical/access-service/pkg/access"
	"github.com/canonical/access-service/pkg/orgadmin"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_HandleRegistration(t *testing.T) {
	identityID := "identity-123"
	email := "user@example.com"

	testCases := []struct {
		name        string
		identityID  string
		email       string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name:       "success",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockStorage.EXPECT().CreateProfile(gomock.Any(), identityID).Return(&types.Profile{ID: "profile-1", UserID: identityID}, nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: false,
		},
		{
			name:       "success - empty email",
			identityID: identityID,
			email:      "",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockStorage.EXPECT().CreateProfile(gomock.Any(), identityID).Return(&types.Profile{ID: "profile-1", UserID: identityID}, nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: false,
		},
		{
			name:       "error - empty identity id",
			identityID: "",
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
		{
			name:       "error - storage failure",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockStorage.EXPECT().CreateProfile(gomock.Any(), identityID).Return(nil, errors.New("db error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAccess := NewMockAccessResolverInterface(ctrl)
			mockAdmins := NewMockAdminResolverInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleRegistration").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			svc := NewService(mockStorage, mockAccess, mockAdmins, mockTracer, mockMonitor, mockLogger)
			err := svc.HandleRegistration(context.Background(), tc.identityID, tc.email)

			if (err != nil) != tc.expectedErr {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_HandleAccessTokenHook(t *testing.T) {
	testCases := []struct {
		name        string
		req         *AccessTokenHookRequest
		setupMocks  func(*MockAccessResolverInterface, *MockAdminResolverInterface, *MockLoggerInterface)
		expected    map[string]interface{}
		expectedErr bool
	}{
		{
			name: "organization admin with full access",
			req: &AccessTokenHookRequest{
				UserID: "user-1",
				Claims: map[string]interface{}{"email": "boss@acme.com", "role": "authenticated"},
			},
			setupMocks: func(a *MockAccessResolverInterface, o *MockAdminResolverInterface, _ *MockLoggerInterface) {
				a.EXPECT().Resolve(gomock.Any(), &session.Session{UserID: "user-1", Email: "boss@acme.com"}).
					Return(&access.Status{FullAccess: true, HasOrg: true})
				o.EXPECT().Resolve(gomock.Any(), "boss@acme.com").Return(&orgadmin.Result{IsOrgAdmin: true}, nil)
			},
			expected: map[string]interface{}{
				"email":         "boss@acme.com",
				"role":          "authenticated",
				ClaimFullAccess: true,
				ClaimIsLegacy:   false,
				ClaimHasOrg:     true,
				ClaimOrgAdmin:   true,
			},
		},
		{
			name: "admin lookup failure is not admin",
			req:  &AccessTokenHookRequest{UserID: "user-1"},
			setupMocks: func(a *MockAccessResolverInterface, o *MockAdminResolverInterface, l *MockLoggerInterface) {
				a.EXPECT().Resolve(gomock.Any(), &session.Session{UserID: "user-1"}).Return(&access.Status{})
				o.EXPECT().Resolve(gomock.Any(), "").Return(&orgadmin.Result{}, errors.New("timeout"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expected: map[string]interface{}{
				ClaimFullAccess: false,
				ClaimIsLegacy:   false,
				ClaimHasOrg:     false,
				ClaimOrgAdmin:   false,
			},
		},
		{
			name:        "missing user id",
			req:         &AccessTokenHookRequest{},
			setupMocks:  func(*MockAccessResolverInterface, *MockAdminResolverInterface, *MockLoggerInterface) {},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAccess := NewMockAccessResolverInterface(ctrl)
			mockAdmins := NewMockAdminResolverInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleAccessTokenHook").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockAccess, mockAdmins, mockLogger)

			svc := NewService(mockStorage, mockAccess, mockAdmins, mockTracer, mockMonitor, mockLogger)
			resp, err := svc.HandleAccessTokenHook(context.Background(), tc.req)

			if (err != nil) != tc.expectedErr {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
			if tc.expectedErr {
				return
			}

			if len(resp.Claims) != len(tc.expected) {
				t.Errorf("expected %d claims, got %v", len(tc.expected), resp.Claims)
			}
			for k, v := range tc.expected {
				if resp.Claims[k] != v {
					t.Errorf("expected claim %s=%v, got %v", k, v, resp.Claims[k])
				}
			}
		})
	}
}
