// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgadmin

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/access-service/internal/storage"
	"github.com/canonical/access-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package orgadmin -destination ./mock_orgadmin.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package orgadmin -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package orgadmin -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package orgadmin -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_Resolve(t *testing.T) {
	org := &types.Organization{ID: "org-1", Name: "Acme", Code: "ACME", AdminEmail: "boss@acme.com"}

	tests := []struct {
		name        string
		email       string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expected    Result
		expectedErr bool
	}{
		{
			name:       "no email",
			email:      "",
			setupMocks: func(*MockStorageInterface, *MockLoggerInterface) {},
			expected:   Result{},
		},
		{
			name:  "admin",
			email: "boss@acme.com",
			setupMocks: func(s *MockStorageInterface, _ *MockLoggerInterface) {
				s.EXPECT().GetOrganizationByAdminEmail(gomock.Any(), "boss@acme.com").Return(org, nil)
			},
			expected: Result{Organization: org, IsOrgAdmin: true},
		},
		{
			name:  "not an admin",
			email: "worker@acme.com",
			setupMocks: func(s *MockStorageInterface, _ *MockLoggerInterface) {
				s.EXPECT().GetOrganizationByAdminEmail(gomock.Any(), "worker@acme.com").Return(nil, storage.ErrNotFound)
			},
			expected: Result{},
		},
		{
			name:  "case differs",
			email: "Boss@acme.com",
			setupMocks: func(s *MockStorageInterface, _ *MockLoggerInterface) {
				s.EXPECT().GetOrganizationByAdminEmail(gomock.Any(), "Boss@acme.com").Return(nil, storage.ErrNotFound)
			},
			expected: Result{},
		},
		{
			name:  "lookup failure",
			email: "boss@acme.com",
			setupMocks: func(s *MockStorageInterface, logger *MockLoggerInterface) {
				s.EXPECT().GetOrganizationByAdminEmail(gomock.Any(), "boss@acme.com").Return(nil, errors.New("timeout"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expected:    Result{},
			expectedErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "orgadmin.Service.Resolve").Return(context.Background(), trace.SpanFromContext(context.Background()))
			test.setupMocks(mockStorage, mockLogger)

			result, err := NewService(mockStorage, mockTracer, mockMonitor, mockLogger).Resolve(context.Background(), test.email)

			if (err != nil) != test.expectedErr {
				t.Fatalf("expected error %v, got %v", test.expectedErr, err)
			}
			if result == nil {
				t.Fatalf("expected a result, got nil")
			}
			if result.IsOrgAdmin != test.expected.IsOrgAdmin {
				t.Errorf("expected is_org_admin %v, got %v", test.expected.IsOrgAdmin, result.IsOrgAdmin)
			}
			if result.Organization != test.expected.Organization {
				t.Errorf("expected organization %v, got %v", test.expected.Organization, result.Organization)
			}
		})
	}
}
