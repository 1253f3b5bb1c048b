// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgadmin

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/monitoring"
	"github.com/canonical/access-service/internal/storage"
	"github.com/canonical/access-service/internal/tracing"
	"github.com/canonical/access-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

// Result tells whether an email administers an organization.
type Result struct {
	Organization *types.Organization `json:"organization"`
	IsOrgAdmin   bool                `json:"is_org_admin"`
}

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Resolve looks up the organization administered by email. The comparison is
// exact. When several organizations share the admin email the oldest wins.
// On failure the result is still non admin and the error is returned.
func (s *Service) Resolve(ctx context.Context, email string) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "orgadmin.Service.Resolve")
	defer span.End()

	if email == "" {
		return &Result{}, nil
	}

	org, err := s.storage.GetOrganizationByAdminEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return &Result{}, nil
	}

	if err != nil {
		s.logger.Errorf("failed to look up organization administered by %s: %v", email, err)
		return &Result{}, fmt.Errorf("failed to look up administered organization: %w", err)
	}

	return &Result{Organization: org, IsOrgAdmin: true}, nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
