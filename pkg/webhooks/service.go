// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"
	"maps"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/monitoring"
	"github.com/canonical/access-service/internal/session"
	"github.com/canonical/access-service/internal/tracing"
	"github.com/canonical/access-service/pkg/access"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	access  AccessResolverInterface
	admins  AdminResolverInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	access AccessResolverInterface,
	admins AdminResolverInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		access:  access,
		admins:  admins,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleRegistration creates the empty profile of a newly registered identity.
func (s *Service) HandleRegistration(ctx context.Context, identityID, email string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	s.logger.Debugf("Handling registration for identity %s with email %s", identityID, email)

	if identityID == "" {
		return fmt.Errorf("identity ID is empty")
	}

	profile, err := s.storage.CreateProfile(ctx, identityID)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	s.logger.Infof("Successfully provisioned profile %s for user %s", profile.ID, identityID)
	return nil
}

// HandleAccessTokenHook adds the access tier of the user to the token claims.
// Failed lookups yield false claims, the token is still issued.
func (s *Service) HandleAccessTokenHook(ctx context.Context, req *AccessTokenHookRequest) (*AccessTokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleAccessTokenHook")
	defer span.End()

	if req == nil || req.UserID == "" {
		return nil, fmt.Errorf("user ID is empty")
	}

	email, _ := req.Claims["email"].(string)
	sess := &session.Session{UserID: req.UserID, Email: email}

	var (
		g       errgroup.Group
		status  *access.Status
		isAdmin bool
	)

	g.Go(func() error {
		status = s.access.Resolve(ctx, sess)
		return nil
	})

	g.Go(func() error {
		result, err := s.admins.Resolve(ctx, email)
		if err != nil {
			s.logger.Errorf("Failed to resolve organization admin for user %s: %v", req.UserID, err)
			return nil
		}

		isAdmin = result.IsOrgAdmin
		return nil
	})

	_ = g.Wait()

	if status == nil {
		status = new(access.Status)
	}

	claims := maps.Clone(req.Claims)
	if claims == nil {
		claims = make(map[string]interface{})
	}

	claims[ClaimFullAccess] = status.FullAccess
	claims[ClaimIsLegacy] = status.IsLegacy
	claims[ClaimHasOrg] = status.HasOrg
	claims[ClaimOrgAdmin] = isAdmin

	return &AccessTokenHookResponse{Claims: claims}, nil
}
