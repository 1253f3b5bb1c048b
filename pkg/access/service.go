// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/monitoring"
	"github.com/canonical/access-service/internal/session"
	"github.com/canonical/access-service/internal/storage"
	"github.com/canonical/access-service/internal/tracing"
	"github.com/canonical/access-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	profiles ProfileStoreInterface
	legacy   LegacyStoreInterface
	timeout  time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// LookupProfile returns the profile of userID, nil when the user has none.
func (s *Service) LookupProfile(ctx context.Context, userID string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.LookupProfile")
	defer span.End()

	if userID == "" {
		return nil, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	profile, err := s.profiles.GetProfileByUserID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	return profile, nil
}

// CheckLegacy reports whether email belongs to a legacy subscriber.
func (s *Service) CheckLegacy(ctx context.Context, email string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.CheckLegacy")
	defer span.End()

	if email == "" {
		return false, nil
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	legacy, err := s.legacy.IsLegacySubscriber(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to check legacy subscriber: %w", err)
	}

	return legacy, nil
}

// Resolve runs both lookups concurrently and waits for them to settle.
// Failed lookups count as false.
func (s *Service) Resolve(ctx context.Context, sess *session.Session) *Status {
	ctx, span := s.tracer.Start(ctx, "access.Service.Resolve")
	defer span.End()

	if sess == nil || sess.UserID == "" {
		status := NewStatus(false, false, false)
		return &status
	}

	var (
		g        errgroup.Group
		hasOrg   bool
		isLegacy bool
	)

	g.Go(func() error {
		profile, err := s.LookupProfile(ctx, sess.UserID)
		if err != nil {
			s.logger.Errorf("profile lookup for user %s failed: %v", sess.UserID, err)
			return nil
		}

		hasOrg = profile.HasOrganization()
		return nil
	})

	if sess.HasEmail() {
		g.Go(func() error {
			legacy, err := s.CheckLegacy(ctx, sess.Email)
			if err != nil {
				s.logger.Errorf("legacy check for user %s failed: %v", sess.UserID, err)
				return nil
			}

			isLegacy = legacy
			return nil
		})
	}

	_ = g.Wait()

	status := NewStatus(isLegacy, hasOrg, false)
	return &status
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, s.timeout)
}

func NewService(
	profiles ProfileStoreInterface,
	legacy LegacyStoreInterface,
	timeout time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		profiles: profiles,
		legacy:   legacy,
		timeout:  timeout,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
