// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/access-service/internal/session"
	"github.com/canonical/access-service/internal/types"
	"github.com/canonical/access-service/pkg/access"
	"github.com/canonical/access-service/pkg/orgadmin"
)

// StorageInterface defines the storage operations required by the webhooks package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	CreateProfile(ctx context.Context, userID string) (*types.Profile, error)
}

// AccessResolverInterface is the subset of pkg/access used to enrich tokens.
type AccessResolverInterface interface {
	Resolve(ctx context.Context, s *session.Session) *access.Status
}

// AdminResolverInterface is the subset of pkg/orgadmin used to enrich tokens.
type AdminResolverInterface interface {
	Resolve(ctx context.Context, email string) (*orgadmin.Result, error)
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email string) error
	HandleAccessTokenHook(ctx context.Context, req *AccessTokenHookRequest) (*AccessTokenHookResponse, error)
}
