// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/canonical/access-service/internal/session"
	"github.com/canonical/access-service/internal/types"
)

type ServiceInterface interface {
	LookupProfile(ctx context.Context, userID string) (*types.Profile, error)
	CheckLegacy(ctx context.Context, email string) (bool, error)
	Resolve(ctx context.Context, s *session.Session) *Status
}

// ProfileStoreInterface is the subset of internal/storage used to read profiles.
type ProfileStoreInterface interface {
	GetProfileByUserID(ctx context.Context, userID string) (*types.Profile, error)
}

// LegacyStoreInterface is satisfied by both the storage and its legacy cache.
type LegacyStoreInterface interface {
	IsLegacySubscriber(ctx context.Context, email string) (bool, error)
}
