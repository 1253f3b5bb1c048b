// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/access-service/internal/types"
)

type StorageInterface interface {
	GetProfileByUserID(ctx context.Context, userID string) (*types.Profile, error)
	CreateProfile(ctx context.Context, userID string) (*types.Profile, error)
	SetProfileOrganization(ctx context.Context, userID, organizationID string) error
	GetOrganizationByCode(ctx context.Context, code string) (*types.Organization, error)
	GetOrganizationByAdminEmail(ctx context.Context, email string) (*types.Organization, error)
	CreateOrganization(ctx context.Context, org *types.Organization) (*types.Organization, error)
	IsLegacySubscriber(ctx context.Context, email string) (bool, error)
	AddLegacySubscriber(ctx context.Context, email string) error
}

// LegacyStoreInterface is the subset of the storage LegacyCache memoizes.
type LegacyStoreInterface interface {
	IsLegacySubscriber(ctx context.Context, email string) (bool, error)
}
