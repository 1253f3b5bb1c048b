// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orgadmin

import (
	"context"

	"github.com/canonical/access-service/internal/types"
)

type ServiceInterface interface {
	Resolve(ctx context.Context, email string) (*Result, error)
}

// StorageInterface is the subset of internal/storage used to find administered organizations.
type StorageInterface interface {
	GetOrganizationByAdminEmail(ctx context.Context, email string) (*types.Organization, error)
}
