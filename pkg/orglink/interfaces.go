// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package orglink

import (
	"context"
	"net/url"

	"github.com/canonical/access-service/internal/pending"
	"github.com/canonical/access-service/internal/session"
	"github.com/canonical/access-service/internal/types"
)

type AttacherInterface interface {
	Capture(ctx context.Context, slot pending.SlotInterface, u *url.URL) (*url.URL, bool, error)
	Attach(ctx context.Context, slot pending.SlotInterface, s *session.Session) (*Outcome, error)
}

// StorageInterface is the subset of internal/storage used to link profiles.
type StorageInterface interface {
	GetOrganizationByCode(ctx context.Context, code string) (*types.Organization, error)
	GetProfileByUserID(ctx context.Context, userID string) (*types.Profile, error)
	SetProfileOrganization(ctx context.Context, userID, organizationID string) error
}

// TxRunnerInterface runs fn in a transaction carried by its context.
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
