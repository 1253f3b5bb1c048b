// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Profile struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	OrganizationID *string   `db:"organization_id" json:"organization_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// HasOrganization reports whether the profile is attached to an organization.
func (p *Profile) HasOrganization() bool {
	return p != nil && p.OrganizationID != nil && *p.OrganizationID != ""
}

// InOrganization reports whether the profile is already attached to orgID.
func (p *Profile) InOrganization(orgID string) bool {
	return p.HasOrganization() && *p.OrganizationID == orgID
}

type Organization struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Code       string    `db:"code" json:"code"`
	Type       string    `db:"type" json:"type"`
	AdminEmail string    `db:"admin_email" json:"-"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type LegacySubscriber struct {
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
