// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

// Status is the access tier of a session.
type Status struct {
	FullAccess bool `json:"full_access"`
	IsLegacy   bool `json:"is_legacy"`
	HasOrg     bool `json:"has_org"`
	Loading    bool `json:"loading"`
}

// NewStatus derives FullAccess, which stays false until nothing is loading.
func NewStatus(isLegacy, hasOrg, loading bool) Status {
	return Status{
		FullAccess: !loading && (isLegacy || hasOrg),
		IsLegacy:   isLegacy,
		HasOrg:     hasOrg,
		Loading:    loading,
	}
}
