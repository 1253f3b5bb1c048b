// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

type KratosIdentity struct {
	ID     string       `json:"id"`
	Traits KratosTraits `json:"traits"`
}

type KratosTraits struct {
	Email string `json:"email"`
}

// AccessTokenHookRequest is the payload of the auth provider custom access token hook.
type AccessTokenHookRequest struct {
	UserID               string                 `json:"user_id" validate:"required"`
	Claims               map[string]interface{} `json:"claims"`
	AuthenticationMethod string                 `json:"authentication_method,omitempty"`
}

// AccessTokenHookResponse carries the claims to sign into the access token.
type AccessTokenHookResponse struct {
	Claims map[string]interface{} `json:"claims"`
}

const (
	ClaimFullAccess = "full_access"
	ClaimIsLegacy   = "is_legacy"
	ClaimHasOrg     = "has_org"
	ClaimOrgAdmin   = "org_admin"
)
