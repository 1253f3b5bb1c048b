// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"strings"
	"testing"
)

type accessStatus struct {
	FullAccess bool `json:"full_access"`
	IsLegacy   bool `json:"is_legacy"`
	HasOrg     bool `json:"has_org"`
	Loading    bool `json:"loading"`
}

type attachOutcome struct {
	State string `json:"state"`
	Code  string `json:"code"`
}

func TestAnonymousHasNoAccess(t *testing.T) {
	var status accessStatus
	code, err := newAccessClient(t, "").Get(context.Background(), "/api/v0/access", &status)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if status.FullAccess || status.IsLegacy || status.HasOrg {
		t.Errorf("expected no access, got %+v", status)
	}
}

func TestNewUserHasNoAccess(t *testing.T) {
	id := uniqueID("newcomer")
	signUp(t, id, id+"@example.com")

	var status accessStatus
	if _, err := newAccessClient(t, id).Get(context.Background(), "/api/v0/access", &status); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if status.FullAccess {
		t.Errorf("expected a fresh profile without access, got %+v", status)
	}
}

func TestLegacySubscriberHasFullAccess(t *testing.T) {
	id := uniqueID("legacy")
	signUp(t, id, legacyEmail)

	var status accessStatus
	if _, err := newAccessClient(t, id).Get(context.Background(), "/api/v0/access", &status); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if !status.FullAccess || !status.IsLegacy || status.HasOrg {
		t.Errorf("expected legacy full access, got %+v", status)
	}
}

func TestOrganizationAdmin(t *testing.T) {
	id := uniqueID("admin")
	signUp(t, id, orgAdminEmail)

	var result struct {
		IsOrgAdmin bool `json:"is_org_admin"`
	}
	if _, err := newAccessClient(t, id).Get(context.Background(), "/api/v0/org-admin", &result); err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if !result.IsOrgAdmin {
		t.Errorf("expected %s to administer an organization", orgAdminEmail)
	}
}

// TestInviteLinkFlow follows an invite link while signed out, signs in and
// attaches the captured code.
func TestInviteLinkFlow(t *testing.T) {
	ctx := context.Background()
	id := uniqueID("invitee")
	signUp(t, id, id+"@example.com")

	c := newAccessClient(t, "")

	resp, err := c.Do(ctx, http.MethodGet, "/welcome?org="+orgCode+"&utm=mail", nil, nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected the invite link to redirect, got %d", resp.StatusCode)
	}
	if location := resp.Header.Get("Location"); strings.Contains(location, "org=") {
		t.Errorf("expected the code to be stripped from %q", location)
	}

	var pendingCode struct {
		Pending bool   `json:"pending"`
		Code    string `json:"code"`
	}
	if _, err := c.Get(ctx, "/api/v0/org-link", &pendingCode); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !pendingCode.Pending || pendingCode.Code != orgCode {
		t.Fatalf("expected %s to be pending, got %+v", orgCode, pendingCode)
	}

	var anonymous attachOutcome
	if _, err := c.Post(ctx, "/api/v0/org-link/attach", nil, &anonymous); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if anonymous.State != "code-captured" {
		t.Errorf("expected the code to stay captured while signed out, got %q", anonymous.State)
	}

	// sign in, keeping the cookies of the browser
	c.identityID = id

	var outcome attachOutcome
	if _, err := c.Post(ctx, "/api/v0/org-link/attach", nil, &outcome); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if outcome.State != "attached" {
		t.Fatalf("expected attached, got %q", outcome.State)
	}

	var status accessStatus
	if _, err := c.Get(ctx, "/api/v0/access", &status); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !status.FullAccess || !status.HasOrg {
		t.Errorf("expected organization access after attaching, got %+v", status)
	}

	if _, err := c.Get(ctx, "/api/v0/org-link", &pendingCode); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if pendingCode.Pending {
		t.Errorf("expected the pending code to be cleared, got %+v", pendingCode)
	}

	var organizationCode sql.NullString
	err = openDB(t).QueryRowContext(ctx,
		`SELECT o.code FROM profiles p JOIN organizations o ON o.id = p.organization_id WHERE p.user_id = $1`,
		id,
	).Scan(&organizationCode)
	if err != nil {
		t.Fatalf("failed to read profile: %v", err)
	}
	if organizationCode.String != orgCode {
		t.Errorf("expected profile to belong to %s, got %q", orgCode, organizationCode.String)
	}
}

func TestUnknownOrganizationCode(t *testing.T) {
	ctx := context.Background()
	id := uniqueID("lost")
	signUp(t, id, id+"@example.com")

	c := newAccessClient(t, id)

	var outcome attachOutcome
	code, err := c.Post(ctx, "/api/v0/org-link/attach", map[string]string{"code": "NOPE-" + id}, &outcome)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if code != http.StatusOK || outcome.State != "org-not-found" {
		t.Errorf("expected org-not-found, got %d %q", code, outcome.State)
	}
}

func TestAccessTokenHookClaims(t *testing.T) {
	ctx := context.Background()
	id := uniqueID("token")
	signUp(t, id, legacyEmail)

	resp, err := newAccessClient(t, "").Do(
		ctx,
		http.MethodPost,
		"/api/v0/webhooks/access-token",
		map[string]interface{}{"user_id": id, "claims": map[string]interface{}{"email": legacyEmail}},
		map[string]string{"Authorization": "Bearer " + webhookSecret},
	)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	for _, claim := range []string{`"full_access":true`, `"is_legacy":true`, `"email":"` + legacyEmail + `"`} {
		if !strings.Contains(string(body), claim) {
			t.Errorf("expected %s in %s", claim, string(body))
		}
	}
}
