// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
)

// TestServiceEndpoints checks the endpoints served outside of sessions.
func TestServiceEndpoints(t *testing.T) {
	ctx := context.Background()
	c := newAccessClient(t, "")

	for _, path := range []string{"/api/v0/status", "/api/v0/ready", "/api/v0/version"} {
		t.Run(path, func(t *testing.T) {
			status, err := c.Get(ctx, path, nil)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if status != http.StatusOK {
				t.Errorf("expected 200, got %d", status)
			}
		})
	}

	t.Run("/api/v0/metrics", func(t *testing.T) {
		resp, err := c.Do(ctx, http.MethodGet, "/api/v0/metrics", nil, nil)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if !strings.Contains(string(body), "http_response_time_seconds") {
			t.Errorf("expected response time metric to be exposed")
		}
	})
}

// TestWebhookAuthentication tests that webhooks require the shared secret.
func TestWebhookAuthentication(t *testing.T) {
	ctx := context.Background()
	c := newAccessClient(t, "")

	body := map[string]interface{}{"user_id": "someone", "claims": map[string]interface{}{}}

	t.Run("Request Without Secret Should Fail", func(t *testing.T) {
		resp, err := c.Do(ctx, http.MethodPost, "/api/v0/webhooks/access-token", body, nil)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401 without secret, got %d", resp.StatusCode)
		}
	})

	t.Run("Request With Secret Should Succeed", func(t *testing.T) {
		resp, err := c.Do(ctx, http.MethodPost, "/api/v0/webhooks/access-token", body, map[string]string{"Authorization": "Bearer " + webhookSecret})
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			t.Fatalf("expected 200 with secret, got %d: %s", resp.StatusCode, string(b))
		}

		var result struct {
			Claims map[string]interface{} `json:"claims"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}

		if result.Claims["full_access"] != false {
			t.Errorf("expected an unknown user to have no access, got %v", result.Claims)
		}
	})
}
