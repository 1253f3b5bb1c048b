// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"
	"testing"
	"time"
)

const identityHeader = "X-Kratos-Authenticated-Identity-Id"

// envelope mirrors the JSON response envelope of the service.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Status  int             `json:"status"`
}

// AccessClient drives the service as a browser of one identity would: it
// keeps cookies between calls and does not follow redirects.
type AccessClient struct {
	baseURL    string
	identityID string
	client     *http.Client
}

func baseURL() string {
	if u := os.Getenv("HTTP_BASE_URL"); u != "" {
		return u
	}
	if testEnv != nil {
		return testEnv.BaseURL
	}
	return defaultBaseURL
}

// newAccessClient returns a client signed in as identityID, anonymous when empty.
func newAccessClient(t *testing.T, identityID string) *AccessClient {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}

	return &AccessClient{
		baseURL:    baseURL(),
		identityID: identityID,
		client: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (c *AccessClient) Do(ctx context.Context, method, path string, body interface{}, headers map[string]string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.identityID != "" {
		req.Header.Set(identityHeader, c.identityID)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return c.client.Do(req)
}

// Get calls path and decodes the data of the response envelope into out.
func (c *AccessClient) Get(ctx context.Context, path string, out interface{}) (int, error) {
	resp, err := c.Do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, decodeEnvelope(resp.Body, out)
}

// Post sends body to path and decodes the data of the response envelope into out.
func (c *AccessClient) Post(ctx context.Context, path string, body, out interface{}) (int, error) {
	resp, err := c.Do(ctx, http.MethodPost, path, body, nil)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	return resp.StatusCode, decodeEnvelope(resp.Body, out)
}

func decodeEnvelope(r io.Reader, out interface{}) error {
	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	return json.Unmarshal(env.Data, out)
}

// signUp registers identityID in the fake Kratos and through the registration
// webhook, the way a new account comes to exist.
func signUp(t *testing.T, identityID, email string) {
	t.Helper()

	if testEnv == nil || testEnv.Kratos == nil {
		t.Skip("identities can only be registered against a managed environment")
	}

	testEnv.Kratos.SetIdentity(identityID, email)

	c := newAccessClient(t, "")
	resp, err := c.Do(
		context.Background(),
		http.MethodPost,
		"/api/v0/webhooks/registration",
		map[string]interface{}{"id": identityID, "traits": map[string]string{"email": email}},
		map[string]string{"Authorization": "Bearer " + webhookSecret},
	)
	if err != nil {
		t.Fatalf("registration webhook failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		t.Fatalf("registration webhook answered %d: %s", resp.StatusCode, string(b))
	}
}

func uniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}
