// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"fmt"
	"net/http"

	ory "github.com/ory/client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/monitoring"
	"github.com/canonical/access-service/internal/tracing"
)

type ClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	GetIdentityEmail(ctx context.Context, id string) (string, error)
}

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	conf.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// GetIdentityIDByEmail returns the id of the identity using email, empty when there is none.
func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentityIDByEmail")
	defer span.End()

	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.client.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", nil
		}
		c.setAvailability(false)
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	c.setAvailability(true)

	if len(ids) == 0 {
		return "", nil
	}

	return ids[0].Id, nil
}

// GetIdentityEmail returns the email trait of an identity, empty when it has none.
func (c *Client) GetIdentityEmail(ctx context.Context, id string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentityEmail")
	defer span.End()

	identity, _, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		c.setAvailability(false)
		return "", fmt.Errorf("failed to get identity: %w", err)
	}

	c.setAvailability(true)

	return EmailTrait(identity.Traits), nil
}

func (c *Client) setAvailability(up bool) {
	v := 0.0
	if up {
		v = 1.0
	}

	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, v); err != nil {
		c.logger.Debugf("failed to set kratos availability: %v", err)
	}
}

// EmailTrait extracts the email from identity traits.
func EmailTrait(traits interface{}) string {
	t, ok := traits.(map[string]interface{})
	if !ok {
		return ""
	}

	email, _ := t["email"].(string)
	return email
}
