// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/monitoring"
	"github.com/canonical/access-service/internal/tracing"
)

// NewJWTAuthenticator builds the session verifier of access tokens issued by
// issuer. Keys come from jwksURL when set, from OIDC discovery otherwise.
func NewJWTAuthenticator(
	ctx context.Context,
	issuer string,
	jwksURL string,
	audience string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	if jwksURL != "" {
		idTokenVerifier, err := NewProviderWithJWKS(ctx, issuer, jwksURL, audience)
		if err != nil {
			return nil, fmt.Errorf("failed to create JWKS verifier: %v", err)
		}

		logger.Infof("JWT sessions enabled for issuer %s with keys from %s", issuer, jwksURL)
		return NewJWTVerifierDirect(idTokenVerifier, tracer, monitor, logger), nil
	}

	provider, err := NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %v", err)
	}

	logger.Infof("JWT sessions enabled for issuer %s through discovery", issuer)
	return NewJWTVerifier(provider, audience, tracer, monitor, logger), nil
}
