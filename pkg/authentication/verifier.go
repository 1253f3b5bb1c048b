// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/monitoring"
	"github.com/canonical/access-service/internal/session"
	"github.com/canonical/access-service/internal/tracing"
)

// Claims are the access token claims a session is built from.
type Claims struct {
	Subject string `json:"sub"`
	Email   string `json:"email"`
}

// Session maps claims to a session, rejecting tokens without a subject.
func (c *Claims) Session() (*session.Session, error) {
	if c.Subject == "" {
		return nil, fmt.Errorf("unauthorized: token has no subject")
	}

	return &session.Session{UserID: c.Subject, Email: c.Email}, nil
}

type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*session.Session, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	var claims Claims
	if err := token.Claims(&claims); err != nil {
		v.logger.Debugf("Failed to extract claims: %v", err)
		return nil, err
	}

	s, err := claims.Session()
	if err != nil {
		v.logger.Security().AuthzFailure(claims.Subject, "jwt_api_access")
		return nil, err
	}

	return s, nil
}

func NewJWTVerifier(
	provider ProviderInterface,
	audience string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := &JWTVerifier{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}

	v.verifier = provider.Verifier(verifierConfig(audience))

	return v
}

func NewJWTVerifierDirect(
	verifier *oidc.IDTokenVerifier,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
