// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"

	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/monitoring"
	"github.com/canonical/access-service/internal/session"
	"github.com/canonical/access-service/internal/tracing"
)

const (
	// HeaderName is the header used to pass the authenticated identity ID
	HeaderName = "X-Kratos-Authenticated-Identity-Id"
)

// EmailResolverInterface is the subset of the kratos client used to complete sessions.
type EmailResolverInterface interface {
	GetIdentityEmail(ctx context.Context, id string) (string, error)
}

type Middleware struct {
	emails EmailResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(emails EmailResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		emails:  emails,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware builds the session of the identity forwarded by the proxy.
// When the email cannot be resolved the session carries none.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		userID := r.Header.Get(HeaderName)
		if userID == "" {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		email, err := m.emails.GetIdentityEmail(ctx, userID)
		if err != nil {
			m.logger.Warnf("failed to resolve email of identity %s: %v", userID, err)
		}

		ctx = session.WithSession(ctx, &session.Session{UserID: userID, Email: email})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
