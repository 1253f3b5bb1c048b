// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/access-service/internal/db"
	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/monitoring"
	"github.com/canonical/access-service/internal/tracing"
	"github.com/canonical/access-service/pkg/access"
	"github.com/canonical/access-service/pkg/metrics"
	"github.com/canonical/access-service/pkg/orgadmin"
	"github.com/canonical/access-service/pkg/orglink"
	"github.com/canonical/access-service/pkg/status"
	"github.com/canonical/access-service/pkg/webhooks"
)

// Config holds the router settings sourced from the environment.
type Config struct {
	CORSAllowedOrigins []string
	CookieSecure       bool
	WebhookSecret      string
}

// NewRouter builds the HTTP handler. Session scoped APIs sit behind the
// sessions middleware; webhooks, metrics and status do not.
func NewRouter(
	accessService access.ServiceInterface,
	adminService orgadmin.ServiceInterface,
	attacher orglink.AttacherInterface,
	hooks webhooks.ServiceInterface,
	sessions func(http.Handler) http.Handler,
	dbClient db.DBClientInterface,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()
	validate := validator.New(validator.WithRequiredStructEnabled())

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
	)

	router.Use(middlewares...)

	var pinger status.PingerInterface
	if dbClient != nil {
		pinger = dbClient
	}

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(pinger, tracer, monitor, logger).RegisterEndpoints(router)
	webhooks.NewAPI(hooks, validate, cfg.WebhookSecret, logger).RegisterEndpoints(router)

	orgLinkAPI := orglink.NewAPI(attacher, validate, cfg.CookieSecure, logger)

	sessionMux := chi.NewMux()
	sessionMux.Use(sessions, orgLinkAPI.CaptureMiddleware)
	if dbClient != nil {
		sessionMux.Use(db.TransactionMiddleware(dbClient, logger))
	}

	access.NewAPI(accessService, logger).RegisterEndpoints(sessionMux)
	orgadmin.NewAPI(adminService, logger).RegisterEndpoints(sessionMux)
	orgLinkAPI.RegisterEndpoints(sessionMux)

	router.Mount("/", sessionMux)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
