// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	TracingSampleRatio float64 `envconfig:"tracing_sample_ratio" default:"1"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// AuthenticationEnabled switches session resolution from the trusted
	// Kratos identity header to verified JWT bearer tokens.
	AuthenticationEnabled bool   `envconfig:"authentication_enabled" default:"false"`
	AuthenticationIssuer  string `envconfig:"authentication_issuer"`
	AuthenticationJWKSURL string `envconfig:"authentication_jwks_url"`
	AuthenticationAud     string `envconfig:"authentication_allowed_audience" default:"authenticated"`

	KratosAdminURL string `envconfig:"kratos_admin_url"`

	LegacyCacheSize int           `envconfig:"legacy_cache_size" default:"1024"`
	LegacyCacheTTL  time.Duration `envconfig:"legacy_cache_ttl" default:"5m"`
	LookupTimeout   time.Duration `envconfig:"lookup_timeout" default:"10s"`

	CookieSecure       bool     `envconfig:"cookie_secure" default:"true"`
	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`
	InviteBaseURL      string   `envconfig:"invite_base_url" default:"http://localhost:3000/"`

	WebhookSecret string `envconfig:"webhook_secret"`
}
