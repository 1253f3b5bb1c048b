// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/access-service/internal/config"
	"github.com/canonical/access-service/internal/db"
	"github.com/canonical/access-service/internal/identity"
	"github.com/canonical/access-service/internal/kratos"
	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/monitoring/prometheus"
	"github.com/canonical/access-service/internal/notify"
	"github.com/canonical/access-service/internal/storage"
	"github.com/canonical/access-service/internal/tracing"
	"github.com/canonical/access-service/pkg/access"
	"github.com/canonical/access-service/pkg/authentication"
	"github.com/canonical/access-service/pkg/orgadmin"
	"github.com/canonical/access-service/pkg/orglink"
	"github.com/canonical/access-service/pkg/web"
	"github.com/canonical/access-service/pkg/webhooks"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("access-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, specs.TracingSampleRatio, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	legacyCache := storage.NewLegacyCache(s, specs.LegacyCacheSize, specs.LegacyCacheTTL, tracer, logger)

	accessService := access.NewService(s, legacyCache, specs.LookupTimeout, tracer, monitor, logger)
	adminService := orgadmin.NewService(s, tracer, monitor, logger)
	attacher := orglink.NewAttacher(s, dbClient, notify.NewLoggerNotifier(logger), tracer, monitor, logger)
	hooks := webhooks.NewService(s, accessService, adminService, tracer, monitor, logger)

	var sessions func(http.Handler) http.Handler
	switch {
	case specs.AuthenticationEnabled && specs.Debug && specs.AuthenticationIssuer == "":
		// tokens are read as "<user id>[:<email>]"
		logger.Warn("No issuer configured, bearer tokens are trusted as-is")
		sessions = authentication.NewMiddleware(authentication.NewNoopVerifier(), tracer, monitor, logger).Authenticate()
	case specs.AuthenticationEnabled:
		verifier, err := authentication.NewJWTAuthenticator(
			context.Background(),
			specs.AuthenticationIssuer,
			specs.AuthenticationJWKSURL,
			specs.AuthenticationAud,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create JWT authenticator: %w", err)
		}
		sessions = authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate()
	default:
		kratosClient := kratos.NewClient(
			specs.KratosAdminURL,
			tracer,
			monitor,
			logger,
		)
		sessions = identity.NewMiddleware(kratosClient, tracer, monitor, logger).HTTPMiddleware
		logger.Info("Using the identity header for sessions")
	}

	router := web.NewRouter(
		accessService,
		adminService,
		attacher,
		hooks,
		sessions,
		dbClient,
		web.Config{
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
			CookieSecure:       specs.CookieSecure,
			WebhookSecret:      specs.WebhookSecret,
		},
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
