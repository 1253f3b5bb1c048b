// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/access-service/internal/db"
	"github.com/canonical/access-service/internal/logging"
	"github.com/canonical/access-service/internal/monitoring"
	"github.com/canonical/access-service/internal/storage"
	"github.com/canonical/access-service/internal/tracing"
)

// operator bundles what the operator commands need to talk to the database.
type operator struct {
	storage *storage.Storage
	db      *db.DBClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (o *operator) Close() {
	o.db.Close()
	_ = o.logger.Sync()
}

func addDSNFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String("dsn", os.Getenv("DSN"), "PostgreSQL DSN connection string, defaults to $DSN")
}

func newOperator(cmd *cobra.Command) (*operator, error) {
	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		return nil, fmt.Errorf("a DSN is required, set --dsn or $DSN")
	}

	logger := logging.NewLogger(logLevel)
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("access-service", logger)

	dbClient, err := db.NewDBClient(
		db.Config{DSN: dsn, MaxConns: 2, MinConns: 1, MaxConnLifetime: time.Hour, MaxConnIdleTime: 30 * time.Minute},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}

	o := new(operator)
	o.db = dbClient
	o.storage = storage.NewStorage(dbClient, tracer, monitor, logger)
	o.tracer = tracer
	o.monitor = monitor
	o.logger = logger

	return o, nil
}
