// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/access-service/migrations"
)

type migrateOutput struct {
	Status  string                   `json:"status,omitempty"`
	Version int64                    `json:"version"`
	Applied []*goose.MigrationResult `json:"applied,omitempty"`
}

// migrateCmd performs DB migrations
var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long: `Run the database migrations of the profiles, organizations and legacy
subscribers tables. Without arguments all pending migrations are applied.`,
	Args: customValidArgs(),
	RunE: runMigrate,
}

func customValidArgs() func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
			return err
		}

		if len(args) == 0 {
			return nil
		}

		switch args[0] {
		case "up", "down", "status", "check":
		default:
			return fmt.Errorf("invalid first argument: %q", args[0])
		}

		if len(args) == 1 {
			return nil
		}

		// only down takes a target version
		if args[0] != "down" {
			return fmt.Errorf("invalid argument combination: %q", args)
		}

		if version, err := strconv.Atoi(args[1]); err != nil || version < 0 {
			return fmt.Errorf("invalid version number: %q", args[1])
		}

		return nil
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	version := int64(-1)
	if len(args) > 1 {
		version, _ = strconv.ParseInt(args[1], 10, 64)
	}

	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		return fmt.Errorf("a DSN is required, set --dsn or $DSN")
	}

	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid output format %q", format)
	}

	db, err := openMigrationDB(cmd.Context(), dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []goose.ProviderOption
	if format == "json" {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	return migrate(cmd.Context(), provider, command, version, format, cmd.OutOrStdout())
}

func openMigrationDB(ctx context.Context, dsn string) (*sql.DB, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed, shutting down, err: %v", err)
	}

	db := stdlib.OpenDB(*config)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("DB connection failed, shutting down, err: %v", err)
	}

	return db, nil
}

func migrate(ctx context.Context, provider *goose.Provider, command string, version int64, format string, out io.Writer) error {
	var (
		results []*goose.MigrationResult
		err     error
	)

	switch command {
	case "up":
		results, err = provider.Up(ctx)
	case "down":
		results, err = down(ctx, provider, version)
	case "status":
		return status(ctx, provider, format, out)
	case "check":
		return check(ctx, provider, format, out)
	}

	if err != nil {
		return err
	}

	current, _ := provider.GetDBVersion(ctx)

	if format == "json" {
		if results == nil {
			results = []*goose.MigrationResult{}
		}
		return json.NewEncoder(out).Encode(migrateOutput{Version: current, Applied: results})
	}

	if len(results) == 0 {
		fmt.Fprintf(out, "No migrations to apply, database at version %d\n", current)
		return nil
	}

	t := table.New().Headers("Version", "Direction", "Migration", "Duration")
	for _, r := range results {
		t = t.Row(
			strconv.FormatInt(r.Source.Version, 10),
			r.Direction,
			filepath.Base(r.Source.Path),
			r.Duration.Round(time.Millisecond).String(),
		)
	}
	fmt.Fprintln(out, t)

	return nil
}

func down(ctx context.Context, provider *goose.Provider, version int64) ([]*goose.MigrationResult, error) {
	if version >= 0 {
		return provider.DownTo(ctx, version)
	}

	result, err := provider.Down(ctx)
	if err != nil {
		return nil, err
	}

	return []*goose.MigrationResult{result}, nil
}

func status(ctx context.Context, provider *goose.Provider, format string, out io.Writer) error {
	statuses, err := provider.Status(ctx)
	if err != nil {
		return err
	}

	if format == "json" {
		return json.NewEncoder(out).Encode(statuses)
	}

	t := table.New().Headers("Applied At", "Migration")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		t = t.Row(appliedAt, filepath.Base(s.Source.Path))
	}
	fmt.Fprintln(out, t)

	return nil
}

func check(ctx context.Context, provider *goose.Provider, format string, out io.Writer) error {
	hasPending, err := provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, versionErr := provider.GetDBVersion(ctx)

	result := migrateOutput{Status: "ok", Version: current}
	switch {
	case hasPending:
		result.Status = "pending"
	case versionErr != nil:
		result.Status = "unknown"
	}

	if format == "json" {
		return json.NewEncoder(out).Encode(result)
	}

	if hasPending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}

	fmt.Fprintf(out, "Database is up to date (version %d)\n", current)
	return nil
}

func init() {
	addDSNFlag(migrateCmd)
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}
