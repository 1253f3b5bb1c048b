// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/access-service/internal/kratos"
	"github.com/canonical/access-service/internal/session"
	"github.com/canonical/access-service/internal/storage"
	"github.com/canonical/access-service/pkg/access"
	"github.com/canonical/access-service/pkg/orgadmin"
)

type accessReport struct {
	Session    *session.Session `json:"session"`
	Access     access.Status    `json:"access"`
	IsOrgAdmin bool             `json:"org_admin"`
}

var accessCmd = &cobra.Command{
	Use:   "access",
	Short: "Resolve the access tier of a user",
	Long: `Resolve the access tier of a user the way a signed in session does.
When only --email is given the user ID is looked up in Kratos.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user-id")
		email, _ := cmd.Flags().GetString("email")
		kratosURL, _ := cmd.Flags().GetString("kratos-admin-url")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		o, err := newOperator(cmd)
		if err != nil {
			return err
		}
		defer o.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		if userID == "" && email != "" && kratosURL != "" {
			kratosClient := kratos.NewClient(kratosURL, o.tracer, o.monitor, o.logger)
			if userID, err = kratosClient.GetIdentityIDByEmail(ctx, email); err != nil {
				return fmt.Errorf("failed to look up identity of %s: %w", email, err)
			}
		}

		if userID == "" {
			return fmt.Errorf("a user is required, set --user-id or --email with --kratos-admin-url")
		}

		legacy := storage.NewLegacyCache(o.storage, 1, time.Minute, o.tracer, o.logger)
		service := access.NewService(o.storage, legacy, timeout, o.tracer, o.monitor, o.logger)

		tracker := access.NewTracker(service, o.logger)
		defer tracker.Close()

		broker := session.NewBroker(o.logger)
		unsubscribe := broker.Subscribe(tracker.Handle)
		defer unsubscribe()

		broker.Publish(ctx, &session.Session{UserID: userID, Email: email})

		status, err := tracker.Wait(ctx)
		if err != nil {
			return fmt.Errorf("access lookups did not settle: %w", err)
		}

		admin, err := orgadmin.NewService(o.storage, o.tracer, o.monitor, o.logger).Resolve(ctx, email)
		if err != nil {
			o.logger.Errorf("failed to resolve organization admin: %v", err)
		}

		report := accessReport{
			Session:    broker.Current(),
			Access:     status,
			IsOrgAdmin: admin.IsOrgAdmin,
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	addDSNFlag(accessCmd)

	accessCmd.Flags().String("user-id", "", "ID of the user")
	accessCmd.Flags().String("email", "", "Email of the user")
	accessCmd.Flags().String("kratos-admin-url", os.Getenv("KRATOS_ADMIN_URL"), "Kratos admin URL, defaults to $KRATOS_ADMIN_URL")
	accessCmd.Flags().Duration("timeout", 10*time.Second, "Timeout of the lookups")

	rootCmd.AddCommand(accessCmd)
}
