// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/canonical/access-service/internal/notify"
	"github.com/canonical/access-service/internal/pending"
	"github.com/canonical/access-service/internal/session"
	"github.com/canonical/access-service/pkg/orglink"
)

var linkCmd = &cobra.Command{
	Use:   "link [url]",
	Short: "Capture the organization code of an invite link and attach a user to it",
	Long: `Capture the organization code carried by an invite link, then sign the
given user in so the pending code is attached to its profile.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user-id")
		email, _ := cmd.Flags().GetString("email")

		u, err := url.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid url: %w", err)
		}

		o, err := newOperator(cmd)
		if err != nil {
			return err
		}
		defer o.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		slot := pending.NewMemorySlot()
		attacher := orglink.NewAttacher(o.storage, o.db, notify.NewPrinter(out), o.tracer, o.monitor, o.logger)

		stripped, captured, err := attacher.Capture(ctx, slot, u)
		if err != nil {
			return err
		}
		if !captured {
			return fmt.Errorf("%s carries no organization code", args[0])
		}

		fmt.Fprintf(out, "Continue at: %s\n", stripped)

		if userID == "" {
			fmt.Fprintln(out, "No user given, the code stays pending")
			return nil
		}

		broker := session.NewBroker(o.logger)
		unsubscribe := broker.Subscribe(attacher.OnSessionEstablished(slot))
		defer unsubscribe()

		broker.Publish(ctx, &session.Session{UserID: userID, Email: email})

		return nil
	},
}

func init() {
	addDSNFlag(linkCmd)

	linkCmd.Flags().String("user-id", "", "ID of the user to sign in")
	linkCmd.Flags().String("email", "", "Email of the user to sign in")

	rootCmd.AddCommand(linkCmd)
}
