// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

var legacyCmd = &cobra.Command{
	Use:   "legacy",
	Short: "Manage legacy subscribers",
}

var addLegacyCmd = &cobra.Command{
	Use:   "add [email...]",
	Short: "Register emails as legacy subscribers",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		validate := validator.New(validator.WithRequiredStructEnabled())

		emails := make([]string, 0, len(args))
		for _, arg := range args {
			email := strings.TrimSpace(arg)
			if err := validate.Var(email, "required,email"); err != nil {
				return fmt.Errorf("invalid email %q: %w", arg, err)
			}
			emails = append(emails, email)
		}

		o, err := newOperator(cmd)
		if err != nil {
			return err
		}
		defer o.Close()

		for _, email := range emails {
			if err := o.storage.AddLegacySubscriber(cmd.Context(), email); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Legacy subscriber added: %s\n", email)
		}

		return nil
	},
}

func init() {
	addDSNFlag(legacyCmd)

	legacyCmd.AddCommand(addLegacyCmd)
	rootCmd.AddCommand(legacyCmd)
}
