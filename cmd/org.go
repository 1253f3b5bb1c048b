// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/canonical/access-service/internal/storage"
	"github.com/canonical/access-service/internal/types"
	"github.com/canonical/access-service/pkg/orglink"
)

const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 8
)

type createOrganizationInput struct {
	Name       string `validate:"required,max=255"`
	Code       string `validate:"omitempty,max=128,printascii,excludesall=0x20"`
	Type       string `validate:"max=64"`
	AdminEmail string `validate:"omitempty,email"`
}

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "Manage organizations",
}

var createOrgCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create an organization",
	Long:  `Create an organization. A random code is generated when --code is omitted.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		code, _ := cmd.Flags().GetString("code")
		orgType, _ := cmd.Flags().GetString("type")
		adminEmail, _ := cmd.Flags().GetString("admin-email")

		input := createOrganizationInput{
			Name:       strings.TrimSpace(args[0]),
			Code:       strings.TrimSpace(code),
			Type:       orgType,
			AdminEmail: strings.TrimSpace(adminEmail),
		}

		if err := validator.New(validator.WithRequiredStructEnabled()).Struct(input); err != nil {
			return fmt.Errorf("invalid organization: %w", err)
		}

		if input.Code == "" {
			generated, err := generateCode()
			if err != nil {
				return err
			}
			input.Code = generated
		}

		o, err := newOperator(cmd)
		if err != nil {
			return err
		}
		defer o.Close()

		org, err := o.storage.CreateOrganization(cmd.Context(), &types.Organization{
			Name:       input.Name,
			Code:       input.Code,
			Type:       input.Type,
			AdminEmail: input.AdminEmail,
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			return fmt.Errorf("organization code %q is already taken", input.Code)
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Organization created: %s (ID: %s, code: %s)\n", org.Name, org.ID, org.Code)
		return nil
	},
}

var inviteLinkCmd = &cobra.Command{
	Use:   "invite-link [code]",
	Short: "Print the invite link of an organization code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, _ := cmd.Flags().GetString("base-url")

		link, err := orglink.InviteURL(base, strings.TrimSpace(args[0]))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), link)
		return nil
	},
}

// generateCode draws an organization code from an alphabet without
// ambiguous characters.
func generateCode() (string, error) {
	var b strings.Builder
	limit := big.NewInt(int64(len(codeAlphabet)))

	for range codeLength {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("failed to generate organization code: %w", err)
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}

	return b.String(), nil
}

func init() {
	addDSNFlag(orgCmd)

	createOrgCmd.Flags().String("code", "", "Organization code, generated when empty")
	createOrgCmd.Flags().String("type", "", "Organization type")
	createOrgCmd.Flags().String("admin-email", "", "Email of the organization administrator")

	defaultBase := os.Getenv("INVITE_BASE_URL")
	if defaultBase == "" {
		defaultBase = "http://localhost:3000/"
	}
	inviteLinkCmd.Flags().String("base-url", defaultBase, "Base URL of invite links, defaults to $INVITE_BASE_URL")

	orgCmd.AddCommand(createOrgCmd)
	orgCmd.AddCommand(inviteLinkCmd)
	rootCmd.AddCommand(orgCmd)
}
