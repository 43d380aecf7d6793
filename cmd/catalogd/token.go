// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/catalog/internal/platform/config"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/sec"
)

type tokenOptions struct {
	userID      string
	username    string
	role        string
	permissions []string
	ttl         time.Duration
}

func newTokenCmd() *cobra.Command {
	opts := tokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token",
		Long: `Mint an RS256 access token signed with JWT_PRIVATE_KEY_PATH.

Identity is normally issued elsewhere; this exists for local development
and smoke tests against a running server.`,
		Example: `  catalogd token --user u-1 --perm avocado.change_dataconcept
  catalogd token --user root --role admin --ttl 15m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := mintToken(opts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.userID, "user", "", "user id (required)")
	cmd.Flags().StringVar(&opts.username, "name", "", "display username")
	cmd.Flags().StringVar(&opts.role, "role", string(sec.RoleAnalyst), "role: admin, curator or analyst")
	cmd.Flags().StringSliceVar(&opts.permissions, "perm", nil, "permission codename, repeatable")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func mintToken(opts tokenOptions) (string, error) {
	role, ok := sec.ParseRole(opts.role)
	if !ok {
		return "", fmt.Errorf("token: unknown role %q", opts.role)
	}
	if opts.ttl <= 0 {
		return "", fmt.Errorf("token: ttl must be positive")
	}

	cfg, err := config.LoadSigning()
	if err != nil {
		return "", err
	}

	tokens, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	if err != nil {
		return "", err
	}

	return tokens.GenerateAccessToken(opts.userID, opts.username, string(role), opts.permissions, opts.ttl)
}
