// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/taibuivan/catalog/internal/platform/config"
	"github.com/taibuivan/catalog/internal/platform/migration"
)

func newMigrateCmd() *cobra.Command {
	var text bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long: `Apply every pending UP migration from MIGRATION_PATH to DATABASE_URL.

Safe to run repeatedly; a database already at the latest version is left
untouched.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.LoadMigration()
			if err != nil {
				return err
			}

			log := newLogger(os.Stderr, text, cfg.Debug)
			return migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log)
		},
	}

	cmd.Flags().BoolVar(&text, "text", true, "human readable log output")
	return cmd
}
