package main

import (
	"github.com/spf13/cobra"

	"github.com/AntonStoeckl/library-admin-rpc/shell/config"
)

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the catalog tables if they do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			logger := a.newLogger()

			storage, err := config.OpenStorage(ctx, a.cfg)
			if err != nil {
				return err
			}
			defer storage.Close()

			if err := storage.Migrate(ctx); err != nil {
				return err
			}

			logger.Info(logMsgMigrated, logAttrDriver, a.cfg.Driver)

			return nil
		},
	}
}
