package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"riskdesk/internal/platform/database"
)

func NewMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			if err := database.Migrate(cmd.Context(), e.pool.DB()); err != nil {
				return err
			}
			e.logger.Info("migrations applied")
			return nil
		},
	}
	migrateCmd.AddCommand(newMigrateStatusCommand())
	return migrateCmd
}

func newMigrateStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List migrations and whether they are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			lines, err := database.MigrationStatus(cmd.Context(), e.pool.DB())
			if err != nil {
				return err
			}
			for _, l := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}
}
