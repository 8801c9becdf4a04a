package cli

import (
	"github.com/GHutch55/exlog/api/v1/database"
	"github.com/GHutch55/exlog/config"
	"github.com/GHutch55/exlog/logger"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database tables and indexes",
		Long: `Apply the embedded schema (tables app_user and exercise with their
indexes) to the configured database. Already applied versions are skipped.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			return database.Migrate(cmd.Context(), cfg.Database.URL, logger.New(cfg.Logging, cfg.Env))
		},
	}
}
