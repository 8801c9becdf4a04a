package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the exlog command. Without a subcommand it serves
// the API, which is how the service has always been started.
func NewRootCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "exlog",
		Short: "Exercise Log API",
		Long: `Exercise Log API: register users, log timed exercises and query
each user's log by date range.

Configuration is read from the environment (EXLOG_*, plus the legacy PORT
and PGURL) and from a .env file in the working directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	bindServeFlags(cmd, opts)

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewMigrateCommand())

	return cmd
}
