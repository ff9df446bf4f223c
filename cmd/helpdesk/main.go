package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/orris-inc/helpdesk/internal/interfaces/cli/migrate"
	"github.com/orris-inc/helpdesk/internal/interfaces/cli/server"
	"github.com/orris-inc/helpdesk/internal/interfaces/cli/user"
	"github.com/orris-inc/helpdesk/internal/interfaces/cli/verification"
	"github.com/orris-inc/helpdesk/internal/interfaces/cli/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "helpdesk",
		Short:        "Helpdesk - internal IT support ticketing",
		Long:         `Helpdesk serves the ticketing API and provides migration and account provisioning tools.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		user.NewCommand(),
		verification.NewCommand(),
		version.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
