// Package verification exposes maintenance of pending email verifications.
package verification

import (
	"fmt"

	"github.com/spf13/cobra"

	verificationApp "github.com/orris-inc/helpdesk/internal/application/verification"
	"github.com/orris-inc/helpdesk/internal/infrastructure/database"
	"github.com/orris-inc/helpdesk/internal/infrastructure/email"
	"github.com/orris-inc/helpdesk/internal/infrastructure/metrics"
	"github.com/orris-inc/helpdesk/internal/infrastructure/repository"
	"github.com/orris-inc/helpdesk/internal/interfaces/cli/bootstrap"
	"github.com/orris-inc/helpdesk/internal/shared/biztime"
	"github.com/orris-inc/helpdesk/internal/shared/db"
)

var opts bootstrap.Options

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verification",
		Short: "Email verification maintenance",
	}

	bootstrap.AddFlags(cmd, &opts)
	cmd.AddCommand(newSweepCommand())

	return cmd
}

func newSweepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Delete expired verification tokens",
		Long:  `Delete every verification older than verification.ttl_hours. The accounts stay inactive and can request a new link.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap.Load(&opts)
			if err != nil {
				return err
			}
			gdb, err := bootstrap.OpenDatabase(cfg)
			if err != nil {
				return err
			}
			defer database.Close()

			svc := verificationApp.NewService(
				repository.NewUserRepository(gdb),
				repository.NewVerificationRepository(gdb),
				db.NewTransactionManager(gdb),
				email.NewLogMailer(log),
				metrics.New(),
				cfg.Server.BaseURL,
				cfg.Verification.TTL(),
				log,
			)

			n, err := svc.SweepExpired(cmd.Context(), biztime.NowUTC())
			if err != nil {
				return fmt.Errorf("sweep failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired verification(s)\n", n)
			return nil
		},
	}
}
