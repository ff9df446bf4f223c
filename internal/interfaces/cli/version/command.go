package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orris-inc/helpdesk/internal/shared/version"
)

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
