package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the Orders API is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := getCliContext(cmd)
			if err != nil {
				return err
			}

			health, err := cc.app.Services.HealthService.Health(cmd.Context())
			if err != nil {
				return err
			}

			renderStatusLine(cmd.OutOrStdout(), fmt.Sprintf("API status: %s %s", health.Status, faintStyle.Render(health.Timestamp)))
			return nil
		},
	}
}
