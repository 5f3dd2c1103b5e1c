package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-orders-admin/internal/service"
	"github.com/MKhiriev/go-orders-admin/models"
)

// newVersionCommand prints the build metadata. It needs neither a
// configuration nor the credential store.
func newVersionCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := service.NewAppInfoService(buildInfo).BuildInfo(cmd.Context())

			fmt.Fprintln(cmd.OutOrStdout(), joinNonEmpty(" ",
				titleStyle.Render("ordersctl"),
				info.BuildVersion(),
			))
			fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render("Built"), info.BuildDate())
			fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render("Commit"), info.BuildCommit())
			return nil
		},
	}
}
