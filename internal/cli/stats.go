package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-orders-admin/internal/service"
)

// timeLayouts are accepted by --from and --to.
var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// now is the clock --last counts back from.
var now = time.Now

func newStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Sales statistics",
	}
	cmd.AddCommand(newSkuStatsCommand())
	return cmd
}

func newSkuStatsCommand() *cobra.Command {
	var (
		limit    int
		from, to string
		last     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "sku",
		Short: "Sold quantity per SKU and time window",
		Example: `  ordersctl stats sku --last 15m
  ordersctl stats sku --from 2026-10-01 --to 2026-10-19 -n 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := getCliContext(cmd)
			if err != nil {
				return err
			}

			params := service.SkuStatsParams{Limit: limit}
			switch {
			case last < 0:
				return fmt.Errorf("%w: --last %s is negative", service.ErrInvalidDataProvided, last)
			case last > 0:
				params.From = now().Add(-last)
			default:
				if params.From, err = parseTime("from", from); err != nil {
					return err
				}
			}
			if params.To, err = parseTime("to", to); err != nil {
				return err
			}

			stats, err := cc.app.Services.StatsService.SkuStats(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderSkuStats(cmd.OutOrStdout(), stats)
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", service.DefaultStatsLimit, "Maximum number of rows")
	cmd.Flags().StringVar(&from, "from", "", "Windows starting at or after this time (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Windows starting at or before this time (RFC 3339 or YYYY-MM-DD)")
	cmd.Flags().DurationVar(&last, "last", 0, "Only windows of the last duration, e.g. 15m or 1h")
	cmd.MarkFlagsMutuallyExclusive("last", "from")

	return cmd
}

// parseTime accepts the layouts in timeLayouts; values without a zone are
// local time. The empty string is the zero time.
func parseTime(flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: --%s %q is not a date or RFC 3339 time", service.ErrInvalidDataProvided, flag, value)
}
