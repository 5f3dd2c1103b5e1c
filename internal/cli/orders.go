package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-orders-admin/internal/logger"
	"github.com/MKhiriev/go-orders-admin/internal/service"
	"github.com/MKhiriev/go-orders-admin/models"
)

// maxParallelGets bounds concurrent requests of "orders get".
const maxParallelGets = 4

func newOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "List, inspect, create and settle orders",
	}

	cmd.AddCommand(newOrdersListCommand())
	cmd.AddCommand(newOrdersGetCommand())
	cmd.AddCommand(newOrdersCreateCommand())
	cmd.AddCommand(newOrdersTransitionCommand("pay", models.OrderStatusPaid))
	cmd.AddCommand(newOrdersTransitionCommand("cancel", models.OrderStatusCanceled))
	cmd.AddCommand(newOrdersAdminCommand())

	return cmd
}

func newOrdersListCommand() *cobra.Command {
	var (
		params service.ListOrdersParams
		status string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your orders, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := getCliContext(cmd)
			if err != nil {
				return err
			}
			params.Status = models.OrderStatus(status)
			log := logger.FromContext(cmd.Context())

			var orders []models.OrderSummary
			seen := map[string]bool{params.Cursor: true}
			for pages := 1; ; pages++ {
				page, err := cc.app.Services.OrdersService.List(cmd.Context(), params)
				if err != nil {
					return err
				}
				orders = append(orders, page.Items...)

				if page.NextCursor == nil || *page.NextCursor == "" {
					params.Cursor = ""
					break
				}
				next := *page.NextCursor
				if seen[next] {
					// a server repeating a cursor would page forever
					log.Warn().Str("cursor", next).Int("pages", pages).Msg("next cursor repeats, paging stopped")
					params.Cursor = ""
					break
				}
				seen[next] = true
				params.Cursor = next
				if !all {
					break
				}
				log.Debug().Str("cursor", next).Int("pages", pages).Msg("following next cursor")
			}

			out := cmd.OutOrStdout()
			renderOrderList(out, orders)
			if params.Cursor != "" {
				fmt.Fprintln(out, faintStyle.Render("More orders: ordersctl orders list --cursor "+params.Cursor))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&params.Limit, "limit", "n", service.DefaultOrdersLimit, "Page size")
	cmd.Flags().StringVar(&params.Cursor, "cursor", "", "Continue after this cursor")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Only orders in this status (created, paid, canceled)")
	cmd.Flags().BoolVar(&all, "all", false, "Follow next cursors until the last page")

	return cmd
}

func newOrdersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID [ID...]",
		Short: "Show orders with their items",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := getCliContext(cmd)
			if err != nil {
				return err
			}

			logger.FromContext(cmd.Context()).Debug().Int("count", len(args)).Msg("fetching orders")

			orders := make([]models.Order, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(maxParallelGets)
			for i, id := range args {
				g.Go(func() error {
					order, err := cc.app.Services.OrdersService.Get(ctx, id)
					if err != nil {
						return err
					}
					orders[i] = order
					return nil
				})
			}
			if err = g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, order := range orders {
				if i > 0 {
					fmt.Fprintln(out)
				}
				renderOrder(out, order)
			}
			return nil
		},
	}
}

func newOrdersCreateCommand() *cobra.Command {
	var (
		currency       string
		items          []string
		idempotencyKey string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Place a new order",
		Example: `  ordersctl orders create --currency HUF --item SKU-1:2:1500 --item SKU-2:1:990
  ordersctl orders create -i SKU-1:1:100 --idempotency-key 9f1c...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := getCliContext(cmd)
			if err != nil {
				return err
			}

			req := models.CreateOrderRequest{
				Currency:       strings.ToUpper(strings.TrimSpace(currency)),
				IdempotencyKey: idempotencyKey,
			}
			for _, raw := range items {
				item, err := parseItem(raw)
				if err != nil {
					return err
				}
				req.Items = append(req.Items, item)
			}

			order, err := cc.app.Services.OrdersService.Create(cmd.Context(), req)
			if err != nil {
				return err
			}

			renderStatusLine(cmd.OutOrStdout(), "Order created")
			renderOrder(cmd.OutOrStdout(), order)
			return nil
		},
	}
	cmd.Flags().StringVar(&currency, "currency", models.CurrencyHUF, "Order currency (HUF, USD, EUR)")
	cmd.Flags().StringArrayVarP(&items, "item", "i", nil, "Order line as SKU:QTY:UNIT_PRICE, repeatable")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Reuse a key to retry a create safely")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}

// parseItem parses "SKU:QTY:UNIT_PRICE". The SKU itself may contain colons.
func parseItem(raw string) (models.OrderItem, error) {
	invalid := func(reason string) error {
		return fmt.Errorf("%w: item %q: %s", service.ErrInvalidDataProvided, raw, reason)
	}

	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 3 {
		return models.OrderItem{}, invalid("expected SKU:QTY:UNIT_PRICE")
	}
	n := len(parts)
	sku := strings.Join(parts[:n-2], ":")
	if sku == "" {
		return models.OrderItem{}, invalid("empty SKU")
	}

	qty, err := strconv.Atoi(parts[n-2])
	if err != nil {
		return models.OrderItem{}, invalid("quantity is not a number")
	}
	price, err := strconv.ParseInt(parts[n-1], 10, 64)
	if err != nil {
		return models.OrderItem{}, invalid("unit price is not a number")
	}

	return models.OrderItem{SKU: sku, Qty: qty, UnitPrice: price}, nil
}

func newOrdersTransitionCommand(verb string, status models.OrderStatus) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " ID",
		Short: fmt.Sprintf("Mark a created order as %s", status),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := getCliContext(cmd)
			if err != nil {
				return err
			}

			order, err := cc.app.Services.OrdersService.UpdateStatus(cmd.Context(), args[0], status)
			if err != nil {
				return err
			}

			id := order.ID
			if id == "" {
				id = args[0]
			}
			renderStatusLine(cmd.OutOrStdout(), fmt.Sprintf("Order %s is now %s", id, statusStyle(order.Status).Render(string(order.Status))))
			return nil
		},
	}
}

func newOrdersAdminCommand() *cobra.Command {
	var (
		params service.AdminListParams
		status string
	)

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "List orders of all users (admin role)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := getCliContext(cmd)
			if err != nil {
				return err
			}
			params.Status = models.OrderStatus(status)

			page, err := cc.app.Services.OrdersService.AdminList(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderOrderList(cmd.OutOrStdout(), page.Items)
			return nil
		},
	}
	cmd.Flags().StringVar(&params.UserID, "user-id", "", "Only orders of this user")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Only orders in this status (created, paid, canceled)")
	cmd.Flags().IntVarP(&params.Limit, "limit", "n", service.DefaultOrdersLimit, "Maximum number of orders")

	return cmd
}
