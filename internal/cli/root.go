// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the ordersctl command tree.
//
// Every command that talks to the Orders API shares one [client.App] that is
// built lazily in the root PersistentPreRunE, so commands such as "version"
// and "help" work without a configuration or a credential store.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-orders-admin/internal/client"
	"github.com/MKhiriev/go-orders-admin/internal/config"
	"github.com/MKhiriev/go-orders-admin/internal/logger"
	"github.com/MKhiriev/go-orders-admin/models"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const cliContextKey contextKey = "cliContext"

// cliContext holds the components shared by all commands of one invocation.
type cliContext struct {
	app    *client.App
	logger *logger.Logger
}

// Execute runs ordersctl with args and returns the process exit code.
// Errors are printed to errOut together with a hint when one applies.
func Execute(ctx context.Context, buildInfo models.AppBuildInfo, args []string, in io.Reader, out, errOut io.Writer) int {
	var cc cliContext
	defer func() {
		_ = cc.app.Close()
	}()

	root := newRootCommand(buildInfo, &cc)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		if cc.logger != nil {
			cc.logger.Err(err).Msg("command failed")
		}
		fmt.Fprintln(errOut, errorStyle.Render("Error:"), err)
		if hint := errorHint(err); hint != "" {
			fmt.Fprintln(errOut, hintStyle.Render(hint))
		}
		return 1
	}
	return 0
}

func newRootCommand(buildInfo models.AppBuildInfo, cc *cliContext) *cobra.Command {
	var flags *config.FlagValues

	rootCmd := &cobra.Command{
		Use:           "ordersctl",
		Short:         "Administrative client for the Orders API",
		Long:          `ordersctl signs in to the Orders API, manages orders and shows SKU sales statistics.`,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Execute prints errors
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsApp(cmd) {
				return nil
			}

			cfg, err := config.GetClientConfig(flags)
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}

			cc.logger = logger.NewClientLogger("ordersctl", cfg.App.LogFile, cfg.App.LogLevel)

			cmdLogger := cc.logger.GetChildLogger()
			cmdLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("command", cmd.CommandPath())
			})
			cmdLogger.Debug().Strs("args", args).Msg("command started")

			app, err := client.NewApp(cmd.Context(), cfg, buildInfo, cc.logger)
			if err != nil {
				return err
			}
			cc.app = app

			cmd.SetContext(context.WithValue(cmdLogger.WithContext(cmd.Context()), cliContextKey, cc))
			return nil
		},
	}

	flags = config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newAuthCommand())
	rootCmd.AddCommand(newOrdersCommand())
	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(newHealthCommand())
	rootCmd.AddCommand(newVersionCommand(buildInfo))

	return rootCmd
}

// needsApp reports whether cmd talks to the Orders API.
func needsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion":
		return false
	}
	return cmd.Runnable() && cmd.HasParent()
}

// getCliContext extracts the CLI context from the command context
func getCliContext(cmd *cobra.Command) (*cliContext, error) {
	cc, ok := cmd.Context().Value(cliContextKey).(*cliContext)
	if !ok || cc.app == nil {
		return nil, errors.New("client is not initialised")
	}
	return cc, nil
}
