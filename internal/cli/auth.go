package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-orders-admin/internal/service"
	"github.com/MKhiriev/go-orders-admin/models"
)

// errPasswordMismatch is returned when the repeated password differs.
var errPasswordMismatch = errors.New("passwords do not match")

func newAuthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in, sign out and inspect the session",
	}

	cmd.AddCommand(newLoginCommand())
	cmd.AddCommand(newRegisterCommand())
	cmd.AddCommand(newLogoutCommand())
	cmd.AddCommand(newStatusCommand())

	return cmd
}

// credentialFlags are shared by login and register.
type credentialFlags struct {
	email         string
	passwordStdin bool
}

func (f *credentialFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.email, "email", "e", "", "Account email (prompted when empty)")
	cmd.Flags().BoolVar(&f.passwordStdin, "password-stdin", false, "Read the password from stdin")
}

// read collects email and password. With confirm the password is asked
// twice, unless it comes from stdin.
func (f *credentialFlags) read(cmd *cobra.Command, confirm bool) (models.Credentials, error) {
	p := newPrompter(cmd)

	email := f.email
	if email == "" {
		if f.passwordStdin {
			return models.Credentials{}, fmt.Errorf("%w: --email is required with --password-stdin", service.ErrInvalidDataProvided)
		}
		var err error
		if email, err = p.line("Email: "); err != nil {
			return models.Credentials{}, err
		}
	}

	if f.passwordStdin {
		password, err := p.line("")
		if err != nil {
			return models.Credentials{}, err
		}
		return models.Credentials{Email: email, Password: password}, nil
	}

	password, err := p.password("Password: ")
	if err != nil {
		return models.Credentials{}, err
	}
	if confirm {
		repeated, err := p.password("Repeat password: ")
		if err != nil {
			return models.Credentials{}, err
		}
		if repeated != password {
			return models.Credentials{}, errPasswordMismatch
		}
	}

	return models.Credentials{Email: email, Password: password}, nil
}

func newLoginCommand() *cobra.Command {
	var flags credentialFlags

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := getCliContext(cmd)
			if err != nil {
				return err
			}

			creds, err := flags.read(cmd, false)
			if err != nil {
				return err
			}

			if err = cc.app.Services.AuthService.Login(cmd.Context(), creds); err != nil {
				return err
			}

			renderStatusLine(cmd.OutOrStdout(), "Logged in as "+creds.Email)
			return nil
		},
	}
	flags.bind(cmd)

	return cmd
}

func newRegisterCommand() *cobra.Command {
	var (
		flags credentialFlags
		login bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := getCliContext(cmd)
			if err != nil {
				return err
			}

			creds, err := flags.read(cmd, true)
			if err != nil {
				return err
			}

			auth := cc.app.Services.AuthService
			user, err := auth.Register(cmd.Context(), creds)
			if err != nil {
				return err
			}
			renderStatusLine(cmd.OutOrStdout(), fmt.Sprintf("Registered %s (id %s, role %s)", user.Email, user.ID, user.Role))

			if !login {
				return nil
			}
			if err = auth.Login(cmd.Context(), creds); err != nil {
				return err
			}
			renderStatusLine(cmd.OutOrStdout(), "Logged in as "+creds.Email)
			return nil
		},
	}
	flags.bind(cmd)
	cmd.Flags().BoolVar(&login, "login", false, "Sign in right after registration")

	return cmd
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the session and forget the stored tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := getCliContext(cmd)
			if err != nil {
				return err
			}

			if err = cc.app.Services.AuthService.Logout(cmd.Context()); err != nil {
				return err
			}

			renderStatusLine(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := getCliContext(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			claims, err := cc.app.Services.AuthService.Status(cmd.Context())
			if errors.Is(err, service.ErrNotAuthenticated) {
				fmt.Fprintln(out, "Not logged in")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(out, labelStyle.Render("User"), claims.Subject)
			if claims.Role != "" {
				fmt.Fprintln(out, labelStyle.Render("Role"), claims.Role)
			}
			if !claims.ExpiresAt.IsZero() {
				expiry := claims.ExpiresAt.Local().Format(time.RFC3339)
				if claims.Expired(time.Now()) {
					expiry += faintStyle.Render(" (expired, renewed on the next request)")
				}
				fmt.Fprintln(out, labelStyle.Render("Expires"), expiry)
			}
			return nil
		},
	}
}
