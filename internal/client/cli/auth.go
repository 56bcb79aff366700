package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var errPasswordMismatch = errors.New("passwords do not match")

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func usernameArg(in *bufio.Reader, out io.Writer, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return getSimpleText(in, "Enter username", out)
}

func (c *commands) registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register [username]",
		Short: "Create an account",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := reader(cmd), cmd.OutOrStdout()

			username, err := usernameArg(in, out, args)
			if err != nil {
				return err
			}

			password, err := getPassword(in, "Enter password", out)
			if err != nil {
				return err
			}
			confirm, err := getPassword(in, "Repeat password", out)
			if err != nil {
				return err
			}
			if password != confirm {
				return errPasswordMismatch
			}

			a, ctx, cancel, err := c.begin(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			id, err := a.auth.Register(ctx, username, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Registered %s (id %s). Run \"ecotracker login\" to sign in.\n", username, id)
			return nil
		},
	}
}

func (c *commands) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [username]",
		Short: "Sign in and cache the session locally",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := reader(cmd), cmd.OutOrStdout()

			username, err := usernameArg(in, out, args)
			if err != nil {
				return err
			}

			password, err := getPassword(in, "Enter password", out)
			if err != nil {
				return err
			}

			a, ctx, cancel, err := c.begin(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			if err := a.auth.Login(ctx, username, password); err != nil {
				return err
			}
			a.username, a.loggedIn = username, true

			fmt.Fprintf(out, "Logged in as %s\n", username)
			return nil
		},
	}
}

func (c *commands) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the cached session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, cancel, err := c.begin(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			if err := a.auth.Logout(ctx); err != nil {
				return err
			}
			a.username, a.loggedIn = "", false

			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func (c *commands) pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the server is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, cancel, err := c.begin(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			if err := a.auth.Ping(ctx); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Server %s is reachable\n", c.cfg.ServerEndpointAddr)
			return nil
		},
	}
}
