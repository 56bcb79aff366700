package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/client/config"
	"github.com/dmitrijs2005/ecotracker/internal/client/services"
	"github.com/spf13/cobra"
)

type commands struct {
	cfg        *config.Config
	open       Opener
	app        *App
	timeoutSec int
	configPath string
}

// Run executes the CLI with args and releases whatever the command opened.
func Run(ctx context.Context, cfg *config.Config, args []string, open Opener) error {
	c := &commands{cfg: cfg, open: open, timeoutSec: int(cfg.RequestTimeout.Seconds())}
	root := c.root()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if c.app != nil {
		err = errors.Join(err, c.app.Close())
	}
	return err
}

// root wires every subcommand. The persistent flags mirror the ones
// config.LoadConfig already consumed so cobra accepts them too.
func (c *commands) root() *cobra.Command {
	root := &cobra.Command{
		Use:          "ecotracker",
		Short:        "EcoTracker, a personal carbon footprint tracker",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.cfg.RequestTimeout = time.Duration(c.timeoutSec) * time.Second
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&c.cfg.ServerEndpointAddr, "addr", "a", c.cfg.ServerEndpointAddr, "address and port of the server")
	pf.StringVarP(&c.cfg.DatabaseFile, "db", "d", c.cfg.DatabaseFile, "local session database file")
	pf.IntVarP(&c.timeoutSec, "timeout", "t", c.timeoutSec, "request timeout (in seconds)")
	pf.StringVarP(&c.cfg.DownloadDir, "out", "o", c.cfg.DownloadDir, "report download directory")
	pf.StringVarP(&c.configPath, "config", "c", "", "path to JSON config file")

	root.AddCommand(
		c.registerCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.pingCmd(),
		c.logCmd(),
		c.plantCmd(),
		c.historyCmd(),
		c.summaryCmd(),
		c.profileCmd(),
		c.suggestCmd(),
		c.exportCmd(),
	)
	return root
}

// begin opens the App on first use and returns a context bounded by the
// request timeout.
func (c *commands) begin(cmd *cobra.Command) (*App, context.Context, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(cmd.Context(), c.cfg.RequestTimeout)

	if c.app == nil {
		a, err := c.open(ctx, c.cfg)
		if err != nil {
			cancel()
			return nil, nil, nil, err
		}
		c.app = a
	}
	return c.app, ctx, cancel, nil
}

// beginSession is begin for commands that need a cached login.
func (c *commands) beginSession(cmd *cobra.Command) (*App, context.Context, context.CancelFunc, error) {
	a, ctx, cancel, err := c.begin(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	if !a.loggedIn {
		cancel()
		return nil, nil, nil, fmt.Errorf("%w: run \"ecotracker login\" first", services.ErrNotLoggedIn)
	}
	return a, ctx, cancel, nil
}

func reader(cmd *cobra.Command) *bufio.Reader {
	return bufio.NewReader(cmd.InOrStdin())
}
