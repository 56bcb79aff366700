package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *commands) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals, net footprint and status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, cancel, err := c.beginSession(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			d, err := a.tracker.Summary(ctx)
			if err != nil {
				return err
			}
			printDashboard(cmd.OutOrStdout(), d)
			return nil
		},
	}
}

func (c *commands) profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the account with per-category totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, cancel, err := c.beginSession(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			p, err := a.tracker.Profile(ctx)
			if err != nil {
				return err
			}
			printProfile(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func (c *commands) suggestCmd() *cobra.Command {
	var co2 float64
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest how to offset your footprint (or --co2 kg)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, cancel, err := c.beginSession(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			var amount *float64
			if cmd.Flags().Changed("co2") {
				amount = &co2
			}

			s, err := a.tracker.Suggest(ctx, amount)
			if err != nil {
				return err
			}
			printSuggestions(cmd.OutOrStdout(), s)
			return nil
		},
	}
	cmd.Flags().Float64Var(&co2, "co2", 0, "kg of CO2 to offset instead of your net footprint")
	return cmd
}

func (c *commands) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Export a JSON report and download it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, cancel, err := c.beginSession(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			res, err := a.tracker.Export(ctx, c.cfg.DownloadDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Report saved to %s (%d bytes)\n", res.Path, res.Bytes)
			fmt.Fprintf(out, "Download link valid until %s:\n%s\n", res.ExpiresAt.Local().Format("2006-01-02 15:04"), res.URL)
			return nil
		},
	}
}
