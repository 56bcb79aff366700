package cli

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/emission"
	"github.com/spf13/cobra"
)

// submitFlags are shared by every command that records an entry.
type submitFlags struct {
	at     string
	dryRun bool
}

func (f *submitFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.at, "at", "", "when it happened, RFC 3339 (default now)")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "only calculate, do not save")
}

func (f *submitFlags) occurredAt() (*time.Time, error) {
	if f.at == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, f.at)
	if err != nil {
		return nil, fmt.Errorf("invalid --at %q: expected RFC 3339, e.g. 2024-05-01T08:30:00Z", f.at)
	}
	return &t, nil
}

// submit previews d on --dry-run and records it otherwise.
func (c *commands) submit(cmd *cobra.Command, d emission.Details, f *submitFlags) error {
	out := cmd.OutOrStdout()

	if f.dryRun {
		a, ctx, cancel, err := c.begin(cmd)
		if err != nil {
			return err
		}
		defer cancel()

		p, err := a.tracker.Preview(ctx, d)
		if err != nil {
			return err
		}
		printPreview(out, p)
		return nil
	}

	at, err := f.occurredAt()
	if err != nil {
		return err
	}

	a, ctx, cancel, err := c.beginSession(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	e, err := a.tracker.Log(ctx, d, at)
	if err != nil {
		return err
	}
	printEntry(out, e)
	return nil
}

func (c *commands) logCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record an emitting activity",
	}
	cmd.AddCommand(c.logVehicleCmd(), c.logPlasticCmd(), c.logEnergyCmd())
	return cmd
}

func (c *commands) logVehicleCmd() *cobra.Command {
	var (
		d emission.VehicleDetails
		f submitFlags
	)
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Record a trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.submit(cmd, d, &f)
		},
	}
	cmd.Flags().Float64Var(&d.Distance, "distance", 0, "distance travelled, km")
	cmd.Flags().StringVar(&d.FuelType, "fuel", "", "fuel type (petrol, diesel, electric, hybrid, cng)")
	_ = cmd.MarkFlagRequired("distance")
	_ = cmd.MarkFlagRequired("fuel")
	f.register(cmd)
	return cmd
}

func (c *commands) logPlasticCmd() *cobra.Command {
	var (
		d emission.PlasticDetails
		f submitFlags
	)
	cmd := &cobra.Command{
		Use:   "plastic",
		Short: "Record plastic use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.submit(cmd, d, &f)
		},
	}
	cmd.Flags().Float64Var(&d.Quantity, "quantity", 0, "amount, kg")
	cmd.Flags().StringVar(&d.PlasticType, "type", "", "plastic type (single-use, bottles, bags, packaging)")
	_ = cmd.MarkFlagRequired("quantity")
	_ = cmd.MarkFlagRequired("type")
	f.register(cmd)
	return cmd
}

func (c *commands) logEnergyCmd() *cobra.Command {
	var (
		d emission.EnergyDetails
		f submitFlags
	)
	cmd := &cobra.Command{
		Use:   "energy",
		Short: "Record energy consumption",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.submit(cmd, d, &f)
		},
	}
	cmd.Flags().Float64Var(&d.Amount, "amount", 0, "energy used, kWh")
	cmd.Flags().StringVar(&d.EnergySource, "source", "", "energy source (natural-gas, electricity, heating-oil, coal)")
	cmd.Flags().BoolVar(&d.IsRenewable, "renewable", false, "energy came from a renewable supply")
	_ = cmd.MarkFlagRequired("amount")
	cmd.MarkFlagsOneRequired("source", "renewable")
	f.register(cmd)
	return cmd
}

func (c *commands) plantCmd() *cobra.Command {
	var (
		d emission.PlantationDetails
		f submitFlags
	)
	cmd := &cobra.Command{
		Use:   "plant",
		Short: "Record planted trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.submit(cmd, d, &f)
		},
	}
	cmd.Flags().IntVar(&d.TreesPlanted, "trees", 0, "number of trees planted")
	cmd.Flags().StringVar(&d.Species, "species", "", "tree species")
	cmd.Flags().StringVar(&d.Location, "location", "", "where the trees were planted")
	_ = cmd.MarkFlagRequired("trees")
	f.register(cmd)
	return cmd
}

func (c *commands) historyCmd() *cobra.Command {
	var (
		category string
		limit    int
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, ctx, cancel, err := c.beginSession(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			entries, err := a.tracker.History(ctx, category, limit)
			if err != nil {
				return err
			}
			printEntries(cmd.OutOrStdout(), entries)
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only this category (vehicle, plastic, energy, plantation)")
	cmd.Flags().IntVar(&limit, "limit", 0, "at most this many entries (0 = all)")
	return cmd
}
