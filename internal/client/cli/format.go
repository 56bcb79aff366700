package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/ecotracker/internal/client/client"
	"github.com/dmitrijs2005/ecotracker/internal/footprint"
)

const dateLayout = "2006-01-02 15:04"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// impact renders the CO2 effect of one entry.
func impact(emissions, offset float64, points int) string {
	if offset > 0 {
		return fmt.Sprintf("-%.2f kg CO2, +%d eco points", offset, points)
	}
	return fmt.Sprintf("%.2f kg CO2", emissions)
}

func printPreview(w io.Writer, p *client.Preview) {
	fmt.Fprintf(w, "%s: %s (not saved)\n", p.Category, impact(p.CO2Emissions, p.CO2Offset, p.EcoPoints))
}

func printEntry(w io.Writer, e *client.Entry) {
	fmt.Fprintf(w, "Logged %s entry %s: %s\n", e.Category, e.ID, impact(e.CO2Emissions, e.CO2Offset, e.EcoPoints))
}

func printEntries(w io.Writer, entries []client.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries yet.")
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tCATEGORY\tCO2 KG\tOFFSET KG\tPOINTS\tID")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\t%d\t%s\n",
			e.OccurredAt.Local().Format(dateLayout), e.Category, e.CO2Emissions, e.CO2Offset, e.EcoPoints, e.ID)
	}
	_ = tw.Flush()
}

func printDashboard(w io.Writer, d footprint.Dashboard) {
	s := d.Summary

	tw := newTable(w)
	fmt.Fprintf(tw, "Emissions:\t%.2f kg CO2\n", s.TotalEmissions)
	fmt.Fprintf(tw, "Offsets:\t%.2f kg CO2\n", s.TotalOffsets)
	fmt.Fprintf(tw, "Net footprint:\t%.2f kg CO2\n", s.NetFootprint)
	fmt.Fprintf(tw, "Eco points:\t%d\n", s.EcoPoints)
	fmt.Fprintf(tw, "Trees planted:\t%d\n", s.TreesPlanted)
	fmt.Fprintf(tw, "Entries:\t%d\n", s.EntriesCount)
	_ = tw.Flush()

	fmt.Fprintf(w, "\nStatus: %s. %s\n%s\n", d.Status.Label, d.Status.Message, d.Status.Congrats)
}

func printProfile(w io.Writer, p *client.Profile) {
	fmt.Fprintf(w, "%s, member since %s\n\n", p.Username, p.MemberSince.Local().Format("2006-01-02"))
	printDashboard(w, p.Dashboard)

	fmt.Fprintln(w)
	tw := newTable(w)
	fmt.Fprintln(tw, "CATEGORY\tENTRIES\tCO2 KG\tOFFSET KG")
	for _, c := range p.ByCategory {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\t%.2f\n", c.Category, c.Entries, c.CO2Emissions, c.CO2Offset)
	}
	_ = tw.Flush()
}

func printSuggestions(w io.Writer, s footprint.Suggestions) {
	if s.TreesToOffset > 0 {
		fmt.Fprintf(w, "To offset %.2f kg CO2, plant %d tree(s).\n\n", s.CO2, s.TreesToOffset)
	} else {
		fmt.Fprintln(w, "Nothing to offset right now.")
		fmt.Fprintln(w)
	}

	for i, it := range s.Items {
		fmt.Fprintf(w, "%d. %s: %s\n   %s (about %.2f kg CO2)\n", i+1, it.Title, it.Description, it.Action, it.ImpactKgCO2)
	}
}
