package footprint

import (
	"github.com/dmitrijs2005/ecotracker/internal/emission"
	"github.com/shopspring/decimal"
)

type Dashboard struct {
	Summary Summary `json:"summary"`
	Status  Status  `json:"status"`
}

func NewDashboard(entries []Record, policy NetPolicy) Dashboard {
	s := Aggregate(entries, policy)
	return Dashboard{Summary: s, Status: Classify(s)}
}

// CategoryTotal is the subtotal of one category.
type CategoryTotal struct {
	Category     emission.Category `json:"category"`
	Entries      int               `json:"entries"`
	CO2Emissions float64           `json:"co2Emissions"`
	CO2Offset    float64           `json:"co2Offset"`
}

// ByCategory returns one subtotal per known category, in display order,
// including categories with no entries.
func ByCategory(entries []Record) []CategoryTotal {
	type acc struct {
		n         int
		emissions decimal.Decimal
		offsets   decimal.Decimal
	}
	sums := make(map[string]*acc, len(emission.Categories))
	for _, c := range emission.Categories {
		sums[string(c)] = &acc{}
	}

	for _, e := range entries {
		a, ok := sums[e.Category]
		if !ok {
			continue
		}
		a.n++
		a.emissions = a.emissions.Add(decimal.NewFromFloat(e.CO2Emissions))
		a.offsets = a.offsets.Add(decimal.NewFromFloat(e.CO2Offset))
	}

	out := make([]CategoryTotal, 0, len(emission.Categories))
	for _, c := range emission.Categories {
		a := sums[string(c)]
		out = append(out, CategoryTotal{
			Category:     c,
			Entries:      a.n,
			CO2Emissions: a.emissions.Round(2).InexactFloat64(),
			CO2Offset:    a.offsets.Round(2).InexactFloat64(),
		})
	}
	return out
}
