package footprint

import (
	"fmt"

	"github.com/dmitrijs2005/ecotracker/internal/emission"
)

// Mismatch describes a stored quantity that differs from a fresh computation.
type Mismatch struct {
	Field  string
	Stored float64
	Fresh  float64
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: stored %v, computed %v", m.Field, m.Stored, m.Fresh)
}

// Verify recomputes e from its category and details. It returns the fields
// that differ, or an error when the entry cannot be replayed at all.
func Verify(calc *emission.Calculator, e Record) ([]Mismatch, error) {
	category, err := emission.ParseCategory(e.Category)
	if err != nil {
		return nil, err
	}
	details, err := emission.DecodeDetails(category, e.Details)
	if err != nil {
		return nil, err
	}
	a, err := calc.Assess(details)
	if err != nil {
		return nil, err
	}

	var out []Mismatch
	if a.CO2Emissions != e.CO2Emissions {
		out = append(out, Mismatch{"co2Emissions", e.CO2Emissions, a.CO2Emissions})
	}
	if a.CO2Offset != e.CO2Offset {
		out = append(out, Mismatch{"co2Offset", e.CO2Offset, a.CO2Offset})
	}
	if a.EcoPoints != e.EcoPoints {
		out = append(out, Mismatch{"ecoPoints", float64(e.EcoPoints), float64(a.EcoPoints)})
	}
	return out, nil
}
