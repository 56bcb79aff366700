// Package emission converts logged activities into CO2 estimates.
//
// All conversions are pure: a Calculator holds a read-only factor table and
// may be shared between goroutines. A non-positive primary quantity yields a
// zero result before any other field is looked at ("no activity, no
// emissions"). Otherwise a category, fuel, plastic or energy value outside the
// accepted set, or a quantity above the per-entry bounds, is reported as
// *InvalidInputError.
package emission

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Per-entry bounds. They keep eco points and the stored decimals far from
// integer and column overflow.
const (
	MaxQuantity     = 1e9
	MaxTreesPlanted = 1_000_000
)

// VehicleResult is the outcome of a vehicle trip conversion.
type VehicleResult struct {
	CO2Emissions float64 `json:"co2Emissions"`
	FuelConsumed float64 `json:"fuelConsumed"`
}

// TreeResult is the outcome of a tree planting conversion.
type TreeResult struct {
	CO2Offset float64 `json:"co2Offset"`
	EcoPoints int     `json:"ecoPoints"`
}

type vehicleFactor struct {
	emission    decimal.Decimal
	consumption decimal.Decimal
}

// Calculator applies a fixed Factors table.
type Calculator struct {
	factors Factors

	vehicle map[string]vehicleFactor
	plastic map[string]decimal.Decimal
	energy  map[string]decimal.Decimal
	tree    decimal.Decimal

	fuels    []string
	plastics []string
	sources  []string
}

// New validates f and builds a Calculator around a private copy of it.
func New(f Factors) (*Calculator, error) {
	f = f.normalized()
	if err := f.Validate(); err != nil {
		return nil, err
	}

	c := &Calculator{
		factors:  f,
		vehicle:  make(map[string]vehicleFactor, len(f.Vehicle)),
		plastic:  make(map[string]decimal.Decimal, len(f.Plastic)),
		energy:   make(map[string]decimal.Decimal, len(f.Energy)),
		tree:     decimal.NewFromFloat(f.Tree.OffsetKgPerYear),
		fuels:    sortedKeys(f.Vehicle),
		plastics: sortedKeys(f.Plastic),
		sources:  sortedKeys(f.Energy),
	}
	for k, v := range f.Vehicle {
		c.vehicle[k] = vehicleFactor{
			emission:    decimal.NewFromFloat(v.EmissionPerUnit),
			consumption: decimal.NewFromFloat(v.ConsumptionPerKm),
		}
	}
	for k, v := range f.Plastic {
		c.plastic[k] = decimal.NewFromFloat(v)
	}
	for k, v := range f.Energy {
		c.energy[k] = decimal.NewFromFloat(v)
	}
	return c, nil
}

// Default returns a Calculator over DefaultFactors.
func Default() *Calculator {
	c, err := New(DefaultFactors())
	if err != nil {
		panic(fmt.Sprintf("emission: default factors are invalid: %v", err))
	}
	return c
}

// Factors returns a copy of the table in use.
func (c *Calculator) Factors() Factors {
	return c.factors.normalized()
}

// FuelTypes, PlasticTypes and EnergySources list the accepted values, sorted.
func (c *Calculator) FuelTypes() []string     { return append([]string(nil), c.fuels...) }
func (c *Calculator) PlasticTypes() []string  { return append([]string(nil), c.plastics...) }
func (c *Calculator) EnergySources() []string { return append([]string(nil), c.sources...) }

// VehicleEmissions converts a trip into CO2 and fuel consumed.
func (c *Calculator) VehicleEmissions(distanceKm float64, fuelType string) (VehicleResult, error) {
	distance, active, err := quantity("distance", distanceKm)
	if err != nil || !active {
		return VehicleResult{}, err
	}
	f, ok := c.vehicle[normalize(fuelType)]
	if !ok {
		return VehicleResult{}, invalid("fuelType", fuelType, c.fuels)
	}

	fuel := distance.Mul(f.consumption)
	return VehicleResult{
		CO2Emissions: round2(fuel.Mul(f.emission)),
		FuelConsumed: round2(fuel),
	}, nil
}

// PlasticEmissions converts a quantity of plastic (kg) into CO2.
func (c *Calculator) PlasticEmissions(quantityKg float64, plasticType string) (float64, error) {
	q, active, err := quantity("quantity", quantityKg)
	if err != nil || !active {
		return 0, err
	}
	factor, ok := c.plastic[normalize(plasticType)]
	if !ok {
		return 0, invalid("plasticType", plasticType, c.plastics)
	}
	return round2(q.Mul(factor)), nil
}

// EnergyEmissions converts consumed energy (kWh) into CO2. Renewable energy
// is always zero, whatever the source.
func (c *Calculator) EnergyEmissions(amountKwh float64, source string, isRenewable bool) (float64, error) {
	if isRenewable {
		return 0, nil
	}
	a, active, err := quantity("amount", amountKwh)
	if err != nil || !active {
		return 0, err
	}
	factor, ok := c.energy[normalize(source)]
	if !ok {
		return 0, invalid("energySource", source, c.sources)
	}
	return round2(a.Mul(factor)), nil
}

// TreeOffset returns the yearly offset and eco points for planted trees.
func (c *Calculator) TreeOffset(treesPlanted int) (TreeResult, error) {
	if treesPlanted <= 0 {
		return TreeResult{}, nil
	}
	if treesPlanted > MaxTreesPlanted {
		return TreeResult{}, invalid("treesPlanted", strconv.Itoa(treesPlanted), []string{"at most " + strconv.Itoa(MaxTreesPlanted)})
	}
	return TreeResult{
		CO2Offset: round2(decimal.NewFromInt(int64(treesPlanted)).Mul(c.tree)),
		EcoPoints: treesPlanted * c.factors.Tree.EcoPoints,
	}, nil
}

// OffsetPerTree is the yearly CO2 offset of a single tree.
func (c *Calculator) OffsetPerTree() float64 {
	return c.factors.Tree.OffsetKgPerYear
}

// quantity reports whether v is a positive activity amount. NaN counts as no
// activity; infinities and amounts above MaxQuantity are rejected.
func quantity(field string, v float64) (decimal.Decimal, bool, error) {
	if math.IsNaN(v) || v <= 0 {
		return decimal.Zero, false, nil
	}
	if math.IsInf(v, 0) || v > MaxQuantity {
		return decimal.Zero, false, invalid(field, strconv.FormatFloat(v, 'g', -1, 64), []string{"finite number up to 1e+09"})
	}
	return decimal.NewFromFloat(v), true, nil
}

// round2 rounds half away from zero to two decimal places.
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
