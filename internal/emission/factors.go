package emission

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// VehicleFactor converts distance into fuel and fuel into CO2.
type VehicleFactor struct {
	// kg CO2 per unit of fuel (litre, kWh or kg depending on the fuel).
	EmissionPerUnit float64 `toml:"emission_per_unit" json:"emissionPerUnit"`
	// units of fuel burned per km.
	ConsumptionPerKm float64 `toml:"consumption_per_km" json:"consumptionPerKm"`
}

// TreeFactor describes what a single planted tree is worth.
type TreeFactor struct {
	OffsetKgPerYear float64 `toml:"offset_kg_per_year" json:"offsetKgPerYear"`
	EcoPoints       int     `toml:"eco_points" json:"ecoPoints"`
}

// Factors is the emission-factor table used by a Calculator. It is built once
// at start-up and handed to New; the Calculator never reads ambient state.
type Factors struct {
	Vehicle map[string]VehicleFactor `toml:"vehicle" json:"vehicle"`
	Plastic map[string]float64       `toml:"plastic" json:"plastic"`
	Energy  map[string]float64       `toml:"energy" json:"energy"`
	Tree    TreeFactor               `toml:"tree" json:"tree"`
}

// DefaultFactors returns the reference table.
func DefaultFactors() Factors {
	return Factors{
		Vehicle: map[string]VehicleFactor{
			"petrol":   {EmissionPerUnit: 2.31, ConsumptionPerKm: 0.08},
			"diesel":   {EmissionPerUnit: 2.68, ConsumptionPerKm: 0.07},
			"electric": {EmissionPerUnit: 0.42, ConsumptionPerKm: 0.2},
			"hybrid":   {EmissionPerUnit: 1.5, ConsumptionPerKm: 0.05},
			"cng":      {EmissionPerUnit: 2.75, ConsumptionPerKm: 0.06},
		},
		Plastic: map[string]float64{
			"single-use": 6.0,
			"bottles":    6.0,
			"bags":       6.0,
			"packaging":  6.0,
		},
		Energy: map[string]float64{
			"natural-gas": 0.18,
			"electricity": 0.42,
			"heating-oil": 0.27,
			"coal":        0.34,
		},
		Tree: TreeFactor{OffsetKgPerYear: 22, EcoPoints: 10},
	}
}

// LoadFactors reads a TOML file on top of DefaultFactors. Keys present in the
// file replace (or add) entries of the default table; unknown keys are an
// error so that typos do not silently fall back to defaults.
//
//	[vehicle.petrol]
//	emission_per_unit = 2.31
//	consumption_per_km = 0.08
//
//	[energy]
//	electricity = 0.233
func LoadFactors(path string) (Factors, error) {
	f := DefaultFactors()

	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return Factors{}, fmt.Errorf("decode factors %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Factors{}, fmt.Errorf("decode factors %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	f = f.normalized()
	if err := f.Validate(); err != nil {
		return Factors{}, err
	}
	return f, nil
}

// maxTreeEcoPoints keeps MaxTreesPlanted trees within an int32.
const maxTreeEcoPoints = 1000

// Validate rejects negative or oversized factors and empty categories.
func (f Factors) Validate() error {
	var errs []error

	if len(f.Vehicle) == 0 {
		errs = append(errs, errors.New("factors: no vehicle fuel types"))
	}
	for k, v := range f.Vehicle {
		if v.EmissionPerUnit < 0 || v.ConsumptionPerKm < 0 {
			errs = append(errs, fmt.Errorf("factors: vehicle %q has a negative factor", k))
		}
	}
	if len(f.Plastic) == 0 {
		errs = append(errs, errors.New("factors: no plastic types"))
	}
	for k, v := range f.Plastic {
		if v < 0 {
			errs = append(errs, fmt.Errorf("factors: plastic %q has a negative factor", k))
		}
	}
	if len(f.Energy) == 0 {
		errs = append(errs, errors.New("factors: no energy sources"))
	}
	for k, v := range f.Energy {
		if v < 0 {
			errs = append(errs, fmt.Errorf("factors: energy %q has a negative factor", k))
		}
	}
	if f.Tree.OffsetKgPerYear < 0 || f.Tree.EcoPoints < 0 {
		errs = append(errs, errors.New("factors: tree factor is negative"))
	}
	if f.Tree.EcoPoints > maxTreeEcoPoints {
		errs = append(errs, fmt.Errorf("factors: tree eco points above %d", maxTreeEcoPoints))
	}

	return errors.Join(errs...)
}

func (f Factors) normalized() Factors {
	out := Factors{
		Vehicle: make(map[string]VehicleFactor, len(f.Vehicle)),
		Plastic: make(map[string]float64, len(f.Plastic)),
		Energy:  make(map[string]float64, len(f.Energy)),
		Tree:    f.Tree,
	}
	for k, v := range f.Vehicle {
		out.Vehicle[normalize(k)] = v
	}
	for k, v := range f.Plastic {
		out.Plastic[normalize(k)] = v
	}
	for k, v := range f.Energy {
		out.Energy[normalize(k)] = v
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
