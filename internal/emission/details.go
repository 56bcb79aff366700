package emission

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Category is the kind of logged activity.
type Category string

const (
	CategoryVehicle    Category = "vehicle"
	CategoryPlastic    Category = "plastic"
	CategoryEnergy     Category = "energy"
	CategoryPlantation Category = "plantation"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryVehicle, CategoryPlastic, CategoryEnergy, CategoryPlantation}

func categoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return names
}

// ParseCategory maps a user supplied name onto a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(normalize(s))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", invalid("category", s, categoryNames())
}

// Details is the category specific payload of an entry.
type Details interface {
	Category() Category
}

type VehicleDetails struct {
	Distance     float64 `json:"distance"`
	FuelType     string  `json:"fuelType"`
	FuelConsumed float64 `json:"fuelConsumed,omitempty"`
}

type PlasticDetails struct {
	Quantity    float64 `json:"quantity"`
	PlasticType string  `json:"plasticType"`
}

type EnergyDetails struct {
	Amount       float64 `json:"amount"`
	EnergySource string  `json:"energySource"`
	IsRenewable  bool    `json:"isRenewable"`
}

type PlantationDetails struct {
	TreesPlanted int    `json:"treesPlanted"`
	Species      string `json:"species,omitempty"`
	Location     string `json:"location,omitempty"`
}

func (VehicleDetails) Category() Category    { return CategoryVehicle }
func (PlasticDetails) Category() Category    { return CategoryPlastic }
func (EnergyDetails) Category() Category     { return CategoryEnergy }
func (PlantationDetails) Category() Category { return CategoryPlantation }

// Assessment is what an entry stores besides its identity: the computed
// quantities and the normalised details they were computed from.
type Assessment struct {
	Category     Category
	CO2Emissions float64
	CO2Offset    float64
	EcoPoints    int
	Details      Details
}

// Assess computes the quantities for d. The returned Details carry normalised
// enum values and, for vehicles, the computed fuel consumption.
func (c *Calculator) Assess(d Details) (Assessment, error) {
	switch d := d.(type) {
	case VehicleDetails:
		r, err := c.VehicleEmissions(d.Distance, d.FuelType)
		if err != nil {
			return Assessment{}, err
		}
		d.FuelType = normalize(d.FuelType)
		d.FuelConsumed = r.FuelConsumed
		return Assessment{Category: CategoryVehicle, CO2Emissions: r.CO2Emissions, Details: d}, nil

	case PlasticDetails:
		co2, err := c.PlasticEmissions(d.Quantity, d.PlasticType)
		if err != nil {
			return Assessment{}, err
		}
		d.PlasticType = normalize(d.PlasticType)
		return Assessment{Category: CategoryPlastic, CO2Emissions: co2, Details: d}, nil

	case EnergyDetails:
		co2, err := c.EnergyEmissions(d.Amount, d.EnergySource, d.IsRenewable)
		if err != nil {
			return Assessment{}, err
		}
		d.EnergySource = normalize(d.EnergySource)
		return Assessment{Category: CategoryEnergy, CO2Emissions: co2, Details: d}, nil

	case PlantationDetails:
		r, err := c.TreeOffset(d.TreesPlanted)
		if err != nil {
			return Assessment{}, err
		}
		return Assessment{Category: CategoryPlantation, CO2Offset: r.CO2Offset, EcoPoints: r.EcoPoints, Details: d}, nil

	case nil:
		return Assessment{}, invalid("category", "", categoryNames())
	}
	return Assessment{}, invalid("category", string(d.Category()), categoryNames())
}

// DecodeDetails parses the JSON payload of the given category. Malformed
// payloads and unknown fields match ErrInvalidInput.
func DecodeDetails(category Category, raw []byte) (Details, error) {
	var d Details
	switch category {
	case CategoryVehicle:
		var v VehicleDetails
		if err := strictUnmarshal(raw, &v); err != nil {
			return nil, err
		}
		d = v
	case CategoryPlastic:
		var v PlasticDetails
		if err := strictUnmarshal(raw, &v); err != nil {
			return nil, err
		}
		d = v
	case CategoryEnergy:
		var v EnergyDetails
		if err := strictUnmarshal(raw, &v); err != nil {
			return nil, err
		}
		d = v
	case CategoryPlantation:
		var v PlantationDetails
		if err := strictUnmarshal(raw, &v); err != nil {
			return nil, err
		}
		d = v
	default:
		return nil, invalid("category", string(category), categoryNames())
	}
	return d, nil
}

func strictUnmarshal(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: decode details: %v", ErrInvalidInput, err)
	}
	return nil
}
