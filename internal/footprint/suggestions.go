package footprint

import (
	"fmt"
	"math"
	"strconv"
)

type Suggestion struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImpactKgCO2 float64 `json:"impactKgCO2"`
	Action      string  `json:"recommendedAction"`
}

type Suggestions struct {
	Items         []Suggestion `json:"suggestions"`
	TreesToOffset int          `json:"treesToOffset"`
	CO2           float64      `json:"co2"`
}

// Suggest returns the static tips for offsetting co2 kg. A non-positive co2
// needs no trees.
func Suggest(co2, offsetPerTree float64) Suggestions {
	if math.IsNaN(co2) || math.IsInf(co2, 0) || co2 < 0 {
		co2 = 0
	}
	trees := TreesToOffset(co2, offsetPerTree)

	return Suggestions{
		Items: []Suggestion{
			{
				Title:       "Reduce vehicle miles",
				Description: "Consider carpooling, using public transit, or switching to an efficient vehicle.",
				ImpactKgCO2: 5,
				Action:      "Try to reduce single-occupancy trips by 20%",
			},
			{
				Title:       "Reduce single-use plastics",
				Description: "Use reusable bottles and bags to reduce plastic waste and embedded emissions.",
				ImpactKgCO2: 0.5,
				Action:      "Replace disposable bottles with a reusable one",
			},
			{
				Title:       "Plant trees to offset emissions",
				Description: "Planting trees offsets CO2 over years. Use the planting calculator to estimate numbers.",
				ImpactKgCO2: -offsetPerTree,
				Action: fmt.Sprintf("Plant %d tree(s) to offset %s kg CO2",
					trees, strconv.FormatFloat(co2, 'f', -1, 64)),
			},
		},
		TreesToOffset: trees,
		CO2:           co2,
	}
}

// TreesToOffset is the number of trees whose yearly offset covers co2.
func TreesToOffset(co2, offsetPerTree float64) int {
	if co2 <= 0 || offsetPerTree <= 0 {
		return 0
	}
	return int(math.Ceil(co2 / offsetPerTree))
}

// SuggestFor uses the positive part of the summary's net footprint.
func SuggestFor(s Summary, offsetPerTree float64) Suggestions {
	return Suggest(math.Max(s.NetFootprint, 0), offsetPerTree)
}
