// Package footprint aggregates stored entries into a user's summary and
// status band.
package footprint

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/ecotracker/internal/emission"
	"github.com/shopspring/decimal"
)

// NetPolicy decides how a negative net footprint is reported.
type NetPolicy string

const (
	// NetSigned reports emissions minus offsets as is.
	NetSigned NetPolicy = "signed"
	// NetFloorZero clamps a negative net footprint to zero.
	NetFloorZero NetPolicy = "floor-zero"
)

// ParseNetPolicy accepts "signed", "floor-zero" or an empty string (signed).
func ParseNetPolicy(s string) (NetPolicy, error) {
	switch p := NetPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return NetSigned, nil
	case NetSigned, NetFloorZero:
		return p, nil
	}
	return "", fmt.Errorf("unknown net policy %q: accepted values are %s, %s", s, NetSigned, NetFloorZero)
}

// Record is a stored entry as the aggregator reads it.
type Record struct {
	ID           string
	Category     string
	CO2Emissions float64
	CO2Offset    float64
	EcoPoints    int
	// Details is the category specific payload as JSON.
	Details []byte
}

type Summary struct {
	TotalEmissions float64 `json:"totalEmissions"`
	TotalOffsets   float64 `json:"totalOffsets"`
	NetFootprint   float64 `json:"netFootprint"`
	EcoPoints      int     `json:"ecoPoints"`
	EntriesCount   int     `json:"entriesCount"`
	TreesPlanted   int     `json:"treesPlanted"`
}

// Aggregate sums entries in a single pass.
func Aggregate(entries []Record, policy NetPolicy) Summary {
	var (
		emissions = decimal.Zero
		offsets   = decimal.Zero
		s         Summary
	)

	for _, e := range entries {
		emissions = emissions.Add(decimal.NewFromFloat(e.CO2Emissions))
		offsets = offsets.Add(decimal.NewFromFloat(e.CO2Offset))
		s.EcoPoints += e.EcoPoints
		s.EntriesCount++
		if e.Category == string(emission.CategoryPlantation) {
			s.TreesPlanted += treesPlanted(e.Details)
		}
	}

	net := emissions.Sub(offsets)
	if policy == NetFloorZero && net.IsNegative() {
		net = decimal.Zero
	}

	s.TotalEmissions = emissions.Round(2).InexactFloat64()
	s.TotalOffsets = offsets.Round(2).InexactFloat64()
	s.NetFootprint = net.Round(2).InexactFloat64()
	return s
}

// treesPlanted reads the tree count of a plantation payload; anything
// unreadable counts as zero.
func treesPlanted(details []byte) int {
	var d struct {
		TreesPlanted int `json:"treesPlanted"`
	}
	if err := json.Unmarshal(details, &d); err != nil || d.TreesPlanted < 0 {
		return 0
	}
	return d.TreesPlanted
}
