// Package models defines server-side data models persisted in the database.
package models

import "time"

// Entry is one logged activity together with the quantities computed for it
// at submission time. Entries are never updated.
type Entry struct {
	ID           string
	UserID       string
	Category     string
	OccurredAt   time.Time
	CO2Emissions float64
	CO2Offset    float64
	EcoPoints    int
	// Details is the category specific payload as JSON.
	Details   []byte
	CreatedAt time.Time
}
