package client

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/emission"
	"github.com/dmitrijs2005/ecotracker/internal/footprint"
)

// Tokens is the access/refresh pair issued at login.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// TokenSaver is called after the client rotated its tokens.
type TokenSaver func(ctx context.Context, t Tokens) error

// Entry is a stored entry as returned by the server.
type Entry struct {
	ID           string
	Category     string
	OccurredAt   time.Time
	CO2Emissions float64
	CO2Offset    float64
	EcoPoints    int
	Details      json.RawMessage
	CreatedAt    time.Time
}

// Preview is the assessment of an entry that was not saved.
type Preview struct {
	Category     string
	CO2Emissions float64
	CO2Offset    float64
	EcoPoints    int
	Details      json.RawMessage
}

type Profile struct {
	UserID      string
	Username    string
	MemberSince time.Time
	Dashboard   footprint.Dashboard
	ByCategory  []footprint.CategoryTotal
}

// Report points at an exported report in object storage.
type Report struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

type Client interface {
	Close() error

	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (Tokens, error)
	SetTokens(t Tokens)
	OnTokensRefreshed(fn TokenSaver)
	Ping(ctx context.Context) error

	SubmitEntry(ctx context.Context, d emission.Details, occurredAt *time.Time) (*Entry, error)
	PreviewEntry(ctx context.Context, d emission.Details) (*Preview, error)
	ListEntries(ctx context.Context, category string, limit int) ([]Entry, error)
	Summary(ctx context.Context) (footprint.Dashboard, error)
	Profile(ctx context.Context) (*Profile, error)
	Suggestions(ctx context.Context, co2 *float64) (footprint.Suggestions, error)
	ExportReport(ctx context.Context) (*Report, error)
}
