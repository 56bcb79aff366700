package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/client/client"
	"github.com/dmitrijs2005/ecotracker/internal/emission"
	"github.com/dmitrijs2005/ecotracker/internal/footprint"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type fakeClient struct {
	tokens    client.Tokens
	onRefresh client.TokenSaver

	registerID  string
	registerErr error
	lastUser    string
	lastPass    string

	loginTokens client.Tokens
	loginErr    error

	pingErr error

	submitted    emission.Details
	submittedAt  *time.Time
	submitErr    error
	previewResp  *client.Preview
	listCategory string
	listLimit    int
	listResp     []client.Entry
	dashboard    footprint.Dashboard
	profile      *client.Profile
	suggestCO2   *float64
	suggestions  footprint.Suggestions
	exportResp   *client.Report
	exportErr    error
	callErr      error
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Register(ctx context.Context, username, password string) (string, error) {
	f.lastUser, f.lastPass = username, password
	return f.registerID, f.registerErr
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (client.Tokens, error) {
	f.lastUser, f.lastPass = username, password
	if f.loginErr != nil {
		return client.Tokens{}, f.loginErr
	}
	f.tokens = f.loginTokens
	return f.loginTokens, nil
}

func (f *fakeClient) SetTokens(t client.Tokens)              { f.tokens = t }
func (f *fakeClient) OnTokensRefreshed(fn client.TokenSaver) { f.onRefresh = fn }
func (f *fakeClient) Ping(ctx context.Context) error         { return f.pingErr }

func (f *fakeClient) SubmitEntry(ctx context.Context, d emission.Details, occurredAt *time.Time) (*client.Entry, error) {
	f.submitted, f.submittedAt = d, occurredAt
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return &client.Entry{ID: "e1", Category: string(d.Category())}, nil
}

func (f *fakeClient) PreviewEntry(ctx context.Context, d emission.Details) (*client.Preview, error) {
	f.submitted = d
	return f.previewResp, f.callErr
}

func (f *fakeClient) ListEntries(ctx context.Context, category string, limit int) ([]client.Entry, error) {
	f.listCategory, f.listLimit = category, limit
	return f.listResp, f.callErr
}

func (f *fakeClient) Summary(ctx context.Context) (footprint.Dashboard, error) {
	return f.dashboard, f.callErr
}

func (f *fakeClient) Profile(ctx context.Context) (*client.Profile, error) {
	return f.profile, f.callErr
}

func (f *fakeClient) Suggestions(ctx context.Context, co2 *float64) (footprint.Suggestions, error) {
	f.suggestCO2 = co2
	return f.suggestions, f.callErr
}

func (f *fakeClient) ExportReport(ctx context.Context) (*client.Report, error) {
	return f.exportResp, f.exportErr
}
