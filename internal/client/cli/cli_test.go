package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/client/client"
	"github.com/dmitrijs2005/ecotracker/internal/client/config"
	"github.com/dmitrijs2005/ecotracker/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/ecotracker/internal/client/services"
	"github.com/dmitrijs2005/ecotracker/internal/emission"
	"github.com/dmitrijs2005/ecotracker/internal/footprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	registerUser, registerPass string
	loginUser, loginPass       string
	loginErr                   error
	loggedOut                  bool
	pingErr                    error
}

func (f *fakeAuth) Register(ctx context.Context, username, password string) (string, error) {
	f.registerUser, f.registerPass = username, password
	return "u1", nil
}
func (f *fakeAuth) Login(ctx context.Context, username, password string) error {
	f.loginUser, f.loginPass = username, password
	return f.loginErr
}
func (f *fakeAuth) Logout(ctx context.Context) error {
	f.loggedOut = true
	return nil
}
func (f *fakeAuth) Restore(ctx context.Context) (string, error) {
	return "", services.ErrNotLoggedIn
}
func (f *fakeAuth) Ping(ctx context.Context) error { return f.pingErr }

type fakeTracker struct {
	logged     emission.Details
	loggedAt   *time.Time
	previewed  emission.Details
	category   string
	limit      int
	history    []client.Entry
	dashboard  footprint.Dashboard
	profile    *client.Profile
	co2        *float64
	suggestion footprint.Suggestions
	exportDir  string
	err        error
}

func (f *fakeTracker) Log(ctx context.Context, d emission.Details, at *time.Time) (*client.Entry, error) {
	f.logged, f.loggedAt = d, at
	if f.err != nil {
		return nil, f.err
	}
	return &client.Entry{ID: "e1", Category: string(d.Category()), CO2Emissions: 23.1}, nil
}
func (f *fakeTracker) Preview(ctx context.Context, d emission.Details) (*client.Preview, error) {
	f.previewed = d
	return &client.Preview{Category: string(d.Category()), CO2Emissions: 18.48}, f.err
}
func (f *fakeTracker) History(ctx context.Context, category string, limit int) ([]client.Entry, error) {
	f.category, f.limit = category, limit
	return f.history, f.err
}
func (f *fakeTracker) Summary(ctx context.Context) (footprint.Dashboard, error) {
	return f.dashboard, f.err
}
func (f *fakeTracker) Profile(ctx context.Context) (*client.Profile, error) {
	return f.profile, f.err
}
func (f *fakeTracker) Suggest(ctx context.Context, co2 *float64) (footprint.Suggestions, error) {
	f.co2 = co2
	return f.suggestion, f.err
}
func (f *fakeTracker) Export(ctx context.Context, dir string) (*services.ExportResult, error) {
	f.exportDir = dir
	return &services.ExportResult{Path: filepath.Join(dir, "r.json"), Bytes: 12, URL: "http://s3/r.json"}, f.err
}

type harness struct {
	auth    *fakeAuth
	tracker *fakeTracker
	app     *App
	opened  int
	cfg     *config.Config
}

func newHarness(t *testing.T, loggedIn bool) *harness {
	t.Helper()
	h := &harness{auth: &fakeAuth{}, tracker: &fakeTracker{}, cfg: &config.Config{}}
	h.cfg.LoadDefaults()
	h.app = &App{auth: h.auth, tracker: h.tracker, loggedIn: loggedIn}
	if loggedIn {
		h.app.username = "alice"
	}

	orig := getPassword
	getPassword = func(in *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return GetSimpleText(in, prompt, w)
	}
	t.Cleanup(func() { getPassword = orig })
	return h
}

func (h *harness) run(stdin string, args ...string) (string, error) {
	c := &commands{
		cfg: h.cfg,
		open: func(ctx context.Context, cfg *config.Config) (*App, error) {
			h.opened++
			return h.app, nil
		},
		timeoutSec: int(h.cfg.RequestTimeout.Seconds()),
	}
	root := c.root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRegister_PromptsAndConfirms(t *testing.T) {
	h := newHarness(t, false)

	out, err := h.run("alice\nsecret\nsecret\n", "register")
	require.NoError(t, err)
	assert.Equal(t, "alice", h.auth.registerUser)
	assert.Equal(t, "secret", h.auth.registerPass)
	assert.Contains(t, out, "Registered alice (id u1)")
}

func TestRegister_PasswordMismatch(t *testing.T) {
	h := newHarness(t, false)

	_, err := h.run("secret\nother\n", "register", "alice")
	require.ErrorIs(t, err, errPasswordMismatch)
	assert.Empty(t, h.auth.registerUser)
	assert.Zero(t, h.opened)
}

func TestLogin_LogoutFlow(t *testing.T) {
	h := newHarness(t, false)

	out, err := h.run("pw\n", "login", "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", h.auth.loginUser)
	assert.Equal(t, "pw", h.auth.loginPass)
	assert.Contains(t, out, "Logged in as alice")
	assert.True(t, h.app.loggedIn)

	out, err = h.run("", "logout")
	require.NoError(t, err)
	assert.True(t, h.auth.loggedOut)
	assert.False(t, h.app.loggedIn)
	assert.Contains(t, out, "Logged out")
}

func TestLogin_Failure(t *testing.T) {
	h := newHarness(t, false)
	h.auth.loginErr = client.ErrUnauthorized

	_, err := h.run("bad\n", "login", "alice")
	require.ErrorIs(t, err, client.ErrUnauthorized)
	assert.False(t, h.app.loggedIn)
}

func TestPing(t *testing.T) {
	h := newHarness(t, false)
	out, err := h.run("", "ping")
	require.NoError(t, err)
	assert.Contains(t, out, "127.0.0.1:50051 is reachable")

	h.auth.pingErr = client.ErrUnavailable
	_, err = h.run("", "ping", "-a", "10.0.0.1:1")
	require.ErrorIs(t, err, client.ErrUnavailable)
	assert.Equal(t, "10.0.0.1:1", h.cfg.ServerEndpointAddr)
}

func TestLogVehicle(t *testing.T) {
	h := newHarness(t, true)

	out, err := h.run("", "log", "vehicle", "--distance", "100", "--fuel", "petrol", "--at", "2024-05-01T08:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, emission.VehicleDetails{Distance: 100, FuelType: "petrol"}, h.tracker.logged)
	require.NotNil(t, h.tracker.loggedAt)
	assert.Equal(t, time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC), *h.tracker.loggedAt)
	assert.Contains(t, out, "Logged vehicle entry e1: 23.10 kg CO2")
}

func TestLog_RequiresSession(t *testing.T) {
	h := newHarness(t, false)

	_, err := h.run("", "log", "plastic", "--quantity", "2", "--type", "bags")
	require.ErrorIs(t, err, services.ErrNotLoggedIn)
	assert.Nil(t, h.tracker.logged)
}

func TestLog_DryRunNeedsNoSession(t *testing.T) {
	h := newHarness(t, false)

	out, err := h.run("", "log", "energy", "--amount", "10", "--source", "coal", "--renewable", "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, emission.EnergyDetails{Amount: 10, EnergySource: "coal", IsRenewable: true}, h.tracker.previewed)
	assert.Nil(t, h.tracker.logged)
	assert.Contains(t, out, "(not saved)")
}

func TestLogEnergy_RenewableNeedsNoSource(t *testing.T) {
	h := newHarness(t, true)

	_, err := h.run("", "log", "energy", "--amount", "50", "--renewable")
	require.NoError(t, err)
	assert.Equal(t, emission.EnergyDetails{Amount: 50, IsRenewable: true}, h.tracker.logged)

	h.tracker.logged = nil
	_, err = h.run("", "log", "energy", "--amount", "50")
	require.ErrorContains(t, err, "at least one of the flags in the group [source renewable] is required")
	assert.Nil(t, h.tracker.logged)
}

func TestLog_FlagErrors(t *testing.T) {
	h := newHarness(t, true)

	_, err := h.run("", "log", "vehicle", "--distance", "5")
	require.ErrorContains(t, err, `required flag(s) "fuel" not set`)

	_, err = h.run("", "log", "vehicle", "--distance", "5", "--fuel", "diesel", "--at", "yesterday")
	require.ErrorContains(t, err, `invalid --at "yesterday"`)
	assert.Nil(t, h.tracker.logged)
}

func TestLog_ServerRejection(t *testing.T) {
	h := newHarness(t, true)
	h.tracker.err = errors.New(`invalid input: invalid fuelType "steam"`)

	_, err := h.run("", "log", "vehicle", "--distance", "5", "--fuel", "steam")
	require.ErrorContains(t, err, "steam")
}

func TestPlant(t *testing.T) {
	h := newHarness(t, true)

	_, err := h.run("", "plant", "--trees", "3", "--species", "oak")
	require.NoError(t, err)
	assert.Equal(t, emission.PlantationDetails{TreesPlanted: 3, Species: "oak"}, h.tracker.logged)
	assert.Nil(t, h.tracker.loggedAt)
}

func TestHistory(t *testing.T) {
	h := newHarness(t, true)
	h.tracker.history = []client.Entry{
		{ID: "e2", Category: "plantation", CO2Offset: 44, EcoPoints: 20, OccurredAt: time.Now()},
		{ID: "e1", Category: "vehicle", CO2Emissions: 18.48, OccurredAt: time.Now()},
	}

	out, err := h.run("", "history", "--category", "vehicle", "--limit", "2")
	require.NoError(t, err)
	assert.Equal(t, "vehicle", h.tracker.category)
	assert.Equal(t, 2, h.tracker.limit)
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "18.48")
	assert.Contains(t, out, "44.00")

	h.tracker.history = nil
	out, err = h.run("", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No entries yet.")
}

func TestSummaryAndProfile(t *testing.T) {
	h := newHarness(t, true)
	d := footprint.Dashboard{
		Summary: footprint.Summary{TotalEmissions: 196.8, TotalOffsets: 44, NetFootprint: 152.8, EcoPoints: 20, EntriesCount: 3, TreesPlanted: 2},
		Status:  footprint.Status{Label: "Moderate", Message: "You're doing okay.", Congrats: "You can do better!"},
	}
	h.tracker.dashboard = d
	h.tracker.profile = &client.Profile{
		Username:    "alice",
		MemberSince: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Dashboard:   d,
		ByCategory:  []footprint.CategoryTotal{{Category: emission.CategoryVehicle, Entries: 1, CO2Emissions: 184.8}},
	}

	out, err := h.run("", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "152.80 kg CO2")
	assert.Contains(t, out, "Status: Moderate.")

	out, err = h.run("", "profile")
	require.NoError(t, err)
	assert.Contains(t, out, "alice, member since 2024-01-01")
	assert.Contains(t, out, "184.80")
}

func TestSuggest(t *testing.T) {
	h := newHarness(t, true)
	h.tracker.suggestion = footprint.Suggestions{
		CO2:           45,
		TreesToOffset: 3,
		Items:         []footprint.Suggestion{{Title: "Plant Trees", Description: "d", Action: "plant 3 trees", ImpactKgCO2: 66}},
	}

	out, err := h.run("", "suggest")
	require.NoError(t, err)
	assert.Nil(t, h.tracker.co2)
	assert.Contains(t, out, "plant 3 tree(s)")
	assert.Contains(t, out, "1. Plant Trees")

	_, err = h.run("", "suggest", "--co2", "0")
	require.NoError(t, err)
	require.NotNil(t, h.tracker.co2)
	assert.Equal(t, 0.0, *h.tracker.co2)
}

func TestExport_UsesDownloadDir(t *testing.T) {
	h := newHarness(t, true)
	dir := t.TempDir()

	out, err := h.run("", "export", "-o", dir)
	require.NoError(t, err)
	assert.Equal(t, dir, h.tracker.exportDir)
	assert.Contains(t, out, filepath.Join(dir, "r.json"))
	assert.Contains(t, out, "http://s3/r.json")
}

func TestTimeoutFlag(t *testing.T) {
	h := newHarness(t, false)

	_, err := h.run("", "ping", "-t", "3")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, h.cfg.RequestTimeout)
}

func TestHelp_DoesNotOpenApp(t *testing.T) {
	h := newHarness(t, false)

	out, err := h.run("", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "register")
	assert.Zero(t, h.opened)
}

func TestRun_ClosesApp(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	closed := 0
	a := &App{auth: &fakeAuth{}, tracker: &fakeTracker{}, closeFn: func() error { closed++; return nil }}

	err := Run(context.Background(), cfg, []string{"ping"}, func(ctx context.Context, cfg *config.Config) (*App, error) {
		return a, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	openErr := errors.New("db locked")
	err = Run(context.Background(), cfg, []string{"ping"}, func(ctx context.Context, cfg *config.Config) (*App, error) {
		return nil, openErr
	})
	require.ErrorIs(t, err, openErr)
}

func TestNewApp_RestoresCachedSession(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabaseFile = filepath.Join(t.TempDir(), "session.db")

	a, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	assert.False(t, a.loggedIn)
	require.NoError(t, a.Close())

	db, err := client.InitDatabase(ctx, cfg.DatabaseFile)
	require.NoError(t, err)
	meta := metadata.NewSQLiteRepository(db)
	require.NoError(t, meta.Set(ctx, metadata.KeyUsername, "alice"))
	require.NoError(t, meta.Set(ctx, metadata.KeyAccessToken, "A"))
	require.NoError(t, meta.Set(ctx, metadata.KeyRefreshToken, "R"))
	require.NoError(t, db.Close())

	a, err = NewApp(ctx, cfg)
	require.NoError(t, err)
	defer a.Close()
	assert.True(t, a.loggedIn)
	assert.Equal(t, "alice", a.username)
}
