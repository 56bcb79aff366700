package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/client/client"
	"github.com/dmitrijs2005/ecotracker/internal/emission"
	"github.com/dmitrijs2005/ecotracker/internal/footprint"
	"github.com/stretchr/testify/require"
)

func TestTracker_LogNormalizesTime(t *testing.T) {
	f := &fakeClient{}
	s := NewTrackerService(f)

	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	e, err := s.Log(context.Background(), emission.VehicleDetails{Distance: 10, FuelType: "diesel"}, &at)
	require.NoError(t, err)
	require.Equal(t, "vehicle", e.Category)
	require.Equal(t, time.UTC, f.submittedAt.Location())
	require.True(t, at.Equal(*f.submittedAt))

	_, err = s.Log(context.Background(), emission.PlantationDetails{TreesPlanted: 2}, nil)
	require.NoError(t, err)
	require.Nil(t, f.submittedAt)
}

func TestTracker_Preview(t *testing.T) {
	f := &fakeClient{previewResp: &client.Preview{CO2Emissions: 42}}
	s := NewTrackerService(f)

	got, err := s.Preview(context.Background(), emission.EnergyDetails{Amount: 100, EnergySource: "electricity"})
	require.NoError(t, err)
	require.Equal(t, 42.0, got.CO2Emissions)
	require.Equal(t, emission.CategoryEnergy, f.submitted.Category())
}

func TestTracker_History(t *testing.T) {
	f := &fakeClient{listResp: []client.Entry{{ID: "a"}}}
	s := NewTrackerService(f)
	ctx := context.Background()

	got, err := s.History(ctx, " Plastic ", -1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "plastic", f.listCategory)
	require.Equal(t, 0, f.listLimit)

	_, err = s.History(ctx, "", 5)
	require.NoError(t, err)
	require.Equal(t, "", f.listCategory)
	require.Equal(t, 5, f.listLimit)

	f.listCategory = "untouched"
	_, err = s.History(ctx, "boats", 5)
	require.ErrorIs(t, err, emission.ErrInvalidInput)
	require.Equal(t, "untouched", f.listCategory)
}

func TestTracker_SummaryProfileSuggest(t *testing.T) {
	f := &fakeClient{
		dashboard:   footprint.Dashboard{Summary: footprint.Summary{NetFootprint: 12}},
		profile:     &client.Profile{Username: "alice"},
		suggestions: footprint.Suggestions{TreesToOffset: 3},
	}
	s := NewTrackerService(f)
	ctx := context.Background()

	d, err := s.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, 12.0, d.Summary.NetFootprint)

	p, err := s.Profile(ctx)
	require.NoError(t, err)
	require.Equal(t, "alice", p.Username)

	co2 := 45.0
	sg, err := s.Suggest(ctx, &co2)
	require.NoError(t, err)
	require.Equal(t, 3, sg.TreesToOffset)
	require.Equal(t, &co2, f.suggestCO2)
}

func TestTracker_ExportDownloadsReport(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	exp := time.Date(2024, 1, 2, 3, 10, 0, 0, time.UTC)
	f := &fakeClient{exportResp: &client.Report{
		Key:       "reports/u1/2024/01/02/abc.json",
		URL:       ts.URL + "/reports/u1/2024/01/02/abc.json?sig=1",
		ExpiresAt: exp,
	}}
	s := NewTrackerService(f)
	dir := filepath.Join(t.TempDir(), "out")

	res, err := s.Export(context.Background(), dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "2024-01-02-abc.json"), res.Path)
	require.Equal(t, int64(len(`{"ok":true}`)), res.Bytes)
	require.Equal(t, exp, res.ExpiresAt)

	b, err := os.ReadFile(res.Path)
	require.NoError(t, err)
	require.JSONEq(t, `{"ok":true}`, string(b))
}

func TestTracker_ExportErrors(t *testing.T) {
	s := NewTrackerService(&fakeClient{exportErr: client.ErrUnauthorized})
	_, err := s.Export(context.Background(), t.TempDir())
	require.ErrorIs(t, err, client.ErrUnauthorized)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	s = NewTrackerService(&fakeClient{exportResp: &client.Report{Key: "k.json", URL: ts.URL}})
	_, err = s.Export(context.Background(), t.TempDir())
	require.ErrorContains(t, err, "download report: download failed: 403")
}
