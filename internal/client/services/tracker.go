package services

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/client/client"
	"github.com/dmitrijs2005/ecotracker/internal/emission"
	"github.com/dmitrijs2005/ecotracker/internal/filex"
	"github.com/dmitrijs2005/ecotracker/internal/footprint"
	"github.com/dmitrijs2005/ecotracker/internal/netx"
)

type TrackerService interface {
	Log(ctx context.Context, d emission.Details, occurredAt *time.Time) (*client.Entry, error)
	Preview(ctx context.Context, d emission.Details) (*client.Preview, error)
	History(ctx context.Context, category string, limit int) ([]client.Entry, error)
	Summary(ctx context.Context) (footprint.Dashboard, error)
	Profile(ctx context.Context) (*client.Profile, error)
	Suggest(ctx context.Context, co2 *float64) (footprint.Suggestions, error)
	Export(ctx context.Context, dir string) (*ExportResult, error)
}

// ExportResult describes a report that was exported and downloaded.
type ExportResult struct {
	Key       string
	URL       string
	ExpiresAt time.Time
	Path      string
	Bytes     int64
}

type trackerService struct {
	client client.Client
}

func NewTrackerService(c client.Client) TrackerService {
	return &trackerService{client: c}
}

func (s *trackerService) Log(ctx context.Context, d emission.Details, occurredAt *time.Time) (*client.Entry, error) {
	if occurredAt != nil {
		at := occurredAt.UTC()
		occurredAt = &at
	}
	return s.client.SubmitEntry(ctx, d, occurredAt)
}

func (s *trackerService) Preview(ctx context.Context, d emission.Details) (*client.Preview, error) {
	return s.client.PreviewEntry(ctx, d)
}

// History lists entries newest first. An empty category means all of them;
// unknown categories are rejected before calling the server.
func (s *trackerService) History(ctx context.Context, category string, limit int) ([]client.Entry, error) {
	if category != "" {
		c, err := emission.ParseCategory(category)
		if err != nil {
			return nil, err
		}
		category = string(c)
	}
	if limit < 0 {
		limit = 0
	}
	return s.client.ListEntries(ctx, category, limit)
}

func (s *trackerService) Summary(ctx context.Context) (footprint.Dashboard, error) {
	return s.client.Summary(ctx)
}

func (s *trackerService) Profile(ctx context.Context) (*client.Profile, error) {
	return s.client.Profile(ctx)
}

func (s *trackerService) Suggest(ctx context.Context, co2 *float64) (footprint.Suggestions, error) {
	return s.client.Suggestions(ctx, co2)
}

// Export asks the server for a report and downloads it into dir.
func (s *trackerService) Export(ctx context.Context, dir string) (*ExportResult, error) {
	rep, err := s.client.ExportReport(ctx)
	if err != nil {
		return nil, err
	}

	dir, err = filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}

	dest := filepath.Join(dir, filex.ReportFileName(rep.Key))
	n, err := netx.DownloadToFile(ctx, rep.URL, dest)
	if err != nil {
		return nil, fmt.Errorf("download report: %w", err)
	}

	return &ExportResult{Key: rep.Key, URL: rep.URL, ExpiresAt: rep.ExpiresAt, Path: dest, Bytes: n}, nil
}
