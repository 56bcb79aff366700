package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/emission"
	"github.com/dmitrijs2005/ecotracker/internal/footprint"
	"github.com/dmitrijs2005/ecotracker/internal/logging"
	"github.com/dmitrijs2005/ecotracker/internal/server/metrics"
	"github.com/dmitrijs2005/ecotracker/internal/server/models"
	"github.com/dmitrijs2005/ecotracker/internal/server/repositories/entries"
	"github.com/dmitrijs2005/ecotracker/internal/server/repositories/repomanager"
)

// Profile is the user's account information plus their dashboard.
type Profile struct {
	UserID      string                    `json:"userId"`
	UserName    string                    `json:"username"`
	MemberSince time.Time                 `json:"memberSince"`
	Dashboard   footprint.Dashboard       `json:"dashboard"`
	ByCategory  []footprint.CategoryTotal `json:"byCategory"`
}

// SummaryService recomputes summaries from stored entries on every call.
type SummaryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	calc        *emission.Calculator
	policy      footprint.NetPolicy
	metrics     *metrics.Metrics
	logger      logging.Logger
}

func NewSummaryService(db *sql.DB, rm repomanager.RepositoryManager, calc *emission.Calculator, policy footprint.NetPolicy,
	m *metrics.Metrics, logger logging.Logger) *SummaryService {
	return &SummaryService{
		db:          db,
		repomanager: rm,
		calc:        calc,
		policy:      policy,
		metrics:     m,
		logger:      logger.With("module", "summary"),
	}
}

func (s *SummaryService) Dashboard(ctx context.Context, userID string) (footprint.Dashboard, error) {
	list, err := s.entries(ctx, userID)
	if err != nil {
		return footprint.Dashboard{}, err
	}
	return footprint.NewDashboard(list, s.policy), nil
}

func (s *SummaryService) Profile(ctx context.Context, userID string) (*Profile, error) {
	if userID == "" {
		return nil, common.ErrorUnauthorized
	}
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	list, err := s.entries(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Profile{
		UserID:      user.ID,
		UserName:    user.UserName,
		MemberSince: user.CreatedAt,
		Dashboard:   footprint.NewDashboard(list, s.policy),
		ByCategory:  footprint.ByCategory(list),
	}, nil
}

// Suggestions returns the static tips for co2 kg, or for the user's positive
// net footprint when co2 is nil.
func (s *SummaryService) Suggestions(ctx context.Context, userID string, co2 *float64) (footprint.Suggestions, error) {
	if co2 != nil {
		return footprint.Suggest(*co2, s.calc.OffsetPerTree()), nil
	}
	d, err := s.Dashboard(ctx, userID)
	if err != nil {
		return footprint.Suggestions{}, err
	}
	return footprint.SuggestFor(d.Summary, s.calc.OffsetPerTree()), nil
}

func (s *SummaryService) entries(ctx context.Context, userID string) ([]footprint.Record, error) {
	if userID == "" {
		return nil, common.ErrorUnauthorized
	}
	list, err := s.repomanager.Entries(s.db).ListByUser(ctx, userID, entries.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	recs := records(list)
	s.audit(ctx, recs)
	return recs, nil
}

// audit replays each record against the current factor table and reports
// drift. The stored quantities are still the ones aggregated.
func (s *SummaryService) audit(ctx context.Context, recs []footprint.Record) {
	for _, r := range recs {
		m, err := footprint.Verify(s.calc, r)
		switch {
		case err != nil:
			s.metrics.ObserveDrift(r.Category, metrics.DriftUnreplayable)
			s.logger.Warn(ctx, "entry cannot be replayed", "entry_id", r.ID, "category", r.Category, "error", err)
		case len(m) > 0:
			s.metrics.ObserveDrift(r.Category, metrics.DriftMismatch)
			s.logger.Warn(ctx, "entry differs from current factors", "entry_id", r.ID, "category", r.Category, "mismatches", fmt.Sprint(m))
		}
	}
}

func records(list []*models.Entry) []footprint.Record {
	out := make([]footprint.Record, 0, len(list))
	for _, e := range list {
		if e == nil {
			continue
		}
		out = append(out, footprint.Record{
			ID:           e.ID,
			Category:     e.Category,
			CO2Emissions: e.CO2Emissions,
			CO2Offset:    e.CO2Offset,
			EcoPoints:    e.EcoPoints,
			Details:      e.Details,
		})
	}
	return out
}
