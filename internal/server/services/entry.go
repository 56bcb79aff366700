package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/emission"
	"github.com/dmitrijs2005/ecotracker/internal/logging"
	"github.com/dmitrijs2005/ecotracker/internal/server/metrics"
	"github.com/dmitrijs2005/ecotracker/internal/server/models"
	"github.com/dmitrijs2005/ecotracker/internal/server/repositories/entries"
	"github.com/dmitrijs2005/ecotracker/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// newEntryID is a seam for tests.
var newEntryID = func() string { return uuid.NewString() }

// EntryService turns submitted activities into persisted entries.
type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	calc        *emission.Calculator
	metrics     *metrics.Metrics
	logger      logging.Logger
	now         func() time.Time
}

func NewEntryService(db *sql.DB, rm repomanager.RepositoryManager, calc *emission.Calculator,
	m *metrics.Metrics, logger logging.Logger) *EntryService {
	return &EntryService{
		db:          db,
		repomanager: rm,
		calc:        calc,
		metrics:     m,
		logger:      logger.With("module", "entries"),
		now:         time.Now,
	}
}

// Submit computes the quantities for d and stores a new entry owned by
// userID. A zero occurredAt means "now".
func (s *EntryService) Submit(ctx context.Context, userID string, d emission.Details, occurredAt time.Time) (*models.Entry, error) {
	if userID == "" {
		return nil, common.ErrorUnauthorized
	}

	a, err := s.assess(ctx, d)
	if err != nil {
		return nil, err
	}

	details, err := json.Marshal(a.Details)
	if err != nil {
		return nil, fmt.Errorf("error encoding details: %w", err)
	}
	if occurredAt.IsZero() {
		occurredAt = s.now()
	}

	entry := &models.Entry{
		ID:           newEntryID(),
		UserID:       userID,
		Category:     string(a.Category),
		OccurredAt:   occurredAt.UTC(),
		CO2Emissions: a.CO2Emissions,
		CO2Offset:    a.CO2Offset,
		EcoPoints:    a.EcoPoints,
		Details:      details,
	}

	saved, err := s.repomanager.Entries(s.db).Create(ctx, entry)
	if err != nil {
		s.logger.Error(ctx, "entry not saved", "user_id", userID, "category", entry.Category, "error", err)
		return nil, fmt.Errorf("error saving entry: %w", err)
	}

	s.metrics.ObserveEntry(a)
	s.logger.Info(ctx, "entry logged",
		"user_id", userID, "entry_id", saved.ID, "category", saved.Category,
		"co2_kg", saved.CO2Emissions, "offset_kg", saved.CO2Offset)
	return saved, nil
}

// Preview computes the quantities for d without storing anything.
func (s *EntryService) Preview(ctx context.Context, d emission.Details) (emission.Assessment, error) {
	return s.assess(ctx, d)
}

// History lists the user's entries, newest first. An empty category means all.
func (s *EntryService) History(ctx context.Context, userID string, filter entries.ListFilter) ([]*models.Entry, error) {
	if userID == "" {
		return nil, common.ErrorUnauthorized
	}
	if filter.Category != "" {
		c, err := emission.ParseCategory(filter.Category)
		if err != nil {
			return nil, err
		}
		filter.Category = string(c)
	}
	if filter.Limit < 0 {
		filter.Limit = 0
	}

	list, err := s.repomanager.Entries(s.db).ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	return list, nil
}

// Recent returns the latest common.RecentEntriesLimit entries.
func (s *EntryService) Recent(ctx context.Context, userID string) ([]*models.Entry, error) {
	return s.History(ctx, userID, entries.ListFilter{Limit: common.RecentEntriesLimit})
}

func (s *EntryService) assess(ctx context.Context, d emission.Details) (emission.Assessment, error) {
	a, err := s.calc.Assess(d)
	if err != nil {
		var ie *emission.InvalidInputError
		if errors.As(err, &ie) {
			s.metrics.ObserveInvalid(ie.Field)
			s.logger.Debug(ctx, "invalid input", "field", ie.Field, "value", ie.Value)
		}
		return emission.Assessment{}, err
	}
	return a, nil
}
