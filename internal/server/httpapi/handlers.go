package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/emission"
	"github.com/dmitrijs2005/ecotracker/internal/server/models"
	"github.com/dmitrijs2005/ecotracker/internal/server/repositories/entries"
	"github.com/dmitrijs2005/ecotracker/internal/server/shared"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type entryResponse struct {
	ID           string          `json:"id"`
	Category     string          `json:"category"`
	OccurredAt   time.Time       `json:"occurredAt"`
	CO2Emissions float64         `json:"co2Emissions"`
	CO2Offset    float64         `json:"co2Offset"`
	EcoPoints    int             `json:"ecoPointsEarned"`
	Details      json.RawMessage `json:"details"`
	CreatedAt    time.Time       `json:"createdAt"`
}

type assessmentResponse struct {
	Category     emission.Category `json:"category"`
	CO2Emissions float64           `json:"co2Emissions"`
	CO2Offset    float64           `json:"co2Offset"`
	EcoPoints    int               `json:"ecoPointsEarned"`
	Details      emission.Details  `json:"details"`
}

func toEntryResponse(e *models.Entry) entryResponse {
	return entryResponse{
		ID:           e.ID,
		Category:     e.Category,
		OccurredAt:   e.OccurredAt,
		CO2Emissions: e.CO2Emissions,
		CO2Offset:    e.CO2Offset,
		EcoPoints:    e.EcoPoints,
		Details:      json.RawMessage(e.Details),
		CreatedAt:    e.CreatedAt,
	}
}

func toEntryList(list []*models.Entry) []entryResponse {
	out := make([]entryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEntryResponse(e))
	}
	return out
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decodeBody(r, &req); err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	u, err := s.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"userId": u.ID, "username": u.UserName})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := decodeBody(r, &req); err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	pair, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeBody(r, &req); err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	pair, err := s.users.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, pair)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeBody(r, &req); err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	if err := s.users.Logout(r.Context(), req.RefreshToken); err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// readDetails decodes the request body as the details of the {category} in
// the path.
func readDetails(w http.ResponseWriter, r *http.Request) (emission.Details, error) {
	c, err := emission.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		return nil, err
	}
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return emission.DecodeDetails(c, raw)
}

func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	d, err := readDetails(w, r)
	if err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	a, err := s.entries.Preview(r.Context(), d)
	if err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, assessmentResponse{
		Category:     a.Category,
		CO2Emissions: a.CO2Emissions,
		CO2Offset:    a.CO2Offset,
		EcoPoints:    a.EcoPoints,
		Details:      a.Details,
	})
}

// handleSubmit stores an entry. The optional occurredAt query parameter is an
// RFC 3339 timestamp.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	userID, _ := shared.UserIDFromContext(r.Context())

	var at time.Time
	if v := r.URL.Query().Get("occurredAt"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "occurredAt must be an RFC 3339 timestamp")
			return
		}
		at = t
	}

	d, err := readDetails(w, r)
	if err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	e, err := s.entries.Submit(r.Context(), userID, d, at)
	if err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEntryResponse(e))
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID, _ := shared.UserIDFromContext(r.Context())

	filter := entries.ListFilter{Category: r.URL.Query().Get("category")}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filter.Limit = n
	}

	list, err := s.entries.History(r.Context(), userID, filter)
	if err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": toEntryList(list)})
}

func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	userID, _ := shared.UserIDFromContext(r.Context())

	list, err := s.entries.Recent(r.Context(), userID)
	if err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": toEntryList(list)})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	userID, _ := shared.UserIDFromContext(r.Context())

	d, err := s.summary.Dashboard(r.Context(), userID)
	if err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := shared.UserIDFromContext(r.Context())

	p, err := s.summary.Profile(r.Context(), userID)
	if err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleSuggestions answers for the co2 query parameter when present and for
// the caller's net footprint otherwise.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	userID, _ := shared.UserIDFromContext(r.Context())

	var co2 *float64
	if v := r.URL.Query().Get("co2"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "co2 must be a number")
			return
		}
		co2 = &f
	}

	sg, err := s.summary.Suggestions(r.Context(), userID, co2)
	if err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, sg)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	userID, _ := shared.UserIDFromContext(r.Context())

	res, err := s.reports.Export(r.Context(), userID)
	if err != nil {
		s.fail(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
