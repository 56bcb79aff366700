package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/emission"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Message  string   `json:"message"`
	Field    string   `json:"field,omitempty"`
	Accepted []string `json:"accepted,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Message: msg}})
}

// fail maps a service error to a status code and writes it.
func (s *Server) fail(ctx context.Context, w http.ResponseWriter, err error) {
	var ie *emission.InvalidInputError
	switch {
	case errors.As(err, &ie):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: errorDetail{
			Message:  ie.Error(),
			Field:    ie.Field,
			Accepted: ie.Accepted,
		}})
	case errors.Is(err, emission.ErrInvalidInput), errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrTokenExpired), errors.Is(err, common.ErrRefreshTokenExpired):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, common.ErrorAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		s.logger.Error(ctx, err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeBody reads a JSON request body into v, rejecting unknown fields.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return nil
}
