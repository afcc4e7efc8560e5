package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/andrewpaige1/todolists/logger"
	"github.com/andrewpaige1/todolists/models"
	"github.com/andrewpaige1/todolists/store"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError logs cause against the request and sends message to the client.
func writeError(w http.ResponseWriter, r *http.Request, op string, status int, message string, cause error) {
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op+": "+message, "error", cause)
	} else {
		log.Info(op+": "+message, "error", cause, "status", status)
	}
	writeJSON(w, status, errorResponse{Error: message})
}

// writeStoreError maps store and model errors onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var verr *models.ValidationError
	var rerr *models.ReferenceError

	switch {
	case errors.As(err, &verr):
		logger.FromContext(r.Context()).Info(op+": validation failed", "field", verr.Field, "rule", verr.Rule)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Error(), Field: verr.Field})
	case errors.As(err, &rerr):
		logger.FromContext(r.Context()).Info(op+": unknown reference", "field", rerr.Field, "id", rerr.ID)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: rerr.Error(), Field: rerr.Field})
	case errors.Is(err, store.ErrNotFound):
		writeError(w, r, op, http.StatusNotFound, "not found", err)
	default:
		writeError(w, r, op, http.StatusInternalServerError, "internal server error", err)
	}
}

// pathID parses a numeric path value.
func pathID(r *http.Request, name string) (uint, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return uint(id), nil
}

func decodeBody(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
