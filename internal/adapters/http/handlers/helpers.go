package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/buildsight/timeline-service/internal/domain"
)

// projectID extracts the projectId path parameter from the chi URL params.
func projectID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "projectId")
	if id == "" {
		return "", &domain.ValidationError{
			Fields: map[string]string{"projectId": domain.MsgRequired},
		}
	}
	return id, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}
