package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/davidmcnab/hearth/internal/schedule"
)

const dateLayout = "2006-01-02"

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// queryDate reads an optional YYYY-MM-DD query parameter, falling back
// when it is absent.
func queryDate(r *http.Request, name string, fallback time.Time) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return parsed, nil
}

// writeEngineError maps a planner failure onto a response. A
// configuration error means the stored chore data is defective, not
// that the request was bad.
func writeEngineError(w http.ResponseWriter, err error) {
	if errors.Is(err, schedule.ErrConfiguration) {
		slog.Error("chore configuration defect", "error", err)
		writeError(w, http.StatusInternalServerError, "chore configuration is invalid")
		return
	}
	slog.Error("computing occurrences", "error", err)
	writeError(w, http.StatusInternalServerError, "failed to compute schedule")
}
