package handlers

import (
	"net/http"
	"time"

	"github.com/davidmcnab/hearth/internal/services"
)

type ScheduleHandler struct {
	planner *services.PlannerService
}

func NewScheduleHandler(planner *services.PlannerService) *ScheduleHandler {
	return &ScheduleHandler{planner: planner}
}

func (handler *ScheduleHandler) ListChores(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, handler.planner.ActiveChores())
}

func (handler *ScheduleHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, handler.planner.Members())
}

func (handler *ScheduleHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	from, err := queryDate(r, "from", time.Time{})
	if err != nil || from.IsZero() {
		writeError(w, http.StatusBadRequest, "from is required as YYYY-MM-DD")
		return
	}
	to, err := queryDate(r, "to", time.Time{})
	if err != nil || to.IsZero() {
		writeError(w, http.StatusBadRequest, "to is required as YYYY-MM-DD")
		return
	}

	occurrences, err := handler.planner.Range(from, to)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, occurrences)
}

func (handler *ScheduleHandler) Week(w http.ResponseWriter, r *http.Request) {
	anchor, err := queryDate(r, "date", time.Now())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	week, err := handler.planner.Week(anchor)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, week)
}

func (handler *ScheduleHandler) Matrix(w http.ResponseWriter, r *http.Request) {
	anchor, err := queryDate(r, "date", time.Now())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	matrix, err := handler.planner.Matrix(anchor)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matrix)
}

func (handler *ScheduleHandler) Digest(w http.ResponseWriter, r *http.Request) {
	anchor, err := queryDate(r, "date", time.Now())
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	digest, err := handler.planner.Digest(anchor)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, digest)
}
