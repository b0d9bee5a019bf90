package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ical "github.com/arran4/golang-ical"
)

func TestICalHandler_FeedRoundTrips(t *testing.T) {
	handler := NewICalHandler(newTestPlanner(t))

	request := httptest.NewRequest(http.MethodGet, "/ical", nil)
	recorder := httptest.NewRecorder()
	handler.Feed(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	if contentType := recorder.Header().Get("Content-Type"); !strings.HasPrefix(contentType, "text/calendar") {
		t.Errorf("expected text/calendar content type, got %q", contentType)
	}

	cal, err := ical.ParseCalendar(strings.NewReader(recorder.Body.String()))
	if err != nil {
		t.Fatalf("parsing feed: %v", err)
	}

	events := cal.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events for active chores, got %d", len(events))
	}

	summaries := map[string]bool{}
	for _, e := range events {
		if prop := e.GetProperty(ical.ComponentPropertySummary); prop != nil {
			summaries[prop.Value] = true
		}
		if prop := e.GetProperty(ical.ComponentProperty("RRULE")); prop == nil {
			t.Error("event is missing its recurrence rule")
		} else if !strings.Contains(prop.Value, "INTERVAL=7") {
			t.Errorf("expected weekly interval in rrule, got %q", prop.Value)
		}
	}
	if !summaries["Do the dishes"] || !summaries["Take out the bins"] {
		t.Errorf("unexpected event summaries: %v", summaries)
	}
	if summaries["Clear the attic"] {
		t.Error("archived chore leaked into feed")
	}
}

func TestICalHandler_FeedMarksSkips(t *testing.T) {
	handler := NewICalHandler(newTestPlanner(t))

	request := httptest.NewRequest(http.MethodGet, "/ical", nil)
	recorder := httptest.NewRecorder()
	handler.Feed(recorder, request)

	if !strings.Contains(recorder.Body.String(), "EXDATE;VALUE=DATE:20240115") {
		t.Error("expected skip exception to surface as an EXDATE")
	}
}
