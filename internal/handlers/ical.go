package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/davidmcnab/hearth/internal/models"
	"github.com/davidmcnab/hearth/internal/services"
)

type ICalHandler struct {
	planner *services.PlannerService
}

func NewICalHandler(planner *services.PlannerService) *ICalHandler {
	return &ICalHandler{planner: planner}
}

// Feed publishes the household's chores as a VCALENDAR. Each chore is
// one VEVENT carrying an RRULE so subscribing calendars expand the
// same recurrence the engine computes; skip exceptions become EXDATEs.
func (handler *ICalHandler) Feed(w http.ResponseWriter, r *http.Request) {
	name := handler.planner.HouseholdName()
	if name == "" {
		name = "Hearth"
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=hearth.ics")

	var builder strings.Builder
	builder.WriteString("BEGIN:VCALENDAR\r\n")
	builder.WriteString("VERSION:2.0\r\n")
	builder.WriteString(fmt.Sprintf("PRODID:-//%s//%s//EN\r\n", name, name))
	builder.WriteString("CALSCALE:GREGORIAN\r\n")
	builder.WriteString("METHOD:PUBLISH\r\n")
	builder.WriteString(fmt.Sprintf("X-WR-CALNAME:%s\r\n", escapeICalText(name)))

	stamp := time.Now().UTC().Format("20060102T150405Z")

	for _, chore := range handler.planner.ActiveChores() {
		rule, err := choreRule(chore)
		if err != nil {
			slog.Error("building rrule for chore", "error", err, "chore_id", chore.ID)
			continue
		}

		builder.WriteString("BEGIN:VEVENT\r\n")
		builder.WriteString(fmt.Sprintf("UID:%s@hearth\r\n", chore.ID))
		builder.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICalText(chore.Title)))
		builder.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", chore.StartDate.Format("20060102")))
		builder.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", chore.StartDate.AddDate(0, 0, 1).Format("20060102")))
		builder.WriteString(fmt.Sprintf("RRULE:%s\r\n", rule.OrigOptions.RRuleString()))

		for _, exception := range handler.planner.Exceptions(chore.ID) {
			if exception.Skipped {
				builder.WriteString(fmt.Sprintf("EXDATE;VALUE=DATE:%s\r\n", exception.OriginalDate.Format("20060102")))
			}
		}

		builder.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", stamp))
		builder.WriteString("END:VEVENT\r\n")
	}

	builder.WriteString("END:VCALENDAR\r\n")
	w.Write([]byte(builder.String()))
}

func choreRule(chore models.ChoreDefinition) (*rrule.RRule, error) {
	option := rrule.ROption{
		Freq:     rrule.DAILY,
		Interval: chore.FrequencyDays,
		Dtstart:  chore.StartDate,
	}
	if chore.EndDate != nil {
		option.Until = *chore.EndDate
	}
	return rrule.NewRRule(option)
}

func escapeICalText(text string) string {
	text = strings.ReplaceAll(text, "\\", "\\\\")
	text = strings.ReplaceAll(text, ";", "\\;")
	text = strings.ReplaceAll(text, ",", "\\,")
	text = strings.ReplaceAll(text, "\n", "\\n")
	return text
}
