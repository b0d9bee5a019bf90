package schedule

import (
	"time"

	"github.com/davidmcnab/hearth/internal/models"
)

// Override is the merged effect of the exception records for one date.
// Reassignment may be present alongside Skipped; the orchestrator
// ignores it for skipped occurrences but it stays available for display.
type Override struct {
	Skipped      bool
	Reassignment []string
}

// ResolveOverrides merges exception records onto the generated dates.
// Dates without a matching exception are absent from the result. When
// duplicate records exist for one date, a skip flag from any of them
// wins, and the most recently created non-empty reassignment wins.
func ResolveOverrides(dates []time.Time, exceptions []models.ChoreException) map[time.Time]Override {
	byDate := make(map[time.Time][]models.ChoreException, len(exceptions))
	for _, exception := range exceptions {
		date := Day(exception.OriginalDate)
		byDate[date] = append(byDate[date], exception)
	}

	overrides := make(map[time.Time]Override)
	for _, date := range dates {
		rows, ok := byDate[date]
		if !ok {
			continue
		}

		var override Override
		var latest time.Time
		for _, row := range rows {
			if row.Skipped {
				override.Skipped = true
			}
			if len(row.NewAssigneeIDs) > 0 && (override.Reassignment == nil || row.CreatedAt.After(latest)) {
				override.Reassignment = append([]string(nil), row.NewAssigneeIDs...)
				latest = row.CreatedAt
			}
		}
		overrides[date] = override
	}
	return overrides
}
