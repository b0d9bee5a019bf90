// Package schedule reconstructs, for any date window, which calendar
// dates a recurring chore is due, whether each due date is pending,
// completed or skipped, and who is responsible for it. The whole
// package is a pure function of its inputs: identical arguments always
// produce the identical occurrence list, so callers re-query freely
// after every mutation instead of caching.
package schedule

import (
	"fmt"
	"time"

	"github.com/davidmcnab/hearth/internal/models"
)

// CalculateOccurrences is the single entry point consumed by the digest
// job, the weekly grid and the week list. Exceptions and completions
// must already be scoped to this chore. The result is ordered by
// ascending date. Status precedence is strict: a skip exception beats a
// matched completion, which beats pending. Assignees are resolved for
// every occurrence regardless of status, but a skipped occurrence
// reports its strategy-computed assignees, never its reassignment.
func CalculateOccurrences(chore models.ChoreDefinition, exceptions []models.ChoreException, completions []models.ChoreCompletion, rangeStart, rangeEnd time.Time) ([]models.Occurrence, error) {
	if chore.Assignment.Strategy == models.StrategyRotating && chore.Assignment.RotationIntervalDays < 1 {
		return nil, fmt.Errorf("chore %s: rotation_interval_days must be at least 1, got %d: %w",
			chore.ID, chore.Assignment.RotationIntervalDays, ErrConfiguration)
	}

	dates, err := GenerateDates(chore.StartDate, chore.FrequencyDays, chore.EndDate, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("chore %s: %w", chore.ID, err)
	}

	overrides := ResolveOverrides(dates, exceptions)
	matches := MatchCompletions(dates, chore.FrequencyDays, completions)

	occurrences := make([]models.Occurrence, 0, len(dates))
	for _, date := range dates {
		override := overrides[date]

		reassignment := override.Reassignment
		if override.Skipped {
			reassignment = nil
		}
		assignees, err := ResolveAssignees(date, chore, reassignment)
		if err != nil {
			return nil, fmt.Errorf("chore %s: %w", chore.ID, err)
		}

		occurrence := models.Occurrence{
			ChoreID:     chore.ID,
			Date:        date,
			Status:      models.OccurrencePending,
			AssigneeIDs: assignees,
		}

		switch {
		case override.Skipped:
			occurrence.Status = models.OccurrenceSkipped
		default:
			if completion, ok := matches[date]; ok {
				occurrence.Status = models.OccurrenceCompleted
				occurrence.Completion = &completion
			}
		}

		occurrences = append(occurrences, occurrence)
	}
	return occurrences, nil
}
