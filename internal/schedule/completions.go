package schedule

import (
	"time"

	"github.com/davidmcnab/hearth/internal/models"
)

// MatchCompletions attaches at most one completion event to each
// occurrence date. A date owns the half-open claim window
// [date, date+frequencyDays); a completion belongs to the window that
// contains the calendar date of its timestamp. When several completions
// land in one window the earliest timestamp wins, with the completion ID
// as tie-break, so the pairing is independent of input order.
// Completions outside every window are left out of the result.
func MatchCompletions(dates []time.Time, frequencyDays int, completions []models.ChoreCompletion) map[time.Time]models.ChoreCompletion {
	matched := make(map[time.Time]models.ChoreCompletion)
	if len(dates) == 0 || frequencyDays < 1 {
		return matched
	}

	for _, completion := range completions {
		day := Day(completion.CompletedAt)

		for _, date := range dates {
			if day.Before(date) || !day.Before(date.AddDate(0, 0, frequencyDays)) {
				continue
			}
			current, ok := matched[date]
			if !ok || completion.CompletedAt.Before(current.CompletedAt) ||
				(completion.CompletedAt.Equal(current.CompletedAt) && completion.ID < current.ID) {
				matched[date] = completion
			}
			break
		}
	}
	return matched
}
