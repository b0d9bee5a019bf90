package schedule

import (
	"fmt"
	"time"

	"github.com/davidmcnab/hearth/internal/models"
)

// ResolveAssignees computes the members responsible for a chore on the
// given date. An explicit per-date reassignment always wins. Otherwise
// the chore's strategy decides: None yields nobody, Fixed yields the
// configured set verbatim, and Rotating selects one member of the
// rotation sequence by the number of whole rotation intervals elapsed
// since the chore's start date. The rotation interval is deliberately
// independent of the recurrence interval: a weekly chore rotating every
// fourteen days keeps the same member for two consecutive occurrences.
func ResolveAssignees(date time.Time, chore models.ChoreDefinition, reassignment []string) ([]string, error) {
	if len(reassignment) > 0 {
		return append([]string(nil), reassignment...), nil
	}

	assignment := chore.Assignment
	switch assignment.Strategy {
	case models.StrategyFixed:
		return append([]string(nil), assignment.FixedAssigneeIDs...), nil

	case models.StrategyRotating:
		if assignment.RotationIntervalDays < 1 {
			return nil, fmt.Errorf("rotation_interval_days must be at least 1, got %d: %w",
				assignment.RotationIntervalDays, ErrConfiguration)
		}
		if len(assignment.RotationSequence) == 0 {
			return nil, nil
		}
		turn := floorDiv(daysBetween(chore.StartDate, date), assignment.RotationIntervalDays)
		index := turn % len(assignment.RotationSequence)
		if index < 0 {
			index += len(assignment.RotationSequence)
		}
		return []string{assignment.RotationSequence[index]}, nil

	default:
		return nil, nil
	}
}
