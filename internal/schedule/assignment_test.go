package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/davidmcnab/hearth/internal/models"
)

func rotatingChore(sequence []string, intervalDays int) models.ChoreDefinition {
	return models.ChoreDefinition{
		ID:            "chore-1",
		StartDate:     date(2024, 1, 1),
		FrequencyDays: 7,
		Assignment: models.Assignment{
			Strategy:             models.StrategyRotating,
			RotationSequence:     sequence,
			RotationIntervalDays: intervalDays,
		},
	}
}

func TestResolveAssignees_None(t *testing.T) {
	chore := models.ChoreDefinition{
		StartDate:  date(2024, 1, 1),
		Assignment: models.Assignment{Strategy: models.StrategyNone},
	}
	assignees, err := ResolveAssignees(date(2024, 1, 8), chore, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assignees) != 0 {
		t.Errorf("expected no assignees, got %v", assignees)
	}
}

func TestResolveAssignees_FixedVerbatim(t *testing.T) {
	chore := models.ChoreDefinition{
		StartDate: date(2024, 1, 1),
		Assignment: models.Assignment{
			Strategy:         models.StrategyFixed,
			FixedAssigneeIDs: []string{"sam", "alex"},
		},
	}
	assignees, err := ResolveAssignees(date(2024, 1, 8), chore, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assignees) != 2 || assignees[0] != "sam" || assignees[1] != "alex" {
		t.Errorf("expected configured order [sam alex], got %v", assignees)
	}
}

func TestResolveAssignees_RotationWraparound(t *testing.T) {
	chore := rotatingChore([]string{"a", "b", "c"}, 7)

	tests := []struct {
		date time.Time
		want string
	}{
		{date(2024, 1, 1), "a"},
		{date(2024, 1, 8), "b"},
		{date(2024, 1, 15), "c"},
		{date(2024, 1, 22), "a"},
		{date(2024, 1, 7), "a"}, // still inside the first turn
	}

	for _, test := range tests {
		assignees, err := ResolveAssignees(test.date, chore, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(assignees) != 1 || assignees[0] != test.want {
			t.Errorf("at %v: expected [%s], got %v", test.date, test.want, assignees)
		}
	}
}

func TestResolveAssignees_RotationIntervalIndependentOfFrequency(t *testing.T) {
	// Weekly chore, fortnightly rotation: each member keeps two
	// consecutive occurrences.
	chore := rotatingChore([]string{"a", "b"}, 14)

	tests := []struct {
		date time.Time
		want string
	}{
		{date(2024, 1, 1), "a"},
		{date(2024, 1, 8), "a"},
		{date(2024, 1, 15), "b"},
		{date(2024, 1, 22), "b"},
		{date(2024, 1, 29), "a"},
	}

	for _, test := range tests {
		assignees, err := ResolveAssignees(test.date, chore, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(assignees) != 1 || assignees[0] != test.want {
			t.Errorf("at %v: expected [%s], got %v", test.date, test.want, assignees)
		}
	}
}

func TestResolveAssignees_ReassignmentPrecedence(t *testing.T) {
	chore := rotatingChore([]string{"a", "b", "c"}, 7)

	assignees, err := ResolveAssignees(date(2024, 1, 8), chore, []string{"x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assignees) != 1 || assignees[0] != "x" {
		t.Errorf("expected reassignment [x] to win over rotation, got %v", assignees)
	}
}

func TestResolveAssignees_EmptyRotationSequence(t *testing.T) {
	chore := rotatingChore(nil, 7)

	assignees, err := ResolveAssignees(date(2024, 1, 8), chore, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(assignees) != 0 {
		t.Errorf("expected no assignees for empty sequence, got %v", assignees)
	}
}

func TestResolveAssignees_InvalidRotationInterval(t *testing.T) {
	chore := rotatingChore([]string{"a"}, 0)

	if _, err := ResolveAssignees(date(2024, 1, 8), chore, nil); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}
