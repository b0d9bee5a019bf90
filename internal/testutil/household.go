package testutil

import (
	"testing"

	"github.com/davidmcnab/hearth/internal/household"
)

// NewTestSnapshot parses a small canned household: two members, a
// rotating weekly chore, a fixed weekly chore, an archived chore, one
// skip exception and one completion. Dates start Monday 2024-01-01.
func NewTestSnapshot(t *testing.T) *household.Snapshot {
	t.Helper()

	snapshot, err := household.Parse([]byte(`
name: Test Household
members:
  - id: sam
    name: Sam
  - id: alex
    name: Alex
chores:
  - id: dishes
    title: Do the dishes
    start_date: 2024-01-01
    frequency_days: 7
    assignment_strategy: rotating
    rotation_sequence: [sam, alex]
    rotation_interval_days: 7
  - id: bins
    title: Take out the bins
    start_date: 2024-01-02
    frequency_days: 7
    assignment_strategy: fixed
    fixed_assignee_ids: [sam]
  - id: attic
    title: Clear the attic
    start_date: 2024-01-01
    frequency_days: 7
    archived: true
exceptions:
  - chore_id: dishes
    original_date: 2024-01-15
    skipped: true
completions:
  - id: done-1
    chore_id: dishes
    completed_at: 2024-01-09T19:00:00Z
    completed_by: sam
`))
	if err != nil {
		t.Fatalf("parsing test snapshot: %v", err)
	}
	return snapshot
}
