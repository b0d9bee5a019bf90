package schedule

import (
	"testing"
	"time"

	"github.com/davidmcnab/hearth/internal/models"
)

func TestResolveOverrides_Passthrough(t *testing.T) {
	dates := []time.Time{date(2024, 1, 1), date(2024, 1, 8)}

	overrides := ResolveOverrides(dates, nil)
	if len(overrides) != 0 {
		t.Errorf("expected no overrides, got %v", overrides)
	}
}

func TestResolveOverrides_SkipAndReassign(t *testing.T) {
	dates := []time.Time{date(2024, 1, 1), date(2024, 1, 8), date(2024, 1, 15)}
	exceptions := []models.ChoreException{
		{OriginalDate: date(2024, 1, 8), Skipped: true},
		{OriginalDate: date(2024, 1, 15), NewAssigneeIDs: []string{"maria"}},
	}

	overrides := ResolveOverrides(dates, exceptions)

	if len(overrides) != 2 {
		t.Fatalf("expected 2 overrides, got %d", len(overrides))
	}
	if !overrides[date(2024, 1, 8)].Skipped {
		t.Error("expected 2024-01-08 to be skipped")
	}
	if got := overrides[date(2024, 1, 15)].Reassignment; len(got) != 1 || got[0] != "maria" {
		t.Errorf("expected reassignment [maria], got %v", got)
	}
	if _, ok := overrides[date(2024, 1, 1)]; ok {
		t.Error("expected 2024-01-01 to pass through untouched")
	}
}

func TestResolveOverrides_ExceptionOutsideDates(t *testing.T) {
	dates := []time.Time{date(2024, 1, 1)}
	exceptions := []models.ChoreException{
		{OriginalDate: date(2024, 2, 1), Skipped: true},
	}

	overrides := ResolveOverrides(dates, exceptions)
	if len(overrides) != 0 {
		t.Errorf("exception for an ungenerated date should be ignored, got %v", overrides)
	}
}

func TestResolveOverrides_DuplicateRecords(t *testing.T) {
	target := date(2024, 1, 8)
	dates := []time.Time{target}

	t.Run("skip from any record wins", func(t *testing.T) {
		exceptions := []models.ChoreException{
			{OriginalDate: target, NewAssigneeIDs: []string{"maria"}, CreatedAt: date(2024, 1, 2)},
			{OriginalDate: target, Skipped: true, CreatedAt: date(2024, 1, 1)},
		}
		overrides := ResolveOverrides(dates, exceptions)
		if !overrides[target].Skipped {
			t.Error("expected skip flag from duplicate record to win")
		}
	})

	t.Run("most recent reassignment wins", func(t *testing.T) {
		exceptions := []models.ChoreException{
			{OriginalDate: target, NewAssigneeIDs: []string{"old"}, CreatedAt: date(2024, 1, 1)},
			{OriginalDate: target, NewAssigneeIDs: []string{"new"}, CreatedAt: date(2024, 1, 5)},
		}
		overrides := ResolveOverrides(dates, exceptions)
		if got := overrides[target].Reassignment; len(got) != 1 || got[0] != "new" {
			t.Errorf("expected most recent reassignment [new], got %v", got)
		}
	})

	t.Run("skipped date retains reassignment for display", func(t *testing.T) {
		exceptions := []models.ChoreException{
			{OriginalDate: target, Skipped: true, NewAssigneeIDs: []string{"maria"}},
		}
		overrides := ResolveOverrides(dates, exceptions)
		override := overrides[target]
		if !override.Skipped {
			t.Error("expected skip flag")
		}
		if len(override.Reassignment) != 1 {
			t.Errorf("expected stored reassignment, got %v", override.Reassignment)
		}
	})
}
