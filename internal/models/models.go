package models

import "time"

type AssignmentStrategy string

const (
	StrategyNone     AssignmentStrategy = "none"
	StrategyFixed    AssignmentStrategy = "fixed"
	StrategyRotating AssignmentStrategy = "rotating"
)

type OccurrenceStatus string

const (
	OccurrencePending   OccurrenceStatus = "pending"
	OccurrenceCompleted OccurrenceStatus = "completed"
	OccurrenceSkipped   OccurrenceStatus = "skipped"
)

type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Assignment describes who is responsible for a chore's occurrences.
// Strategy selects which of the remaining fields apply: Fixed uses
// FixedAssigneeIDs, Rotating uses RotationSequence plus
// RotationIntervalDays, None uses neither.
type Assignment struct {
	Strategy             AssignmentStrategy `json:"strategy"`
	FixedAssigneeIDs     []string           `json:"fixed_assignee_ids,omitempty"`
	RotationSequence     []string           `json:"rotation_sequence,omitempty"`
	RotationIntervalDays int                `json:"rotation_interval_days,omitempty"`
}

// ChoreDefinition is a recurring chore as configured by the household.
// StartDate and EndDate are calendar dates (midnight, inclusive);
// FrequencyDays is the interval in days between consecutive due dates.
type ChoreDefinition struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	StartDate     time.Time  `json:"start_date"`
	FrequencyDays int        `json:"frequency_days"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Assignment    Assignment `json:"assignment"`
	Archived      bool       `json:"archived"`
}

// ChoreException overrides a single scheduled date of a chore.
// OriginalDate is the natural key alongside the chore ID. CreatedAt
// decides which reassignment wins when duplicate records exist.
type ChoreException struct {
	ChoreID        string    `json:"chore_id"`
	OriginalDate   time.Time `json:"original_date"`
	Skipped        bool      `json:"skipped"`
	NewAssigneeIDs []string  `json:"new_assignee_ids,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type ChoreCompletion struct {
	ID          string    `json:"id"`
	ChoreID     string    `json:"chore_id"`
	CompletedAt time.Time `json:"completed_at"`
	CompletedBy *string   `json:"completed_by,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// Occurrence is one concrete scheduled instance of a chore on a
// calendar date. Occurrences are recomputed on every query and carry no
// identity beyond (ChoreID, Date). Completion is set only when Status
// is OccurrenceCompleted, so callers can offer an undo.
type Occurrence struct {
	ChoreID     string           `json:"chore_id"`
	Date        time.Time        `json:"date"`
	Status      OccurrenceStatus `json:"status"`
	AssigneeIDs []string         `json:"assignee_ids,omitempty"`
	Completion  *ChoreCompletion `json:"completion,omitempty"`
}
