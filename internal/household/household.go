// Package household reads the household snapshot file: the members,
// chore definitions, exceptions and completions the schedule engine is
// fed with. All wire-format normalization happens here, once, so the
// engine only ever sees clean typed records.
package household

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/davidmcnab/hearth/internal/models"
	"github.com/davidmcnab/hearth/internal/schedule"
)

const (
	dateLayout = "2006-01-02"
)

// Snapshot is the parsed household state. Exceptions and completions
// are grouped by chore ID so every engine call receives pre-scoped
// input.
type Snapshot struct {
	Name               string
	Members            []models.Member
	Chores             []models.ChoreDefinition
	ExceptionsByChore  map[string][]models.ChoreException
	CompletionsByChore map[string][]models.ChoreCompletion
}

type fileFormat struct {
	Name        string             `yaml:"name"`
	Members     []memberRecord     `yaml:"members"`
	Chores      []choreRecord      `yaml:"chores"`
	Exceptions  []exceptionRecord  `yaml:"exceptions"`
	Completions []completionRecord `yaml:"completions"`
}

type memberRecord struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type choreRecord struct {
	ID            string `yaml:"id"`
	Title         string `yaml:"title"`
	StartDate     string `yaml:"start_date"`
	FrequencyDays int    `yaml:"frequency_days"`
	EndDate       string `yaml:"end_date"`
	Archived      bool   `yaml:"archived"`

	AssignmentStrategy string `yaml:"assignment_strategy"`
	// FixedAssigneeID predates FixedAssigneeIDs; it is folded into the
	// list here and never consulted past this package.
	FixedAssigneeID      string   `yaml:"fixed_assignee_id"`
	FixedAssigneeIDs     []string `yaml:"fixed_assignee_ids"`
	RotationSequence     []string `yaml:"rotation_sequence"`
	RotationIntervalDays int      `yaml:"rotation_interval_days"`
}

type exceptionRecord struct {
	ChoreID        string   `yaml:"chore_id"`
	OriginalDate   string   `yaml:"original_date"`
	Skipped        bool     `yaml:"skipped"`
	NewAssigneeIDs []string `yaml:"new_assignee_ids"`
	CreatedAt      string   `yaml:"created_at"`
}

type completionRecord struct {
	ID          string `yaml:"id"`
	ChoreID     string `yaml:"chore_id"`
	CompletedAt string `yaml:"completed_at"`
	CompletedBy string `yaml:"completed_by"`
	Notes       string `yaml:"notes"`
}

func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading household file: %w", err)
	}
	snapshot, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing household file %s: %w", path, err)
	}
	return snapshot, nil
}

func Parse(data []byte) (*Snapshot, error) {
	var file fileFormat
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w: %w", err, schedule.ErrValidation)
	}

	snapshot := &Snapshot{
		Name:               file.Name,
		ExceptionsByChore:  make(map[string][]models.ChoreException),
		CompletionsByChore: make(map[string][]models.ChoreCompletion),
	}

	for _, record := range file.Members {
		member := models.Member{ID: record.ID, Name: record.Name}
		if member.ID == "" {
			member.ID = uuid.New().String()
		}
		snapshot.Members = append(snapshot.Members, member)
	}

	for _, record := range file.Chores {
		chore, err := parseChore(record)
		if err != nil {
			return nil, err
		}
		snapshot.Chores = append(snapshot.Chores, chore)
	}

	for _, record := range file.Exceptions {
		exception, err := parseException(record)
		if err != nil {
			return nil, err
		}
		snapshot.ExceptionsByChore[exception.ChoreID] = append(snapshot.ExceptionsByChore[exception.ChoreID], exception)
	}

	for _, record := range file.Completions {
		completion, err := parseCompletion(record)
		if err != nil {
			return nil, err
		}
		snapshot.CompletionsByChore[completion.ChoreID] = append(snapshot.CompletionsByChore[completion.ChoreID], completion)
	}

	return snapshot, nil
}

func parseChore(record choreRecord) (models.ChoreDefinition, error) {
	chore := models.ChoreDefinition{
		ID:            record.ID,
		Title:         record.Title,
		FrequencyDays: record.FrequencyDays,
		Archived:      record.Archived,
	}
	if chore.ID == "" {
		chore.ID = uuid.New().String()
	}

	startDate, err := parseDate(record.StartDate)
	if err != nil {
		return models.ChoreDefinition{}, fmt.Errorf("chore %q: invalid start_date %q: %w", record.Title, record.StartDate, schedule.ErrValidation)
	}
	chore.StartDate = startDate

	if record.EndDate != "" {
		endDate, err := parseDate(record.EndDate)
		if err != nil {
			return models.ChoreDefinition{}, fmt.Errorf("chore %q: invalid end_date %q: %w", record.Title, record.EndDate, schedule.ErrValidation)
		}
		chore.EndDate = &endDate
	}

	assignment, err := parseAssignment(record)
	if err != nil {
		return models.ChoreDefinition{}, err
	}
	chore.Assignment = assignment

	return chore, nil
}

func parseAssignment(record choreRecord) (models.Assignment, error) {
	strategy := models.AssignmentStrategy(record.AssignmentStrategy)
	if record.AssignmentStrategy == "" {
		strategy = models.StrategyNone
	}

	switch strategy {
	case models.StrategyNone:
		return models.Assignment{Strategy: models.StrategyNone}, nil

	case models.StrategyFixed:
		ids := append([]string(nil), record.FixedAssigneeIDs...)
		if record.FixedAssigneeID != "" && !contains(ids, record.FixedAssigneeID) {
			ids = append(ids, record.FixedAssigneeID)
		}
		return models.Assignment{
			Strategy:         models.StrategyFixed,
			FixedAssigneeIDs: ids,
		}, nil

	case models.StrategyRotating:
		return models.Assignment{
			Strategy:             models.StrategyRotating,
			RotationSequence:     append([]string(nil), record.RotationSequence...),
			RotationIntervalDays: record.RotationIntervalDays,
		}, nil

	default:
		return models.Assignment{}, fmt.Errorf("chore %q: unknown assignment_strategy %q: %w",
			record.Title, record.AssignmentStrategy, schedule.ErrValidation)
	}
}

func parseException(record exceptionRecord) (models.ChoreException, error) {
	originalDate, err := parseDate(record.OriginalDate)
	if err != nil {
		return models.ChoreException{}, fmt.Errorf("exception for chore %s: invalid original_date %q: %w",
			record.ChoreID, record.OriginalDate, schedule.ErrValidation)
	}

	exception := models.ChoreException{
		ChoreID:        record.ChoreID,
		OriginalDate:   originalDate,
		Skipped:        record.Skipped,
		NewAssigneeIDs: append([]string(nil), record.NewAssigneeIDs...),
	}

	if record.CreatedAt != "" {
		createdAt, err := time.Parse(time.RFC3339, record.CreatedAt)
		if err != nil {
			return models.ChoreException{}, fmt.Errorf("exception for chore %s: invalid created_at %q: %w",
				record.ChoreID, record.CreatedAt, schedule.ErrValidation)
		}
		exception.CreatedAt = createdAt
	}

	return exception, nil
}

func parseCompletion(record completionRecord) (models.ChoreCompletion, error) {
	completedAt, err := time.Parse(time.RFC3339, record.CompletedAt)
	if err != nil {
		return models.ChoreCompletion{}, fmt.Errorf("completion for chore %s: invalid completed_at %q: %w",
			record.ChoreID, record.CompletedAt, schedule.ErrValidation)
	}

	completion := models.ChoreCompletion{
		ID:          record.ID,
		ChoreID:     record.ChoreID,
		CompletedAt: completedAt,
		Notes:       record.Notes,
	}
	if completion.ID == "" {
		completion.ID = uuid.New().String()
	}
	if record.CompletedBy != "" {
		completedBy := record.CompletedBy
		completion.CompletedBy = &completedBy
	}

	return completion, nil
}

func parseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return schedule.Day(parsed), nil
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
