package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/davidmcnab/hearth/internal/household"
	"github.com/davidmcnab/hearth/internal/models"
	"github.com/davidmcnab/hearth/internal/schedule"
)

// How far back the digest looks for overdue pending occurrences.
const digestLookbackDays = 90

// PlannerService feeds the occurrence engine from a household snapshot.
// It owns everything the engine deliberately does not: excluding
// archived chores, scoping exceptions and completions to their chore,
// merging the per-chore results, and week-start arithmetic.
type PlannerService struct {
	snapshot     *household.Snapshot
	weekStartDay time.Weekday
}

func NewPlannerService(snapshot *household.Snapshot, weekStartDay time.Weekday) *PlannerService {
	return &PlannerService{
		snapshot:     snapshot,
		weekStartDay: weekStartDay,
	}
}

func (service *PlannerService) HouseholdName() string {
	return service.snapshot.Name
}

func (service *PlannerService) Members() []models.Member {
	return service.snapshot.Members
}

func (service *PlannerService) ActiveChores() []models.ChoreDefinition {
	var chores []models.ChoreDefinition
	for _, chore := range service.snapshot.Chores {
		if chore.Archived {
			continue
		}
		chores = append(chores, chore)
	}
	return chores
}

// Exceptions returns the exception records scoped to one chore.
func (service *PlannerService) Exceptions(choreID string) []models.ChoreException {
	return service.snapshot.ExceptionsByChore[choreID]
}

// Range computes occurrences for every active chore inside the window,
// merged and ordered by date, then chore title, then chore ID.
func (service *PlannerService) Range(from, to time.Time) ([]models.Occurrence, error) {
	titles := make(map[string]string, len(service.snapshot.Chores))

	var all []models.Occurrence
	for _, chore := range service.ActiveChores() {
		titles[chore.ID] = chore.Title

		occurrences, err := schedule.CalculateOccurrences(
			chore,
			service.snapshot.ExceptionsByChore[chore.ID],
			service.snapshot.CompletionsByChore[chore.ID],
			from, to,
		)
		if err != nil {
			return nil, fmt.Errorf("calculating occurrences: %w", err)
		}
		all = append(all, occurrences...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.Before(all[j].Date)
		}
		if titles[all[i].ChoreID] != titles[all[j].ChoreID] {
			return titles[all[i].ChoreID] < titles[all[j].ChoreID]
		}
		return all[i].ChoreID < all[j].ChoreID
	})
	return all, nil
}

// WeekStart rolls the anchor back to the configured first day of the
// week (Monday or Sunday).
func (service *PlannerService) WeekStart(anchor time.Time) time.Time {
	day := schedule.Day(anchor)
	offset := (int(day.Weekday()) - int(service.weekStartDay) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

type WeekView struct {
	Start       time.Time           `json:"start"`
	End         time.Time           `json:"end"`
	Occurrences []models.Occurrence `json:"occurrences"`
}

// Week is the current-week list view.
func (service *PlannerService) Week(anchor time.Time) (WeekView, error) {
	start := service.WeekStart(anchor)
	end := start.AddDate(0, 0, 6)

	occurrences, err := service.Range(start, end)
	if err != nil {
		return WeekView{}, err
	}
	return WeekView{Start: start, End: end, Occurrences: occurrences}, nil
}

type MatrixRow struct {
	ChoreID string                `json:"chore_id"`
	Title   string                `json:"title"`
	Cells   [7]*models.Occurrence `json:"cells"`
}

type WeekMatrix struct {
	Start time.Time    `json:"start"`
	Days  [7]time.Time `json:"days"`
	Rows  []MatrixRow  `json:"rows"`
}

// Matrix is the weekly grid view: one row per active chore, one cell
// per day of the week, empty cells for days the chore is not due.
func (service *PlannerService) Matrix(anchor time.Time) (WeekMatrix, error) {
	start := service.WeekStart(anchor)

	matrix := WeekMatrix{Start: start}
	for i := range matrix.Days {
		matrix.Days[i] = start.AddDate(0, 0, i)
	}

	for _, chore := range service.ActiveChores() {
		occurrences, err := schedule.CalculateOccurrences(
			chore,
			service.snapshot.ExceptionsByChore[chore.ID],
			service.snapshot.CompletionsByChore[chore.ID],
			start, start.AddDate(0, 0, 6),
		)
		if err != nil {
			return WeekMatrix{}, fmt.Errorf("calculating occurrences: %w", err)
		}

		row := MatrixRow{ChoreID: chore.ID, Title: chore.Title}
		for _, occurrence := range occurrences {
			occurrence := occurrence
			index := int(occurrence.Date.Sub(start) / (24 * time.Hour))
			if index >= 0 && index < 7 {
				row.Cells[index] = &occurrence
			}
		}
		matrix.Rows = append(matrix.Rows, row)
	}

	sort.SliceStable(matrix.Rows, func(i, j int) bool {
		if matrix.Rows[i].Title != matrix.Rows[j].Title {
			return matrix.Rows[i].Title < matrix.Rows[j].Title
		}
		return matrix.Rows[i].ChoreID < matrix.Rows[j].ChoreID
	})
	return matrix, nil
}

type Digest struct {
	WeekStart         time.Time           `json:"week_start"`
	Overdue           []models.Occurrence `json:"overdue"`
	DueThisWeek       []models.Occurrence `json:"due_this_week"`
	CompletedThisWeek []models.Occurrence `json:"completed_this_week"`
}

// Digest buckets occurrences for the reminder digest: pending dated
// before the current week's start is overdue, pending inside the week
// is due, completions inside the week make the summary. Skipped
// occurrences are left out entirely.
func (service *PlannerService) Digest(today time.Time) (Digest, error) {
	weekStart := service.WeekStart(today)

	occurrences, err := service.Range(weekStart.AddDate(0, 0, -digestLookbackDays), weekStart.AddDate(0, 0, 6))
	if err != nil {
		return Digest{}, err
	}

	digest := Digest{WeekStart: weekStart}
	for _, occurrence := range occurrences {
		switch occurrence.Status {
		case models.OccurrencePending:
			if occurrence.Date.Before(weekStart) {
				digest.Overdue = append(digest.Overdue, occurrence)
			} else {
				digest.DueThisWeek = append(digest.DueThisWeek, occurrence)
			}
		case models.OccurrenceCompleted:
			if !occurrence.Date.Before(weekStart) {
				digest.CompletedThisWeek = append(digest.CompletedThisWeek, occurrence)
			}
		}
	}
	return digest, nil
}
