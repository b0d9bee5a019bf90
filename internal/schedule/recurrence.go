package schedule

import (
	"fmt"
	"time"
)

// GenerateDates produces the scheduled dates of a chore that fall inside
// [rangeStart, rangeEnd], in ascending order: startDate + k*frequencyDays
// for every k >= 0 that lands in the window and at or before endDate when
// one is set. An inverted or out-of-reach window yields no dates and no
// error; a frequency below one day or an endDate before startDate is a
// configuration defect.
func GenerateDates(startDate time.Time, frequencyDays int, endDate *time.Time, rangeStart, rangeEnd time.Time) ([]time.Time, error) {
	if frequencyDays < 1 {
		return nil, fmt.Errorf("frequency_days must be at least 1, got %d: %w", frequencyDays, ErrConfiguration)
	}

	start := Day(startDate)
	from := Day(rangeStart)
	last := Day(rangeEnd)

	if endDate != nil {
		end := Day(*endDate)
		if end.Before(start) {
			return nil, fmt.Errorf("end_date %s precedes start_date %s: %w",
				end.Format("2006-01-02"), start.Format("2006-01-02"), ErrConfiguration)
		}
		if end.Before(last) {
			last = end
		}
	}

	if Day(rangeEnd).Before(from) || start.After(Day(rangeEnd)) || last.Before(from) {
		return nil, nil
	}

	// Skip straight to the first occurrence at or after rangeStart.
	k := 0
	if start.Before(from) {
		gap := daysBetween(start, from)
		k = gap / frequencyDays
		if gap%frequencyDays != 0 {
			k++
		}
	}

	var dates []time.Time
	for date := start.AddDate(0, 0, k*frequencyDays); !date.After(last); date = date.AddDate(0, 0, frequencyDays) {
		dates = append(dates, date)
	}
	return dates, nil
}
