// Package schedule generates rent due-date sequences from a lease's payment
// frequency. It is pure date arithmetic with no storage dependencies.
package schedule

import (
	"errors"
	"fmt"
	"time"
)

// Frequency is how often rent falls due under a lease.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyBiannual  Frequency = "biannual"
	FrequencyAnnual    Frequency = "annual"
)

var (
	// ErrInvalidFrequency is returned for a frequency value outside the known set.
	ErrInvalidFrequency = errors.New("invalid payment frequency")

	// ErrInvalidDateRange is returned when the schedule start date is unusable.
	ErrInvalidDateRange = errors.New("invalid date range")
)

// Valid reports whether f is one of the recognized frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencyBiannual, FrequencyAnnual:
		return true
	}

	return false
}

// Next returns the due date one period after d.
//
// Calendar-month periods use time.Time.AddDate semantics: a day-of-month that
// does not exist in the target month rolls forward into the next month
// (Jan 31 + 1 month = Mar 2 or Mar 3). The roll-forward rule is applied
// consistently for monthly, quarterly, biannual and annual stepping.
func Next(f Frequency, d time.Time) (time.Time, error) {
	switch f {
	case FrequencyDaily:
		return d.AddDate(0, 0, 1), nil
	case FrequencyWeekly:
		return d.AddDate(0, 0, 7), nil
	case FrequencyMonthly:
		return d.AddDate(0, 1, 0), nil
	case FrequencyQuarterly:
		return d.AddDate(0, 3, 0), nil
	case FrequencyBiannual:
		return d.AddDate(0, 6, 0), nil
	case FrequencyAnnual:
		return d.AddDate(1, 0, 0), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidFrequency, f)
}

// DueDates returns every due date from start through asOf, inclusive, stepping
// by one period of f. The first element is always start. A start after asOf
// yields an empty sequence, which is valid.
//
// Dates are compared and returned at day granularity in UTC.
func DueDates(start time.Time, f Frequency, asOf time.Time) ([]time.Time, error) {
	if start.IsZero() {
		return nil, fmt.Errorf("%w: zero start date", ErrInvalidDateRange)
	}

	if !f.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFrequency, f)
	}

	current := Day(start)
	limit := Day(asOf)

	var dates []time.Time

	for !current.After(limit) {
		dates = append(dates, current)

		next, err := Next(f, current)
		if err != nil {
			return nil, err
		}

		current = next
	}

	return dates, nil
}

// Day truncates t to UTC midnight.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day, ignoring
// time-of-day and location.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}
