package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stauntonj/rently/internal/schedule"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDueDates_Monthly(t *testing.T) {
	got, err := schedule.DueDates(date(2024, 1, 1), schedule.FrequencyMonthly, date(2024, 4, 15))
	require.NoError(t, err)

	want := []time.Time{
		date(2024, 1, 1),
		date(2024, 2, 1),
		date(2024, 3, 1),
		date(2024, 4, 1),
	}
	assert.Equal(t, want, got)
}

func TestDueDates_Quarterly(t *testing.T) {
	got, err := schedule.DueDates(date(2024, 1, 31), schedule.FrequencyQuarterly, date(2024, 12, 31))
	require.NoError(t, err)
	require.Len(t, got, 4)

	// Roll-forward rule: Jan 31 + 3 months normalizes past Apr 30.
	assert.Equal(t, date(2024, 1, 31), got[0])
	assert.Equal(t, date(2024, 5, 1), got[1])
	assert.Equal(t, date(2024, 8, 1), got[2])
	assert.Equal(t, date(2024, 11, 1), got[3])
}

func TestDueDates_Frequencies(t *testing.T) {
	type testCase struct {
		name    string
		freq    schedule.Frequency
		start   time.Time
		asOf    time.Time
		wantLen int
		wantEnd time.Time
	}

	tests := []testCase{
		{
			name:    "Daily",
			freq:    schedule.FrequencyDaily,
			start:   date(2024, 3, 1),
			asOf:    date(2024, 3, 5),
			wantLen: 5,
			wantEnd: date(2024, 3, 5),
		},
		{
			name:    "Weekly",
			freq:    schedule.FrequencyWeekly,
			start:   date(2024, 1, 1),
			asOf:    date(2024, 1, 31),
			wantLen: 5,
			wantEnd: date(2024, 1, 29),
		},
		{
			name:    "Biannual",
			freq:    schedule.FrequencyBiannual,
			start:   date(2023, 1, 15),
			asOf:    date(2024, 1, 15),
			wantLen: 3,
			wantEnd: date(2024, 1, 15),
		},
		{
			name:    "Annual",
			freq:    schedule.FrequencyAnnual,
			start:   date(2020, 6, 1),
			asOf:    date(2024, 5, 31),
			wantLen: 4,
			wantEnd: date(2023, 6, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schedule.DueDates(tt.start, tt.freq, tt.asOf)
			require.NoError(t, err)
			require.Len(t, got, tt.wantLen)
			assert.Equal(t, tt.start, got[0])
			assert.Equal(t, tt.wantEnd, got[len(got)-1])
		})
	}
}

func TestDueDates_StartAfterAsOf(t *testing.T) {
	got, err := schedule.DueDates(date(2030, 1, 1), schedule.FrequencyMonthly, date(2024, 1, 1))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDueDates_StartEqualsAsOf(t *testing.T) {
	got, err := schedule.DueDates(date(2024, 1, 1), schedule.FrequencyMonthly, date(2024, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2024, 1, 1)}, got)
}

func TestDueDates_InvalidFrequency(t *testing.T) {
	got, err := schedule.DueDates(date(2024, 1, 1), "biweekly_invalid", date(2024, 6, 1))
	assert.ErrorIs(t, err, schedule.ErrInvalidFrequency)
	assert.Nil(t, got)
}

func TestDueDates_ZeroStart(t *testing.T) {
	got, err := schedule.DueDates(time.Time{}, schedule.FrequencyMonthly, date(2024, 6, 1))
	assert.ErrorIs(t, err, schedule.ErrInvalidDateRange)
	assert.Nil(t, got)
}

func TestDueDates_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 1, 1, 14, 30, 0, 0, time.FixedZone("CET", 3600))
	got, err := schedule.DueDates(start, schedule.FrequencyMonthly, time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2024, 1, 1), date(2024, 2, 1)}, got)
}

func TestNext_InvalidFrequency(t *testing.T) {
	_, err := schedule.Next("fortnightly", date(2024, 1, 1))
	assert.ErrorIs(t, err, schedule.ErrInvalidFrequency)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 5, 10, 23, 59, 0, 0, time.UTC)
	b := time.Date(2024, 5, 10, 0, 1, 0, 0, time.UTC)
	assert.True(t, schedule.SameDay(a, b))
	assert.False(t, schedule.SameDay(a, b.AddDate(0, 0, 1)))
}
