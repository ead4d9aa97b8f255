package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPeriodRange(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		period string
		since  time.Time
		label  string
	}{
		{PeriodWeekly, now.AddDate(0, 0, -7), "Semanal"},
		{PeriodMonthly, now.AddDate(0, -1, 0), "Mensual"},
		{PeriodSemester, now.AddDate(0, -6, 0), "Semestral"},
		{PeriodYearly, now.AddDate(-1, 0, 0), "Anual"},
	}

	for _, tc := range cases {
		since, label, active := PeriodRange(tc.period, now)
		require.True(t, active, tc.period)
		require.Equal(t, tc.since, since, tc.period)
		require.Equal(t, tc.label, label, tc.period)
	}
}

func TestPeriodRangeUnknownMeansNoRestriction(t *testing.T) {
	now := time.Now()

	for _, period := range []string{"", "quarterly", "todo"} {
		_, label, active := PeriodRange(period, now)
		require.False(t, active, period)
		require.Empty(t, label, period)
	}
}
