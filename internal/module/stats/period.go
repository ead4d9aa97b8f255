package stats

import "time"

// Period filters map to concrete date ranges computed from "today".
const (
	PeriodWeekly   = "weekly"
	PeriodMonthly  = "monthly"
	PeriodSemester = "semester"
	PeriodYearly   = "yearly"
)

// periodLabels are the user-facing labels carried on report rows.
var periodLabels = map[string]string{
	PeriodWeekly:   "Semanal",
	PeriodMonthly:  "Mensual",
	PeriodSemester: "Semestral",
	PeriodYearly:   "Anual",
}

// PeriodRange resolves a period filter into [since, now]. An empty or
// unknown filter means no time restriction.
func PeriodRange(period string, now time.Time) (since time.Time, label string, active bool) {
	switch period {
	case PeriodWeekly:
		return now.AddDate(0, 0, -7), periodLabels[period], true
	case PeriodMonthly:
		return now.AddDate(0, -1, 0), periodLabels[period], true
	case PeriodSemester:
		return now.AddDate(0, -6, 0), periodLabels[period], true
	case PeriodYearly:
		return now.AddDate(-1, 0, 0), periodLabels[period], true
	}
	return time.Time{}, "", false
}
