package insights

import (
	"time"

	"github.com/billfold/billfold/pkg/budget"
	"github.com/billfold/billfold/pkg/transaction"
)

// Metrics is the derived view of a month: plan totals, actual spend, and the
// spending pace that would keep the rest of the month within income.
type Metrics struct {
	Income            float64            `json:"income"`
	PlannedTotal      float64            `json:"planned_total"`
	RemainingPlanned  float64            `json:"remaining_planned"`
	ActualSpent       float64            `json:"actual_spent"`
	RemainingActual   float64            `json:"remaining_actual"`
	DaysLeft          int                `json:"days_left"`
	DailyLimit        float64            `json:"daily_limit"`
	WeeklyLimit       float64            `json:"weekly_limit"`
	PlannedByCategory map[string]float64 `json:"planned_by_category"`
	ActualByCategory  map[string]float64 `json:"actual_by_category"`
}

// ComputeMetrics derives Metrics from a plan and the month's transactions.
// It is a pure function: callers guarantee that plan belongs to month and that
// the transactions fall within it.
func ComputeMetrics(plan budget.BudgetMonth, month budget.Month, txs []transaction.Transaction, ref time.Time) Metrics {
	plannedTotal := 0.0
	plannedByCategory := map[string]float64{}
	for _, e := range plan.PlannedExpenses {
		plannedTotal += e.Amount
		plannedByCategory[e.Category] += e.Amount
	}

	actualTotal := 0.0
	actualByCategory := map[string]float64{}
	for _, tx := range txs {
		actualTotal += tx.Amount
		actualByCategory[tx.Category] += tx.Amount
	}

	remainingPlanned := plan.Income - plannedTotal
	if remainingPlanned < 0 {
		remainingPlanned = 0
	}
	// Intentionally unclamped: a negative value signals overspend.
	remainingActual := plan.Income - actualTotal

	today := dateOf(ref)
	first := month.First()
	last := month.Last()

	var daysLeft int
	switch {
	case today.Before(first):
		daysLeft = month.Days()
	case today.After(last):
		daysLeft = 0
	default:
		// Today counts as remaining.
		daysLeft = daysBetween(today, last) + 1
	}

	dailyLimit := 0.0
	if daysLeft > 0 {
		dailyLimit = remainingActual / float64(daysLeft)
	}

	return Metrics{
		Income:            plan.Income,
		PlannedTotal:      plannedTotal,
		RemainingPlanned:  remainingPlanned,
		ActualSpent:       actualTotal,
		RemainingActual:   remainingActual,
		DaysLeft:          daysLeft,
		DailyLimit:        dailyLimit,
		WeeklyLimit:       dailyLimit * 7,
		PlannedByCategory: plannedByCategory,
		ActualByCategory:  actualByCategory,
	}
}

// dateOf truncates t to its calendar date at midnight UTC.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole number of days from one midnight to another.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
