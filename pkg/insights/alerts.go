package insights

import (
	"fmt"
	"sort"
	"time"

	"github.com/billfold/billfold/pkg/budget"
)

type AlertType string

const (
	AlertOverspend AlertType = "overspend"
	AlertLowBudget AlertType = "low_budget"
	AlertDueSoon   AlertType = "due_soon"
)

type AlertLevel string

const (
	LevelInfo    AlertLevel = "info"
	LevelWarning AlertLevel = "warning"
	LevelDanger  AlertLevel = "danger"
)

// Alert is a computed notice about budget state. Alerts are recomputed on
// every request and never persisted.
type Alert struct {
	Month   string     `json:"month"`
	Type    AlertType  `json:"type"`
	Message string     `json:"message"`
	Level   AlertLevel `json:"level"`
}

const (
	// Overspend escalates from warning to danger past 125% of the planned amount.
	overspendDangerFactor = 1.25
	// Low budget fires when remaining income drops to 10% or below.
	lowBudgetRatio = 0.1
	// Due soon covers bills due within the next 5 days; 3 or more days out is
	// informational, closer than that is a warning.
	dueSoonWindowDays = 5
	dueSoonInfoDays   = 3
)

// ComputeAlerts evaluates the alert rules over a plan and its metrics.
// A nil plan yields no alerts. Output order is fixed: overspend alerts first
// (categories in sorted order), then low budget, then due soon.
func ComputeAlerts(plan *budget.BudgetMonth, month budget.Month, m Metrics, ref time.Time) []Alert {
	alerts := []Alert{}
	if plan == nil {
		return alerts
	}
	monthStr := month.String()

	categories := make([]string, 0, len(m.PlannedByCategory))
	for category := range m.PlannedByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		plannedAmt := m.PlannedByCategory[category]
		actualAmt := m.ActualByCategory[category]
		if actualAmt > plannedAmt && plannedAmt > 0 {
			level := LevelWarning
			if actualAmt > plannedAmt*overspendDangerFactor {
				level = LevelDanger
			}
			alerts = append(alerts, Alert{
				Month:   monthStr,
				Type:    AlertOverspend,
				Message: fmt.Sprintf("Spending in %s is over plan (planned %.2f, actual %.2f).", category, plannedAmt, actualAmt),
				Level:   level,
			})
		}
	}

	if m.Income > 0 && m.RemainingActual/m.Income <= lowBudgetRatio {
		level := LevelDanger
		if m.RemainingActual > 0 {
			level = LevelWarning
		}
		alerts = append(alerts, Alert{
			Month:   monthStr,
			Type:    AlertLowBudget,
			Message: "Remaining monthly budget is below 10% of income.",
			Level:   level,
		})
	}

	today := dateOf(ref)
	lastDay := month.Days()
	for _, e := range plan.PlannedExpenses {
		if e.DueDay == 0 {
			continue
		}
		// Clamp to the month's actual length: due day 31 in a 30-day month
		// means the last day.
		dueDay := e.DueDay
		if dueDay < 1 {
			dueDay = 1
		}
		if dueDay > lastDay {
			dueDay = lastDay
		}
		dueDate := time.Date(month.Year, month.Month, dueDay, 0, 0, 0, 0, time.UTC)
		daysUntil := daysBetween(today, dueDate)
		if daysUntil < 0 || daysUntil > dueSoonWindowDays {
			continue
		}
		level := LevelWarning
		if daysUntil >= dueSoonInfoDays {
			level = LevelInfo
		}
		alerts = append(alerts, Alert{
			Month:   monthStr,
			Type:    AlertDueSoon,
			Message: fmt.Sprintf("%s is due in %d day(s).", e.Name, daysUntil),
			Level:   level,
		})
	}

	return alerts
}
