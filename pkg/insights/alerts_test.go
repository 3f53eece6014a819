package insights

import (
	"fmt"
	"testing"
	"time"

	"github.com/billfold/billfold/pkg/budget"
	"github.com/billfold/billfold/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func computeAlertsForPlan(plan budget.BudgetMonth, txs []transaction.Transaction, ref time.Time) []Alert {
	m := ComputeMetrics(plan, february, txs, ref)
	return ComputeAlerts(&plan, february, m, ref)
}

func TestComputeAlerts_NilPlan(t *testing.T) {
	alerts := ComputeAlerts(nil, february, Metrics{}, time.Now())

	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

func TestComputeAlerts_DueSoon(t *testing.T) {
	t.Run("upcoming bill four days out is informational", func(t *testing.T) {
		ref := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

		alerts := computeAlertsForPlan(februaryPlan(), nil, ref)

		require.Len(t, alerts, 1)
		assert.Equal(t, AlertDueSoon, alerts[0].Type)
		assert.Equal(t, LevelInfo, alerts[0].Level)
		assert.Equal(t, "Rent is due in 4 day(s).", alerts[0].Message)
		assert.Equal(t, "2024-02", alerts[0].Month)
	})

	t.Run("bill due in under three days is a warning", func(t *testing.T) {
		ref := time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC)

		alerts := computeAlertsForPlan(februaryPlan(), nil, ref)

		require.Len(t, alerts, 1)
		assert.Equal(t, LevelWarning, alerts[0].Level)
		assert.Equal(t, "Rent is due in 2 day(s).", alerts[0].Message)
	})

	t.Run("bill due today is a warning", func(t *testing.T) {
		ref := time.Date(2024, time.February, 5, 8, 30, 0, 0, time.UTC)

		alerts := computeAlertsForPlan(februaryPlan(), nil, ref)

		require.Len(t, alerts, 1)
		assert.Equal(t, LevelWarning, alerts[0].Level)
		assert.Equal(t, "Rent is due in 0 day(s).", alerts[0].Message)
	})

	t.Run("bill already past emits nothing", func(t *testing.T) {
		ref := time.Date(2024, time.February, 6, 0, 0, 0, 0, time.UTC)

		alerts := computeAlertsForPlan(februaryPlan(), nil, ref)

		assert.Empty(t, alerts)
	})

	t.Run("bill further than five days out emits nothing", func(t *testing.T) {
		ref := time.Date(2024, time.January, 25, 0, 0, 0, 0, time.UTC)

		alerts := computeAlertsForPlan(februaryPlan(), nil, ref)

		assert.Empty(t, alerts)
	})

	t.Run("exactly five days out is informational", func(t *testing.T) {
		plan := februaryPlan()
		plan.PlannedExpenses[0].DueDay = 20
		ref := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)

		alerts := computeAlertsForPlan(plan, nil, ref)

		require.Len(t, alerts, 1)
		assert.Equal(t, LevelInfo, alerts[0].Level)
		assert.Equal(t, "Rent is due in 5 day(s).", alerts[0].Message)
	})

	t.Run("due day beyond the month is clamped to its last day", func(t *testing.T) {
		plan := februaryPlan()
		plan.PlannedExpenses[0].DueDay = 31 // February 2024 has 29 days
		ref := time.Date(2024, time.February, 27, 0, 0, 0, 0, time.UTC)

		alerts := computeAlertsForPlan(plan, nil, ref)

		require.Len(t, alerts, 1)
		assert.Equal(t, "Rent is due in 2 day(s).", alerts[0].Message)
	})

	t.Run("expenses without a due day are skipped", func(t *testing.T) {
		plan := februaryPlan()
		plan.PlannedExpenses[0].DueDay = 0
		ref := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

		alerts := computeAlertsForPlan(plan, nil, ref)

		assert.Empty(t, alerts)
	})
}

func TestComputeAlerts_Overspend(t *testing.T) {
	// Reference date past the due window so only spend-based alerts fire.
	ref := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)

	rentTx := func(amount float64) []transaction.Transaction {
		return []transaction.Transaction{
			{Amount: amount, Category: "rent", Date: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)},
		}
	}

	t.Run("moderate overspend is a warning", func(t *testing.T) {
		alerts := computeAlertsForPlan(februaryPlan(), rentTx(1300), ref)

		require.Len(t, alerts, 2)
		assert.Equal(t, AlertOverspend, alerts[0].Type)
		assert.Equal(t, LevelWarning, alerts[0].Level)
		assert.Equal(t, "Spending in rent is over plan (planned 1200.00, actual 1300.00).", alerts[0].Message)
		// Spending 1300 of a 1000 income also trips the low budget rule.
		assert.Equal(t, AlertLowBudget, alerts[1].Type)
		assert.Equal(t, LevelDanger, alerts[1].Level)
	})

	t.Run("exactly 125 percent of plan stays a warning", func(t *testing.T) {
		alerts := computeAlertsForPlan(februaryPlan(), rentTx(1500), ref)

		require.NotEmpty(t, alerts)
		assert.Equal(t, AlertOverspend, alerts[0].Type)
		assert.Equal(t, LevelWarning, alerts[0].Level)
	})

	t.Run("beyond 125 percent of plan escalates to danger", func(t *testing.T) {
		alerts := computeAlertsForPlan(februaryPlan(), rentTx(1501), ref)

		require.NotEmpty(t, alerts)
		assert.Equal(t, AlertOverspend, alerts[0].Type)
		assert.Equal(t, LevelDanger, alerts[0].Level)
	})

	t.Run("spend at or under plan emits nothing", func(t *testing.T) {
		alerts := computeAlertsForPlan(februaryPlan(), rentTx(1200), ref)

		for _, alert := range alerts {
			assert.NotEqual(t, AlertOverspend, alert.Type)
		}
	})

	t.Run("unplanned categories never overspend", func(t *testing.T) {
		txs := []transaction.Transaction{
			{Amount: 50, Category: "coffee", Date: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)},
		}

		alerts := computeAlertsForPlan(februaryPlan(), txs, ref)

		for _, alert := range alerts {
			assert.NotEqual(t, AlertOverspend, alert.Type)
		}
	})
}

func TestComputeAlerts_LowBudget(t *testing.T) {
	ref := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)

	spend := func(amount float64) []transaction.Transaction {
		return []transaction.Transaction{
			{Amount: amount, Category: "misc", Date: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)},
		}
	}

	t.Run("remaining at ten percent is a warning", func(t *testing.T) {
		alerts := computeAlertsForPlan(februaryPlan(), spend(900), ref)

		require.Len(t, alerts, 1)
		assert.Equal(t, AlertLowBudget, alerts[0].Type)
		assert.Equal(t, LevelWarning, alerts[0].Level)
		assert.Equal(t, "Remaining monthly budget is below 10% of income.", alerts[0].Message)
	})

	t.Run("nothing remaining is danger", func(t *testing.T) {
		alerts := computeAlertsForPlan(februaryPlan(), spend(1000), ref)

		require.Len(t, alerts, 1)
		assert.Equal(t, LevelDanger, alerts[0].Level)
	})

	t.Run("remaining above ten percent emits nothing", func(t *testing.T) {
		alerts := computeAlertsForPlan(februaryPlan(), spend(880), ref)

		assert.Empty(t, alerts)
	})

	t.Run("zero income never emits low budget", func(t *testing.T) {
		plan := februaryPlan()
		plan.Income = 0

		alerts := computeAlertsForPlan(plan, spend(100), ref)

		assert.Empty(t, alerts)
	})
}

func TestComputeAlerts_Order(t *testing.T) {
	// One alert of each type, in the fixed output order.
	ref := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	plan := budget.BudgetMonth{
		Month:  "2024-02",
		Income: 1000,
		PlannedExpenses: []budget.PlannedExpense{
			{Name: "Rent", Category: "rent", Amount: 500, DueDay: 14},
		},
	}
	txs := []transaction.Transaction{
		{Amount: 950, Category: "rent", Date: time.Date(2024, time.February, 8, 0, 0, 0, 0, time.UTC)},
	}

	alerts := computeAlertsForPlan(plan, txs, ref)

	require.Len(t, alerts, 3)
	assert.Equal(t, AlertOverspend, alerts[0].Type)
	assert.Equal(t, AlertLowBudget, alerts[1].Type)
	assert.Equal(t, AlertDueSoon, alerts[2].Type)
	assert.Equal(t, fmt.Sprintf("%s is due in %d day(s).", "Rent", 4), alerts[2].Message)
}
