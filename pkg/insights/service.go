package insights

import (
	"context"
	"errors"
	"fmt"

	"github.com/billfold/billfold/internal/utils"
	"github.com/billfold/billfold/pkg/budget"
	"github.com/billfold/billfold/pkg/transaction"
	log "github.com/sirupsen/logrus"
)

// BudgetView pairs a stored plan with the metrics derived from it.
type BudgetView struct {
	Plan    budget.BudgetMonth
	Metrics Metrics
}

// Summary is the flattened month overview. Unlike BudgetView it is always
// available: when no plan exists it carries zero values instead of an error.
type Summary struct {
	Month             string             `json:"month"`
	Income            float64            `json:"income"`
	PlannedTotal      float64            `json:"planned_total"`
	ActualSpent       float64            `json:"actual_spent"`
	RemainingActual   float64            `json:"remaining_actual"`
	DailyLimit        float64            `json:"daily_limit"`
	WeeklyLimit       float64            `json:"weekly_limit"`
	PlannedByCategory map[string]float64 `json:"planned_by_category"`
	ActualByCategory  map[string]float64 `json:"actual_by_category"`
}

type Service interface {
	// BudgetView returns the plan and metrics for a month, or
	// budget.ErrPlanNotFound when no plan is stored.
	BudgetView(ctx context.Context, month string) (BudgetView, error)
	// Summary returns the month overview, zero-valued when no plan exists.
	Summary(ctx context.Context, month string) (Summary, error)
	// Alerts evaluates the alert rules for a month; no plan means no alerts.
	Alerts(ctx context.Context, month string) ([]Alert, error)
}

type ServiceImpl struct {
	plans        budget.Service
	transactions transaction.Service
	clock        utils.Clock
}

func NewService(plans budget.Service, transactions transaction.Service, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{plans: plans, transactions: transactions, clock: clock}
}

func (s *ServiceImpl) BudgetView(ctx context.Context, monthStr string) (BudgetView, error) {
	month, err := budget.ParseMonth(monthStr)
	if err != nil {
		return BudgetView{}, fmt.Errorf("invalid month %q: %w", monthStr, err)
	}

	plan, err := s.plans.Get(ctx, monthStr)
	if err != nil {
		return BudgetView{}, err
	}

	txs, err := s.transactions.ListForMonth(ctx, month)
	if err != nil {
		return BudgetView{}, err
	}

	metrics := ComputeMetrics(plan, month, txs, s.clock.Now().UTC())
	log.Debugf("computed metrics for %s: spent %.2f of %.2f, %d day(s) left", monthStr, metrics.ActualSpent, metrics.Income, metrics.DaysLeft)
	return BudgetView{Plan: plan, Metrics: metrics}, nil
}

func (s *ServiceImpl) Summary(ctx context.Context, monthStr string) (Summary, error) {
	view, err := s.BudgetView(ctx, monthStr)
	if errors.Is(err, budget.ErrPlanNotFound) {
		// No plan is not an error here: the summary masks absence with zeros.
		return Summary{
			Month:             monthStr,
			PlannedByCategory: map[string]float64{},
			ActualByCategory:  map[string]float64{},
		}, nil
	}
	if err != nil {
		return Summary{}, err
	}

	m := view.Metrics
	return Summary{
		Month:             monthStr,
		Income:            m.Income,
		PlannedTotal:      m.PlannedTotal,
		ActualSpent:       m.ActualSpent,
		RemainingActual:   m.RemainingActual,
		DailyLimit:        m.DailyLimit,
		WeeklyLimit:       m.WeeklyLimit,
		PlannedByCategory: m.PlannedByCategory,
		ActualByCategory:  m.ActualByCategory,
	}, nil
}

func (s *ServiceImpl) Alerts(ctx context.Context, monthStr string) ([]Alert, error) {
	view, err := s.BudgetView(ctx, monthStr)
	if errors.Is(err, budget.ErrPlanNotFound) {
		return []Alert{}, nil
	}
	if err != nil {
		return nil, err
	}

	month, err := budget.ParseMonth(monthStr)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q: %w", monthStr, err)
	}

	return ComputeAlerts(&view.Plan, month, view.Metrics, s.clock.Now().UTC()), nil
}
