package budget

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

var ErrPlanNotFound = fmt.Errorf("no plan for this month")
var ErrMonthMismatch = fmt.Errorf("path month and payload month must match")

type Service interface {
	// Upsert stores the plan for the given month, replacing any existing one.
	Upsert(ctx context.Context, month string, plan BudgetMonth) (BudgetMonth, error)
	// Get returns the plan for the given month or ErrPlanNotFound.
	Get(ctx context.Context, month string) (BudgetMonth, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Upsert(ctx context.Context, month string, plan BudgetMonth) (BudgetMonth, error) {
	if _, err := ParseMonth(month); err != nil {
		return BudgetMonth{}, fmt.Errorf("invalid month %q: %w", month, err)
	}
	if plan.Month != month {
		return BudgetMonth{}, ErrMonthMismatch
	}
	if err := s.repo.Upsert(ctx, plan); err != nil {
		return BudgetMonth{}, err
	}
	log.Debugf("stored budget plan for month %s with %d planned expenses", month, len(plan.PlannedExpenses))
	return plan, nil
}

func (s *ServiceImpl) Get(ctx context.Context, month string) (BudgetMonth, error) {
	plan, err := s.repo.FindByMonth(ctx, month)
	if err != nil {
		return BudgetMonth{}, err
	}
	if plan == nil {
		return BudgetMonth{}, ErrPlanNotFound
	}
	return *plan, nil
}
