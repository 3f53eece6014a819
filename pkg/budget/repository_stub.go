package budget

import (
	"context"
)

type StubRepository struct {
	data map[string]BudgetMonth
}

func NewStubRepository() *StubRepository {
	return &StubRepository{data: map[string]BudgetMonth{}}
}

func (s *StubRepository) Upsert(ctx context.Context, plan BudgetMonth) error {
	s.data[plan.Month] = plan
	return nil
}

func (s *StubRepository) FindByMonth(ctx context.Context, month string) (*BudgetMonth, error) {
	plan, ok := s.data[month]
	if !ok {
		return nil, nil
	}
	return &plan, nil
}

func (s *StubRepository) Cleanup() {
	s.data = map[string]BudgetMonth{}
}
