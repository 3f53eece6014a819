package transaction

import (
	"context"
	"fmt"

	"github.com/billfold/billfold/pkg/budget"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrInvalidAmount = fmt.Errorf("transaction amount must be greater than zero")

type Service interface {
	// Add stores a new transaction, assigning it an id.
	Add(ctx context.Context, tx Transaction) (Transaction, error)
	// ListForMonth returns the month's transactions sorted by date ascending.
	ListForMonth(ctx context.Context, month budget.Month) ([]Transaction, error)
	// ListAll returns every stored transaction sorted by date ascending.
	ListAll(ctx context.Context) ([]Transaction, error)
}

type ServiceImpl struct {
	repo Repository
}

func NewService(repo Repository) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Add(ctx context.Context, tx Transaction) (Transaction, error) {
	if tx.Amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if err := s.repo.Insert(ctx, tx); err != nil {
		return Transaction{}, err
	}
	log.Debugf("recorded transaction %s of %.2f in category %s", tx.ID, tx.Amount, tx.Category)
	return tx, nil
}

func (s *ServiceImpl) ListForMonth(ctx context.Context, month budget.Month) ([]Transaction, error) {
	return s.repo.FindByDateRange(ctx, month.First(), month.Last())
}

func (s *ServiceImpl) ListAll(ctx context.Context) ([]Transaction, error) {
	return s.repo.FindAll(ctx)
}
