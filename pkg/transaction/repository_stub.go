package transaction

import (
	"context"
	"sort"
	"time"
)

type StubRepository struct {
	data []Transaction
}

func NewStubRepository() *StubRepository {
	return &StubRepository{}
}

func (s *StubRepository) Insert(ctx context.Context, tx Transaction) error {
	s.data = append(s.data, tx)
	return nil
}

func (s *StubRepository) FindByDateRange(ctx context.Context, from, to time.Time) ([]Transaction, error) {
	txs := make([]Transaction, 0, len(s.data))
	for _, tx := range s.data {
		if tx.Date.Before(from) || tx.Date.After(to) {
			continue
		}
		txs = append(txs, tx)
	}
	sortByDate(txs)
	return txs, nil
}

func (s *StubRepository) FindAll(ctx context.Context) ([]Transaction, error) {
	txs := make([]Transaction, len(s.data))
	copy(txs, s.data)
	sortByDate(txs)
	return txs, nil
}

func (s *StubRepository) Cleanup() {
	s.data = nil
}

func sortByDate(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.Before(txs[j].Date)
	})
}
