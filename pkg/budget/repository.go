package budget

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "budgetmonth"

type Repository interface {
	// Upsert replaces the plan stored for plan.Month, inserting it if absent.
	Upsert(ctx context.Context, plan BudgetMonth) error
	// FindByMonth returns the plan for the given month, or nil when none exists.
	FindByMonth(ctx context.Context, month string) (*BudgetMonth, error)
}

type RepositoryImpl struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) *RepositoryImpl {
	return &RepositoryImpl{coll: db.Collection(collectionName)}
}

func (r *RepositoryImpl) Upsert(ctx context.Context, plan BudgetMonth) error {
	filter := bson.M{"month": plan.Month}
	_, err := r.coll.ReplaceOne(ctx, filter, plan, options.Replace().SetUpsert(true))
	if err != nil {
		err := fmt.Errorf("could not upsert budget month: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) FindByMonth(ctx context.Context, month string) (*BudgetMonth, error) {
	var plan BudgetMonth
	err := r.coll.FindOne(ctx, bson.M{"month": month}).Decode(&plan)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		err := fmt.Errorf("could not find budget month: %w", err)
		log.Error(err)
		return nil, err
	}
	return &plan, nil
}
