package transaction

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "transaction"

type Repository interface {
	Insert(ctx context.Context, tx Transaction) error
	// FindByDateRange returns transactions with a date in [from, to] inclusive,
	// sorted by date ascending.
	FindByDateRange(ctx context.Context, from, to time.Time) ([]Transaction, error)
	FindAll(ctx context.Context) ([]Transaction, error)
}

// transactionDoc is the stored shape; the date is kept as an ISO string so
// range filters compare lexicographically.
type transactionDoc struct {
	ID       string  `bson:"id"`
	Amount   float64 `bson:"amount"`
	Category string  `bson:"category"`
	Label    string  `bson:"label,omitempty"`
	Date     string  `bson:"date"`
}

type RepositoryImpl struct {
	coll *mongo.Collection
}

func NewRepository(db *mongo.Database) *RepositoryImpl {
	return &RepositoryImpl{coll: db.Collection(collectionName)}
}

func (r *RepositoryImpl) Insert(ctx context.Context, tx Transaction) error {
	doc := transactionDoc{
		ID:       tx.ID,
		Amount:   tx.Amount,
		Category: tx.Category,
		Label:    tx.Label,
		Date:     tx.Date.Format(DateLayout),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		err := fmt.Errorf("could not insert transaction: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) FindByDateRange(ctx context.Context, from, to time.Time) ([]Transaction, error) {
	filter := bson.M{"date": bson.M{
		"$gte": from.Format(DateLayout),
		"$lte": to.Format(DateLayout),
	}}
	return r.find(ctx, filter)
}

func (r *RepositoryImpl) FindAll(ctx context.Context) ([]Transaction, error) {
	return r.find(ctx, bson.M{})
}

func (r *RepositoryImpl) find(ctx context.Context, filter bson.M) ([]Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		err := fmt.Errorf("could not query transactions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []transactionDoc
	if err := cursor.All(ctx, &docs); err != nil {
		err := fmt.Errorf("could not decode transactions: %w", err)
		log.Error(err)
		return nil, err
	}

	txs := make([]Transaction, 0, len(docs))
	for _, doc := range docs {
		date, err := time.Parse(DateLayout, doc.Date)
		if err != nil {
			err := fmt.Errorf("could not parse transaction date: %w", err)
			log.Error(err)
			return nil, err
		}
		txs = append(txs, Transaction{
			ID:       doc.ID,
			Amount:   doc.Amount,
			Category: doc.Category,
			Label:    doc.Label,
			Date:     date,
		})
	}
	return txs, nil
}
