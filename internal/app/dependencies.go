package app

import (
	"github.com/billfold/billfold/internal/utils"
	"github.com/billfold/billfold/pkg/budget"
	"github.com/billfold/billfold/pkg/insights"
	"github.com/billfold/billfold/pkg/transaction"
	"go.mongodb.org/mongo-driver/mongo"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	BudgetRepo    budget.Repository
	BudgetService budget.Service
	BudgetHandler *budget.Handler

	TransactionRepo    transaction.Repository
	TransactionService transaction.Service
	TransactionHandler *transaction.Handler

	InsightsService insights.Service
	InsightsHandler *insights.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *mongo.Database) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}

	deps.BudgetRepo = budget.NewRepository(db)
	deps.BudgetService = budget.NewService(deps.BudgetRepo)
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService)

	deps.TransactionRepo = transaction.NewRepository(db)
	deps.TransactionService = transaction.NewService(deps.TransactionRepo)
	deps.TransactionHandler = transaction.NewHandler(deps.TransactionService)

	deps.InsightsService = insights.NewService(deps.BudgetService, deps.TransactionService, deps.Clock)
	deps.InsightsHandler = insights.NewHandler(deps.InsightsService)

	return deps
}
