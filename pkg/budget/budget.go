package budget

// BudgetMonth is the spending plan for a single calendar month. There is at
// most one document per month; submitting a plan again replaces it wholesale.
type BudgetMonth struct {
	Month           string           `bson:"month"`
	Income          float64          `bson:"income"`
	Notes           string           `bson:"notes,omitempty"`
	PlannedExpenses []PlannedExpense `bson:"planned_expenses"`
}

// PlannedExpense is a single planned bill or expense embedded in a BudgetMonth.
type PlannedExpense struct {
	Name     string  `bson:"name"`
	Category string  `bson:"category"`
	Amount   float64 `bson:"amount"`
	// DueDay is the day of the month the bill is typically due, 0 when unset.
	// Values beyond the month's actual length are clamped when evaluated.
	DueDay    int  `bson:"due_day,omitempty"`
	Recurring bool `bson:"recurring"`
}
