package transaction

import (
	"time"
)

// DateLayout is the wire and storage format for transaction dates.
const DateLayout = "2006-01-02"

// Transaction is a single recorded spend. Transactions are append-only;
// nothing in the API updates or deletes them.
type Transaction struct {
	ID       string
	Amount   float64
	Category string
	Label    string
	Date     time.Time
}
