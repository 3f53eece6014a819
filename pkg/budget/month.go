package budget

import (
	"fmt"
	"time"
)

// MonthLayout is the wire format for months, e.g. "2024-02".
const MonthLayout = "2006-01"

// Month identifies one calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a month in YYYY-MM format.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("month must be in YYYY-MM format: %w", err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// First returns the first day of the month at midnight UTC.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Last returns the last day of the month at midnight UTC.
func (m Month) Last() time.Time {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return m.Last().Day()
}
