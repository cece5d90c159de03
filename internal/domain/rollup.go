package domain

import (
	"time"

	"github.com/google/uuid"
)

// PanaRollupRow is one (market, date, pana number) aggregate. Rows exist
// only for numbers whose summed value is positive.
type PanaRollupRow struct {
	Market    Market
	EntryDate time.Time
	Number    int
	Value     int64
}

// JodiRollupRow is one (market, date, jodi number) aggregate across all
// customers.
type JodiRollupRow struct {
	Market    Market
	EntryDate time.Time
	Number    int
	Value     int64
}

// TimeRollupRow holds one customer's per-column time totals for a market
// and date. Columns index digits 0 through 9.
type TimeRollupRow struct {
	CustomerID   uuid.UUID
	CustomerName string
	Market       Market
	EntryDate    time.Time
	Columns      [10]int64
	Total        int64
}

// SummaryRow holds one customer's per-market totals for a date.
type SummaryRow struct {
	CustomerID   uuid.UUID
	CustomerName string
	EntryDate    time.Time
	Totals       map[Market]int64
	GrandTotal   int64
}
