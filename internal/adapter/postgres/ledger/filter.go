package ledger

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
)

// Filter defines parameters for listing ledger records.
type Filter struct {
	domain.LedgerFilter

	// SortBy determines the sort column: "created_at", "entry_date", "number", "value".
	// Default: "created_at".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "DESC".
	SortOrder string

	// Limit is the maximum number of records to return. Default: 100, max: 1000.
	Limit int

	// Offset is the number of records to skip.
	Offset int
}

const (
	defaultLimit = 100
	maxLimit     = 1000

	sortByCreatedAt = "created_at"
	sortByEntryDate = "entry_date"
	sortByNumber    = "number"
	sortByValue     = "value"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	switch f.SortBy {
	case sortByCreatedAt, sortByEntryDate, sortByNumber, sortByValue:
		// valid
	default:
		f.SortBy = sortByCreatedAt
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// apply adds the filter's predicates, ordering, and paging to a select.
func (f Filter) apply(b sq.SelectBuilder) sq.SelectBuilder {
	f.normalize()

	if f.CustomerID != nil {
		b = b.Where(sq.Eq{"customer_id": *f.CustomerID})
	}
	if f.Market != nil {
		b = b.Where(sq.Eq{"market": string(*f.Market)})
	}
	if f.EntryDate != nil {
		b = b.Where(sq.Eq{"entry_date": *f.EntryDate})
	}
	if f.Kind != nil {
		b = b.Where(sq.Eq{"kind": string(*f.Kind)})
	}

	return b.
		OrderBy(f.SortBy + " " + f.SortOrder + ", id " + f.SortOrder).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))
}
