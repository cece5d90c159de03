package domain

// EntryKind classifies a ledger record by how its number was produced.
type EntryKind string

const (
	EntryKindPana       EntryKind = "PANA"
	EntryKindType       EntryKind = "TYPE"
	EntryKindTimeDirect EntryKind = "TIME_DIRECT"
	EntryKindTimeMulti  EntryKind = "TIME_MULTI"
	EntryKindDirect     EntryKind = "DIRECT"
	EntryKindJodi       EntryKind = "JODI"
)

func (k EntryKind) String() string { return string(k) }

func (k EntryKind) IsValid() bool {
	switch k {
	case EntryKindPana, EntryKindType, EntryKindTimeDirect,
		EntryKindTimeMulti, EntryKindDirect, EntryKindJodi:
		return true
	}
	return false
}

// PanaKinds are the entry kinds aggregated into the pana rollup.
// DIRECT rows with 3-digit numbers are stored as PANA, so they are
// already covered.
var PanaKinds = []EntryKind{EntryKindPana, EntryKindType}

// TimeKinds are the entry kinds aggregated into the time rollup.
var TimeKinds = []EntryKind{EntryKindTimeDirect, EntryKindTimeMulti}

// TypeTableKind identifies one of the static pana type tables.
type TypeTableKind string

const (
	TypeTableSP  TypeTableKind = "SP"
	TypeTableDP  TypeTableKind = "DP"
	TypeTableDPT TypeTableKind = "DPT"
	TypeTableCP  TypeTableKind = "CP"
)

func (t TypeTableKind) String() string { return string(t) }

func (t TypeTableKind) IsValid() bool {
	switch t {
	case TypeTableSP, TypeTableDP, TypeTableDPT, TypeTableCP:
		return true
	}
	return false
}

// ColumnInRange reports whether col is a valid column number for the table.
// SP/DP/DPT use columns 1-10; CP uses 0 and 11-99.
func (t TypeTableKind) ColumnInRange(col int) bool {
	switch t {
	case TypeTableSP, TypeTableDP, TypeTableDPT:
		return col >= 1 && col <= 10
	case TypeTableCP:
		return col == 0 || (col >= 11 && col <= 99)
	}
	return false
}

// Market names a trading session the ledger entry applies to.
type Market string

const (
	MarketTO  Market = "T.O"
	MarketTK  Market = "T.K"
	MarketMO  Market = "M.O"
	MarketMK  Market = "M.K"
	MarketKO  Market = "K.O"
	MarketKK  Market = "K.K"
	MarketNMO Market = "NMO"
	MarketNMK Market = "NMK"
	MarketBO  Market = "B.O"
	MarketBK  Market = "B.K"
)

func (m Market) String() string { return string(m) }

func (m Market) IsValid() bool {
	_, ok := marketSummaryColumns[m]
	return ok
}

// AllMarkets lists every market in summary-column order.
var AllMarkets = []Market{
	MarketTO, MarketTK, MarketMO, MarketMK, MarketKO,
	MarketKK, MarketNMO, MarketNMK, MarketBO, MarketBK,
}

var marketSummaryColumns = map[Market]string{
	MarketTO:  "to_total",
	MarketTK:  "tk_total",
	MarketMO:  "mo_total",
	MarketMK:  "mk_total",
	MarketKO:  "ko_total",
	MarketKK:  "kk_total",
	MarketNMO: "nmo_total",
	MarketNMK: "nmk_total",
	MarketBO:  "bo_total",
	MarketBK:  "bk_total",
}

// SummaryColumn returns the customer-summary column the market's totals
// land in, or "" if the market is unknown.
func (m Market) SummaryColumn() string { return marketSummaryColumns[m] }
