// Package calc expands parsed wager entries into elemental ledger records.
// Indirect notations (type-table columns, family references, multiplication)
// fan out into one record per concrete number; totals follow the business
// rules, not the record count.
package calc

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SohamSachinDhore/bet-v2/internal/domain"
	"github.com/SohamSachinDhore/bet-v2/internal/lookup"
	"github.com/SohamSachinDhore/bet-v2/internal/parser"
)

// Context carries the submission attributes stamped onto every record.
type Context struct {
	CustomerID   uuid.UUID
	CustomerName string
	EntryDate    time.Time
	Market       domain.Market
}

// Result is the expanded ledger payload for one parsed batch. Expansion
// errors (unknown table column, unknown family reference) are collected per
// entry; surviving entries are still usable, mirroring line-local parsing.
type Result struct {
	Records []domain.LedgerRecord
	Errors  []error

	PanaTotal   int64
	TypeTotal   int64
	TimeTotal   int64
	MultiTotal  int64
	JodiTotal   int64
	FamilyTotal int64
	GrandTotal  int64
}

// Engine expands parse results against the loaded lookup tables.
type Engine struct {
	tables *lookup.TypeTables
}

// New returns an Engine. A nil tables degrades type-table expansion to
// UnknownTable errors, other entry kinds are unaffected.
func New(tables *lookup.TypeTables) *Engine {
	if tables == nil {
		tables = lookup.EmptyTypeTables()
	}
	return &Engine{tables: tables}
}

// Expand converts every entry of a parse result into ledger records.
func (e *Engine) Expand(ctx Context, res parser.ParseResult) Result {
	var out Result

	for _, entry := range res.Entries {
		switch entry.Kind {
		case parser.NumberPana:
			out.add(record(ctx, entry.Number, entry.Value, domain.EntryKindPana,
				fmt.Sprintf("%d=%d", entry.Number, entry.Value)))
			out.PanaTotal += entry.Value

		case parser.NumberTime:
			// Each column gets the full value.
			out.add(record(ctx, entry.Number, entry.Value, domain.EntryKindTimeDirect,
				fmt.Sprintf("%d=%d", entry.Number, entry.Value)))
			out.TimeTotal += entry.Value

		case parser.NumberJodi:
			source := fmt.Sprintf("%02d=%d", entry.Number, entry.Value)
			out.add(record(ctx, entry.Number, entry.Value, domain.EntryKindJodi, source))
			// The units digit also feeds the time rollup.
			out.add(record(ctx, entry.Number%10, entry.Value, domain.EntryKindTimeMulti, source))
			out.JodiTotal += entry.Value
		}
	}

	for _, entry := range res.TypeEntries {
		numbers, err := e.tables.Numbers(entry.Table, entry.Column)
		if err != nil {
			out.Errors = append(out.Errors, err)
			continue
		}
		source := fmt.Sprintf("%d%s=%d", entry.Column, entry.Table, entry.Value)
		for _, n := range numbers {
			out.add(record(ctx, n, entry.Value, domain.EntryKindType, source))
			out.TypeTotal += entry.Value
		}
	}

	for _, entry := range res.FamilyEntries {
		members, err := lookup.FamilyMembers(entry.Reference)
		if err != nil {
			out.Errors = append(out.Errors, err)
			continue
		}
		source := fmt.Sprintf("%dfamily=%d", entry.Reference, entry.Value)
		for _, n := range members {
			out.add(record(ctx, n, entry.Value, domain.EntryKindPana, source))
			out.FamilyTotal += entry.Value
		}
	}

	for _, entry := range res.MultiEntries {
		source := fmt.Sprintf("%02dx%d", entry.Number, entry.Value)
		tens, units := entry.Number/10, entry.Number%10
		out.add(record(ctx, tens, entry.Value, domain.EntryKindTimeMulti, source))
		out.add(record(ctx, units, entry.Value, domain.EntryKindTimeMulti, source))
		out.add(record(ctx, entry.Number, entry.Value, domain.EntryKindJodi, source))
		// A multiplication contributes its value once, not per record.
		out.MultiTotal += entry.Value
	}

	out.GrandTotal = out.PanaTotal + out.TypeTotal + out.TimeTotal +
		out.MultiTotal + out.JodiTotal + out.FamilyTotal
	return out
}

func (r *Result) add(rec domain.LedgerRecord) {
	r.Records = append(r.Records, rec)
}

func record(ctx Context, number int, value int64, kind domain.EntryKind, source string) domain.LedgerRecord {
	return domain.LedgerRecord{
		CustomerID:   ctx.CustomerID,
		CustomerName: ctx.CustomerName,
		EntryDate:    ctx.EntryDate,
		Market:       ctx.Market,
		Number:       number,
		Value:        value,
		Kind:         kind,
		SourceLine:   source,
	}
}
