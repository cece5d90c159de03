package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SohamSachinDhore/bet-v2/internal/calc"
	"github.com/SohamSachinDhore/bet-v2/internal/domain"
	"github.com/SohamSachinDhore/bet-v2/internal/parser"
)

// Submit parses the input text, expands it into ledger records and writes
// them together with every affected rollup slice in one transaction.
//
// Bad lines do not fail the submission: they are reported in the result and
// the surviving lines are written. Only a submission with nothing writable
// (or a failed jodi limit check) returns an error without touching the
// database.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (SubmitResult, error) {
	if err := input.Validate(); err != nil {
		return SubmitResult{}, err
	}

	parsed, err := parser.Parse(input.Text)
	if err != nil {
		return SubmitResult{}, domain.NewValidationError("text", err.Error())
	}
	if err := s.validateJodiBatches(parsed); err != nil {
		return SubmitResult{}, err
	}

	result := SubmitResult{LineErrors: parsed.ErrorStrings()}
	if parsed.EntryCount() == 0 {
		return result, domain.NewValidationError("text", "no parsable entries")
	}

	// Customer resolution shares the transaction, so an auto-created
	// customer rolls back together with a failed submission.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		customer, err := s.resolveCustomer(txCtx, strings.TrimSpace(input.CustomerName))
		if err != nil {
			return err
		}
		result.Customer = customer

		expanded := s.engine.Expand(calc.Context{
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
			EntryDate:    input.EntryDate,
			Market:       input.Market,
		}, parsed)
		for _, expandErr := range expanded.Errors {
			result.ExpandErrors = append(result.ExpandErrors, expandErr.Error())
		}

		result.PanaTotal = expanded.PanaTotal
		result.TypeTotal = expanded.TypeTotal
		result.TimeTotal = expanded.TimeTotal
		result.MultiTotal = expanded.MultiTotal
		result.JodiTotal = expanded.JodiTotal
		result.FamilyTotal = expanded.FamilyTotal
		result.GrandTotal = expanded.GrandTotal

		if len(expanded.Records) == 0 {
			return domain.NewValidationError("text", "no records survived expansion")
		}

		inserted, err := s.records.BulkInsert(txCtx, expanded.Records)
		if err != nil {
			return fmt.Errorf("insert ledger records: %w", err)
		}
		result.Inserted = inserted

		if err := s.rollups.RecomputePana(txCtx, input.Market, input.EntryDate); err != nil {
			return fmt.Errorf("recompute pana: %w", err)
		}
		if err := s.rollups.RecomputeJodi(txCtx, input.Market, input.EntryDate); err != nil {
			return fmt.Errorf("recompute jodi: %w", err)
		}
		if err := s.rollups.RecomputeTime(txCtx, customer.ID, input.Market, input.EntryDate); err != nil {
			return fmt.Errorf("recompute time: %w", err)
		}
		if err := s.rollups.RecomputeSummary(txCtx, customer.ID, input.EntryDate); err != nil {
			return fmt.Errorf("recompute summary: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return result, err
		}
		return SubmitResult{}, err
	}

	s.log.InfoContext(ctx, "submission ingested",
		slog.String("customer_id", result.Customer.ID.String()),
		slog.String("market", input.Market.String()),
		slog.Int("inserted", result.Inserted),
		slog.Int64("grand_total", result.GrandTotal),
		slog.Int("line_errors", len(result.LineErrors)),
	)

	return result, nil
}

// resolveCustomer finds the customer by name, registering it when auto
// creation is on.
func (s *Service) resolveCustomer(ctx context.Context, name string) (domain.Customer, error) {
	customer, err := s.customers.GetByName(ctx, name)
	if err == nil {
		return customer, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Customer{}, fmt.Errorf("get customer: %w", err)
	}
	if !s.autoCreate {
		return domain.Customer{}, fmt.Errorf("customer %q: %w", name, domain.ErrNotFound)
	}

	created, err := s.customers.Create(ctx, name)
	if err != nil {
		// Lost race with a concurrent submission for the same new name.
		if errors.Is(err, domain.ErrAlreadyExists) {
			return s.customers.GetByName(ctx, name)
		}
		return domain.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	s.log.InfoContext(ctx, "customer auto-created",
		slog.String("customer_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// validateJodiBatches runs the configured limits over every batch of jodi
// numbers. Entries keep their line order, so a batch surfaces as a
// consecutive run of jodi entries sharing one value.
func (s *Service) validateJodiBatches(parsed parser.ParseResult) error {
	var numbers []int
	var value int64

	flush := func() error {
		if len(numbers) == 0 {
			return nil
		}
		err := s.validator.Validate(numbers, value)
		numbers = nil
		return err
	}

	for _, entry := range parsed.Entries {
		if entry.Kind != parser.NumberJodi {
			if err := flush(); err != nil {
				return err
			}
			continue
		}
		if len(numbers) > 0 && entry.Value != value {
			if err := flush(); err != nil {
				return err
			}
		}
		numbers = append(numbers, entry.Number)
		value = entry.Value
	}

	return flush()
}
