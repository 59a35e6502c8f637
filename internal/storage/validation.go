package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/voxpense/voxpense/internal/model"
)

// validateContext ensures the context is usable before touching the database.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	return nil
}

// validateString ensures a required string field is non-empty.
func validateString(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

// validateExpense checks the invariants a stored expense must satisfy.
func validateExpense(expense *model.Expense) error {
	if expense == nil {
		return fmt.Errorf("expense cannot be nil")
	}
	if err := validateString(expense.ID, "expense ID"); err != nil {
		return err
	}
	if err := validateString(expense.Hash, "expense hash"); err != nil {
		return err
	}
	if err := validateString(expense.Currency, "expense currency"); err != nil {
		return err
	}
	if err := validateString(expense.Category, "expense category"); err != nil {
		return err
	}
	if err := validateString(expense.Source, "expense source"); err != nil {
		return err
	}
	if err := validateString(expense.RawTranscript, "expense transcript"); err != nil {
		return err
	}
	if !expense.Amount.IsPositive() {
		return fmt.Errorf("expense amount must be positive, got %s", expense.Amount)
	}
	if expense.TransactionDate.IsZero() {
		return fmt.Errorf("expense transaction date cannot be zero")
	}
	return nil
}
