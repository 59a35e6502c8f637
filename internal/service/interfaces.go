// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voxpense/voxpense/internal/model"
)

// ExpenseFilter defines filtering options for expense queries.
type ExpenseFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string
	Currency  string
	Limit     int
	Offset    int
}

// CategoryTotal summarizes spending for one category in one currency.
type CategoryTotal struct {
	Category string
	Currency string
	Total    decimal.Decimal
	Count    int
}

// Storage defines the contract for the expense persistence layer.
type Storage interface {
	SaveExpense(ctx context.Context, expense *model.Expense) error
	SaveExpenses(ctx context.Context, expenses []model.Expense) error
	GetExpenseByID(ctx context.Context, id string) (*model.Expense, error)
	GetExpenses(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error)
	GetExpensesByCategory(ctx context.Context, category string) ([]model.Expense, error)
	GetCategoryTotals(ctx context.Context, start, end time.Time) ([]CategoryTotal, error)
	Migrate(ctx context.Context) error
	Close() error
}

// ExpenseParser converts one transcript into structured expense data.
type ExpenseParser interface {
	Parse(transcript, defaultCurrency string) model.ExtractedExpenseData
}
