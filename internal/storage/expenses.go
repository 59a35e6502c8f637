package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/voxpense/voxpense/internal/common"
	"github.com/voxpense/voxpense/internal/model"
	"github.com/voxpense/voxpense/internal/service"
)

const expenseColumns = `id, hash, transaction_date, amount, currency, category, merchant, source, raw_transcript, created_at`

// SaveExpense persists a single expense record.
func (s *SQLiteStorage) SaveExpense(ctx context.Context, expense *model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateExpense(expense); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, hash, transaction_date, amount, currency, category, merchant, source, raw_transcript)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID,
		expense.Hash,
		expense.TransactionDate,
		expense.Amount.String(),
		expense.Currency,
		expense.Category,
		nullableString(expense.Merchant),
		expense.Source,
		expense.RawTranscript,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return fmt.Errorf("expense %s: %w", expense.ID, common.ErrDuplicateEntry)
		}
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

// SaveExpenses persists a batch of expenses in one transaction. Duplicates
// are skipped rather than failing the batch.
func (s *SQLiteStorage) SaveExpenses(ctx context.Context, expenses []model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO expenses (id, hash, transaction_date, amount, currency, category, merchant, source, raw_transcript)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range expenses {
		expense := &expenses[i]
		if err := validateExpense(expense); err != nil {
			return err
		}
		if _, err := stmt.ExecContext(ctx,
			expense.ID,
			expense.Hash,
			expense.TransactionDate,
			expense.Amount.String(),
			expense.Currency,
			expense.Category,
			nullableString(expense.Merchant),
			expense.Source,
			expense.RawTranscript,
		); err != nil {
			return fmt.Errorf("failed to save expense %s: %w", expense.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit expenses: %w", err)
	}
	return nil
}

// GetExpenseByID returns a single expense by ID.
func (s *SQLiteStorage) GetExpenseByID(ctx context.Context, id string) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id)

	expense, err := scanExpense(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// GetExpenses returns expenses matching the filter, newest first.
func (s *SQLiteStorage) GetExpenses(ctx context.Context, filter service.ExpenseFilter) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + expenseColumns + ` FROM expenses`
	var conditions []string
	var args []any

	if filter.StartDate != nil {
		conditions = append(conditions, "transaction_date >= ?")
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "transaction_date <= ?")
		args = append(args, *filter.EndDate)
	}
	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Currency != "" {
		conditions = append(conditions, "currency = ?")
		args = append(args, filter.Currency)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY transaction_date DESC"
	if filter.Limit > 0 || filter.Offset > 0 {
		// SQLite needs a LIMIT clause for OFFSET to apply; -1 means unbounded.
		limit := filter.Limit
		if limit <= 0 {
			limit = -1
		}
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return collectExpenses(rows)
}

// GetExpensesByCategory returns all expenses in one category, newest first.
func (s *SQLiteStorage) GetExpensesByCategory(ctx context.Context, category string) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(category, "category"); err != nil {
		return nil, err
	}

	return s.GetExpenses(ctx, service.ExpenseFilter{Category: category})
}

// GetCategoryTotals sums spending per (category, currency) pair over a period.
func (s *SQLiteStorage) GetCategoryTotals(ctx context.Context, start, end time.Time) ([]service.CategoryTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	// Amounts are stored as decimal strings, so totals are accumulated in Go
	// rather than with SQL SUM to avoid float rounding.
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, currency, amount
		FROM expenses
		WHERE transaction_date >= ? AND transaction_date <= ?
		ORDER BY category, currency`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query category totals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	index := make(map[string]int)
	var totals []service.CategoryTotal
	for rows.Next() {
		var category, currencyCode, amountStr string
		if err := rows.Scan(&category, &currencyCode, &amountStr); err != nil {
			return nil, fmt.Errorf("failed to scan total row: %w", err)
		}
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount %q: %w", amountStr, err)
		}

		key := category + "\x00" + currencyCode
		i, ok := index[key]
		if !ok {
			i = len(totals)
			index[key] = i
			totals = append(totals, service.CategoryTotal{Category: category, Currency: currencyCode})
		}
		totals[i].Total = totals[i].Total.Add(amount)
		totals[i].Count++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate totals: %w", err)
	}
	return totals, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (*model.Expense, error) {
	var expense model.Expense
	var amountStr string
	var merchant sql.NullString

	if err := row.Scan(
		&expense.ID,
		&expense.Hash,
		&expense.TransactionDate,
		&amountStr,
		&expense.Currency,
		&expense.Category,
		&merchant,
		&expense.Source,
		&expense.RawTranscript,
		&expense.CreatedAt,
	); err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("corrupt amount %q: %w", amountStr, err)
	}
	expense.Amount = amount
	if merchant.Valid {
		expense.Merchant = merchant.String
	}
	return &expense, nil
}

func collectExpenses(rows *sql.Rows) ([]model.Expense, error) {
	var expenses []model.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
