package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxpense/voxpense/internal/common"
	"github.com/voxpense/voxpense/internal/model"
	"github.com/voxpense/voxpense/internal/service"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testExpense(transcript string, amount string, date time.Time) model.Expense {
	expense := model.Expense{
		TransactionDate: date,
		RawTranscript:   transcript,
		Source:          model.SourceVoiceAssistant,
		Currency:        "AED",
		Category:        "Groceries",
		Merchant:        "Carrefour",
		Amount:          decimal.RequireFromString(amount),
	}
	expense.Hash = expense.GenerateHash()
	expense.ID = expense.Hash[:16]
	return expense
}

func TestSQLiteStorage_SaveAndGetExpense(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	date := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	expense := testExpense("I spent 200 dirhams on groceries at Carrefour", "200", date)

	require.NoError(t, store.SaveExpense(ctx, &expense))

	got, err := store.GetExpenseByID(ctx, expense.ID)
	require.NoError(t, err)
	assert.Equal(t, expense.ID, got.ID)
	assert.Equal(t, expense.Hash, got.Hash)
	assert.True(t, expense.Amount.Equal(got.Amount))
	assert.Equal(t, "AED", got.Currency)
	assert.Equal(t, "Groceries", got.Category)
	assert.Equal(t, "Carrefour", got.Merchant)
	assert.Equal(t, model.SourceVoiceAssistant, got.Source)
	assert.Equal(t, expense.RawTranscript, got.RawTranscript)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSQLiteStorage_SaveExpense_Duplicate(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	expense := testExpense("duplicate me", "50", time.Now().UTC())

	require.NoError(t, store.SaveExpense(ctx, &expense))
	err := store.SaveExpense(ctx, &expense)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)
}

func TestSQLiteStorage_SaveExpense_Invalid(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*model.Expense)
	}{
		{"missing currency", func(e *model.Expense) { e.Currency = "" }},
		{"missing category", func(e *model.Expense) { e.Category = "" }},
		{"missing transcript", func(e *model.Expense) { e.RawTranscript = "" }},
		{"non-positive amount", func(e *model.Expense) { e.Amount = decimal.Zero }},
		{"zero date", func(e *model.Expense) { e.TransactionDate = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expense := testExpense("bad expense", "10", time.Now().UTC())
			tt.mutate(&expense)
			assert.Error(t, store.SaveExpense(ctx, &expense))
		})
	}
}

func TestSQLiteStorage_GetExpenseByID_NotFound(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.GetExpenseByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteStorage_GetExpenses_Filter(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	groceries := testExpense("groceries run", "120", base)
	fuel := testExpense("fuel stop", "80", base.AddDate(0, 0, 1))
	fuel.Category = "Transport"
	fuel.Merchant = ""
	fuel.Currency = "USD"
	fuel.Hash = fuel.GenerateHash()
	fuel.ID = fuel.Hash[:16]
	older := testExpense("old groceries", "60", base.AddDate(0, -2, 0))

	require.NoError(t, store.SaveExpenses(ctx, []model.Expense{groceries, fuel, older}))

	t.Run("by category", func(t *testing.T) {
		got, err := store.GetExpensesByCategory(ctx, "Transport")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "fuel stop", got[0].RawTranscript)
		assert.Empty(t, got[0].Merchant)
	})

	t.Run("by currency", func(t *testing.T) {
		got, err := store.GetExpenses(ctx, service.ExpenseFilter{Currency: "AED"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("by date range newest first", func(t *testing.T) {
		start := base.AddDate(0, 0, -1)
		got, err := store.GetExpenses(ctx, service.ExpenseFilter{StartDate: &start})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "fuel stop", got[0].RawTranscript)
		assert.Equal(t, "groceries run", got[1].RawTranscript)
	})

	t.Run("limit and offset", func(t *testing.T) {
		got, err := store.GetExpenses(ctx, service.ExpenseFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "groceries run", got[0].RawTranscript)
	})

	t.Run("offset without limit", func(t *testing.T) {
		got, err := store.GetExpenses(ctx, service.ExpenseFilter{Offset: 1})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "groceries run", got[0].RawTranscript)
		assert.Equal(t, "old groceries", got[1].RawTranscript)
	})
}

func TestSQLiteStorage_SaveExpenses_IgnoresDuplicates(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	expense := testExpense("batch duplicate", "30", time.Now().UTC())

	require.NoError(t, store.SaveExpenses(ctx, []model.Expense{expense, expense}))

	got, err := store.GetExpenses(ctx, service.ExpenseFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLiteStorage_GetCategoryTotals(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	base := time.Date(2026, 6, 10, 8, 0, 0, 0, time.UTC)

	first := testExpense("groceries one", "100.50", base)
	second := testExpense("groceries two", "49.50", base.AddDate(0, 0, 2))
	fuel := testExpense("fuel", "80", base.AddDate(0, 0, 1))
	fuel.Category = "Transport"
	fuel.Currency = "USD"
	fuel.Hash = fuel.GenerateHash()
	fuel.ID = fuel.Hash[:16]

	require.NoError(t, store.SaveExpenses(ctx, []model.Expense{first, second, fuel}))

	totals, err := store.GetCategoryTotals(ctx, base.AddDate(0, 0, -1), base.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, totals, 2)

	byCategory := make(map[string]service.CategoryTotal)
	for _, total := range totals {
		byCategory[total.Category] = total
	}

	groceries := byCategory["Groceries"]
	assert.Equal(t, "AED", groceries.Currency)
	assert.True(t, decimal.RequireFromString("150").Equal(groceries.Total), groceries.Total.String())
	assert.Equal(t, 2, groceries.Count)

	transport := byCategory["Transport"]
	assert.Equal(t, "USD", transport.Currency)
	assert.Equal(t, 1, transport.Count)
}

func TestSQLiteStorage_ContextValidation(t *testing.T) {
	store := newTestStorage(t)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.SaveExpense(canceled, nil)
	assert.Error(t, err)

	_, err = store.GetExpenses(canceled, service.ExpenseFilter{})
	assert.Error(t, err)
}
