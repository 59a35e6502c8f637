package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxpense/voxpense/internal/common"
	"github.com/voxpense/voxpense/internal/model"
	"github.com/voxpense/voxpense/internal/parser"
	"github.com/voxpense/voxpense/internal/service"
)

// mockStorage records saved expenses in memory for recorder tests.
type mockStorage struct {
	saveErr error
	saved   []model.Expense
}

func (m *mockStorage) SaveExpense(_ context.Context, expense *model.Expense) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, *expense)
	return nil
}

func (m *mockStorage) SaveExpenses(ctx context.Context, expenses []model.Expense) error {
	for i := range expenses {
		if err := m.SaveExpense(ctx, &expenses[i]); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockStorage) GetExpenseByID(_ context.Context, _ string) (*model.Expense, error) {
	return nil, common.ErrNotFound
}

func (m *mockStorage) GetExpenses(_ context.Context, _ service.ExpenseFilter) ([]model.Expense, error) {
	return m.saved, nil
}

func (m *mockStorage) GetExpensesByCategory(_ context.Context, _ string) ([]model.Expense, error) {
	return nil, nil
}

func (m *mockStorage) GetCategoryTotals(_ context.Context, _, _ time.Time) ([]service.CategoryTotal, error) {
	return nil, nil
}

func (m *mockStorage) Migrate(_ context.Context) error { return nil }
func (m *mockStorage) Close() error                    { return nil }

func newTestRecorder(t *testing.T, storage service.Storage) *Recorder {
	t.Helper()

	recorder, err := NewRecorder(parser.New(), storage, "USD")
	require.NoError(t, err)
	recorder.now = func() time.Time {
		return time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	}
	return recorder
}

func TestNewRecorder_Validation(t *testing.T) {
	store := &mockStorage{}

	_, err := NewRecorder(nil, store, "USD")
	assert.Error(t, err)

	_, err = NewRecorder(parser.New(), nil, "USD")
	assert.Error(t, err)

	_, err = NewRecorder(parser.New(), store, " ")
	assert.Error(t, err)
}

func TestRecorder_Record(t *testing.T) {
	store := &mockStorage{}
	recorder := newTestRecorder(t, store)
	ctx := context.Background()

	expense, err := recorder.Record(ctx, "I just spent two thousand dirhams on groceries at Carrefour", model.SourceVoiceAssistant)
	require.NoError(t, err)

	assert.Equal(t, "2000", expense.Amount.String())
	assert.Equal(t, "AED", expense.Currency)
	assert.Equal(t, "Groceries", expense.Category)
	assert.Equal(t, "Carrefour", expense.Merchant)
	assert.Equal(t, model.SourceVoiceAssistant, expense.Source)
	assert.Equal(t, "I just spent two thousand dirhams on groceries at Carrefour", expense.RawTranscript)
	assert.Equal(t, time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC), expense.TransactionDate)
	assert.NotEmpty(t, expense.Hash)
	assert.Len(t, expense.ID, 16)

	require.Len(t, store.saved, 1)
	assert.Equal(t, expense.ID, store.saved[0].ID)
}

func TestRecorder_Record_DefaultsSource(t *testing.T) {
	store := &mockStorage{}
	recorder := newTestRecorder(t, store)

	expense, err := recorder.Record(context.Background(), "spent 25 dollars on lunch", "")
	require.NoError(t, err)
	assert.Equal(t, model.SourceCLI, expense.Source)
}

func TestRecorder_Record_UnusableTranscripts(t *testing.T) {
	store := &mockStorage{}
	recorder := newTestRecorder(t, store)
	ctx := context.Background()

	tests := []struct {
		name       string
		transcript string
		wantErr    error
	}{
		{"empty", "", common.ErrEmptyTranscript},
		{"whitespace only", "   ", common.ErrEmptyTranscript},
		{"no amount", "groceries at the corner shop", common.ErrNoAmount},
		{"zero amount", "paid zero dollars", common.ErrNoAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := recorder.Record(ctx, tt.transcript, model.SourceCLI)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var userErr *common.UserError
			assert.True(t, errors.As(err, &userErr))
		})
	}

	assert.Empty(t, store.saved)
}

func TestRecorder_Record_StorageFailure(t *testing.T) {
	store := &mockStorage{saveErr: errors.New("disk full")}
	recorder := newTestRecorder(t, store)

	_, err := recorder.Record(context.Background(), "spent 10 dollars", model.SourceCLI)
	require.Error(t, err)

	var userErr *common.UserError
	assert.False(t, errors.As(err, &userErr))
}

func TestRecorder_RecordBatch(t *testing.T) {
	store := &mockStorage{}
	recorder := newTestRecorder(t, store)

	transcripts := []string{
		"spent 100 dirhams on groceries",
		"complete gibberish with no numbers",
		"paid fifty dollars for fuel",
	}

	stored, failed, err := recorder.RecordBatch(context.Background(), transcripts, model.SourceVoiceAssistant)
	require.NoError(t, err)

	assert.Len(t, stored, 2)
	require.Len(t, failed, 1)
	assert.Equal(t, "complete gibberish with no numbers", failed[0])
}

func TestRecorder_RecordBatch_SkipsDuplicates(t *testing.T) {
	store := &mockStorage{}
	recorder := newTestRecorder(t, store)

	transcript := "spent 100 dirhams on groceries"
	stored, _, err := recorder.RecordBatch(context.Background(), []string{transcript}, model.SourceCLI)
	require.NoError(t, err)
	require.Len(t, stored, 1)

	store.saveErr = common.ErrDuplicateEntry
	stored, failed, err := recorder.RecordBatch(context.Background(), []string{transcript}, model.SourceCLI)
	require.NoError(t, err)
	assert.Empty(t, stored)
	assert.Empty(t, failed)
}
