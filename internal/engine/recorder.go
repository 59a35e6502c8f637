// Package engine wires the transcript parser to the expense store.
package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/voxpense/voxpense/internal/common"
	"github.com/voxpense/voxpense/internal/model"
	"github.com/voxpense/voxpense/internal/service"
)

// Recorder parses voice transcripts and persists the resulting expenses.
// It owns the collaborator-side stamping: transaction date, source, and the
// verbatim transcript for audit.
type Recorder struct {
	parser          service.ExpenseParser
	storage         service.Storage
	now             func() time.Time
	defaultCurrency string
}

// NewRecorder creates a recorder. The default currency is used whenever a
// transcript carries no currency signal of its own.
func NewRecorder(parser service.ExpenseParser, storage service.Storage, defaultCurrency string) (*Recorder, error) {
	if parser == nil {
		return nil, fmt.Errorf("parser is required: %w", common.ErrMissingConfig)
	}
	if storage == nil {
		return nil, fmt.Errorf("storage is required: %w", common.ErrMissingConfig)
	}
	if strings.TrimSpace(defaultCurrency) == "" {
		return nil, fmt.Errorf("default currency is required: %w", common.ErrMissingConfig)
	}

	return &Recorder{
		parser:          parser,
		storage:         storage,
		defaultCurrency: defaultCurrency,
		now:             time.Now,
	}, nil
}

// Record parses one transcript and stores the expense. The raw transcript is
// stored verbatim. Returns a UserError when the transcript has no usable
// amount so callers can surface a retry prompt.
func (r *Recorder) Record(ctx context.Context, transcript, source string) (*model.Expense, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, common.NewUserError("nothing to record", common.ErrEmptyTranscript)
	}
	if source == "" {
		source = model.SourceCLI
	}

	data := r.parser.Parse(transcript, r.defaultCurrency)
	if !data.HasAmount() {
		return nil, common.NewUserError("could not understand the amount, please try again", common.ErrNoAmount)
	}

	expense := model.Expense{
		TransactionDate: r.now(),
		RawTranscript:   transcript,
		Source:          source,
		Currency:        data.Currency,
		Category:        data.Category,
		Amount:          *data.Amount,
	}
	if data.Merchant != nil {
		expense.Merchant = *data.Merchant
	}
	expense.Hash = expense.GenerateHash()
	expense.ID = expense.Hash[:16]

	if err := r.storage.SaveExpense(ctx, &expense); err != nil {
		return nil, fmt.Errorf("failed to store expense: %w", err)
	}

	common.LogInfo("recorded expense", common.Fields{
		"amount":   expense.Amount.String(),
		"currency": expense.Currency,
		"category": expense.Category,
		"merchant": expense.Merchant,
		"source":   expense.Source,
	})

	return &expense, nil
}

// RecordBatch parses a slice of transcripts, storing every parseable one.
// It returns the stored expenses and the transcripts that could not be
// parsed; an unusable transcript is not an error for the batch.
func (r *Recorder) RecordBatch(ctx context.Context, transcripts []string, source string) ([]model.Expense, []string, error) {
	var stored []model.Expense
	var failed []string

	for _, transcript := range transcripts {
		expense, err := r.Record(ctx, transcript, source)
		if err != nil {
			var userErr *common.UserError
			if errors.As(err, &userErr) {
				failed = append(failed, transcript)
				continue
			}
			if errors.Is(err, common.ErrDuplicateEntry) {
				common.LogDebug("skipping duplicate transcript", common.Fields{"transcript": transcript})
				continue
			}
			return stored, failed, err
		}
		stored = append(stored, *expense)
	}
	return stored, failed, nil
}
