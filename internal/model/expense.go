package model

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseSource identifies which capture surface produced a transcript.
const (
	SourceVoiceAssistant = "voice_assistant"
	SourceVoiceSiri      = "voice_siri"
	SourceCLI            = "cli"
)

// Expense is a stored expense record assembled from a parsed transcript.
// RawTranscript keeps the original utterance verbatim for audit and debugging.
type Expense struct {
	TransactionDate time.Time
	CreatedAt       time.Time
	ID              string
	RawTranscript   string
	Source          string
	Currency        string
	Category        string
	Merchant        string
	Hash            string
	Amount          decimal.Decimal
}

// GenerateHash creates a unique hash for duplicate detection.
func (e *Expense) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%s:%s:%s",
		e.TransactionDate.Format("2006-01-02"),
		e.Amount.StringFixed(2),
		e.Currency,
		e.Merchant,
		e.RawTranscript)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
