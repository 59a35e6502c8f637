// Package model defines the core data structures for the voxpense parsing engine.
package model

import (
	"github.com/shopspring/decimal"
)

// AmountSource records how an amount was derived from the transcript.
type AmountSource string

const (
	// AmountSourceDigits means the amount came from explicit numerals in the text.
	AmountSourceDigits AmountSource = "explicit-digit"
	// AmountSourceWords means the amount was assembled from spelled-out number words.
	AmountSourceWords AmountSource = "word-derived"
)

// ParsedAmount is a decimal value together with its provenance. Explicit-digit
// amounts always outrank word-derived ones when both appear in the same input.
type ParsedAmount struct {
	Value  decimal.Decimal `json:"value"`
	Source AmountSource    `json:"source"`
}

// ExtractedExpenseData is the result of parsing one voice transcript.
// Amount is nil when no usable amount was found; Merchant is nil when no
// merchant span survived noise stripping. Currency and Category always hold
// a value.
type ExtractedExpenseData struct {
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Merchant *string          `json:"merchant,omitempty"`
	Currency string           `json:"currency"`
	Category string           `json:"category"`
}

// HasAmount reports whether the parse produced a usable amount.
func (e *ExtractedExpenseData) HasAmount() bool {
	return e.Amount != nil
}
