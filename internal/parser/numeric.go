package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// NumericExtractor finds explicit digit amounts. The patterns are tried in
// strict order: thousands-grouped, plain decimal, plain integer; the first
// match wins. Explicit digits always take precedence over word phrases, even
// when both appear in the same utterance.
type NumericExtractor struct {
	patterns []*regexp.Regexp
}

// NewNumericExtractor creates an extractor with the fixed pattern list.
func NewNumericExtractor() *NumericExtractor {
	return &NumericExtractor{
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\d{1,3}(?:,\d{3})+(?:\.\d+)?`),
			regexp.MustCompile(`\d+\.\d+`),
			regexp.MustCompile(`\d+`),
		},
	}
}

// Extract returns the first explicit digit amount in text, with group
// separators stripped before decimal parsing.
func (e *NumericExtractor) Extract(text string) (decimal.Decimal, bool) {
	for _, re := range e.patterns {
		match := re.FindString(text)
		if match == "" {
			continue
		}
		value, err := decimal.NewFromString(strings.ReplaceAll(match, ",", ""))
		if err != nil {
			continue
		}
		return value, true
	}
	return decimal.Zero, false
}
