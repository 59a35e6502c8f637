// Package parser turns a voice transcript into a structured expense record.
// All components are deterministic, hold no mutable state after construction,
// and are safe for concurrent use.
package parser

import (
	"strings"

	"github.com/voxpense/voxpense/internal/currency"
)

// fillerWords are action/filler tokens stripped before word-number
// interpretation.
var fillerWords = map[string]struct{}{
	"just":  {},
	"spent": {},
	"paid":  {},
	"cost":  {},
	"costs": {},
	"pay":   {},
}

// Normalizer prepares transcript text for the word-number path: it
// case-folds, replaces hyphens with spaces, strips filler and currency
// tokens, and collapses whitespace. Currency detection runs over the
// original text instead, so currency words stay available there.
type Normalizer struct {
	currencyTokens map[string]struct{}
}

// NewNormalizer creates a normalizer that strips the registry's currency
// keywords alongside the fixed filler list.
func NewNormalizer(registry *currency.Registry) *Normalizer {
	tokens := make(map[string]struct{})
	for _, tok := range registry.KeywordTokens() {
		tokens[tok] = struct{}{}
	}
	return &Normalizer{currencyTokens: tokens}
}

// Normalize returns the lowercased, filler-free form of text.
func (n *Normalizer) Normalize(text string) string {
	lower := strings.ToLower(text)
	lower = strings.ReplaceAll(lower, "-", " ")

	var kept []string
	for _, tok := range strings.Fields(lower) {
		trimmed := strings.Trim(tok, `.,!?;:'"()`)
		if trimmed == "" {
			continue
		}
		if _, ok := fillerWords[trimmed]; ok {
			continue
		}
		if _, ok := n.currencyTokens[trimmed]; ok {
			continue
		}
		kept = append(kept, trimmed)
	}
	return strings.Join(kept, " ")
}
