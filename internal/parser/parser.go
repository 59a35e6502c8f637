package parser

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/voxpense/voxpense/internal/category"
	"github.com/voxpense/voxpense/internal/currency"
	"github.com/voxpense/voxpense/internal/model"
)

// MaxAmount is the plausibility ceiling for digit-extracted amounts; anything
// above it is rejected rather than clamped. It guards against digit runs like
// phone numbers or reference IDs being misread as amounts. Spoken number words
// carry scale units (lakh, crore, million) deliberately, so word-derived
// amounts are not capped.
var MaxAmount = decimal.NewFromInt(999_999)

// Parser composes the normalizer, extractors, and detectors into one pure
// parse operation. Construct once and reuse; the configuration tables are
// read-only so concurrent calls need no locking.
type Parser struct {
	registry   *currency.Registry
	normalizer *Normalizer
	numeric    *NumericExtractor
	detector   *currency.Detector
	categories *category.Inferencer
}

// New creates a parser with the built-in currency and category tables.
func New() *Parser {
	return NewWith(currency.NewDefaultRegistry(), category.DefaultRules())
}

// NewWith creates a parser over explicit configuration tables.
func NewWith(registry *currency.Registry, rules []category.Rule) *Parser {
	numeric := NewNumericExtractor()
	return &Parser{
		registry:   registry,
		normalizer: NewNormalizer(registry),
		numeric:    numeric,
		detector:   currency.NewDetector(registry, numeric),
		categories: category.NewInferencer(rules),
	}
}

// Registry returns the parser's currency table.
func (p *Parser) Registry() *currency.Registry {
	return p.registry
}

// Categories returns the parser's category inferencer.
func (p *Parser) Categories() *category.Inferencer {
	return p.categories
}

// Parse converts a transcript into structured expense data. It never fails:
// an unusable amount comes back nil, currency falls back to defaultCurrency,
// category falls back to the default, and merchant is nil when no span
// survives. The function is pure and fully deterministic.
func (p *Parser) Parse(transcript, defaultCurrency string) model.ExtractedExpenseData {
	normalized := p.normalizer.Normalize(transcript)

	amount, code := p.extractAmount(transcript, normalized, defaultCurrency)

	return model.ExtractedExpenseData{
		Amount:   plausibleAmount(amount),
		Currency: code,
		Category: p.categories.Infer(strings.ToLower(transcript)),
		Merchant: ExtractMerchant(transcript),
	}
}

// extractAmount resolves the amount and currency together. The combined
// digit-and-symbol extraction runs over the original text so one capturing
// match can yield both values; the word interpreter only runs when no
// explicit digits were found.
func (p *Parser) extractAmount(transcript, normalized, defaultCurrency string) (*model.ParsedAmount, string) {
	value, code := p.detector.ExtractAmountAndCurrency(transcript, defaultCurrency)
	if value != nil {
		return &model.ParsedAmount{Value: *value, Source: model.AmountSourceDigits}, code
	}

	if derived, ok := InterpretNumberWords(normalized); ok {
		return &model.ParsedAmount{Value: derived, Source: model.AmountSourceWords}, code
	}
	return nil, code
}

// plausibleAmount rejects non-positive amounts and digit-extracted amounts
// above the ceiling, never clamping them.
func plausibleAmount(amount *model.ParsedAmount) *decimal.Decimal {
	if amount == nil {
		return nil
	}
	if !amount.Value.IsPositive() {
		return nil
	}
	if amount.Source == model.AmountSourceDigits && amount.Value.GreaterThan(MaxAmount) {
		return nil
	}
	value := amount.Value
	return &value
}
