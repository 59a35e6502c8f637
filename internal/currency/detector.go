package currency

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountExtractor finds an explicit digit amount in text.
type AmountExtractor interface {
	Extract(text string) (decimal.Decimal, bool)
}

// numberSpan matches a digit amount with optional thousands grouping and
// decimal part. Shared by the symbol-anchored patterns and the adjacency scan.
const numberSpan = `(\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?)`

// symbolPattern binds one symbol-anchored regex to a fixed ISO code. The
// capture group, when present, is the amount span so a single match can yield
// both values.
type symbolPattern struct {
	re   *regexp.Regexp
	code string
}

// Detector resolves a currency code from transcript text. Resolution order:
// symbol-anchored patterns, numeric-adjacent keyword lookup, whole-text
// keyword scan, then the caller-supplied default. The pattern list is ordered
// and that order is part of the contract.
type Detector struct {
	registry *Registry
	amounts  AmountExtractor
	number   *regexp.Regexp
	symbols  []symbolPattern
}

// NewDetector creates a detector over the given registry. The amount extractor
// supplies the digit-pattern matching used by ExtractAmountAndCurrency.
func NewDetector(registry *Registry, amounts AmountExtractor) *Detector {
	patterns := []struct {
		pattern string
		code    string
	}{
		// Prefix and suffix forms are separate entries so both anchors are
		// checked explicitly. Literal-symbol entries come before the looser
		// "Rs." style abbreviations.
		{`₹\s*` + numberSpan, "INR"},
		{numberSpan + `\s*₹`, "INR"},
		{`(?:₨|\b[Rr][Ss]\.?)\s*` + numberSpan, "INR"},
		{numberSpan + `\s*(?:₨|[Rr][Ss]\.?)(?:\s|$)`, "INR"},
		{`\$\s*` + numberSpan, "USD"},
		{numberSpan + `\s*\$`, "USD"},
		{`€\s*` + numberSpan, "EUR"},
		{numberSpan + `\s*€`, "EUR"},
		{`£\s*` + numberSpan, "GBP"},
		{numberSpan + `\s*£`, "GBP"},
		{`د\.إ\s*` + numberSpan, "AED"},
		{numberSpan + `\s*د\.إ`, "AED"},
		{`﷼\s*` + numberSpan, "SAR"},
		{numberSpan + `\s*﷼`, "SAR"},
		{`¥\s*` + numberSpan, "JPY"},
		{numberSpan + `\s*¥`, "JPY"},
	}

	d := &Detector{
		registry: registry,
		amounts:  amounts,
		number:   regexp.MustCompile(numberSpan),
		symbols:  make([]symbolPattern, 0, len(patterns)),
	}
	for _, p := range patterns {
		d.symbols = append(d.symbols, symbolPattern{
			re:   regexp.MustCompile(p.pattern),
			code: p.code,
		})
	}
	return d
}

// Detect resolves the currency code for text, falling back to defaultCode
// when no signal is found. It never returns an empty code.
func (d *Detector) Detect(text, defaultCode string) string {
	if code, ok := d.detectSymbol(text); ok {
		return code
	}
	if code, ok := d.detectAdjacent(text); ok {
		return code
	}
	if code, ok := d.detectContained(text); ok {
		return code
	}
	return defaultCode
}

// ExtractAmountAndCurrency is the combined entry point used by the parser:
// a single symbol-anchored match yields both the amount and the currency.
// When no symbol pattern matches, the amount comes from the digit extractor
// and the currency from the normal resolution order. The amount is nil when
// the text has no explicit digits.
func (d *Detector) ExtractAmountAndCurrency(text, defaultCode string) (*decimal.Decimal, string) {
	for _, sp := range d.symbols {
		m := sp.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if amount, ok := parseAmountSpan(m[1]); ok {
			return &amount, sp.code
		}
	}

	code := d.Detect(text, defaultCode)
	if amount, ok := d.amounts.Extract(text); ok {
		return &amount, code
	}
	return nil, code
}

func (d *Detector) detectSymbol(text string) (string, bool) {
	for _, sp := range d.symbols {
		if sp.re.MatchString(text) {
			return sp.code, true
		}
	}
	return "", false
}

// detectAdjacent looks up the tokens immediately before and after the first
// numeric span against every definition's keyword set.
func (d *Detector) detectAdjacent(text string) (string, bool) {
	loc := d.number.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	if after := firstToken(text[loc[1]:]); after != "" {
		if code, ok := d.registry.ResolveKeyword(after); ok {
			return code, true
		}
	}
	if before := lastToken(text[:loc[0]]); before != "" {
		if code, ok := d.registry.ResolveKeyword(before); ok {
			return code, true
		}
	}
	return "", false
}

// detectContained scans the full text for any currency keyword, in definition
// table order. Alphabetic keywords match whole tokens only; symbol keywords
// match as substrings.
func (d *Detector) detectContained(text string) (string, bool) {
	lower := strings.ToLower(text)
	tokens := make(map[string]struct{})
	for _, tok := range strings.Fields(lower) {
		tokens[trimToken(tok)] = struct{}{}
	}

	for _, def := range d.registry.Definitions() {
		if _, ok := tokens[strings.ToLower(def.Code)]; ok {
			return def.Code, true
		}
		for _, kw := range def.Keywords {
			if isAlphabetic(kw) {
				if _, ok := tokens[kw]; ok {
					return def.Code, true
				}
			} else if strings.Contains(lower, kw) {
				return def.Code, true
			}
		}
	}
	return "", false
}

func parseAmountSpan(span string) (decimal.Decimal, bool) {
	span = strings.ReplaceAll(span, ",", "")
	amount, err := decimal.NewFromString(span)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

func trimToken(tok string) string {
	return strings.Trim(tok, `.,!?;:'"()`)
}

func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return trimToken(fields[0])
}

func lastToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return trimToken(fields[len(fields)-1])
}
