// Package currency resolves ISO 4217 currency codes from transcript text.
package currency

import "strings"

// Definition describes one supported currency. Definitions are immutable after
// construction; the registry is built once at startup and shared read-only.
type Definition struct {
	Code          string   `json:"code"`
	Symbol        string   `json:"symbol"`
	DisplayName   string   `json:"display_name"`
	Keywords      []string `json:"keywords"`
	DecimalPlaces int      `json:"decimal_places"`
	RightToLeft   bool     `json:"right_to_left"`
}

// Registry holds the ordered currency definition table. Order matters: the
// whole-text keyword scan resolves ties by definition order, so the table is
// part of the contract, not an implementation detail.
type Registry struct {
	byCode      map[string]*Definition
	definitions []Definition
}

// NewRegistry creates a registry from an ordered definition list.
func NewRegistry(definitions []Definition) *Registry {
	r := &Registry{
		definitions: definitions,
		byCode:      make(map[string]*Definition, len(definitions)),
	}
	for i := range r.definitions {
		def := &r.definitions[i]
		r.byCode[def.Code] = def
	}
	return r
}

// NewDefaultRegistry creates a registry with the built-in definition table.
func NewDefaultRegistry() *Registry {
	return NewRegistry(DefaultDefinitions())
}

// DefaultDefinitions returns the built-in ordered currency table.
// Keyword sets include the ISO code, symbol, display terms, and colloquialisms.
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			Code:          "AED",
			Symbol:        "د.إ",
			DisplayName:   "UAE Dirham",
			Keywords:      []string{"aed", "dirham", "dirhams", "dhs", "dh", "د.إ"},
			DecimalPlaces: 2,
			RightToLeft:   true,
		},
		{
			Code:          "USD",
			Symbol:        "$",
			DisplayName:   "US Dollar",
			Keywords:      []string{"usd", "dollar", "dollars", "buck", "bucks", "$"},
			DecimalPlaces: 2,
		},
		{
			Code:          "EUR",
			Symbol:        "€",
			DisplayName:   "Euro",
			Keywords:      []string{"eur", "euro", "euros", "€"},
			DecimalPlaces: 2,
		},
		{
			Code:          "GBP",
			Symbol:        "£",
			DisplayName:   "British Pound",
			Keywords:      []string{"gbp", "pound", "pounds", "quid", "£"},
			DecimalPlaces: 2,
		},
		{
			Code:          "INR",
			Symbol:        "₹",
			DisplayName:   "Indian Rupee",
			Keywords:      []string{"inr", "rupee", "rupees", "rs", "₹", "₨"},
			DecimalPlaces: 2,
		},
		{
			Code:          "SAR",
			Symbol:        "﷼",
			DisplayName:   "Saudi Riyal",
			Keywords:      []string{"sar", "riyal", "riyals", "﷼"},
			DecimalPlaces: 2,
			RightToLeft:   true,
		},
		{
			Code:          "PKR",
			Symbol:        "₨",
			DisplayName:   "Pakistani Rupee",
			Keywords:      []string{"pkr"},
			DecimalPlaces: 2,
		},
		{
			Code:          "JPY",
			Symbol:        "¥",
			DisplayName:   "Japanese Yen",
			Keywords:      []string{"jpy", "yen", "¥"},
			DecimalPlaces: 0,
		},
	}
}

// Definitions returns the ordered definition table.
func (r *Registry) Definitions() []Definition {
	return r.definitions
}

// Lookup returns the definition for an ISO code.
func (r *Registry) Lookup(code string) (*Definition, bool) {
	def, ok := r.byCode[strings.ToUpper(code)]
	return def, ok
}

// IsValid reports whether code is a known ISO code.
func (r *Registry) IsValid(code string) bool {
	_, ok := r.Lookup(code)
	return ok
}

// ResolveKeyword maps a single token to an ISO code by checking every
// definition's keyword set in table order. The token comparison is
// case-insensitive.
func (r *Registry) ResolveKeyword(token string) (string, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return "", false
	}
	for i := range r.definitions {
		def := &r.definitions[i]
		if strings.EqualFold(def.Code, token) {
			return def.Code, true
		}
		for _, kw := range def.Keywords {
			if kw == token {
				return def.Code, true
			}
		}
	}
	return "", false
}

// KeywordTokens returns every alphabetic keyword and ISO code in the table,
// lowercased. The normalizer strips these before word-number interpretation so
// currency names are never misread as number words.
func (r *Registry) KeywordTokens() []string {
	var tokens []string
	for i := range r.definitions {
		def := &r.definitions[i]
		tokens = append(tokens, strings.ToLower(def.Code))
		for _, kw := range def.Keywords {
			if isAlphabetic(kw) {
				tokens = append(tokens, kw)
			}
		}
	}
	return tokens
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return s != ""
}
