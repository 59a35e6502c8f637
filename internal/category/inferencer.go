package category

import "strings"

// Inferencer assigns a category to transcript text by walking the ordered rule
// list. It holds no mutable state and is safe for concurrent use.
type Inferencer struct {
	rules []Rule
}

// NewInferencer creates an inferencer over the given ordered rules.
func NewInferencer(rules []Rule) *Inferencer {
	return &Inferencer{rules: rules}
}

// NewDefaultInferencer creates an inferencer with the built-in rule table.
func NewDefaultInferencer() *Inferencer {
	return NewInferencer(DefaultRules())
}

// Infer returns the category of the first rule whose keyword appears in text.
// The scan is list-order-driven, not text-position-driven: a keyword late in
// the text still wins if its rule sits earlier in the table. Matching is
// case-insensitive substring containment. Falls back to DefaultCategory.
func (i *Inferencer) Infer(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range i.rules {
		if strings.Contains(lower, rule.Keyword) {
			return rule.Category
		}
	}
	return DefaultCategory
}

// Rules returns the ordered rule table.
func (i *Inferencer) Rules() []Rule {
	return i.rules
}

// Categories returns the distinct category names in rule order.
func (i *Inferencer) Categories() []string {
	seen := make(map[string]struct{}, len(i.rules))
	var names []string
	for _, rule := range i.rules {
		if _, ok := seen[rule.Category]; ok {
			continue
		}
		seen[rule.Category] = struct{}{}
		names = append(names, rule.Category)
	}
	return names
}
