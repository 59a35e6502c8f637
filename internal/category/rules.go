// Package category infers an expense category from transcript text using a
// fixed, ordered keyword table.
package category

// Rule is one ordered (keyword, category) pair. The rule list order is the
// tie-breaker: the first rule whose keyword appears anywhere in the text wins,
// regardless of where the keyword sits in the text.
type Rule struct {
	Keyword  string `json:"keyword"`
	Category string `json:"category"`
}

// DefaultCategory is returned when no rule keyword matches.
const DefaultCategory = "Other"

// DefaultRules returns the built-in ordered rule table. The authoring order is
// part of the contract: earlier rules win conflicts, so more specific keywords
// sit above the generic ones that could shadow them.
func DefaultRules() []Rule {
	return []Rule{
		// Groceries before generic food words so "grocery shopping" is not
		// swallowed by the shopping rules further down.
		{Keyword: "grocery", Category: "Groceries"},
		{Keyword: "groceries", Category: "Groceries"},
		{Keyword: "supermarket", Category: "Groceries"},
		{Keyword: "carrefour", Category: "Groceries"},
		{Keyword: "lulu", Category: "Groceries"},
		{Keyword: "spinneys", Category: "Groceries"},
		{Keyword: "walmart", Category: "Groceries"},

		{Keyword: "restaurant", Category: "Food & Dining"},
		{Keyword: "coffee", Category: "Food & Dining"},
		{Keyword: "starbucks", Category: "Food & Dining"},
		{Keyword: "mcdonald", Category: "Food & Dining"},
		{Keyword: "breakfast", Category: "Food & Dining"},
		{Keyword: "lunch", Category: "Food & Dining"},
		{Keyword: "dinner", Category: "Food & Dining"},
		{Keyword: "pizza", Category: "Food & Dining"},
		{Keyword: "burger", Category: "Food & Dining"},
		{Keyword: "food", Category: "Food & Dining"},

		{Keyword: "petrol", Category: "Transport"},
		{Keyword: "fuel", Category: "Transport"},
		{Keyword: "uber", Category: "Transport"},
		{Keyword: "careem", Category: "Transport"},
		{Keyword: "taxi", Category: "Transport"},
		{Keyword: "metro", Category: "Transport"},
		{Keyword: "parking", Category: "Transport"},
		{Keyword: "bus", Category: "Transport"},

		{Keyword: "rent", Category: "Housing"},
		{Keyword: "furniture", Category: "Housing"},
		{Keyword: "property", Category: "Housing"},

		{Keyword: "electricity", Category: "Utilities"},
		{Keyword: "internet", Category: "Utilities"},
		{Keyword: "mobile", Category: "Utilities"},
		{Keyword: "phone", Category: "Utilities"},

		{Keyword: "pharmacy", Category: "Health"},
		{Keyword: "medicine", Category: "Health"},
		{Keyword: "doctor", Category: "Health"},
		{Keyword: "hospital", Category: "Health"},
		{Keyword: "gym", Category: "Health"},

		{Keyword: "cinema", Category: "Entertainment"},
		{Keyword: "movie", Category: "Entertainment"},
		{Keyword: "netflix", Category: "Entertainment"},
		{Keyword: "concert", Category: "Entertainment"},
		{Keyword: "game", Category: "Entertainment"},

		{Keyword: "flight", Category: "Travel"},
		{Keyword: "hotel", Category: "Travel"},
		{Keyword: "airline", Category: "Travel"},

		{Keyword: "school", Category: "Education"},
		{Keyword: "tuition", Category: "Education"},
		{Keyword: "course", Category: "Education"},
		{Keyword: "book", Category: "Education"},

		// Generic shopping words last within the retail block so the earlier,
		// more specific merchants win.
		{Keyword: "amazon", Category: "Shopping"},
		{Keyword: "clothes", Category: "Shopping"},
		{Keyword: "shoes", Category: "Shopping"},
		{Keyword: "mall", Category: "Shopping"},
		{Keyword: "shopping", Category: "Shopping"},
		{Keyword: "shop", Category: "Shopping"},
	}
}
