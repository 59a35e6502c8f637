package parser

import (
	"strings"

	"github.com/shopspring/decimal"
)

// wordKind classifies a normalized token for the number word state machine.
type wordKind int

const (
	kindUnknown   wordKind = iota
	kindDigit              // 0-19, "a"/"an"
	kindTens               // 20, 30, ... 90
	kindHundred            // multiplies the current group in place
	kindScale              // thousand/lakh/crore/million/billion/trillion
	kindPoint              // enters fractional mode
	kindSubUnit            // cents/paise
	kindConnector          // "and"
	kindNegative           // sign marker
)

type numberWord struct {
	kind  wordKind
	value int64
}

// numberWords maps every recognized token to its classification. Unlisted
// tokens are ignored by the scan.
var numberWords = map[string]numberWord{
	"zero": {kindDigit, 0}, "one": {kindDigit, 1}, "two": {kindDigit, 2},
	"three": {kindDigit, 3}, "four": {kindDigit, 4}, "five": {kindDigit, 5},
	"six": {kindDigit, 6}, "seven": {kindDigit, 7}, "eight": {kindDigit, 8},
	"nine": {kindDigit, 9}, "ten": {kindDigit, 10}, "eleven": {kindDigit, 11},
	"twelve": {kindDigit, 12}, "thirteen": {kindDigit, 13}, "fourteen": {kindDigit, 14},
	"fifteen": {kindDigit, 15}, "sixteen": {kindDigit, 16}, "seventeen": {kindDigit, 17},
	"eighteen": {kindDigit, 18}, "nineteen": {kindDigit, 19},
	"a": {kindDigit, 1}, "an": {kindDigit, 1},

	"twenty": {kindTens, 20}, "thirty": {kindTens, 30}, "forty": {kindTens, 40},
	"fifty": {kindTens, 50}, "sixty": {kindTens, 60}, "seventy": {kindTens, 70},
	"eighty": {kindTens, 80}, "ninety": {kindTens, 90},

	"hundred": {kindHundred, 100},

	"thousand": {kindScale, 1_000},
	"lakh":     {kindScale, 100_000},
	"lac":      {kindScale, 100_000},
	"crore":    {kindScale, 10_000_000},
	"million":  {kindScale, 1_000_000},
	"billion":  {kindScale, 1_000_000_000},
	"trillion": {kindScale, 1_000_000_000_000},

	"point": {kindPoint, 0},

	"cents": {kindSubUnit, 0}, "cent": {kindSubUnit, 0},
	"paise": {kindSubUnit, 0}, "paisa": {kindSubUnit, 0},

	"and": {kindConnector, 0},

	"negative": {kindNegative, 0}, "minus": {kindNegative, 0},
}

var ten = decimal.NewFromInt(10)

// InterpretNumberWords converts spelled-out numbers in normalized text into a
// decimal value. The scan keeps two accumulators: current collects within the
// active scale group, and total receives a flush at each scale breakpoint.
// The flush-on-breakpoint rule is what makes "two thousand five hundred"
// parse as 2500, and a scale word with no preceding number defaults to one
// group ("thousand" alone is 1000). Returns false when nothing positive was
// assembled.
func InterpretNumberWords(text string) (decimal.Decimal, bool) {
	var current, total int64
	frac := decimal.Zero
	hasFraction := false
	inFraction := false
	negative := false

	for _, tok := range strings.Fields(text) {
		word, ok := numberWords[tok]
		if !ok {
			continue
		}

		switch word.kind {
		case kindConnector:
			// "and" carries no value.
		case kindNegative:
			negative = true
		case kindPoint:
			total += current
			current = 0
			inFraction = true
			hasFraction = true
		case kindDigit, kindTens:
			if inFraction {
				frac = frac.Mul(ten).Add(decimal.NewFromInt(word.value))
			} else {
				current += word.value
			}
		case kindHundred:
			if current == 0 {
				current = 1
			}
			current *= 100
		case kindScale:
			if current == 0 {
				current = 1
			}
			current *= word.value
			total += current
			current = 0
		case kindSubUnit:
			// The just-accumulated group is a sub-unit count: "fifty cents"
			// becomes 0.50.
			frac = decimal.NewFromInt(current).Div(decimal.NewFromInt(100))
			hasFraction = true
			current = 0
		case kindUnknown:
		}
	}

	total += current
	result := decimal.NewFromInt(total)
	if hasFraction {
		result = result.Add(normalizeFraction(frac))
	}
	if negative {
		result = result.Neg()
	}

	if result.IsPositive() {
		return result, true
	}
	return decimal.Zero, false
}

// normalizeFraction folds a composed fractional part into sub-unit range.
// A value already below one (the cents/paise path) is kept as-is; a value in
// [1, 100) was composed digit-by-digit after "point" and is divided by 100;
// anything larger is kept as-is.
func normalizeFraction(frac decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	hundred := decimal.NewFromInt(100)
	if frac.LessThan(one) {
		return frac
	}
	if frac.LessThan(hundred) {
		return frac.Div(hundred)
	}
	return frac
}
