package parser

import (
	"regexp"
	"strings"
)

// merchantPattern captures the proper-noun span following "at" or "from" in
// the original-cased text.
var merchantPattern = regexp.MustCompile(`(?i)\b(?:at|from)\s+([a-zA-Z\s]+?)(?:\s|$)`)

// merchantNoiseWords are background-noise tokens the speech recognizer tends
// to fold into the merchant span. They are stripped word by word.
var merchantNoiseWords = map[string]struct{}{
	"music":      {},
	"playing":    {},
	"traffic":    {},
	"noise":      {},
	"background": {},
	"sound":      {},
	"honking":    {},
}

// ExtractMerchant returns the cleaned merchant span from text, or nil when no
// span exists or it was noise-only.
func ExtractMerchant(text string) *string {
	match := merchantPattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}

	var kept []string
	for _, word := range strings.Fields(strings.TrimSpace(match[1])) {
		if _, noisy := merchantNoiseWords[strings.ToLower(word)]; noisy {
			continue
		}
		kept = append(kept, word)
	}
	if len(kept) == 0 {
		return nil
	}

	merchant := strings.Join(kept, " ")
	return &merchant
}
