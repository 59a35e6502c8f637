package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMerchant(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string // empty means nil expected
	}{
		{
			name: "merchant after at",
			text: "spent 50 at Starbucks this morning",
			want: "Starbucks",
		},
		{
			name: "merchant after from",
			text: "bought milk from Carrefour",
			want: "Carrefour",
		},
		{
			name: "capitalized At still matches",
			text: "At Noon I paid 20",
			want: "Noon",
		},
		{
			name: "noise tokens are stripped",
			text: "paid 30 at music playing",
			want: "",
		},
		{
			name: "noise-only span yields nil",
			text: "paid 30 from noise",
			want: "",
		},
		{
			name: "lazy capture takes the first word of a multi word name",
			text: "spent 40 at Whole Foods",
			want: "Whole",
		},
		{
			name: "no at or from span",
			text: "spent 100 on groceries",
			want: "",
		},
		{
			name: "at inside a word does not trigger",
			text: "that cost 10",
			want: "",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractMerchant(tt.text)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}
