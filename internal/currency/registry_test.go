package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Lookup(t *testing.T) {
	registry := NewDefaultRegistry()

	def, ok := registry.Lookup("aed")
	require.True(t, ok)
	assert.Equal(t, "AED", def.Code)
	assert.Equal(t, "UAE Dirham", def.DisplayName)
	assert.True(t, def.RightToLeft)

	_, ok = registry.Lookup("XXX")
	assert.False(t, ok)

	assert.True(t, registry.IsValid("usd"))
	assert.False(t, registry.IsValid(""))
}

func TestRegistry_ResolveKeyword(t *testing.T) {
	registry := NewDefaultRegistry()

	tests := []struct {
		token  string
		want   string
		wantOK bool
	}{
		{"dirhams", "AED", true},
		{"DIRHAM", "AED", true},
		{"buck", "USD", true},
		{"quid", "GBP", true},
		{"rupees", "INR", true},
		{"eur", "EUR", true},
		{"sar", "SAR", true},
		{"yen", "JPY", true},
		{"groceries", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := registry.ResolveKeyword(tt.token)
		assert.Equal(t, tt.wantOK, ok, tt.token)
		assert.Equal(t, tt.want, got, tt.token)
	}
}

func TestRegistry_CoversRequiredCodes(t *testing.T) {
	registry := NewDefaultRegistry()

	for _, code := range []string{"AED", "USD", "EUR", "GBP", "INR", "SAR"} {
		assert.True(t, registry.IsValid(code), code)
	}
}

func TestRegistry_KeywordTokens(t *testing.T) {
	registry := NewDefaultRegistry()
	tokens := registry.KeywordTokens()

	assert.Contains(t, tokens, "dirhams")
	assert.Contains(t, tokens, "usd")
	assert.Contains(t, tokens, "quid")
	// Symbols are not word tokens and must not be in the strip list.
	assert.NotContains(t, tokens, "$")
	assert.NotContains(t, tokens, "د.إ")
}
