package cli

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/voxpense/voxpense/internal/currency"
	"github.com/voxpense/voxpense/internal/model"
)

func TestFormatAmount(t *testing.T) {
	registry := currency.NewDefaultRegistry()

	amount := decimal.RequireFromString("1250.5")
	yen := decimal.NewFromInt(3000)

	tests := []struct {
		name string
		data model.ExtractedExpenseData
		want string
	}{
		{
			name: "symbol prefix with two decimals",
			data: model.ExtractedExpenseData{Amount: &amount, Currency: "USD"},
			want: "$1250.50",
		},
		{
			name: "right to left currency renders symbol after amount",
			data: model.ExtractedExpenseData{Amount: &amount, Currency: "AED"},
			want: "1250.50 د.إ",
		},
		{
			name: "zero decimal currency",
			data: model.ExtractedExpenseData{Amount: &yen, Currency: "JPY"},
			want: "¥3000",
		},
		{
			name: "unknown code falls back to code suffix",
			data: model.ExtractedExpenseData{Amount: &amount, Currency: "XYZ"},
			want: "1250.50 XYZ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.data, registry))
		})
	}
}

func TestFormatConfirmation_IncludesMerchant(t *testing.T) {
	registry := currency.NewDefaultRegistry()
	amount := decimal.NewFromInt(40)
	merchant := "Starbucks"

	data := model.ExtractedExpenseData{
		Amount:   &amount,
		Currency: "USD",
		Category: "Food & Dining",
		Merchant: &merchant,
	}

	got := FormatConfirmation(data, registry)
	assert.Contains(t, got, "Food & Dining")
	assert.Contains(t, got, "Starbucks")
}
