package cli

import (
	"fmt"

	"github.com/voxpense/voxpense/internal/currency"
	"github.com/voxpense/voxpense/internal/model"
)

// FormatAmount renders an amount with its currency symbol, honoring the
// currency's decimal places and symbol placement.
func FormatAmount(data model.ExtractedExpenseData, registry *currency.Registry) string {
	if data.Amount == nil {
		return SubtleStyle.Render("(no amount)")
	}

	def, ok := registry.Lookup(data.Currency)
	if !ok {
		return data.Amount.StringFixed(2) + " " + data.Currency
	}

	rendered := data.Amount.StringFixed(int32(def.DecimalPlaces))
	if def.RightToLeft {
		return rendered + " " + def.Symbol
	}
	return def.Symbol + rendered
}

// FormatConfirmation renders the confirmation line shown after a successful
// parse.
func FormatConfirmation(data model.ExtractedExpenseData, registry *currency.Registry) string {
	msg := fmt.Sprintf("Added %s expense of %s",
		data.Category,
		BoldStyle.Render(FormatAmount(data, registry)))
	if data.Merchant != nil {
		msg += " at " + *data.Merchant
	}
	return FormatSuccess(msg)
}
