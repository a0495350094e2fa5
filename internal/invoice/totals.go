package invoice

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Amount is the extended price of one line.
func Amount(line LineItem) decimal.Decimal {
	return line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
}

// ComputeTotals folds the draft into the totals block. Lines without a
// positive quantity contribute nothing, matching the rows the renderer draws.
func ComputeTotals(lines []LineItem, meta Metadata) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		subtotal = subtotal.Add(Amount(line))
	}
	tax := subtotal.Mul(meta.TaxRate).Div(hundred)
	return Totals{
		Subtotal:   subtotal,
		Tax:        tax,
		Assembly:   meta.Assembly,
		Delivery:   meta.Delivery,
		GrandTotal: subtotal.Add(tax).Add(meta.Assembly).Add(meta.Delivery),
	}
}
