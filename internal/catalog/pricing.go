package catalog

import "github.com/shopspring/decimal"

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Price applies the percentage upcharge to a base price, rounded to currency
// precision. The renderer never rounds again; this is the only place a unit
// price is derived.
func Price(base, upcharge decimal.Decimal) decimal.Decimal {
	return base.Mul(one.Add(upcharge.Div(hundred))).Round(2)
}
