package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestComputeTotalsExampleScenario(t *testing.T) {
	lines := []LineItem{
		{SKU: "A1", Description: "Widget", UnitPrice: decimal.RequireFromString("10.00"), Quantity: 2},
		{SKU: "A2", Description: "Gadget", UnitPrice: decimal.RequireFromString("5.00"), Quantity: 0},
	}
	meta := Metadata{
		TaxRate:  decimal.NewFromFloat(7.0),
		Assembly: decimal.NewFromInt(3),
		Delivery: decimal.NewFromInt(2),
	}

	totals := ComputeTotals(lines, meta)
	require.Equal(t, "20.00", totals.Subtotal.StringFixed(2))
	require.Equal(t, "1.40", totals.Tax.StringFixed(2))
	require.Equal(t, "26.40", totals.GrandTotal.StringFixed(2))
}

func TestComputeTotalsExcludesZeroQuantity(t *testing.T) {
	lines := []LineItem{
		{SKU: "A1", UnitPrice: decimal.NewFromInt(100), Quantity: 0},
		{SKU: "A2", UnitPrice: decimal.NewFromInt(100), Quantity: 0},
	}
	totals := ComputeTotals(lines, Metadata{TaxRate: decimal.NewFromFloat(7.0)})
	require.True(t, totals.Subtotal.IsZero())
	require.True(t, totals.Tax.IsZero())
	require.True(t, totals.GrandTotal.IsZero())
}

func TestComputeTotalsEmptyInvoice(t *testing.T) {
	totals := ComputeTotals(nil, Metadata{
		TaxRate:  decimal.NewFromFloat(7.0),
		Assembly: decimal.NewFromFloat(3.5),
		Delivery: decimal.NewFromFloat(1.5),
	})
	require.True(t, totals.Subtotal.IsZero())
	require.Equal(t, "5.00", totals.GrandTotal.StringFixed(2))
}

func TestAmount(t *testing.T) {
	line := LineItem{UnitPrice: decimal.RequireFromString("2.49"), Quantity: 3}
	require.Equal(t, "7.47", Amount(line).StringFixed(2))
}
