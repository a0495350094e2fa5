package invoice

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validDraft() InvoiceDraft {
	rate := decimal.NewFromFloat(7.0)
	return InvoiceDraft{
		TaxRate: &rate,
		Lines: []LineItem{
			{SKU: "A1", Description: "Widget", UnitPrice: decimal.NewFromInt(10), Quantity: 2},
			{SKU: "A2", Description: "Gadget", UnitPrice: decimal.NewFromInt(5), Quantity: 0},
		},
	}
}

func TestValidateSuccess(t *testing.T) {
	v := Validator{Config: Config{MaxLines: 500}}
	result := v.Validate(validDraft())
	require.True(t, result.Valid, "errors: %+v", result.Errors)
	require.Equal(t, "20.00", result.Totals.Subtotal.StringFixed(2))
}

func TestValidateNegativeQuantity(t *testing.T) {
	v := Validator{Config: Config{MaxLines: 500}}
	d := validDraft()
	d.Lines[0].Quantity = -1
	result := v.Validate(d)
	require.False(t, result.Valid)
	require.Equal(t, "lines[0].quantity", result.Errors[0].Path)
}

func TestValidateDuplicateSKU(t *testing.T) {
	v := Validator{Config: Config{MaxLines: 500}}
	d := validDraft()
	d.Lines[1].SKU = "A1"
	result := v.Validate(d)
	require.False(t, result.Valid)
	require.Equal(t, "INV-REQ-002", result.Errors[0].Code)
}

func TestValidateMissingSKU(t *testing.T) {
	v := Validator{Config: Config{MaxLines: 500}}
	d := validDraft()
	d.Lines[0].SKU = ""
	result := v.Validate(d)
	require.False(t, result.Valid)
}

func TestValidateNegativeCharges(t *testing.T) {
	v := Validator{Config: Config{MaxLines: 500}}
	d := validDraft()
	d.Assembly = decimal.NewFromInt(-1)
	d.Delivery = decimal.NewFromInt(-1)
	rate := decimal.NewFromInt(-7)
	d.TaxRate = &rate
	result := v.Validate(d)
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 3)
}

func TestValidateTooManyLines(t *testing.T) {
	v := Validator{Config: Config{MaxLines: 1}}
	result := v.Validate(validDraft())
	require.False(t, result.Valid)
	require.Equal(t, "INV-LIMIT-001", result.Errors[0].Code)
}
