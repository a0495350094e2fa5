package invoice

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// InvoiceDraft is the JSON contract between the selection grid and the core:
// a sequence of line items plus the charges entered alongside them.
type InvoiceDraft struct {
	Date     openapi_types.Date `json:"date,omitempty"`
	TaxRate  *decimal.Decimal   `json:"taxRate,omitempty"`
	Assembly decimal.Decimal    `json:"assembly"`
	Delivery decimal.Decimal    `json:"delivery"`
	Lines    []LineItem         `json:"lines"`
}

type LineItem struct {
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
}

// Metadata is the resolved per-invoice data the renderer consumes.
type Metadata struct {
	Date     time.Time
	TaxRate  decimal.Decimal
	Assembly decimal.Decimal
	Delivery decimal.Decimal
}

// Meta resolves the draft into renderer metadata. Callers normalize the
// draft first (see Service.applyDefaults), so a nil tax rate only means zero.
func (d InvoiceDraft) Meta() Metadata {
	taxRate := decimal.Zero
	if d.TaxRate != nil {
		taxRate = *d.TaxRate
	}
	return Metadata{
		Date:     d.Date.Time,
		TaxRate:  taxRate,
		Assembly: d.Assembly,
		Delivery: d.Delivery,
	}
}

type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Assembly   decimal.Decimal `json:"assembly"`
	Delivery   decimal.Decimal `json:"delivery"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

type ValidationErrorItem struct {
	Code    string `json:"code"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

type ValidationResult struct {
	Valid  bool                  `json:"valid"`
	Errors []ValidationErrorItem `json:"errors"`
	Totals Totals                `json:"totals"`
}

// AuditLog is one hash-chained entry in the issuance journal.
type AuditLog struct {
	AuditID  string    `json:"auditId"`
	CorrID   string    `json:"corrId"`
	Action   string    `json:"action"`
	Number   int       `json:"invoiceNumber"`
	Ts       time.Time `json:"timestamp"`
	Hash     string    `json:"hash"`
	PrevHash string    `json:"prevHash"`
}
