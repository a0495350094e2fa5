package invoice

import "fmt"

// Validator sanitizes drafts before they reach the renderer; the renderer
// itself accepts whatever it is given.
type Validator struct {
	Config Config
}

func (v Validator) Validate(draft InvoiceDraft) ValidationResult {
	errors := make([]ValidationErrorItem, 0)

	if v.Config.MaxLines > 0 && len(draft.Lines) > v.Config.MaxLines {
		errors = append(errors, errItem("INV-LIMIT-001", "lines", fmt.Sprintf("too many lines (max %d)", v.Config.MaxLines)))
	}
	if draft.TaxRate != nil && draft.TaxRate.IsNegative() {
		errors = append(errors, errItem("INV-MATH-001", "taxRate", "tax rate must be non-negative"))
	}
	if draft.Assembly.IsNegative() {
		errors = append(errors, errItem("INV-MATH-002", "assembly", "assembly charge must be non-negative"))
	}
	if draft.Delivery.IsNegative() {
		errors = append(errors, errItem("INV-MATH-003", "delivery", "delivery charge must be non-negative"))
	}

	seen := make(map[string]int, len(draft.Lines))
	for i, line := range draft.Lines {
		path := fmt.Sprintf("lines[%d]", i)
		if line.SKU == "" {
			errors = append(errors, errItem("INV-REQ-001", path+".sku", "sku is required"))
		} else if first, ok := seen[line.SKU]; ok {
			errors = append(errors, errItem("INV-REQ-002", path+".sku", fmt.Sprintf("duplicate sku, first seen at lines[%d]", first)))
		} else {
			seen[line.SKU] = i
		}
		if line.Quantity < 0 {
			errors = append(errors, errItem("INV-MATH-004", path+".quantity", "quantity must be non-negative"))
		}
		if line.UnitPrice.IsNegative() {
			errors = append(errors, errItem("INV-MATH-005", path+".unitPrice", "unit price must be non-negative"))
		}
	}

	return ValidationResult{
		Valid:  len(errors) == 0,
		Errors: errors,
		Totals: ComputeTotals(draft.Lines, draft.Meta()),
	}
}

func errItem(code, path, message string) ValidationErrorItem {
	return ValidationErrorItem{Code: code, Path: path, Message: message}
}
