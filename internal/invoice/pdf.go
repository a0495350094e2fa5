package invoice

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// Layout constants, in points on a Letter page. Column offsets are measured
// from the left edge; the description column wraps into the gap before the
// unit price column.
const (
	pageWidth  = 612.0
	pageHeight = 792.0
	pageMargin = 72.0
	lineHeight = 14.0
	rowGap     = 4.0

	colSKU    = pageMargin
	colDesc   = pageMargin + 60
	colUnit   = pageMargin + 260
	colQty    = pageMargin + 340
	colAmount = pageMargin + 380

	descWidth  = colUnit - colDesc - 4
	bodyBottom = pageHeight - pageMargin
)

// Renderer produces the paginated invoice document. It has no validation
// responsibility; sanitizing input is the caller's job.
type Renderer struct {
	cfg Config
}

func NewRenderer(cfg Config) Renderer {
	return Renderer{cfg: cfg}
}

// Render lays the invoice out on Letter pages and returns the finished
// document. Lines without a positive quantity are skipped entirely.
func (r Renderer) Render(lines []LineItem, number int, meta Metadata) ([]byte, error) {
	pdf := r.layout(lines, number, meta)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("finalize pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// layout draws every page but leaves the document open so tests can inspect
// the page count before output.
func (r Renderer) layout(lines []LineItem, number int, meta Metadata) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	y := r.drawHeader(pdf, number, meta)
	y = drawColumnHeads(pdf, y)
	setBodyFont(pdf)

	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}
		y = r.drawRow(pdf, line, y)
	}

	r.drawTotals(pdf, ComputeTotals(lines, meta), meta, y)
	return pdf
}

func (r Renderer) drawHeader(pdf *gofpdf.Fpdf, number int, meta Metadata) float64 {
	y := pageMargin
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(pageMargin, y, "INVOICE")
	y += 0.4 * 72
	setBodyFont(pdf)
	pdf.Text(pageMargin, y, fmt.Sprintf("Invoice #: %d", number))
	pdf.Text(pageWidth-pageMargin-150, y, "Date: "+meta.Date.Format("2006-01-02"))
	return y + 0.3*72
}

func drawColumnHeads(pdf *gofpdf.Fpdf, y float64) float64 {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(colSKU, y, "SKU")
	pdf.Text(colDesc, y, "Description")
	pdf.Text(colUnit, y, "Unit Price")
	pdf.Text(colQty, y, "Qty")
	pdf.Text(colAmount, y, "Amount")
	y += 0.2 * 72
	pdf.Line(pageMargin, y, pageWidth-pageMargin, y)
	return y + 0.2*72
}

// drawRow wraps the description into its column and draws one row anchored
// to the top line. If the wrapped row would cross the bottom margin, the
// page is closed first and the row starts at the top of the next one.
func (r Renderer) drawRow(pdf *gofpdf.Fpdf, line LineItem, y float64) float64 {
	var descLines []string
	if line.Description != "" {
		descLines = pdf.SplitText(line.Description, descWidth)
	}
	rowHeight := float64(len(descLines))*lineHeight + rowGap

	if y+rowHeight > bodyBottom {
		y = r.breakPage(pdf)
	}

	pdf.Text(colSKU, y, line.SKU)
	for i, wrapped := range descLines {
		pdf.Text(colDesc, y+float64(i)*lineHeight, wrapped)
	}
	pdf.Text(colUnit, y, money(line.UnitPrice))
	pdf.Text(colQty, y, strconv.Itoa(line.Quantity))
	pdf.Text(colAmount, y, money(Amount(line)))
	return y + rowHeight
}

func (r Renderer) breakPage(pdf *gofpdf.Fpdf) float64 {
	pdf.AddPage()
	y := pageMargin
	if r.cfg.RepeatHeader {
		y = drawColumnHeads(pdf, y)
	}
	setBodyFont(pdf)
	return y
}

func (r Renderer) drawTotals(pdf *gofpdf.Fpdf, totals Totals, meta Metadata, y float64) {
	// Subtotal through grand total span 5.5 line heights from the cursor.
	if y+5.5*lineHeight > bodyBottom {
		pdf.AddPage()
		setBodyFont(pdf)
		y = pageMargin
	}

	y += lineHeight
	drawRight(pdf, y, "Subtotal: "+money(totals.Subtotal))
	y += lineHeight
	drawRight(pdf, y, fmt.Sprintf("Tax (%s%%): %s", meta.TaxRate.StringFixed(2), money(totals.Tax)))
	y += lineHeight
	drawRight(pdf, y, "Assembly: "+money(totals.Assembly))
	y += lineHeight
	drawRight(pdf, y, "Delivery: "+money(totals.Delivery))
	y += 1.5 * lineHeight
	pdf.SetFont("Helvetica", "B", 12)
	drawRight(pdf, y, "Grand Total: "+money(totals.GrandTotal))
}

func setBodyFont(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "", 10)
}

func drawRight(pdf *gofpdf.Fpdf, y float64, s string) {
	pdf.Text(pageWidth-pageMargin-pdf.GetStringWidth(s), y, s)
}

func money(v decimal.Decimal) string {
	return "$" + v.StringFixed(2)
}
