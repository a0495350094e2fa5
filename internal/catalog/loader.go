package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

var requiredColumns = []string{"SKU", "Description", "Color", "Type", "Base Price"}

// Load reads the tab-delimited inventory file. Columns are addressed by
// header name, and duplicate SKUs get an occurrence suffix so every SKU the
// rest of the system sees is unique.
func Load(path string) ([]Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) ([]Product, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read inventory header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("inventory missing column %q", col)
		}
	}

	var products []Product
	row := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read inventory row %d: %w", row, err)
		}
		row++
		price, err := decimal.NewFromString(strings.TrimSpace(field(rec, idx["Base Price"])))
		if err != nil {
			return nil, fmt.Errorf("inventory row %d: bad base price: %w", row, err)
		}
		products = append(products, Product{
			SKU:         strings.TrimSpace(field(rec, idx["SKU"])),
			Description: field(rec, idx["Description"]),
			Color:       field(rec, idx["Color"]),
			Type:        field(rec, idx["Type"]),
			BasePrice:   price,
		})
	}
	return DedupSKUs(products), nil
}

// DedupSKUs suffixes repeated SKUs with their occurrence index; the first
// occurrence keeps the bare SKU, the second becomes SKU_1, and so on.
func DedupSKUs(products []Product) []Product {
	counts := make(map[string]int, len(products))
	out := make([]Product, len(products))
	for i, p := range products {
		n := counts[p.SKU]
		counts[p.SKU] = n + 1
		if n > 0 {
			p.SKU = fmt.Sprintf("%s_%d", p.SKU, n)
		}
		out[i] = p
	}
	return out
}

func field(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}
