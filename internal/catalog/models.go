package catalog

import "github.com/shopspring/decimal"

// Product is one inventory row as loaded from the delimited source.
type Product struct {
	SKU         string          `json:"sku"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	Type        string          `json:"type"`
	BasePrice   decimal.Decimal `json:"basePrice"`
}

// Item is a product priced for the selection grid, merged with the last
// saved quantity.
type Item struct {
	Product
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}
