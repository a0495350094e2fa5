package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleProducts() []Product {
	return []Product{
		{SKU: "A1", Description: "Oak bookshelf", Color: "Brown", Type: "Shelf"},
		{SKU: "A2", Description: "Walnut side table", Color: "Brown", Type: "Table"},
		{SKU: "B1", Description: "White floor lamp", Color: "White", Type: "Lamp"},
	}
}

func TestFilterByColor(t *testing.T) {
	out := Filter{Color: "Brown"}.Apply(sampleProducts())
	require.Len(t, out, 2)
}

func TestFilterByType(t *testing.T) {
	out := Filter{Type: "Lamp"}.Apply(sampleProducts())
	require.Len(t, out, 1)
	require.Equal(t, "B1", out[0].SKU)
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	out := Filter{Search: "WALNUT"}.Apply(sampleProducts())
	require.Len(t, out, 1)
	require.Equal(t, "A2", out[0].SKU)
}

func TestFilterCombines(t *testing.T) {
	out := Filter{Color: "Brown", Search: "table"}.Apply(sampleProducts())
	require.Len(t, out, 1)
	require.Equal(t, "A2", out[0].SKU)
}

func TestFilterEmptyMatchesAll(t *testing.T) {
	require.Len(t, Filter{}.Apply(sampleProducts()), 3)
}

func TestColorsAndTypesAreSortedDistinct(t *testing.T) {
	require.Equal(t, []string{"Brown", "White"}, Colors(sampleProducts()))
	require.Equal(t, []string{"Lamp", "Shelf", "Table"}, Types(sampleProducts()))
}
