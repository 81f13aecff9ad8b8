package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var salesCandidates = []FieldCandidates{
	{Field: "product_id", Keywords: []string{"asin", "product_id", "id"}},
	{Field: "price", Keywords: []string{"price", "selling_price"}},
	{Field: "units_sold", Keywords: []string{"sales", "units_sold", "sold"}},
	{Field: "rating", Keywords: []string{"rating", "score"}},
}

func TestDetect(t *testing.T) {
	t.Run("first keyword in priority order wins", func(t *testing.T) {
		headers := []string{"ASIN", "product_id", "Price"}
		mapping := Detect(headers, salesCandidates)

		require.True(t, mapping.Has("product_id"))
		assert.Equal(t, "ASIN", mapping["product_id"].Name)
		assert.Equal(t, 0, mapping["product_id"].Index)
	})

	t.Run("case-insensitive exact match only", func(t *testing.T) {
		headers := []string{"PRICE", "unit_price", "Sold"}
		mapping := Detect(headers, salesCandidates)

		assert.Equal(t, "PRICE", mapping["price"].Name)
		assert.Equal(t, "Sold", mapping["units_sold"].Name)
		// "unit_price" contains "price" but is not an exact match
		assert.Equal(t, 0, mapping["price"].Index)
	})

	t.Run("absent field missing from mapping", func(t *testing.T) {
		mapping := Detect([]string{"price", "sold"}, salesCandidates)

		assert.False(t, mapping.Has("product_id"))
		assert.False(t, mapping.Has("rating"))
		assert.True(t, mapping.Has("price"))
	})

	t.Run("header case permutation yields identical mapping", func(t *testing.T) {
		lower := Detect([]string{"asin", "price", "sales"}, salesCandidates)
		upper := Detect([]string{"ASIN", "PRICE", "SALES"}, salesCandidates)

		require.Equal(t, len(lower), len(upper))
		for field, col := range lower {
			assert.Equal(t, col.Index, upper[field].Index)
		}
	})

	t.Run("column order permutation keeps field resolution", func(t *testing.T) {
		a := Detect([]string{"price", "sales", "asin"}, salesCandidates)
		b := Detect([]string{"asin", "price", "sales"}, salesCandidates)

		for _, field := range []string{"product_id", "price", "units_sold"} {
			assert.Equal(t, a[field].Name, b[field].Name, field)
		}
	})

	t.Run("deterministic across repeated runs", func(t *testing.T) {
		headers := []string{"ID", "Selling_Price", "Units_Sold", "Score"}
		first := Detect(headers, salesCandidates)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Detect(headers, salesCandidates))
		}
	})
}

func TestColumnMappingValue(t *testing.T) {
	mapping := Detect([]string{"price", "sold"}, salesCandidates)
	row := []string{" 19.99 ", "42"}

	assert.Equal(t, "19.99", mapping.Value(row, "price"))
	assert.Equal(t, "42", mapping.Value(row, "units_sold"))
	assert.Equal(t, "", mapping.Value(row, "rating"))
	assert.Equal(t, "", mapping.Value([]string{}, "price"))
}
