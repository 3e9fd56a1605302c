package orderparse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricelab/sales-tax-service/internal/models"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line     string
		quantity int
		name     string
		price    string
		source   models.ProductSource
		category models.ProductCategory
	}{
		{"2 book at 12.49", 2, "book", "12.49", models.SourceLocal, models.CategoryBooks},
		{"1 music CD at 14.99", 1, "music CD", "14.99", models.SourceLocal, models.CategoryOther},
		{"1 chocolate bar at 0.85", 1, "chocolate bar", "0.85", models.SourceLocal, models.CategoryFood},
		{"1 imported box of chocolates at 10.00", 1, "box of chocolates", "10.00", models.SourceImported, models.CategoryFood},
		{"1 imported bottle of perfume at 47.50", 1, "bottle of perfume", "47.50", models.SourceImported, models.CategoryOther},
		{"1 packet of headache pills at 9.75", 1, "packet of headache pills", "9.75", models.SourceLocal, models.CategoryMedical},
		{"3 box of imported chocolates at 11.25", 3, "box of chocolates", "11.25", models.SourceImported, models.CategoryFood},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			order, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.quantity, order.Quantity)
			assert.Equal(t, tt.name, order.Product.Name)
			assert.Equal(t, tt.price, order.Product.Price.StringFixed(2))
			assert.Equal(t, tt.source, order.Product.Source)
			assert.Equal(t, tt.category, order.Product.Category)
		})
	}
}

func TestParseLineBadInput(t *testing.T) {
	for _, line := range []string{
		"",
		"book at 12.49",     // no quantity
		"1 book",            // no price
		"1 book at twelve",  // non-numeric price
		"one book at 12.49", // non-numeric quantity
		"1 book for 12.49",  // wrong separator
	} {
		t.Run(line, func(t *testing.T) {
			_, err := ParseLine(line)
			assert.ErrorIs(t, err, ErrBadFormat)
		})
	}
}

func TestParseLineTruncatesPrice(t *testing.T) {
	order, err := ParseLine("1 music CD at 14.999")
	require.NoError(t, err)
	assert.Equal(t, "14.99", order.Product.Price.StringFixed(2))
}

func TestParseOrders(t *testing.T) {
	input := strings.Join([]string{
		"2 book at 12.49",
		"",
		"1 music CD at 14.99",
		"1 chocolate bar at 0.85",
	}, "\n")

	orders, err := ParseOrders(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "book", orders[0].Product.Name)
	assert.Equal(t, "chocolate bar", orders[2].Product.Name)
}

func TestParseOrdersReportsLineNumber(t *testing.T) {
	input := "2 book at 12.49\nnot an order\n"

	_, err := ParseOrders(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadFormat)
	assert.Contains(t, err.Error(), "line 2")
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, models.CategoryBooks, Categorize("first aid book"))
	assert.Equal(t, models.CategoryFood, Categorize("box of chocolates"))
	assert.Equal(t, models.CategoryMedical, Categorize("packet of headache pills"))
	assert.Equal(t, models.CategoryOther, Categorize("bottle of perfume"))
}
