package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "1.234.567", FormatCurrency(float64(1234567)))
	assert.Equal(t, "1.234.567", FormatCurrency("1234567"))
	assert.Equal(t, "250.000", FormatCurrency(250000))
	assert.Equal(t, "", FormatCurrency(nil))
	assert.Equal(t, "", FormatCurrency(""))
	// unparsable strings pass through for the reader to see
	assert.Equal(t, "n/a", FormatCurrency("n/a"))
}

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "1.234.567"+CurrencySuffix, FormatCell("totalAmount", float64(1234567)))
	assert.Equal(t, "", FormatCell("priceEach", nil))
	// non-currency floats render as plain whole numbers
	assert.Equal(t, "12", FormatCell("quantityInStock", float64(12)))
	assert.Equal(t, "12.5", FormatCell("rating", 12.5))
	assert.Equal(t, "Confirmed", FormatCell("orderStatus", "Confirmed"))
	assert.Equal(t, "", FormatCell("note", nil))
}

func TestLabel(t *testing.T) {
	// known fields carry their display labels
	assert.Equal(t, "Tên khách hàng", Label("customerName"))
	// unknown fields fall back to a split camel-case title
	assert.Equal(t, "Shipping Region", Label("shippingRegion"))
	assert.Equal(t, "Giá đề xuất", Label("MSRP"))
}
