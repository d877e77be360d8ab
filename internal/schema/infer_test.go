package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInferWidget(t *testing.T) {
	cases := []struct {
		field string
		want  Widget
	}{
		{"password", WidgetPassword},
		{"email", WidgetEmail},
		{"contactEmail", WidgetEmail},
		{"phoneNumber", WidgetTel},
		{"birthDate", WidgetDate},
		{"position", WidgetSelect},
		{"orderStatus", WidgetSelect},
		{"paymentMethod", WidgetSelect},
		{"customerType", WidgetSelect},
		{"loyalPoint", WidgetNumber},
		{"quantityInStock", WidgetNumber},
		{"warrantyPeriod", WidgetNumber},
		{"priceEach", WidgetNumber},
		{"totalAmount", WidgetNumber},
		{"salary", WidgetNumber},
		{"fullName", WidgetText},
		{"address", WidgetText},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, InferWidget(tc.field), "field %q", tc.field)
	}
}

// A field matching several rules takes the first match: "birthDate"
// contains both "date" and nothing else, but "paymentDate" would be
// a date, not a select, even though "payment" columns are otherwise
// selects by type suffix.
func TestInferWidgetPrecedence(t *testing.T) {
	assert.Equal(t, WidgetDate, InferWidget("paymentDate"))
	// "email" wins over the generic text fallthrough regardless of case
	assert.Equal(t, WidgetEmail, InferWidget("EMAIL"))
}

func TestIsCurrencyField(t *testing.T) {
	for _, f := range []string{"priceEach", "MSRP", "totalAmount", "salary", "totalRevenue", "unitCost", "totalInventoryValue"} {
		assert.True(t, IsCurrencyField(f), f)
	}
	for _, f := range []string{"quantityInStock", "fullName", "orderStatus", "loyalPoint"} {
		assert.False(t, IsCurrencyField(f), f)
	}
}

func TestIsHiddenField(t *testing.T) {
	for _, f := range []string{"lastedUpdate", "orderDate", "shippedDate", "paymentDate"} {
		assert.True(t, IsHiddenField(f), f)
	}
	assert.False(t, IsHiddenField("birthDate"))
}

func TestIsKeyField(t *testing.T) {
	assert.True(t, IsKeyField("customerID"))
	assert.True(t, IsKeyField("productId"))
	assert.False(t, IsKeyField("idle"))
	assert.False(t, IsKeyField("name"))
}

func TestCoerceNumbers(t *testing.T) {
	draft := map[string]any{
		"customerID":      "15",
		"priceEach":       "250000",
		"quantityInStock": "3",
		"loyalPoint":      "",
		"fullName":        "Nguyễn Văn A",
		"unitCost":        "abc", // unparsable stays as-is for the backend to reject
		"totalAmount":     123.5, // already numeric, untouched
	}
	out := CoerceNumbers(draft)

	assert.Equal(t, float64(15), out["customerID"])
	assert.Equal(t, float64(250000), out["priceEach"])
	assert.Equal(t, float64(3), out["quantityInStock"])
	assert.Nil(t, out["loyalPoint"])
	assert.Equal(t, "Nguyễn Văn A", out["fullName"])
	assert.Equal(t, "abc", out["unitCost"])
	assert.Equal(t, 123.5, out["totalAmount"])

	// input map is not mutated
	assert.Equal(t, "15", draft["customerID"])
}
