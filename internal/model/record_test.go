package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeListKeepsColumnOrder(t *testing.T) {
	data := []byte(`[
		{"productID": 3, "productName": "RAM DDR5", "priceEach": 1250000, "MSRP": 1400000},
		{"productName": "SSD", "productID": 4}
	]`)
	records, columns, err := DecodeList(data)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// columns follow the first record's key order, not Go map order
	assert.Equal(t, []string{"productID", "productName", "priceEach", "MSRP"}, columns)
	assert.Equal(t, "RAM DDR5", records[0].String("productName"))
}

func TestDecodeListEmpty(t *testing.T) {
	records, columns, err := DecodeList([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Nil(t, columns)
}

func TestDecodeListMalformed(t *testing.T) {
	_, _, err := DecodeList([]byte(`{"not": "a list"}`))
	assert.Error(t, err)
}

func TestPrimaryKeyField(t *testing.T) {
	// first column ending in "id" wins
	assert.Equal(t, "orderID", PrimaryKeyField([]string{"orderDate", "orderID", "customerID"}))
	// no id-suffixed column: fall back to the first column
	assert.Equal(t, "name", PrimaryKeyField([]string{"name", "phone"}))
	assert.Equal(t, "", PrimaryKeyField(nil))
}

func TestRecordString(t *testing.T) {
	r := Record{"a": "x", "b": float64(15), "c": nil, "d": 2.5}
	assert.Equal(t, "x", r.String("a"))
	assert.Equal(t, "15", r.String("b"))
	assert.Equal(t, "", r.String("c"))
	assert.Equal(t, "2.5", r.String("d"))
	assert.Equal(t, "", r.String("missing"))
}

func TestRecordClone(t *testing.T) {
	r := Record{"a": 1}
	c := r.Clone()
	c["a"] = 2
	assert.Equal(t, 1, r["a"])
}

func TestIdentityKeyAndPosition(t *testing.T) {
	cust := &Identity{Kind: KindCustomer, Record: Record{"customerID": float64(7)}}
	assert.Equal(t, "7", cust.Key())
	assert.Equal(t, "", cust.Position())

	staff := &Identity{Kind: KindStaff, Record: Record{"staffID": "2", "position": "Sales"}}
	assert.Equal(t, "2", staff.Key())
	assert.Equal(t, "Sales", staff.Position())

	var none *Identity
	assert.Equal(t, "", none.Key())
	assert.Equal(t, "", none.Position())
}

func TestCartLineSubtotal(t *testing.T) {
	l := CartLine{Product: Record{"productID": "1", "priceEach": float64(100000)}, Quantity: 3}
	assert.Equal(t, "1", l.ProductKey())
	assert.Equal(t, float64(300000), l.Subtotal())
}
