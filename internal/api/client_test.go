package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvo/retail-suite/internal/model"
	"github.com/minhvo/retail-suite/internal/registry"
)

func newServer(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, 0)
}

func TestListPassesFilters(t *testing.T) {
	var gotQuery string
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"productID":"P1","productName":"RAM"}]`))
	})
	desc, _ := registry.Describe("products")

	records, columns, err := client.List(context.Background(), desc, Filters{Search: "ram", Category: "RAM"}, "")
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, []string{"productID", "productName"}, columns)
	assert.Contains(t, gotQuery, "search=ram")
	assert.Contains(t, gotQuery, "category=RAM")
}

func TestUnauthorizedMapsToAuthExpired(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"not authenticated"}`))
	})
	desc, _ := registry.Describe("products")

	_, _, err := client.List(context.Background(), desc, Filters{}, "tok")
	assert.ErrorIs(t, err, ErrAuthExpired)
}

func TestValidationErrorDecoding(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[
			{"loc":["body","phone"],"msg":"invalid phone"},
			{"loc":["body","email"],"msg":"invalid email"},
			{"loc":["body","payload","postalCode"],"msg":"too long"}
		]}`))
	})
	desc, _ := registry.Describe("customers")

	err := client.Create(context.Background(), desc, model.Record{"phone": "x"}, "")
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Fields, 3)
	assert.Equal(t, "phone", ve.Fields[0].Field)
	assert.Equal(t, "invalid email", ve.Fields[1].Reason)
	// the field name is the last loc element; nested payloads put
	// extra segments before it
	assert.Equal(t, "postalCode", ve.Fields[2].Field)
}

func TestStatusErrorCarriesDetailString(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail":"duplicate key"}`))
	})
	desc, _ := registry.Describe("customers")

	err := client.Delete(context.Background(), desc, "C1", "")
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusConflict, se.Code)
	assert.Contains(t, se.Error(), "duplicate key")
}

func TestTransportErrorIsWrapped(t *testing.T) {
	client := New("http://127.0.0.1:1", 0)
	desc, _ := registry.Describe("products")
	_, _, err := client.List(context.Background(), desc, Filters{}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "không thể kết nối máy chủ")
}

func TestLoginCustomer(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login/customer", r.URL.Path)
		var creds Credentials
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &creds))
		assert.Equal(t, "an@example.com", creds.Identifier)
		w.Write([]byte(`{"message":"ok","customer":{"customerID":7,"customerName":"An"}}`))
	})

	rec, err := client.LoginCustomer(context.Background(), Credentials{Identifier: "an@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "An", rec.String("customerName"))
}

func TestCheckout(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/order/checkout", r.URL.Path)
		var req CheckoutRequest
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &req))
		assert.Equal(t, "Confirmed", req.OrderStatus)
		assert.Nil(t, req.ShippedDate)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"created","orderID":42}`))
	})

	res, err := client.Checkout(context.Background(), CheckoutRequest{
		CustomerID:    7,
		StaffID:       1,
		PaymentMethod: "Cash",
		OrderStatus:   "Confirmed",
		Products:      []CheckoutItem{{ProductID: "P1", Quantity: 2, PriceEach: 100000}},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(42), res.OrderID)
}

func TestSummaryIsSingleObject(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports/summary", r.URL.Path)
		w.Write([]byte(`{"totalRevenue": 12345678, "orderCount": 42}`))
	})

	rec, err := client.Summary(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "42", rec.String("orderCount"))
}

func TestCustomerOrders(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/7", r.URL.Path)
		w.Write([]byte(`[{"orderID":"D1","orderStatus":"Confirmed"}]`))
	})

	records, _, err := client.CustomerOrders(context.Background(), "7", "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "D1", records[0].String("orderID"))
}
