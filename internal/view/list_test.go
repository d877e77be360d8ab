package view

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvo/retail-suite/internal/api"
	"github.com/minhvo/retail-suite/internal/permission"
	"github.com/minhvo/retail-suite/internal/registry"
)

const productsJSON = `[
	{"productID": "P1", "productName": "RAM DDR5", "priceEach": 1250000},
	{"productID": "P2", "productName": "SSD NVMe", "priceEach": 2500000}
]`

func newBackend(t *testing.T, h http.HandlerFunc) *api.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return api.New(srv.URL, 0)
}

func TestListLoadAndTable(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		w.Write([]byte(productsJSON))
	})
	desc, _ := registry.Describe("products")
	v := NewListView(client, desc, permission.PositionAdmin)

	require.NoError(t, v.Load(context.Background(), api.Filters{}, ""))

	tbl := v.Table()
	assert.False(t, tbl.Empty)
	assert.Equal(t, "products", tbl.Resource)
	require.Len(t, tbl.Columns, 3)
	// column order follows the first record's JSON key order
	assert.Equal(t, "productID", tbl.Columns[0].Name)
	assert.Equal(t, "productName", tbl.Columns[1].Name)
	assert.Equal(t, "priceEach", tbl.Columns[2].Name)

	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, "P1", tbl.Rows[0].Key)
	// currency columns render grouped with the suffix
	assert.Equal(t, "1.250.000₫", tbl.Rows[0].Cells[2])
	assert.Equal(t,
		[]permission.Action{permission.ActionView, permission.ActionCreate, permission.ActionEdit, permission.ActionDelete},
		tbl.Actions)
}

func TestListLoadEmptyState(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	desc, _ := registry.Describe("products")
	v := NewUngatedListView(client, desc)

	require.NoError(t, v.Load(context.Background(), api.Filters{}, ""))
	tbl := v.Table()
	assert.True(t, tbl.Empty)
	assert.Empty(t, tbl.Columns, "columns are never inferred from an empty set")
	assert.Empty(t, tbl.Rows)
}

func TestListLoadPermissionDenied(t *testing.T) {
	called := false
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	desc, _ := registry.Describe("vendors")
	v := NewListView(client, desc, permission.PositionCashier)

	err := v.Load(context.Background(), api.Filters{}, "")
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.False(t, called, "a denied load must not touch the network")
}

func TestListLoadBusyGuard(t *testing.T) {
	arrived := make(chan struct{})
	release := make(chan struct{})
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		close(arrived)
		<-release
		w.Write([]byte(productsJSON))
	})
	desc, _ := registry.Describe("products")
	v := NewUngatedListView(client, desc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, v.Load(context.Background(), api.Filters{}, ""))
	}()

	<-arrived
	// the first load is still outstanding; a second one is refused
	err := v.Load(context.Background(), api.Filters{}, "")
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	wg.Wait()
	assert.Len(t, v.Records(), 2)
}

func TestListSelection(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(productsJSON))
	})
	desc, _ := registry.Describe("products")
	v := NewListView(client, desc, permission.PositionAdmin)
	require.NoError(t, v.Load(context.Background(), api.Filters{}, ""))

	v.Select("P1", true)
	v.Select("P2", true)
	assert.Equal(t, []string{"P1", "P2"}, v.Selected())
	assert.True(t, v.Table().AllSelected)

	v.Select("P2", false)
	assert.Equal(t, []string{"P1"}, v.Selected())
	assert.False(t, v.Table().AllSelected)

	v.SelectAll(true)
	assert.Equal(t, []string{"P1", "P2"}, v.Selected())
	v.SelectAll(false)
	assert.Empty(t, v.Selected())
}

func TestListSelectionClearedOnReload(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search") == "ram" {
			w.Write([]byte(`[{"productID": "P1", "productName": "RAM DDR5", "priceEach": 1250000}]`))
			return
		}
		w.Write([]byte(productsJSON))
	})
	desc, _ := registry.Describe("products")
	v := NewListView(client, desc, permission.PositionAdmin)

	require.NoError(t, v.Load(context.Background(), api.Filters{}, ""))
	v.SelectAll(true)
	require.Equal(t, []string{"P1", "P2"}, v.Selected())

	// narrowing the filter replaces the record set; keys selected
	// under the old set must not linger where they could feed a
	// bulk delete of rows the operator never saw
	require.NoError(t, v.Load(context.Background(), api.Filters{Search: "ram"}, ""))
	assert.Empty(t, v.Selected())
	assert.False(t, v.Table().AllSelected)

	v.SelectAll(true)
	assert.Equal(t, []string{"P1"}, v.Selected())
}

func TestListNewerFetchWins(t *testing.T) {
	arrived := make(chan struct{})
	release := make(chan struct{})
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("search") == "ram" {
			w.Write([]byte(`[{"productID": "P1", "productName": "RAM DDR5", "priceEach": 1250000}]`))
			return
		}
		close(arrived)
		<-release
		w.Write([]byte(productsJSON))
	})
	desc, _ := registry.Describe("products")
	v := NewUngatedListView(client, desc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, v.Load(context.Background(), api.Filters{}, ""))
	}()

	<-arrived
	// a load with different filters supersedes the outstanding one
	require.NoError(t, v.Load(context.Background(), api.Filters{Search: "ram"}, ""))
	require.Len(t, v.Records(), 1)

	// the slow response lands afterwards and is discarded
	close(release)
	wg.Wait()
	assert.Len(t, v.Records(), 1)
	assert.Equal(t, "P1", v.Records()[0].String("productID"))
}

func TestDeleteSelectedBestEffort(t *testing.T) {
	var mu sync.Mutex
	var deleted []string
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			mu.Lock()
			deleted = append(deleted, r.URL.Path)
			mu.Unlock()
			if r.URL.Path == "/products/P1" {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"boom"}`))
				return
			}
			w.Write([]byte(`{}`))
			return
		}
		w.Write([]byte(productsJSON))
	})
	desc, _ := registry.Describe("products")
	v := NewListView(client, desc, permission.PositionAdmin)
	require.NoError(t, v.Load(context.Background(), api.Filters{}, ""))

	v.SelectAll(true)
	require.NoError(t, v.DeleteSelected(context.Background(), ""))

	// one key failed, the other was still attempted
	assert.Equal(t, []string{"/products/P1", "/products/P2"}, deleted)
	assert.Empty(t, v.Selected(), "selection clears regardless of per-key outcomes")
}

func TestDeletePermissionDenied(t *testing.T) {
	client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(productsJSON))
	})
	desc, _ := registry.Describe("products")
	v := NewListView(client, desc, permission.PositionSales)

	err := v.Delete(context.Background(), "P1", "")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}
