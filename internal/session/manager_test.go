package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhvo/retail-suite/internal/model"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.Set(ctx, "sid1", "customer", `{"a":1}`))
	require.NoError(t, s.Set(ctx, "sid1", "cart", `[]`))

	vals, err := s.Get(ctx, "sid1")
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, vals["customer"])
	assert.Equal(t, `[]`, vals["cart"])

	require.NoError(t, s.Delete(ctx, "sid1"))
	vals, err = s.Get(ctx, "sid1")
	require.NoError(t, err)
	assert.Empty(t, vals)
}

func TestLoginRestoreLogout(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())

	sess := &model.Session{ID: m.NewID()}
	id := model.Identity{Kind: model.KindCustomer, Record: model.Record{"customerID": "7", "customerName": "An"}}
	require.NoError(t, m.Login(ctx, sess, id))
	assert.True(t, sess.IsAuthenticated())
	assert.NotNil(t, sess.Cart, "customer login initializes an empty cart")

	restored, err := m.Restore(ctx, sess.ID)
	require.NoError(t, err)
	require.True(t, restored.IsAuthenticated())
	assert.Equal(t, model.KindCustomer, restored.Identity.Kind)
	assert.Equal(t, "7", restored.Identity.Key())

	require.NoError(t, m.Logout(ctx, sess))
	assert.False(t, sess.IsAuthenticated())

	restored, err = m.Restore(ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, restored.IsAuthenticated())
}

func TestStaffLoginHasNoCart(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())

	sess := &model.Session{ID: m.NewID()}
	id := model.Identity{Kind: model.KindStaff, Record: model.Record{"staffID": "2", "position": "Admin"}}
	require.NoError(t, m.Login(ctx, sess, id))
	assert.Nil(t, sess.Cart)

	restored, err := m.Restore(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, model.KindStaff, restored.Identity.Kind)
	assert.Equal(t, "Admin", restored.Identity.Position())
}

func TestRestoreCorruptedIdentity(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "sid1", "customer", `{broken json`))

	m := NewManager(store)
	sess, err := m.Restore(ctx, "sid1")
	require.NoError(t, err, "a corrupted blob must not fail restore")
	assert.False(t, sess.IsAuthenticated())
}

func TestSaveCartPersists(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore())

	sess := &model.Session{ID: m.NewID()}
	id := model.Identity{Kind: model.KindCustomer, Record: model.Record{"customerID": "7"}}
	require.NoError(t, m.Login(ctx, sess, id))

	sess.Cart = []model.CartLine{{Product: model.Record{"productID": "1", "priceEach": float64(100000)}, Quantity: 2}}
	require.NoError(t, m.SaveCart(ctx, sess))

	restored, err := m.Restore(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, restored.Cart, 1)
	assert.Equal(t, "1", restored.Cart[0].ProductKey())
	assert.Equal(t, 2, restored.Cart[0].Quantity)
}
