package session

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/minhvo/retail-suite/internal/model"
)

// Manager is the session store's public face: restore, login,
// logout and cart persistence. No network calls originate here;
// the backend authenticates, the manager only caches the result.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// NewID mints a fresh session identifier.
func (m *Manager) NewID() string {
	return uuid.NewString()
}

// Restore loads the session persisted under sid. A missing
// session, a missing identity or a corrupted value all yield an
// unauthenticated session rather than an error; a broken persisted
// blob must never fail the app at startup.
func (m *Manager) Restore(ctx context.Context, sid string) (*model.Session, error) {
	sess := &model.Session{ID: sid}
	vals, err := m.store.Get(ctx, sid)
	if err != nil {
		return nil, err
	}
	raw, key := vals[keyCustomer], keyCustomer
	if raw == "" {
		raw, key = vals[keyUser], keyUser
	}
	if raw != "" {
		var id model.Identity
		if err := json.Unmarshal([]byte(raw), &id); err == nil && id.Record != nil {
			if key == keyCustomer {
				id.Kind = model.KindCustomer
			} else {
				id.Kind = model.KindStaff
			}
			sess.Identity = &id
		}
		// parse failure: treated as absent
	}
	if rawCart := vals[keyCart]; rawCart != "" {
		var cart []model.CartLine
		if err := json.Unmarshal([]byte(rawCart), &cart); err == nil {
			sess.Cart = cart
		}
	}
	return sess, nil
}

// Login sets and persists the identity and initializes the cart
// for customer sessions.
func (m *Manager) Login(ctx context.Context, sess *model.Session, id model.Identity) error {
	key := keyUser
	if id.Kind == model.KindCustomer {
		key = keyCustomer
	}
	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, sess.ID, key, string(raw)); err != nil {
		return err
	}
	sess.Identity = &id
	if id.Kind == model.KindCustomer && sess.Cart == nil {
		sess.Cart = []model.CartLine{}
		return m.SaveCart(ctx, sess)
	}
	return nil
}

// Logout clears the identity, the cart and every persisted key.
// Subsequent route access redirects to the login view.
func (m *Manager) Logout(ctx context.Context, sess *model.Session) error {
	sess.Identity = nil
	sess.Cart = nil
	return m.store.Delete(ctx, sess.ID)
}

// SaveCart persists the cart after every mutation. The cart is
// owned by the session; the cart package computes new line lists
// and handlers hand them here.
func (m *Manager) SaveCart(ctx context.Context, sess *model.Session) error {
	raw, err := json.Marshal(sess.Cart)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, sess.ID, keyCart, string(raw))
}
