// Package session owns the per-tab session: the authenticated
// identity and, for the storefront, the cart. It is the single
// owner of persistence side effects; views never write session
// state directly, which keeps persisted and in-memory state from
// diverging.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Persisted value keys. The identity lives under "customer" for
// storefront sessions and "user" for console sessions; the cart
// under "cart". Each value is JSON-serialized; absence or a parse
// failure is treated as "no session", never a startup error.
const (
	keyCustomer = "customer"
	keyUser     = "user"
	keyCart     = "cart"
)

// Store persists session values by session ID. Implementations
// must treat missing sessions as empty, not as errors.
type Store interface {
	// Get returns the persisted values of a session, keyed by the
	// constants above. A missing session yields an empty map.
	Get(ctx context.Context, sid string) (map[string]string, error)
	// Set writes one value and refreshes the session TTL.
	Set(ctx context.Context, sid, key, value string) error
	// Delete removes the whole session.
	Delete(ctx context.Context, sid string) error
}

// RedisStore keeps each session in a Redis hash under
// "session:<sid>" with a sliding TTL.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore wraps an existing Redis client. ttl bounds how
// long an idle session survives.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func sessionKey(sid string) string { return "session:" + sid }

func (s *RedisStore) Get(ctx context.Context, sid string) (map[string]string, error) {
	vals, err := s.rdb.HGetAll(ctx, sessionKey(sid)).Result()
	if err != nil {
		return nil, err
	}
	return vals, nil
}

func (s *RedisStore) Set(ctx context.Context, sid, key, value string) error {
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, sessionKey(sid), key, value)
	pipe.Expire(ctx, sessionKey(sid), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, sessionKey(sid)).Err()
}

// MemoryStore is the in-process fallback used when Redis is not
// reachable at startup. Sessions then live only as long as the
// process, which mirrors browser session storage closely enough
// for development.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, sid string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vals := make(map[string]string, len(s.sessions[sid]))
	for k, v := range s.sessions[sid] {
		vals[k] = v
	}
	return vals, nil
}

func (s *MemoryStore) Set(_ context.Context, sid, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[sid] == nil {
		s.sessions[sid] = make(map[string]string)
	}
	s.sessions[sid][key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
	return nil
}

var _ Store = (*RedisStore)(nil)
var _ Store = (*MemoryStore)(nil)
