package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadRedisDefaults(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_PORT", "")
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("REDIS_TLS", "")

	rc := LoadRedis()
	assert.Equal(t, "localhost:6379", rc.Addr)
	assert.Equal(t, 0, rc.DB)
	assert.False(t, rc.TLS)
}

func TestLoadRedisHostPortWinsOverAddr(t *testing.T) {
	t.Setenv("REDIS_ADDR", "elsewhere:6380")
	t.Setenv("REDIS_HOST", "cache.internal")
	t.Setenv("REDIS_PORT", "6390")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REDIS_TLS", "1")

	rc := LoadRedis()
	assert.Equal(t, "cache.internal:6390", rc.Addr)
	assert.Equal(t, 3, rc.DB)
	assert.True(t, rc.TLS)
}

func TestLoadRedisBadDBFallsBack(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_HOST", "")
	t.Setenv("REDIS_DB", "not-a-number")

	rc := LoadRedis()
	assert.Equal(t, 0, rc.DB)
}
