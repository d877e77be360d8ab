package config

import (
	"context"
	"crypto/tls"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds the connection settings for the session store
// and the report response cache. Redis is optional: both
// applications run without it, sessions fall back to the
// in-process store and report caching is disabled.
type RedisConfig struct {
	Addr     string // host:port of the server
	Password string // optional password
	DB       int    // database number
	TLS      bool   // dial with TLS
}

// LoadRedis reads the Redis settings from the environment. Either
// REDIS_ADDR or the REDIS_HOST/REDIS_PORT pair names the server;
// the host and port pair wins when both forms are set.
func LoadRedis() RedisConfig {
	addr := getenv("REDIS_ADDR", "localhost:6379")
	if host := getenv("REDIS_HOST", ""); host != "" {
		addr = host + ":" + getenv("REDIS_PORT", "6379")
	}
	tlsEnv := getenv("REDIS_TLS", "")
	return RedisConfig{
		Addr:     addr,
		Password: getenv("REDIS_PASSWORD", ""),
		DB:       parseInt(getenv("REDIS_DB", "0"), 0),
		TLS:      tlsEnv == "true" || tlsEnv == "1",
	}
}

// Connect dials the server and verifies it answers. Nil means
// Redis is unavailable; callers degrade rather than fail startup.
func (rc RedisConfig) Connect() *redis.Client {
	opts := &redis.Options{Addr: rc.Addr, Password: rc.Password, DB: rc.DB}
	if rc.TLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}
	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s: %v", rc.Addr, err)
		return nil
	}
	return client
}

// NewRedisClient loads the Redis settings and dials the server.
func NewRedisClient() *redis.Client {
	return LoadRedis().Connect()
}
