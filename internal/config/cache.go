package config

import "time"

// ReportCacheConfig controls the response cache over the read-only
// report endpoints. Reports aggregate whole tables on the backend,
// so a short cache keeps the console dashboard cheap to refresh.
// Caching is disabled when Enabled is false or no Redis client is
// available.
type ReportCacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

// LoadReportCacheConfig reads the cache settings, with defaults
// suitable for a small shop.
func LoadReportCacheConfig() ReportCacheConfig {
	return ReportCacheConfig{
		Enabled: getenv("REPORT_CACHE_ENABLED", "true") == "true",
		TTL:     parseDur(getenv("REPORT_CACHE_TTL", "30s")),
		Prefix:  getenv("REPORT_CACHE_PREFIX", "reports"),
	}
}
