package config

import (
	"crypto/tls"
	"time"
)

// BaseHTTPConfig holds common HTTP client configuration settings.
type BaseHTTPConfig struct {
	RetryCount       int
	RetryWaitTime    time.Duration
	RetryMaxWaitTime time.Duration
	Timeout          time.Duration
	TLSClientConfig  *tls.Config
	Proxy            string
}

// RestyHTTPClientConfig holds additional configuration settings for the
// resty HTTP client.
type RestyHTTPClientConfig struct {
	BaseHTTPConfig
	Debug bool
}

// DefaultHTTPConfig returns the base configuration applicable to all HTTP
// clients. The retry values describe the catalog policy: 3 extra attempts
// with exponential backoff from 1s capped at 4s, each attempt bounded by a
// 10s timeout.
func DefaultHTTPConfig() BaseHTTPConfig {
	return BaseHTTPConfig{
		RetryCount:       3,
		RetryWaitTime:    1 * time.Second,
		RetryMaxWaitTime: 4 * time.Second,
		Timeout:          10 * time.Second,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12, // Enforce a minimum TLS version
		},
		Proxy: "",
	}
}

// DefaultRestyConfig returns the resty-specific HTTP defaults.
func DefaultRestyConfig() RestyHTTPClientConfig {
	return RestyHTTPClientConfig{
		BaseHTTPConfig: DefaultHTTPConfig(),
		Debug:          false,
	}
}

// CatalogDefaults holds fallback values for the catalog section.
type CatalogDefaults struct {
	BaseURL        string
	UserAgent      string
	CacheTTL       time.Duration
	SearchPageSize int
}

// DefaultCatalogConfig returns the catalog defaults: the public Open Food
// Facts API with a 5 minute product cache.
func DefaultCatalogConfig() CatalogDefaults {
	return CatalogDefaults{
		BaseURL:        "https://world.openfoodfacts.org/api/v2",
		UserAgent:      "nutriscan",
		CacheTTL:       300 * time.Second,
		SearchPageSize: 20,
	}
}
