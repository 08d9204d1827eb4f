package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewConfigParsesDurationsAndSections(t *testing.T) {
	path := writeConfigFile(t, `
logger:
  level: debug
http_client:
  retry_count: 5
  retry_wait_time: 500ms
  retry_max_wait_time: 8s
  timeout: 15s
  tls_client_config:
    verify: false
  proxy:
    host: proxy.internal
    port: 3128
catalog:
  base_url: https://catalog.example.com/api/v2
  user_agent: nutriscan-test
  cache_ttl: 2m
  search_page_size: 50
conditions:
  file: rules/conditions.yml
`)

	cfg, err := NewConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 5, cfg.HTTPClient.RetryCount)
	assert.Equal(t, 500*time.Millisecond, cfg.HTTPClient.RetryWaitTime.Std())
	assert.Equal(t, 8*time.Second, cfg.HTTPClient.RetryMaxWaitTime.Std())
	assert.Equal(t, 15*time.Second, cfg.HTTPClient.Timeout.Std())
	require.NotNil(t, cfg.HTTPClient.TLSClientConfig.Verify)
	assert.False(t, *cfg.HTTPClient.TLSClientConfig.Verify)
	assert.Equal(t, "proxy.internal", cfg.HTTPClient.Proxy.Host)
	assert.Equal(t, 3128, cfg.HTTPClient.Proxy.Port)
	assert.Equal(t, "https://catalog.example.com/api/v2", cfg.Catalog.BaseURL)
	assert.Equal(t, 2*time.Minute, cfg.Catalog.CacheTTL.Std())
	assert.Equal(t, 50, cfg.Catalog.SearchPageSize)
	assert.Equal(t, "rules/conditions.yml", cfg.Conditions.File)

	assert.NoError(t, ValidateConfig(cfg))
}

func TestNewConfigRejectsBadDuration(t *testing.T) {
	path := writeConfigFile(t, "http_client:\n  timeout: soon\n")
	_, err := NewConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestLoadConfigMissingExplicitFileFails(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "empty config is valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "unknown log level",
			mutate:  func(cfg *Config) { cfg.Logger.Level = "verbose" },
			wantErr: "unknown log level",
		},
		{
			name:    "negative retry count",
			mutate:  func(cfg *Config) { cfg.HTTPClient.RetryCount = -1 },
			wantErr: "retry_count",
		},
		{
			name:    "excessive timeout",
			mutate:  func(cfg *Config) { cfg.HTTPClient.Timeout = Duration(5 * time.Minute) },
			wantErr: "too long",
		},
		{
			name:    "bad proxy port",
			mutate:  func(cfg *Config) { cfg.HTTPClient.Proxy = Proxy{Host: "proxy", Port: 99999} },
			wantErr: "port",
		},
		{
			name:    "non-http catalog url",
			mutate:  func(cfg *Config) { cfg.Catalog.BaseURL = "ftp://catalog" },
			wantErr: "base_url",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateProxyAddsScheme(t *testing.T) {
	proxy := Proxy{Host: "proxy.internal/", Port: 3128}
	require.NoError(t, validateProxy(&proxy))
	assert.Equal(t, "http://proxy.internal", proxy.Host)
}

func TestSetThen(t *testing.T) {
	assert.Equal(t, 3, SetThen(0, 3))
	assert.Equal(t, 7, SetThen(7, 3))
	assert.Equal(t, time.Second, SetThen(time.Duration(0), time.Second))
}
