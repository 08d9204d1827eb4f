package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ValidateConfig checks if the global configurations have valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML global config: configuration object is nil")
	}
	if err := validateLoggerConfig(&cfg.Logger); err != nil {
		return fmt.Errorf("YAML global config: logger directive is invalid: %w", err)
	}
	if err := validateHTTPConfig(&cfg.HTTPClient); err != nil {
		return fmt.Errorf("YAML global config: http_client directive is invalid: %w", err)
	}
	if err := validateCatalogConfig(&cfg.Catalog); err != nil {
		return fmt.Errorf("YAML global config: catalog directive is invalid: %w", err)
	}
	return nil
}

// validateLoggerConfig checks the log level, when set, is one hclog knows.
func validateLoggerConfig(cfg *Logger) error {
	if cfg.Level == "" {
		return nil
	}
	switch strings.ToUpper(cfg.Level) {
	case "TRACE", "DEBUG", "INFO", "WARN", "ERROR":
		return nil
	default:
		return fmt.Errorf("unknown log level %q", cfg.Level)
	}
}

// validateHTTPConfig checks durations and proxy settings.
func validateHTTPConfig(httpConfig *HTTPClient) error {
	if httpConfig == nil {
		return fmt.Errorf("http_client configuration is nil")
	}

	if httpConfig.RetryCount < 0 {
		return fmt.Errorf("retry_count cannot be negative")
	}

	durations := map[string]time.Duration{
		"retry_wait_time":     httpConfig.RetryWaitTime.Std(),
		"retry_max_wait_time": httpConfig.RetryMaxWaitTime.Std(),
		"timeout":             httpConfig.Timeout.Std(),
	}
	for name, duration := range durations {
		if err := validateDuration(duration, name, 100*time.Second); err != nil {
			return err
		}
	}

	return validateProxy(&httpConfig.Proxy)
}

// validateCatalogConfig checks the catalog endpoint and cache settings.
func validateCatalogConfig(cfg *Catalog) error {
	if cfg == nil {
		return fmt.Errorf("catalog configuration is nil")
	}
	if cfg.BaseURL != "" {
		parsed, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return fmt.Errorf("invalid base_url: %w", err)
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return fmt.Errorf("base_url must be an http(s) URL, got %q", cfg.BaseURL)
		}
	}
	if err := validateDuration(cfg.CacheTTL.Std(), "cache_ttl", 24*time.Hour); err != nil {
		return err
	}
	if cfg.SearchPageSize < 0 {
		return fmt.Errorf("search_page_size cannot be negative")
	}
	return nil
}

// validateDuration checks that a time.Duration is valid and within a specified maximum duration.
func validateDuration(d time.Duration, name string, max time.Duration) error {
	if d < 0 {
		return fmt.Errorf("invalid duration for %q: %v cannot be negative", name, d)
	}
	if d > max {
		return fmt.Errorf("%q duration is too long: %v exceeds maximum of %v", name, d, max)
	}
	return nil
}

// validateProxy checks if the given Proxy settings are valid.
func validateProxy(proxy *Proxy) error {
	if proxy == nil {
		return fmt.Errorf("proxy configuration is nil")
	}

	// If host or port is not set, skip further validation
	if proxy.Host == "" || proxy.Port == 0 {
		return nil
	}

	if err := validateHost(&proxy.Host); err != nil {
		return err
	}
	return validatePort(proxy.Port)
}

// validateHost checks if the host part of the proxy configuration is valid.
// It ensures the host includes a scheme; adds "http" if missing.
func validateHost(host *string) error {
	if host == nil {
		return fmt.Errorf("host string pointer is nil")
	}

	if !strings.Contains(*host, "://") {
		*host = "http://" + *host
	}
	*host = strings.TrimRight(*host, "/")

	if _, err := url.Parse(*host); err != nil {
		return fmt.Errorf("invalid host URL: %w", err)
	}
	return nil
}

// validatePort checks if the port part of the proxy configuration is valid.
func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", port)
	}
	return nil
}
