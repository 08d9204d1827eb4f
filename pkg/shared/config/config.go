// Package config loads and validates the application's YAML configuration.
// Every section is optional; zero values fall back to the defaults in
// common.go.
package config

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"
)

// Config is the root of config.yml.
type Config struct {
	Logger     Logger     `yaml:"logger"`
	HTTPClient HTTPClient `yaml:"http_client"`
	Catalog    Catalog    `yaml:"catalog"`
	Conditions Conditions `yaml:"conditions"`
}

// Logger configures log output.
type Logger struct {
	Level string `yaml:"level"`
}

// HTTPClient configures the shared resty transport.
type HTTPClient struct {
	Debug            *bool           `yaml:"debug"`
	RetryCount       int             `yaml:"retry_count"`
	RetryWaitTime    Duration        `yaml:"retry_wait_time"`
	RetryMaxWaitTime Duration        `yaml:"retry_max_wait_time"`
	Timeout          Duration        `yaml:"timeout"`
	TLSClientConfig  TLSClientConfig `yaml:"tls_client_config"`
	Proxy            Proxy           `yaml:"proxy"`
}

// TLSClientConfig controls certificate verification.
type TLSClientConfig struct {
	Verify *bool `yaml:"verify"`
}

// Proxy configures an outbound HTTP proxy.
type Proxy struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Catalog configures the product catalog client.
type Catalog struct {
	BaseURL        string   `yaml:"base_url"`
	UserAgent      string   `yaml:"user_agent"`
	CacheTTL       Duration `yaml:"cache_ttl"`
	SearchPageSize int      `yaml:"search_page_size"`
}

// Conditions points at an optional versioned rule file that extends the
// builtin condition table.
type Conditions struct {
	File string `yaml:"file"`
}

// Duration is a time.Duration that unmarshals from YAML strings like "10s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the standard library form.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// ValidateConfigPath checks that path points at a readable regular file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes the YAML file at configPath into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}
	return nil
}

// NewConfig reads a Config from the given file.
func NewConfig(configPath string) (*Config, error) {
	config := &Config{}
	if err := LoadYAML(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfig reads configPath, or falls back to an all-defaults Config when
// no explicit path was given and the default file does not exist.
func LoadConfig(configPath string) (*Config, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = "config.yml"
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) && !explicit {
		return &Config{}, nil
	}
	return NewConfig(configPath)
}
