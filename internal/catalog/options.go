package catalog

import (
	"github.com/hashicorp/go-hclog"

	"github.com/nutriscan-app/nutriscan/pkg/shared/config"
	"github.com/nutriscan-app/nutriscan/pkg/shared/httpclient"
)

// OptionsFromConfig maps the catalog and http_client config sections onto
// client Options. Zero values stay zero so New applies the package defaults.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{}
	}
	return Options{
		BaseURL:          cfg.Catalog.BaseURL,
		UserAgent:        cfg.Catalog.UserAgent,
		CacheTTL:         cfg.Catalog.CacheTTL.Std(),
		RetryCount:       cfg.HTTPClient.RetryCount,
		RetryWaitTime:    cfg.HTTPClient.RetryWaitTime.Std(),
		RetryMaxWaitTime: cfg.HTTPClient.RetryMaxWaitTime.Std(),
		PageSize:         cfg.Catalog.SearchPageSize,
	}
}

// NewFromConfig builds a ready-to-use client: a resty transport configured
// from the http_client section wrapped with the catalog options.
func NewFromConfig(cfg *config.Config, logger hclog.Logger) *Client {
	httpc := httpclient.InitializeRestyClient(logger, cfg)
	return New(httpc, OptionsFromConfig(cfg), logger)
}
