// Package config defines the parkwatch configuration model and its data sources.
package config

import (
	"errors"
	"fmt"
	"net/url"
)

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetFeed() (*FeedData, error)
	GetDashboard() (*DashboardData, error)

	// Configuration management
	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Feed      FeedData      `json:"feed"`
	Dashboard DashboardData `json:"dashboard,omitempty"`
}

// FeedData holds configuration for the prediction feed being polled
type FeedData struct {
	// URL is the full endpoint of the prediction feed, e.g.
	// https://parkspot.example.com/api/v1/predictions/
	URL string `json:"url"`
}

// DashboardData holds configuration for the dashboard HTTP server
type DashboardData struct {
	ListenAddr  string `json:"listen_addr,omitempty"`
	Port        int    `json:"port,omitempty"`
	TLSCertPath string `json:"tls_cert_path,omitempty"`
	TLSKeyPath  string `json:"tls_key_path,omitempty"`
	PageTitle   string `json:"page_title,omitempty"`
}

// Validate checks the configuration for problems that would prevent startup.
func (c *ConfigData) Validate() error {
	if c.Feed.URL == "" {
		return errors.New("feed.url must be configured")
	}
	u, err := url.Parse(c.Feed.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("feed.url is not a valid URL: %s", c.Feed.URL)
	}
	if c.Dashboard.Port < 0 || c.Dashboard.Port > 65535 {
		return fmt.Errorf("dashboard.port out of range: %d", c.Dashboard.Port)
	}
	return nil
}
