package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from the YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into a temporary struct with YAML tags
	var yamlConfig struct {
		Feed struct {
			URL string `yaml:"url"`
		} `yaml:"feed"`
		Dashboard struct {
			ListenAddr  string `yaml:"listen_addr,omitempty"`
			Port        int    `yaml:"port,omitempty"`
			TLSCertPath string `yaml:"tls_cert_path,omitempty"`
			TLSKeyPath  string `yaml:"tls_key_path,omitempty"`
			PageTitle   string `yaml:"page_title,omitempty"`
		} `yaml:"dashboard,omitempty"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	config := &ConfigData{
		Feed: FeedData{
			URL: yamlConfig.Feed.URL,
		},
		Dashboard: DashboardData{
			ListenAddr:  yamlConfig.Dashboard.ListenAddr,
			Port:        yamlConfig.Dashboard.Port,
			TLSCertPath: yamlConfig.Dashboard.TLSCertPath,
			TLSKeyPath:  yamlConfig.Dashboard.TLSKeyPath,
			PageTitle:   yamlConfig.Dashboard.PageTitle,
		},
	}

	y.config = config
	return config, nil
}

// GetFeed returns the feed configuration section
func (y *YAMLProvider) GetFeed() (*FeedData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return &y.config.Feed, nil
}

// GetDashboard returns the dashboard configuration section
func (y *YAMLProvider) GetDashboard() (*DashboardData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return &y.config.Dashboard, nil
}

// IsReadOnly returns true; YAML configurations are never written by parkwatch
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML providers
func (y *YAMLProvider) Close() error {
	return nil
}
