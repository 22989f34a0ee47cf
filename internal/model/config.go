package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ProviderConfig holds the connection settings for the mailbox provider.
// The password or bearer token is not stored here; it lives in the system
// keyring under the account's credential key.
type ProviderConfig struct {
	// Type identifies the provider kind (currently only "imap").
	Type string `mapstructure:"type" yaml:"type"`

	// Host and Port locate the provider endpoint.
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`

	// Username is the account login, typically the email address.
	Username string `mapstructure:"username" yaml:"username"`

	// TLS selects implicit TLS; when false, STARTTLS is used.
	TLS bool `mapstructure:"tls" yaml:"tls"`
}

// TaxonomyConfig selects the canonical taxonomy the engine reconciles against.
type TaxonomyConfig struct {
	// BusinessType picks one of the built-in canonical sets
	// (e.g. "general", "home_services", "ecommerce").
	BusinessType string `mapstructure:"business_type" yaml:"business_type"`

	// File optionally overrides the built-in set with a YAML taxonomy file.
	File string `mapstructure:"file" yaml:"file"`
}

// AppConfig is the top-level configuration for the engine's caller.
type AppConfig struct {
	Provider ProviderConfig `mapstructure:"provider" yaml:"provider"`
	Taxonomy TaxonomyConfig `mapstructure:"taxonomy" yaml:"taxonomy"`

	// DBPath is the SQLite database used for mapping persistence.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/mailboxtaxonomy/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "mailboxtaxonomy", "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		Provider: ProviderConfig{
			Type: "imap",
			Port: "993",
			TLS:  true,
		},
		Taxonomy: TaxonomyConfig{
			BusinessType: "general",
		},
		DBPath: filepath.Join(
			filepath.Dir(DefaultConfigPath()), "mappings.db",
		),
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("provider.type", "imap")
	v.SetDefault("provider.port", "993")
	v.SetDefault("provider.tls", true)
	v.SetDefault("taxonomy.business_type", "general")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("provider", cfg.Provider)
	v.Set("taxonomy", cfg.Taxonomy)
	v.Set("db_path", cfg.DBPath)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
