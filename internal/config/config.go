package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
// The API key is deliberately absent: it is supplied per run and never
// written to disk.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	API      APIConfig      `yaml:"api"`
}

// DefaultsConfig holds default values
type DefaultsConfig struct {
	Languages      string `yaml:"languages"`       // ranked, comma-separated
	ReportLanguage string `yaml:"report_language"` // language the report is written in
	Concurrency    int    `yaml:"concurrency"`
}

// APIConfig holds generation API settings
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Languages:      "ko,en",
			ReportLanguage: "Korean (한국어)",
			Concurrency:    4,
		},
		API: APIConfig{
			BaseURL: "https://generativelanguage.googleapis.com/v1beta/openai",
			Model:   "gemini-2.5-flash",
		},
	}
}

// AppDir returns the application directory (~/.ytcoach)
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ytcoach"
	}
	return filepath.Join(home, ".ytcoach")
}

// ConfigPath returns the config file path
func ConfigPath() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// Load reads config from file, returns default if not exists
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadDefault loads config from default path
func LoadDefault() (*Config, error) {
	return Load(ConfigPath())
}

// Save writes config to file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveDefault saves config to default path
func (c *Config) SaveDefault() error {
	return c.Save(ConfigPath())
}

// LanguageList returns the ranked language codes as a slice
func (c *Config) LanguageList() []string {
	var langs []string
	for _, l := range strings.Split(c.Defaults.Languages, ",") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		langs = append(langs, l)
	}
	if len(langs) == 0 {
		langs = []string{"ko", "en"}
	}
	return langs
}
