package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type RegistryConfig struct {
	BaseURL        string `toml:"base_url"`
	APIKey         string `toml:"api_key"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

func (r RegistryConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

type ServerConfig struct {
	Port string `toml:"port"`
}

type DiscoveryConfig struct {
	DefaultDepth int `toml:"default_depth"`
	MaxDepth     int `toml:"max_depth"`
}

type Config struct {
	Registry  RegistryConfig  `toml:"registry"`
	Server    ServerConfig    `toml:"server"`
	Discovery DiscoveryConfig `toml:"discovery"`
}

func Defaults() *Config {
	return &Config{
		Registry: RegistryConfig{
			BaseURL:        "https://api.company-information.service.gov.uk",
			TimeoutSeconds: 30,
		},
		Server: ServerConfig{Port: "8080"},
		Discovery: DiscoveryConfig{
			DefaultDepth: 1,
			MaxDepth:     3,
		},
	}
}

// Load reads a TOML file on top of Defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides file values with environment variables. lookup is
// os.LookupEnv outside of tests.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("COMPANIES_HOUSE_KEY"); ok && v != "" {
		c.Registry.APIKey = v
	}
	if v, ok := lookup("REGISTRY_BASE_URL"); ok && v != "" {
		c.Registry.BaseURL = v
	}
	if v, ok := lookup("REGISTRY_TIMEOUT_SECONDS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REGISTRY_TIMEOUT_SECONDS %q: %w", v, err)
		}
		c.Registry.TimeoutSeconds = n
	}
	if v, ok := lookup("PORT"); ok && v != "" {
		c.Server.Port = v
	}
	return c.Validate()
}

func (c *Config) Validate() error {
	if c.Discovery.DefaultDepth < 0 || c.Discovery.MaxDepth < 0 {
		return fmt.Errorf("discovery depths must be >= 0")
	}
	if c.Discovery.DefaultDepth > c.Discovery.MaxDepth {
		return fmt.Errorf("discovery.default_depth (%d) exceeds discovery.max_depth (%d)", c.Discovery.DefaultDepth, c.Discovery.MaxDepth)
	}
	if c.Registry.TimeoutSeconds < 0 {
		return fmt.Errorf("registry.timeout_seconds must be >= 0")
	}
	return nil
}
