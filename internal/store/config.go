// Package store loads the YAML runtime configuration.
package store

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// BrokerConfig holds the per-broker connection settings. Credentials never
// live in the file itself; AuthEnv names the environment variable holding
// the access token.
type BrokerConfig struct {
	BaseURL        string `yaml:"base_url"`
	AuthEnv        string `yaml:"auth_env"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the configured request timeout.
func (b BrokerConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutSeconds) * time.Second
}

type Config struct {
	DefaultBroker string                  `yaml:"default_broker"`
	Mock          bool                    `yaml:"mock"`
	Brokers       map[string]BrokerConfig `yaml:"brokers"`
	Log           struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// defaultBaseURLs are applied when a configured broker omits base_url, and
// seed the broker map when the file names no brokers at all.
var defaultBaseURLs = map[string]string{
	"upstox": "https://api.upstox.com/v2/",
	"xts":    "https://developers.symphonyfintech.in/",
	"groww":  "https://groww.in/",
	"kite":   "https://api.kite.trade/",
}

func (c *Config) Validate() error {
	if c.DefaultBroker == "" {
		return fmt.Errorf("default_broker cannot be empty")
	}
	if _, ok := c.Brokers[c.DefaultBroker]; !ok {
		return fmt.Errorf("default_broker '%s' has no entry under brokers", c.DefaultBroker)
	}
	for name, b := range c.Brokers {
		if b.BaseURL == "" {
			return fmt.Errorf("broker '%s' has no base_url", name)
		}
		if b.TimeoutSeconds < 0 {
			return fmt.Errorf("broker '%s' timeout_seconds must be >= 0, got %d", name, b.TimeoutSeconds)
		}
	}
	return nil
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	if c.Brokers == nil {
		c.Brokers = make(map[string]BrokerConfig, len(defaultBaseURLs))
		for name, url := range defaultBaseURLs {
			c.Brokers[name] = BrokerConfig{BaseURL: url}
		}
	}
	for name, b := range c.Brokers {
		if b.BaseURL == "" {
			if url, ok := defaultBaseURLs[name]; ok {
				b.BaseURL = url
			}
		}
		if b.TimeoutSeconds == 0 {
			b.TimeoutSeconds = 10
		}
		c.Brokers[name] = b
	}
	if c.DefaultBroker == "" {
		c.DefaultBroker = "upstox"
	}
	if c.Log.Level == "" {
		c.Log.Level = "INFO"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
