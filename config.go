package tableside

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Production endpoints.
const (
	ProductionAPIURL  = "https://api.tableside.dev/v2"
	ProductionAuthURL = "https://auth.tableside.dev/v2"
)

// Config holds client construction settings. Timeouts and the retry count
// are fixed policy set once here; they apply uniformly to every call.
type Config struct {
	APIURL         string
	AuthURL        string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	// Retries is the number of additional attempts after a transport-level
	// failure. Zero means a single attempt.
	Retries int
}

// rawConfig is the YAML shape; durations are written as strings ("10s")
// and parsed explicitly, since yaml.v3 has no native time.Duration support.
type rawConfig struct {
	APIURL         string `yaml:"api_url"`
	AuthURL        string `yaml:"auth_url"`
	ConnectTimeout string `yaml:"connect_timeout"`
	ReadTimeout    string `yaml:"read_timeout"`
	Retries        int    `yaml:"retries"`
}

// LoadConfig reads a YAML configuration file and applies defaults for any
// unset values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	raw := rawConfig{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config := &Config{
		APIURL:  raw.APIURL,
		AuthURL: raw.AuthURL,
		Retries: raw.Retries,
	}
	if config.ConnectTimeout, err = parseTimeout(raw.ConnectTimeout); err != nil {
		return nil, fmt.Errorf("invalid connect_timeout: %w", err)
	}
	if config.ReadTimeout, err = parseTimeout(raw.ReadTimeout); err != nil {
		return nil, fmt.Errorf("invalid read_timeout: %w", err)
	}
	config.applyDefaults()
	return config, nil
}

func parseTimeout(value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	return time.ParseDuration(value)
}

func (c *Config) applyDefaults() {
	if c.APIURL == "" {
		c.APIURL = ProductionAPIURL
	}
	if c.AuthURL == "" {
		c.AuthURL = ProductionAuthURL
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = 10 * time.Second
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 30 * time.Second
	}
}
