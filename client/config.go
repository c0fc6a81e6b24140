package client

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultAddress is used when no addresses are configured.
	DefaultAddress = "http://localhost:9200"

	defaultTimeout = 30 * time.Second
)

// Config configures the search client.
type Config struct {
	// Addresses is the ordered set of base endpoints of the cluster.
	// Requests rotate over them round robin. Defaults to DefaultAddress.
	Addresses []string `yaml:"addresses" mapstructure:"addresses" validate:"required,min=1,dive,http_url"`

	// Timeout is the per-request timeout enforced by the underlying HTTP
	// client, not by the dispatch pipeline. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to all requests. Per-call
	// parameter overrides take precedence key by key.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// Auth configures default authentication applied to all requests.
	Auth *AuthConfig `yaml:"auth" mapstructure:"auth"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if len(c.Addresses) == 0 {
		c.Addresses = []string{DefaultAddress}
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := getValidator().Struct(c); err != nil {
		return fmt.Errorf("client: invalid config: %w", err)
	}
	if c.Auth != nil {
		if err := c.Auth.Validate(); err != nil {
			return err
		}
	}
	return nil
}
