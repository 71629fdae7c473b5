package apiclient

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.complycube.com/v1"

var validate = validator.New()

// Config is fixed at construction and never mutated afterwards.
type Config struct {
	APIKey    string        `validate:"required"`
	BaseURL   string        `validate:"required,url"`
	Timeout   time.Duration `validate:"gt=0"`
	UserAgent string        `validate:"required"`
}

// WithDefaults fills the zero-valued fields. Timeout and user agent defaults
// differ per client so the caller supplies them.
func (c Config) WithDefaults(timeout time.Duration, userAgent string) Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = timeout
	}
	if c.UserAgent == "" {
		c.UserAgent = userAgent
	}
	return c
}

// Validate checks the config invariants.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid client config: %w", err)
	}
	return nil
}
