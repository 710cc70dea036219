package request

import (
	"fmt"
	"time"

	"github.com/kbukum/reqkit/config"
	"github.com/kbukum/reqkit/logger"
	"github.com/kbukum/reqkit/validation"
)

const (
	defaultThrottleWait = time.Second
	defaultTokenTTL     = 5 * time.Minute
)

// Config configures a Kit.
type Config struct {
	// ThrottleWait is the window of the throttled GET requester. Defaults to 1s.
	ThrottleWait time.Duration `yaml:"throttle_wait" mapstructure:"throttle_wait" validate:"gte=0"`
	// DisableThrottle makes the throttled GET requester a plain pass-through.
	DisableThrottle bool `yaml:"disable_throttle" mapstructure:"disable_throttle"`
	// Auth selects how private requesters fill the Authorization header.
	Auth AuthConfig `yaml:"auth" mapstructure:"auth"`
}

// AuthConfig selects and configures the Authorization token source.
type AuthConfig struct {
	Scheme string        `yaml:"scheme" mapstructure:"scheme" validate:"oneof=random uuid jwt"`
	Secret string        `yaml:"secret" mapstructure:"secret" validate:"required_if=Scheme jwt"`
	Issuer string        `yaml:"issuer" mapstructure:"issuer"`
	TTL    time.Duration `yaml:"ttl" mapstructure:"ttl" validate:"gte=0"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.ThrottleWait == 0 {
		c.ThrottleWait = defaultThrottleWait
	}
	if c.Auth.Scheme == "" {
		c.Auth.Scheme = SchemeRandom
	}
	if c.Auth.Scheme == SchemeJWT && c.Auth.TTL == 0 {
		c.Auth.TTL = defaultTokenTTL
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return validation.Validate(c)
}

// FileConfig is the on-disk layout read by LoadFileConfig.
//
//	base:
//	  name: billing-api
//	logger:
//	  level: debug
//	requester:
//	  throttle_wait: 500ms
//	  auth:
//	    scheme: jwt
//
// Secrets are best supplied through REQKIT_REQUESTER_AUTH_SECRET.
type FileConfig struct {
	Base      config.BaseConfig `yaml:"base" mapstructure:"base"`
	Logger    logger.Config     `yaml:"logger" mapstructure:"logger"`
	Requester Config            `yaml:"requester" mapstructure:"requester"`
}

// ApplyDefaults fills in zero-value fields of every section.
func (c *FileConfig) ApplyDefaults() {
	c.Base.ApplyDefaults()
	c.Logger.ApplyDefaults()
	c.Requester.ApplyDefaults()
}

// Validate validates every section.
func (c *FileConfig) Validate() error {
	if err := c.Base.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Requester.Validate(); err != nil {
		return fmt.Errorf("requester: %w", err)
	}
	return nil
}

// LoadFileConfig loads, defaults and validates configuration for serviceName.
// An empty base.name falls back to serviceName.
func LoadFileConfig(serviceName string, opts ...config.LoaderOption) (*FileConfig, error) {
	var cfg FileConfig
	if err := config.LoadConfig(serviceName, &cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.Base.Name == "" {
		cfg.Base.Name = serviceName
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
