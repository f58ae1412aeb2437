package main

import (
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/busroutes"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the YAML settings file read by --config. Every field is
// optional; settings given on the command line or in the environment take
// precedence.
type Config struct {
	BaseURL   string        `yaml:"base_url" validate:"omitempty,url"`
	Timeout   time.Duration `yaml:"timeout" validate:"gte=0"`
	RateLimit *float64      `yaml:"rate_limit" validate:"omitempty,gte=0"`
	UserAgent string        `yaml:"user_agent"`
	DBPath    string        `yaml:"db_path"`
}

// LoadConfig reads and validates a Config from r. An empty file yields a
// zero Config.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, busroutes.Errorf(busroutes.EINVALID, "invalid config: %v", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, busroutes.Errorf(busroutes.EINVALID, "invalid config: %v", err)
	}
	return &cfg, nil
}

// Values returns the configured settings keyed by CLI flag name.
func (c *Config) Values() map[string]string {
	values := make(map[string]string)
	if c.BaseURL != "" {
		values["base-url"] = c.BaseURL
	}
	if c.Timeout > 0 {
		values["timeout"] = c.Timeout.String()
	}
	if c.RateLimit != nil {
		values["rate-limit"] = strconv.FormatFloat(*c.RateLimit, 'f', -1, 64)
	}
	if c.UserAgent != "" {
		values["user-agent"] = c.UserAgent
	}
	if c.DBPath != "" {
		values["db"] = c.DBPath
	}
	return values
}

// YAMLConfig is a kong.ConfigurationLoader that resolves flag values from a
// YAML settings file.
func YAMLConfig(r io.Reader) (kong.Resolver, error) {
	cfg, err := LoadConfig(r)
	if err != nil {
		return nil, err
	}
	values := cfg.Values()
	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		if v, ok := values[flag.Name]; ok {
			return v, nil
		}
		return nil, nil
	}), nil
}
