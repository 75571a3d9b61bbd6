// Package config loads runtime settings from defaults, an optional YAML file,
// and AQIFORM_* environment variables, in that order of precedence. Command
// line flags are applied over the result by the caller.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"aqiform/models"

	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

// Environment variables recognised by ApplyEnv
const (
	EnvAddr          = "AQIFORM_ADDR"
	EnvLogLevel      = "AQIFORM_LOG_LEVEL"
	EnvMinAge        = "AQIFORM_MIN_AGE"
	EnvLoginErrors   = "AQIFORM_LOGIN_ERRORS"
	EnvSessionSecret = "AQIFORM_SESSION_SECRET"
	EnvSessionTTL    = "AQIFORM_SESSION_TTL"
	EnvTrustProxy    = "AQIFORM_TRUST_PROXY"
)

// MaxMinAge bounds the configurable age floor
const MaxMinAge = 120

// Config holds every setting the server and the terminal form need
type Config struct {
	Addr          string        `yaml:"addr"`
	LogLevel      string        `yaml:"log_level"`
	MinAge        int           `yaml:"min_age"`
	LoginErrors   string        `yaml:"login_errors"`
	SessionSecret string        `yaml:"session_secret"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
	RateLimit     int           `yaml:"rate_limit_per_minute"`
	TrustProxy    bool          `yaml:"trust_proxy"`
	MaxSessions   int           `yaml:"max_sessions"`
}

// Default returns the settings used when nothing else is provided
func Default() Config {
	return Config{
		Addr:          ":8000",
		LogLevel:      "info",
		MinAge:        models.DefaultMinAge,
		LoginErrors:   string(models.LoginErrorsInline),
		SessionSecret: models.DevSessionSecret,
		SessionTTL:    models.DefaultSessionTTL,
		RateLimit:     120,
		MaxSessions:   models.DefaultMaxSessions,
	}
}

// Load reads the layered settings with Read and validates the result
func Load(path string) (Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Read starts from Default, overlays the YAML file at path when path is set,
// then overlays the environment. The result is not validated so that callers
// can layer command line flags on top first.
func Read(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, serr.Wrap(err, "failed to read config file")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, serr.Wrap(err, "failed to parse config file")
		}
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overlays any AQIFORM_* variables returned by getenv
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvAddr); v != "" {
		c.Addr = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := getenv(EnvMinAge); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return serr.Wrap(err, "invalid "+EnvMinAge)
		}
		c.MinAge = n
	}
	if v := getenv(EnvLoginErrors); v != "" {
		c.LoginErrors = v
	}
	if v := getenv(EnvSessionSecret); v != "" {
		c.SessionSecret = v
	}
	if v := getenv(EnvSessionTTL); v != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return serr.Wrap(err, "invalid "+EnvSessionTTL)
		}
		c.SessionTTL = d
	}
	if v := getenv(EnvTrustProxy); v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return serr.Wrap(err, "invalid "+EnvTrustProxy)
		}
		c.TrustProxy = b
	}
	return nil
}

// Validate rejects settings the server cannot run with
func (c Config) Validate() error {
	if c.Addr == "" {
		return serr.New("addr is required")
	}
	if c.MinAge < 0 || c.MinAge > MaxMinAge {
		return serr.New(fmt.Sprintf("min_age must be between 0 and %d", MaxMinAge))
	}
	if _, err := models.ParseLoginErrorMode(c.LoginErrors); err != nil {
		return err
	}
	if len(c.SessionSecret) < models.MinSecretLength {
		return serr.New("session_secret must be at least 32 characters")
	}
	if c.SessionTTL <= 0 {
		return serr.New("session_ttl must be positive")
	}
	if c.RateLimit < 0 {
		return serr.New("rate_limit_per_minute cannot be negative")
	}
	if c.MaxSessions < 0 {
		return serr.New("max_sessions cannot be negative")
	}
	return nil
}

// Policy returns the form policy these settings describe
func (c Config) Policy() models.Policy {
	mode, err := models.ParseLoginErrorMode(c.LoginErrors)
	if err != nil {
		mode = models.LoginErrorsInline
	}
	return models.Policy{MinAge: c.MinAge, LoginErrors: mode}
}

// UsesDevSecret reports whether the built-in development secret is in effect
func (c Config) UsesDevSecret() bool {
	return c.SessionSecret == models.DevSessionSecret
}
