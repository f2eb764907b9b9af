// Package config loads fraccalc settings from the environment.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Config holds the calculator defaults. Command-line flags override them.
type Config struct {
	Simplify bool   `env:"FRAC_SIMPLIFY" envDefault:"true"`
	Mixed    bool   `env:"FRAC_MIXED" envDefault:"false"`
	LogLevel string `env:"FRAC_LOG_LEVEL" envDefault:"info"`
	Color    bool   `env:"FRAC_COLOR" envDefault:"true"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Logger returns a logfmt logger writing to w, filtered at c.LogLevel.
func (c Config) Logger(w io.Writer) (log.Logger, error) {
	var allow level.Option
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		allow = level.AllowDebug()
	case "info", "":
		allow = level.AllowInfo()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		return nil, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	return level.NewFilter(logger, allow), nil
}
