package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/kpango/glg"
)

// Env holds the settings read from the environment.
type Env struct {
	OracleTimeout time.Duration `env:"ICONPORT_ORACLE_TIMEOUT" envDefault:"30s"`
	LogLevel      string        `env:"ICONPORT_LOG_LEVEL" envDefault:"info"`
}

func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}

	if e.OracleTimeout <= 0 {
		return Env{}, fmt.Errorf("%w: oracle timeout must be positive, got %v", ErrInvalidOptions, e.OracleTimeout)
	}

	if _, err := e.Level(); err != nil {
		return Env{}, err
	}

	return e, nil
}

// Level maps LogLevel onto a glg level.
func (e Env) Level() (glg.LEVEL, error) {
	switch strings.ToLower(strings.TrimSpace(e.LogLevel)) {
	case "debug":
		return glg.DEBG, nil
	case "", "info":
		return glg.INFO, nil
	case "warn", "warning":
		return glg.WARN, nil
	case "error":
		return glg.ERR, nil
	}

	return glg.INFO, fmt.Errorf("%w: unknown log level %q", ErrInvalidOptions, e.LogLevel)
}
