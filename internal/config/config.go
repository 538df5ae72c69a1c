package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// EnvPrefix is the prefix of environment variables read by LoadConfig,
// e.g. PGQUOTE_DSN and PGQUOTE_LOG_LEVEL.
const EnvPrefix = "PGQUOTE_"

// ErrNoDSN is returned by RequireDSN when no connection string is configured.
var ErrNoDSN = errors.New("dsn is not configured")

type Config struct {
	DSN      string `koanf:"dsn"`
	LogLevel string `koanf:"log_level"`
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// RequireDSN returns the connection string or ErrNoDSN.
func (c *Config) RequireDSN() (string, error) {
	if c.DSN == "" {
		return "", fmt.Errorf("%w: set dsn in a config file or %sDSN", ErrNoDSN, EnvPrefix)
	}
	return c.DSN, nil
}

// LoadConfig reads the given YAML files in order, then the environment.
// Later sources override earlier ones.
func LoadConfig(files ...string) (*Config, error) {
	out := Config{
		LogLevel: zerolog.LevelInfoValue,
	}

	k := koanf.New(".")
	yamlParser := yaml.Parser()
	for _, fpath := range files {
		if err := k.Load(file.Provider(fpath), yamlParser); err != nil {
			return nil, fmt.Errorf("load %q config: %w", fpath, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	if err := k.Unmarshal("", &out); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &out, nil
}
