package config

import (
	"errors"
	"fmt"
	"strings"

	"txengine/internal/engine"
	"txengine/internal/gateway"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config holds application configuration.
type Config struct {
	Output OutputConfig
	Engine EngineConfig
	Log    LogConfig
}

// OutputConfig selects how final accounts are rendered.
type OutputConfig struct {
	Format string
}

// EngineConfig holds transaction processing settings.
type EngineConfig struct {
	FrozenPolicy string `mapstructure:"frozen_policy"`
}

// LogConfig holds diagnostic logging settings. Logs always go to stderr.
type LogConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from an optional file and the environment.
// Env var overrides use prefix TXENGINE_, e.g. TXENGINE_ENGINE_FROZEN_POLICY.
// An explicit path must exist; otherwise ./txengine.{toml,yaml,json} is used
// when present.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("output.format", gateway.FormatCSV)
	v.SetDefault("engine.frozen_policy", engine.FrozenAllow.String())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("txengine")
	}

	v.SetEnvPrefix("TXENGINE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate checks that every setting names a known option.
func (c Config) Validate() error {
	if _, err := gateway.NewAccountWriter(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if _, err := engine.ParseFrozenPolicy(c.Engine.FrozenPolicy); err != nil {
		return fmt.Errorf("engine.frozen_policy: %w", err)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("log.encoding: unknown encoding %q", c.Log.Encoding)
	}
	return nil
}
