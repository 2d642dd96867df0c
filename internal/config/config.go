// Package config loads hxui settings from an optional hxui.yaml, HXUI_
// environment variables and defaults, using Viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides (HXUI_SERVER_ADDR).
const EnvPrefix = "HXUI"

// Config is the complete hxui configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Props   PropsConfig   `mapstructure:"props"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ServerConfig configures the page server.
type ServerConfig struct {
	Addr     string `mapstructure:"addr" validate:"required,hostname_port"`
	PagesDir string `mapstructure:"pages_dir" validate:"required"`
	Watch    bool   `mapstructure:"watch"`
}

// PropsConfig configures property bag encoding.
type PropsConfig struct {
	// SigningKey enables sealed property bags when non-empty.
	SigningKey string `mapstructure:"signing_key" validate:"omitempty,min=16"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"startswith=/"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "127.0.0.1:8080")
	v.SetDefault("server.pages_dir", "./pages")
	v.SetDefault("server.watch", false)
	v.SetDefault("props.signing_key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// New returns a Viper instance wired with defaults and environment
// overrides. file, when set, names the config file; otherwise hxui.yaml is
// looked up in the working directory.
func New(file string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("hxui")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	return v
}

// Load reads the config file, if any, and returns the validated settings.
// A missing default config file is not an error; a missing explicit one is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its validate tags.
func Validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		msgs := make([]error, 0, len(ves))
		for _, fe := range ves {
			msgs = append(msgs, fmt.Errorf("%s failed validation for tag '%s'", keyName(fe), fe.Tag()))
		}
		return fmt.Errorf("config: %w", errors.Join(msgs...))
	}
	return fmt.Errorf("config: %w", err)
}

// keyName turns "Config.Server.PagesDir" into "server.pagesdir".
func keyName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, ".")
}
