package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SCRIMHUB_AUTH_JWT_SECRET
const EnvPrefix = "SCRIMHUB"

// RestConfig aggregates every settings section used by the REST server and the worker
type RestConfig struct {
	Port           string           `mapstructure:"port" validate:"required,numeric"`
	AllowedOrigins []string         `mapstructure:"allowed_origins"`
	Logger         LoggerSettings   `mapstructure:"logger"`
	Database       DatabaseSettings `mapstructure:"database"`
	Auth           AuthSettings     `mapstructure:"auth"`
	Cache          CacheSettings    `mapstructure:"cache"`
	Broker         BrokerSettings   `mapstructure:"broker"`
	Mail           MailSettings     `mapstructure:"mail"`
	Payments       PaymentSettings  `mapstructure:"payments"`
	Tracing        TracingSettings  `mapstructure:"tracing"`
}

// InitializeRestConfig reads the YAML file at path, applies environment overrides and validates the result
func InitializeRestConfig(path string) (*RestConfig, error) {
	// A .env next to the config file is optional
	envFile := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.Auth.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the top-level fields and every nested section
func (c *RestConfig) Validate() error {
	validate := validator.New()
	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for RestConfig port: %w", err)
	}
	if err := validate.Var(c.AllowedOrigins, "dive,required"); err != nil {
		return fmt.Errorf("validation failed for RestConfig allowed_origins: %w", err)
	}

	sections := []interface{ Validate() error }{
		&c.Logger,
		&c.Database,
		&c.Auth,
		&c.Cache,
		&c.Broker,
		&c.Mail,
		&c.Payments,
		&c.Tracing,
	}
	for _, section := range sections {
		if err := section.Validate(); err != nil {
			return err
		}
	}
	return nil
}
