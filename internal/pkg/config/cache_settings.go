package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Cache backends
const (
	MemoryCacheType = "memory"
	RedisCacheType  = "redis"
)

// CacheSettings selects where rate-limit windows and revoked token ids are kept
type CacheSettings struct {
	Type     string `mapstructure:"type" validate:"required,oneof=memory redis"`
	Addr     string `mapstructure:"addr" validate:"required_if=Type redis"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0"`
}

// Validate checks that all fields in CacheSettings are valid
func (s *CacheSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CacheSettings: %w", err)
	}
	return nil
}
