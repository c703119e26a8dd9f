package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mcoot/pickleplanner/internal/services/generator"
	redisstorage "github.com/mcoot/pickleplanner/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Config is the server configuration, read from the environment
type Config struct {
	Host        string        `env:"HOST"`
	Port        int           `env:"PORT" envDefault:"8080"`
	StorageType string        `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string        `env:"REDIS_URL"`
	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`

	Generator Generator `envPrefix:"GENERATOR_"`
}

// Generator overrides the match generator's settings
type Generator struct {
	CandidatePoolSize int `env:"CANDIDATE_POOL_SIZE" envDefault:"4"`
	MaxPlayers        int `env:"MAX_PLAYERS" envDefault:"64"`

	BalanceWeight        float64 `env:"BALANCE_WEIGHT" envDefault:"100"`
	FatigueWeight        float64 `env:"FATIGUE_WEIGHT" envDefault:"2"`
	NoRestWeight         float64 `env:"NO_REST_WEIGHT" envDefault:"1"`
	TeammateRepeatWeight float64 `env:"TEAMMATE_REPEAT_WEIGHT" envDefault:"10"`
}

// Load reads envFile (if it exists) into the process environment and
// parses the result. An empty envFile skips the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return parse(env.Options{})
}

// FromMap parses configuration from the given variables only
func FromMap(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks for settings that cannot work together
func (c Config) Validate() error {
	switch c.StorageType {
	case StorageTypeMemory:
	case StorageTypeRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
	default:
		return fmt.Errorf("invalid STORAGE_TYPE %q: must be %q or %q", c.StorageType, StorageTypeMemory, StorageTypeRedis)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	if c.Generator.MaxPlayers < 4 {
		return fmt.Errorf("invalid GENERATOR_MAX_PLAYERS %d: must be at least 4", c.Generator.MaxPlayers)
	}
	if err := c.GeneratorConfig().Weights.Validate(); err != nil {
		return fmt.Errorf("invalid GENERATOR_* weights: %w", err)
	}
	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error")
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// RedisConfig returns the Redis storage settings, or nil for memory storage
func (c Config) RedisConfig() *redisstorage.Config {
	if c.StorageType != StorageTypeRedis {
		return nil
	}
	cfg := redisstorage.DefaultConfig()
	cfg.URL = c.RedisURL
	cfg.SessionTTL = c.SessionTTL
	return &cfg
}

// GeneratorConfig applies the overrides to the default generator settings
func (c Config) GeneratorConfig() generator.Config {
	cfg := generator.DefaultConfig()
	cfg.CandidatePoolSize = c.Generator.CandidatePoolSize
	cfg.MaxPlayers = c.Generator.MaxPlayers
	cfg.Weights.Balance = c.Generator.BalanceWeight
	cfg.Weights.Fatigue = c.Generator.FatigueWeight
	cfg.Weights.NoRest = c.Generator.NoRestWeight
	cfg.Weights.TeammateRepeat = c.Generator.TeammateRepeatWeight
	return cfg
}
