package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/pickleplanner/internal/dependencies/clock"
	"github.com/mcoot/pickleplanner/internal/dependencies/ids"
	"github.com/mcoot/pickleplanner/internal/dependencies/random"
	"github.com/mcoot/pickleplanner/internal/events"
	"github.com/mcoot/pickleplanner/internal/services/generator"
	"github.com/mcoot/pickleplanner/internal/services/rating"
	"github.com/mcoot/pickleplanner/internal/services/roster"
	"github.com/mcoot/pickleplanner/internal/services/session"
	"github.com/mcoot/pickleplanner/internal/storage"
	"github.com/mcoot/pickleplanner/internal/storage/memory"
	redisstorage "github.com/mcoot/pickleplanner/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	IDs    ids.Generator

	// Services
	Generator         *generator.Generator
	RatingService     *rating.Service
	Roster            *roster.Service
	SessionController *session.Controller

	// Live session streams
	Events *events.HubManager
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// GeneratorConfig tunes match generation (optional)
	// Zero weights and sizes take the generator defaults
	GeneratorConfig generator.Config
	// RatingConfig holds the rating constants (optional)
	// If zero value, defaults to rating.DefaultConfig()
	RatingConfig rating.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()
	idGen := ids.New()

	return newWithDependencies(store, clk, rnd, idGen, withDefaults(cfg), logger), nil
}

func withDefaults(cfg Config) Config {
	if cfg.RatingConfig == (rating.Config{}) {
		cfg.RatingConfig = rating.DefaultConfig()
	}
	return cfg
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, idGen ids.Generator, cfg Config, logger *slog.Logger) *App {
	// Create services
	gen := generator.New(rnd, cfg.GeneratorConfig, generator.NewLogObserver(logger))
	ratingService := rating.New(cfg.RatingConfig)
	rosterService := roster.New(store, clk, idGen)
	sessionController := session.NewController(store, rosterService, gen, ratingService, clk, idGen, logger)

	hubs := events.NewHubManager(clk, logger)
	sessionController.SetNotifier(events.NewBroadcaster(hubs, logger))

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		IDs:               idGen,
		Generator:         gen,
		RatingService:     ratingService,
		Roster:            rosterService,
		SessionController: sessionController,
		Events:            hubs,
	}
}
