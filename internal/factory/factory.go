package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/procomhq/attendance-portal/internal/config"
	"github.com/procomhq/attendance-portal/internal/dependencies/clock"
	"github.com/procomhq/attendance-portal/internal/services/attendance"
	"github.com/procomhq/attendance-portal/internal/storage"
	"github.com/procomhq/attendance-portal/internal/storage/memory"
	redisstorage "github.com/procomhq/attendance-portal/internal/storage/redis"
)

// App contains all wired application components
type App struct {
	Store storage.Store
	Clock clock.Clock

	Reconciler           attendance.Reconciler
	AttendanceController *attendance.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// Reconciler mirrors store mutations to the external log (required)
	Reconciler attendance.Reconciler
	// StorageType selects the store backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	if cfg.Reconciler == nil {
		return nil, fmt.Errorf("factory: reconciler is required")
	}

	var store storage.Store
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = config.StorageTypeMemory
	}

	switch storageType {
	case config.StorageTypeMemory:
		store = memory.New()
	case config.StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("factory: redis config required for redis storage")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("factory: create redis storage: %w", err)
		}
		store = redisStore
	default:
		return nil, fmt.Errorf("factory: unknown storage type %q", storageType)
	}

	return newWithDependencies(store, cfg.Reconciler, clock.New(), logger), nil
}

func newWithDependencies(store storage.Store, reconciler attendance.Reconciler, clk clock.Clock, logger *slog.Logger) *App {
	return &App{
		Store:                store,
		Clock:                clk,
		Reconciler:           reconciler,
		AttendanceController: attendance.NewController(store, reconciler, clk, logger),
	}
}
