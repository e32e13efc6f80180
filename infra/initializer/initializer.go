package initializer

import (
	"fmt"
	"log/slog"

	infra_cache "github.com/fxmirror/fxmirror/infra/cache"
	"github.com/fxmirror/fxmirror/infra/feed"
	"github.com/fxmirror/fxmirror/infra/metrics"
	"github.com/fxmirror/fxmirror/pkg/cache"
	"github.com/fxmirror/fxmirror/pkg/config"
	"github.com/fxmirror/fxmirror/pkg/domain"
	"github.com/redis/go-redis/v9"
)

// Deps holds the wired dependencies shared by the server and the CLI.
type Deps struct {
	Cfg     *config.App
	Logger  *slog.Logger
	Feed    *feed.Client
	Metrics *metrics.FeedMetrics
}

// InitializeDependencies builds the logger, caches, metrics and feed client
// from the loaded configuration.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := setupLogger(cfg.Log)

	lists, rates, err := setupCaches(cfg, logger)
	if err != nil {
		return nil, err
	}

	m := metrics.NewFeedMetrics()
	client := feed.New(*cfg.Feed, lists, rates, logger, m)

	return &Deps{
		Cfg:     cfg,
		Logger:  logger,
		Feed:    client,
		Metrics: m,
	}, nil
}

func setupCaches(cfg *config.App, logger *slog.Logger) (
	cache.Cache[domain.CurrencyList],
	cache.Cache[domain.RateTable],
	error,
) {
	switch cfg.Cache.Backend {
	case "redis":
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse redis url: %w", err)
		}
		opt.PoolSize = cfg.Redis.PoolSize
		opt.DialTimeout = cfg.Redis.DialTimeout

		logger.Info("Using redis cache backend", "prefix", cfg.Redis.KeyPrefix)
		return infra_cache.NewRedisCache[domain.CurrencyList](opt, cfg.Redis.KeyPrefix, logger),
			infra_cache.NewRedisCache[domain.RateTable](opt, cfg.Redis.KeyPrefix, logger),
			nil
	default:
		logger.Info("Using in-memory cache backend")
		return infra_cache.NewMemoryCache[domain.CurrencyList](),
			infra_cache.NewMemoryCache[domain.RateTable](),
			nil
	}
}
