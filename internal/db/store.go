package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"kenyareal/internal/cache"
	"kenyareal/internal/config"
	"kenyareal/internal/repository"
)

// OpenDocumentStore builds the account document store selected by cfg.StoreDriver.
// The returned closer releases whatever connection the backend opened.
func OpenDocumentStore(ctx context.Context, cfg *config.Config, cacheClient *cache.Client, log *zap.SugaredLogger, reset bool) (repository.DocumentStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreDriver {
	case config.StoreMemory, "":
		log.Infow("using in-memory document store; accounts reset on restart")
		return repository.NewMemoryDocumentStore(), noop, nil

	case config.StoreMySQL:
		gormDB, err := NewMySQL(cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := Migrate(gormDB, reset); err != nil {
			return nil, nil, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("mysql handle: %w", err)
		}
		log.Infow("using mysql document store")
		return repository.NewGormDocumentStore(gormDB), sqlDB.Close, nil

	case config.StoreRedis:
		if err := cacheClient.Ping(ctx); err != nil {
			return nil, nil, fmt.Errorf("redis document store: %w", err)
		}
		store := repository.NewCacheDocumentStore(cacheClient)
		if reset {
			for _, key := range []string{repository.AccountsKey, repository.SessionKey} {
				if err := store.Delete(ctx, key); err != nil {
					return nil, nil, err
				}
			}
		}
		log.Infow("using redis document store", "addr", cfg.RedisAddr)
		return store, noop, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
