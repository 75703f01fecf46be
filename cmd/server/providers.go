// File: cmd/server/providers.go
package main

import (
	"context"
	"log"

	"creator_support_backend/internal/config"
	"creator_support_backend/internal/handle"
	"creator_support_backend/internal/platform/database"
	platformElasticsearch "creator_support_backend/internal/platform/elasticsearch"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// provideDatabase connects, applies pending migrations and returns a cleanup
// that closes the pool and flushes the logger.
func provideDatabase(cfg *config.Config, logger *zap.Logger) (*gorm.DB, func(), error) {
	db, err := database.NewGORM(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(context.Background(), db, logger); err != nil {
		database.CloseGORMDB(db)
		return nil, nil, err
	}
	cleanup := func() {
		logger.Info("Executing cleanup tasks...")
		database.CloseGORMDB(db)
		if err := logger.Sync(); err != nil {
			log.Printf("ERROR: Failed to sync logger during cleanup: %v", err)
		}
	}
	return db, cleanup, nil
}

// provideSearchClient returns nil when search is not configured. Index
// creation failures are logged; the index is created again on the next start.
func provideSearchClient(cfg *config.Config, logger *zap.Logger) (*platformElasticsearch.ESClientWrapper, error) {
	client, err := platformElasticsearch.NewClient(cfg, logger)
	if err != nil || client == nil {
		return client, err
	}
	if err := platformElasticsearch.CreateCreatorPagesIndexIfNotExists(context.Background(), client, logger); err != nil {
		logger.Error("Failed to create Elasticsearch creator pages index", zap.Error(err))
	}
	return client, nil
}

func provideAllocator(cfg *config.Config) *handle.Allocator {
	return handle.NewAllocator(cfg.HandleMaxCandidates)
}
