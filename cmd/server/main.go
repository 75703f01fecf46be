// File: cmd/server/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"creator_support_backend/internal/config"
	"creator_support_backend/internal/creatorpage"
	"creator_support_backend/internal/platform/database"
	platformElasticsearch "creator_support_backend/internal/platform/elasticsearch"
	"creator_support_backend/internal/platform/logger"
	"creator_support_backend/internal/search"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		startServer()
		return
	}

	switch os.Args[1] {
	case "serve":
		startServer()
	case "migrate":
		runMigrate()
	case "reindex-pages":
		reindexCmd := flag.NewFlagSet("reindex-pages", flag.ExitOnError)
		batchSize := reindexCmd.Int("batch-size", 100, "Batch size for indexing creator pages")
		esRefresh := reindexCmd.String("es-refresh", "false", "Elasticsearch refresh policy (true, false, wait_for)")
		_ = reindexCmd.Parse(os.Args[2:])
		runReindexPages(*batchSize, *esRefresh)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (expected serve, migrate or reindex-pages)\n", os.Args[1])
		os.Exit(2)
	}
}

func startServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	server, cleanup, err := initializeServer(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize server: %v", err)
	}
	defer cleanup()

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("FATAL: Server failed to start or crashed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("INFO: Received signal '%s'. Shutting down server...", sig)

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ServerTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: Server forced to shutdown due to error: %v", err)
	} else {
		log.Println("INFO: Server shutdown complete.")
	}
}

// commandDeps opens config, logger and database for the one-shot commands.
func commandDeps() (*config.Config, *zap.Logger, *gorm.DB) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}
	appLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize logger: %v", err)
	}
	db, err := database.NewGORM(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", zap.Error(err))
	}
	return cfg, appLogger, db
}

func runMigrate() {
	_, appLogger, db := commandDeps()
	defer database.CloseGORMDB(db)

	if err := database.Migrate(context.Background(), db, appLogger); err != nil {
		appLogger.Fatal("Migration failed", zap.Error(err))
	}
}

func runReindexPages(batchSize int, esRefresh string) {
	cfg, appLogger, db := commandDeps()
	defer database.CloseGORMDB(db)
	ctx := context.Background()

	esClient, err := platformElasticsearch.NewClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize Elasticsearch client", zap.Error(err))
	}
	if esClient == nil {
		appLogger.Fatal("ELASTICSEARCH_URL must be set to reindex creator pages")
	}
	if err := platformElasticsearch.CreateCreatorPagesIndexIfNotExists(ctx, esClient, appLogger); err != nil {
		appLogger.Fatal("Failed to create/verify creator pages index", zap.Error(err))
	}

	searchService := search.NewService(esClient, appLogger)
	result, err := searchService.Reindex(ctx, creatorpage.NewGORMRepository(db), batchSize, esRefresh)
	if err != nil {
		appLogger.Fatal("Creator page reindex failed", zap.Error(err), zap.Int("synced", result.Synced), zap.Int("failed", result.Failed))
	}
	appLogger.Info("Creator page reindex completed successfully.", zap.Int("synced", result.Synced))
}
