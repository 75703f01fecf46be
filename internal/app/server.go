// File: internal/app/server.go
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"creator_support_backend/internal/category"
	"creator_support_backend/internal/cause"
	"creator_support_backend/internal/config"
	"creator_support_backend/internal/creatorpage"
	"creator_support_backend/internal/datastore"
	"creator_support_backend/internal/firebase"
	"creator_support_backend/internal/jobs"
	"creator_support_backend/internal/middleware"
	"creator_support_backend/internal/profile"
	"creator_support_backend/internal/search"
	"creator_support_backend/internal/uistate"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server struct holds the dependencies for the HTTP server.
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	cfg        *config.Config
	logger     *zap.Logger

	causeFundingJob *jobs.CauseFundingJob
}

// Handlers groups the route handlers the server mounts.
type Handlers struct {
	Category    *category.Handler
	Profile     *profile.Handler
	CreatorPage *creatorpage.Handler
	Cause       *cause.Handler
	Search      *search.Handler
	UIState     *uistate.Handler
}

// NewServer creates a new instance of our application server.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	handlers Handlers,
	authenticator firebase.Authenticator,
	store datastore.Store,
	causeFundingJob *jobs.CauseFundingJob,
) (*Server, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	// --- Global Middleware ---
	router.Use(middleware.ZapLogger(logger, cfg))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	authMW := middleware.AuthMiddleware(authenticator, store, logger.Named("AuthMiddleware"))

	// --- Setup Routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Creator support API is healthy!"})
	})

	v1 := router.Group("/api/v1")

	// Public browsing
	handlers.Category.RegisterRoutes(v1)
	handlers.Profile.RegisterRoutes(v1)
	handlers.CreatorPage.RegisterRoutes(v1)
	handlers.Search.RegisterRoutes(v1)

	// Signed-in
	handlers.Cause.RegisterRoutes(v1, authMW)
	handlers.UIState.RegisterRoutes(v1, authMW)

	addr := fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return &Server{
		httpServer:      httpServer,
		router:          router,
		cfg:             cfg,
		logger:          logger,
		causeFundingJob: causeFundingJob,
	}, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	if s.causeFundingJob != nil {
		if err := s.causeFundingJob.SetupAndStart(); err != nil {
			s.logger.Error("Failed to setup and start cause funding job", zap.Error(err))
		}
	} else {
		s.logger.Info("Cause funding job is not configured, skipping start.")
	}

	s.logger.Info("HTTP Server starting",
		zap.String("address", s.httpServer.Addr),
		zap.String("ginMode", s.cfg.GinMode),
	)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Failed to start HTTP server", zap.Error(err))
		return err
	}
	s.logger.Info("HTTP Server stopped")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Attempting graceful server shutdown...")
	if s.causeFundingJob != nil {
		s.causeFundingJob.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
