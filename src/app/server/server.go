// Package server provides HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"blogapi/src/app/http/handler"
	"blogapi/src/app/middleware"
	"blogapi/src/core/converter"
	"blogapi/src/core/ports"
	"blogapi/src/core/usecase"
	"blogapi/src/infra/config"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server

	userService *usecase.UserService

	// Handlers
	healthHandler  *handler.HealthHandler
	userHandler    *handler.UserHandler
	postHandler    *handler.PostHandler
	commentHandler *handler.CommentHandler
	albumHandler   *handler.AlbumHandler
}

// New creates a new Server with all dependencies wired up. Services take
// their repositories and converters explicitly; there is no container.
func New(cfg *config.Config, log *slog.Logger, repos ports.Repositories) *Server {
	// Set Gin mode based on log level
	if cfg.Log.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router without default middleware
	router := gin.New()

	// Create converters
	userConv := converter.NewUserConverter()
	postConv := converter.NewPostConverter(userConv)
	commentConv := converter.NewCommentConverter(postConv, userConv)
	albumConv := converter.NewAlbumConverter(userConv)

	// Create services
	healthService := usecase.NewHealthService(repos.Store, log)
	userService := usecase.NewUserService(repos.Users, userConv, log)
	postService := usecase.NewPostService(repos.Posts, repos.Users, postConv, log)
	commentService := usecase.NewCommentService(repos.Comments, repos.Posts, repos.Users, commentConv, log)
	albumService := usecase.NewAlbumService(repos.Albums, repos.Users, albumConv, log)

	s := &Server{
		cfg:            cfg,
		log:            log,
		router:         router,
		userService:    userService,
		healthHandler:  handler.NewHealthHandler(healthService),
		userHandler:    handler.NewUserHandler(userService),
		postHandler:    handler.NewPostHandler(postService),
		commentHandler: handler.NewCommentHandler(commentService),
		albumHandler:   handler.NewAlbumHandler(albumService),
	}

	s.setupMiddleware()
	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupMiddleware configures global middleware.
func (s *Server) setupMiddleware() {
	// Order matters: Recovery should be first to catch all panics
	s.router.Use(middleware.Recovery(s.log))
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.Logging(s.log))
}

// setupRoutes configures all HTTP routes. Everything under /v1 requires
// basic auth except registration; health endpoints are open.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.healthHandler.Health)
	s.router.GET("/health/detailed", s.healthHandler.DetailedHealth)

	v1 := s.router.Group("/v1")

	// Registration is the only unauthenticated API call.
	v1.POST("/users", s.userHandler.Register)

	authed := v1.Group("")
	authed.Use(middleware.BasicAuth(s.userService))
	{
		// Users
		authed.GET("/users", s.userHandler.List)
		authed.GET("/users/:user_id", s.userHandler.Get)
		authed.GET("/users/by-email/:email", s.userHandler.GetByEmail)
		authed.DELETE("/users/:user_id", s.userHandler.Delete)

		// Posts
		authed.GET("/posts", s.postHandler.List)
		authed.GET("/posts/:post_id", s.postHandler.Get)
		authed.GET("/posts/by-title/:title", s.postHandler.GetByTitle)
		authed.POST("/posts", s.postHandler.Create)
		authed.DELETE("/posts/:post_id", s.postHandler.Delete)

		// Comments
		authed.GET("/comments", s.commentHandler.List)
		authed.GET("/comments/:comment_id", s.commentHandler.Get)
		authed.GET("/posts/:post_id/comments", s.commentHandler.ListByPost)
		authed.POST("/posts/:post_id/comments", s.commentHandler.Create)
		authed.DELETE("/comments/:comment_id", s.commentHandler.Delete)

		// Albums
		authed.GET("/albums", s.albumHandler.List)
		authed.GET("/albums/:album_id", s.albumHandler.Get)
		authed.POST("/albums", s.albumHandler.Create)
		authed.DELETE("/albums/:album_id", s.albumHandler.Delete)
	}

	// Handle 404
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":       "NOT_FOUND",
				"message":    "The requested resource was not found",
				"request_id": middleware.GetRequestID(c),
			},
		})
	})
}

// setupHTTPServer configures the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.http = &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}
}

// Run starts the HTTP server and blocks until shutdown.
// It handles graceful shutdown on SIGINT/SIGTERM.
func (s *Server) Run() error {
	// Channel to receive shutdown signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		s.log.Info("starting HTTP server",
			"addr", s.cfg.Server.Addr(),
		)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-quit:
		s.log.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		return err
	}

	// Graceful shutdown
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	s.log.Info("shutting down server", "timeout", s.cfg.Server.ShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	s.log.Info("server stopped gracefully")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// WaitForReady waits until the server is ready to accept connections.
// Useful for integration tests.
func (s *Server) WaitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		resp, err := http.Get(fmt.Sprintf("http://%s/health", s.cfg.Server.Addr()))
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("server not ready after %v", timeout)
}
