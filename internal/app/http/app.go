package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jjongdev/votings-backend/internal/handlers"
	"github.com/jjongdev/votings-backend/internal/middleware"
	"github.com/jjongdev/votings-backend/internal/routes"
)

type App struct {
	log    *slog.Logger
	engine *gin.Engine
	server *http.Server
	port   int
}

// NewApp wires the gin engine, CORS and the route groups.
func NewApp(
	log *slog.Logger,
	port int,
	handler *handlers.VotingHandler,
	filter *middleware.ExpiryFilter,
	authMiddleware gin.HandlerFunc,
) *App {
	r := gin.Default()

	r.Use(middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
	}))

	// Route groups: /api/votings/*
	api := r.Group("/api")
	{
		publicGroup := api.Group("")
		routes.RegisterPublicRoutes(publicGroup, handler, filter)

		privateGroup := api.Group("", authMiddleware)
		routes.RegisterPrivateRoutes(privateGroup, handler)
	}

	// Healthcheck
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	addr := fmt.Sprintf(":%d", port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	return &App{
		log:    log,
		engine: r,
		server: httpServer,
		port:   port,
	}
}

// Run starts the HTTP server.
func (a *App) Run() error {
	a.log.Info("HTTP server is running", slog.String("addr", a.server.Addr))
	return a.server.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (a *App) Stop(ctx context.Context) error {
	a.log.Info("HTTP server is stopping...")
	return a.server.Shutdown(ctx)
}

func (a *App) Engine() *gin.Engine {
	return a.engine
}
