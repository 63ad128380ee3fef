package app

import (
	"context"
	"log/slog"

	httpapp "github.com/jjongdev/votings-backend/internal/app/http"
	"github.com/jjongdev/votings-backend/internal/handlers"
	"github.com/jjongdev/votings-backend/internal/middleware"
	"github.com/jjongdev/votings-backend/internal/repo/postgres"
	"github.com/jjongdev/votings-backend/internal/services"
)

type App struct {
	HTTPServer *httpapp.App
	Votings    *services.Votings
	storage    *postgres.Storage
}

func NewApp(log *slog.Logger, httpPort int, storagePath string, authSecret string) *App {
	storage, err := postgres.New(storagePath)
	if err != nil {
		panic(err)
	}

	authMiddleware := middleware.NewAuthMiddleware(authSecret)

	votingsService := services.NewVotings(log, storage, storage)
	votingHandler := handlers.NewVotingHandler(votingsService)
	expiryFilter := middleware.NewExpiryFilter(log, votingsService)

	httpApp := httpapp.NewApp(log, httpPort, votingHandler, expiryFilter, authMiddleware.Middleware())

	return &App{
		HTTPServer: httpApp,
		Votings:    votingsService,
		storage:    storage,
	}
}

func (a *App) Stop(ctx context.Context) error {
	if err := a.HTTPServer.Stop(ctx); err != nil {
		return err
	}
	return a.storage.Close()
}
