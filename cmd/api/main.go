package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Arallon-co/bettermeet/configs"
	"github.com/Arallon-co/bettermeet/internal/api"
	"github.com/Arallon-co/bettermeet/internal/db"
	"github.com/Arallon-co/bettermeet/internal/db/repositories"
	"github.com/Arallon-co/bettermeet/internal/di"
)

func main() {
	_ = godotenv.Load()

	config, err := configs.LoadAPIConfig()
	logger := di.NewLogger(config.App, config.Logger)
	defer logger.Sync()

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer database.Close()
	logger.Info("db started")

	pollRepository := repositories.NewPollRepository(database)
	participantRepository := repositories.NewParticipantRepository(database)

	handler := api.NewHandler(pollRepository, participantRepository, logger, config.Server.BaseURL)
	router := api.NewRouter(handler, logger)

	server := &http.Server{
		Addr:         config.Server.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infow("starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalw("server stopped", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("failed to shut down server", "error", err)
	}
	logger.Info("server stopped")
}
