package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Csprier/marvel-server/internal/config"
	"github.com/Csprier/marvel-server/internal/handlers"
	"github.com/Csprier/marvel-server/internal/logger"
	"github.com/Csprier/marvel-server/internal/repository"
	"github.com/Csprier/marvel-server/internal/repository/db"
	"github.com/Csprier/marvel-server/internal/server"
	"github.com/Csprier/marvel-server/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load environment config; the server refuses to start without a
	// signing secret
	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("error loading config", "err", err)
	}

	// open DB
	conn, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	tokens, err := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.Fatalw("failed to init token service", "err", err)
	}
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, tokens)
	apiHandler := handlers.NewHandler(services, cfg, log)

	// start HTTP server
	srv := &server.Server{}
	go func() {
		if err := srv.Run(cfg.Port, apiHandler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
	log.Infow("server started", "port", cfg.Port)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
