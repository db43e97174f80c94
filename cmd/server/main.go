package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog"

	"github.com/campusgo/campus-market/internal/adapter/handler"
	"github.com/campusgo/campus-market/internal/adapter/storage"
	"github.com/campusgo/campus-market/internal/config"
	"github.com/campusgo/campus-market/internal/core/service"
)

func main() {
	cfg := config.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.Debug {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open mysql")
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	// The server starts even when the database is down: listing and
	// statistics endpoints degrade to fallback payloads.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		log.Warn().Err(err).Msg("mysql unreachable, serving fallback data where supported")
	} else {
		log.Info().Msg("connected to mysql")
	}
	pingCancel()

	fallback := service.DefaultFallback()
	svc := handler.Services{
		Users:     service.NewUserService(storage.NewUserAdapter(db)),
		Products:  service.NewProductService(storage.NewProductAdapter(db), fallback, log),
		Favorites: service.NewFavoriteService(storage.NewFavoriteAdapter(db)),
		Orders:    service.NewOrderService(storage.NewOrderAdapter(db)),
		Stats:     service.NewStatsService(storage.NewStatsAdapter(db), fallback, log),
	}

	router := handler.NewRouter(svc, cfg.StaticDir, log)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("HTTP server listening")
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}
	log.Info().Msg("HTTP server stopped")

	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("mysql close error")
	}
	log.Info().Msg("connections closed")
}
