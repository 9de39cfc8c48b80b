// @title        Monsfer Custom Case API
// @version      1.0.0
// @description  Backend API for the custom phone-case ordering platform: artwork, background colors, fonts, font colors and orders.
// @host         localhost:8080
// @BasePath     /

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baetin/monsfer-api/docs"
	"github.com/baetin/monsfer-api/src/config"
	"github.com/baetin/monsfer-api/src/db"
	"github.com/baetin/monsfer-api/src/logger"
	"github.com/baetin/monsfer-api/src/middleware"
	"github.com/baetin/monsfer-api/src/routes"
	"github.com/baetin/monsfer-api/src/seed"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {

	// Configuration and logger
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "console")
		bootLog.Fatal().Err(err).Msg("Error loading configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	// empty host: Swagger UI calls whichever host served it
	docs.SwaggerInfo.Host = ""

	// Database connection
	database, err := db.Connect(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}
	defer db.Close(database)

	// Auto-migrate models
	if err := db.Migrate(database); err != nil {
		log.Fatal().Err(err).Msg("Error during auto-migration")
	}

	if cfg.SeedDefaults {
		if _, err := seed.Seed(database, log); err != nil {
			log.Fatal().Err(err).Msg("Error seeding defaults")
		}
	}

	// Services, sessions and routes setup
	svc := routes.NewServices(database, cfg.DBQueryTimeout)
	store := middleware.NewSessionStore(database, cfg)
	router := routes.NewRouter(cfg, log, store, svc)

	server := &http.Server{
		Addr:              cfg.ServerHost,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.ServerHost).Msg("Server is running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Str("addr", cfg.ServerHost).Msg("Error starting server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shut down")
	}
}
