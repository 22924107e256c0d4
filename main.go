package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"hotel-booking/config"
	"hotel-booking/controllers"
	"hotel-booking/routes"
	"hotel-booking/services"
	"hotel-booking/utils"
)

func main() {
	// Load .env (optional)
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		utils.InitLogger("info", false)
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	gin.SetMode(cfg.Server.Mode)
	utils.InitLogger(cfg.Log.Level, gin.Mode() == gin.ReleaseMode)
	if envErr != nil {
		log.Warn().Err(envErr).Msg(".env not loaded; continuing with environment variables")
	}

	db, err := config.ConnectDatabase(cfg.DB)
	if err != nil {
		log.Fatal().Stack().Err(err).Msg("database connect failed")
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("database handle unavailable")
	}
	defer sqlDB.Close()
	log.Info().Bool("auto_migrate", cfg.DB.AutoMigrate).Bool("seed", cfg.DB.Seed).Msg("database ready")

	bookingService := services.NewBookingService(db)

	bookingController := controllers.NewBookingController(bookingService)
	roomController := controllers.NewRoomController(bookingService)

	router := routes.SetupRouter(cfg.CORS, bookingController, roomController)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout / 2,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return
	}

	log.Info().Msg("server stopped gracefully")
}
