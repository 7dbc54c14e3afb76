package main

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

	"github.com/gfmartins/racing-system/config"
	"github.com/gfmartins/racing-system/db"
	"github.com/gfmartins/racing-system/handlers"
	"github.com/gfmartins/racing-system/live"
	"github.com/gfmartins/racing-system/repositories"
	api "github.com/gfmartins/racing-system/routes"
	"github.com/gfmartins/racing-system/services"
	"github.com/gfmartins/racing-system/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	if err := db.Migrate(dbConn); err != nil {
		logger.Error("failed to run database migrations", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database migrations applied")

	// Uploader de imagens é opcional: sem credenciais do R2 as rotas de
	// upload respondem 503.
	var uploader storage.FileUploader
	if cfg.R2Configured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Warn("R2 credentials not configured, image uploads disabled")
	}

	liveHub := live.NewHub(logger)
	go liveHub.Run()
	logger.Info("live results hub started")

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	seasonRepo := repositories.NewPostgresSeasonRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	driverRepo := repositories.NewPostgresDriverRepository(dbConn)
	teamSeasonRepo := repositories.NewPostgresTeamSeasonRepository(dbConn)
	driverTeamSeasonRepo := repositories.NewPostgresDriverTeamSeasonRepository(dbConn)
	raceRepo := repositories.NewPostgresRaceRepository(dbConn)
	resultRepo := repositories.NewPostgresResultRepository(dbConn)
	championRepo := repositories.NewPostgresChampionRepository(dbConn)
	logger.Info("repositories initialized")

	userService := services.NewUserService(userRepo)
	seasonService := services.NewSeasonService(seasonRepo, raceRepo, teamRepo, championRepo, resultRepo, uploader)
	teamService := services.NewTeamService(teamRepo, uploader)
	driverService := services.NewDriverService(driverRepo, uploader)
	teamSeasonService := services.NewTeamSeasonService(teamSeasonRepo)
	driverTeamSeasonService := services.NewDriverTeamSeasonService(driverTeamSeasonRepo)
	raceService := services.NewRaceService(raceRepo, resultRepo)
	resultService := services.NewResultService(resultRepo, liveHub)
	championService := services.NewChampionService(championRepo)
	logger.Info("services initialized")

	userHandler := handlers.NewUserHandler(userService)
	seasonHandler := handlers.NewSeasonHandler(seasonService)
	teamHandler := handlers.NewTeamHandler(teamService)
	driverHandler := handlers.NewDriverHandler(driverService)
	teamSeasonHandler := handlers.NewTeamSeasonHandler(teamSeasonService)
	driverTeamSeasonHandler := handlers.NewDriverTeamSeasonHandler(driverTeamSeasonService)
	raceHandler := handlers.NewRaceHandler(raceService)
	resultHandler := handlers.NewResultHandler(resultService, raceService)
	championHandler := handlers.NewChampionHandler(championService)
	webSocketHandler := handlers.NewWebSocketHandler(liveHub)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		userHandler,
		seasonHandler,
		teamHandler,
		driverHandler,
		teamSeasonHandler,
		driverTeamSeasonHandler,
		raceHandler,
		resultHandler,
		championHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if err := server.Close(); err != nil {
				logger.Error("forced server close failed", slog.Any("error", err))
			}
		}
	}

	logger.Info("server stopped")
}
