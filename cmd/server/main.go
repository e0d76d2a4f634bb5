package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brokerdesk/appetite-engine/internal/config"
	"github.com/brokerdesk/appetite-engine/internal/database"
	"github.com/brokerdesk/appetite-engine/internal/modules/appetite"
	"github.com/brokerdesk/appetite-engine/internal/modules/clients"
	"github.com/brokerdesk/appetite-engine/internal/modules/guides"
	"github.com/brokerdesk/appetite-engine/internal/modules/intelligence"
	"github.com/brokerdesk/appetite-engine/internal/modules/matching"
	"github.com/brokerdesk/appetite-engine/internal/scheduler"
	"github.com/brokerdesk/appetite-engine/internal/server"
	"github.com/brokerdesk/appetite-engine/pkg/logger"
)

func main() {
	// Initialize logger
	log := logger.New(logger.Config{
		Level:  "info",
		Pretty: true,
	})

	log.Info().Msg("Starting Appetite Engine")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Reconfigure logger from config
	log = logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	// Initialize database
	db, err := database.New(database.Config{
		Path:    cfg.DataDir + "/broker.db",
		Profile: database.ProfileStandard,
		Name:    "broker",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	// Run migrations
	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Scoring configuration, with environment overrides applied
	scoringCfg := appetite.DefaultScoringConfig()
	if cfg.HomeMarket != "" {
		scoringCfg.HomeMarket = cfg.HomeMarket
	}
	if cfg.NearestMissLimit > 0 {
		scoringCfg.NearestMissLimit = cfg.NearestMissLimit
	}
	scorer := appetite.NewScorer(scoringCfg)

	// Repositories
	guideRepo := guides.NewRepository(db.Conn(), log)
	clientRepo := clients.NewRepository(db.Conn(), log)
	runRepo := matching.NewRepository(db.Conn(), log)
	snapshotRepo := intelligence.NewRepository(db.Conn(), log)

	// Services
	matchService := matching.NewService(clientRepo, guideRepo, runRepo, scorer, log)
	intelService := intelligence.NewService(runRepo, scoringCfg.StrongMatchThreshold, log)

	// Handlers
	guideHandler := guides.NewHandler(guideRepo, log)
	clientHandler := clients.NewHandler(clientRepo, log)
	matchHandler := matching.NewHandler(matchService, runRepo, log)
	intelHandler := intelligence.NewHandler(intelService, snapshotRepo, log)

	// Initialize scheduler and register background jobs
	sched := scheduler.New(log)
	snapshotJob := scheduler.NewIntelligenceSnapshotJob(intelService, snapshotRepo, log)
	if err := sched.AddJob("0 0 2 * * *", snapshotJob); err != nil {
		log.Fatal().Err(err).Msg("Failed to register intelligence snapshot job")
	}
	sched.Start()
	defer sched.Stop()

	// Initialize HTTP server
	srv := server.New(server.Config{
		Port:                cfg.Port,
		DevMode:             cfg.DevMode,
		Log:                 log,
		DB:                  db,
		GuideHandler:        guideHandler,
		ClientHandler:       clientHandler,
		MatchHandler:        matchHandler,
		IntelligenceHandler: intelHandler,
	})

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
