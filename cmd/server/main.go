package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/bloodlink/coordination-api/internal/api"
	"github.com/bloodlink/coordination-api/internal/core/ports"
	"github.com/bloodlink/coordination-api/internal/core/service"
	"github.com/bloodlink/coordination-api/internal/infrastructure/config"
	"github.com/bloodlink/coordination-api/internal/infrastructure/db/memory"
	mongostore "github.com/bloodlink/coordination-api/internal/infrastructure/db/mongo"
	redisstore "github.com/bloodlink/coordination-api/internal/infrastructure/db/redis"
	"github.com/bloodlink/coordination-api/internal/infrastructure/jobs"
	"github.com/bloodlink/coordination-api/internal/infrastructure/notify"
	"github.com/bloodlink/coordination-api/internal/infrastructure/queue"
	"github.com/bloodlink/coordination-api/pkg/logger"
)

const tokenTTL = 24 * time.Hour

// @title        BloodLink Coordination API
// @version      1.0
// @description  Blood donation coordination service: donors, banks, campaigns and emergency requests.
// @BasePath     /
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{Level: "info"})
		logger.Get().Fatal().Err(err).Msg("configuration invalid")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Storage backend (chosen once, no per-request fallback) ---
	var (
		accountRepo  ports.AccountRepository
		bankRepo     ports.BankRepository
		campaignRepo ports.CampaignRepository
		sosRepo      ports.SOSRepository
		postRepo     ports.PostRepository
		mongoDB      *mongodriver.Database
	)

	switch cfg.StorageBackend {
	case "mongo":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongodb unavailable")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()

		accounts := mongostore.NewAccountRepository(db)
		if err := accounts.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongodb index creation failed")
		}

		accountRepo = accounts
		bankRepo = mongostore.NewBankRepository(db)
		campaignRepo = mongostore.NewCampaignRepository(db)
		sosRepo = mongostore.NewSOSRepository(db)
		postRepo = mongostore.NewPostRepository(db)
		mongoDB = db
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongodb storage")

	case "memory":
		accountRepo = memory.NewAccountRepository()
		bankRepo = memory.NewBankRepository()
		campaignRepo = memory.NewCampaignRepository()
		sosRepo = memory.NewSOSRepository()
		postRepo = memory.NewPostRepository()
		log.Warn().Msg("using in-memory storage, data is lost on restart")
	}

	// --- Redis (optional: empty addr disables caching and SOS dedup) ---
	var (
		redisClient      *goredis.Client
		leaderboardCache ports.LeaderboardCache
		sosDeduper       ports.SOSDeduper
	)
	if cfg.Redis.Addr != "" {
		redisClient, err = redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis unavailable")
		}
		defer redisClient.Close()

		leaderboardCache = redisstore.NewLeaderboardCache(redisClient)
		sosDeduper = redisstore.NewSOSDeduper(redisClient)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	} else {
		log.Info().Msg("redis disabled, caching and sos dedup off")
	}

	// --- Background machinery ---
	dispatcher := queue.NewAlertDispatcher(0, notify.NewLogNotifier(log), log)
	dispatcher.Start(ctx)

	// --- Services ---
	authService := service.NewAuthService(accountRepo, cfg.JWTSecret, tokenTTL)
	accountService := service.NewAccountService(accountRepo)
	bankService := service.NewBankService(bankRepo)
	campaignService := service.NewCampaignService(campaignRepo, log)
	sosService := service.NewSOSService(sosRepo, accountRepo, sosDeduper, dispatcher, log)
	leaderboardService := service.NewLeaderboardService(accountRepo, leaderboardCache, log)
	awarenessService := service.NewAwarenessService(postRepo)
	chatbotService := service.NewChatbotService(accountRepo, bankRepo, campaignRepo)

	statusJob := jobs.NewCampaignStatusJob(campaignService, log)
	if err := statusJob.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("campaign status job failed to start")
	}
	defer statusJob.Stop()

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		Auth:        authService,
		Accounts:    accountService,
		Banks:       bankService,
		Campaigns:   campaignService,
		SOS:         sosService,
		Leaderboard: leaderboardService,
		Awareness:   awarenessService,
		Chatbot:     chatbotService,
		Mongo:       mongoDB,
		Redis:       redisClient,
		Log:         log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server exited")
}
